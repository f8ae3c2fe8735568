package term

// Term is a single vocabulary entry. Translation and Example are empty
// when absent; Transcription is filled in by the transcribe package.
type Term struct {
	Text          string `yaml:"text"`
	Translation   string `yaml:"translation,omitempty"`
	Example       string `yaml:"example,omitempty"`
	Transcription string `yaml:"transcription,omitempty"`
}

func Texts(terms []Term) []string {
	texts := make([]string, 0, len(terms))
	for _, t := range terms {
		texts = append(texts, t.Text)
	}
	return texts
}
