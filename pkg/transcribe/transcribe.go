package transcribe

import "github.com/fbngrm/zh-flashcards/pkg/term"

// Transcriber renders the pronunciation of a term. Implementations must
// be pure: the same text always yields the same transcription.
type Transcriber interface {
	Transcribe(text string) string
}

// Func adapts a plain function to a Transcriber.
type Func func(text string) string

func (f Func) Transcribe(text string) string { return f(text) }

// Enrich sets the transcription of every term. A term whose text cannot
// be transcribed keeps its text as transcription, so the field is never
// empty afterwards.
func Enrich(terms []term.Term, t Transcriber) []term.Term {
	enriched := make([]term.Term, len(terms))
	for i, tt := range terms {
		tt.Transcription = t.Transcribe(tt.Text)
		if tt.Transcription == "" {
			tt.Transcription = tt.Text
		}
		enriched[i] = tt
	}
	return enriched
}
