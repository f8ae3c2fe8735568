package frequency

import (
	"bufio"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fbngrm/zh-flashcards/pkg/term"
)

// WordIndex holds words ordered by frequency, most frequent first. The
// source file has one "word:count" entry per line.
type WordIndex struct {
	path  string
	Words []string
}

func NewWordIndex(frequencyIndexSrc string) (*WordIndex, error) {
	c := WordIndex{
		path: frequencyIndexSrc,
	}
	if err := c.init(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (i *WordIndex) init() error {
	file, err := os.Open(i.path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	index := []string{}
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.Split(line, ":")
		if len(parts) != 2 {
			continue
		}
		index = append(index, strings.TrimSpace(parts[0]))
	}
	i.Words = index

	return scanner.Err()
}

// GetExamplesForHanzi returns up to count words that contain hanzi, the
// hanzi itself excluded.
func (wi *WordIndex) GetExamplesForHanzi(hanzi string, count int) []string {
	examples := []string{}
	for _, w := range wi.Words {
		if w == hanzi || !strings.Contains(w, hanzi) {
			continue
		}
		examples = append(examples, w)
		if len(examples) == count {
			return examples
		}
	}
	return examples
}

// Enrich gives single character terms without an example a list of
// frequent words that use the character.
func (wi *WordIndex) Enrich(terms []term.Term, count int) []term.Term {
	enriched := make([]term.Term, len(terms))
	for i, t := range terms {
		if t.Example == "" && utf8.RuneCountInString(t.Text) == 1 {
			t.Example = strings.Join(wi.GetExamplesForHanzi(t.Text, count), ", ")
		}
		enriched[i] = t
	}
	return enriched
}
