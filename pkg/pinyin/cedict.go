package pinyin

import (
	"fmt"
	"strings"

	"github.com/fbngrm/zh/lib/cedict"
)

// Cedict reads pinyin from CC-CEDICT entries. Words missing from the
// dictionary are looked up character by character.
type Cedict struct {
	entries map[string][]cedict.Entry
}

func NewCedict(path string) (*Cedict, error) {
	entries, err := cedict.BySimplifiedHanzi(path)
	if err != nil {
		return nil, fmt.Errorf("could not init cedict: %w", err)
	}
	return &Cedict{entries: entries}, nil
}

func (c *Cedict) Transcribe(text string) string {
	if readings := c.readings(text); len(readings) > 0 {
		return strings.Join(readings, ", ")
	}
	syllables := make([]string, 0, len(text))
	for _, ch := range text {
		readings := c.readings(string(ch))
		if len(readings) == 0 {
			syllables = append(syllables, string(ch))
			continue
		}
		syllables = append(syllables, readings[0])
	}
	return strings.Join(syllables, " ")
}

// readings returns the distinct readings of a word in dictionary order.
func (c *Cedict) readings(word string) []string {
	seen := make(map[string]struct{})
	var readings []string
	for _, entry := range c.entries[word] {
		for _, reading := range entry.Readings {
			if _, ok := seen[reading]; ok {
				continue
			}
			seen[reading] = struct{}{}
			readings = append(readings, reading)
		}
	}
	return readings
}
