package ignore

import (
	"errors"
	"fmt"
	"os"

	"github.com/fbngrm/zh-flashcards/pkg/term"
	"gopkg.in/yaml.v2"
)

// Ignored is the set of terms that already have printed cards.
type Ignored map[string]struct{}

func (i Ignored) Update(s string) {
	i[s] = struct{}{}
}

// Load reads the ignore file at path; a missing file is an empty set.
func Load(path string) (Ignored, error) {
	i := make(Ignored)
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return i, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ignore file: %w", err)
	}
	if err := yaml.Unmarshal(b, &i); err != nil {
		return nil, fmt.Errorf("could not unmarshal ignore file: %w", err)
	}
	if i == nil {
		i = make(Ignored)
	}
	return i, nil
}

func (i Ignored) Write(path string) error {
	data, err := yaml.Marshal(i)
	if err != nil {
		return fmt.Errorf("could not marshal ignore file: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write ignore file: %w", err)
	}
	return nil
}

// Filter drops the terms in the set and returns the rest in order.
func (i Ignored) Filter(terms []term.Term) []term.Term {
	kept := make([]term.Term, 0, len(terms))
	for _, t := range terms {
		if _, ok := i[t.Text]; ok {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}
