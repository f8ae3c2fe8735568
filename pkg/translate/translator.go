package translate

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// Translations is a local glossary that maps a term to its translation.
type Translations struct {
	dict          map[string]string
	charsToRemove []string
}

// New loads the glossary at path. A missing file or an empty path yields
// an empty glossary that can be filled and written later.
func New(path string, charsToRemove []string) (*Translations, error) {
	t := &Translations{
		dict:          make(map[string]string),
		charsToRemove: charsToRemove,
	}
	if path == "" {
		return t, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open translations file: %w", err)
	}
	if err := yaml.Unmarshal(b, &t.dict); err != nil {
		return nil, fmt.Errorf("could not unmarshal translations file: %w", err)
	}
	if t.dict == nil {
		t.dict = make(map[string]string)
	}
	return t, nil
}

func (t *Translations) Lookup(s string) string {
	return t.dict[removeChars(s, t.charsToRemove)]
}

func (t *Translations) Update(s, translation string) {
	t.dict[removeChars(s, t.charsToRemove)] = translation
}

func (t *Translations) Len() int {
	return len(t.dict)
}

func (t *Translations) Write(path string) error {
	data, err := yaml.Marshal(t.dict)
	if err != nil {
		return fmt.Errorf("could not marshal translations file: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write translations file: %w", err)
	}
	return nil
}

// removeChars removes all characters from the given string that are present in the charsToRemove.
func removeChars(input string, charsToRemove []string) string {
	result := strings.Builder{}
	for _, char := range input {
		if !contains(charsToRemove, string(char)) {
			result.WriteString(string(char))
		}
	}
	return result.String()
}

func contains(slice []string, char string) bool {
	for _, c := range slice {
		if c == char {
			return true
		}
	}
	return false
}
