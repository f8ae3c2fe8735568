package pinyin

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	gopinyin "github.com/mozillazg/go-pinyin"
	"gopkg.in/yaml.v2"
)

// Dict maps a term to a hand-corrected pinyin reading. It is used to fix
// polyphonic characters the generated reading gets wrong.
type Dict map[string]string

func (p Dict) Update(ch, pi string) {
	p[ch] = pi
}

func Load(path string) (Dict, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open pinyin file: %w", err)
	}
	var p Dict
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("could not unmarshal pinyin file: %w", err)
	}
	if p == nil {
		p = make(map[string]string)
	}
	return p, nil
}

func (p Dict) Write(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("could not marshal pinyin file: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write pinyin file: %w", err)
	}
	return nil
}

// Transcriber writes tone-marked pinyin. Runs of non-Han characters are
// kept as they are.
type Transcriber struct {
	// Overrides take precedence over the generated reading.
	Overrides Dict
	// Separator is put between the syllables of one run of hanzi.
	Separator string
}

func (t *Transcriber) Transcribe(text string) string {
	if pi, ok := t.Overrides[text]; ok {
		return pi
	}
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone

	var parts []string
	for _, run := range splitHan(text) {
		if !run.han {
			parts = append(parts, run.text)
			continue
		}
		parts = append(parts, strings.Join(gopinyin.LazyPinyin(run.text, args), t.Separator))
	}
	return strings.Join(parts, " ")
}

type textRun struct {
	text string
	han  bool
}

func splitHan(text string) []textRun {
	var runs []textRun
	var b strings.Builder
	var han bool
	for i, r := range text {
		isHan := unicode.Is(unicode.Han, r)
		if i > 0 && isHan != han {
			runs = append(runs, textRun{text: b.String(), han: han})
			b.Reset()
		}
		han = isHan
		b.WriteRune(r)
	}
	if b.Len() > 0 {
		runs = append(runs, textRun{text: b.String(), han: han})
	}
	return runs
}
