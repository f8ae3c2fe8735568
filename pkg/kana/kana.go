package kana

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// readingFeature is the index of the katakana reading in IPA features.
const readingFeature = 7

// Transcriber writes the katakana reading of Japanese terms.
type Transcriber struct {
	t *tokenizer.Tokenizer
}

func New() (*Transcriber, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("could not init tokenizer: %w", err)
	}
	return &Transcriber{t: t}, nil
}

// Transcribe joins the readings of all tokens. Tokens without a reading,
// like latin words or unknown kanji, are kept as written.
func (k *Transcriber) Transcribe(text string) string {
	var b strings.Builder
	for _, token := range k.t.Tokenize(text) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		if strings.TrimSpace(token.Surface) == "" {
			continue
		}
		features := token.Features()
		if len(features) > readingFeature && features[readingFeature] != "*" {
			b.WriteString(features[readingFeature])
			continue
		}
		b.WriteString(token.Surface)
	}
	return b.String()
}
