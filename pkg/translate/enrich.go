package translate

import (
	"context"

	"github.com/fbngrm/zh-flashcards/pkg/term"
	"golang.org/x/exp/slog"
)

// Translator looks up a translation that the glossary does not have.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Enrich fills in missing translations, first from the glossary, then
// from fallback if it is not nil. Translations written in the input are
// never replaced. New translations from fallback are added to the
// glossary. A failed lookup leaves the translation empty.
func Enrich(ctx context.Context, terms []term.Term, t *Translations, fallback Translator) []term.Term {
	enriched := make([]term.Term, len(terms))
	for i, tt := range terms {
		enriched[i] = tt
		if tt.Translation != "" {
			continue
		}
		if translation := t.Lookup(tt.Text); translation != "" {
			enriched[i].Translation = translation
			continue
		}
		if fallback == nil {
			continue
		}
		translation, err := fallback.Translate(ctx, tt.Text)
		if err != nil {
			slog.Warn("could not translate term", "term", tt.Text, "err", err)
			continue
		}
		slog.Debug("translated term", "term", tt.Text, "translation", translation)
		t.Update(tt.Text, translation)
		enriched[i].Translation = translation
	}
	return enriched
}
