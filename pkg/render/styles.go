package render

import (
	"fmt"

	"github.com/fbngrm/zh-flashcards/pkg/config"
	"github.com/fbngrm/zh-flashcards/pkg/docx"
)

const (
	termStyle          = "Term"
	transcriptionStyle = "Transcription"
	translationStyle   = "Translation"
	exampleStyle       = "Example"
	normalStyle        = "Normal"
)

// StyleSet holds the ids of the styles registered on one document. Every
// run registers a fresh set on a freshly opened template.
type StyleSet struct {
	cfg           config.StyleConfig
	term          string
	tiers         []string
	transcription string
	translation   string
	example       string
}

func NewStyleSet(cfg config.StyleConfig) *StyleSet {
	return &StyleSet{cfg: cfg}
}

func tierName(i int) string {
	return fmt.Sprintf("%s Size %d", termStyle, i+1)
}

// Register adds all styles to doc. A style that already exists means
// the template was modified and is reported as an error.
func (s *StyleSet) Register(doc *docx.Document) error {
	styles := doc.Styles()
	add := func(st docx.Style) (string, error) {
		id, err := styles.Add(st)
		if err != nil {
			return "", fmt.Errorf("could not register style: %w", err)
		}
		return id, nil
	}

	var err error
	if s.term, err = add(docx.Style{Name: termStyle, Font: s.cfg.Font}); err != nil {
		return err
	}
	s.tiers = make([]string, 0, len(s.cfg.TermSizes))
	for i, size := range s.cfg.TermSizes {
		id, err := add(docx.Style{Name: tierName(i), BasedOn: termStyle, SizePt: size})
		if err != nil {
			return err
		}
		s.tiers = append(s.tiers, id)
	}
	// the base style of the template may be missing, e.g. in hand-made templates
	transcriptionBase := normalStyle
	if _, ok := styles.Lookup(normalStyle); !ok {
		transcriptionBase = ""
	}
	if s.transcription, err = add(docx.Style{Name: transcriptionStyle, BasedOn: transcriptionBase, SizePt: s.cfg.TranscriptionSize}); err != nil {
		return err
	}
	if s.translation, err = add(docx.Style{Name: translationStyle, Type: docx.CharacterStyle, SizePt: s.cfg.TranslationSize}); err != nil {
		return err
	}
	if s.example, err = add(docx.Style{Name: exampleStyle, BasedOn: termStyle, SizePt: s.cfg.ExampleSize}); err != nil {
		return err
	}
	return nil
}

func (s *StyleSet) Tiers() int {
	return len(s.tiers)
}

// Tier returns the term style id for a tier index, clamped to the
// registered tiers.
func (s *StyleSet) Tier(i int) string {
	if len(s.tiers) == 0 {
		return s.term
	}
	if i < 0 {
		i = 0
	}
	if i >= len(s.tiers) {
		i = len(s.tiers) - 1
	}
	return s.tiers[i]
}
