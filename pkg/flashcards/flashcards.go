// Package flashcards runs the whole conversion from a vocabulary list to
// a printable card document.
package flashcards

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fbngrm/zh-flashcards/pkg/config"
	"github.com/fbngrm/zh-flashcards/pkg/docx"
	"github.com/fbngrm/zh-flashcards/pkg/frequency"
	"github.com/fbngrm/zh-flashcards/pkg/ignore"
	"github.com/fbngrm/zh-flashcards/pkg/kana"
	"github.com/fbngrm/zh-flashcards/pkg/layout"
	"github.com/fbngrm/zh-flashcards/pkg/pinyin"
	"github.com/fbngrm/zh-flashcards/pkg/render"
	"github.com/fbngrm/zh-flashcards/pkg/term"
	"github.com/fbngrm/zh-flashcards/pkg/transcribe"
	"github.com/fbngrm/zh-flashcards/pkg/translate"
	"golang.org/x/exp/slog"
)

const timestampLayout = "20060102_15-04-05"

var (
	ErrMissingInput    = errors.New("input file not found")
	ErrMissingTemplate = errors.New("template file not found")
)

// charsToRemove are ignored when terms are looked up in the glossary.
var charsToRemove = []string{"!", "！", "？", "?", "，", ",", ".", "。"}

type Pipeline struct {
	Config      *config.Config
	Transcriber transcribe.Transcriber
	// Translator is optional and only asked for terms the glossary lacks.
	Translator translate.Translator
	Now        func() time.Time
}

// NewTranscriber builds the transcriber for the configured scheme.
func NewTranscriber(cfg *config.Config) (transcribe.Transcriber, error) {
	switch cfg.Scheme {
	case config.SchemePinyin:
		t := &pinyin.Transcriber{Separator: cfg.Pinyin.Separator}
		if cfg.Pinyin.Overrides != "" {
			overrides, err := pinyin.Load(cfg.Pinyin.Overrides)
			if err != nil {
				return nil, err
			}
			t.Overrides = overrides
		}
		return t, nil
	case config.SchemeCedict:
		return pinyin.NewCedict(cfg.Pinyin.Cedict)
	case config.SchemeKana:
		return kana.New()
	}
	return nil, fmt.Errorf("unknown scheme %q", cfg.Scheme)
}

// OutputPath names the output file after now. If the name is taken, a
// counter is appended so an earlier file is never replaced.
func OutputPath(dir string, now time.Time) string {
	base := "flashcards-" + now.Format(timestampLayout)
	path := filepath.Join(dir, base+".docx")
	for n := 1; exists(path); n++ {
		path = filepath.Join(dir, base+"-"+strconv.Itoa(n)+".docx")
	}
	return path
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Run converts the input file and returns the path of the saved
// document. On error no document is written. Failures to write the
// glossary or the ignore file back are only logged.
func (p *Pipeline) Run(ctx context.Context) (string, error) {
	cfg := p.Config
	if !exists(cfg.Input) {
		return "", fmt.Errorf("%w: %s", ErrMissingInput, cfg.Input)
	}
	if !exists(cfg.Template) {
		return "", fmt.Errorf("%w: %s", ErrMissingTemplate, cfg.Template)
	}

	terms, err := term.LoadFile(cfg.Input)
	if err != nil {
		return "", err
	}
	slog.Info("loaded terms", "count", len(terms), "path", cfg.Input)

	var ignored ignore.Ignored
	if cfg.Ignore.Path != "" {
		if ignored, err = ignore.Load(cfg.Ignore.Path); err != nil {
			return "", err
		}
		before := len(terms)
		terms = ignored.Filter(terms)
		slog.Info("dropped ignored terms", "count", before-len(terms))
	}
	if len(terms) == 0 {
		slog.Warn("no terms to print", "path", cfg.Input)
	}

	terms = transcribe.Enrich(terms, p.Transcriber)

	var glossary *translate.Translations
	if cfg.Translate.Glossary != "" || p.Translator != nil {
		if glossary, err = translate.New(cfg.Translate.Glossary, charsToRemove); err != nil {
			return "", err
		}
		terms = translate.Enrich(ctx, terms, glossary, p.Translator)
	}

	if cfg.Frequency.Path != "" {
		index, err := frequency.NewWordIndex(cfg.Frequency.Path)
		if err != nil {
			return "", fmt.Errorf("could not load word frequencies: %w", err)
		}
		terms = index.Enrich(terms, cfg.Frequency.Examples)
	}

	opts := cfg.Layout.Options()
	blocks, err := layout.Plan(terms, opts)
	if err != nil {
		return "", err
	}

	doc, err := docx.Open(cfg.Template)
	if err != nil {
		return "", fmt.Errorf("could not open template: %w", err)
	}
	styles := render.NewStyleSet(cfg.Styles)
	if err := styles.Register(doc); err != nil {
		return "", err
	}
	r := render.Renderer{
		Styles:    styles,
		Layout:    opts,
		RowHeight: int(cfg.Layout.RowHeight * docx.TwipsPerInch),
	}
	if err := r.Render(doc, blocks); err != nil {
		return "", err
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	out := OutputPath(cfg.OutputDir, now())
	if err := doc.Save(out); err != nil {
		return "", err
	}
	slog.Info("saved flashcards", "path", out, "terms", len(terms), "pages", len(blocks))

	// dictionaries are only written once the document exists; failing to
	// write them does not fail the run
	if glossary != nil && cfg.Translate.Glossary != "" {
		if err := glossary.Write(cfg.Translate.Glossary); err != nil {
			slog.Warn("could not update glossary", "path", cfg.Translate.Glossary, "err", err)
		}
	}
	if cfg.Ignore.Update {
		for _, t := range terms {
			ignored.Update(t.Text)
		}
		if err := ignored.Write(cfg.Ignore.Path); err != nil {
			slog.Warn("could not update ignore file", "path", cfg.Ignore.Path, "err", err)
		}
	}
	return out, nil
}
