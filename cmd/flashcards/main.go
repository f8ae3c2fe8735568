package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fbngrm/zh-flashcards/pkg/config"
	"github.com/fbngrm/zh-flashcards/pkg/docx"
	"github.com/fbngrm/zh-flashcards/pkg/flashcards"
	"github.com/fbngrm/zh-flashcards/pkg/translate"
	"golang.org/x/exp/slog"
)

var configPath string
var input string
var template string
var outDir string
var scheme string
var initTemplate bool
var verbose bool

func main() {
	flag.StringVar(&configPath, "config", "", "path to the config file (default "+config.DefaultPath+" if present)")
	flag.StringVar(&input, "input", "", "vocabulary list, one term per line")
	flag.StringVar(&template, "template", "", "word template with the card table")
	flag.StringVar(&outDir, "out", "", "directory for the generated document")
	flag.StringVar(&scheme, "scheme", "", "transcription scheme: pinyin, cedict or kana")
	flag.BoolVar(&initTemplate, "init", false, "write a blank template and exit")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	path, explicit := config.DefaultPath, false
	if configPath != "" {
		path, explicit = configPath, true
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if input != "" {
		cfg.Input = input
	}
	if template != "" {
		cfg.Template = template
	}
	if outDir != "" {
		cfg.OutputDir = outDir
	}
	if scheme != "" {
		cfg.Scheme = scheme
		if err := cfg.Validate(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	if initTemplate {
		opts := docx.DefaultTemplateOptions()
		opts.Rows = cfg.Layout.BlockSize
		opts.Cols = cfg.Layout.Columns
		opts.RowHeight = int(cfg.Layout.RowHeight * docx.TwipsPerInch)
		if err := docx.WriteTemplate(cfg.Template, opts); err != nil {
			fmt.Printf("could not write template: %v\n", err)
			os.Exit(1)
		}
		slog.Info("wrote template", "path", cfg.Template)
		return
	}

	if err := run(context.Background(), cfg); err != nil {
		slog.Error("could not generate flashcards", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	transcriber, err := flashcards.NewTranscriber(cfg)
	if err != nil {
		return err
	}
	p := &flashcards.Pipeline{
		Config:      cfg,
		Transcriber: transcriber,
	}
	if cfg.Translate.Google {
		g, err := translate.NewGoogle(ctx, cfg.Translate.Language)
		if err != nil {
			return err
		}
		defer g.Close()
		p.Translator = g
	}

	out, err := p.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
