package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/fbngrm/zh-flashcards/pkg/layout"
	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when present; without it the defaults below apply.
const DefaultPath = "flashcards.yaml"

const (
	SchemePinyin = "pinyin"
	SchemeCedict = "cedict"
	SchemeKana   = "kana"
)

type Config struct {
	Input     string `yaml:"input"      env-default:"flashcard-input.txt"`
	Template  string `yaml:"template"   env-default:"FlashcardTemplate.docx"`
	OutputDir string `yaml:"output_dir" env-default:"."`
	// Scheme selects the transcription: pinyin, cedict or kana.
	Scheme string `yaml:"scheme" env-default:"pinyin"`

	Layout    LayoutConfig    `yaml:"layout"`
	Styles    StyleConfig     `yaml:"styles"`
	Pinyin    PinyinConfig    `yaml:"pinyin"`
	Translate TranslateConfig `yaml:"translate"`
	Frequency FrequencyConfig `yaml:"frequency"`
	Ignore    IgnoreConfig    `yaml:"ignore"`
}

type LayoutConfig struct {
	BlockSize     int     `yaml:"block_size"      env-default:"10"`
	Columns       int     `yaml:"columns"         env-default:"2"`
	BackRowOffset int     `yaml:"back_row_offset" env-default:"5"`
	RowHeight     float64 `yaml:"row_height"      env-default:"2"` // inches
}

func (l LayoutConfig) Options() layout.Options {
	return layout.Options{
		BlockSize:     l.BlockSize,
		Columns:       l.Columns,
		BackRowOffset: l.BackRowOffset,
	}
}

type StyleConfig struct {
	Font string `yaml:"font" env-default:"DFKai-SB"`
	// TermSizes are the term font sizes by text length, largest first.
	TermSizes         []float64 `yaml:"term_sizes"         env-default:"115,100,80,60,45"`
	TranscriptionSize float64   `yaml:"transcription_size" env-default:"25"`
	TranslationSize   float64   `yaml:"translation_size"   env-default:"14"`
	ExampleSize       float64   `yaml:"example_size"       env-default:"20"`
}

type PinyinConfig struct {
	// Overrides is a yaml file of hand-corrected readings.
	Overrides string `yaml:"overrides"`
	Separator string `yaml:"separator"`
	// Cedict is the CC-CEDICT file used by the cedict scheme.
	Cedict string `yaml:"cedict"`
}

type TranslateConfig struct {
	// Glossary is a yaml file of term translations used for terms
	// without a translation in the input.
	Glossary string `yaml:"glossary"`
	// Google enables Cloud Translation for terms the glossary misses.
	Google   bool   `yaml:"google"`
	Language string `yaml:"language" env-default:"en-US"`
}

type FrequencyConfig struct {
	// Path is a word frequency list with one "word:count" per line.
	Path     string `yaml:"path"`
	Examples int    `yaml:"examples" env-default:"5"`
}

type IgnoreConfig struct {
	Path string `yaml:"path"`
	// Update adds the printed terms to the ignore file.
	Update bool `yaml:"update"`
}

// Load reads the configuration file at path on top of the defaults. A
// missing file is only an error if explicit is set.
func Load(path string, explicit bool) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Input == "" {
		errs = append(errs, errors.New("input must be set"))
	}
	if c.Template == "" {
		errs = append(errs, errors.New("template must be set"))
	}
	switch c.Scheme {
	case SchemePinyin, SchemeKana:
	case SchemeCedict:
		if c.Pinyin.Cedict == "" {
			errs = append(errs, errors.New("scheme cedict needs pinyin.cedict"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown scheme %q", c.Scheme))
	}
	if err := c.Layout.Options().Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Layout.RowHeight <= 0 {
		errs = append(errs, errors.New("layout.row_height must be positive"))
	}
	if len(c.Styles.TermSizes) == 0 {
		errs = append(errs, errors.New("styles.term_sizes must not be empty"))
	}
	for _, size := range append([]float64{c.Styles.TranscriptionSize, c.Styles.TranslationSize, c.Styles.ExampleSize}, c.Styles.TermSizes...) {
		if size <= 0 {
			errs = append(errs, fmt.Errorf("font size %v must be positive", size))
			break
		}
	}
	if c.Frequency.Path != "" && c.Frequency.Examples <= 0 {
		errs = append(errs, errors.New("frequency.examples must be positive"))
	}
	if c.Ignore.Update && c.Ignore.Path == "" {
		errs = append(errs, errors.New("ignore.update needs ignore.path"))
	}
	return errors.Join(errs...)
}
