package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fbngrm/zh-flashcards/pkg/config"
	"github.com/fbngrm/zh-flashcards/pkg/ignore"
	"github.com/fbngrm/zh-flashcards/pkg/term"
)

// Adds every term of a vocabulary list to the ignore file, so cards that
// were printed by other means are skipped on the next run.

var configPath string
var input string
var ignorePath string
var remove bool

func main() {
	flag.StringVar(&configPath, "config", "", "path to the config file (default "+config.DefaultPath+" if present)")
	flag.StringVar(&input, "i", "", "vocabulary list, one term per line")
	flag.StringVar(&ignorePath, "f", "", "ignore file")
	flag.BoolVar(&remove, "rm", false, "remove the terms instead of adding them")
	flag.Parse()

	path, explicit := config.DefaultPath, false
	if configPath != "" {
		path, explicit = configPath, true
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if input == "" {
		input = cfg.Input
	}
	if ignorePath == "" {
		ignorePath = cfg.Ignore.Path
	}
	if ignorePath == "" {
		fmt.Println("no ignore file given")
		os.Exit(1)
	}

	terms, err := term.LoadFile(input)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	ignored, err := ignore.Load(ignorePath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	l := len(ignored)
	for _, t := range terms {
		if remove {
			delete(ignored, t.Text)
			continue
		}
		ignored.Update(t.Text)
	}
	if err := ignored.Write(ignorePath); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf("ignore file has %d terms, was %d\n", len(ignored), l)
}
