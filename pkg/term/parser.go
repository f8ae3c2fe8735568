package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/exp/slog"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Parse reads one input line of the form
//
//	text [(translation)] [example]
//
// and reports false for lines that hold no term. Fields are taken in
// order: the leading non-whitespace run is the text, a parenthesized
// segment directly after it is the translation and the rest is the
// example. A trailing " (...)" after the example is accepted as the
// translation too.
func Parse(line string) (Term, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Term{}, false
	}

	end := strings.IndexFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || isOpen(r)
	})
	if end == 0 {
		// a line starting with a paren has no term
		return Term{}, false
	}
	if end < 0 {
		return Term{Text: line}, true
	}

	t := Term{Text: line[:end]}
	rest := strings.TrimLeftFunc(line[end:], unicode.IsSpace)

	if inner, after, ok := cutParens(rest); ok {
		t.Translation = strings.TrimSpace(inner)
		rest = after
	}
	t.Example = strings.TrimSpace(rest)

	if t.Translation == "" {
		if example, gloss, ok := cutTrailingGloss(t.Example); ok {
			t.Example = example
			t.Translation = gloss
		}
	}
	return t, true
}

// cutParens splits s into the content of its leading parenthesized
// segment and the remainder. Nested parens are balanced; an unterminated
// segment is not cut.
func cutParens(s string) (inner, after string, ok bool) {
	first, size := firstRune(s)
	if !isOpen(first) {
		return "", s, false
	}
	depth := 0
	for i, r := range s {
		switch {
		case isOpen(r):
			depth++
		case isClose(r):
			depth--
			if depth == 0 {
				closeSize := len(string(r))
				return s[size:i], s[i+closeSize:], true
			}
		}
	}
	return "", s, false
}

// cutTrailingGloss splits "example (gloss)" into its parts. Only ASCII
// parens separated from the example by whitespace count, so full-width
// parens that belong to a Chinese sentence stay in the example.
func cutTrailingGloss(s string) (example, gloss string, ok bool) {
	if !strings.HasSuffix(s, ")") {
		return s, "", false
	}
	depth := 0
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case ')':
			depth++
		case '(':
			depth--
			if depth != 0 {
				continue
			}
			if i == 0 {
				// the whole example is parenthesized
				return s, "", false
			}
			before := s[:i]
			if r := lastRune(before); !unicode.IsSpace(r) {
				return s, "", false
			}
			return strings.TrimSpace(before), strings.TrimSpace(s[i+1 : len(s)-1]), true
		}
	}
	return s, "", false
}

func isOpen(r rune) bool  { return r == '(' || r == '（' }
func isClose(r rune) bool { return r == ')' || r == '）' }

func firstRune(s string) (rune, int) {
	for _, r := range s {
		return r, len(string(r))
	}
	return 0, 0
}

func lastRune(s string) rune {
	rs := []rune(s)
	if len(rs) == 0 {
		return 0
	}
	return rs[len(rs)-1]
}

// Load parses all terms from r. The input is UTF-8 and may start with a
// byte-order mark. Lines without a term are skipped. Lines have no length
// limit.
func Load(r io.Reader) ([]Term, error) {
	decoded := transform.NewReader(r, xunicode.BOMOverride(xunicode.UTF8.NewDecoder()))

	var terms []Term
	var skipped int
	reader := bufio.NewReader(decoded)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if t, ok := Parse(line); ok {
				terms = append(terms, t)
			} else {
				skipped++
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read input: %w", err)
		}
	}
	if skipped > 0 {
		slog.Debug("skipped lines without a term", "count", skipped)
	}
	return terms, nil
}

func LoadFile(path string) ([]Term, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open input file: %w", err)
	}
	defer f.Close()
	return Load(f)
}
