package translate

import (
	"context"
	"fmt"
	"strings"

	google_translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
)

// Google translates terms with the Cloud Translation API. Credentials are
// picked up from the environment by the client library.
type Google struct {
	client *google_translate.Client
	target language.Tag
}

func NewGoogle(ctx context.Context, targetLanguage string) (*Google, error) {
	lang, err := language.Parse(targetLanguage)
	if err != nil {
		return nil, fmt.Errorf("language.Parse: %w", err)
	}
	client, err := google_translate.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not create translate client: %w", err)
	}
	return &Google{client: client, target: lang}, nil
}

func (g *Google) Translate(ctx context.Context, text string) (string, error) {
	resp, err := g.client.Translate(ctx, []string{text}, g.target, nil)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	if len(resp) == 0 {
		return "", fmt.Errorf("translate returned empty response to text: %s", text)
	}
	return strings.ReplaceAll(resp[0].Text, "&#39;", "'"), nil
}

func (g *Google) Close() error {
	return g.client.Close()
}
