package translate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fbngrm/zh-flashcards/pkg/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranslator map[string]string

func (f fakeTranslator) Translate(_ context.Context, text string) (string, error) {
	if s, ok := f[text]; ok {
		return s, nil
	}
	return "", errors.New("unknown term")
}

func TestTranslations_LoadLookupWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "translations")
	require.NoError(t, os.WriteFile(path, []byte("高: tall\n"), 0644))

	tr, err := New(path, []string{"。"})
	require.NoError(t, err)
	assert.Equal(t, "tall", tr.Lookup("高"))
	assert.Equal(t, "tall", tr.Lookup("高。"))

	tr.Update("本來", "originally")
	require.NoError(t, tr.Write(path))

	reloaded, err := New(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Len())
	assert.Equal(t, "originally", reloaded.Lookup("本來"))
}

func TestTranslations_MissingFile(t *testing.T) {
	tr, err := New(filepath.Join(t.TempDir(), "missing"), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, tr.Len())
}

func TestEnrich(t *testing.T) {
	tr, err := New(filepath.Join(t.TempDir(), "missing"), nil)
	require.NoError(t, err)
	tr.Update("高", "tall")

	terms := []term.Term{
		{Text: "高"},
		{Text: "本來"},
		{Text: "跟屁蟲", Translation: "someone's shadow"},
		{Text: "悟空"},
	}
	fallback := fakeTranslator{"本來": "originally", "跟屁蟲": "tagalong"}

	got := Enrich(context.Background(), terms, tr, fallback)

	assert.Equal(t, "tall", got[0].Translation)
	assert.Equal(t, "originally", got[1].Translation)
	assert.Equal(t, "someone's shadow", got[2].Translation, "input translation must win")
	assert.Empty(t, got[3].Translation, "failed lookups stay empty")
	assert.Equal(t, "originally", tr.Lookup("本來"), "fallback results are added to the glossary")
}

func TestEnrich_NoFallback(t *testing.T) {
	tr, err := New(filepath.Join(t.TempDir(), "missing"), nil)
	require.NoError(t, err)

	got := Enrich(context.Background(), []term.Term{{Text: "高"}}, tr, nil)
	assert.Empty(t, got[0].Translation)
}
