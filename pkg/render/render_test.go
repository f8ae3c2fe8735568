package render

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/fbngrm/zh-flashcards/pkg/config"
	"github.com/fbngrm/zh-flashcards/pkg/docx"
	"github.com/fbngrm/zh-flashcards/pkg/layout"
	"github.com/fbngrm/zh-flashcards/pkg/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func styleConfig() config.StyleConfig {
	return config.StyleConfig{
		Font:              "DFKai-SB",
		TermSizes:         []float64{115, 100, 80, 60, 45},
		TranscriptionSize: 25,
		TranslationSize:   14,
		ExampleSize:       20,
	}
}

func newTemplate(t *testing.T, rows int) *docx.Document {
	t.Helper()
	opts := docx.DefaultTemplateOptions()
	opts.Rows = rows
	b, err := docx.NewTemplate(opts)
	require.NoError(t, err)
	d, err := docx.OpenReader(bytes.NewReader(b), int64(len(b)))
	require.NoError(t, err)
	return d
}

func newRenderer(t *testing.T, d *docx.Document) *Renderer {
	t.Helper()
	styles := NewStyleSet(styleConfig())
	require.NoError(t, styles.Register(d))
	return &Renderer{
		Styles:    styles,
		Layout:    layout.DefaultOptions(),
		RowHeight: 2 * docx.TwipsPerInch,
	}
}

func cellParagraphs(t *testing.T, table *docx.Table, c layout.Coord) []*docx.Paragraph {
	t.Helper()
	cell, err := table.Cell(c.Row, c.Col)
	require.NoError(t, err)
	return cell.Paragraphs()
}

func TestStyleSet_Register(t *testing.T) {
	d := newTemplate(t, 10)
	styles := NewStyleSet(styleConfig())
	require.NoError(t, styles.Register(d))

	assert.Equal(t, 5, styles.Tiers())
	assert.Equal(t, "TermSize1", styles.Tier(0))
	assert.Equal(t, "TermSize5", styles.Tier(4))
	assert.Equal(t, "TermSize5", styles.Tier(9), "tiers clamp to the smallest size")

	for _, name := range []string{"Term", "Term Size 3", "Transcription", "Translation", "Example"} {
		_, ok := d.Styles().Lookup(name)
		assert.True(t, ok, "style %q", name)
	}
}

func TestStyleSet_RegisterTwice(t *testing.T) {
	d := newTemplate(t, 10)
	require.NoError(t, NewStyleSet(styleConfig()).Register(d))

	err := NewStyleSet(styleConfig()).Register(d)
	assert.ErrorIs(t, err, docx.ErrStyleExists)
}

func TestStyleSet_FreshPerDocument(t *testing.T) {
	for i := 0; i < 2; i++ {
		assert.NoError(t, NewStyleSet(styleConfig()).Register(newTemplate(t, 10)))
	}
}

func TestRender_SingleBlock(t *testing.T) {
	d := newTemplate(t, 10)
	r := newRenderer(t, d)
	terms := []term.Term{
		{Text: "高", Transcription: "gāo", Example: "大人在高高的山。"},
		{Text: "本來", Transcription: "běnlái"},
		{Text: "跟屁蟲", Transcription: "gēnpìchóng", Translation: "someone's shadow", Example: "我的妹妹是跟屁蟲"},
	}
	blocks, err := layout.Plan(terms, r.Layout)
	require.NoError(t, err)

	require.NoError(t, r.Render(d, blocks))

	table, err := d.Table(0)
	require.NoError(t, err)
	assert.Equal(t, 10, table.Rows(), "the first block uses the template rows")

	front := cellParagraphs(t, table, layout.Coord{Row: 0, Col: 0})
	require.Len(t, front, 1)
	assert.Equal(t, "高", front[0].Text())
	assert.Equal(t, "TermSize1", front[0].Style())
	assert.Equal(t, docx.AlignCenter, front[0].Alignment())

	back := cellParagraphs(t, table, layout.Coord{Row: 5, Col: 1})
	require.Len(t, back, 2)
	assert.Equal(t, "gāo", back[0].Text())
	assert.Equal(t, "Transcription", back[0].Style())
	assert.Equal(t, "大人在高高的山。", back[1].Text())
	assert.Equal(t, "Example", back[1].Style())

	front = cellParagraphs(t, table, layout.Coord{Row: 0, Col: 1})
	assert.Equal(t, "本來", front[0].Text())
	assert.Equal(t, "TermSize2", front[0].Style())
	back = cellParagraphs(t, table, layout.Coord{Row: 5, Col: 0})
	require.Len(t, back, 1)
	assert.Equal(t, "běnlái", back[0].Text())

	back = cellParagraphs(t, table, layout.Coord{Row: 6, Col: 1})
	require.Len(t, back, 2)
	assert.Equal(t, "gēnpìchóng (someone's shadow)", back[0].Text())
	assert.Equal(t, []string{"", "Translation"}, back[0].RunStyles())
	assert.Equal(t, "我的妹妹是跟屁蟲", back[1].Text())
	assert.Equal(t, "TermSize3", cellParagraphs(t, table, layout.Coord{Row: 1, Col: 0})[0].Style())
}

func TestRender_MultipleBlocks(t *testing.T) {
	d := newTemplate(t, 10)
	r := newRenderer(t, d)
	terms := make([]term.Term, 25)
	for i := range terms {
		terms[i] = term.Term{Text: fmt.Sprintf("詞%d", i), Transcription: fmt.Sprintf("cí%d", i)}
	}
	blocks, err := layout.Plan(terms, r.Layout)
	require.NoError(t, err)

	require.NoError(t, r.Render(d, blocks))

	table, err := d.Table(0)
	require.NoError(t, err)
	assert.Equal(t, 30, table.Rows())

	for row := 10; row < 30; row++ {
		height, rule := table.RowHeight(row)
		assert.Equal(t, 2*docx.TwipsPerInch, height)
		assert.Equal(t, "exact", rule)
		cell, err := table.Cell(row, 0)
		require.NoError(t, err)
		assert.Equal(t, "center", cell.VAlign())
	}

	for _, b := range blocks {
		for i, tt := range b.Terms {
			f := cellParagraphs(t, table, layout.Front(i, b.Offset, r.Layout))
			assert.Equal(t, tt.Text, f[0].Text())
			bk := cellParagraphs(t, table, layout.Back(i, b.Offset, r.Layout))
			assert.Equal(t, tt.Transcription, bk[0].Text())
		}
	}
	assert.Equal(t, "詞20", cellParagraphs(t, table, layout.Coord{Row: 20, Col: 0})[0].Text())
	assert.Equal(t, "cí24", cellParagraphs(t, table, layout.Coord{Row: 27, Col: 1})[0].Text())
}

func TestRender_TemplateTooSmall(t *testing.T) {
	d := newTemplate(t, 4)
	r := newRenderer(t, d)
	blocks, err := layout.Plan([]term.Term{{Text: "高", Transcription: "gāo"}}, r.Layout)
	require.NoError(t, err)

	err = r.Render(d, blocks)
	assert.ErrorIs(t, err, docx.ErrCellRange)
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestRender_WarnsOnTemplateSize(t *testing.T) {
	const warning = "template table does not match the block size"
	terms := []term.Term{{Text: "高", Transcription: "gāo"}}

	for _, tt := range []struct {
		rows int
		warn bool
	}{
		{rows: 10, warn: false},
		{rows: 12, warn: true},
	} {
		logs := captureLog(t)
		d := newTemplate(t, tt.rows)
		r := newRenderer(t, d)
		blocks, err := layout.Plan(terms, r.Layout)
		require.NoError(t, err)
		require.NoError(t, r.Render(d, blocks))

		if tt.warn {
			assert.Contains(t, logs.String(), warning, "rows %d", tt.rows)
		} else {
			assert.NotContains(t, logs.String(), warning, "rows %d", tt.rows)
		}
	}
}

func TestRender_Unregistered(t *testing.T) {
	d := newTemplate(t, 10)
	r := &Renderer{Styles: NewStyleSet(styleConfig()), Layout: layout.DefaultOptions()}
	assert.Error(t, r.Render(d, nil))
}
