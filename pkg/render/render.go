package render

import (
	"errors"
	"fmt"

	"github.com/fbngrm/zh-flashcards/pkg/docx"
	"github.com/fbngrm/zh-flashcards/pkg/layout"
	"github.com/fbngrm/zh-flashcards/pkg/term"
	"golang.org/x/exp/slog"
)

// Renderer writes planned blocks into the first table of a template.
// The template table is sized for one block; the rows of later blocks
// are appended.
type Renderer struct {
	Styles    *StyleSet
	Layout    layout.Options
	RowHeight int // twips
}

func (r *Renderer) Render(doc *docx.Document, blocks []layout.Block) error {
	if r.Styles == nil || r.Styles.Tiers() == 0 {
		return errors.New("render: styles are not registered")
	}
	table, err := doc.Table(0)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if rows := table.Rows(); rows != r.Layout.RowsPerBlock() {
		slog.Warn("template table does not match the block size",
			"rows", rows, "rows_per_block", r.Layout.RowsPerBlock())
	}
	for _, b := range blocks {
		if b.Index > 0 {
			for i := 0; i < r.Layout.RowsPerBlock(); i++ {
				table.AddRow(docx.RowOptions{
					HeightTwips:  r.RowHeight,
					Exact:        true,
					VAlignCenter: true,
				})
			}
		}
		slog.Info("processing block", "index", b.Index, "terms", len(b.Terms))
		for i, t := range b.Terms {
			if err := r.renderTerm(table, i, b.Offset, t); err != nil {
				return fmt.Errorf("render term %q of block %d: %w", t.Text, b.Index, err)
			}
		}
	}
	return nil
}

func (r *Renderer) renderTerm(table *docx.Table, i, offset int, t term.Term) error {
	front := layout.Front(i, offset, r.Layout)
	cell, err := table.Cell(front.Row, front.Col)
	if err != nil {
		return err
	}
	p := cell.FirstParagraph()
	p.SetText(t.Text)
	p.SetAlignment(docx.AlignCenter)
	p.SetStyle(r.Styles.Tier(layout.FontTier(t.Text, r.Styles.Tiers())))

	back := layout.Back(i, offset, r.Layout)
	cell, err = table.Cell(back.Row, back.Col)
	if err != nil {
		return err
	}
	p = cell.FirstParagraph()
	if p.Text() != "" {
		p = cell.AddParagraph()
	}
	p.SetText(t.Transcription)
	p.SetStyle(r.Styles.transcription)
	p.SetAlignment(docx.AlignCenter)
	if t.Translation != "" {
		p.AddRun(" ("+t.Translation+")", r.Styles.translation)
	}
	if t.Example != "" {
		ex := cell.AddParagraph()
		ex.SetText(t.Example)
		ex.SetStyle(r.Styles.example)
		ex.SetAlignment(docx.AlignCenter)
	}
	return nil
}
