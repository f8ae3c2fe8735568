package docx

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// TwipsPerInch converts inches to the twentieths of a point used for
// row heights and column widths.
const TwipsPerInch = 1440

type Table struct {
	el *etree.Element
}

type RowOptions struct {
	HeightTwips  int
	Exact        bool
	VAlignCenter bool
}

func (t *Table) rows() []*etree.Element {
	return t.el.SelectElements("w:tr")
}

func (t *Table) Rows() int {
	return len(t.rows())
}

// Cols is the number of grid columns.
func (t *Table) Cols() int {
	if grid := t.el.SelectElement("w:tblGrid"); grid != nil {
		if n := len(grid.SelectElements("w:gridCol")); n > 0 {
			return n
		}
	}
	rows := t.rows()
	if len(rows) == 0 {
		return 0
	}
	return len(rows[0].SelectElements("w:tc"))
}

func (t *Table) Cell(row, col int) (*Cell, error) {
	rows := t.rows()
	if row < 0 || row >= len(rows) {
		return nil, fmt.Errorf("%w: row %d of %d", ErrCellRange, row, len(rows))
	}
	cells := rows[row].SelectElements("w:tc")
	if col < 0 || col >= len(cells) {
		return nil, fmt.Errorf("%w: column %d of %d in row %d", ErrCellRange, col, len(cells), row)
	}
	return &Cell{el: cells[col]}, nil
}

// AddRow appends a row with one empty cell per grid column.
func (t *Table) AddRow(opts RowOptions) {
	var widths []string
	if grid := t.el.SelectElement("w:tblGrid"); grid != nil {
		for _, col := range grid.SelectElements("w:gridCol") {
			widths = append(widths, col.SelectAttrValue("w:w", ""))
		}
	}
	if len(widths) == 0 {
		widths = make([]string, t.Cols())
	}

	tr := t.el.CreateElement("w:tr")
	if opts.HeightTwips > 0 {
		height := tr.CreateElement("w:trPr").CreateElement("w:trHeight")
		height.CreateAttr("w:val", strconv.Itoa(opts.HeightTwips))
		if opts.Exact {
			height.CreateAttr("w:hRule", "exact")
		} else {
			height.CreateAttr("w:hRule", "atLeast")
		}
	}
	for _, w := range widths {
		tc := tr.CreateElement("w:tc")
		tcPr := tc.CreateElement("w:tcPr")
		if w != "" {
			tcW := tcPr.CreateElement("w:tcW")
			tcW.CreateAttr("w:w", w)
			tcW.CreateAttr("w:type", "dxa")
		}
		if opts.VAlignCenter {
			tcPr.CreateElement("w:vAlign").CreateAttr("w:val", "center")
		}
		tc.CreateElement("w:p")
	}
}

// RowHeight returns the height and height rule of a row, zero and ""
// when the row has none.
func (t *Table) RowHeight(row int) (int, string) {
	rows := t.rows()
	if row < 0 || row >= len(rows) {
		return 0, ""
	}
	trPr := rows[row].SelectElement("w:trPr")
	if trPr == nil {
		return 0, ""
	}
	h := trPr.SelectElement("w:trHeight")
	if h == nil {
		return 0, ""
	}
	twips, _ := strconv.Atoi(h.SelectAttrValue("w:val", "0"))
	return twips, h.SelectAttrValue("w:hRule", "")
}

type Cell struct {
	el *etree.Element
}

func (c *Cell) Paragraphs() []*Paragraph {
	var ps []*Paragraph
	for _, el := range c.el.SelectElements("w:p") {
		ps = append(ps, &Paragraph{el: el})
	}
	return ps
}

// FirstParagraph returns the first paragraph of the cell, adding one if
// the cell has none.
func (c *Cell) FirstParagraph() *Paragraph {
	if el := c.el.SelectElement("w:p"); el != nil {
		return &Paragraph{el: el}
	}
	return c.AddParagraph()
}

func (c *Cell) AddParagraph() *Paragraph {
	return &Paragraph{el: c.el.CreateElement("w:p")}
}

// VAlign reports the vertical alignment of the cell, or "" if unset.
func (c *Cell) VAlign() string {
	if tcPr := c.el.SelectElement("w:tcPr"); tcPr != nil {
		if v := tcPr.SelectElement("w:vAlign"); v != nil {
			return v.SelectAttrValue("w:val", "")
		}
	}
	return ""
}
