// Package layout places terms on the double-sided card grid.
//
// A sheet holds one block of terms. The front half of the table has the
// terms, the back half the transcriptions. Back cells are shifted by one
// column so that a card's back lands behind its front once the sheet is
// flipped along its long edge.
package layout

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/fbngrm/zh-flashcards/pkg/term"
)

var ErrInvalidOptions = errors.New("invalid layout options")

type Options struct {
	// BlockSize is the number of terms on one sheet.
	BlockSize int
	// Columns is the number of cards per table row.
	Columns int
	// BackRowOffset is the number of rows between a front cell and its
	// back cell.
	BackRowOffset int
}

func DefaultOptions() Options {
	return Options{
		BlockSize:     10,
		Columns:       2,
		BackRowOffset: 5,
	}
}

// Validate checks that the front rows and the back rows of a block do not
// overlap and that both fit into the rows of one block.
func (o Options) Validate() error {
	if o.BlockSize <= 0 || o.Columns <= 0 || o.BackRowOffset <= 0 {
		return fmt.Errorf("%w: block size %d, columns %d, back row offset %d",
			ErrInvalidOptions, o.BlockSize, o.Columns, o.BackRowOffset)
	}
	rows := o.frontRows()
	if o.BackRowOffset < rows {
		return fmt.Errorf("%w: back row offset %d overlaps the %d front rows",
			ErrInvalidOptions, o.BackRowOffset, rows)
	}
	if o.BackRowOffset+rows > o.RowsPerBlock() {
		return fmt.Errorf("%w: back rows %d to %d exceed the %d rows of a block",
			ErrInvalidOptions, o.BackRowOffset, o.BackRowOffset+rows-1, o.RowsPerBlock())
	}
	return nil
}

// frontRows is the number of rows the terms of a full block take.
func (o Options) frontRows() int {
	return (o.BlockSize + o.Columns - 1) / o.Columns
}

// RowsPerBlock is the number of table rows one block occupies. Block k
// starts at row k*BlockSize*Columns/Columns.
func (o Options) RowsPerBlock() int {
	return o.BlockSize
}

type Coord struct {
	Row int
	Col int
}

type Block struct {
	Index  int
	Offset int
	Terms  []term.Term
}

// Plan splits terms into blocks of opts.BlockSize in input order. The
// last block may be shorter.
func Plan(terms []term.Term, opts Options) ([]Block, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	n := (len(terms) + opts.BlockSize - 1) / opts.BlockSize
	blocks := make([]Block, 0, n)
	for i := 0; i < n; i++ {
		end := (i + 1) * opts.BlockSize
		if end > len(terms) {
			end = len(terms)
		}
		blocks = append(blocks, Block{
			Index:  i,
			Offset: i * opts.BlockSize * opts.Columns,
			Terms:  terms[i*opts.BlockSize : end],
		})
	}
	return blocks, nil
}

// Front is the cell of the i-th term of a block.
func Front(i, offset int, opts Options) Coord {
	return Coord{
		Row: (i + offset) / opts.Columns,
		Col: i % opts.Columns,
	}
}

// Back is the cell that holds the transcription of the i-th term. The
// column is rotated by one against Front.
func Back(i, offset int, opts Options) Coord {
	return Coord{
		Row: (i+offset)/opts.Columns + opts.BackRowOffset,
		Col: (i + 1) % opts.Columns,
	}
}

// FontTier maps the rune length of text to an index into a table of
// tiers font sizes, largest first. Texts longer than the table use the
// smallest size.
func FontTier(text string, tiers int) int {
	n := utf8.RuneCountInString(text)
	switch {
	case n <= 1 || tiers <= 1:
		return 0
	case n > tiers:
		return tiers - 1
	default:
		return n - 1
	}
}
