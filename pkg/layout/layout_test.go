package layout

import (
	"fmt"
	"testing"

	"github.com/fbngrm/zh-flashcards/pkg/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func terms(n int) []term.Term {
	ts := make([]term.Term, n)
	for i := range ts {
		ts[i] = term.Term{Text: fmt.Sprintf("t%d", i)}
	}
	return ts
}

func TestPlan(t *testing.T) {
	blocks, err := Plan(terms(25), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	assert.Len(t, blocks[0].Terms, 10)
	assert.Len(t, blocks[1].Terms, 10)
	assert.Len(t, blocks[2].Terms, 5)
	assert.Equal(t, 0, blocks[0].Offset)
	assert.Equal(t, 20, blocks[1].Offset)
	assert.Equal(t, 40, blocks[2].Offset)
}

func TestPlan_CountAndOrder(t *testing.T) {
	for _, size := range []int{2, 4, 10} {
		for l := 0; l <= 31; l++ {
			in := terms(l)
			opts := Options{BlockSize: size, Columns: 2, BackRowOffset: (size + 1) / 2}
			blocks, err := Plan(in, opts)
			require.NoError(t, err)

			assert.Len(t, blocks, (l+size-1)/size, "L=%d B=%d", l, size)
			var out []term.Term
			for i, b := range blocks {
				assert.Equal(t, i, b.Index)
				assert.Equal(t, i*size*2, b.Offset)
				out = append(out, b.Terms...)
			}
			if l == 0 {
				assert.Empty(t, out)
				continue
			}
			assert.Equal(t, in, out)
		}
	}
}

func TestPlan_InvalidOptions(t *testing.T) {
	_, err := Plan(terms(3), Options{BlockSize: 0, Columns: 2, BackRowOffset: 5})
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		ok   bool
	}{
		{name: "default", opts: DefaultOptions(), ok: true},
		{name: "three columns", opts: Options{BlockSize: 9, Columns: 3, BackRowOffset: 3}, ok: true},
		{name: "odd block", opts: Options{BlockSize: 3, Columns: 2, BackRowOffset: 2}, ok: false},
		{name: "odd block wide", opts: Options{BlockSize: 5, Columns: 2, BackRowOffset: 3}, ok: false},
		{name: "back overlaps front", opts: Options{BlockSize: 10, Columns: 2, BackRowOffset: 4}, ok: false},
		{name: "back past block", opts: Options{BlockSize: 10, Columns: 2, BackRowOffset: 6}, ok: false},
		{name: "single card", opts: Options{BlockSize: 1, Columns: 2, BackRowOffset: 1}, ok: false},
		{name: "zero columns", opts: Options{BlockSize: 10, Columns: 0, BackRowOffset: 5}, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

// No back cell of a valid layout may share a cell with a front cell.
func TestFrontBack_NoOverlap(t *testing.T) {
	for _, opts := range []Options{
		DefaultOptions(),
		{BlockSize: 4, Columns: 2, BackRowOffset: 2},
		{BlockSize: 9, Columns: 3, BackRowOffset: 3},
		{BlockSize: 12, Columns: 3, BackRowOffset: 6},
	} {
		require.NoError(t, opts.Validate())
		for block := 0; block < 2; block++ {
			offset := block * opts.BlockSize * opts.Columns
			fronts := make(map[Coord]bool)
			for i := 0; i < opts.BlockSize; i++ {
				fronts[Front(i, offset, opts)] = true
			}
			for i := 0; i < opts.BlockSize; i++ {
				b := Back(i, offset, opts)
				assert.False(t, fronts[b], "opts %+v: back of term %d at %v covers a front", opts, i, b)
				assert.Less(t, b.Row, (block+1)*opts.RowsPerBlock())
			}
		}
	}
}

func TestFrontBack(t *testing.T) {
	opts := DefaultOptions()
	tests := []struct {
		i, offset   int
		front, back Coord
	}{
		{i: 0, offset: 0, front: Coord{0, 0}, back: Coord{5, 1}},
		{i: 1, offset: 0, front: Coord{0, 1}, back: Coord{5, 0}},
		{i: 2, offset: 0, front: Coord{1, 0}, back: Coord{6, 1}},
		{i: 9, offset: 0, front: Coord{4, 1}, back: Coord{9, 0}},
		{i: 0, offset: 20, front: Coord{10, 0}, back: Coord{15, 1}},
		{i: 9, offset: 20, front: Coord{14, 1}, back: Coord{19, 0}},
		{i: 4, offset: 40, front: Coord{22, 0}, back: Coord{27, 1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.front, Front(tt.i, tt.offset, opts), "front i=%d offset=%d", tt.i, tt.offset)
		assert.Equal(t, tt.back, Back(tt.i, tt.offset, opts), "back i=%d offset=%d", tt.i, tt.offset)
		// pure: same inputs, same result
		assert.Equal(t, Front(tt.i, tt.offset, opts), Front(tt.i, tt.offset, opts))
		assert.Equal(t, Back(tt.i, tt.offset, opts), Back(tt.i, tt.offset, opts))
	}
}

func TestFrontBack_StayInsideBlock(t *testing.T) {
	opts := DefaultOptions()
	for block := 0; block < 3; block++ {
		offset := block * opts.BlockSize * opts.Columns
		first := block * opts.RowsPerBlock()
		last := first + opts.RowsPerBlock() - 1
		for i := 0; i < opts.BlockSize; i++ {
			f, b := Front(i, offset, opts), Back(i, offset, opts)
			assert.GreaterOrEqual(t, f.Row, first)
			assert.LessOrEqual(t, b.Row, last)
			assert.Less(t, f.Row, first+opts.BackRowOffset)
		}
	}
}

func TestFontTier(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "高", want: 0},
		{text: "本來", want: 1},
		{text: "跟屁蟲", want: 2},
		{text: "一二三四", want: 3},
		{text: "一二三四五", want: 4},
		{text: "一二三四五六", want: 4},
		{text: "一二三四五六七八九十", want: 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FontTier(tt.text, 5), "text %q", tt.text)
	}
}
