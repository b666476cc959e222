package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// Board is a single minesweeper game. Coordinates in the exported API are
// 1-based, x being the column and y the row. A Board is not safe for
// concurrent use.
type Board struct {
	params GameParams
	cells  []Cell /* row-major */

	firstMoveTaken bool
	regenerated    bool
	exploded       bool

	rnd *rand.Rand
}

// New lays out params.MineCount mines uniformly at random using r.
func New(params GameParams, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidParams)
	}
	b := &Board{
		params: params,
		rnd:    r,
	}
	b.generate()
	return b, nil
}

// NewFromLayout builds a board from a row-major mine layout. r is only used if
// the layout has to be regenerated after a first move onto a mine.
func NewFromLayout(width, height int, grid []bool, r *rand.Rand) (*Board, error) {
	if len(grid) != width*height {
		return nil, fmt.Errorf("%w: layout has %d cells, want %dx%d",
			ErrInvalidParams, len(grid), width, height)
	}
	if r == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidParams)
	}
	params := GameParams{Width: width, Height: height}
	for _, mined := range grid {
		if mined {
			params.MineCount++
		}
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		params: params,
		cells:  buildCells(width, height, grid),
		rnd:    r,
	}
	return b, nil
}

func (b *Board) generate() {
	p := b.params
	b.cells = buildCells(p.Width, p.Height, p.placeMines(b.rnd))
	Log.WithFields(logrus.Fields{
		"width":  p.Width,
		"height": p.Height,
		"mines":  p.MineCount,
	}).Debug("placed mines")
}

func (b *Board) index(x, y int) int {
	return (y-1)*b.params.Width + (x - 1)
}

// Params returns a copy of the parameters the board was built with.
func (b *Board) Params() GameParams {
	return b.params
}

func (b *Board) InBounds(x, y int) bool {
	return b.params.ValidatePoint(x, y)
}

// Cell returns a copy of the cell at x, y.
func (b *Board) Cell(x, y int) (Cell, bool) {
	if !b.params.ValidatePoint(x, y) {
		return Cell{}, false
	}
	return b.cells[b.index(x, y)], true
}

func (b *Board) Exploded() bool       { return b.exploded }
func (b *Board) FirstMoveTaken() bool { return b.firstMoveTaken }
func (b *Board) Regenerated() bool    { return b.regenerated }

func (b *Board) Counts() (c Counts) {
	for _, cell := range b.cells {
		if cell.Kind == Mine {
			c.Mines++
		}
		if cell.Marked {
			c.Marked++
		}
		if cell.Hidden {
			c.Hidden++
		} else {
			c.Revealed++
		}
	}
	return
}

// ToggleMark flips the mark on a hidden cell. Marking an opened number is
// rejected with [ErrNumberHere]. Once a mine has gone off every cell is open
// and ToggleMark returns [ErrGameOver] instead.
func (b *Board) ToggleMark(x, y int) error {
	if !b.params.ValidatePoint(x, y) {
		return fmt.Errorf("%w: %d %d", ErrOutOfBounds, x, y)
	}
	if b.exploded {
		return ErrGameOver
	}

	c := &b.cells[b.index(x, y)]
	if c.Kind == Empty && !c.Hidden {
		return ErrNumberHere
	}
	c.Marked = !c.Marked
	return nil
}

// Explore opens the cell at x, y. A nil error means the board changed or may
// have changed and should be redrawn.
//
// Landing on a mine always loses. If no cell has been opened yet the field is
// regenerated first, so the board that gets revealed is the new layout.
func (b *Board) Explore(x, y int) error {
	if !b.params.ValidatePoint(x, y) {
		return fmt.Errorf("%w: %d %d", ErrOutOfBounds, x, y)
	}
	if b.exploded {
		return ErrGameOver
	}

	i := b.index(x, y)
	c := &b.cells[i]

	switch c.Kind {
	case Mine:
		if !b.firstMoveTaken {
			b.regenerated = true
			b.generate()
			Log.WithFields(logrus.Fields{"x": x, "y": y}).
				Debug("first move hit a mine, field regenerated")
		}
		b.explode()
		Log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("stepped on a mine")
		return nil

	case Empty:
		if c.Hint > 0 {
			if !c.Hidden {
				return ErrNumberHere
			}
			c.Hidden = false
			c.Marked = false
			b.firstMoveTaken = true
			return nil
		}
		b.firstMoveTaken = true
		opened := b.reveal(i)
		Log.WithFields(logrus.Fields{"x": x, "y": y, "opened": opened}).
			Debug("flood fill")
		return nil
	}

	return fmt.Errorf("unexpected cell kind %v", c.Kind)
}

// reveal opens the cell at index start and spreads through every connected
// cell with no mined neighbours, stopping at the numbered cells that border
// the region. It returns how many cells were opened.
func (b *Board) reveal(start int) (opened int) {
	todo := newCelltodo(len(b.cells))

	open := func(i int) {
		c := &b.cells[i]
		if c.Kind != Empty || !c.Hidden {
			return
		}
		c.Hidden = false
		c.Marked = false
		opened++
		if c.Hint == 0 {
			todo.add(i)
		}
	}

	open(start)
	for i, ok := todo.pop(); ok; i, ok = todo.pop() {
		w, h := b.params.Width, b.params.Height
		for xx, yy := range neighbors(w, h, i%w, i/w) {
			open(yy*w + xx)
		}
	}

	return
}

func (b *Board) explode() {
	b.exploded = true
	for i := range b.cells {
		b.cells[i].Hidden = false
		b.cells[i].Marked = false
	}
}

// GameOver reports whether the game has ended: a mine went off, every mine
// and nothing else is marked, or every safe cell is open.
func (b *Board) GameOver() bool {
	return b.exploded || b.marksMatchMines() || b.safeCellsOpened()
}

func (b *Board) Won() bool {
	return b.GameOver() && !b.exploded
}

func (b *Board) marksMatchMines() bool {
	for _, c := range b.cells {
		if (c.Kind == Mine) != c.Marked {
			return false
		}
	}
	return true
}

func (b *Board) safeCellsOpened() bool {
	for _, c := range b.cells {
		if c.Kind == Empty && c.Hidden {
			return false
		}
	}
	return true
}
