package mines

import "fmt"

const (
	DefaultWidth  = 9
	DefaultHeight = 9
)

type GameParams struct {
	Width, Height, MineCount int
}

func DefaultParams(mineCount int) GameParams {
	return GameParams{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		MineCount: mineCount,
	}
}

func (p GameParams) Size() int {
	return p.Width * p.Height
}

func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d",
			ErrInvalidParams, p.Width, p.Height)
	}
	if p.MineCount < 0 || p.MineCount > p.Size() {
		return fmt.Errorf("%w: mine count must be in [0, %d], got %d",
			ErrInvalidParams, p.Size(), p.MineCount)
	}
	return nil
}

// ValidatePoint reports whether the 1-based column x and row y lie on the grid.
func (p GameParams) ValidatePoint(x, y int) bool {
	return 1 <= x && x <= p.Width && 1 <= y && y <= p.Height
}
