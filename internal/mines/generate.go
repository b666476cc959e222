package mines

import (
	"iter"
	"math/rand/v2"
)

// placeMines picks p.MineCount distinct cells uniformly at random and returns
// the row-major mine layout.
func (p GameParams) placeMines(r *rand.Rand) []bool {
	grid := make([]bool, p.Size())

	candidates := make([]int, len(grid))
	for i := range candidates {
		candidates[i] = i
	}

	k := len(candidates)
	for range p.MineCount {
		i := r.IntN(k)
		grid[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	return grid
}

// neighbors yields the 0-based coordinates of the up to eight cells around x, y.
func neighbors(width, height, x, y int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				xx, yy := x+dx, y+dy
				if (dx != 0 || dy != 0) &&
					xx >= 0 && xx < width &&
					yy >= 0 && yy < height {
					if !yield(xx, yy) {
						return
					}
				}
			}
		}
	}
}

// buildCells turns a mine layout into hidden cells with hints filled in.
func buildCells(width, height int, grid []bool) []Cell {
	cells := make([]Cell, len(grid))
	for i, mined := range grid {
		cells[i].Hidden = true
		if mined {
			cells[i].Kind = Mine
		}
	}

	for y := range height {
		for x := range width {
			c := &cells[y*width+x]
			if c.Kind == Mine {
				continue
			}
			for xx, yy := range neighbors(width, height, x, y) {
				if grid[yy*width+xx] {
					c.Hint++
				}
			}
		}
	}

	return cells
}
