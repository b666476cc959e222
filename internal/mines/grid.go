package mines

import "strconv"

type Kind int8

const (
	Empty Kind = iota
	Mine
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Mine:
		return "mine"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

type Cell struct {
	Kind   Kind
	Hint   int // mined neighbours, Empty only
	Hidden bool
	Marked bool
}

// Cell implements [fmt.Stringer]
func (c Cell) String() string {
	switch {
	case c.Marked:
		return "*"
	case c.Hidden:
		return "."
	}
	switch c.Kind {
	case Mine:
		return "X"
	default:
		if c.Hint == 0 {
			return "/"
		}
		return strconv.Itoa(c.Hint)
	}
}

type Counts struct {
	Mines, Marked, Hidden, Revealed int
}
