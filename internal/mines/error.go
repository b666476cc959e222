package mines

import "fmt"

var (
	ErrOutOfBounds   = fmt.Errorf("out of bounds")
	ErrNumberHere    = fmt.Errorf("there is a number here")
	ErrGameOver      = fmt.Errorf("game is over")
	ErrInvalidParams = fmt.Errorf("invalid game params")
)
