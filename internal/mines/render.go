package mines

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Render writes the board as a framed grid:
//
//	 |123456789|
//	-|---------|
//	1|.1/......|
//	...
//	-|---------|
//
// Column headers use the last digit of the column number.
func (b *Board) Render(w io.Writer) error {
	var (
		sb            strings.Builder
		width, height = b.params.Width, b.params.Height
		label         = len(strconv.Itoa(height))
		rule          = strings.Repeat("-", label) + "|" + strings.Repeat("-", width) + "|\n"
	)

	sb.WriteString(strings.Repeat(" ", label) + "|")
	for x := range width {
		sb.WriteString(strconv.Itoa((x + 1) % 10))
	}
	sb.WriteString("|\n")
	sb.WriteString(rule)

	for y := range height {
		fmt.Fprintf(&sb, "%*d|", label, y+1)
		for x := range width {
			sb.WriteString(b.cells[y*width+x].String())
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(rule)

	_, err := io.WriteString(w, sb.String())
	return err
}

// Board implements [fmt.Stringer]
func (b *Board) String() string {
	var sb strings.Builder
	b.Render(&sb)
	return sb.String()
}
