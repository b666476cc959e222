package console

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

func TestParseCommand(t *testing.T) {
	testCases := []struct {
		line string
		cmd  Command
		err  error
	}{
		{"1 2 free", Command{1, 2, "free"}, nil},
		{"  3   9\tmine  ", Command{3, 9, "mine"}, nil},
		{"0 10 free", Command{0, 10, "free"}, nil},
		{"-1 2 mine", Command{-1, 2, "mine"}, nil},
		{"1 2", Command{}, ErrMalformedCommand},
		{"", Command{}, ErrMalformedCommand},
		{"1 2 free now", Command{}, ErrMalformedCommand},
		{"a 2 free", Command{}, ErrMalformedCommand},
		{"1 2.5 mine", Command{}, ErrMalformedCommand},
		{"1 2 flag", Command{}, ErrUnknownAction},
		{"a b FREE", Command{}, ErrUnknownAction},
	}
	for _, test := range testCases {
		t.Run(test.line, func(t *testing.T) {
			cmd, err := ParseCommand(test.line)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.cmd, cmd)
		})
	}
}

func TestExecuteCommand(t *testing.T) {
	grid := make([]bool, 9)
	grid[4] = true
	b, err := mines.NewFromLayout(3, 3, grid, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	require.NoError(t, executeCommand(b, Command{2, 2, "mine"}))
	c, _ := b.Cell(2, 2)
	assert.True(t, c.Marked)

	require.NoError(t, executeCommand(b, Command{1, 1, "free"}))
	c, _ = b.Cell(1, 1)
	assert.False(t, c.Hidden)

	assert.ErrorIs(t, executeCommand(b, Command{1, 1, "free"}), mines.ErrNumberHere)
	assert.ErrorIs(t, executeCommand(b, Command{4, 1, "mine"}), mines.ErrOutOfBounds)
	assert.ErrorIs(t, executeCommand(b, Command{1, 1, "poke"}), ErrUnknownAction)
}
