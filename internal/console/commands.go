package console

import (
	"fmt"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

type Action string

const (
	ActionMine Action = "mine"
	ActionFree Action = "free"
)

var (
	ErrMalformedCommand = fmt.Errorf("malformed command")
	ErrUnknownAction    = fmt.Errorf("unknown action")
)

// Command is one "<x> <y> mine|free" line.
type Command struct {
	X      int    `schema:"x,required"`
	Y      int    `schema:"y,required"`
	Action string `schema:"action,required"`
}

// Positional fields of a command line, in order.
var commandFields = []string{"x", "y", "action"}

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

func ParseCommand(line string) (Command, error) {
	var cmd Command

	parts := strings.Fields(line)
	if len(parts) != len(commandFields) {
		return cmd, fmt.Errorf("%w: expected %d arguments, got %d",
			ErrMalformedCommand, len(commandFields), len(parts))
	}

	switch action := Action(parts[2]); action {
	case ActionMine, ActionFree:
	default:
		return cmd, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	src := make(map[string][]string, len(parts))
	for i, name := range commandFields {
		src[name] = []string{parts[i]}
	}
	if err := dec.Decode(&cmd, src); err != nil {
		return Command{}, fmt.Errorf("%w: coordinates must be integers: %w",
			ErrMalformedCommand, err)
	}
	return cmd, nil
}

func executeCommand(b *mines.Board, cmd Command) error {
	switch Action(cmd.Action) {
	case ActionMine:
		return b.ToggleMark(cmd.X, cmd.Y)
	case ActionFree:
		return b.Explore(cmd.X, cmd.Y)
	}
	return fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
}
