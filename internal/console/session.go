package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-cli/internal/mines"
)

const (
	promptMines = "How many mines do you want on the field? "
	promptMove  = "Set/unset mines marks or claim a cell as free: "

	msgNotANumber  = "Expecting a number"
	msgMalformed   = "Expecting '<x> <y> mine|free'"
	msgUnknown     = "Unknown command. Expecting 'mine' or 'free'"
	msgOutOfBounds = "Out of bounds!"
	msgNumberHere  = "There is a number here!"
	msgLost        = "You stepped on a mine and failed!"
	msgWon         = "Congratulations! You found all the mines!"
)

var ErrInputClosed = fmt.Errorf("input closed before the game ended")

type Options struct {
	Width, Height int
	// Mines < 0 asks the player.
	Mines  int
	Rand   *rand.Rand
	Logger logrus.FieldLogger
}

// Session plays one game over a line-oriented reader and writer.
type Session struct {
	in     io.Reader
	out    io.Writer
	opts   Options
	logger logrus.FieldLogger
	board  *mines.Board
}

func NewSession(in io.Reader, out io.Writer, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = mines.Log
	}
	return &Session{
		in:     in,
		out:    out,
		opts:   opts,
		logger: logger,
	}
}

// Board is the game being played, nil until the mine count is known.
func (s *Session) Board() *mines.Board {
	return s.board
}

// Run asks for the mine count, builds the board and plays until the game is
// over. It returns [ErrInputClosed] if input runs out first and ctx.Err() if
// ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := s.readLines(ctx.Done())

	mineCount := s.opts.Mines
	if mineCount < 0 {
		var err error
		if mineCount, err = s.askMines(ctx, lines); err != nil {
			return err
		}
	}

	params := mines.GameParams{
		Width:     s.opts.Width,
		Height:    s.opts.Height,
		MineCount: mineCount,
	}
	board, err := mines.New(params, s.opts.Rand)
	if err != nil {
		return fmt.Errorf("unable to create board: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"width":  params.Width,
		"height": params.Height,
		"mines":  params.MineCount,
	}).Info("new game")

	if err := board.Render(s.out); err != nil {
		return err
	}
	return s.loop(ctx, lines, board)
}

// Play runs the move loop on an existing board.
func (s *Session) Play(ctx context.Context, board *mines.Board) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	return s.loop(ctx, s.readLines(ctx.Done()), board)
}

func (s *Session) loop(ctx context.Context, lines <-chan string, board *mines.Board) error {
	s.board = board
	for !board.GameOver() {
		line, err := s.next(ctx, lines, promptMove)
		if err != nil {
			return err
		}
		if err := s.play(board, line); err != nil {
			return err
		}
	}

	if board.Exploded() {
		s.logger.Info("game lost")
		fmt.Fprintln(s.out, msgLost)
	} else {
		s.logger.Info("game won")
		fmt.Fprintln(s.out, msgWon)
	}
	return nil
}

func (s *Session) askMines(ctx context.Context, lines <-chan string) (int, error) {
	size := s.opts.Width * s.opts.Height
	for {
		line, err := s.next(ctx, lines, promptMines)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(s.out, msgNotANumber)
			continue
		}
		if n < 0 || n > size {
			fmt.Fprintf(s.out, "The number of mines must be between 0 and %d\n", size)
			continue
		}
		return n, nil
	}
}

// play applies one command line. Rejected moves are reported to the player;
// only failures to write are returned.
func (s *Session) play(board *mines.Board, line string) error {
	cmd, err := ParseCommand(line)
	if err == nil {
		err = executeCommand(board, cmd)
	}

	s.logger.WithFields(logrus.Fields{
		"line":  line,
		"error": err,
	}).Debug("command")

	switch {
	case err == nil:
		return board.Render(s.out)
	case errors.Is(err, ErrUnknownAction):
		_, err = fmt.Fprintln(s.out, msgUnknown)
	case errors.Is(err, ErrMalformedCommand):
		_, err = fmt.Fprintln(s.out, msgMalformed)
	case errors.Is(err, mines.ErrOutOfBounds):
		_, err = fmt.Fprintln(s.out, msgOutOfBounds)
	case errors.Is(err, mines.ErrNumberHere):
		_, err = fmt.Fprintln(s.out, msgNumberHere)
	default:
		_, err = fmt.Fprintln(s.out, err)
	}
	return err
}

func (s *Session) next(ctx context.Context, lines <-chan string, prompt string) (string, error) {
	if _, err := io.WriteString(s.out, prompt); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lines:
		if !ok {
			return "", ErrInputClosed
		}
		return line, nil
	}
}

// readLines scans s.in on its own goroutine so that a blocked read does not
// keep the loop from seeing cancellation.
func (s *Session) readLines(done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			s.logger.WithError(err).Warn("unable to read input")
		}
	}()
	return lines
}
