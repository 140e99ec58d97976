package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"ctchen222/tictactoe/internal/game"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("player")

// ErrNoInput is returned when the input stream ends before a legal move.
var ErrNoInput = errors.New("no more input")

const (
	markPrompt   = "Enter player (X,O)"
	movePrompt   = "Enter index for next move: "
	invalidInput = "Invalid input"
	illegalMove  = "Illegal move"
)

// Human reads a person's choices from line-oriented input.
type Human struct {
	in  *bufio.Reader
	out io.Writer
}

// NewHuman creates a Human that reads from in and prompts on out.
func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// readLine returns the next line without its terminator. Lines have no
// length limit. A final line without a newline is still returned; io.EOF
// comes only once nothing is left.
func (h *Human) readLine() (string, error) {
	line, err := h.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return line, err
}

// ChooseMark asks which mark the person plays. Only "O" selects O; any other
// answer, including no answer, selects X.
func (h *Human) ChooseMark() game.PlayerMark {
	fmt.Fprintln(h.out, markPrompt)
	line, err := h.readLine()
	if err != nil {
		return game.PlayerX
	}
	if strings.ToUpper(strings.TrimSpace(line)) == string(game.PlayerO) {
		return game.PlayerO
	}
	return game.PlayerX
}

// parseCell reads a non-negative decimal index. One leading "+" is allowed.
func parseCell(line string) (uint64, error) {
	digits, _ := strings.CutPrefix(strings.TrimSpace(line), "+")
	return strconv.ParseUint(digits, 10, 64)
}

// Move prompts until the person enters the index of an empty cell.
func (h *Human) Move(ctx context.Context, board game.Board) (game.Board, error) {
	ctx, span := tracer.Start(ctx, "player.Human.Move")
	defer span.End()

	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Move canceled")
			return board, err
		}

		fmt.Fprintln(h.out, movePrompt)
		line, err := h.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = ErrNoInput
			} else {
				err = fmt.Errorf("failed to read move: %w", err)
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, "Input ended before a legal move")
			return board, err
		}
		attempts++

		cell, err := parseCell(line)
		if err != nil {
			slog.DebugContext(ctx, "rejected unparseable move", "input.len", len(line))
			fmt.Fprintln(h.out, invalidInput)
			continue
		}
		if cell > game.CellMax || board[cell] != game.None {
			slog.DebugContext(ctx, "rejected illegal move", "move.cell", cell)
			fmt.Fprintln(h.out, illegalMove)
			continue
		}

		span.SetAttributes(attribute.Int("move.cell", int(cell)), attribute.Int("move.attempts", attempts))
		return game.ApplyMove(board, int(cell)), nil
	}
}
