package room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/player"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ErrIllegalMove is returned when a mover answers with a board that is not a
// single legal placement on the current one.
var ErrIllegalMove = errors.New("mover returned an illegal board")

var (
	tracer = otel.Tracer("room")
	meter  = otel.Meter("room")

	gamesFinished, _ = meter.Int64Counter("room.games",
		metric.WithDescription("Games played to a result"))
)

// BoardRenderer shows the board after every move.
type BoardRenderer interface {
	Board(b game.Board)
}

type nopRenderer struct{}

func (nopRenderer) Board(game.Board) {}

// Room holds the authoritative board of one game and the two seated players.
type Room struct {
	ID      string
	Players []*player.Player
	board   game.Board
	render  BoardRenderer
}

// NewRoom creates a room with an empty board. A nil renderer shows nothing.
func NewRoom(id string, renderer BoardRenderer) *Room {
	if renderer == nil {
		renderer = nopRenderer{}
	}
	return &Room{
		ID:      id,
		Players: make([]*player.Player, 0, 2),
		render:  renderer,
	}
}

// Run alternates turns until a player wins or no win is reachable any more.
func (r *Room) Run(ctx context.Context) (Result, error) {
	ctx, span := tracer.Start(ctx, "room.Run", trace.WithAttributes(
		attribute.String("game.id", r.ID),
	))
	defer span.End()

	slog.InfoContext(ctx, "Game started", "game.id", r.ID, "player.count", len(r.Players))
	r.render.Board(r.board)

	for game.CheckWinner(r.board) == game.Undetermined && game.IsWinnable(r.board) {
		if err := r.turn(ctx); err != nil {
			slog.ErrorContext(ctx, "Game aborted", "game.id", r.ID, "error", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "Game aborted")
			return "", err
		}
	}

	result := ResultOf(r.board)
	span.SetAttributes(attribute.String("game.result", string(result)))
	gamesFinished.Add(ctx, 1, metric.WithAttributes(attribute.String("game.result", string(result))))
	slog.InfoContext(ctx, "Game finished", "game.id", r.ID, "game.result", result)
	return result, nil
}

// turn asks the mover for its board and commits it.
func (r *Room) turn(ctx context.Context) error {
	mark := game.WhoseTurn(r.board)
	p := r.playerFor(mark)
	if p == nil {
		return fmt.Errorf("no player seated for mark %q", mark)
	}

	ctx, span := tracer.Start(ctx, "room.turn", trace.WithAttributes(
		attribute.String("game.id", r.ID),
		attribute.String("player.id", p.ID),
		attribute.String("player.mark", string(mark)),
	))
	defer span.End()

	next, err := p.Mover.Move(ctx, r.board)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Mover failed")
		return fmt.Errorf("failed to get move from player %s: %w", p.ID, err)
	}
	if !game.IsSuccessor(r.board, next) {
		span.SetAttributes(attribute.Bool("move.valid", false))
		span.SetStatus(codes.Error, "Illegal board from mover")
		return fmt.Errorf("player %s: %w", p.ID, ErrIllegalMove)
	}
	span.SetAttributes(attribute.Bool("move.valid", true))

	r.board = next
	r.render.Board(next)
	slog.DebugContext(ctx, "Move played", "game.id", r.ID, "player.id", p.ID, "player.mark", mark, "player.bot", p.IsBot)
	return nil
}
