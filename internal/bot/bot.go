package bot

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/player"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ErrNoMove is returned when a search produced no next board. Callers treat
// it as fatal: it only happens on a finished board or an internal
// inconsistency.
var ErrNoMove = errors.New("search found no move")

var (
	tracer = otel.Tracer("bot")
	meter  = otel.Meter("bot")

	searchNodes, _ = meter.Int64Counter("bot.search.nodes",
		metric.WithDescription("Boards visited by the minimax search"))
	searchDuration, _ = meter.Float64Histogram("bot.search.duration",
		metric.WithDescription("Wall time of one minimax search"),
		metric.WithUnit("ms"))
)

// Bot implements player.Mover by playing the searcher's choice.
type Bot struct {
	searcher *Searcher
}

// NewBot creates a Bot backed by searcher.
func NewBot(searcher *Searcher) *Bot {
	return &Bot{searcher: searcher}
}

// Move runs one search and returns the chosen board.
func (b *Bot) Move(ctx context.Context, board game.Board) (game.Board, error) {
	ctx, span := tracer.Start(ctx, "bot.Move", trace.WithAttributes(
		attribute.String("player.mark", string(game.WhoseTurn(board))),
	))
	defer span.End()

	start := time.Now()
	res := b.searcher.Search(board)
	elapsed := float64(time.Since(start).Microseconds()) / 1000

	searchNodes.Add(ctx, int64(res.Nodes))
	searchDuration.Record(ctx, elapsed)
	span.SetAttributes(
		attribute.Int("search.nodes", res.Nodes),
		attribute.Float64("search.value", res.Value),
	)

	if !res.Found {
		slog.ErrorContext(ctx, "search returned no move", "board", board, "search.value", res.Value)
		span.RecordError(ErrNoMove)
		span.SetStatus(codes.Error, "Search returned no move")
		return board, ErrNoMove
	}

	slog.DebugContext(ctx, "Bot chose move", "search.nodes", res.Nodes, "search.value", res.Value, "search.ms", elapsed)
	return res.Board, nil
}

// NewBotPlayer creates a new player instance that is a bot playing mark.
func NewBotPlayer(mark game.PlayerMark, searcher *Searcher) *player.Player {
	botID := "bot-" + uuid.New().String()[:8]
	p := player.NewPlayer(botID, mark, NewBot(searcher))
	p.IsBot = true
	return p
}
