package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/config"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/logger"
	"ctchen222/tictactoe/internal/player"
	"ctchen222/tictactoe/internal/render"
	"ctchen222/tictactoe/internal/room"
	"ctchen222/tictactoe/internal/telemetry"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg.OtelEndpoint)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	logger.Init(cfg.Level())

	runErr := run(ctx, cfg, os.Stdin, os.Stdout)

	if err := shutdown(context.Background()); err != nil {
		slog.Warn("Error shutting down telemetry", "error", err)
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}

// run plays one game between the person on in/out and the bot.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	renderer := render.NewRenderer(out, cfg.Color && !color.NoColor, cfg.ClearScreen)
	renderer.Clear()

	human := player.NewHuman(in, out)
	mark := human.ChooseMark()

	searcher := bot.NewSearcher(game.NewPartitionOrder(cfg.Rand()))

	r := room.NewRoom(uuid.NewString(), renderer)
	r.AddPlayer(player.NewPlayer("human-"+uuid.New().String()[:8], mark, human))
	r.AddPlayer(bot.NewBotPlayer(mark.Opponent(), searcher))

	result, err := r.Run(ctx)
	if err != nil {
		return fmt.Errorf("game %s: %w", r.ID, err)
	}
	renderer.Result(string(result))
	return nil
}
