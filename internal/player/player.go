package player

import (
	"context"

	"ctchen222/tictactoe/internal/game"
)

//go:generate mockgen -source=player.go -destination=mocks/mock_mover.go -package=mocks

// Mover abstracts whatever decides a side's moves: a person at the console
// or the search engine.
type Mover interface {
	// Move returns the board after the mover's placement.
	Move(ctx context.Context, board game.Board) (game.Board, error)
}

// Player represents a player seated in a room.
type Player struct {
	ID    string
	Mark  game.PlayerMark
	Mover Mover
	IsBot bool
}

// NewPlayer creates a new player playing mark.
func NewPlayer(id string, mark game.PlayerMark, mover Mover) *Player {
	return &Player{
		ID:    id,
		Mark:  mark,
		Mover: mover,
	}
}
