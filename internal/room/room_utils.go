package room

import (
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/player"
)

// AddPlayer seats a player in the room.
func (r *Room) AddPlayer(p *player.Player) {
	r.Players = append(r.Players, p)
}

// Board returns the current board.
func (r *Room) Board() game.Board {
	return r.board
}

// Load replaces the current board, for resuming from a known position.
func (r *Room) Load(b game.Board) {
	r.board = b
}

func (r *Room) playerFor(mark game.PlayerMark) *player.Player {
	for _, p := range r.Players {
		if p.Mark == mark {
			return p
		}
	}
	return nil
}
