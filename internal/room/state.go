package room

import "ctchen222/tictactoe/internal/game"

// Result is the closing line printed when a game stops.
type Result string

const (
	ResultXWins       Result = "X wins"
	ResultOWins       Result = "O wins"
	ResultDraw        Result = "draw"
	ResultNotWinnable Result = "draw (not winnable)"
)

// ResultOf describes the board a game stopped on. An unfinished board means
// the game was stopped because no win was reachable.
func ResultOf(b game.Board) Result {
	switch game.CheckWinner(b) {
	case game.XWins:
		return ResultXWins
	case game.OWins:
		return ResultOWins
	case game.Draw:
		return ResultDraw
	default:
		return ResultNotWinnable
	}
}
