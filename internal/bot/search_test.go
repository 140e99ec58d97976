package bot

import (
	"math/rand/v2"
	"testing"

	"ctchen222/tictactoe/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = game.PlayerX
	o = game.PlayerO
	e = game.None
)

func seededSearcher(seed uint64) *Searcher {
	return NewSearcher(game.NewPartitionOrder(rand.New(rand.NewPCG(seed, seed))))
}

func TestBestMove(t *testing.T) {
	tests := []struct {
		name     string
		board    game.Board
		wantCell int
		wantMark game.PlayerMark
	}{
		{
			name: "Takes the immediate win",
			board: game.Board{
				x, x, e,
				o, o, e,
				e, e, e,
			},
			wantCell: 2,
			wantMark: x,
		},
		{
			name: "O takes its own win over blocking",
			board: game.Board{
				x, x, e,
				o, o, e,
				x, e, e,
			},
			wantCell: 5,
			wantMark: o,
		},
		{
			name: "O blocks the open row",
			board: game.Board{
				x, x, e,
				o, e, e,
				e, e, e,
			},
			wantCell: 2,
			wantMark: o,
		},
		{
			name: "Last empty cell completes a diagonal",
			board: game.Board{
				x, o, x,
				o, x, o,
				o, x, e,
			},
			wantCell: 8,
			wantMark: x,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := uint64(0); seed < 10; seed++ {
				got, ok := seededSearcher(seed).BestMove(tt.board)
				require.True(t, ok, "seed %d", seed)

				want := tt.board
				want[tt.wantCell] = tt.wantMark
				assert.Equal(t, want, got, "seed %d", seed)
			}
		})
	}
}

func TestBestMove_FinishedBoard(t *testing.T) {
	boards := []game.Board{
		{x, x, x, o, o, e, e, e, e},
		{x, o, x, o, x, o, o, x, o},
	}
	for _, b := range boards {
		_, ok := NewSearcher(game.BoardOrder).BestMove(b)
		assert.False(t, ok, "board %v has no moves", b)
	}
}

func TestBestMove_ReturnsChild(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 13))
	s := seededSearcher(5)

	for i := 0; i < 30; i++ {
		board := game.Board{}
		plies := r.IntN(7)
		for p := 0; p < plies && game.CheckWinner(board) == game.Undetermined; p++ {
			next := game.NextStates(board, game.BoardOrder)
			board = next[r.IntN(len(next))]
		}
		if game.CheckWinner(board) != game.Undetermined {
			continue
		}

		got, ok := s.BestMove(board)
		require.True(t, ok)
		assert.Contains(t, game.NextStates(board, game.BoardOrder), got)
	}
}

func TestSelfPlayIsDraw(t *testing.T) {
	for seed := uint64(0); seed < 4; seed++ {
		s := seededSearcher(seed)
		board := game.Board{}
		for len(game.NextStates(board, game.BoardOrder)) > 0 {
			next, ok := s.BestMove(board)
			require.True(t, ok)
			require.True(t, game.IsSuccessor(board, next))
			board = next
		}
		assert.Equal(t, game.Draw, game.CheckWinner(board), "seed %d ended with %v", seed, board)
	}
}

func TestSearch_RootValue(t *testing.T) {
	t.Run("Empty board is a draw", func(t *testing.T) {
		res := NewSearcher(game.BoardOrder).Search(game.Board{})
		assert.True(t, res.Found)
		assert.Equal(t, 0.0, res.Value)
		assert.Greater(t, res.Nodes, 9)
	})

	t.Run("Win in one scores 1", func(t *testing.T) {
		res := NewSearcher(game.BoardOrder).Search(game.Board{x, x, e, o, o})
		assert.Equal(t, 1.0, res.Value)
	})

	t.Run("Forced loss scores -1/2", func(t *testing.T) {
		// O to move; X has two open lines through cells 2 and 6.
		board := game.Board{
			x, x, e,
			x, o, e,
			e, e, o,
		}
		res := NewSearcher(game.BoardOrder).Search(board)
		assert.Equal(t, -0.5, res.Value)
	})
}

func TestTerminalValue(t *testing.T) {
	tests := []struct {
		name    string
		outcome game.Outcome
		player  game.PlayerMark
		depth   int
		want    float64
	}{
		{name: "Win at depth 1", outcome: game.XWins, player: x, depth: 1, want: 1},
		{name: "Win at depth 4", outcome: game.OWins, player: o, depth: 4, want: 0.25},
		{name: "Loss at depth 2", outcome: game.OWins, player: x, depth: 2, want: -0.5},
		{name: "Draw", outcome: game.Draw, player: x, depth: 3, want: 0},
		{name: "Depth zero is clamped", outcome: game.XWins, player: x, depth: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, terminalValue(tt.outcome, tt.player, tt.depth))
		})
	}
}

func TestNewSearcher_DefaultOrder(t *testing.T) {
	s := NewSearcher(nil)
	require.NotNil(t, s.order)
	_, ok := s.BestMove(game.Board{})
	assert.True(t, ok)
}
