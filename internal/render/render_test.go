package render

import (
	"bytes"
	"strings"
	"testing"

	"ctchen222/tictactoe/internal/game"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		board game.Board
		want  string
	}{
		{
			name:  "Empty board shows indexes",
			board: game.Board{},
			want:  "0|1|2\n3|4|5\n6|7|8\n",
		},
		{
			name: "Marks replace indexes",
			board: game.Board{
				game.PlayerX, game.None, game.None,
				game.None, game.PlayerO, game.None,
				game.None, game.None, game.PlayerX,
			},
			want: "X|1|2\n3|O|5\n6|7|X\n",
		},
	}

	r := NewRenderer(&bytes.Buffer{}, false, false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Format(tt.board); got != tt.want {
				t.Errorf("Format() got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat_Color(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, true, false)
	got := r.Format(game.Board{game.PlayerX})

	if !strings.Contains(got, "\x1b[35m1") {
		t.Errorf("Expected a purple index for cell 1, got %q", got)
	}
	if !strings.HasPrefix(got, "X|") {
		t.Errorf("Expected occupied cells without color, got %q", got)
	}
}

func TestBoard_ClearScreen(t *testing.T) {
	var out bytes.Buffer
	NewRenderer(&out, false, true).Board(game.Board{})
	if !strings.HasPrefix(out.String(), clearSequence) {
		t.Errorf("Expected output to start with the clear sequence, got %q", out.String())
	}

	out.Reset()
	NewRenderer(&out, false, false).Board(game.Board{})
	if strings.Contains(out.String(), "\x1b") {
		t.Errorf("Expected no escape codes, got %q", out.String())
	}
}

func TestResult(t *testing.T) {
	var out bytes.Buffer
	NewRenderer(&out, false, false).Result("draw")
	if out.String() != "draw\n" {
		t.Errorf("Result() wrote %q", out.String())
	}
}
