package game

import "testing"

func TestIsWinnable(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{
			name:  "Empty board",
			board: Board{},
			want:  true,
		},
		{
			name: "Already won",
			board: Board{
				x, x, x,
				o, o, e,
				e, e, e,
			},
			want: true,
		},
		{
			name: "Win still reachable",
			board: Board{
				x, x, e,
				o, o, e,
				e, e, e,
			},
			want: true,
		},
		{
			name: "Full board",
			board: Board{
				x, o, x,
				o, x, o,
				o, x, o,
			},
			want: false,
		},
		{
			name: "Last cell cannot complete a line",
			board: Board{
				x, o, x,
				x, o, o,
				o, x, e,
			},
			want: false,
		},
		{
			name: "Last cell completes a line",
			board: Board{
				x, o, x,
				o, x, o,
				o, x, e,
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWinnable(tt.board); got != tt.want {
				t.Errorf("IsWinnable() got = %v, want %v", got, tt.want)
			}
		})
	}
}
