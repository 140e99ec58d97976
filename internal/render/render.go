package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"ctchen222/tictactoe/internal/game"

	"github.com/fatih/color"
)

// clearSequence erases the terminal and homes the cursor.
const clearSequence = "\x1b[2J\x1b[1;1H"

// Renderer prints boards for a terminal.
type Renderer struct {
	out         io.Writer
	clearScreen bool
	empty       *color.Color
}

// NewRenderer creates a Renderer writing to out. When colorize is set, empty
// cells show their index in purple.
func NewRenderer(out io.Writer, colorize, clearScreen bool) *Renderer {
	empty := color.New(color.FgMagenta)
	if colorize {
		empty.EnableColor()
	} else {
		empty.DisableColor()
	}
	return &Renderer{
		out:         out,
		clearScreen: clearScreen,
		empty:       empty,
	}
}

// Clear erases the screen, if enabled.
func (r *Renderer) Clear() {
	if r.clearScreen {
		fmt.Fprint(r.out, clearSequence)
	}
}

// Board clears the screen and prints b.
func (r *Renderer) Board(b game.Board) {
	r.Clear()
	fmt.Fprint(r.out, r.Format(b))
}

// Result prints the closing line of a game.
func (r *Renderer) Result(line string) {
	fmt.Fprintln(r.out, line)
}

// Format lays b out as three rows of cells separated by "|".
func (r *Renderer) Format(b game.Board) string {
	var sb strings.Builder
	for i, mark := range b {
		if mark == game.None {
			sb.WriteString(r.empty.Sprint(strconv.Itoa(i)))
		} else {
			sb.WriteString(string(mark))
		}

		if (i+1)%3 == 0 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte('|')
		}
	}
	return sb.String()
}
