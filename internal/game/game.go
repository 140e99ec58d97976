package game

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	// Player marks
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// CellMax is the highest cell index; cells run from 0.
	CellMax = 8
)

// Opponent returns the other player's mark. None has no opponent.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return None
	}
}

// Board is the 3x3 grid stored row-major. It is a value type: moves return
// a new Board and never touch the caller's copy.
type Board [9]PlayerMark

// Occupied returns the number of non-empty cells.
func (b Board) Occupied() int {
	n := 0
	for _, cell := range b {
		if cell != None {
			n++
		}
	}
	return n
}

// Outcome is the result of evaluating a board.
type Outcome int

const (
	Undetermined Outcome = iota
	XWins
	OWins
	Draw
)

// Winner returns the winning mark, or None for a draw or an unfinished game.
func (o Outcome) Winner() PlayerMark {
	switch o {
	case XWins:
		return PlayerX
	case OWins:
		return PlayerO
	default:
		return None
	}
}

// IsWin reports whether one of the players has won.
func (o Outcome) IsWin() bool {
	return o == XWins || o == OWins
}

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return "undetermined"
	}
}

func winFor(mark PlayerMark) Outcome {
	if mark == PlayerX {
		return XWins
	}
	return OWins
}

// Rows top to bottom, columns left to right, then the two diagonals.
// CheckWinner reports the first completed line in this order.
var winningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// WhoseTurn derives the mover from the number of placed marks: X on even
// counts, O on odd counts, None once the board is full.
func WhoseTurn(b Board) PlayerMark {
	n := b.Occupied()
	switch {
	case n == len(b):
		return None
	case n%2 == 0:
		return PlayerX
	default:
		return PlayerO
	}
}

// CheckWinner evaluates the board.
func CheckWinner(b Board) Outcome {
	for _, line := range winningLines {
		first := b[line[0]]
		if first != None && first == b[line[1]] && first == b[line[2]] {
			return winFor(first)
		}
	}

	if b.Occupied() == len(b) {
		return Draw
	}
	return Undetermined
}

// NextStates returns every board reachable with one placement by the mover,
// arranged by order. A nil order keeps board order. Finished boards have no
// next states.
func NextStates(b Board, order Orderer) []Board {
	if CheckWinner(b) != Undetermined {
		return nil
	}

	mover := WhoseTurn(b)
	states := make([]Board, 0, len(b)-b.Occupied())
	for i, cell := range b {
		if cell == None {
			next := b
			next[i] = mover
			states = append(states, next)
		}
	}

	if order == nil {
		return states
	}
	return order.Order(states)
}

// ApplyMove places the mover's mark on cell. The caller must ensure cell is
// within [0, CellMax] and empty.
func ApplyMove(b Board, cell int) Board {
	b[cell] = WhoseTurn(b)
	return b
}

// IsSuccessor reports whether next is one of NextStates(prev).
func IsSuccessor(prev, next Board) bool {
	if CheckWinner(prev) != Undetermined {
		return false
	}

	mover := WhoseTurn(prev)
	changed := 0
	for i := range prev {
		if prev[i] == next[i] {
			continue
		}
		if prev[i] != None || next[i] != mover {
			return false
		}
		changed++
	}
	return changed == 1
}
