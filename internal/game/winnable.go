package game

// IsWinnable reports whether any continuation of play from b ends with a
// player winning. It walks the whole remaining game tree when the answer is
// false, which stays small on a 3x3 board.
func IsWinnable(b Board) bool {
	if CheckWinner(b).IsWin() {
		return true
	}

	for _, next := range NextStates(b, BoardOrder) {
		if IsWinnable(next) {
			return true
		}
	}
	return false
}
