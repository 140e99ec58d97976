package bot

import "ctchen222/tictactoe/internal/game"

// Bounds for alpha and beta, well outside the [-1, 1] range of values.
const (
	maxValue = 1000.0
	minValue = -maxValue
)

// node is one board in the search tree built by a single Search call.
type node struct {
	state    game.Board
	value    float64
	children []*node
}

// Result is the outcome of a search from one board.
type Result struct {
	Board game.Board // chosen next board, valid when Found
	Value float64    // backed-up value of the root, from the mover's side
	Nodes int        // boards visited
	Found bool
}

// Searcher picks moves with an exhaustive minimax search and alpha-beta
// pruning. Wins score 1/depth and losses -1/depth, so a faster win or a
// slower loss is preferred. The tree is rebuilt on every call.
type Searcher struct {
	order game.Orderer
}

// NewSearcher creates a Searcher that visits children in the given order.
// A nil order uses a randomly seeded game.PartitionOrder.
func NewSearcher(order game.Orderer) *Searcher {
	if order == nil {
		order = game.NewPartitionOrder(nil)
	}
	return &Searcher{order: order}
}

// BestMove returns the best next board for the side to move. It returns
// false when the board has no next states.
func (s *Searcher) BestMove(b game.Board) (game.Board, bool) {
	res := s.Search(b)
	return res.Board, res.Found
}

// Search evaluates b and returns the first root child whose value matches
// the root value.
func (s *Searcher) Search(b game.Board) Result {
	run := &search{order: s.order, player: game.WhoseTurn(b)}
	root := &node{state: b}
	best := run.evaluate(root, true, 0, minValue, maxValue)
	root.value = best

	res := Result{Value: best, Nodes: run.nodes}
	for _, child := range root.children {
		// Values are 0 or ±1/depth computed the same way, so == is exact.
		if child.value == best {
			res.Board = child.state
			res.Found = true
			break
		}
	}
	return res
}

type search struct {
	order  game.Orderer
	player game.PlayerMark
	nodes  int
}

func (s *search) evaluate(n *node, maximizing bool, depth int, alpha, beta float64) float64 {
	s.nodes++

	states := game.NextStates(n.state, s.order)
	if len(states) == 0 {
		return terminalValue(game.CheckWinner(n.state), s.player, depth)
	}

	value := maxValue
	if maximizing {
		value = minValue
	}

	for _, state := range states {
		child := &node{state: state}
		child.value = s.evaluate(child, !maximizing, depth+1, alpha, beta)
		n.children = append(n.children, child)

		if maximizing {
			value = max(value, child.value)
			alpha = max(alpha, value)
			if value >= beta {
				break
			}
		} else {
			value = min(value, child.value)
			beta = min(beta, value)
			if value <= alpha {
				break
			}
		}
	}

	return value
}

// terminalValue scores a finished board for player.
func terminalValue(outcome game.Outcome, player game.PlayerMark, depth int) float64 {
	if depth < 1 {
		depth = 1
	}

	switch winner := outcome.Winner(); {
	case winner == game.None:
		return 0
	case winner == player:
		return 1 / float64(depth)
	default:
		return -1 / float64(depth)
	}
}
