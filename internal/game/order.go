package game

import "math/rand/v2"

// Orderer arranges candidate next states before a search visits them.
type Orderer interface {
	Order(states []Board) []Board
}

// OrderFunc adapts a plain function to the Orderer interface.
type OrderFunc func(states []Board) []Board

func (f OrderFunc) Order(states []Board) []Board {
	return f(states)
}

// BoardOrder leaves states in ascending cell order.
var BoardOrder Orderer = OrderFunc(func(states []Board) []Board { return states })

// PartitionOrder flips a coin for every state and emits the heads bucket
// before the tails bucket. States that land in the same bucket keep their
// board order, so this is not a uniform permutation: it only varies which of
// several equally valued moves a search meets first.
type PartitionOrder struct {
	intN func(n int) int
}

// NewPartitionOrder creates a PartitionOrder drawing from r. A nil r uses the
// global math/rand/v2 source.
func NewPartitionOrder(r *rand.Rand) *PartitionOrder {
	if r == nil {
		return &PartitionOrder{intN: rand.IntN}
	}
	return &PartitionOrder{intN: r.IntN}
}

func (p *PartitionOrder) Order(states []Board) []Board {
	heads := make([]Board, 0, len(states))
	var tails []Board
	for _, s := range states {
		if p.intN(2) == 0 {
			heads = append(heads, s)
		} else {
			tails = append(tails, s)
		}
	}
	return append(heads, tails...)
}

// ShuffleOrder is a uniform Fisher-Yates shuffle of the states.
type ShuffleOrder struct {
	shuffle func(n int, swap func(i, j int))
}

// NewShuffleOrder creates a ShuffleOrder drawing from r. A nil r uses the
// global math/rand/v2 source.
func NewShuffleOrder(r *rand.Rand) *ShuffleOrder {
	if r == nil {
		return &ShuffleOrder{shuffle: rand.Shuffle}
	}
	return &ShuffleOrder{shuffle: r.Shuffle}
}

func (s *ShuffleOrder) Order(states []Board) []Board {
	s.shuffle(len(states), func(i, j int) {
		states[i], states[j] = states[j], states[i]
	})
	return states
}
