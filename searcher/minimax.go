// Package searcher picks optimal tic-tac-toe moves by exhaustive
// game-tree search: minimax with alpha-beta pruning.
package searcher

import (
	"math"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

type Option func(m *Minimax)

// WithoutPruning disables alpha-beta cutoffs so the search degrades to
// plain minimax. Both variants must pick the identical move; the plain
// one exists as the reference the pruned search is checked against.
func WithoutPruning() Option {
	return func(m *Minimax) {
		m.pruning = false
	}
}

// WithCollector installs a metrics collector measuring each search.
func WithCollector(collector metrics.Collector) Option {
	return func(m *Minimax) {
		if collector != nil {
			m.collector = collector
		}
	}
}

// Minimax evaluates the full game tree below a state and returns the
// move that is optimal for the player whose turn it is, assuming the
// opponent also plays optimally. The tree is at most 9 plies deep, so
// no depth bound is needed.
type Minimax struct {
	pruning   bool
	collector metrics.Collector
	metric    metrics.SearchMetric
}

func New(options ...Option) *Minimax {
	m := &Minimax{
		pruning:   true,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindBestMove returns the optimal move for the current player, or
// false when the state has no legal moves. Every root candidate is
// evaluated with a full alpha-beta window, and ties are broken by the
// first-seen candidate in ascending cell order, so the choice is
// deterministic and identical to plain minimax.
func (m *Minimax) FindBestMove(state game.GameState) (game.GameMove, bool) {
	m.collector.Start(m.pruning)
	defer func() {
		m.metric = m.collector.Complete()
	}()

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.GameMove{}, false
	}

	maximizer := state.CurrentMark()
	best := moves[0]
	bestValue := math.MinInt
	for _, move := range moves {
		value := m.evaluate(move, maximizer, false, math.MinInt, math.MaxInt)
		if value > bestValue {
			best = move
			bestValue = value
		}
	}
	return best, true
}

// Metrics returns the measurements of the most recent FindBestMove.
func (m *Minimax) Metrics() metrics.SearchMetric {
	return m.metric
}

// evaluate scores move's after-state for the maximizer. The maximizing
// flag flips each ply; alpha and beta carry the window used for
// cutoffs. With pruning off the window never narrows and the loop runs
// every sibling.
func (m *Minimax) evaluate(move game.GameMove, maximizer game.Mark, maximizing bool, alpha, beta int) int {
	m.collector.AddNode()

	state := move.AfterState()
	if state.IsOver() {
		return state.Score(maximizer)
	}

	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}
	for _, child := range state.LegalMoves() {
		value := m.evaluate(child, maximizer, !maximizing, alpha, beta)
		if maximizing {
			if value > best {
				best = value
			}
			if m.pruning && best > alpha {
				alpha = best
			}
		} else {
			if value < best {
				best = value
			}
			if m.pruning && best < beta {
				beta = best
			}
		}
		if m.pruning && beta <= alpha {
			m.collector.AddCutoff()
			break
		}
	}
	return best
}
