package player

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"
)

// Search plays optimally by delegating move choice to a minimax
// searcher.
type Search struct {
	mark     game.Mark
	searcher *searcher.Minimax
}

// NewSearch wraps a searcher as a player. A nil searcher gets the
// default pruned configuration.
func NewSearch(mark game.Mark, m *searcher.Minimax) *Search {
	if m == nil {
		m = searcher.New()
	}
	return &Search{mark: mark, searcher: m}
}

func (s *Search) Mark() game.Mark {
	return s.mark
}

func (s *Search) ChooseMove(state game.GameState) (game.GameMove, bool) {
	return s.searcher.FindBestMove(state)
}

// SearchMetrics exposes the measurements of the last search, for move
// records.
func (s *Search) SearchMetrics() metrics.SearchMetric {
	return s.searcher.Metrics()
}
