package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

func emptyState(t *testing.T, startingMark game.Mark) game.GameState {
	t.Helper()
	state, err := game.NewGameState(game.NewGrid(), startingMark)
	require.NoError(t, err)
	return state
}

// playOut applies the given cell indexes in order, starting from an
// empty board.
func playOut(t *testing.T, startingMark game.Mark, cells ...int) game.GameState {
	t.Helper()
	state := emptyState(t, startingMark)
	for _, cell := range cells {
		move, err := state.ApplyMove(cell)
		require.NoError(t, err)
		state = move.AfterState()
	}
	return state
}

func TestFindBestMoveTakesTheWin(t *testing.T) {
	// X holds 0 and 1, O holds 3 and 4; cell 2 wins on the spot.
	state := playOut(t, game.Cross, 0, 3, 1, 4)

	move, ok := New().FindBestMove(state)

	require.True(t, ok)
	require.Equal(t, 2, move.CellIndex(), "the immediate win is the best move")
	require.Equal(t, game.Cross, move.AfterState().Winner())
}

func TestFindBestMoveBlocksTheThreat(t *testing.T) {
	// X threatens the top row at cell 2; every other reply loses.
	state := playOut(t, game.Cross, 0, 3, 1)

	move, ok := New().FindBestMove(state)

	require.True(t, ok)
	require.Equal(t, 2, move.CellIndex())
}

func TestFindBestMoveIsDeterministic(t *testing.T) {
	// From the empty board every opening evaluates to a draw, so the
	// first-seen tie-break must settle on cell 0, every time.
	state := emptyState(t, game.Cross)

	m := New()
	for i := 0; i < 3; i++ {
		move, ok := m.FindBestMove(state)
		require.True(t, ok)
		require.Equal(t, 0, move.CellIndex())
	}
}

func TestFindBestMoveOnFinishedGame(t *testing.T) {
	state := playOut(t, game.Cross, 0, 3, 1, 4, 2) // X wins the top row

	_, ok := New().FindBestMove(state)

	require.False(t, ok, "a finished game offers no move")
}

// TestPruningEquivalence checks that alpha-beta picks the identical
// move as plain minimax on every state reachable from an empty board,
// for either starting mark.
func TestPruningEquivalence(t *testing.T) {
	pruned := New()
	plain := New(WithoutPruning())

	seen := map[game.GameState]bool{}
	frontier := []game.GameState{emptyState(t, game.Cross), emptyState(t, game.Naught)}

	for len(frontier) > 0 {
		state := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if seen[state] {
			continue
		}
		seen[state] = true

		moves := state.LegalMoves()
		if len(moves) == 0 {
			continue
		}

		prunedMove, ok := pruned.FindBestMove(state)
		require.True(t, ok)
		plainMove, ok := plain.FindBestMove(state)
		require.True(t, ok)
		require.Equal(t, plainMove.CellIndex(), prunedMove.CellIndex(),
			"pruning changed the chosen move for state %+v", state)

		for _, move := range moves {
			frontier = append(frontier, move.AfterState())
		}
	}

	require.Greater(t, len(seen), 5000, "the sweep should cover every reachable state")
}

func TestOptimalSelfPlayTies(t *testing.T) {
	m := New()

	state := emptyState(t, game.Cross)
	for steps := 0; !state.IsOver(); steps++ {
		require.Less(t, steps, game.Size)
		move, ok := m.FindBestMove(state)
		require.True(t, ok)
		state = move.AfterState()
	}

	require.True(t, state.IsTie(), "optimal play on both sides always ties")
	require.Equal(t, 0, state.Score(game.Cross))
	require.Equal(t, 0, state.Score(game.Naught))
}

func TestSearchMetrics(t *testing.T) {
	state := emptyState(t, game.Cross)

	pruned := New(WithCollector(metrics.NewCollector()))
	_, ok := pruned.FindBestMove(state)
	require.True(t, ok)
	prunedMetric := pruned.Metrics()

	plain := New(WithoutPruning(), WithCollector(metrics.NewCollector()))
	_, ok = plain.FindBestMove(state)
	require.True(t, ok)
	plainMetric := plain.Metrics()

	require.True(t, prunedMetric.Pruning)
	require.False(t, plainMetric.Pruning)
	require.Positive(t, prunedMetric.Nodes)
	require.Positive(t, prunedMetric.Cutoffs)
	require.Positive(t, prunedMetric.Duration)
	require.Zero(t, plainMetric.Cutoffs, "plain minimax never cuts a branch")
	require.Less(t, prunedMetric.Nodes, plainMetric.Nodes,
		"pruning must visit fewer states than the full sweep")
}

func TestWithoutMetricsCollectsNothing(t *testing.T) {
	m := New()
	_, ok := m.FindBestMove(emptyState(t, game.Cross))

	require.True(t, ok)
	require.Zero(t, m.Metrics(), "the default collector measures nothing")
}
