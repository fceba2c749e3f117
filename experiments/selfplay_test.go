package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tictactoe/game"
)

func TestSelfPlayRejectsNonPositiveGames(t *testing.T) {
	_, err := SelfPlay(0)
	require.Error(t, err)
}

func TestSelfPlay(t *testing.T) {
	result, err := SelfPlay(2)

	require.NoError(t, err)
	require.Len(t, result.GameRecords, 2)
	require.Len(t, result.MoveRecords, 18, "optimal games always run the full 9 moves")

	require.Equal(t, game.Cross, result.GameRecords[0].StartingMark)
	require.Equal(t, game.Naught, result.GameRecords[1].StartingMark,
		"the starting mark alternates per game")

	for _, record := range result.GameRecords {
		require.Equal(t, game.NoMark, record.Winner, "optimal self-play always ties")
		require.Equal(t, 9, record.Moves)
		require.Positive(t, record.Duration)
	}
	for _, record := range result.MoveRecords {
		require.True(t, record.Pruning)
		require.Positive(t, record.Nodes)
	}

	require.Equal(t, 18, result.Summary.Searches)
	require.Positive(t, result.Summary.MeanNodes)
	require.Empty(t, result.ResultsDir, "nothing is written without a results dir")
}

func TestSelfPlayWithoutPruning(t *testing.T) {
	result, err := SelfPlay(1, WithoutPruning())

	require.NoError(t, err)
	require.Equal(t, game.NoMark, result.GameRecords[0].Winner)
	for _, record := range result.MoveRecords {
		require.False(t, record.Pruning)
		require.Zero(t, record.Cutoffs)
	}
}

func TestSelfPlayWritesRecords(t *testing.T) {
	dir := t.TempDir()

	result, err := SelfPlay(1, WithResultsDir(dir))

	require.NoError(t, err)
	require.NotEmpty(t, result.ResultsDir)

	for _, name := range []string{"game_records.csv", "move_records.csv"} {
		info, err := os.Stat(filepath.Join(result.ResultsDir, name))
		require.NoError(t, err)
		require.Positive(t, info.Size())
	}
}
