package game

import "fmt"

// The validators below are pure checks over a grid. They run once, from
// NewGameState, short-circuiting on the first failure.

// validateMarkCounts checks that marks alternate: the counts may differ
// by at most one.
func validateMarkCounts(grid Grid) error {
	crosses := grid.CrossCount()
	naughts := grid.NaughtCount()
	if absDiff(crosses, naughts) > 1 {
		return fmt.Errorf("%w: %d crosses, %d naughts", ErrWrongMarkCount, crosses, naughts)
	}
	return nil
}

// validateStartingMark checks that when the counts differ, the mark
// with more occurrences is the one that moved first.
func validateStartingMark(grid Grid, startingMark Mark) error {
	crosses := grid.CrossCount()
	naughts := grid.NaughtCount()
	if (crosses > naughts && startingMark == Naught) ||
		(naughts > crosses && startingMark == Cross) {
		return fmt.Errorf("%w: %s", ErrWrongStartingMark, startingMark)
	}
	return nil
}

// validateWinner checks that the winner's count is consistent with that
// mark having just completed the alternation: a winning starter must
// hold one mark more than the opponent, a winning second mover exactly
// as many.
func validateWinner(grid Grid, startingMark, winner Mark) error {
	if winner == NoMark {
		return nil
	}

	winnerCount := grid.CrossCount()
	otherCount := grid.NaughtCount()
	if winner == Naught {
		winnerCount, otherCount = otherCount, winnerCount
	}

	if winner == startingMark {
		if winnerCount <= otherCount {
			return fmt.Errorf("%w: %s", ErrWrongWinner, winner)
		}
	} else if winnerCount != otherCount {
		return fmt.Errorf("%w: %s", ErrWrongWinner, winner)
	}
	return nil
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
