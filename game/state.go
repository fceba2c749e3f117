package game

import "fmt"

// winLines lists every three-in-a-row on the board in scan priority
// order: rows top to bottom, columns left to right, then the two
// diagonals. Winner and WinningLine report the first match, checking
// Cross before Naught; under legal play only one line can ever match.
var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// GameState is a validated board snapshot plus the mark that moved
// first. Once constructed it is internally consistent and never edited;
// ApplyMove builds a new state instead.
type GameState struct {
	grid         Grid
	startingMark Mark
}

// NewGameState validates the grid against the starting mark and returns
// the state, or a validation error naming the broken invariant. Passing
// NoMark selects the default starting mark, Cross. Construction is the
// only gate: every GameState in circulation has passed it.
func NewGameState(grid Grid, startingMark Mark) (GameState, error) {
	if startingMark == NoMark {
		startingMark = Cross
	}
	state := GameState{grid: grid, startingMark: startingMark}

	if err := validateMarkCounts(grid); err != nil {
		return GameState{}, err
	}
	if err := validateStartingMark(grid, startingMark); err != nil {
		return GameState{}, err
	}
	if err := validateWinner(grid, startingMark, state.Winner()); err != nil {
		return GameState{}, err
	}
	return state, nil
}

func (s GameState) Grid() Grid {
	return s.grid
}

func (s GameState) StartingMark() Mark {
	return s.startingMark
}

// CurrentMark derives whose turn it is from the mark counts: equal
// counts mean the starting mark is up next.
func (s GameState) CurrentMark() Mark {
	if s.grid.CrossCount() == s.grid.NaughtCount() {
		return s.startingMark
	}
	return s.startingMark.Other()
}

// Winner returns the mark holding a full line, or NoMark when nobody
// has won yet.
func (s GameState) Winner() Mark {
	for _, mark := range [2]Mark{Cross, Naught} {
		for _, line := range winLines {
			if s.holdsLine(mark, line) {
				return mark
			}
		}
	}
	return NoMark
}

// WinningLine returns the cell indexes of the winning line, or nil when
// there is no winner. The scan order matches Winner.
func (s GameState) WinningLine() []int {
	for _, mark := range [2]Mark{Cross, Naught} {
		for _, line := range winLines {
			if s.holdsLine(mark, line) {
				return []int{line[0], line[1], line[2]}
			}
		}
	}
	return nil
}

func (s GameState) holdsLine(mark Mark, line [3]int) bool {
	for _, i := range line {
		if !s.grid.cells[i].IsOccupiedBy(mark) {
			return false
		}
	}
	return true
}

func (s GameState) NotStarted() bool {
	return s.grid.EmptyCount() == Size
}

// IsOver reports whether the game has ended, by a win or a full board.
func (s GameState) IsOver() bool {
	return s.Winner() != NoMark || s.IsTie()
}

func (s GameState) IsTie() bool {
	return s.grid.EmptyCount() == 0 && s.Winner() == NoMark
}

// ApplyMove places the current mark on the given cell and returns the
// transition as a GameMove. The receiver is untouched; the new state is
// rebuilt through NewGameState so it passes the same validation gate.
func (s GameState) ApplyMove(cellIndex int) (GameMove, error) {
	if !s.grid.cells[cellIndex].IsVacant() {
		return GameMove{}, fmt.Errorf("%w: %d", ErrCellOccupied, cellIndex)
	}

	mark := s.CurrentMark()
	grid := s.grid
	grid.cells[cellIndex] = MarkedCell(mark)

	after, err := NewGameState(grid, s.startingMark)
	if err != nil {
		return GameMove{}, err
	}

	return GameMove{
		mark:        mark,
		cellIndex:   cellIndex,
		beforeState: s,
		afterState:  after,
	}, nil
}

// LegalMoves returns a move per vacant cell in ascending index order, or
// nothing once the game is over. Search relies on this order for
// deterministic tie-breaking.
func (s GameState) LegalMoves() []GameMove {
	if s.IsOver() {
		return nil
	}
	var moves []GameMove
	for i, cell := range s.grid.cells {
		if !cell.IsVacant() {
			continue
		}
		move, err := s.ApplyMove(i)
		if err != nil {
			continue
		}
		moves = append(moves, move)
	}
	return moves
}

// Score rates a finished game from the maximizing player's point of
// view: +1 win, -1 loss, 0 tie. Calling it before the game is over is a
// caller bug.
func (s GameState) Score(maximizing Mark) int {
	if !s.IsOver() {
		panic("game: Score called on an unfinished game")
	}
	switch {
	case s.IsTie():
		return 0
	case s.Winner() == maximizing:
		return 1
	default:
		return -1
	}
}
