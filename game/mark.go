// Package game holds the board model for tic-tac-toe: marks, cells, the
// 3x3 grid, validated game states and the moves between them. Everything
// is a plain value; operations never mutate, they return new values.
package game

// Mark is one of the two players' symbols. The zero value NoMark stands
// for a vacant cell (and for "no winner").
type Mark uint8

const (
	NoMark Mark = iota
	Cross
	Naught
)

// Other returns the opposing mark. NoMark has no opponent and maps to
// itself.
func (m Mark) Other() Mark {
	switch m {
	case Cross:
		return Naught
	case Naught:
		return Cross
	default:
		return NoMark
	}
}

func (m Mark) String() string {
	switch m {
	case Cross:
		return "X"
	case Naught:
		return "O"
	default:
		return " "
	}
}
