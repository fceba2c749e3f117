package game

import "fmt"

const (
	// Width is the number of cells per row and column.
	Width = 3
	// Size is the total number of cells on the board.
	Size = Width * Width
)

// Cell holds at most one mark. The zero value is a vacant cell.
type Cell struct {
	mark Mark
}

func EmptyCell() Cell {
	return Cell{}
}

func MarkedCell(m Mark) Cell {
	return Cell{mark: m}
}

func (c Cell) Mark() Mark {
	return c.mark
}

func (c Cell) IsVacant() bool {
	return c.mark == NoMark
}

func (c Cell) IsOccupiedBy(m Mark) bool {
	return c.mark == m && m != NoMark
}

func (c Cell) String() string {
	return c.mark.String()
}

// Grid is the 3x3 board, row-major (index = row*Width + col). It is a
// plain comparable value: copying the struct copies the board.
type Grid struct {
	cells [Size]Cell
}

// NewGrid builds a grid from exactly Size cells, or an all-vacant grid
// when called with no arguments. Any other cell count is a caller bug.
func NewGrid(cells ...Cell) Grid {
	var g Grid
	if len(cells) == 0 {
		return g
	}
	if len(cells) != Size {
		panic(fmt.Sprintf("game: grid needs %d cells, got %d", Size, len(cells)))
	}
	copy(g.cells[:], cells)
	return g
}

// Cells returns the board contents. The array is returned by value, so
// the caller gets its own copy.
func (g Grid) Cells() [Size]Cell {
	return g.cells
}

func (g Grid) EmptyCount() int {
	return g.count(NoMark)
}

func (g Grid) CrossCount() int {
	return g.count(Cross)
}

func (g Grid) NaughtCount() int {
	return g.count(Naught)
}

func (g Grid) count(m Mark) int {
	n := 0
	for _, cell := range g.cells {
		if cell.mark == m {
			n++
		}
	}
	return n
}
