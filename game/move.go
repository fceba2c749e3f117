package game

// GameMove records one transition: which mark went where, and immutable
// snapshots of the board before and after. The states are embedded
// copies, so moves never alias each other.
type GameMove struct {
	mark        Mark
	cellIndex   int
	beforeState GameState
	afterState  GameState
}

func (m GameMove) Mark() Mark {
	return m.mark
}

func (m GameMove) CellIndex() int {
	return m.cellIndex
}

func (m GameMove) BeforeState() GameState {
	return m.beforeState
}

func (m GameMove) AfterState() GameState {
	return m.afterState
}
