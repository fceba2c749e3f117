// Package player defines the player capability and the implementations
// that need no I/O: the optimal search player and the random player.
package player

import (
	"fmt"

	"tictactoe/game"
)

// Player is the capability every player implements: it owns a mark and
// can pick a move for a state. ChooseMove reports false when no move is
// available, e.g. on a finished game.
type Player interface {
	Mark() game.Mark
	ChooseMove(state game.GameState) (game.GameMove, bool)
}

// MakeMove is the one call the game loop issues per turn. It is the
// shared behavior derived from the two capability methods: refuse to
// move out of turn, ask the player for a move, and return the resulting
// state.
func MakeMove(p Player, state game.GameState) (game.GameState, error) {
	if p.Mark() != state.CurrentMark() {
		return game.GameState{}, fmt.Errorf("%w: %s", game.ErrNotYourTurn, p.Mark())
	}
	move, ok := p.ChooseMove(state)
	if !ok {
		return game.GameState{}, game.ErrNoPossibleMoves
	}
	return move.AfterState(), nil
}
