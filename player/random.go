package player

import (
	"golang.org/x/exp/rand"

	"tictactoe/game"
)

// Random picks uniformly among the legal moves. It is the baseline
// opponent for measuring the search player.
type Random struct {
	mark game.Mark
}

func NewRandom(mark game.Mark) *Random {
	return &Random{mark: mark}
}

func (r *Random) Mark() game.Mark {
	return r.mark
}

func (r *Random) ChooseMove(state game.GameState) (game.GameMove, bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.GameMove{}, false
	}
	return moves[rand.Intn(len(moves))], true
}
