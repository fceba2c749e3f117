package game

import "errors"

// Validation errors are raised only while constructing a GameState; a
// state that fails validation is never created.
var (
	ErrWrongMarkCount    = errors.New("wrong number of naughts and crosses")
	ErrWrongStartingMark = errors.New("wrong starting mark")
	ErrWrongWinner       = errors.New("wrong winner mark")
)

// Move errors are recoverable: the caller may re-prompt or pick another
// move.
var (
	ErrCellOccupied    = errors.New("cell is already marked")
	ErrNotYourTurn     = errors.New("it's the other player's turn")
	ErrNoPossibleMoves = errors.New("no more possible moves")
)
