// Package engine runs a game of tic-tac-toe between two players: render,
// check for the end, ask the current player for a move, apply, repeat.
// The loop is fully synchronous.
package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/player"
)

// Renderer displays a state to the outside world. The engine calls it
// before every move and once more on the final state.
type Renderer interface {
	Render(state game.GameState)
}

type Option func(e *Engine)

// WithErrorHandler makes move errors recoverable: the handler is called
// and the loop re-asks the same player. Without a handler a move error
// aborts Run.
func WithErrorHandler(handler func(error)) Option {
	return func(e *Engine) {
		e.handler = handler
	}
}

// WithGameID overrides the generated game identifier.
func WithGameID(id uuid.UUID) Option {
	return func(e *Engine) {
		e.id = id
	}
}

// Engine holds two players and a renderer for one game at a time.
type Engine struct {
	player1  player.Player
	player2  player.Player
	renderer Renderer
	handler  func(error)
	id       uuid.UUID
	records  []metrics.MoveRecord
}

// New wires up an engine. The players must hold different marks. A nil
// renderer is allowed for headless games.
func New(player1, player2 player.Player, renderer Renderer, options ...Option) (*Engine, error) {
	if player1.Mark() == player2.Mark() {
		return nil, fmt.Errorf("both players hold mark %s", player1.Mark())
	}
	e := &Engine{
		player1:  player1,
		player2:  player2,
		renderer: renderer,
		id:       uuid.New(),
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// ID returns the game identifier used in logs and records.
func (e *Engine) ID() uuid.UUID {
	return e.id
}

// MoveRecords returns one record per move applied during the last Run.
func (e *Engine) MoveRecords() []metrics.MoveRecord {
	return e.records
}

// searchMetrics is implemented by players that search for their moves.
type searchMetrics interface {
	SearchMetrics() metrics.SearchMetric
}

// Run plays a full game from an empty board and returns the terminal
// state. NoMark as startingMark selects the default starter, Cross.
func (e *Engine) Run(startingMark game.Mark) (game.GameState, error) {
	state, err := game.NewGameState(game.NewGrid(), startingMark)
	if err != nil {
		return game.GameState{}, err
	}

	log.Info().Msgf("game %s: %s starts", e.id, state.CurrentMark())

	e.records = nil
	step := 0
	for {
		if e.renderer != nil {
			e.renderer.Render(state)
		}
		if state.IsOver() {
			break
		}

		current := e.currentPlayer(state)
		next, err := player.MakeMove(current, state)
		if err != nil {
			// A player out of moves on a live board cannot recover;
			// retrying would ask the same player forever.
			if errors.Is(err, game.ErrNoPossibleMoves) || e.handler == nil {
				return state, err
			}
			e.handler(err)
			continue
		}

		step++
		e.record(step, state, next, current)
		state = next
	}

	if winner := state.Winner(); winner != game.NoMark {
		log.Info().Msgf("game %s: %s wins after %d moves", e.id, winner, step)
	} else {
		log.Info().Msgf("game %s: tie after %d moves", e.id, step)
	}
	return state, nil
}

func (e *Engine) currentPlayer(state game.GameState) player.Player {
	if state.CurrentMark() == e.player1.Mark() {
		return e.player1
	}
	return e.player2
}

func (e *Engine) record(step int, before, after game.GameState, p player.Player) {
	record := metrics.MoveRecord{
		Game: e.id,
		Step: step,
		Mark: before.CurrentMark(),
		Cell: playedCell(before, after),
	}
	if sm, ok := p.(searchMetrics); ok {
		record.SearchMetric = sm.SearchMetrics()
	}
	e.records = append(e.records, record)

	log.Debug().Msgf("game %s: step %d, %s plays cell %d", e.id, step, record.Mark, record.Cell)
}

// playedCell finds the one cell that changed between two states.
func playedCell(before, after game.GameState) int {
	b := before.Grid().Cells()
	a := after.Grid().Cells()
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}
