// Package console is the terminal frontend: a renderer drawing the
// board and a human player reading moves from an input stream.
package console

import (
	"fmt"
	"io"

	"tictactoe/game"
)

type RendererOption func(r *Renderer)

// WithClearScreen makes the renderer reset the terminal before each
// board, using ANSI escapes.
func WithClearScreen() RendererOption {
	return func(r *Renderer) {
		r.clearScreen = true
	}
}

// Renderer draws the board, a greeting on the untouched board, and the
// outcome banner once the game ends.
type Renderer struct {
	out         io.Writer
	clearScreen bool
}

func NewRenderer(out io.Writer, options ...RendererOption) *Renderer {
	r := &Renderer{out: out}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *Renderer) Render(state game.GameState) {
	if r.clearScreen {
		fmt.Fprint(r.out, "\x1b[2J\x1b[1;1H")
	}
	if state.NotStarted() {
		fmt.Fprintln(r.out, "Nice to see you play")
	}

	r.printGrid(state.Grid())

	if !state.IsOver() {
		return
	}
	if winner := state.Winner(); winner != game.NoMark {
		fmt.Fprintf(r.out, "%s wins!\n", winner)
		fmt.Fprintf(r.out, "The winning cells are: %v\n", state.WinningLine())
	} else {
		fmt.Fprintln(r.out, "No one wins this time")
	}
}

func (r *Renderer) printGrid(grid game.Grid) {
	cells := grid.Cells()
	fmt.Fprintf(r.out, `
        A   B   C
       ------------
     1 ┆  %s │ %s │ %s
       ┆ ───┼───┼───
     2 ┆  %s │ %s │ %s
       ┆ ───┼───┼───
     3 ┆  %s │ %s │ %s

`,
		cells[0], cells[1], cells[2],
		cells[3], cells[4], cells[5],
		cells[6], cells[7], cells[8])
}
