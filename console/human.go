package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"tictactoe/game"
)

// Human reads moves from an input stream, re-prompting on bad input or
// occupied cells. End of input means the player gives up choosing.
type Human struct {
	mark game.Mark
	in   *bufio.Reader
	out  io.Writer
}

func NewHuman(mark game.Mark, in io.Reader, out io.Writer) *Human {
	return &Human{
		mark: mark,
		in:   bufio.NewReader(in),
		out:  out,
	}
}

func (h *Human) Mark() game.Mark {
	return h.mark
}

func (h *Human) ChooseMove(state game.GameState) (game.GameMove, bool) {
	for !state.IsOver() {
		fmt.Fprintf(h.out, "%s's move: ", h.mark)

		line, err := h.in.ReadString('\n')
		if err != nil && line == "" {
			return game.GameMove{}, false
		}

		index, ok := ParseCoord(strings.TrimSpace(line))
		if !ok {
			fmt.Fprintln(h.out, "Invalid input. Try again.")
			continue
		}

		move, err := state.ApplyMove(index)
		if err != nil {
			fmt.Fprintln(h.out, "That cell is already occupied.")
			continue
		}
		return move, true
	}
	return game.GameMove{}, false
}

// ParseCoord turns a two-character board coordinate into a cell index.
// The first character picks the row (A/B/C or 1/2/3), the second the
// column (1/2/3 or A/B/C), so B2, 22 and 2B all name the center cell.
func ParseCoord(coord string) (int, bool) {
	runes := []rune(coord)
	if len(runes) != 2 {
		return 0, false
	}

	row, ok := axisIndex(runes[0])
	if !ok {
		return 0, false
	}
	col, ok := axisIndex(runes[1])
	if !ok {
		return 0, false
	}
	return row*game.Width + col, true
}

func axisIndex(r rune) (int, bool) {
	switch r {
	case 'A', '1':
		return 0, true
	case 'B', '2':
		return 1, true
	case 'C', '3':
		return 2, true
	default:
		return 0, false
	}
}
