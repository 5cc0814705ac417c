package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"gametree/experiments/metrics"
	"gametree/utils"
)

var ErrNoInput = errors.New("input closed before a move was entered")

// Human reads moves typed at a console. Invalid input is reported and the
// prompt repeated; the board is left untouched.
type Human[S Playable[S, M], M any] struct {
	in     *bufio.Scanner
	out    io.Writer
	prompt string
}

func NewHuman[S Playable[S, M], M any](in io.Reader, out io.Writer, prompt string) *Human[S, M] {
	return &Human[S, M]{
		in:     bufio.NewScanner(in),
		out:    out,
		prompt: prompt,
	}
}

func (h *Human[S, M]) FindMove(state S) (M, metrics.SearchMetric, bool, error) {
	var zero M
	if _, ok := utils.First(state.PossibleMoves()); !ok {
		return zero, metrics.SearchMetric{}, false, nil
	}

	if err := state.Render(h.out); err != nil {
		return zero, metrics.SearchMetric{}, false, fmt.Errorf("failed to render board: %w", err)
	}
	for {
		fmt.Fprint(h.out, h.prompt)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return zero, metrics.SearchMetric{}, false, fmt.Errorf("failed to read move: %w", err)
			}
			return zero, metrics.SearchMetric{}, false, ErrNoInput
		}

		move, err := state.ParseMove(h.in.Text())
		if err != nil {
			fmt.Fprintln(h.out, err)
			continue
		}
		return move, metrics.SearchMetric{}, true, nil
	}
}
