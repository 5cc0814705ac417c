package player

import (
	"io"

	"gametree/experiments/metrics"
	"gametree/game"
)

// Agent decides the moves of one side of a match.
type Agent[S game.Match[S, M], M any] interface {
	// FindMove returns the move to play in state, or false when the side to
	// move has none. The search metrics are zero for agents that do not
	// search.
	FindMove(state S) (M, metrics.SearchMetric, bool, error)
}

// Playable is a match that can be shown to and entered by a person.
type Playable[S any, M any] interface {
	game.Match[S, M]
	Render(w io.Writer) error
	ParseMove(text string) (M, error)
}
