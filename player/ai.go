package player

import (
	"gametree/experiments/metrics"
	"gametree/game"
	"gametree/searcher"

	"github.com/rs/zerolog/log"
)

// AI plays the moves found by a depth-limited minimax search.
type AI[S game.Match[S, M], M any] struct {
	depth   int
	minimax *searcher.Minimax[S, M]
}

func NewAI[S game.Match[S, M], M any](depth int, opts ...searcher.Option) *AI[S, M] {
	return &AI[S, M]{
		depth:   depth,
		minimax: searcher.NewMinimax[S, M](opts...),
	}
}

func (a *AI[S, M]) Depth() int {
	return a.depth
}

func (a *AI[S, M]) FindMove(state S) (M, metrics.SearchMetric, bool, error) {
	side := state.ToMove()
	move, ok := a.minimax.Choose(state, a.depth, side == game.A)
	metric := a.minimax.Metrics()
	if ok {
		log.Debug().Msgf("side %s searched %d nodes and chose %v", side, metric.Nodes, move)
	}
	return move, metric, ok, nil
}
