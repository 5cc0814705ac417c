package searcher

import (
	"fmt"

	"gametree/experiments/metrics"
	"gametree/game"
	"gametree/utils"

	"github.com/rs/zerolog/log"
)

// Minimax is a depth-limited minimax search with alpha-beta pruning over any
// game.Game. Side A maximizes the evaluation, side B minimizes it.
type Minimax[S game.Game[S, M], M any] struct {
	evaluate game.Evaluate[S]
	metrics  metrics.Collector
	last     metrics.SearchMetric
}

func NewMinimax[S game.Game[S, M], M any](opts ...Option) *Minimax[S, M] {
	o := options{ // Default values
		metrics: metrics.NewDummyCollector(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	m := &Minimax[S, M]{
		evaluate: func(s S) int { return s.Heuristic() },
		metrics:  o.metrics,
	}
	if o.evaluate != nil {
		evaluate, ok := o.evaluate.(game.Evaluate[S])
		if !ok {
			fn, ok := o.evaluate.(func(S) int)
			if !ok {
				panic(fmt.Sprintf("evaluation function %T does not match state type", o.evaluate))
			}
			evaluate = fn
		}
		m.evaluate = evaluate
	}
	return m
}

// Choose is a one-off search with default options.
func Choose[S game.Game[S, M], M any](state S, depth int, forOpponent bool) (M, bool) {
	return NewMinimax[S, M]().Choose(state, depth, forOpponent)
}

// Choose returns the best move for the side to move within depth plies, or
// false when there is no legal move. forOpponent selects the side searched
// for: side A maximizes, side B minimizes. Ties go to the first move
// enumerated. With depth 0 the first legal move is returned. state is never
// mutated.
func (m *Minimax[S, M]) Choose(state S, depth int, forOpponent bool) (M, bool) {
	m.metrics.Start(depth)
	defer m.complete(forOpponent)

	if depth <= 0 {
		return utils.First(state.PossibleMoves())
	}

	var best M
	found := false
	bestScore := 0
	alpha, beta := ScoreMin, ScoreMax
	for move := range state.PossibleMoves() {
		child := state.Clone()
		opponentNext := child.ApplyMove(move, forOpponent)
		score := m.search(child, depth-1, opponentNext, alpha, beta)

		if forOpponent {
			if !found || score > bestScore {
				best, bestScore, found = move, score, true
			}
			alpha = max(alpha, bestScore)
		} else {
			if !found || score < bestScore {
				best, bestScore, found = move, score, true
			}
			beta = min(beta, bestScore)
		}
	}
	return best, found
}

// Metrics returns the metrics of the last completed search. They are zero
// unless the searcher was built WithMetrics or WithCollector.
func (m *Minimax[S, M]) Metrics() metrics.SearchMetric {
	return m.last
}

func (m *Minimax[S, M]) complete(forOpponent bool) {
	m.last = m.metrics.Complete()
	log.Debug().
		Bool("opponent", forOpponent).
		Int("depth", m.last.Depth).
		Int("nodes", m.last.Nodes).
		Int("cutoffs", m.last.Cutoffs).
		Dur("elapsed", m.last.Duration).
		Msg("minimax search complete")
}

// search evaluates state to the given depth. maximizing is true when side A
// is to move. A node without children is scored by the evaluation function.
func (m *Minimax[S, M]) search(state S, depth int, maximizing bool, alpha, beta int) int {
	m.metrics.AddNode()

	if depth <= 0 {
		m.metrics.AddLeaf()
		return m.evaluate(state)
	}

	expanded := false
	var best int
	if maximizing {
		best = ScoreMin
		for move := range state.PossibleMoves() {
			expanded = true
			child := state.Clone()
			opponentNext := child.ApplyMove(move, true)
			best = max(best, m.search(child, depth-1, opponentNext, alpha, beta))
			alpha = max(alpha, best)
			if beta <= alpha {
				m.metrics.AddCutoff()
				break
			}
		}
	} else {
		best = ScoreMax
		for move := range state.PossibleMoves() {
			expanded = true
			child := state.Clone()
			opponentNext := child.ApplyMove(move, false)
			best = min(best, m.search(child, depth-1, opponentNext, alpha, beta))
			beta = min(beta, best)
			if beta <= alpha {
				m.metrics.AddCutoff()
				break
			}
		}
	}

	if !expanded { // Terminal node
		m.metrics.AddLeaf()
		return m.evaluate(state)
	}
	return best
}
