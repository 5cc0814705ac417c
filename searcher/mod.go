package searcher

import (
	"math"

	"gametree/experiments/metrics"
)

// Bounds of every score; heuristics must stay strictly inside them.
const (
	ScoreMax = math.MaxInt
	ScoreMin = -math.MaxInt
)

type Option func(o *options)

type options struct {
	evaluate any // game.Evaluate[S], checked by NewMinimax
	metrics  metrics.Collector
}

// WithMetrics records nodes, leaves and cutoffs of every search.
func WithMetrics() Option {
	return func(o *options) {
		o.metrics = metrics.NewCollector()
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(o *options) {
		if collector != nil {
			o.metrics = collector
		}
	}
}

// WithEvaluationFn replaces the state's own Heuristic at the leaves. The
// function must be a game.Evaluate of the searched state type.
func WithEvaluationFn(evaluate any) Option {
	return func(o *options) {
		if evaluate != nil {
			o.evaluate = evaluate
		}
	}
}
