package engine

import "gametree/experiments/metrics"

type Engine interface {
	// Run plays a match till it is over or a max number of turns is reached
	Run() (metrics.GameMetric, []metrics.MoveMetric, error)
}
