package player

import (
	"slices"

	"gametree/experiments/metrics"
	"gametree/game"

	"golang.org/x/exp/rand"
)

// Random picks a legal move uniformly at random. A fixed seed replays the
// same choices.
type Random[S game.Match[S, M], M any] struct {
	rng *rand.Rand
}

func NewRandom[S game.Match[S, M], M any](seed uint64) *Random[S, M] {
	return &Random[S, M]{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random[S, M]) FindMove(state S) (M, metrics.SearchMetric, bool, error) {
	moves := slices.Collect(state.PossibleMoves())
	if len(moves) == 0 {
		var zero M
		return zero, metrics.SearchMetric{}, false, nil
	}
	return moves[r.rng.Intn(len(moves))], metrics.SearchMetric{}, true, nil
}
