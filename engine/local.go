package engine

import (
	"fmt"
	"time"

	"gametree/experiments/metrics"
	"gametree/game"
	"gametree/meta"
	"gametree/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Local runs a match in process, asking the agent of the side to move for
// every move. During a multi-jump the same agent is asked again.
type Local[S game.Match[S, M], M any] struct {
	ID       uuid.UUID
	State    S
	MaxTurns int
	agents   map[game.Side]player.Agent[S, M]
}

func NewLocal[S game.Match[S, M], M any](state S, a, b player.Agent[S, M]) *Local[S, M] {
	if a == nil || b == nil {
		panic("need an agent for both sides")
	}
	return &Local[S, M]{
		ID:       uuid.New(),
		State:    state,
		MaxTurns: meta.MAX_TURNS,
		agents: map[game.Side]player.Agent[S, M]{
			game.A: a,
			game.B: b,
		},
	}
}

// Run executes the game loop until the match is over or MaxTurns moves have
// been played. An agent error ends the match early and is returned with the
// metrics gathered so far.
func (e *Local[S, M]) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	logger := log.With().Str("match", e.ID.String()).Logger()
	gameMetric := metrics.GameMetric{
		ID:             e.ID.String(),
		StartingPlayer: e.State.ToMove().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	logger.Info().Msgf("side %s is starting", e.State.ToMove())

	var err error
	turn := 1
	for !e.State.Over() && turn <= e.MaxTurns {
		side := e.State.ToMove()

		move, searchMetric, ok, findErr := e.agents[side].FindMove(e.State)
		if findErr != nil {
			err = fmt.Errorf("side %s failed to move: %w", side, findErr)
			break
		}
		if !ok {
			panic(fmt.Sprintf("side %s has no move in an unfinished match", side))
		}

		e.State.ApplyMove(move, side == game.A)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       side.String(),
			Move:         fmt.Sprint(move),
			SearchMetric: searchMetric,
		})
		logger.Info().Msgf("turn %d: side %s plays %v", turn, side, move)
		turn++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if winner := e.State.Winner(); winner != game.NoSide {
		gameMetric.Winner = winner.String()
	}

	switch {
	case err != nil:
		logger.Warn().Err(err).Msg("match aborted")
	case gameMetric.Winner != "":
		logger.Info().Msgf("side %s wins after %d moves", gameMetric.Winner, gameMetric.TotalMoves)
	case e.State.Over():
		logger.Info().Msgf("draw after %d moves", gameMetric.TotalMoves)
	default:
		logger.Info().Msgf("stopped after %d turns without a winner", e.MaxTurns)
	}
	return gameMetric, moveMetrics, err
}
