package experiments

import (
	"fmt"

	"gametree/checkers"
	"gametree/engine"
	"gametree/experiments/metrics"
	"gametree/game"
	"gametree/player"
	"gametree/searcher"
	"gametree/tictactoe"

	"github.com/rs/zerolog/log"
)

// Selfplay pits the search AI (side A) against a random agent (side B).
type Selfplay struct {
	Games int
	Depth int
	Seed  uint64 // Game i uses Seed+i for the random agent
	Out   string
}

type Summary struct {
	Wins   int // Of the search AI
	Losses int
	Draws  int // Including games stopped at the turn limit
	Dir    string
}

func (s Selfplay) RunCheckers() (Summary, error) {
	return run[*checkers.State, checkers.Move](s, "checkers", checkers.New)
}

func (s Selfplay) RunTicTacToe() (Summary, error) {
	return run[*tictactoe.State, tictactoe.Move](s, "tic-tac-toe", tictactoe.New)
}

func run[S game.Match[S, M], M any](s Selfplay, name string, newState func() S) (Summary, error) {
	var summary Summary
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s self-play at depth %d...", name, s.Depth)

	for i := 0; i < s.Games; i++ {
		log.Info().Msgf("starting game %d of %d...", i+1, s.Games)

		e := engine.NewLocal[S, M](
			newState(),
			player.NewAI[S, M](s.Depth, searcher.WithMetrics()),
			player.NewRandom[S, M](s.Seed+uint64(i)),
		)
		gameMetric, moveMetrics, err := e.Run()
		if err != nil {
			return summary, fmt.Errorf("game %d: %w", i+1, err)
		}

		switch gameMetric.Winner {
		case game.A.String():
			summary.Wins++
		case game.B.String():
			summary.Losses++
		default:
			summary.Draws++
		}
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Depth:      s.Depth,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d of %d with winner: %q", i+1, s.Games, gameMetric.Winner)
	}

	log.Info().Msgf("completed %s self-play: %d wins, %d losses, %d draws", name, summary.Wins, summary.Losses, summary.Draws)

	writer, err := metrics.NewWriter(s.Out)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return summary, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return summary, nil
}
