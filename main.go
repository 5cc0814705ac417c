package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gametree/checkers"
	"gametree/config"
	"gametree/engine"
	"gametree/experiments"
	"gametree/game"
	"gametree/meta"
	"gametree/player"
	"gametree/searcher"
	"gametree/tictactoe"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	setLogLevel(cfg.Development)

	if cfg.Selfplay.Games > 0 {
		runSelfplay(cfg)
		return
	}

	in := bufio.NewReader(os.Stdin)
	if cfg.Game.Kind == config.Unselected {
		cfg.Game.Kind = config.GameKind(promptInt(in, "Choose a game (1: tic-tac-toe, 2: connect-4, 3: checkers): ", 1, 3))
	}
	if cfg.Game.Kind == config.ConnectFour {
		fmt.Println("Connect 4 is not implemented yet.")
		return
	}
	if cfg.Game.Difficulty == 0 {
		cfg.Game.Difficulty = promptInt(in, "Choose a difficulty (1 or more): ", 1, 0)
	}
	log.Debug().Msgf("playing %s at depth %d", cfg.Game.Kind, cfg.Depth())

	switch cfg.Game.Kind {
	case config.TicTacToe:
		err = play[*tictactoe.State, tictactoe.Move](tictactoe.New(), cfg, in, "Enter your move (e.g. B2): ")
	case config.Checkers:
		err = play[*checkers.State, checkers.Move](checkers.New(), cfg, in, "Enter your move (e.g. B6 A5): ")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

func setLogLevel(dev config.DevelopmentConfig) {
	level, err := zerolog.ParseLevel(dev.LogLevel)
	if err != nil {
		log.Warn().Msgf("unknown log level %q, using info", dev.LogLevel)
		level = zerolog.InfoLevel
	}
	if dev.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}

// promptInt asks until a number in [lo, hi] is entered. hi <= 0 leaves the
// range open.
func promptInt(in *bufio.Reader, prompt string, lo, hi int) int {
	for {
		fmt.Print(prompt)
		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			log.Fatal().Err(err).Msg("failed to read input")
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && n >= lo && (hi <= 0 || n <= hi) {
			return n
		}
		fmt.Println("Please enter a valid number.")
		if err != nil {
			log.Fatal().Msg("no more input")
		}
	}
}

// play runs an interactive match of the human (side B) against the computer
// (side A).
func play[S player.Playable[S, M], M any](state S, cfg *config.Config, in io.Reader, prompt string) error {
	var opts []searcher.Option
	if cfg.Search.Metrics {
		opts = append(opts, searcher.WithMetrics())
	}
	e := engine.NewLocal[S, M](
		state,
		player.NewAI[S, M](cfg.Depth(), opts...),
		player.NewHuman[S, M](in, os.Stdout, prompt),
	)

	gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return err
	}

	if cfg.Search.Metrics {
		for _, mm := range moveMetrics {
			if mm.Player == game.A.String() {
				log.Info().Msgf("move %d %s: %d nodes, %d leaves, %d cutoffs in %s", mm.Step, mm.Move, mm.Nodes, mm.Leaves, mm.Cutoffs, mm.Duration)
			}
		}
	}

	if err := e.State.Render(os.Stdout); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}
	switch gameMetric.Winner {
	case game.A.String():
		fmt.Println("The computer wins.")
	case game.B.String():
		fmt.Println("You win!")
	default:
		if e.State.Over() {
			fmt.Println("It's a draw.")
		} else {
			fmt.Printf("No winner after %d turns.\n", e.MaxTurns)
		}
	}
	return nil
}

func runSelfplay(cfg *config.Config) {
	if cfg.Game.Kind == config.Unselected {
		cfg.Game.Kind = config.Checkers
	}
	if cfg.Game.Difficulty == 0 {
		cfg.Game.Difficulty = meta.DIFFICULTY
	}
	s := experiments.Selfplay{
		Games: cfg.Selfplay.Games,
		Depth: cfg.Depth(),
		Seed:  cfg.Selfplay.Seed,
		Out:   cfg.Selfplay.Out,
	}

	var summary experiments.Summary
	var err error
	switch cfg.Game.Kind {
	case config.TicTacToe:
		summary, err = s.RunTicTacToe()
	case config.Checkers:
		summary, err = s.RunCheckers()
	default:
		log.Fatal().Msgf("self-play is not available for %s", cfg.Game.Kind)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}
	fmt.Printf("%d wins, %d losses, %d draws; records in %s\n", summary.Wins, summary.Losses, summary.Draws, summary.Dir)
}
