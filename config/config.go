package config

import (
	"errors"
	"fmt"
	"strings"

	"gametree/meta"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type GameKind int

const (
	Unselected GameKind = iota // Ask at the console
	TicTacToe
	ConnectFour
	Checkers
)

func (k GameKind) String() string {
	switch k {
	case TicTacToe:
		return "tic-tac-toe"
	case ConnectFour:
		return "connect-4"
	case Checkers:
		return "checkers"
	default:
		return "unselected"
	}
}

type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	Search      SearchConfig      `mapstructure:"search"`
	Selfplay    SelfplayConfig    `mapstructure:"selfplay"`
	Development DevelopmentConfig `mapstructure:"development"`
}

type GameConfig struct {
	Kind       GameKind `mapstructure:"kind"`
	Difficulty int      `mapstructure:"difficulty"` // 0 asks at the console
}

type SearchConfig struct {
	CheckersPlyPerLevel  int  `mapstructure:"checkers_ply_per_level"`
	TicTacToePlyPerLevel int  `mapstructure:"tictactoe_ply_per_level"`
	Metrics              bool `mapstructure:"metrics"`
}

type SelfplayConfig struct {
	Games int    `mapstructure:"games"` // 0 plays interactively
	Seed  uint64 `mapstructure:"seed"`
	Out   string `mapstructure:"out"`
}

type DevelopmentConfig struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// Depth is the search depth for the configured game and difficulty.
func (c *Config) Depth() int {
	switch c.Game.Kind {
	case Checkers:
		return c.Search.CheckersPlyPerLevel * c.Game.Difficulty
	case TicTacToe:
		return c.Search.TicTacToePlyPerLevel * c.Game.Difficulty
	default:
		return 0
	}
}

// Load reads the configuration from, in increasing precedence: defaults,
// config.yaml in . or ./config (or the file given by --config), GAMETREE_*
// environment variables and command line flags.
func Load(args []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Enable environment variables
	v.SetEnvPrefix("GAMETREE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	v.SetDefault("game.kind", int(Unselected))
	v.SetDefault("game.difficulty", 0)
	v.SetDefault("search.checkers_ply_per_level", meta.CHECKERS_PLY_PER_LEVEL)
	v.SetDefault("search.tictactoe_ply_per_level", meta.TICTACTOE_PLY_PER_LEVEL)
	v.SetDefault("search.metrics", false)
	v.SetDefault("selfplay.games", 0)
	v.SetDefault("selfplay.seed", 1)
	v.SetDefault("selfplay.out", meta.SELFPLAY_DIR)
	v.SetDefault("development.debug", false)
	v.SetDefault("development.log_level", "info")

	flags := pflag.NewFlagSet("gametree", pflag.ContinueOnError)
	configFile := flags.String("config", "", "path of a yaml config file")
	flags.Int("game", 0, "game to play: 1 tic-tac-toe, 2 connect-4, 3 checkers")
	flags.Int("difficulty", 0, "search difficulty level, a positive integer")
	flags.Bool("metrics", false, "log search metrics of every computer move")
	flags.Int("selfplay", 0, "play this many checkers games of the computer against a random agent")
	flags.Lookup("selfplay").NoOptDefVal = fmt.Sprint(meta.SELFPLAY_GAMES)
	flags.Uint64("seed", 1, "seed of the random agent in self-play")
	flags.String("out", meta.SELFPLAY_DIR, "directory of self-play records")
	flags.String("log-level", "info", "log level: trace, debug, info, warn or error")
	flags.Bool("debug", false, "shorthand for --log-level=debug")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	for key, flag := range map[string]string{
		"game.kind":             "game",
		"game.difficulty":       "difficulty",
		"search.metrics":        "metrics",
		"selfplay.games":        "selfplay",
		"selfplay.seed":         "seed",
		"selfplay.out":          "out",
		"development.log_level": "log-level",
		"development.debug":     "debug",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	// Read config
	if *configFile != "" {
		v.SetConfigFile(*configFile)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var ErrInvalid = errors.New("invalid configuration")

func (c *Config) validate() error {
	if c.Game.Kind < Unselected || c.Game.Kind > Checkers {
		return fmt.Errorf("%w: unknown game %d", ErrInvalid, c.Game.Kind)
	}
	if c.Game.Difficulty < 0 {
		return fmt.Errorf("%w: difficulty must be positive", ErrInvalid)
	}
	if c.Selfplay.Games < 0 {
		return fmt.Errorf("%w: self-play game count must be positive", ErrInvalid)
	}
	if c.Search.CheckersPlyPerLevel <= 0 || c.Search.TicTacToePlyPerLevel <= 0 {
		return fmt.Errorf("%w: ply per level must be positive", ErrInvalid)
	}
	return nil
}
