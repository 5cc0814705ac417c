// meta/meta.go
package meta

// CHECKERS_PLY_PER_LEVEL is the checkers search depth per difficulty level.
const CHECKERS_PLY_PER_LEVEL = 6

// TICTACTOE_PLY_PER_LEVEL is the tic-tac-toe search depth per difficulty level.
const TICTACTOE_PLY_PER_LEVEL = 3

// DIFFICULTY is used when none is configured.
const DIFFICULTY = 1

// MAX_TURNS bounds a single match.
const MAX_TURNS = 500

// SELFPLAY_GAMES is the default number of self-play games per experiment.
const SELFPLAY_GAMES = 10

const SELFPLAY_DIR = "experiments/selfplay"
