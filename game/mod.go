package game

import "iter"

// Side identifies one of the two players of a match. Side A is the computer
// opponent and the maximizing side of every heuristic.
type Side int8

const (
	NoSide Side = iota
	A
	B
)

func (s Side) Other() Side {
	switch s {
	case A:
		return B
	case B:
		return A
	default:
		return NoSide
	}
}

func (s Side) String() string {
	switch s {
	case A:
		return "A"
	case B:
		return "B"
	default:
		return "none"
	}
}

// Game is what the searcher needs from a position. S is the concrete state
// type returned by Clone, M the move type.
type Game[S any, M any] interface {
	// PossibleMoves enumerates every legal move for the side to move in a
	// deterministic order.
	PossibleMoves() iter.Seq[M]
	// ApplyMove mutates the state. asOpponent attributes the move to side A.
	// It reports whether side A moves next. Only moves obtained from
	// PossibleMoves may be applied.
	ApplyMove(m M, asOpponent bool) bool
	// Heuristic scores the position from side A's perspective.
	Heuristic() int
	Clone() S
}

// Match extends Game with what a driver needs to run a full game.
type Match[S any, M any] interface {
	Game[S, M]
	ToMove() Side
	// Winner returns NoSide while the match is undecided or drawn.
	Winner() Side
	Over() bool
}

// Evaluate scores a state from side A's perspective.
type Evaluate[S any] func(S) int
