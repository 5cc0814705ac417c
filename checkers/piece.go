package checkers

import "gametree/game"

// Piece is the content of a dark square. Side A (x) moves down the board
// towards higher rows, side B (o) moves up.
type Piece int8

const (
	Empty Piece = iota
	ManA
	ManB
	KingA
	KingB
)

func (p Piece) Side() game.Side {
	switch p {
	case ManA, KingA:
		return game.A
	case ManB, KingB:
		return game.B
	default:
		return game.NoSide
	}
}

func (p Piece) IsKing() bool {
	return p == KingA || p == KingB
}

// Crowned returns the king of p's side.
func (p Piece) Crowned() Piece {
	switch p {
	case ManA:
		return KingA
	case ManB:
		return KingB
	default:
		return p
	}
}

// Symbol is the character used to render the piece.
func (p Piece) Symbol() byte {
	switch p {
	case ManA:
		return 'x'
	case ManB:
		return 'o'
	case KingA:
		return 'X'
	case KingB:
		return 'O'
	default:
		return ' '
	}
}

// movesToward reports whether p may travel in direction d.
func (p Piece) movesToward(d direction) bool {
	if p.IsKing() {
		return true
	}
	switch p.Side() {
	case game.A:
		return d.down()
	case game.B:
		return !d.down()
	default:
		return false
	}
}
