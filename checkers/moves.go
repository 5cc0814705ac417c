package checkers

import (
	"iter"
	"slices"

	"gametree/utils"
)

// Move is either a step to an adjacent square or a jump over an opposing
// piece. Jumped is NoSquare for steps.
type Move struct {
	From   Square
	To     Square
	Jumped Square
}

func Step(from, to Square) Move {
	return Move{From: from, To: to, Jumped: NoSquare}
}

func Jump(from, over, to Square) Move {
	return Move{From: from, To: to, Jumped: over}
}

func (m Move) IsJump() bool {
	return m.Jumped != NoSquare
}

// PossibleMoves enumerates the legal moves of the side to move. Captures are
// mandatory: steps are only offered when no capture exists, and while a
// multi-jump is in progress only its continuations are offered.
func (s *State) PossibleMoves() iter.Seq[Move] {
	return slices.Values(s.legalMoves())
}

// ValidMove looks up the legal move from one square to another.
func (s *State) ValidMove(from, to Square) (Move, bool) {
	return utils.Find(s.PossibleMoves(), func(m Move) bool {
		return m.From == from && m.To == to
	})
}

func (s *State) legalMoves() []Move {
	if s.midJump != NoSquare {
		return s.appendJumps(nil, s.midJump)
	}

	var moves []Move
	for sq := Square(0); sq < BoardSize; sq++ {
		if s.board[sq].Side() == s.toMove {
			moves = s.appendJumps(moves, sq)
		}
	}
	if len(moves) > 0 {
		return moves
	}

	for sq := Square(0); sq < BoardSize; sq++ {
		if s.board[sq].Side() == s.toMove {
			moves = s.appendSteps(moves, sq)
		}
	}
	return moves
}

func (s *State) appendJumps(moves []Move, from Square) []Move {
	for d := upLeft; d < numDirections; d++ {
		if over, to, ok := s.jumpToward(from, d); ok {
			moves = append(moves, Jump(from, over, to))
		}
	}
	return moves
}

func (s *State) appendSteps(moves []Move, from Square) []Move {
	piece := s.board[from]
	for d := upLeft; d < numDirections; d++ {
		if !piece.movesToward(d) {
			continue
		}
		to := neighbors[from][d]
		if to != NoSquare && s.board[to] == Empty {
			moves = append(moves, Step(from, to))
		}
	}
	return moves
}

// jumpToward reports whether the piece on from can capture in direction d.
func (s *State) jumpToward(from Square, d direction) (over, to Square, ok bool) {
	piece := s.board[from]
	if piece == Empty || !piece.movesToward(d) {
		return NoSquare, NoSquare, false
	}
	over = neighbors[from][d]
	if over == NoSquare {
		return NoSquare, NoSquare, false
	}
	to = neighbors[over][d]
	if to == NoSquare {
		return NoSquare, NoSquare, false
	}
	if s.board[over].Side() != piece.Side().Other() || s.board[to] != Empty {
		return NoSquare, NoSquare, false
	}
	return over, to, true
}

func (s *State) canJump(from Square) bool {
	for d := upLeft; d < numDirections; d++ {
		if _, _, ok := s.jumpToward(from, d); ok {
			return true
		}
	}
	return false
}
