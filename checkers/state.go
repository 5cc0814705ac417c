package checkers

import (
	"fmt"

	"gametree/game"
)

// State is a checkers position. It implements game.Match for
// *State and Move.
type State struct {
	board   Board
	toMove  game.Side
	midJump Square // Square of the piece that must keep jumping, or NoSquare
}

// New returns the opening position with side B to move.
func New() *State {
	return NewFromBoard(StartingBoard(), game.B)
}

func NewFromBoard(board Board, toMove game.Side) *State {
	return &State{
		board:   board,
		toMove:  toMove,
		midJump: NoSquare,
	}
}

func (s *State) Board() Board {
	return s.board
}

func (s *State) At(sq Square) Piece {
	return s.board[sq]
}

func (s *State) ToMove() game.Side {
	return s.toMove
}

// MidJump returns the square of the piece that has to continue a multi-jump.
func (s *State) MidJump() (Square, bool) {
	return s.midJump, s.midJump != NoSquare
}

func (s *State) Clone() *State {
	c := *s
	return &c
}

// ApplyMove plays m, which must come from PossibleMoves. The mover is known
// from the piece on m.From, so asOpponent is not needed. After a jump the
// same side keeps the turn while the jumping piece can capture again.
func (s *State) ApplyMove(m Move, _ bool) bool {
	piece := s.board[m.From]
	if piece == Empty {
		panic(fmt.Sprintf("checkers: no piece to move on square %d", m.From))
	}

	s.board[m.To] = piece
	s.board[m.From] = Empty
	if m.IsJump() {
		s.board[m.Jumped] = Empty
	}
	s.MakeKing(m.To)

	if m.IsJump() && s.canJump(m.To) {
		s.midJump = m.To
	} else {
		s.midJump = NoSquare
		s.toMove = s.toMove.Other()
	}
	return s.toMove == game.A
}

// MakeKing crowns a man standing on its far row. Other squares and kings are
// left untouched.
func (s *State) MakeKing(sq Square) {
	piece := s.board[sq]
	switch {
	case piece == ManA && sq.Row() == BoardWidth-1:
		s.board[sq] = piece.Crowned()
	case piece == ManB && sq.Row() == 0:
		s.board[sq] = piece.Crowned()
	}
}

// Pieces counts the men and kings of a side.
func (s *State) Pieces(side game.Side) int {
	n := 0
	for _, p := range s.board {
		if p.Side() == side {
			n++
		}
	}
	return n
}

// Heuristic is the material balance: side A's pieces minus side B's, kings
// counting as men.
func (s *State) Heuristic() int {
	h := 0
	for _, p := range s.board {
		switch p.Side() {
		case game.A:
			h++
		case game.B:
			h--
		}
	}
	return h
}

// Winner returns the side that has won. A side loses when it has no pieces
// left or when it is to move and has no legal move.
func (s *State) Winner() game.Side {
	a, b := s.Pieces(game.A), s.Pieces(game.B)
	switch {
	case a == 0 && b == 0:
		return game.NoSide
	case a == 0:
		return game.B
	case b == 0:
		return game.A
	}
	if len(s.legalMoves()) == 0 {
		return s.toMove.Other()
	}
	return game.NoSide
}

func (s *State) Over() bool {
	return s.Winner() != game.NoSide
}
