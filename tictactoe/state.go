package tictactoe

import (
	"fmt"
	"iter"

	"gametree/game"
)

const Size = 3

// Mark is the content of a cell. Side A plays O and side B plays X.
type Mark int8

const (
	Empty Mark = iota
	O
	X
)

func markOf(side game.Side) Mark {
	switch side {
	case game.A:
		return O
	case game.B:
		return X
	default:
		return Empty
	}
}

func (m Mark) Side() game.Side {
	switch m {
	case O:
		return game.A
	case X:
		return game.B
	default:
		return game.NoSide
	}
}

func (m Mark) Symbol() byte {
	switch m {
	case O:
		return 'O'
	case X:
		return 'X'
	default:
		return ' '
	}
}

// Move is the index 0..8 of a cell in row-major order.
type Move int8

// lines lists the rows, columns and diagonals of the board.
var lines = [8][Size]Move{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// lineWeight scores a line holding n marks of a single side.
var lineWeight = [Size + 1]int{0, 1, 10, 1000}

// State is a tic-tac-toe position. The human (side B) moves first.
type State struct {
	cells  [Size * Size]Mark
	toMove game.Side
}

func New() *State {
	return &State{toMove: game.B}
}

func (s *State) At(m Move) Mark {
	return s.cells[m]
}

func (s *State) ToMove() game.Side {
	return s.toMove
}

func (s *State) Clone() *State {
	c := *s
	return &c
}

// PossibleMoves yields the empty cells in index order, or nothing once a
// line is complete.
func (s *State) PossibleMoves() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		if s.Winner() != game.NoSide {
			return
		}
		for i, c := range s.cells {
			if c == Empty && !yield(Move(i)) {
				return
			}
		}
	}
}

// ApplyMove marks the cell for the side to move and passes the turn.
func (s *State) ApplyMove(m Move, _ bool) bool {
	if s.cells[m] != Empty {
		panic(fmt.Sprintf("tictactoe: cell %d is already taken", m))
	}
	s.cells[m] = markOf(s.toMove)
	s.toMove = s.toMove.Other()
	return s.toMove == game.A
}

// Heuristic adds 1, 10 or 1000 for every line holding one, two or three O's
// and nothing else, and subtracts the same for X's. Mixed lines count zero.
func (s *State) Heuristic() int {
	h := 0
	for _, line := range lines {
		var count [3]int
		for _, m := range line {
			count[s.cells[m]]++
		}
		switch {
		case count[O] > 0 && count[X] == 0:
			h += lineWeight[count[O]]
		case count[X] > 0 && count[O] == 0:
			h -= lineWeight[count[X]]
		}
	}
	return h
}

// Winner returns the side owning a complete line.
func (s *State) Winner() game.Side {
	for _, line := range lines {
		first := s.cells[line[0]]
		if first != Empty && first == s.cells[line[1]] && first == s.cells[line[2]] {
			return first.Side()
		}
	}
	return game.NoSide
}

func (s *State) Full() bool {
	for _, c := range s.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// Over reports a win or a draw on a full board.
func (s *State) Over() bool {
	return s.Winner() != game.NoSide || s.Full()
}
