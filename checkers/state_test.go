package checkers

import (
	"slices"
	"testing"

	"gametree/game"

	"github.com/stretchr/testify/require"
)

// boardWith builds a board from square lists per piece kind.
func boardWith(pieces map[Piece][]Square) Board {
	var b Board
	for piece, squares := range pieces {
		for _, sq := range squares {
			b[sq] = piece
		}
	}
	return b
}

func movesOf(s *State) []Move {
	return slices.Collect(s.PossibleMoves())
}

// forcedJumpState plays the opening that leaves side A a single capture.
func forcedJumpState() *State {
	s := New()
	s.ApplyMove(Step(20, 17), false)
	s.ApplyMove(Step(9, 12), true)
	s.ApplyMove(Step(21, 18), false)
	return s
}

func TestNew(t *testing.T) {
	s := New()

	require.Equal(t, game.B, s.ToMove())
	require.Equal(t, game.NoSide, s.Winner())
	require.False(t, s.Over())
	require.Equal(t, 12, s.Pieces(game.A))
	require.Equal(t, 12, s.Pieces(game.B))
	_, ok := s.MidJump()
	require.False(t, ok)
	for sq := Square(12); sq < 20; sq++ {
		require.Equal(t, Empty, s.At(sq), "rows 3 and 4 should start empty")
	}
}

func TestOpeningMoves(t *testing.T) {
	s := New()

	moves := movesOf(s)

	require.Len(t, moves, 7, "Side B has seven opening steps")
	for _, m := range moves {
		require.False(t, m.IsJump())
		require.Equal(t, game.B, s.At(m.From).Side())
		require.Less(t, m.To, m.From, "Men of side B move up the board")
	}
}

func TestSimpleStep(t *testing.T) {
	s := New()

	aNext := s.ApplyMove(Step(20, 16), false)

	require.True(t, aNext)
	require.Equal(t, ManB, s.At(16))
	require.Equal(t, Empty, s.At(20))
	want := New().Board()
	want[16], want[20] = ManB, Empty
	require.Equal(t, want, s.Board(), "Everything else should be unchanged")
	require.Equal(t, game.A, s.ToMove())
}

func TestForcedJump(t *testing.T) {
	s := forcedJumpState()

	require.Equal(t, []Move{Jump(12, 17, 21)}, movesOf(s))
	require.Equal(t, game.A, s.ToMove())
}

func TestValidMove(t *testing.T) {
	s := New()

	m, ok := s.ValidMove(20, 17)
	require.True(t, ok)
	require.Equal(t, Step(20, 17), m)

	_, ok = s.ValidMove(17, 17)
	require.False(t, ok)

	t.Run("steps are refused while a jump is available", func(t *testing.T) {
		s := forcedJumpState()

		_, ok := s.ValidMove(10, 14)
		require.False(t, ok)

		m, ok := s.ValidMove(12, 21)
		require.True(t, ok)
		require.Equal(t, Square(17), m.Jumped)
	})
}

func TestMultiJumpContinuation(t *testing.T) {
	s := NewFromBoard(boardWith(map[Piece][]Square{
		ManA: {1, 3},
		ManB: {4, 5, 6, 12},
	}), game.A)

	require.Len(t, movesOf(s), 3)

	aNext := s.ApplyMove(Jump(1, 4, 8), true)

	require.True(t, aNext)
	require.Equal(t, game.A, s.ToMove(), "Side A should keep the turn mid-jump")
	sq, ok := s.MidJump()
	require.True(t, ok)
	require.Equal(t, Square(8), sq)
	require.Equal(t, []Move{Jump(8, 12, 17)}, movesOf(s))

	aNext = s.ApplyMove(Jump(8, 12, 17), true)

	require.False(t, aNext)
	require.Equal(t, game.B, s.ToMove())
	_, ok = s.MidJump()
	require.False(t, ok)
	require.Equal(t, 2, s.Pieces(game.B))
}

func TestJumpWithoutContinuationPassesTurn(t *testing.T) {
	s := forcedJumpState()

	aNext := s.ApplyMove(Jump(12, 17, 21), true)

	require.False(t, aNext)
	require.Equal(t, game.B, s.ToMove())
	_, ok := s.MidJump()
	require.False(t, ok)
}

func TestPromotion(t *testing.T) {
	t.Run("side A man reaching the last row", func(t *testing.T) {
		s := NewFromBoard(boardWith(map[Piece][]Square{ManA: {24}, ManB: {3}}), game.A)

		s.ApplyMove(Step(24, 28), true)

		require.Equal(t, KingA, s.At(28))
	})

	t.Run("side B man reaching the first row", func(t *testing.T) {
		s := NewFromBoard(boardWith(map[Piece][]Square{ManB: {5}, ManA: {28}}), game.B)

		s.ApplyMove(Step(5, 1), false)

		require.Equal(t, KingB, s.At(1))
	})

	t.Run("promotion by capture", func(t *testing.T) {
		s := NewFromBoard(boardWith(map[Piece][]Square{ManA: {21}, ManB: {25, 2}}), game.A)

		require.Equal(t, []Move{Jump(21, 25, 28)}, movesOf(s))
		s.ApplyMove(Jump(21, 25, 28), true)

		require.Equal(t, KingA, s.At(28))
	})
}

func TestMakeKing(t *testing.T) {
	s := NewFromBoard(boardWith(map[Piece][]Square{
		ManA: {1, 4, 29},
		ManB: {3, 5, 31},
	}), game.A)

	for _, sq := range []Square{1, 3, 4, 5, 29, 31} {
		s.MakeKing(sq)
	}

	require.False(t, s.At(1).IsKing(), "x on its own side")
	require.True(t, s.At(3).IsKing(), "o on the opposite side")
	require.False(t, s.At(4).IsKing(), "not on an end row")
	require.False(t, s.At(5).IsKing(), "not on an end row")
	require.True(t, s.At(29).IsKing(), "x on the opposite side")
	require.False(t, s.At(31).IsKing(), "o on its own side")
}

func TestKingsMoveBothWays(t *testing.T) {
	s := NewFromBoard(boardWith(map[Piece][]Square{KingA: {13}, ManB: {31}}), game.A)

	require.ElementsMatch(t, []Move{Step(13, 9), Step(13, 10), Step(13, 17), Step(13, 18)}, movesOf(s))

	t.Run("men only move forward", func(t *testing.T) {
		s := NewFromBoard(boardWith(map[Piece][]Square{ManA: {13}, ManB: {31}}), game.A)

		require.ElementsMatch(t, []Move{Step(13, 17), Step(13, 18)}, movesOf(s))
	})

	t.Run("kings capture backwards", func(t *testing.T) {
		s := NewFromBoard(boardWith(map[Piece][]Square{KingA: {17}, ManB: {13, 31}}), game.A)

		require.Equal(t, []Move{Jump(17, 13, 10)}, movesOf(s))
	})
}

func TestEdgesAreNotCrossed(t *testing.T) {
	// Square 8 sits in column A and square 15 in column H
	s := NewFromBoard(boardWith(map[Piece][]Square{KingA: {8, 15}, ManB: {31}}), game.A)

	require.ElementsMatch(t, []Move{
		Step(8, 4), Step(8, 12),
		Step(15, 11), Step(15, 19),
	}, movesOf(s))

	t.Run("no capture over the edge", func(t *testing.T) {
		s := NewFromBoard(boardWith(map[Piece][]Square{ManA: {3}, ManB: {7, 31}}), game.A)

		for _, m := range movesOf(s) {
			require.False(t, m.IsJump(), "square 7 is on the edge and cannot be jumped")
		}
	})
}

func TestHeuristic(t *testing.T) {
	s := New()
	require.Equal(t, 0, s.Heuristic())

	s = forcedJumpState()
	require.Equal(t, 0, s.Heuristic())

	s.ApplyMove(Jump(12, 17, 21), true)
	require.Equal(t, 1, s.Heuristic())

	t.Run("kings count as men", func(t *testing.T) {
		s := NewFromBoard(boardWith(map[Piece][]Square{KingA: {0}, ManB: {30, 31}}), game.A)
		require.Equal(t, -1, s.Heuristic())
	})
}

func TestHeuristicSymmetry(t *testing.T) {
	s := forcedJumpState()
	s.ApplyMove(Jump(12, 17, 21), true)

	mirrored := NewFromBoard(mirror(s.Board()), s.ToMove().Other())

	require.Equal(t, -s.Heuristic(), mirrored.Heuristic())
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name   string
		board  Board
		toMove game.Side
		want   game.Side
	}{
		{
			name:   "side B has no pieces",
			board:  boardWith(map[Piece][]Square{ManA: {9}}),
			toMove: game.B,
			want:   game.A,
		},
		{
			name:   "side A has no pieces",
			board:  boardWith(map[Piece][]Square{KingB: {9}}),
			toMove: game.A,
			want:   game.B,
		},
		{
			name:   "side to move is blocked",
			board:  boardWith(map[Piece][]Square{ManA: {28}, ManB: {24}}),
			toMove: game.A,
			want:   game.B,
		},
		{
			name:   "both sides can move",
			board:  boardWith(map[Piece][]Square{ManA: {9}, ManB: {24}}),
			toMove: game.A,
			want:   game.NoSide,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewFromBoard(tt.board, tt.toMove)
			require.Equal(t, tt.want, s.Winner())
			require.Equal(t, tt.want != game.NoSide, s.Over())
		})
	}
}

func TestCloneIndependence(t *testing.T) {
	s := New()
	c := s.Clone()

	c.ApplyMove(Step(20, 16), false)

	require.Equal(t, New().Board(), s.Board())
	require.Equal(t, game.B, s.ToMove())
	require.Equal(t, game.A, c.ToMove())
}

func TestApplyMoveFromEmptySquarePanics(t *testing.T) {
	require.Panics(t, func() {
		New().ApplyMove(Step(16, 12), false)
	})
}

// mirror rotates the board half a turn and swaps the sides.
func mirror(b Board) Board {
	var m Board
	for sq, p := range b {
		var swapped Piece
		switch p {
		case ManA:
			swapped = ManB
		case ManB:
			swapped = ManA
		case KingA:
			swapped = KingB
		case KingB:
			swapped = KingA
		}
		m[BoardSize-1-sq] = swapped
	}
	return m
}
