package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		text    string
		want    Move
		wantErr bool
	}{
		{text: "A1", want: 0},
		{text: "b2", want: 4},
		{text: " C3 ", want: 8},
		{text: "A3", want: 2},
		{text: "D1", wantErr: true},
		{text: "A4", wantErr: true},
		{text: "A0", wantErr: true},
		{text: "B", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseCell(tt.text)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrBadCell)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, text string) Move {
	t.Helper()
	m, err := ParseCell(text)
	require.NoError(t, err)
	return m
}

func TestParseMove(t *testing.T) {
	s := position([]Move{4}, []Move{0})

	_, err := s.ParseMove("B2")
	require.ErrorIs(t, err, ErrOccupied)

	m, err := s.ParseMove("C1")
	require.NoError(t, err)
	require.Equal(t, Move(6), m)

	s = position([]Move{0, 1, 2}, []Move{3, 4})
	_, err = s.ParseMove("C1")
	require.ErrorIs(t, err, ErrGameOver)
}

func TestRender(t *testing.T) {
	s := position([]Move{4}, []Move{0, 8})

	want := "   1   2   3\n" +
		"A  X |   |  \n" +
		"  ---+---+---\n" +
		"B    | O |  \n" +
		"  ---+---+---\n" +
		"C    |   | X\n"

	require.Equal(t, want, s.String())
}
