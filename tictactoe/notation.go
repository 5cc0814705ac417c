package tictactoe

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gametree/game"
	"gametree/utils"
)

var (
	ErrBadCell  = errors.New("cells are written as a row A-C followed by a column 1-3")
	ErrOccupied = errors.New("that cell is already taken")
	ErrGameOver = errors.New("the game is over")
)

var rowNames = []byte{'A', 'B', 'C'}

// ParseCell reads a cell such as "B2". The row letter is case insensitive.
func ParseCell(text string) (Move, error) {
	text = strings.TrimSpace(text)
	if len(text) != 2 {
		return 0, fmt.Errorf("%q: %w", text, ErrBadCell)
	}
	row := utils.FindIndex(rowNames, strings.ToUpper(text[:1])[0])
	col := int(text[1]) - '1'
	if row < 0 || col < 0 || col >= Size {
		return 0, fmt.Errorf("%q: %w", text, ErrBadCell)
	}
	return Move(row*Size + col), nil
}

// ParseMove reads a cell and checks it can be played in s.
func (s *State) ParseMove(text string) (Move, error) {
	m, err := ParseCell(text)
	if err != nil {
		return 0, err
	}
	if s.Winner() != game.NoSide {
		return 0, ErrGameOver
	}
	if s.cells[m] != Empty {
		return 0, fmt.Errorf("%s: %w", m, ErrOccupied)
	}
	return m, nil
}

func (m Move) String() string {
	if m < 0 || m >= Size*Size {
		return "--"
	}
	return fmt.Sprintf("%c%d", rowNames[m/Size], m%Size+1)
}

// Render writes the grid with rows A-C and columns 1-3.
func (s *State) Render(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "   1   2   3"); err != nil {
		return err
	}
	for row := 0; row < Size; row++ {
		if row > 0 {
			if _, err := fmt.Fprintln(w, "  ---+---+---"); err != nil {
				return err
			}
		}
		c := s.cells[row*Size : row*Size+Size]
		_, err := fmt.Fprintf(w, "%c  %c | %c | %c\n", rowNames[row],
			c[0].Symbol(), c[1].Symbol(), c[2].Symbol())
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *State) String() string {
	var sb strings.Builder
	_ = s.Render(&sb)
	return sb.String()
}
