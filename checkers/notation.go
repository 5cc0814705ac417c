package checkers

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadSquare     = errors.New("squares are written as a column A-H followed by a row 1-8")
	ErrNotDarkSquare = errors.New("pieces only stand on dark squares")
	ErrIllegalMove   = errors.New("invalid move (remember if you have a jump, you must take it)")
)

// ParseSquare reads a square such as "B6". The column letter is case
// insensitive.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", text, ErrBadSquare)
	}
	col := int(strings.ToUpper(text[:1])[0]) - 'A'
	row := int(text[1]) - '1'
	if col < 0 || col >= BoardWidth || row < 0 || row >= BoardWidth {
		return NoSquare, fmt.Errorf("%q: %w", text, ErrBadSquare)
	}
	sq := squareAt(row, col)
	if sq == NoSquare {
		return NoSquare, fmt.Errorf("%q: %w", text, ErrNotDarkSquare)
	}
	return sq, nil
}

// ParseMove reads a move such as "B6 A5" and looks it up among the legal
// moves of s.
func (s *State) ParseMove(text string) (Move, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Move{}, fmt.Errorf("enter a start and an end square such as B6 A5: %w", ErrBadSquare)
	}
	from, err := ParseSquare(fields[0])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(fields[1])
	if err != nil {
		return Move{}, err
	}
	move, ok := s.ValidMove(from, to)
	if !ok {
		return Move{}, ErrIllegalMove
	}
	return move, nil
}

func (sq Square) String() string {
	if !sq.Valid() {
		return "--"
	}
	return fmt.Sprintf("%c%d", 'A'+sq.Col(), sq.Row()+1)
}

func (m Move) String() string {
	return m.From.String() + " " + m.To.String()
}
