package checkers

import (
	"fmt"
	"io"
	"strings"
)

// Render writes the board as a nine-line grid: a column header followed by
// rows 1 to 8. Rows 1, 3, 5 and 7 hold their dark squares in columns A, C, E
// and G, the other rows in B, D, F and H.
func (s *State) Render(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "  A B C D E F G H"); err != nil {
		return err
	}
	for row := 0; row < BoardWidth; row++ {
		format := "%d %c   %c   %c   %c\n"
		if row%2 == 1 {
			format = "%d   %c   %c   %c   %c\n"
		}
		sq := row * rowSquares
		_, err := fmt.Fprintf(w, format, row+1,
			s.board[sq].Symbol(),
			s.board[sq+1].Symbol(),
			s.board[sq+2].Symbol(),
			s.board[sq+3].Symbol(),
		)
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
