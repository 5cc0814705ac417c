package checkers

const (
	BoardWidth = 8
	BoardSize  = BoardWidth * BoardWidth / 2
	rowSquares = BoardWidth / 2
)

// Square indexes the dark squares 0..31 in reading order, four per row.
// Rows 0, 2, 4 and 6 start in the first column, the other rows in the second:
//
//	0     1     2     3
//	   4     5     6     7
//	8     9     10    11
//	   ...
type Square int8

const NoSquare Square = -1

func (s Square) Row() int {
	return int(s) / rowSquares
}

// Col returns the visual column 0..7 of the square.
func (s Square) Col() int {
	return 2*(int(s)%rowSquares) + s.Row()%2
}

func (s Square) Valid() bool {
	return s >= 0 && s < BoardSize
}

// squareAt returns the dark square at row and visual column, or NoSquare
// when the coordinates are off the board or name a light square.
func squareAt(row, col int) Square {
	if row < 0 || row >= BoardWidth || col < 0 || col >= BoardWidth {
		return NoSquare
	}
	if (row+col)%2 != 0 {
		return NoSquare
	}
	return Square(row*rowSquares + col/2)
}

type direction int

const (
	upLeft direction = iota
	upRight
	downLeft
	downRight
	numDirections
)

func (d direction) down() bool {
	return d == downLeft || d == downRight
}

func (d direction) delta() (rows, cols int) {
	switch d {
	case upLeft:
		return -1, -1
	case upRight:
		return -1, 1
	case downLeft:
		return 1, -1
	default:
		return 1, 1
	}
}

// neighbors holds the diagonal neighbor of every square in every direction,
// NoSquare past an edge.
var neighbors [BoardSize][numDirections]Square

func init() {
	for s := Square(0); s < BoardSize; s++ {
		for d := upLeft; d < numDirections; d++ {
			dr, dc := d.delta()
			neighbors[s][d] = squareAt(s.Row()+dr, s.Col()+dc)
		}
	}
}

// Board holds the piece on every dark square.
type Board [BoardSize]Piece

// StartingBoard is the standard opening layout: side A on rows 0-2, side B
// on rows 5-7.
func StartingBoard() Board {
	var b Board
	for s := 0; s < 3*rowSquares; s++ {
		b[s] = ManA
	}
	for s := BoardSize - 3*rowSquares; s < BoardSize; s++ {
		b[s] = ManB
	}
	return b
}
