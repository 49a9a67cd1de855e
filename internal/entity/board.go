package entity

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

// Line is a triple of board indexes that wins when all three hold the same mark.
type Line [3]int

// Lines lists rows, then columns, then both diagonals.
var Lines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Board [CellCount]Mark

// Index linearizes a (row, column) position.
func Index(row, column int) int {
	return row*BoardSize + column
}

// InRange reports whether (row, column) is a valid board position.
func InRange(row, column int) bool {
	return row >= 0 && row < BoardSize && column >= 0 && column < BoardSize
}

// Position is the inverse of Index.
func Position(index int) (int, int) {
	return index / BoardSize, index % BoardSize
}

func (that *Board) Cell(row, column int) Mark {
	return that[Index(row, column)]
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell.IsEmpty() {
			return false
		}
	}
	return true
}

func (that *Board) Occupied() int {
	occupied := 0
	for _, cell := range that {
		if !cell.IsEmpty() {
			occupied++
		}
	}
	return occupied
}

// Counts returns how many cells each player has marked.
func (that *Board) Counts() (int, int) {
	var one, two int
	for _, cell := range that {
		switch cell {
		case MarkPlayerOne:
			one++
		case MarkPlayerTwo:
			two++
		}
	}
	return one, two
}

// Winner scans every line and returns the mark that fills one completely.
func (that *Board) Winner() (Mark, Line, bool) {
	for _, line := range Lines {
		a, b, c := that[line[0]], that[line[1]], that[line[2]]
		if !a.IsEmpty() && a == b && b == c {
			return a, line, true
		}
	}

	return MarkEmpty, Line{}, false
}
