package tictactoe

import "errors"

const (
	PlayerX = "X"
	PlayerO = "O"

	// Tie is the winner value reported for a full board with no complete line.
	Tie = "-"

	EmptyCell = ""
)

var (
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")

	// WinLines are the 8 triples of cells that end the game when uniformly
	// marked: 3 rows, 3 columns, 2 diagonals.
	WinLines = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Board is a 3x3 grid stored row-major; cells hold PlayerX, PlayerO or EmptyCell.
type Board [9]string

// Move addresses one cell by row and column, each in [0,2].
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Index returns the row-major cell index of the move.
func (that Move) Index() int {
	return that.Row*3 + that.Col
}

// MoveFromIndex converts a row-major cell index back into a Move.
func MoveFromIndex(cell int) Move {
	return Move{Row: cell / 3, Col: cell % 3}
}

// Place writes mark into the addressed cell. It fails with ErrInvalidCell on
// out-of-range coordinates and ErrCellOccupied on a taken cell; on failure the
// board is left untouched.
func (that *Board) Place(move Move, mark string) error {
	if move.Row < 0 || move.Row > 2 || move.Col < 0 || move.Col > 2 {
		return ErrInvalidCell
	}

	if that[move.Index()] != EmptyCell {
		return ErrCellOccupied
	}

	that[move.Index()] = mark

	return nil
}

// IsFull reports whether no empty cell remains.
func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Winner scans the win lines and reports the game result: the winning mark,
// Tie for a full board with no line, or an empty string while the game is
// still open. The result is always recomputed from the cells, never cached.
func (that *Board) Winner() string {
	for _, line := range WinLines {
		a, b, c := that[line[0]], that[line[1]], that[line[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	if that.IsFull() {
		return Tie
	}

	return ""
}

// LegalMoves returns all empty cells in row-major order. The order is fixed
// because the engine's tie-break depends on it.
func (that *Board) LegalMoves() []Move {
	moves := make([]Move, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			moves = append(moves, MoveFromIndex(i))
		}
	}

	return moves
}

// Opponent returns the mark of the other side.
func Opponent(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
