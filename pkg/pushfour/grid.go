package pushfour

import "github.com/pkg/errors"

// Cell values of the pushfour.net game detail grid ('xy' field)
const (
	GridEmpty = 0
	GridRed   = 1
	GridBlue  = 2
	GridRock  = 4
)

// Create a board from the pushfour.net grid encoding. With 'swapColors' red and blue
// are exchanged, so a bot that always plays Red can take the blue side.
func FromGrid(grid [][]int, swapColors bool) (Board, error) {
	size := len(grid)
	if size < 1 || size > MaxBoardSize {
		return Board{}, errors.Wrapf(ErrBadNotation, "grid size %d out of range [1, %d]", size, MaxBoardSize)
	}

	red, blue := PieceRed, PieceBlue
	if swapColors {
		red, blue = blue, red
	}

	board := NewBoard(size)
	for row, cells := range grid {
		if len(cells) != size {
			return Board{}, errors.Wrapf(ErrBadNotation, "grid row %d has %d cells, expected %d", row, len(cells), size)
		}
		for col, v := range cells {
			switch v {
			case GridEmpty:
			case GridRed:
				board.Set(row, col, red)
			case GridBlue:
				board.Set(row, col, blue)
			case GridRock:
				board.Set(row, col, PieceRock)
			default:
				return Board{}, errors.Wrapf(ErrBadNotation, "grid cell (%d, %d) has unknown value %d", row, col, v)
			}
		}
	}
	return board, nil
}
