package pushfour

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Text board format, a header with the column indices, then every row
// prefixed by its index:
//
//	+ 0 1 2 3
//	0 - - b -
//	1 - # r -
//	2 - - - -
//	3 r - - b
//
// 'b' is Blue, 'r' is Red, '#' is a rock and '-' an empty cell.
func (b *Board) String() string {
	builder := strings.Builder{}

	builder.WriteByte('+')
	for col := 0; col < b.size; col++ {
		builder.WriteByte(' ')
		builder.WriteString(strconv.Itoa(col))
	}

	for row := 0; row < b.size; row++ {
		builder.WriteByte('\n')
		builder.WriteString(strconv.Itoa(row))
		for col := 0; col < b.size; col++ {
			builder.WriteByte(' ')
			builder.WriteByte(b.At(row, col).Char())
		}
	}

	return builder.String()
}

// Create a board from the text format (see Board.String). The header line is
// skipped, blank lines are ignored and the index column may have any width.
// The returned board has Blue to move.
func ParseBoard(size int, text string) (Board, error) {
	if size < 1 || size > MaxBoardSize {
		return Board{}, errors.Wrapf(ErrBadNotation, "board size %d out of range [1, %d]", size, MaxBoardSize)
	}

	board := NewBoard(size)
	header := false
	row := 0

	for i, line := range strings.Split(text, "\n") {
		lineNum := i + 1
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !header {
			if !strings.HasPrefix(line, "+") {
				return Board{}, errors.Wrapf(ErrBadNotation, "line %d: expected header starting with '+', got %q", lineNum, line)
			}
			header = true
			continue
		}

		if row >= size {
			return Board{}, errors.Wrapf(ErrBadNotation, "line %d: more than %d rows", lineNum, size)
		}

		fields := strings.Fields(line)
		if len(fields) != size+1 {
			return Board{}, errors.Wrapf(ErrBadNotation, "line %d: expected row index and %d cells, got %q", lineNum, size, line)
		}

		if index, err := strconv.Atoi(fields[0]); err != nil || index != row {
			return Board{}, errors.Wrapf(ErrBadNotation, "line %d: expected row index %d, got %q", lineNum, row, fields[0])
		}

		for col, cell := range fields[1:] {
			piece, ok := PieceFromChar(cell[0])
			if len(cell) != 1 || !ok {
				return Board{}, errors.Wrapf(ErrBadNotation, "line %d: invalid cell %q at column %d", lineNum, cell, col)
			}
			if piece != PieceNone {
				board.Set(row, col, piece)
			}
		}
		row++
	}

	if row != size {
		return Board{}, errors.Wrapf(ErrBadNotation, "expected %d rows, got %d", size, row)
	}
	return board, nil
}
