package pushfour

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Generate all legal moves for the side to move.
//
// A piece is pushed into a row or a column from one of its ends and slides until it
// touches the first occupied cell, so it lands right past the outermost occupied cell
// on either side. An empty line offers both of its end cells. Diagonals never produce
// moves. The list holds no duplicates: rows are scanned top to bottom, then columns left
// to right, low end before high end, and the first occurrence of a cell is kept.
func (b *Board) GenerateMoves() []Move {
	moves := make([]Move, 0, 4*b.size)
	var seen [MaxBoardSize]uint64

	add := func(row, col int) {
		if row < 0 || col < 0 || seen[row]&(1<<col) != 0 {
			return
		}
		seen[row] |= 1 << col
		moves = append(moves, Move{Row: row, Col: col, Player: b.turn})
	}

	for row := 0; row < b.size; row++ {
		low, high := pushTargets(b.occupiedRow(row), b.size)
		add(row, low)
		add(row, high)
	}
	for col := 0; col < b.size; col++ {
		low, high := pushTargets(b.occupiedColumn(col), b.size)
		add(low, col)
		add(high, col)
	}

	return moves
}

// Whether 'm' is one of the generated moves
func (b *Board) IsLegal(m Move) bool {
	if m.Player != b.turn || !b.InBounds(m.Row, m.Col) {
		return false
	}
	for _, legal := range b.GenerateMoves() {
		if legal == m {
			return true
		}
	}
	return false
}

func (b *Board) occupiedRow(row int) uint64 {
	return b.overlays[PieceBlue].Row(row) | b.overlays[PieceRed].Row(row) | b.overlays[PieceRock].Row(row)
}

func (b *Board) occupiedColumn(col int) uint64 {
	return b.overlays[PieceBlue].Column(col) | b.overlays[PieceRed].Column(col) | b.overlays[PieceRock].Column(col)
}

// Landing cells of a line word: one below the lowest and one above the highest
// occupied bit, -1 when that cell is off the board
func pushTargets(word uint64, size int) (low, high int) {
	if word == 0 {
		return 0, size - 1
	}

	low = bits.TrailingZeros64(word) - 1
	high = wordBits - bits.LeadingZeros64(word)
	if high >= size {
		high = -1
	}
	return low, high
}

// Parse "<row>:<col>" into a move of given player
func ParseMove(s string, player Player) (Move, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return Move{}, errors.Errorf("enter coords as <row>:<col>, like '0:0', got %q", s)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Move{}, errors.Wrapf(err, "row of %q", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Move{}, errors.Wrapf(err, "column of %q", s)
	}

	return Move{Row: row, Col: col, Player: player}, nil
}
