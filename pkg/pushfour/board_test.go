package pushfour

import (
	"fmt"
	"slices"
	"testing"

	"github.com/pkg/errors"
)

func TestBoardGetSet(t *testing.T) {
	pieces := []Piece{PieceBlue, PieceRed, PieceRock, PieceNone}

	for _, first := range pieces {
		for _, second := range pieces {
			t.Run(fmt.Sprintf("%s->%s", first, second), func(t *testing.T) {
				b := NewBoard(5)
				b.Set(1, 1, first)
				if got := b.At(1, 1); got != first {
					t.Fatalf("At(1, 1) = %s, want %s", got, first)
				}

				b.Set(1, 1, second)
				if got := b.At(1, 1); got != second {
					t.Fatalf("At(1, 1) = %s, want %s", got, second)
				}

				// No leftovers in the other overlays
				for _, kind := range pieces[:pieceKinds] {
					want := 0
					if kind == second {
						want = 1
					}
					if got := b.Count(kind); got != want {
						t.Errorf("Count(%s) = %d, want %d", kind, got, want)
					}
				}
			})
		}
	}
}

func TestBoardOutOfBoundsPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidCoordinate) {
			t.Fatalf("expected panic with %v, got %v", ErrInvalidCoordinate, r)
		}
	}()
	b := NewBoard(5)
	b.Set(1, 6, PieceRed)
}

func TestBoardClone(t *testing.T) {
	b := NewBoard(4)
	b.Set(0, 0, PieceBlue)

	clone := b.Clone()
	clone.Set(0, 0, PieceRed)
	clone.Set(3, 3, PieceRock)
	clone.NextTurn()

	if b.At(0, 0) != PieceBlue || b.At(3, 3) != PieceNone || b.Turn() != Blue {
		t.Errorf("modifying a clone changed the original:\n%s", b.String())
	}
	if clone.At(0, 0) != PieceRed || clone.At(3, 3) != PieceRock || clone.Turn() != Red {
		t.Errorf("clone lost its modifications:\n%s", clone.String())
	}
}

func TestBoardTurn(t *testing.T) {
	b := NewBoard(4)
	b.SetTurn(Red)
	if moves := b.GenerateMoves(); moves[0].Player != Red {
		t.Errorf("moves for %v, want red after SetTurn", moves[0].Player)
	}
	if b.IsLegal(Move{Row: 0, Col: 0, Player: Blue}) {
		t.Error("blue move legal on red's turn")
	}
	b.NextTurn()
	if b.Turn() != Blue {
		t.Errorf("turn %v after NextTurn, want blue", b.Turn())
	}
}

func TestApplyMoveKeepsReceiver(t *testing.T) {
	b := NewBoard(4)
	next := b.ApplyMove(Move{Row: 0, Col: 0, Player: Blue})

	if b.At(0, 0) != PieceNone || b.Turn() != Blue {
		t.Error("ApplyMove modified the receiver")
	}
	if next.At(0, 0) != PieceBlue || next.Turn() != Red {
		t.Errorf("ApplyMove result: At(0, 0)=%s turn=%s", next.At(0, 0), next.Turn())
	}
}

func TestGenerateMovesEmptyBoard(t *testing.T) {
	b := NewBoard(4)
	moves := b.GenerateMoves()

	want := []Move{
		{0, 0, Blue}, {0, 3, Blue},
		{1, 0, Blue}, {1, 3, Blue},
		{2, 0, Blue}, {2, 3, Blue},
		{3, 0, Blue}, {3, 3, Blue},
		{0, 1, Blue}, {3, 1, Blue},
		{0, 2, Blue}, {3, 2, Blue},
	}
	if !slices.Equal(moves, want) {
		t.Fatalf("GenerateMoves() = %v, want %v", moves, want)
	}

	// Every border cell, nothing inside
	for _, m := range moves {
		if m.Row != 0 && m.Row != 3 && m.Col != 0 && m.Col != 3 {
			t.Errorf("inner cell %v generated on an empty board", m)
		}
	}
}

func TestGenerateMovesPushRule(t *testing.T) {
	b := NewBoard(4)
	b.Set(1, 1, PieceRock)
	b.NextTurn()

	want := []Move{
		{0, 0, Red}, {0, 3, Red},
		{1, 0, Red}, {1, 2, Red},
		{2, 0, Red}, {2, 3, Red},
		{3, 0, Red}, {3, 3, Red},
		{0, 1, Red}, {2, 1, Red},
		{0, 2, Red}, {3, 2, Red},
	}
	if moves := b.GenerateMoves(); !slices.Equal(moves, want) {
		t.Fatalf("GenerateMoves() = %v, want %v", moves, want)
	}
}

func TestGenerateMovesFullRow(t *testing.T) {
	b := NewBoard(4)
	for col := 0; col < 4; col++ {
		b.Set(0, col, PieceRock)
	}

	moves := b.GenerateMoves()
	for _, m := range moves {
		if m.Row == 0 {
			t.Errorf("move %v lands on a full row", m)
		}
	}
	for col := 0; col < 4; col++ {
		if !slices.Contains(moves, Move{1, col, Blue}) {
			t.Errorf("missing move under the full row at column %d", col)
		}
	}
}

func TestGenerateMovesNoDuplicates(t *testing.T) {
	b := NewBoard(8)
	for _, cell := range [][2]int{{1, 3}, {3, 1}, {4, 4}, {0, 7}, {7, 0}, {5, 5}} {
		b.Set(cell[0], cell[1], PieceRock)
	}

	moves := b.GenerateMoves()
	seen := make(map[Move]bool, len(moves))
	for _, m := range moves {
		if seen[m] {
			t.Fatalf("duplicate move %v", m)
		}
		seen[m] = true
		if b.At(m.Row, m.Col) != PieceNone {
			t.Fatalf("move %v lands on an occupied cell", m)
		}
	}
}

func TestGenerateMovesFullBoard(t *testing.T) {
	b := NewBoard(3)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			b.Set(row, col, PieceRock)
		}
	}
	if moves := b.GenerateMoves(); len(moves) != 0 {
		t.Fatalf("full board has moves %v", moves)
	}
	if !b.IsDraw() {
		t.Error("full board without a line should be a draw")
	}
}

func TestMakeLegalMove(t *testing.T) {
	b := NewBoard(4)
	if err := b.MakeLegalMove(Move{1, 1, Blue}); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("inner cell: got err=%v, want %v", err, ErrIllegalMove)
	}
	if err := b.MakeLegalMove(Move{0, 0, Red}); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("wrong side: got err=%v, want %v", err, ErrIllegalMove)
	}
	if err := b.MakeLegalMove(Move{0, 0, Blue}); err != nil {
		t.Fatalf("legal move rejected: %v", err)
	}
	if b.At(0, 0) != PieceBlue || b.Turn() != Red {
		t.Errorf("after the move: At(0, 0)=%s turn=%s", b.At(0, 0), b.Turn())
	}
}

func TestWinFlipsOnLastPiece(t *testing.T) {
	b := NewBoard(4)
	for col := 0; col < 3; col++ {
		b.Set(0, col, PieceBlue)
		if b.IsWinState(Blue) {
			t.Fatalf("win reported with %d pieces", col+1)
		}
	}
	if got := b.Overlay(PieceBlue).Score(); got != 3 {
		t.Errorf("Score() = %d before the last piece, want 3", got)
	}

	b.Set(0, 3, PieceBlue)
	if !b.IsWinState(Blue) || b.IsWinState(Red) {
		t.Fatalf("IsWinState: Blue=%v Red=%v, want true, false", b.IsWinState(Blue), b.IsWinState(Red))
	}
	if got := b.Overlay(PieceBlue).Score(); got != WinScore {
		t.Errorf("Score() = %d after the last piece, want %d", got, WinScore)
	}
	if winner, ok := b.Winner(); !ok || winner != Blue {
		t.Errorf("Winner() = %s, %v, want Blue, true", winner, ok)
	}
	if b.IsDraw() {
		t.Error("won board reported as a draw")
	}
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove(" 3:5\n", Red)
	if err != nil || m != (Move{3, 5, Red}) {
		t.Errorf("ParseMove = %v, %v", m, err)
	}

	for _, input := range []string{"", "3", "3:5:1", "a:1", "1:b"} {
		if _, err := ParseMove(input, Red); err == nil {
			t.Errorf("ParseMove(%q) should fail", input)
		}
	}
}

func TestPlayerFromString(t *testing.T) {
	for input, want := range map[string]Player{"red": Red, "Red": Red, "r": Red, "blue": Blue, "b": Blue} {
		if got, err := PlayerFromString(input); err != nil || got != want {
			t.Errorf("PlayerFromString(%q) = %s, %v", input, got, err)
		}
	}
	if _, err := PlayerFromString("green"); err == nil {
		t.Error("PlayerFromString(green) should fail")
	}
}

func BenchmarkGenerateMoves(b *testing.B) {
	board := NewBoard(8)
	for _, cell := range [][2]int{{1, 3}, {3, 1}, {4, 4}, {2, 2}, {6, 5}} {
		board.Set(cell[0], cell[1], PieceRock)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.GenerateMoves()
	}
}

func BenchmarkScoreReachable(b *testing.B) {
	board := NewBoard(8)
	for _, cell := range [][2]int{{1, 3}, {3, 1}, {4, 4}} {
		board.Set(cell[0], cell[1], PieceRock)
	}
	board.Set(0, 0, PieceBlue)
	board.Set(0, 1, PieceBlue)
	board.Set(7, 7, PieceRed)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.ScoreReachable(Blue)
	}
}
