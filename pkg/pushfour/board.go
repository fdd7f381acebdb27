package pushfour

import "github.com/pkg/errors"

// Push four position: one overlay per occupant kind plus the side to move.
// The overlays are disjoint, Set clears a cell in all of them before writing.
type Board struct {
	size     int
	turn     Player
	overlays [pieceKinds]Overlay
}

// Create an empty size x size board, Blue to move
func NewBoard(size int) Board {
	b := Board{size: size, turn: Blue}
	for i := range b.overlays {
		b.overlays[i] = NewOverlay(size)
	}
	return b
}

// Deep copy of the board, shares no memory with the receiver
func (b *Board) Clone() Board {
	clone := Board{size: b.size, turn: b.turn}
	for i := range b.overlays {
		clone.overlays[i] = b.overlays[i].Clone()
	}
	return clone
}

func (b *Board) Size() int {
	return b.size
}

// Side to move
func (b *Board) Turn() Player {
	return b.turn
}

func (b *Board) SetTurn(p Player) {
	b.turn = p
}

func (b *Board) NextTurn() {
	b.turn = b.turn.Other()
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.size && col < b.size
}

// Put 'piece' on (row, col), PieceNone empties the cell. Panics on coordinates
// outside of the board.
func (b *Board) Set(row, col int, piece Piece) {
	b.mustInBounds(row, col)
	for i := range b.overlays {
		b.overlays[i].Clear(row, col)
	}
	if piece != PieceNone {
		b.overlays[piece].Set(row, col)
	}
}

// Occupant of (row, col), PieceNone if empty
func (b *Board) At(row, col int) Piece {
	b.mustInBounds(row, col)
	for _, piece := range [...]Piece{PieceBlue, PieceRed, PieceRock} {
		if b.overlays[piece].Get(row, col) {
			return piece
		}
	}
	return PieceNone
}

// Overlay of given piece kind, PieceNone is not a valid kind
func (b *Board) Overlay(piece Piece) *Overlay {
	return &b.overlays[piece]
}

// Place the move's piece, without switching the turn
func (b *Board) SetMove(m Move) {
	b.Set(m.Row, m.Col, m.Player.Piece())
}

// New board with the move played and the turn passed, the receiver stays untouched
func (b *Board) ApplyMove(m Move) Board {
	next := b.Clone()
	next.SetMove(m)
	next.NextTurn()
	return next
}

// Check legality, then play the move in place
func (b *Board) MakeLegalMove(m Move) error {
	if !b.IsLegal(m) {
		return errors.Wrapf(ErrIllegalMove, "%v, side to move %s", m, b.turn)
	}
	b.SetMove(m)
	b.NextTurn()
	return nil
}

func (b *Board) IsWinState(p Player) bool {
	return b.overlays[p.Piece()].IsWinState()
}

// Winning player, if any. Blue is checked first.
func (b *Board) Winner() (Player, bool) {
	for _, p := range [...]Player{Blue, Red} {
		if b.IsWinState(p) {
			return p, true
		}
	}
	return Blue, false
}

// No winner and no move left
func (b *Board) IsDraw() bool {
	if _, won := b.Winner(); won {
		return false
	}
	return len(b.GenerateMoves()) == 0
}

// Run length difference between 'p' and the opponent
func (b *Board) Score(p Player) int {
	return b.overlays[p.Piece()].Score() - b.overlays[p.Other().Piece()].Score()
}

// Like Score, but only lines that can still be completed count
func (b *Board) ScoreReachable(p Player) int {
	populated := b.Populated()
	reach := populated.Reachable()
	return b.overlays[p.Piece()].ScoreWithMask(&reach) -
		b.overlays[p.Other().Piece()].ScoreWithMask(&reach)
}

// Every occupied cell, regardless of the occupant
func (b *Board) Populated() Overlay {
	populated := b.overlays[PieceBlue].Clone()
	populated.Merge(&b.overlays[PieceRed])
	populated.Merge(&b.overlays[PieceRock])
	return populated
}

// Number of pieces of given kind on the board
func (b *Board) Count(piece Piece) int {
	return b.overlays[piece].Count()
}

func (b *Board) mustInBounds(row, col int) {
	if !b.InBounds(row, col) {
		panic(errors.Wrapf(ErrInvalidCoordinate, "(%d, %d) on a %dx%d board", row, col, b.size, b.size))
	}
}

