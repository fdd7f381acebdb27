package pushfour

import (
	"fmt"

	"github.com/pkg/errors"
)

// Largest supported board, a row must fit a 64-bit word with one bit to spare
const MaxBoardSize = 63

// Length of a winning run
const WinLength = 4

// Overlay score reported once a run of WinLength exists
const WinScore = 12

// Characters of the text board format
const (
	BlueChar  byte = 'b'
	RedChar   byte = 'r'
	RockChar  byte = '#'
	EmptyChar byte = '-'
)

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrIllegalMove       = errors.New("illegal move")
	ErrBadNotation       = errors.New("bad board notation")
)

// Occupant of a single cell
type Piece uint8

const (
	PieceBlue Piece = iota
	PieceRed
	PieceRock
	PieceNone
)

// Number of occupant kinds with their own overlay
const pieceKinds = 3

func (p Piece) String() string {
	switch p {
	case PieceBlue:
		return "Blue"
	case PieceRed:
		return "Red"
	case PieceRock:
		return "Rock"
	default:
		return "None"
	}
}

// Character of the piece in the text format
func (p Piece) Char() byte {
	switch p {
	case PieceBlue:
		return BlueChar
	case PieceRed:
		return RedChar
	case PieceRock:
		return RockChar
	default:
		return EmptyChar
	}
}

// Create a piece from the text format character
func PieceFromChar(ch byte) (Piece, bool) {
	switch ch {
	case BlueChar:
		return PieceBlue, true
	case RedChar:
		return PieceRed, true
	case RockChar:
		return PieceRock, true
	case EmptyChar:
		return PieceNone, true
	}
	return PieceNone, false
}

type Player uint8

const (
	Blue Player = iota
	Red
)

func (p Player) Piece() Piece {
	if p == Red {
		return PieceRed
	}
	return PieceBlue
}

func (p Player) Other() Player {
	if p == Red {
		return Blue
	}
	return Red
}

func (p Player) String() string {
	if p == Red {
		return "Red"
	}
	return "Blue"
}

// Parse "red"/"blue" (also single letters "r"/"b")
func PlayerFromString(s string) (Player, error) {
	switch s {
	case "red", "Red", "r":
		return Red, nil
	case "blue", "Blue", "b":
		return Blue, nil
	}
	return Blue, errors.Errorf("unknown player %q, expected red or blue", s)
}

// Placement of a piece, fully determines the move
type Move struct {
	Row    int
	Col    int
	Player Player
}

func (m Move) String() string {
	return fmt.Sprintf("Move (%d, %d, %s)", m.Row, m.Col, m.Player)
}

// Address inside a diagonal layout
type Coord struct {
	Row int
	Col int
}
