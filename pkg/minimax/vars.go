package minimax

import (
	"math"

	"github.com/pkg/errors"
)

// Bounds of the initial alpha-beta window
const (
	MinScore int = math.MinInt
	MaxScore int = math.MaxInt
)

var (
	// Search was asked for a move, but the root has none to offer:
	// depth is 0, the game is already over or there are no legal moves
	ErrNoMoves = errors.New("no moves")

	// Search was cancelled by the context or ran out of time
	ErrInterrupted = errors.New("search interrupted")
)
