package pushfour

import (
	"github.com/IlikeChooros/go-pushfour/pkg/minimax"
	"github.com/pkg/errors"
)

// Static evaluation of a board from the point of view of 'p'
type Evaluator func(b *Board, p Player) int

// Run lengths restricted to lines that can still be completed
func EvalReachable(b *Board, p Player) int {
	return b.ScoreReachable(p)
}

// Plain run lengths, blocked lines included
func EvalRunLength(b *Board, p Player) int {
	return b.Score(p)
}

// 1 for a won position, -1 for a lost one, 0 otherwise
func EvalWinLoss(b *Board, p Player) int {
	switch {
	case b.IsWinState(p):
		return 1
	case b.IsWinState(p.Other()):
		return -1
	}
	return 0
}

var evaluators = map[string]Evaluator{
	"reachable": EvalReachable,
	"runlength": EvalRunLength,
	"winloss":   EvalWinLoss,
}

// Resolve an evaluator by its configuration name: reachable, runlength or winloss
func EvaluatorByName(name string) (Evaluator, error) {
	if eval, ok := evaluators[name]; ok {
		return eval, nil
	}
	return nil, errors.Errorf("unknown evaluator %q", name)
}

// Push four rules as seen by the search, evaluating for 'Player'.
// Player should be the side to move in the searched position.
type Rules struct {
	Player    Player
	Evaluator Evaluator
}

var _ minimax.Game[Board, Move] = Rules{}

// Rules with the default (reachable) evaluation
func NewRules(player Player) Rules {
	return Rules{Player: player, Evaluator: EvalReachable}
}

func (r Rules) Moves(b Board) []Move {
	return b.GenerateMoves()
}

func (r Rules) Apply(b Board, m Move) Board {
	return b.ApplyMove(m)
}

// Game is over once either side has a line
func (r Rules) IsTerminal(b Board) bool {
	return b.IsWinState(Blue) || b.IsWinState(Red)
}

func (r Rules) Evaluate(b Board, _ bool) int {
	if r.Evaluator == nil {
		return EvalReachable(&b, r.Player)
	}
	return r.Evaluator(&b, r.Player)
}

// Search engine over push four positions
func NewEngine(rules Rules) *minimax.Engine[Board, Move] {
	return minimax.NewEngine[Board, Move](rules)
}

// Best move for the side to move, 'depth' plies deep.
// Returns minimax.ErrNoMoves when the game is over or depth <= 0.
func BestMove(depth int, rules Rules, b Board) (Move, error) {
	return minimax.BestMove[Board, Move](depth, rules, b)
}
