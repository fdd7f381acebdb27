package minimax

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

type SearchCounters struct {
	nodes   atomic.Int64
	cutoffs atomic.Int64
	aborted atomic.Bool
}

// Depth-limited alpha-beta search over any game implementing 'Game'.
// The engine is not safe for concurrent searches, but with NThreads > 1 a single
// search fans the root moves out to goroutines, so 'Game' must then be safe for
// concurrent use.
type Engine[S any, M MoveLike] struct {
	SearchCounters
	game     Game[S, M]
	listener *StatsListener[M]
	Limiter  *Limiter
}

// Create new engine with default limits
func NewEngine[S any, M MoveLike](game Game[S, M]) *Engine[S, M] {
	return &Engine[S, M]{
		game:     game,
		listener: &StatsListener[M]{},
		Limiter:  NewLimiter(),
	}
}

func (e *Engine[S, M]) Game() Game[S, M] {
	return e.game
}

func (e *Engine[S, M]) SetLimits(limits *Limits) {
	e.Limiter.SetLimits(limits)
}

func (e *Engine[S, M]) Limits() *Limits {
	return e.Limiter.Limits()
}

func (e *Engine[S, M]) ResetListener() {
	e.listener.OnRootMove(nil).OnStop(nil)
}

func (e *Engine[S, M]) StatsListener() *StatsListener[M] {
	return e.listener
}

func (e *Engine[S, M]) SetListener(listener StatsListener[M]) {
	*e.listener = listener
}

// Adds custom context to the limiter, enabling cancellation through it
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
//	defer cancel()
//
//	engine.SetContext(ctx)
//	result, err := engine.Search(root) // ErrInterrupted after 2 seconds
func (e *Engine[S, M]) SetContext(ctx context.Context) {
	e.Limiter.SetContext(ctx)
}

// Stop the running search, it will return ErrInterrupted
func (e *Engine[S, M]) Stop() {
	e.Limiter.SetStop(true)
}

// Number of positions visited by the last search
func (e *Engine[S, M]) Nodes() int {
	return int(e.nodes.Load())
}

// Number of alpha-beta cutoffs in the last search
func (e *Engine[S, M]) Cutoffs() int {
	return int(e.cutoffs.Load())
}

// Get the reason why the search was stopped, valid after search ends
func (e *Engine[S, M]) StopReason() StopReason {
	return e.Limiter.StopReason()
}

func (e *Engine[S, M]) String() string {
	return fmt.Sprintf("Engine={Limits:%v, Stats:{nodes=%d, cutoffs=%d}, StopReason=%v}",
		*e.Limits(), e.Nodes(), e.Cutoffs(), e.StopReason())
}

// This function only resets the counters and the limiter,
// doesn't actually start the search
func (e *Engine[S, M]) setupSearch() {
	e.Limiter.Reset()
	e.nodes.Store(0)
	e.cutoffs.Store(0)
	e.aborted.Store(false)
}

// Search 'root' to the configured depth. The root is always a maximizing ply,
// for the side the 'Game' evaluates for.
//
// Returns ErrNoMoves if there is nothing to choose from (depth <= 0, the root is
// terminal or has no legal moves) and ErrInterrupted if the context was cancelled,
// the movetime ran out or Stop was called.
func (e *Engine[S, M]) Search(root S) (SearchResult[M], error) {
	e.setupSearch()
	defer e.Limiter.Release()

	limits := e.Limits()
	var result SearchResult[M]
	if limits.NThreads > 1 {
		result = e.searchRootParallel(root, limits.Depth, limits.NThreads)
	} else {
		result = e.searchRoot(root, limits.Depth)
	}

	interrupted := e.aborted.Load()
	e.Limiter.EvaluateStopReason(interrupted)
	if e.listener.onStop != nil {
		e.listener.onStop(toSearchStats(e, result))
	}

	if interrupted {
		return SearchResult[M]{}, e.Limiter.Err()
	}
	if !result.Found {
		return result, ErrNoMoves
	}
	return result, nil
}

// Root base cases, in the same order as the inner nodes. Returns the moves
// to search, or nil with the static evaluation of the root.
func (e *Engine[S, M]) rootMoves(root S, depth int) ([]M, int) {
	e.nodes.Add(1)
	if depth <= 0 || e.game.IsTerminal(root) {
		return nil, e.game.Evaluate(root, false)
	}
	moves := e.game.Moves(root)
	if len(moves) == 0 {
		return nil, e.game.Evaluate(root, false)
	}
	return moves, 0
}

func (e *Engine[S, M]) invokeRootMove(result SearchResult[M]) {
	if e.listener.onRootMove != nil {
		e.listener.onRootMove(toSearchStats(e, result))
	}
}

func (e *Engine[S, M]) searchRoot(root S, depth int) SearchResult[M] {
	moves, eval := e.rootMoves(root, depth)
	if moves == nil {
		return SearchResult[M]{Score: eval}
	}

	var result SearchResult[M]
	alpha, beta := MinScore, MaxScore
	for _, move := range moves {
		score := e.alphaBeta(e.game.Apply(root, move), depth-1, alpha, beta, false)
		if e.aborted.Load() {
			return SearchResult[M]{}
		}

		// The first move is always accepted, later ones only if strictly better
		if !result.Found || score > result.Score {
			result = SearchResult[M]{BestMove: move, Score: score, Found: true}
		}
		e.invokeRootMove(result)

		alpha = max(alpha, result.Score)
		if beta <= alpha {
			e.cutoffs.Add(1)
			break
		}
	}
	return result
}

// Search every root move on its own goroutine, at most 'threads' at once. Each child gets
// the full window, so there is no pruning at the root; the best score wins and ties go
// to the earliest move, which makes the result equal to the sequential search.
func (e *Engine[S, M]) searchRootParallel(root S, depth, threads int) SearchResult[M] {
	moves, eval := e.rootMoves(root, depth)
	if moves == nil {
		return SearchResult[M]{Score: eval}
	}

	scores := make([]int, len(moves))
	sem := make(chan struct{}, threads)
	var wg sync.WaitGroup

	for i, move := range moves {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			scores[i] = e.alphaBeta(e.game.Apply(root, move), depth-1, MinScore, MaxScore, false)
			if !e.aborted.Load() {
				e.invokeRootMove(SearchResult[M]{BestMove: move, Score: scores[i], Found: true})
			}
		}()
	}
	wg.Wait()

	if e.aborted.Load() {
		return SearchResult[M]{}
	}

	result := SearchResult[M]{BestMove: moves[0], Score: scores[0], Found: true}
	for i := 1; i < len(moves); i++ {
		if scores[i] > result.Score {
			result = SearchResult[M]{BestMove: moves[i], Score: scores[i], Found: true}
		}
	}
	return result
}

// Minimax with alpha-beta pruning, returns the value of 'state'.
// On an interrupted search the returned value is meaningless, check 'aborted'.
func (e *Engine[S, M]) alphaBeta(state S, depth, alpha, beta int, maximizing bool) int {
	e.nodes.Add(1)
	if e.Limiter.Stop() {
		e.aborted.Store(true)
		return 0
	}

	// Don't need to do anything if depth is 0, someone has won, or there are no moves
	if depth <= 0 || e.game.IsTerminal(state) {
		return e.game.Evaluate(state, !maximizing)
	}
	moves := e.game.Moves(state)
	if len(moves) == 0 {
		return e.game.Evaluate(state, !maximizing)
	}

	found := false
	best := 0
	for _, move := range moves {
		score := e.alphaBeta(e.game.Apply(state, move), depth-1, alpha, beta, !maximizing)
		if e.aborted.Load() {
			return 0
		}

		if maximizing {
			if !found || score > best {
				best = score
			}
			alpha = max(alpha, best)
		} else {
			if !found || score < best {
				best = score
			}
			beta = min(beta, best)
		}
		found = true

		if beta <= alpha {
			e.cutoffs.Add(1)
			break
		}
	}
	return best
}

// Best move for the side to move in 'root', searched 'depth' plies deep on a single thread.
// Returns ErrNoMoves when depth <= 0, the root is terminal or has no moves.
func BestMove[S any, M MoveLike](depth int, game Game[S, M], root S) (M, error) {
	engine := NewEngine(game)
	engine.SetLimits(DefaultLimits().SetDepth(depth))
	result, err := engine.Search(root)
	return result.BestMove, err
}

// Like BestMove, but panics if there is no move to return. Use it only when
// the caller guarantees the root has a legal move and depth > 0.
func MustBestMove[S any, M MoveLike](depth int, game Game[S, M], root S) M {
	move, err := BestMove(depth, game, root)
	if err != nil {
		panic(fmt.Sprintf("[minimax] MustBestMove: %v", err))
	}
	return move
}
