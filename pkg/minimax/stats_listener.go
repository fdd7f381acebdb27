package minimax

type SearchStats[T MoveLike] struct {
	Depth      int
	Nodes      int
	Cutoffs    int
	TimeMs     int
	Nps        uint32
	BestMove   T
	Score      int
	Found      bool
	StopReason StopReason
}

// Convert engine counters to 'SearchStats' struct
func toSearchStats[S any, T MoveLike](engine *Engine[S, T], result SearchResult[T]) SearchStats[T] {
	elapsed := engine.Limiter.Elapsed()
	return SearchStats[T]{
		Depth:      engine.Limits().Depth,
		Nodes:      engine.Nodes(),
		Cutoffs:    engine.Cutoffs(),
		TimeMs:     int(elapsed),
		Nps:        uint32(uint64(engine.Nodes()) * 1000 / uint64(elapsed)),
		BestMove:   result.BestMove,
		Score:      result.Score,
		Found:      result.Found,
		StopReason: engine.StopReason(),
	}
}

// Listener function callback, will receive the search statistics
type ListenerFunc[T MoveLike] func(SearchStats[T])

type StatsListener[T MoveLike] struct {
	// called when a root move finishes, receives the stats so far
	onRootMove ListenerFunc[T]

	// called when the search stops (either finished, cancelled or out of time)
	onStop ListenerFunc[T]
}

func NewStatsListener[T MoveLike]() StatsListener[T] {
	return StatsListener[T]{}
}

// Attach 'root move searched' callback. With more than one thread it's called
// from the worker goroutines, so it must be safe for concurrent use.
func (listener *StatsListener[T]) OnRootMove(onRootMove ListenerFunc[T]) *StatsListener[T] {
	listener.onRootMove = onRootMove
	return listener
}

// Attach 'on search end' callback, called once by the main thread,
// makes 'StopReason' available in the stats
func (listener *StatsListener[T]) OnStop(onStop ListenerFunc[T]) *StatsListener[T] {
	listener.onStop = onStop
	return listener
}
