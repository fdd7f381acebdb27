package minimax

// Other types, which didn't fit to the engine or limits files

type MoveLike comparable

// Rules of a two player, zero sum game, as seen by the search. The engine knows
// nothing else about the game: 'S' is the position, 'M' a move.
//
// Apply must not modify the given state, the search keeps the parent position
// while it explores the children.
type Game[S any, M MoveLike] interface {
	// Legal moves in given position, the search visits them in this order
	Moves(state S) []M
	// New position after playing 'move'
	Apply(state S, move M) S
	// Whether the game is over (won, lost or drawn)
	IsTerminal(state S) bool
	// Heuristic value of the position, from the searching player's perspective.
	// 'minimizing' tells whether the node is on the opponent's ply.
	Evaluate(state S, minimizing bool) int
}

// Result of a finished search
type SearchResult[M MoveLike] struct {
	BestMove M
	Score    int
	Found    bool
}
