package minimax

import (
	"encoding/json"
	"strings"
)

type Limits struct {
	Depth    int
	Movetime int
	NThreads int
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

const (
	DefaultDepthLimit    int = 4
	DefaultMovetimeLimit int = -1
)

func DefaultLimits() *Limits {
	return &Limits{
		Depth:    DefaultDepthLimit,
		Movetime: DefaultMovetimeLimit,
		NThreads: 1,
	}
}

// Set the number of plies to search
func (l *Limits) SetDepth(depth int) *Limits {
	l.Depth = depth
	return l
}

// Set the maximum time for engine to think, in milliseconds. The search
// runs to completion or fails with ErrInterrupted, there is no partial result.
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = movetime
	return l
}

// Search the root moves on up to 'threads' goroutines
func (l *Limits) SetThreads(threads int) *Limits {
	l.NThreads = max(threads, 1)
	return l
}
