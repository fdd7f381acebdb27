package minimax

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
)

type StopReason int

const (
	StopNone      StopReason = 0
	StopInterrupt StopReason = 1 // Stopped by user, by calling .SetStop(true) or context cancellation
	StopMovetime  StopReason = 2 // Time limit reached
	StopDepth     StopReason = 4 // Searched to the requested depth
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopDepth, "Depth"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}

	return result
}

// Decides when a running search has to give up. The depth limit is enforced by
// the recursion itself, the limiter only watches the stop flag, the user's context
// and the movetime deadline.
type Limiter struct {
	limits *Limits
	clock  *searchClock
	stop   atomic.Bool
	reason StopReason
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		clock:  newSearchClock(),
		parent: context.Background(),
		ctx:    context.Background(),
	}
}

// Called on search setup, starts the clock
func (l *Limiter) Reset() {
	l.Release()
	l.clock.Start(l.limits.Movetime)
	l.stop.Store(false)
	l.reason = StopNone

	if deadline, ok := l.clock.Deadline(); ok {
		l.ctx, l.cancel = context.WithDeadline(l.parent, deadline)
	} else {
		l.ctx, l.cancel = context.WithCancel(l.parent)
	}
}

// Free the resources of the search context, called after the search ends
func (l *Limiter) Release() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

func (l *Limiter) SetContext(ctx context.Context) {
	l.parent = ctx
	l.ctx = ctx
}

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

func (l *Limiter) SetStop(v bool) {
	l.stop.Store(v)
}

// Whether the search should stop, polled on every node
func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load()
}

// Elapsed time in ms since the last Reset
func (l *Limiter) Elapsed() uint32 {
	return l.clock.ElapsedMs()
}

// Set the stop reason, called once by the main thread after the search ends
func (l *Limiter) EvaluateStopReason(interrupted bool) {
	switch {
	case !interrupted:
		l.reason = StopDepth
	case l.parent.Err() == nil && errors.Is(l.ctx.Err(), context.DeadlineExceeded):
		l.reason = StopMovetime
	default:
		l.reason = StopInterrupt
	}
}

func (l *Limiter) StopReason() StopReason {
	return l.reason
}

// Error describing why the search was interrupted
func (l *Limiter) Err() error {
	if err := l.ctx.Err(); err != nil {
		return errors.Wrap(ErrInterrupted, err.Error())
	}
	return ErrInterrupted
}
