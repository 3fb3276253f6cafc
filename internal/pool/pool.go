// Package pool provides a fixed-capacity slot pool for bounding how many
// blocking model calls run at once. Callers over capacity wait in line; the
// queue itself is unbounded.
package pool

import "context"

type Pool struct {
	sem chan struct{}
}

func New(size int) *Pool {
	if size <= 0 {
		size = 1
	}
	return &Pool{
		sem: make(chan struct{}, size),
	}
}

// Acquire blocks until a slot is free or the context is done. On success it
// returns a release func that must be called exactly once.
func (p *Pool) Acquire(ctx context.Context) (func(), error) {
	select {
	case p.sem <- struct{}{}:
		return func() { <-p.sem }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// InFlight reports how many slots are currently held.
func (p *Pool) InFlight() int {
	return len(p.sem)
}

// Cap reports the pool capacity.
func (p *Pool) Cap() int {
	return cap(p.sem)
}
