package pace

import (
	"context"
	"errors"
	"time"
)

// ErrNegativeDelay is returned by New when the step delay is below zero.
var ErrNegativeDelay = errors.New("pace: delay must be non-negative")

// Pacer numbers steps and waits between them. A Pacer serves one run and
// is not safe for concurrent use.
type Pacer struct {
	ctx   context.Context
	delay time.Duration
	steps int
}

// New returns a Pacer bound to ctx. A nil ctx means context.Background().
func New(ctx context.Context, delay time.Duration) (*Pacer, error) {
	if delay < 0 {
		return nil, ErrNegativeDelay
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return &Pacer{ctx: ctx, delay: delay}, nil
}

// Context returns the context the pacer observes.
func (p *Pacer) Context() context.Context { return p.ctx }

// Delay returns the configured per-step delay.
func (p *Pacer) Delay() time.Duration { return p.delay }

// Steps returns how many steps have been published so far.
func (p *Pacer) Steps() int { return p.steps }

// Tick publishes one step: it checks for cancellation, calls emit with the
// zero-based step number, then waits for the delay. An error from emit or a
// cancelled context aborts the run and is returned unchanged.
func (p *Pacer) Tick(emit func(step int) error) error {
	if err := p.ctx.Err(); err != nil {
		return err
	}
	step := p.steps
	p.steps++
	if emit != nil {
		if err := emit(step); err != nil {
			return err
		}
	}

	return p.Wait()
}

// Wait blocks for the configured delay or until the context is done.
func (p *Pacer) Wait() error {
	if p.delay == 0 {
		return p.ctx.Err()
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-p.ctx.Done():
		return p.ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Check reports the context error, if any, without publishing a step.
// Loops that do work between snapshots call it to stay abortable.
func (p *Pacer) Check() error {
	return p.ctx.Err()
}
