package http

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/edgewise-io/edgeapi/pkg/edge"
)

// permitLimiter spreads a fixed permit budget over a rolling window and
// bounds how many callers may queue for a permit at once. A nil limiter
// admits everything.
type permitLimiter struct {
	limiter    *rate.Limiter
	queueLimit int
	waiting    atomic.Int64
}

func newPermitLimiter(limit int, window time.Duration, queueLimit int) *permitLimiter {
	if window <= 0 {
		window = time.Second
	}

	interval := window / time.Duration(limit)

	return &permitLimiter{
		limiter:    rate.NewLimiter(rate.Every(interval), limit),
		queueLimit: queueLimit,
	}
}

// acquire blocks until a permit is available, the queue bound is hit, or
// the context ends. Exceeding the queue bound fails fast with
// edge.ErrOverloaded instead of piling up goroutines.
func (p *permitLimiter) acquire(ctx context.Context) error {
	if p == nil {
		return nil
	}

	if p.limiter.Allow() {
		return nil
	}

	if p.queueLimit > 0 {
		if p.waiting.Add(1) > int64(p.queueLimit) {
			p.waiting.Add(-1)

			return edge.ErrOverloaded
		}

		defer p.waiting.Add(-1)
	}

	err := p.limiter.Wait(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		return err
	}

	return nil
}
