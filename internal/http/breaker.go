package http

import (
	"sync"
	"time"

	"github.com/edgewise-io/edgeapi/internal/constants"
	"github.com/edgewise-io/edgeapi/pkg/edge"
)

// circuitBreaker trips after a run of consecutive terminal failures,
// rejects calls for a cooldown, then admits a single probe. The probe's
// outcome decides between closing again and another full cooldown. A nil
// breaker admits everything.
type circuitBreaker struct {
	mu        sync.Mutex
	threshold int
	cooldown  time.Duration
	state     string
	failures  int
	openedAt  time.Time
	probing   bool
}

func newCircuitBreaker(threshold int, cooldown time.Duration) *circuitBreaker {
	if cooldown <= 0 {
		cooldown = constants.DefaultBreakerCooldown
	}

	return &circuitBreaker{
		threshold: threshold,
		cooldown:  cooldown,
		state:     constants.StatusClosed,
	}
}

// allow reports whether a call may proceed. While open it returns
// edge.ErrCircuitOpen until the cooldown elapses, then lets exactly one
// probe through.
func (b *circuitBreaker) allow() error {
	if b == nil {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case constants.StatusOpen:
		if time.Since(b.openedAt) < b.cooldown {
			return edge.ErrCircuitOpen
		}

		b.state = constants.StatusHalfOpen
		b.probing = true

		return nil

	case constants.StatusHalfOpen:
		if b.probing {
			return edge.ErrCircuitOpen
		}

		b.probing = true

		return nil
	}

	return nil
}

// abandon releases a half-open probe slot without recording an outcome.
// Callers use it when a call admitted by allow ends without a terminal
// upstream result, such as caller cancellation, so the next allow can
// admit a fresh probe instead of rejecting forever.
func (b *circuitBreaker) abandon() {
	if b == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == constants.StatusHalfOpen {
		b.probing = false
	}
}

// record feeds a terminal call outcome back into the breaker.
func (b *circuitBreaker) record(success bool) {
	if b == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == constants.StatusHalfOpen {
		b.probing = false

		if success {
			b.state = constants.StatusClosed
			b.failures = 0
		} else {
			b.state = constants.StatusOpen
			b.openedAt = time.Now()
		}

		return
	}

	if success {
		b.failures = 0

		return
	}

	b.failures++

	if b.failures >= b.threshold {
		b.state = constants.StatusOpen
		b.openedAt = time.Now()
	}
}

// status returns the current state name. Used for diagnostics.
func (b *circuitBreaker) status() string {
	if b == nil {
		return constants.StatusClosed
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state
}
