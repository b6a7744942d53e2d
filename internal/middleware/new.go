package middleware

import (
	"sync"

	"golang.org/x/time/rate"

	"smarteventadder/pkg/log"
)

type Middleware struct {
	l     log.Logger
	rps   rate.Limit
	burst int

	mu       *sync.Mutex
	limiters map[string]*rate.Limiter
}

// New creates the middleware set. rps and burst bound the model-backed
// endpoints per client; requests beyond the budget are rejected, not queued.
func New(l log.Logger, rps float64, burst int) Middleware {
	return Middleware{
		l:        l,
		rps:      rate.Limit(rps),
		burst:    burst,
		mu:       &sync.Mutex{},
		limiters: make(map[string]*rate.Limiter),
	}
}

// limiterFor returns the limiter for a client key, creating it on first use.
func (m Middleware) limiterFor(key string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	lim, ok := m.limiters[key]
	if !ok {
		lim = rate.NewLimiter(m.rps, m.burst)
		m.limiters[key] = lim
	}
	return lim
}
