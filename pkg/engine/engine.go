package engine

import (
	"context"
	"sync"
	"sync/atomic"

	"logistics/pkg/audit"
	"logistics/pkg/domain"
	"logistics/pkg/metrics"
)

// engineStats holds atomic counters for engine-level call metrics, safe
// for concurrent use across the Pareto worker pool.
type engineStats struct {
	optimizeTotal   atomic.Int64
	optimizeSuccess atomic.Int64
	optimizeFailed  atomic.Int64
	paretoTotal     atomic.Int64
	rerouteTotal    atomic.Int64
}

// Engine is the optimization engine. It owns no network store of
// its own; every call operates against the *domain.Store passed in,
// which the caller is responsible for protecting from concurrent
// mutation during a Pareto or Reroute call.
type Engine struct {
	store   *domain.Store
	metrics *metrics.Metrics
	audit   audit.Logger

	stats engineStats

	shutdownCh   chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

// New creates an Engine bound to store, recording metrics via m and
// mutation events via auditLogger. Either may be nil, in which case
// metrics.Get() and a NoopLogger are used respectively.
func New(store *domain.Store, m *metrics.Metrics, auditLogger audit.Logger) *Engine {
	if m == nil {
		m = metrics.Get()
	}
	if auditLogger == nil {
		auditLogger = &audit.NoopLogger{}
	}
	return &Engine{
		store:      store,
		metrics:    m,
		audit:      auditLogger,
		shutdownCh: make(chan struct{}),
	}
}

// Stats returns a snapshot of the engine's call counters.
func (e *Engine) Stats() Stats {
	return Stats{
		OptimizeTotal:   e.stats.optimizeTotal.Load(),
		OptimizeSuccess: e.stats.optimizeSuccess.Load(),
		OptimizeFailed:  e.stats.optimizeFailed.Load(),
		ParetoTotal:     e.stats.paretoTotal.Load(),
		RerouteTotal:    e.stats.rerouteTotal.Load(),
	}
}

// Shutdown waits for in-flight Pareto worker goroutines to drain, or
// until ctx is done, whichever comes first. Safe to call more than once.
func (e *Engine) Shutdown(ctx context.Context) error {
	var err error
	e.shutdownOnce.Do(func() {
		close(e.shutdownCh)

		done := make(chan struct{})
		go func() {
			e.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			err = ctx.Err()
		}
	})
	return err
}
