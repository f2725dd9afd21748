package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/gymkeeper/internal/usecase"
)

// CycleFacade exposes the subset of application functionality required by the worker.
type CycleFacade interface {
	CheckCycle(ctx context.Context) (usecase.CycleResult, error)
}

// CycleChecker periodically runs the monthly payment reset so flags are
// cleared even when nobody opens the member list.
type CycleChecker struct {
	facade   CycleFacade
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCycleChecker constructs the periodic cycle checker.
func NewCycleChecker(facade CycleFacade, interval time.Duration, logger *slog.Logger) *CycleChecker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &CycleChecker{
		facade:   facade,
		interval: interval,
		logger:   logger,
	}
}

// Start runs one check right away and then one per interval until Stop.
// Calling Start on a running checker is a no-op.
func (c *CycleChecker) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	c.cancel = cancel

	c.wg.Add(1)
	go c.run(runCtx)
}

// Stop cancels the loop and waits for an in-flight check to finish.
func (c *CycleChecker) Stop() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.mu.Unlock()

	c.wg.Wait()
}

func (c *CycleChecker) run(ctx context.Context) {
	defer c.wg.Done()
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.check(ctx)
		}
	}
}

func (c *CycleChecker) check(ctx context.Context) {
	result, err := c.facade.CheckCycle(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		c.logger.Error("payment cycle check failed", slog.String("error", err.Error()))
		return
	}
	if result.Reset {
		c.logger.Debug("payment cycle advanced by worker", slog.Int("members_reset", result.MembersReset))
	}
}
