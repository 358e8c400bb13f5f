package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/clientportal/internal/domain/model"
)

// PortalFacade exposes the subset of application functionality required by the worker.
type PortalFacade interface {
	RefreshRates(ctx context.Context) (model.Rates, error)
}

// RateRefresher periodically refreshes the exchange rate cache from the FX provider.
type RateRefresher struct {
	facade   PortalFacade
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewRateRefresher constructs refresher. A non-positive interval disables it.
func NewRateRefresher(facade PortalFacade, interval time.Duration, logger *slog.Logger) *RateRefresher {
	return &RateRefresher{
		facade:   facade,
		interval: interval,
		logger:   logger,
	}
}

// Start launches background refreshing.
func (r *RateRefresher) Start(ctx context.Context) {
	if r.interval <= 0 {
		r.logger.Info("rate refresher disabled")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.cancel = cancel

	r.wg.Add(1)
	go r.loop(runCtx)
}

// Stop cancels the loop and waits for an in-flight refresh to finish.
func (r *RateRefresher) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *RateRefresher) loop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *RateRefresher) refresh(ctx context.Context) {
	rates, err := r.facade.RefreshRates(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		r.logger.Error("scheduled rate refresh failed", slog.String("error", err.Error()))
		return
	}
	r.logger.Debug("exchange rates refreshed", slog.Int("currencies", len(rates)))
}
