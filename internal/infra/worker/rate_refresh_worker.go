package worker

import (
	"context"
	"time"

	"github.com/xavierca1/alpha-site/pkg/logging"
)

// RateRefresher reloads the cached exchange-rate table.
type RateRefresher interface {
	RefreshRates(ctx context.Context) error
}

// RateRefreshWorker keeps the rate cache warm so visitors rarely wait on the rates API.
type RateRefreshWorker struct {
	refresher    RateRefresher
	tickInterval time.Duration
	timeout      time.Duration
	logger       *logging.Logger
}

func NewRateRefreshWorker(refresher RateRefresher, interval, timeout time.Duration, logger *logging.Logger) *RateRefreshWorker {
	if logger == nil {
		logger = logging.Default()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RateRefreshWorker{
		refresher:    refresher,
		tickInterval: interval,
		timeout:      timeout,
		logger:       logger.With("component", "rate_refresh_worker"),
	}
}

// Start refreshes once immediately and then on every tick until ctx is done.
// A non-positive interval disables the worker.
func (w *RateRefreshWorker) Start(ctx context.Context) {
	if w.tickInterval <= 0 {
		w.logger.Info("rate refresh disabled")
		return
	}
	w.logger.Info("rate refresh worker started", "interval", w.tickInterval.String())

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("rate refresh worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *RateRefreshWorker) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	start := time.Now()
	if err := w.refresher.RefreshRates(ctx); err != nil {
		w.logger.Warn("rate refresh failed", "error", err)
		return
	}
	w.logger.Debug("rates refreshed", "elapsed", time.Since(start).String())
}
