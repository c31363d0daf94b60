package commands

import (
	"context"
	"log/slog"
	"time"
)

// StaleClaimSweeper periodically releases webhook claims whose processing
// was abandoned, so a redelivery can pick them up.
type StaleClaimSweeper struct {
	ledger   *Ledger
	interval time.Duration
	logger   *slog.Logger
}

func NewStaleClaimSweeper(ledger *Ledger, interval time.Duration, logger *slog.Logger) *StaleClaimSweeper {
	return &StaleClaimSweeper{ledger: ledger, interval: interval, logger: logger}
}

// Run blocks until ctx is cancelled.
func (s *StaleClaimSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

func (s *StaleClaimSweeper) SweepOnce(ctx context.Context) int64 {
	n, err := s.ledger.ReleaseStale(ctx)
	if err != nil {
		s.logger.Error("stale claim sweep failed", "error", err.Error())
		return 0
	}
	return n
}
