package ratelimit

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-api/internal/logger"
)

// Sweeper periodically removes expired counter entries from a [Store]. It
// runs on its own fixed interval, independent of both request traffic and
// the configured rate-limit window.
type Sweeper struct {
	store    Store
	interval time.Duration
	logger   *logger.Logger
}

// NewSweeper constructs a Sweeper ticking every interval.
func NewSweeper(store Store, interval time.Duration, logger *logger.Logger) *Sweeper {
	return &Sweeper{
		store:    store,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks, sweeping the store on every tick until ctx is cancelled.
// It implements the workers.Worker interface.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("rate limit sweeper started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("rate limit sweeper stopped")
			return
		case <-ticker.C:
			removed, err := s.store.Sweep(ctx)
			if err != nil {
				s.logger.Err(err).Msg("rate limit sweep failed")
				continue
			}
			if removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("swept expired rate limit entries")
			}
		}
	}
}
