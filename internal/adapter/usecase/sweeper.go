package usecase

import (
	"context"
	"log/slog"
	"time"
)

type expirer interface {
	ExpireDue(ctx context.Context, now time.Time) (int, error)
}

// Sweeper periodically ends campaigns whose schedule has run out.
type Sweeper struct {
	lifecycle expirer
	interval  time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

func NewSweeper(lifecycle expirer, interval time.Duration, logger *slog.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{lifecycle: lifecycle, interval: interval, logger: orDiscard(logger), now: time.Now}
}

// Run sweeps once immediately and then every interval until ctx is done.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.SweepOnce(ctx)
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// SweepOnce runs a single expiry pass and returns the number of campaigns
// it ended.
func (s *Sweeper) SweepOnce(ctx context.Context) int {
	n, err := s.lifecycle.ExpireDue(ctx, s.now())
	if err != nil {
		s.logger.ErrorContext(ctx, "expiry sweep failed", slog.Int("changed", n), slog.Any("error", err))
		return n
	}
	if n > 0 {
		s.logger.InfoContext(ctx, "expiry sweep", slog.Int("changed", n))
	}
	return n
}
