package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"volleyhub/internal/ports/input"
)

// Closer runs the expired-event sweep on a fixed interval.
type Closer struct {
	closer   input.CloserUseCase
	interval time.Duration
}

func NewCloser(closer input.CloserUseCase, interval time.Duration) *Closer {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Closer{closer: closer, interval: interval}
}

// Run sweeps once immediately, then on every tick until ctx is done.
func (c *Closer) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	logger := log.Ctx(ctx)
	logger.Info().Dur("interval", c.interval).Msg("⏱️ closer scheduled")
	c.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("closer stopped")
			return
		case <-ticker.C:
			c.sweep(ctx)
		}
	}
}

func (c *Closer) sweep(ctx context.Context) {
	if _, err := c.closer.CloseExpired(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("❌ scheduled close failed")
	}
}
