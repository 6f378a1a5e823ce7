package rates

import (
	"context"
	"time"

	"go.uber.org/zap"

	"max.ks1230/currconv/internal/logger"
)

const minPullingDelay = time.Minute

type ratesGetter interface {
	GetRates(ctx context.Context, now time.Time) Outcome
}

// Puller keeps the shared snapshot warm so selections rarely wait for a
// refresh.
type Puller struct {
	policy       ratesGetter
	pullingDelay time.Duration
	clock        func() time.Time
}

func NewPuller(policy ratesGetter, config config) *Puller {
	delay := time.Duration(config.UpdateFrequency() * float64(time.Hour))
	if delay < minPullingDelay {
		delay = minPullingDelay
	}
	return &Puller{
		policy:       policy,
		pullingDelay: delay,
		clock:        time.Now,
	}
}

func (p *Puller) Pull(ctx context.Context) {
	ticker := time.NewTicker(p.pullingDelay)
	defer ticker.Stop()
	firstTick := make(chan struct{}, 1)
	firstTick <- struct{}{}

	logger.Info("Start pulling rates", zap.Duration("delay", p.pullingDelay))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop pulling rates")
			return
		// fake first tick to pull rates immediately
		case <-firstTick:
			p.pullOnce(ctx)
		case <-ticker.C:
			p.pullOnce(ctx)
		}
	}
}

func (p *Puller) pullOnce(ctx context.Context) {
	logger.Info("Pulling current rates...")

	out := p.policy.GetRates(ctx, p.clock())
	if out.Err != nil {
		logger.Error("cannot pull rates", zap.Error(out.Err))
		return
	}
	if out.Refreshed {
		logger.Info("Successfully pulled current rates")
	}
}
