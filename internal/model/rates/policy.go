package rates

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"max.ks1230/currconv/internal/entity/currency"
	"max.ks1230/currconv/internal/logger"
	"max.ks1230/currconv/internal/model/customerr"
)

const defaultTimeout = 10 * time.Second

type State string

const (
	CheckingUsage State = "checking_usage"
	Blocked       State = "blocked"
	FetchingRates State = "fetching_rates"
	UsingCache    State = "using_cache"
	Done          State = "done"
)

//go:generate minimock -i snapshotStore -o ./mock/snapshot_store_mock.go -n SnapshotStoreMock
type snapshotStore interface {
	// GetSnapshot returns nil without an error when nothing is stored.
	GetSnapshot(ctx context.Context) (*currency.Snapshot, error)
	SaveSnapshot(ctx context.Context, snapshot currency.Snapshot) error
}

//go:generate minimock -i ratesProvider -o ./mock/rates_provider_mock.go -n RatesProviderMock
type ratesProvider interface {
	Usage(ctx context.Context) (currency.Usage, error)
	GetRates(ctx context.Context, codes []string) (currency.Snapshot, error)
}

type refreshListener interface {
	RatesRefreshed(ctx context.Context, snapshot currency.Snapshot) error
}

type config interface {
	UpdateFrequency() float64
	UsageVisible() bool
}

// Outcome is what a selection gets to display. Snapshot is the best
// available one, even when Err is set.
type Outcome struct {
	Snapshot  *currency.Snapshot
	Usage     *currency.Usage
	Err       error
	Refreshed bool
}

type Policy struct {
	storage   snapshotStore
	provider  ratesProvider
	listener  refreshListener
	codes     []string
	maxAge    float64
	showUsage bool
	timeout   time.Duration
	key       string
	group     singleflight.Group
}

type Option func(p *Policy)

// WithTimeout bounds every remote call.
func WithTimeout(d time.Duration) Option {
	return func(p *Policy) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithListener is notified after every successful refresh.
func WithListener(l refreshListener) Option {
	return func(p *Policy) {
		p.listener = l
	}
}

// WithKey names the guarded refresh, use the store key.
func WithKey(key string) Option {
	return func(p *Policy) {
		p.key = key
	}
}

// NewPolicy requests codes on every refresh. codes must be deduplicated.
func NewPolicy(storage snapshotStore, provider ratesProvider, codes []string, cfg config, opts ...Option) *Policy {
	p := &Policy{
		storage:   storage,
		provider:  provider,
		codes:     codes,
		maxAge:    cfg.UpdateFrequency(),
		showUsage: cfg.UsageVisible(),
		timeout:   defaultTimeout,
		key:       "rates",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetRates returns the snapshot to convert with at now, refreshing it from
// the provider when it is missing or stale.
func (p *Policy) GetRates(ctx context.Context, now time.Time) Outcome {
	span, ctx := opentracing.StartSpanFromContext(ctx, "getRates")
	defer span.Finish()

	cached := p.readSnapshot(ctx)
	stale := cached.Stale(now, p.maxAge)
	span.SetTag("stale", stale)

	if !stale && !p.showUsage {
		observeState(UsingCache)
		return Outcome{Snapshot: cached}
	}

	// concurrent callers share one remote round trip; it keeps running
	// when the caller that started it goes away, bounded by p.timeout
	refreshCtx := context.WithoutCancel(ctx)
	resCh := p.group.DoChan(p.key, func() (interface{}, error) {
		return p.remote(refreshCtx, cached, stale), nil
	})

	var out Outcome
	select {
	case res := <-resCh:
		out = res.Val.(Outcome)
		span.SetTag("shared", res.Shared)
	case <-ctx.Done():
		out = Outcome{
			Snapshot: cached,
			Err:      customerr.Wrap(customerr.NetworkFailure, ctx.Err(), "waiting for rates"),
		}
	}
	if out.Err != nil {
		ext.Error.Set(span, true)
	}
	return out
}

func (p *Policy) remote(ctx context.Context, cached *currency.Snapshot, stale bool) Outcome {
	state := CheckingUsage
	out := Outcome{Snapshot: cached}

	for state != Done {
		observeState(state)
		switch state {
		case CheckingUsage:
			usage, err := p.checkUsage(ctx)
			switch {
			case err != nil:
				out.Err = err
				state = Blocked
			case usage.Exhausted():
				out.Usage = &usage
				out.Err = customerr.Quota(usage.DaysRemaining)
				logger.Warn("api access limit hit", zap.Int64("daysRemaining", usage.DaysRemaining))
				state = Blocked
			case stale:
				out.Usage = &usage
				state = FetchingRates
			default:
				out.Usage = &usage
				state = UsingCache
			}
		case FetchingRates:
			fresh, err := p.fetchRates(ctx)
			if err != nil {
				out.Err = err
			} else {
				out.Snapshot = fresh
				out.Refreshed = true
			}
			state = Done
		case Blocked:
			logger.Error("rates refresh blocked", zap.Error(out.Err), zap.Bool("hasCache", cached != nil))
			state = Done
		case UsingCache:
			state = Done
		}
	}
	return out
}

func (p *Policy) checkUsage(ctx context.Context) (currency.Usage, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "checkUsage")
	defer span.Finish()

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	usage, err := p.provider.Usage(ctx)
	if err != nil {
		ext.Error.Set(span, true)
		return currency.Usage{}, classify(err)
	}
	logger.Info("usage", zap.Int64("requestsRemaining", usage.RequestsRemaining))
	return usage, nil
}

func (p *Policy) fetchRates(ctx context.Context) (*currency.Snapshot, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "fetchRates")
	defer span.Finish()

	logger.Info("Fetching rates", zap.Strings("codes", p.codes))

	remoteCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	fresh, err := p.provider.GetRates(remoteCtx, p.codes)
	if err != nil {
		ext.Error.Set(span, true)
		observeRefresh(false)
		return nil, classify(err)
	}
	observeRefresh(true)

	if err = p.storage.SaveSnapshot(ctx, fresh); err != nil {
		logger.Error("failed to save rates", zap.Error(err))
	}
	if p.listener != nil {
		if err = p.listener.RatesRefreshed(ctx, fresh); err != nil {
			logger.Error("failed to publish refreshed rates", zap.Error(err))
		}
	}
	return &fresh, nil
}

func (p *Policy) readSnapshot(ctx context.Context) *currency.Snapshot {
	snap, err := p.storage.GetSnapshot(ctx)
	if err != nil {
		logger.Error("cannot read cached rates", zap.Error(err))
		return nil
	}
	return snap
}

// classify makes sure every remote failure carries a kind; deadline
// expiry counts as a network failure.
func classify(err error) error {
	if customerr.KindOf(err) != customerr.Unknown {
		return err
	}
	return customerr.Wrap(customerr.NetworkFailure, err, "remote call")
}
