package rates

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/currconv/internal/entity/currency"
	"max.ks1230/currconv/internal/model/customerr"
	"max.ks1230/currconv/internal/model/rates/mock"
)

var now = time.Unix(1_700_000_000, 0)

type fakeConfig struct {
	hours     float64
	showUsage bool
}

func (c fakeConfig) UpdateFrequency() float64 { return c.hours }
func (c fakeConfig) UsageVisible() bool       { return c.showUsage }

type fakeStore struct {
	mu      sync.Mutex
	snap    *currency.Snapshot
	getErr  error
	saveErr error
	saved   []currency.Snapshot
}

func (s *fakeStore) GetSnapshot(_ context.Context) (*currency.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap, s.getErr
}

func (s *fakeStore) SaveSnapshot(_ context.Context, snap currency.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, snap)
	if s.saveErr != nil {
		return s.saveErr
	}
	s.snap = &snap
	return nil
}

type fakeProvider struct {
	usageFn    func(ctx context.Context) (currency.Usage, error)
	ratesFn    func(ctx context.Context, codes []string) (currency.Snapshot, error)
	usageCalls atomic.Int32
	ratesCalls atomic.Int32
}

func (p *fakeProvider) Usage(ctx context.Context) (currency.Usage, error) {
	p.usageCalls.Add(1)
	if p.usageFn != nil {
		return p.usageFn(ctx)
	}
	return currency.Usage{RequestsRemaining: 100, DaysRemaining: 10, Status: currency.StatusOK}, nil
}

func (p *fakeProvider) GetRates(ctx context.Context, codes []string) (currency.Snapshot, error) {
	p.ratesCalls.Add(1)
	if p.ratesFn != nil {
		return p.ratesFn(ctx, codes)
	}
	return freshSnapshot(), nil
}

type fakeListener struct {
	got []currency.Snapshot
}

func (l *fakeListener) RatesRefreshed(_ context.Context, snap currency.Snapshot) error {
	l.got = append(l.got, snap)
	return nil
}

var codes = []string{"EUR", "USD"}

func freshSnapshot() currency.Snapshot {
	return currency.Snapshot{Rates: map[string]float64{"USD": 1, "EUR": 0.92}, Timestamp: now.Unix()}
}

func cachedSnapshot(age time.Duration) *currency.Snapshot {
	return &currency.Snapshot{Rates: map[string]float64{"USD": 1, "EUR": 0.9}, Timestamp: now.Add(-age).Unix()}
}

func Test_GetRates_FreshCacheShouldSkipRemote(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewSnapshotStoreMock(m)
	provider := mock.NewRatesProviderMock(m)
	cached := cachedSnapshot(time.Hour)

	store.GetSnapshotMock.Return(cached, nil)

	out := NewPolicy(store, provider, codes, fakeConfig{hours: 6}).GetRates(context.Background(), now)

	assert.NoError(m, out.Err)
	assert.Equal(m, cached, out.Snapshot)
	assert.Nil(m, out.Usage)
	assert.False(m, out.Refreshed)
	assert.Equal(m, uint64(0), provider.UsageBeforeCounter())
	assert.Equal(m, uint64(0), provider.GetRatesBeforeCounter())
}

func Test_GetRates_FreshCacheShouldCheckUsageWhenShown(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewSnapshotStoreMock(m)
	provider := mock.NewRatesProviderMock(m)
	cached := cachedSnapshot(time.Hour)

	store.GetSnapshotMock.Return(cached, nil)
	provider.UsageMock.Return(currency.Usage{RequestsRemaining: 100, DaysRemaining: 10, Status: currency.StatusOK}, nil)

	out := NewPolicy(store, provider, codes, fakeConfig{hours: 6, showUsage: true}).GetRates(context.Background(), now)

	assert.NoError(m, out.Err)
	if assert.NotNil(m, out.Usage) {
		assert.Equal(m, int64(100), out.Usage.RequestsRemaining)
	}
	assert.Equal(m, cached, out.Snapshot)
	assert.Equal(m, uint64(0), provider.GetRatesBeforeCounter())
}

func Test_GetRates_MissingCacheShouldRefreshAndPersist(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewSnapshotStoreMock(m)
	provider := mock.NewRatesProviderMock(m)
	listener := &fakeListener{}

	store.GetSnapshotMock.Return(nil, nil)
	store.SaveSnapshotMock.Inspect(func(_ context.Context, snap currency.Snapshot) {
		assert.Equal(m, freshSnapshot(), snap)
	}).Return(nil)
	provider.UsageMock.Return(currency.Usage{RequestsRemaining: 100, DaysRemaining: 10, Status: currency.StatusOK}, nil)
	provider.GetRatesMock.Inspect(func(_ context.Context, requested []string) {
		assert.Equal(m, codes, requested)
	}).Return(freshSnapshot(), nil)

	out := NewPolicy(store, provider, codes, fakeConfig{hours: 6}, WithListener(listener)).GetRates(context.Background(), now)

	assert.NoError(m, out.Err)
	assert.True(m, out.Refreshed)
	if assert.NotNil(m, out.Snapshot) {
		assert.Equal(m, 0.92, out.Snapshot.Rates["EUR"])
	}
	assert.Equal(m, []currency.Snapshot{freshSnapshot()}, listener.got)
}

func Test_GetRates_StalenessBoundary(t *testing.T) {
	const hours = 2

	tests := []struct {
		name    string
		age     time.Duration
		refresh bool
	}{
		{name: "one second past", age: hours*time.Hour + time.Second, refresh: true},
		{name: "one second before", age: hours*time.Hour - time.Second, refresh: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{snap: cachedSnapshot(tt.age)}
			provider := &fakeProvider{}

			out := NewPolicy(store, provider, codes, fakeConfig{hours: hours}).GetRates(context.Background(), now)

			assert.NoError(t, out.Err)
			assert.Equal(t, tt.refresh, out.Refreshed)
			assert.Equal(t, tt.refresh, provider.ratesCalls.Load() == 1)
		})
	}
}

func Test_GetRates_QuotaExhaustedShouldKeepCache(t *testing.T) {
	cached := cachedSnapshot(24 * time.Hour)
	store := &fakeStore{snap: cached}
	provider := &fakeProvider{
		usageFn: func(context.Context) (currency.Usage, error) {
			return currency.Usage{RequestsRemaining: 0, DaysRemaining: 3, Status: currency.StatusOK}, nil
		},
	}

	out := NewPolicy(store, provider, codes, fakeConfig{hours: 6}).GetRates(context.Background(), now)

	assert.Equal(t, customerr.QuotaExhausted, customerr.KindOf(out.Err))
	e, ok := customerr.As(out.Err)
	require.True(t, ok)
	assert.Equal(t, int64(3), e.DaysRemaining)
	assert.Equal(t, cached, out.Snapshot)
	assert.Equal(t, int32(0), provider.ratesCalls.Load())
	assert.Empty(t, store.saved)
}

func Test_GetRates_UsageErrorShouldBlockRefresh(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := mock.NewSnapshotStoreMock(m)
	provider := mock.NewRatesProviderMock(m)
	cached := cachedSnapshot(24 * time.Hour)

	store.GetSnapshotMock.Return(cached, nil)
	provider.UsageMock.Return(currency.Usage{}, errors.Wrap(customerr.New(customerr.InvalidCredential, "invalid_app_id"), "get usage"))

	out := NewPolicy(store, provider, codes, fakeConfig{hours: 6}).GetRates(context.Background(), now)

	assert.Equal(m, customerr.InvalidCredential, customerr.KindOf(out.Err))
	assert.Equal(m, cached, out.Snapshot)
	assert.Nil(m, out.Usage)
	assert.Equal(m, uint64(0), provider.GetRatesBeforeCounter())
	assert.Equal(m, uint64(0), store.SaveSnapshotBeforeCounter())
}

func Test_GetRates_RatesErrorWithoutCache(t *testing.T) {
	provider := &fakeProvider{
		ratesFn: func(context.Context, []string) (currency.Snapshot, error) {
			return currency.Snapshot{}, customerr.New(customerr.AccessRestricted, "not_allowed")
		},
	}

	out := NewPolicy(&fakeStore{}, provider, codes, fakeConfig{hours: 6}).GetRates(context.Background(), now)

	assert.Equal(t, customerr.AccessRestricted, customerr.KindOf(out.Err))
	assert.Nil(t, out.Snapshot)
	assert.False(t, out.Refreshed)
}

func Test_GetRates_PlainErrorsShouldBecomeNetworkFailures(t *testing.T) {
	cached := cachedSnapshot(48 * time.Hour)
	store := &fakeStore{snap: cached}
	provider := &fakeProvider{
		ratesFn: func(context.Context, []string) (currency.Snapshot, error) {
			return currency.Snapshot{}, errors.New("connection reset")
		},
	}

	out := NewPolicy(store, provider, codes, fakeConfig{hours: 6}).GetRates(context.Background(), now)

	assert.Equal(t, customerr.NetworkFailure, customerr.KindOf(out.Err))
	assert.Equal(t, cached, out.Snapshot)
	assert.Empty(t, store.saved)
}

func Test_GetRates_ShouldTimeOutRemoteCalls(t *testing.T) {
	provider := &fakeProvider{
		usageFn: func(ctx context.Context) (currency.Usage, error) {
			<-ctx.Done()
			return currency.Usage{}, ctx.Err()
		},
	}

	policy := NewPolicy(&fakeStore{}, provider, codes, fakeConfig{hours: 6}, WithTimeout(20*time.Millisecond))
	out := policy.GetRates(context.Background(), now)

	assert.Equal(t, customerr.NetworkFailure, customerr.KindOf(out.Err))
	assert.True(t, errors.Is(out.Err, context.DeadlineExceeded))
	assert.Nil(t, out.Snapshot)
}

func Test_GetRates_StoreFailuresShouldNotBreakConversion(t *testing.T) {
	store := &fakeStore{getErr: errors.New("store down"), saveErr: errors.New("store down")}
	provider := &fakeProvider{}

	out := NewPolicy(store, provider, codes, fakeConfig{hours: 6}).GetRates(context.Background(), now)

	assert.NoError(t, out.Err)
	assert.True(t, out.Refreshed)
	require.NotNil(t, out.Snapshot)
	assert.Len(t, store.saved, 1)
}

func Test_GetRates_ConcurrentCallersShouldShareRefresh(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{}, 1)
	provider := &fakeProvider{
		ratesFn: func(context.Context, []string) (currency.Snapshot, error) {
			entered <- struct{}{}
			<-release
			return freshSnapshot(), nil
		},
	}
	policy := NewPolicy(&fakeStore{}, provider, codes, fakeConfig{hours: 6}, WithKey("conversionRates"))

	const callers = 5
	outcomes := make(chan Outcome, callers)
	go func() { outcomes <- policy.GetRates(context.Background(), now) }()
	<-entered

	for i := 1; i < callers; i++ {
		go func() { outcomes <- policy.GetRates(context.Background(), now) }()
	}
	// let the late callers reach the in-flight guard
	time.Sleep(100 * time.Millisecond)
	close(release)

	for i := 0; i < callers; i++ {
		out := <-outcomes
		assert.NoError(t, out.Err)
		require.NotNil(t, out.Snapshot)
	}
	assert.Equal(t, int32(1), provider.ratesCalls.Load())
	assert.Equal(t, int32(1), provider.usageCalls.Load())
}

func Test_GetRates_CancelledCallerShouldNotFailSharedRefresh(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{}, 1)
	provider := &fakeProvider{
		ratesFn: func(ctx context.Context, _ []string) (currency.Snapshot, error) {
			entered <- struct{}{}
			select {
			case <-release:
				return freshSnapshot(), nil
			case <-ctx.Done():
				return currency.Snapshot{}, ctx.Err()
			}
		},
	}
	policy := NewPolicy(&fakeStore{}, provider, codes, fakeConfig{hours: 6})

	firstCtx, cancel := context.WithCancel(context.Background())
	first := make(chan Outcome, 1)
	go func() { first <- policy.GetRates(firstCtx, now) }()
	<-entered

	second := make(chan Outcome, 1)
	go func() { second <- policy.GetRates(context.Background(), now) }()
	// let the second caller join the in-flight refresh
	time.Sleep(50 * time.Millisecond)
	cancel()

	out := <-first
	assert.Equal(t, customerr.NetworkFailure, customerr.KindOf(out.Err))
	assert.True(t, errors.Is(out.Err, context.Canceled))

	close(release)
	out = <-second
	assert.NoError(t, out.Err)
	require.NotNil(t, out.Snapshot)
	assert.True(t, out.Refreshed)
	assert.Equal(t, int32(1), provider.ratesCalls.Load())
}

func Test_GetRates_FreshCacheWithExhaustedQuotaShouldWarn(t *testing.T) {
	cached := cachedSnapshot(time.Hour)
	store := &fakeStore{snap: cached}
	provider := &fakeProvider{
		usageFn: func(context.Context) (currency.Usage, error) {
			return currency.Usage{RequestsRemaining: 0, DaysRemaining: 5, Status: currency.StatusOK}, nil
		},
	}

	out := NewPolicy(store, provider, codes, fakeConfig{hours: 6, showUsage: true}).GetRates(context.Background(), now)

	assert.Equal(t, customerr.QuotaExhausted, customerr.KindOf(out.Err))
	assert.Equal(t, cached, out.Snapshot)
	require.NotNil(t, out.Usage)
	assert.Equal(t, int64(0), out.Usage.RequestsRemaining)
	assert.Equal(t, int32(0), provider.ratesCalls.Load())
}
