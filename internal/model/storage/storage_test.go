package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/currconv/internal/entity/currency"
)

func Test_InMemStorage_ShouldReplaceSnapshot(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()

	snap, err := s.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)

	first := currency.Snapshot{Rates: map[string]float64{"USD": 1, "EUR": 0.9, "GBP": 0.8}, Timestamp: 100}
	second := currency.Snapshot{Rates: map[string]float64{"USD": 1, "EUR": 0.95}, Timestamp: 200}
	require.NoError(t, s.SaveSnapshot(ctx, first))
	require.NoError(t, s.SaveSnapshot(ctx, second))

	snap, err = s.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, &second, snap)
}

func Test_InMemStorage_ShouldNotShareMaps(t *testing.T) {
	ctx := context.Background()
	s := NewInMemStorage()
	rates := map[string]float64{"USD": 1}
	require.NoError(t, s.SaveSnapshot(ctx, currency.Snapshot{Rates: rates, Timestamp: 1}))

	rates["USD"] = 2
	snap, _ := s.GetSnapshot(ctx)
	snap.Rates["EUR"] = 3

	again, _ := s.GetSnapshot(ctx)
	assert.Equal(t, map[string]float64{"USD": 1}, again.Rates)
}

func Test_PostgresStorage_Queries(t *testing.T) {
	s := &PostgresStorage{table: "rate_snapshots", key: "conversionRates"}

	query, args, err := s.selectQuery().ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT rates FROM rate_snapshots WHERE key = $1", query)
	assert.Equal(t, []interface{}{"conversionRates"}, args)

	now := time.Unix(1_700_000_100, 0)
	raw := []byte(`{"rates":{"USD":1},"timestamp":1700000000}`)
	query, args, err = s.upsertQuery(currency.Snapshot{Timestamp: 1_700_000_000}, raw, now).ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO rate_snapshots (key,rates,fetched_at,updated_at) VALUES ($1,$2,$3,$4) "+
			"ON CONFLICT(key) DO UPDATE SET rates = EXCLUDED.rates, fetched_at = EXCLUDED.fetched_at, updated_at = EXCLUDED.updated_at",
		query)
	assert.Equal(t, []interface{}{"conversionRates", raw, int64(1_700_000_000), now}, args)
}
