package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/currconv/internal/entity/currency"
)

const key = "conversionRates"

func Test_RedisStore_GetSnapshot(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewRedisStore(rdb, key)

	want := currency.Snapshot{Rates: map[string]float64{"USD": 1, "EUR": 0.9}, Timestamp: 1_700_000_000}
	raw, err := json.Marshal(want)
	require.NoError(t, err)
	mock.ExpectGet(key).SetVal(string(raw))

	got, err := store.GetSnapshot(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_RedisStore_GetSnapshot_Miss(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet(key).RedisNil()

	got, err := NewRedisStore(rdb, key).GetSnapshot(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_RedisStore_GetSnapshot_CorruptedValueIsDropped(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet(key).SetVal("not json")
	mock.ExpectDel(key).SetVal(1)

	got, err := NewRedisStore(rdb, key).GetSnapshot(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_RedisStore_GetSnapshot_Error(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet(key).SetErr(errors.New("connection refused"))

	_, err := NewRedisStore(rdb, key).GetSnapshot(context.Background())

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_RedisStore_SaveSnapshot(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	snapshot := currency.Snapshot{Rates: map[string]float64{"USD": 1}, Timestamp: 42}
	raw, err := json.Marshal(snapshot)
	require.NoError(t, err)
	mock.ExpectSet(key, raw, 0).SetVal("OK")

	err = NewRedisStore(rdb, key).SaveSnapshot(context.Background(), snapshot)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
