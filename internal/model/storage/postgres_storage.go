package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"max.ks1230/currconv/internal/entity/currency"
)

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=disable"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type config interface {
	Host() string
	Username() string
	Password() string
	Database() string
	Table() string
}

// PostgresStorage keeps the snapshot as one row per key, replaced on
// every save.
type PostgresStorage struct {
	db    *sql.DB
	table string
	key   string
}

func NewPostgresStorage(config config, key string) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return &PostgresStorage{db: db, table: config.Table(), key: key}, nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

func (s *PostgresStorage) selectQuery() sq.SelectBuilder {
	return psql.Select("rates").
		From(s.table).
		Where(sq.Eq{"key": s.key})
}

func (s *PostgresStorage) upsertQuery(snapshot currency.Snapshot, rates []byte, now time.Time) sq.InsertBuilder {
	return psql.Insert(s.table).
		Columns("key", "rates", "fetched_at", "updated_at").
		Values(s.key, rates, snapshot.Timestamp, now).
		Suffix("ON CONFLICT(key) DO UPDATE SET rates = EXCLUDED.rates, fetched_at = EXCLUDED.fetched_at, updated_at = EXCLUDED.updated_at")
}

func (s *PostgresStorage) GetSnapshot(ctx context.Context) (*currency.Snapshot, error) {
	var raw []byte
	err := s.selectQuery().RunWith(s.db).QueryRowContext(ctx).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get snapshot")
	}

	var snapshot currency.Snapshot
	if err = json.Unmarshal(raw, &snapshot); err != nil {
		return nil, errors.Wrap(err, "get snapshot")
	}
	return &snapshot, nil
}

func (s *PostgresStorage) SaveSnapshot(ctx context.Context, snapshot currency.Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "save snapshot")
	}
	_, err = s.upsertQuery(snapshot, raw, time.Now()).RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "save snapshot")
}
