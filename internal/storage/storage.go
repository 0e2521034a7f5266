package storage

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"

	_ "github.com/lib/pq"

	"github.com/carson-networks/property-ledger/internal/config"
	"github.com/carson-networks/property-ledger/internal/storage/sqlconfig"
)

type Storage struct {
	DB *sql.DB
	db bob.DB
}

// NewStorage opens the connection pool. The database is not contacted until first use or Ping.
func NewStorage(cfg config.PostgresConfig) (*Storage, error) {
	db, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, err
	}

	return &Storage{
		DB: db,
		db: bob.NewDB(db),
	}, nil
}

// Read returns readers bound to the pool. Each query runs in its own implicit transaction.
func (s *Storage) Read() *Reader {
	return NewReader(s.db)
}

// Write begins a transaction. The caller must Commit or Rollback the returned Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, sqlconfig.TranslateError("begin transaction", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
