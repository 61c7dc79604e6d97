package credstore

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// PostgresStorage implements Storage on a single credentials table. The
// record body is stored as JSONB under its lowercased-username key, keeping
// the schema as abstract as the Storage contract.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresStorage creates a Postgres-backed credential storage. Call
// Migrate before first use.
func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{pool: pool}
}

// Migrate applies the embedded schema migrations with goose. Bridging the
// pgx pool through database/sql is required since goose does not speak pgx
// natively.
func (p *PostgresStorage) Migrate(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(p.pool)
	defer func(db *sql.DB) {
		_ = db.Close()
	}(db)

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func (p *PostgresStorage) Get(ctx context.Context, key string) (*Record, error) {
	var data []byte
	err := p.pool.QueryRow(ctx,
		`SELECT record FROM credentials WHERE username_lower = $1`, key,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (p *PostgresStorage) Put(ctx context.Context, key string, record *Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	_, err = p.pool.Exec(ctx, `
		INSERT INTO credentials (username_lower, record, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (username_lower)
		DO UPDATE SET record = EXCLUDED.record, updated_at = now()`,
		key, data,
	)
	return err
}

func (p *PostgresStorage) Delete(ctx context.Context, key string) error {
	tag, err := p.pool.Exec(ctx,
		`DELETE FROM credentials WHERE username_lower = $1`, key,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (p *PostgresStorage) Fold(ctx context.Context, acc any, fn func(acc any, record *Record) any) (any, error) {
	rows, err := p.pool.Query(ctx, `SELECT record FROM credentials`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var record Record
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, err
		}
		acc = fn(acc, &record)
	}

	return acc, rows.Err()
}
