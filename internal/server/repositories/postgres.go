package repositories

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"skillswap/internal/dbx"
	"skillswap/internal/server/migrations"
	"skillswap/internal/server/repositories/ratings"
	"skillswap/internal/server/repositories/swaps"
	"skillswap/internal/server/repositories/users"
)

// PostgresManager is the production Manager backed by Postgres via the pgx
// stdlib driver.
type PostgresManager struct{}

func (PostgresManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (PostgresManager) Swaps(db dbx.DBTX) swaps.Repository {
	return swaps.NewPostgresRepository(db)
}

func (PostgresManager) Ratings(db dbx.DBTX) ratings.Repository {
	return ratings.NewPostgresRepository(db)
}

// OpenPostgres opens the database, verifies connectivity, and applies any
// pending goose migrations.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("goose dialect error: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return db, nil
}
