package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

// ErrNotFound is returned when no row exists for the requested user.
var ErrNotFound = errors.New("user not found")

// Store persists per-user subscription state. It runs on either Postgres
// (driver "pgx") or SQLite (driver "sqlite3"); all queries are written to
// work on both backends.
type Store struct {
	db     *sqlx.DB
	sb     squirrel.StatementBuilderType
	driver string
}

func New(driver, dsn string, maxIdle, maxOpen int) (*Store, error) {
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to database (driver: %s): %w", driver, err)
	}

	db.SetMaxIdleConns(maxIdle)
	db.SetMaxOpenConns(maxOpen)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(time.Minute * 10)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	sb := squirrel.StatementBuilder.PlaceholderFormat(placeholderFor(driver))

	return &Store{db: db, sb: sb, driver: driver}, nil
}

func placeholderFor(driver string) squirrel.PlaceholderFormat {
	if driver == "pgx" {
		return squirrel.Dollar
	}
	return squirrel.Question
}

func gooseDialect(driver string) string {
	if driver == "pgx" {
		return "postgres"
	}
	return "sqlite3"
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Up applies pending schema migrations. Migrations are additive and
// versioned, so re-running on an already migrated database is a no-op and
// existing rows are preserved.
func (s *Store) Up(dir string) error {
	if err := goose.SetDialect(gooseDialect(s.driver)); err != nil {
		return fmt.Errorf("set goose dialect (driver: %s): %w", s.driver, err)
	}
	if err := goose.Up(s.db.DB, dir); err != nil {
		return fmt.Errorf("run migrations (dir: %s): %w", dir, err)
	}
	return nil
}
