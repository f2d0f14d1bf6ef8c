// Package storage provides the two key/value scopes the session is mirrored
// to: a durable SQLite file that survives restarts and an ephemeral in-memory
// SQLite database that lives only as long as the process.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/voyage/internal/client/migrations"
	"github.com/dmitrijs2005/voyage/internal/client/repositories/kv"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// UserKey is the single key the serialized user record is kept under.
const UserKey = "user"

// Scope is one independent key/value namespace, backed by its own kv table.
type Scope = kv.Repository

// Scopes pairs the durable and the ephemeral scope.
type Scopes struct {
	Durable   Scope
	Ephemeral Scope
}

// Storage owns the databases behind Scopes.
type Storage struct {
	Scopes

	durable   *sql.DB
	ephemeral *sql.DB
	// anchor keeps the shared in-memory database alive: SQLite drops it once
	// the last connection closes.
	anchor *sql.Conn
}

// Open opens (creating if needed) the durable database at durablePath and a
// fresh ephemeral database, applying migrations to both.
func Open(ctx context.Context, durablePath string) (*Storage, error) {
	durable, err := OpenDatabase(ctx, durablePath)
	if err != nil {
		return nil, fmt.Errorf("durable scope: %w", err)
	}

	ephemeral, anchor, err := openEphemeral(ctx)
	if err != nil {
		_ = durable.Close()
		return nil, fmt.Errorf("ephemeral scope: %w", err)
	}

	return &Storage{
		Scopes: Scopes{
			Durable:   kv.NewSQLiteRepository(durable),
			Ephemeral: kv.NewSQLiteRepository(ephemeral),
		},
		durable:   durable,
		ephemeral: ephemeral,
		anchor:    anchor,
	}, nil
}

func openEphemeral(ctx context.Context) (*sql.DB, *sql.Conn, error) {
	dsn := fmt.Sprintf("file:voyage-ephemeral-%s?mode=memory&cache=shared", uuid.NewString())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	anchor, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = anchor.Close()
		_ = db.Close()
		return nil, nil, err
	}

	return db, anchor, nil
}

// OpenDatabase opens a SQLite database by DSN and migrates it.
func OpenDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// RunMigrations applies the embedded schema. Already applied versions are
// skipped, so calling it repeatedly is safe.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Close releases both databases. The ephemeral contents are gone afterwards.
func (s *Storage) Close() error {
	return errors.Join(
		s.anchor.Close(),
		s.ephemeral.Close(),
		s.durable.Close(),
	)
}
