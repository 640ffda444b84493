// Package dbmanager provides functionality for managing the PostgreSQL database connection pool and executing queries.
package dbmanager

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"
)

type Pool interface {
	// Conn returns a new connection to the database.
	// Returns a Conn and an error, if any.
	Conn(ctx context.Context) (Conn, error)
	// Stats returns the number of connection requests and returns.
	Stats() (requests, returns uint64)
}

type Conn interface {
	// Conn returns the underlying *sql.Conn. Do not close this directly.
	// Use Conn.Close(ctx) to return it to the pool safely.
	Conn() *sql.Conn
	// Close returns the connection back to the pool.
	Close(ctx context.Context)
}

// NewPool returns a connection pool for the given database type. The
// connection handed out per request is not concurrency safe and must be
// used in a single goroutine; the service uses one connection per
// request and does not share it across goroutines.
func NewPool(ctx context.Context, dbtype string) Pool {
	switch dbtype {
	case "postgresql":
		db, err := NewPostgresqlDb()
		if err != nil || db == nil {
			log.Ctx(ctx).Error().Err(err).Msg("Failed to create PostgreSQL DB")
			return nil
		}
		return db
	}
	return nil
}
