package dbmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/stdlib"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"campussrv/internal/catalogsrv/db/config"
)

// postgresConn represents a connection to the PostgreSQL database.
type postgresConn struct {
	conn   *sql.Conn
	cancel context.CancelFunc
	pool   *postgresPool
}

// postgresPool represents a pool of PostgreSQL database connections.
type postgresPool struct {
	connRequests uint64
	connReturns  uint64
	db           *sql.DB
}

// NewPostgresqlDb creates a new PostgreSQL database connection pool.
// When the initial connection fails because the database host cannot be
// resolved, it retries once with the configured fallback DNS servers.
// Container DNS is occasionally unavailable right after startup and the
// retry rides that out.
func NewPostgresqlDb() (Pool, error) {
	dsn := config.CampusDsn()

	var sqlDB *sql.DB
	useFallbackDNS := false

	err := retry.Do(
		func() error {
			db, err := openAndPing(dsn, useFallbackDNS)
			if err != nil {
				return err
			}
			sqlDB = db
			return nil
		},
		retry.Attempts(2),
		retry.LastErrorOnly(true),
		retry.RetryIf(isDNSFailure),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).
				Strs("fallback_dns", config.DNSFallbackServers()).
				Msg("db host lookup failed, retrying with fallback dns")
			useFallbackDNS = true
		}),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to db")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &postgresPool{
		db: sqlDB,
	}, nil
}

func openAndPing(dsn string, useFallbackDNS bool) (*sql.DB, error) {
	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if useFallbackDNS {
		connCfg.LookupFunc = fallbackLookup(config.DNSFallbackServers())
	}

	sqlDB, err := sql.Open("pgx", stdlib.RegisterConnConfig(connCfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Configure connection pool settings
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return sqlDB, nil
}

// isDNSFailure reports whether err was caused by a failed host lookup.
func isDNSFailure(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// fallbackLookup returns a host lookup function backed by the given
// DNS servers instead of the system resolver. Servers are tried in
// order until one accepts the query.
func fallbackLookup(servers []string) pgconn.LookupFunc {
	resolver := &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, _ string) (net.Conn, error) {
			d := net.Dialer{Timeout: 5 * time.Second}
			var lastErr error
			for _, server := range servers {
				conn, err := d.DialContext(ctx, network, server)
				if err == nil {
					return conn, nil
				}
				lastErr = err
			}
			return nil, lastErr
		},
	}
	return func(ctx context.Context, host string) ([]string, error) {
		return resolver.LookupHost(ctx, host)
	}
}

// Conn returns a new connection to the PostgreSQL database from the connection pool.
func (p *postgresPool) Conn(ctx context.Context) (Conn, error) {
	ctx, cancel := context.WithCancel(ctx)

	conn, err := p.db.Conn(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to obtain connection")
		cancel()
		return nil, fmt.Errorf("failed to obtain database connection: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			cancel()
			conn.Close()
			log.Error().Interface("panic", r).Msg("recovered from panic while setting up connection")
		}
	}()

	sessionParams := map[string]string{
		"lock_timeout":                        "5s",
		"statement_timeout":                   "5s",
		"idle_in_transaction_session_timeout": "5s",
	}

	for param, value := range sessionParams {
		// For SET commands, we need to properly quote both the parameter and value
		query := fmt.Sprintf("SET %s = %s", pq.QuoteIdentifier(param), pq.QuoteLiteral(value))
		_, err = conn.ExecContext(ctx, query)
		if err != nil {
			cancel()
			conn.Close()
			return nil, fmt.Errorf("failed to set %s: %w", param, err)
		}
	}

	h := &postgresConn{
		cancel: cancel,
		pool:   p,
		conn:   conn,
	}

	atomic.AddUint64(&p.connRequests, 1)
	return h, nil
}

// Stats returns the number of connection requests and returns made to the PostgreSQL database.
func (p *postgresPool) Stats() (requests, returns uint64) {
	return atomic.LoadUint64(&p.connRequests), atomic.LoadUint64(&p.connReturns)
}

// OpenConns returns the number of open connections in the pool.
func (p *postgresPool) OpenConns() int {
	return p.db.Stats().OpenConnections
}

// Close returns the connection back to the pool.
func (h *postgresConn) Close(ctx context.Context) {
	if h.conn == nil {
		return
	}

	h.conn.Close()
	if h.cancel != nil {
		h.cancel()
	}

	atomic.AddUint64(&h.pool.connReturns, 1)
}

// Conn returns the underlying connection of the postgresConn.
func (h *postgresConn) Conn() *sql.Conn {
	return h.conn
}
