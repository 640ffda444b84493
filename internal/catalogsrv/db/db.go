// Package db provides database interfaces and implementations for the campus service.
// It defines three main interfaces:
// - CourseManager: Course record operations
// - PlacementManager: Placement record operations
// - ConnectionManager: Manages database connections
package db

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"campussrv/internal/catalogsrv/db/dbmanager"
	"campussrv/internal/catalogsrv/db/models"
	"campussrv/internal/catalogsrv/db/postgresql"
	"campussrv/internal/common/apperrors"
	"campussrv/internal/common/uuid"
)

// CourseManager handles all course record operations.
// All operations require a valid context and may return apperrors.Error for various failure cases.
type CourseManager interface {
	CreateCourse(ctx context.Context, course *models.Course) apperrors.Error
	GetCourseByID(ctx context.Context, courseID uuid.UUID) (*models.Course, apperrors.Error)
	GetCourseBySlug(ctx context.Context, slug string) (*models.Course, apperrors.Error)
	ListCourses(ctx context.Context) ([]*models.Course, apperrors.Error)
	DeleteCourse(ctx context.Context, courseID uuid.UUID) apperrors.Error
}

// PlacementManager handles all placement record operations.
type PlacementManager interface {
	CreatePlacement(ctx context.Context, placement *models.Placement) apperrors.Error
	GetPlacementByID(ctx context.Context, placementID uuid.UUID) (*models.Placement, apperrors.Error)
	ListPlacements(ctx context.Context) ([]*models.Placement, apperrors.Error)
	DeletePlacement(ctx context.Context, placementID uuid.UUID) apperrors.Error
}

// ConnectionManager handles database connection lifecycle.
type ConnectionManager interface {
	// Close returns the connection to the database pool.
	Close(ctx context.Context)
}

// Database interface combines all three managers into a single interface.
// This allows for a unified database access layer while maintaining separation of concerns.
type Database interface {
	CourseManager
	PlacementManager
	ConnectionManager
}

var (
	pool     dbmanager.Pool
	initOnce sync.Once
	initErr  error
)

// Init initializes the database connection pool. It is safe to call
// from multiple goroutines; the pool is created once and subsequent
// calls return the outcome of the first.
func Init() error {
	initOnce.Do(func() {
		ctx := log.Logger.WithContext(context.Background())
		pg := dbmanager.NewPool(ctx, "postgresql")
		if pg == nil {
			initErr = fmt.Errorf("unable to create db pool")
			return
		}
		pool = pg
	})
	return initErr
}

// Conn returns a new database connection from the pool.
// Returns an error if the connection cannot be established.
func Conn(ctx context.Context) (dbmanager.Conn, error) {
	if pool != nil {
		conn, err := pool.Conn(ctx)
		if err == nil {
			return conn, nil
		}
		log.Ctx(ctx).Error().Err(err).Msg("unable to get db connection")
		return nil, err
	}
	return nil, fmt.Errorf("database pool not initialized")
}

type ctxDbKeyType string

const (
	ctxDbKey    ctxDbKeyType = "CampusCatalogDb"
	ctxStoreKey ctxDbKeyType = "CampusCatalogStore"
)

// ConnCtx adds a database connection to the context.
// Returns an error if the connection cannot be established.
func ConnCtx(ctx context.Context) (context.Context, error) {
	conn, err := Conn(ctx)
	if err != nil {
		return nil, err
	}
	return context.WithValue(ctx, ctxDbKey, conn), nil
}

// WithDatabase stores a Database directly in the context, bypassing the
// connection pool. Tests use this to run handlers against a stub store.
func WithDatabase(ctx context.Context, d Database) context.Context {
	return context.WithValue(ctx, ctxStoreKey, d)
}

type campusCatalogDb struct {
	CourseManager
	PlacementManager
	ConnectionManager
}

// DB returns a new database instance from the context.
// It expects a valid database connection in the context.
// Returns nil if no connection is found in the context.
func DB(ctx context.Context) Database {
	if d, ok := ctx.Value(ctxStoreKey).(Database); ok {
		return d
	}
	if conn, ok := ctx.Value(ctxDbKey).(dbmanager.Conn); ok {
		cm, pm, xm := postgresql.NewCampusCatalogDb(conn)
		return &campusCatalogDb{
			CourseManager:     cm,
			PlacementManager:  pm,
			ConnectionManager: xm,
		}
	}
	log.Ctx(ctx).Error().Msg("unable to get db connection from context")
	return nil
}
