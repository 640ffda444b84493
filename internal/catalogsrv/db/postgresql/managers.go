package postgresql

import (
	"context"
	"database/sql"

	"campussrv/internal/catalogsrv/db/dbmanager"
)

// Course Manager
type courseManager struct {
	c dbmanager.Conn
}

func (cm *courseManager) conn() *sql.Conn {
	return cm.c.Conn()
}

func newCourseManager(c dbmanager.Conn) *courseManager {
	return &courseManager{c: c}
}

// Placement Manager
type placementManager struct {
	c dbmanager.Conn
}

func (pm *placementManager) conn() *sql.Conn {
	return pm.c.Conn()
}

func newPlacementManager(c dbmanager.Conn) *placementManager {
	return &placementManager{c: c}
}

// Connection Manager
type connectionManager struct {
	c dbmanager.Conn
}

func newConnectionManager(c dbmanager.Conn) *connectionManager {
	return &connectionManager{c: c}
}

func (cm *connectionManager) Close(ctx context.Context) {
	cm.c.Close(ctx)
}
