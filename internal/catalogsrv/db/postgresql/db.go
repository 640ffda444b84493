// Description: This file assembles the PostgreSQL-backed managers for the campus catalog database.
package postgresql

import (
	"campussrv/internal/catalogsrv/db/dbmanager"
)

type campusCatalogDb struct {
	cm *courseManager
	pm *placementManager
	xm *connectionManager
}

func NewCampusCatalogDb(c dbmanager.Conn) (*courseManager, *placementManager, *connectionManager) {
	h := &campusCatalogDb{}
	h.cm = newCourseManager(c)
	h.pm = newPlacementManager(c)
	h.xm = newConnectionManager(c)
	return h.cm, h.pm, h.xm
}
