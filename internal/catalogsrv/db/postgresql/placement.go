package postgresql

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"

	"campussrv/internal/catalogsrv/db/dberror"
	"campussrv/internal/catalogsrv/db/models"
	"campussrv/internal/common/apperrors"
	"campussrv/internal/common/uuid"
)

// CreatePlacement creates a new placement record in the database.
// It generates a new UUID for the placement ID if one is not provided.
func (pm *placementManager) CreatePlacement(ctx context.Context, placement *models.Placement) apperrors.Error {
	placementID := placement.PlacementID
	if placementID == uuid.Nil {
		placementID = uuid.New()
	}

	query := `
		INSERT INTO placements (placement_id, student_name, course, company, role, package_offered, year, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING placement_id, created_at, updated_at;
	`

	row := pm.conn().QueryRowContext(ctx, query,
		placementID, placement.StudentName, placement.Course, placement.Company,
		placement.Role, placement.PackageOffered, placement.Year, placement.Image)
	err := row.Scan(&placement.PlacementID, &placement.CreatedAt, &placement.UpdatedAt)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("student_name", placement.StudentName).Msg("failed to insert placement")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}

// GetPlacementByID retrieves a placement by its UUID.
// Returns ErrNotFound if no placement matches.
func (pm *placementManager) GetPlacementByID(ctx context.Context, placementID uuid.UUID) (*models.Placement, apperrors.Error) {
	query := `
		SELECT placement_id, student_name, course, company, role, package_offered, year, image, created_at, updated_at
		FROM placements
		WHERE placement_id = $1;
	`

	row := pm.conn().QueryRowContext(ctx, query, placementID)
	placement := &models.Placement{}
	err := row.Scan(&placement.PlacementID, &placement.StudentName, &placement.Course, &placement.Company,
		&placement.Role, &placement.PackageOffered, &placement.Year, &placement.Image,
		&placement.CreatedAt, &placement.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("placement_id", placementID.String()).Msg("placement not found")
			return nil, dberror.ErrNotFound.Msg("placement not found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to retrieve placement")
		return nil, dberror.ErrDatabase.Err(err)
	}

	return placement, nil
}

// ListPlacements retrieves all placements, newest first.
func (pm *placementManager) ListPlacements(ctx context.Context) ([]*models.Placement, apperrors.Error) {
	query := `
		SELECT placement_id, student_name, course, company, role, package_offered, year, image, created_at, updated_at
		FROM placements
		ORDER BY created_at DESC;
	`

	rows, err := pm.conn().QueryContext(ctx, query)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to query placements")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var placements []*models.Placement
	for rows.Next() {
		placement := &models.Placement{}
		err := rows.Scan(&placement.PlacementID, &placement.StudentName, &placement.Course, &placement.Company,
			&placement.Role, &placement.PackageOffered, &placement.Year, &placement.Image,
			&placement.CreatedAt, &placement.UpdatedAt)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan placement row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		placements = append(placements, placement)
	}

	if err = rows.Err(); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error iterating over placement rows")
		return nil, dberror.ErrDatabase.Err(err)
	}

	return placements, nil
}

// DeletePlacement deletes a placement by its UUID. Deleting a
// placement that does not exist is not an error.
func (pm *placementManager) DeletePlacement(ctx context.Context, placementID uuid.UUID) apperrors.Error {
	query := `
		DELETE FROM placements
		WHERE placement_id = $1;
	`

	result, err := pm.conn().ExecContext(ctx, query, placementID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to delete placement")
		return dberror.ErrDatabase.Err(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to retrieve result information")
		return dberror.ErrDatabase.Err(err)
	}

	if rowsAffected == 0 {
		log.Ctx(ctx).Info().Str("placement_id", placementID.String()).Msg("placement not found")
	}

	return nil
}
