package catalogmanager

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"campussrv/internal/catalogsrv/catcommon"
	"campussrv/internal/catalogsrv/db"
	"campussrv/internal/catalogsrv/db/dberror"
	"campussrv/internal/catalogsrv/db/models"
	schemaerr "campussrv/internal/catalogsrv/schema/errors"
	"campussrv/internal/catalogsrv/schema/schemavalidator"
	"campussrv/internal/common/apperrors"
	"campussrv/internal/common/uuid"
)

// placementSchema is the admin form input for a new placement record.
type placementSchema struct {
	StudentName    string `json:"studentName" validate:"required"`
	Course         string `json:"course" validate:"required"`
	Company        string `json:"company" validate:"required"`
	Role           string `json:"role" validate:"required"`
	PackageOffered string `json:"packageOffered"`
	Year           *int   `json:"year" validate:"required"`
	Image          string `json:"image"`
}

// Placement is the external representation of a placement record.
type Placement struct {
	ID             uuid.UUID `json:"id"`
	StudentName    string    `json:"studentName"`
	Course         string    `json:"course"`
	Company        string    `json:"company"`
	Role           string    `json:"role"`
	PackageOffered string    `json:"packageOffered,omitempty"`
	Year           int       `json:"year"`
	Image          string    `json:"image,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (ps *placementSchema) normalize() {
	ps.StudentName = strings.TrimSpace(ps.StudentName)
	ps.Course = strings.TrimSpace(ps.Course)
	ps.Company = strings.TrimSpace(ps.Company)
	ps.Role = strings.TrimSpace(ps.Role)
	ps.PackageOffered = strings.TrimSpace(ps.PackageOffered)
	ps.Image = strings.TrimSpace(ps.Image)
}

// Validate collects every validation failure in the input.
func (ps *placementSchema) Validate() schemaerr.ValidationErrors {
	var validationErrors schemaerr.ValidationErrors

	err := schemavalidator.V().Struct(ps)
	if err != nil {
		validatorErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return append(validationErrors, schemaerr.ErrInvalidSchema)
		}

		value := reflect.ValueOf(ps).Elem()
		typeOfSchema := value.Type()

		for _, e := range validatorErrors {
			jsonFieldName := schemavalidator.GetJSONFieldPath(value, typeOfSchema, e.StructField())

			switch e.Tag() {
			case "required":
				validationErrors = append(validationErrors, schemaerr.ErrMissingRequiredAttribute(jsonFieldName))
			default:
				validationErrors = append(validationErrors, schemaerr.ErrValidationFailed(jsonFieldName))
			}
		}
	}

	if ps.Year != nil && *ps.Year <= 0 {
		validationErrors = append(validationErrors, schemaerr.ErrInvalidYear("year"))
	}

	return validationErrors
}

// CreatePlacement validates and persists a new placement record.
// Authorization is checked before any parsing.
func CreatePlacement(ctx context.Context, resourceJSON []byte) (*Placement, apperrors.Error) {
	if catcommon.GetUserContext(ctx) == nil {
		return nil, ErrUnauthorized
	}

	if len(resourceJSON) == 0 {
		return nil, ErrInvalidSchema
	}

	schema := &placementSchema{}
	if err := json.Unmarshal(resourceJSON, schema); err != nil {
		return nil, ErrInvalidSchema.Err(err)
	}

	schema.normalize()
	if validationErrors := schema.Validate(); validationErrors != nil {
		return nil, ErrValidationFailed.Err(validationErrors)
	}

	placement := &models.Placement{
		StudentName:    schema.StudentName,
		Course:         schema.Course,
		Company:        schema.Company,
		Role:           schema.Role,
		PackageOffered: schema.PackageOffered,
		Year:           *schema.Year,
		Image:          schema.Image,
	}

	if dbErr := db.DB(ctx).CreatePlacement(ctx, placement); dbErr != nil {
		return nil, dbErr
	}

	log.Ctx(ctx).Info().Str("student_name", placement.StudentName).Msg("placement created")
	return placementFromModel(placement), nil
}

// ListPlacements returns all placements, newest first.
func ListPlacements(ctx context.Context) ([]*Placement, apperrors.Error) {
	records, dbErr := db.DB(ctx).ListPlacements(ctx)
	if dbErr != nil {
		return nil, dbErr
	}

	placements := make([]*Placement, 0, len(records))
	for _, record := range records {
		placements = append(placements, placementFromModel(record))
	}
	return placements, nil
}

// GetPlacementByID retrieves a placement by id. A malformed id is
// reported the same as a missing record.
func GetPlacementByID(ctx context.Context, id string) (*Placement, apperrors.Error) {
	placementID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrPlacementNotFound
	}

	record, dbErr := db.DB(ctx).GetPlacementByID(ctx, placementID)
	if dbErr != nil {
		if errors.Is(dbErr, dberror.ErrNotFound) {
			return nil, ErrPlacementNotFound
		}
		return nil, dbErr
	}
	return placementFromModel(record), nil
}

// DeletePlacement deletes a placement by id. Deleting an id that does
// not exist has no effect; the operation is idempotent.
func DeletePlacement(ctx context.Context, id string) apperrors.Error {
	if catcommon.GetUserContext(ctx) == nil {
		return ErrUnauthorized
	}

	placementID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidPlacementID
	}

	if dbErr := db.DB(ctx).DeletePlacement(ctx, placementID); dbErr != nil {
		return dbErr
	}

	log.Ctx(ctx).Info().Str("placement_id", placementID.String()).Msg("placement deleted")
	return nil
}

func placementFromModel(record *models.Placement) *Placement {
	return &Placement{
		ID:             record.PlacementID,
		StudentName:    record.StudentName,
		Course:         record.Course,
		Company:        record.Company,
		Role:           record.Role,
		PackageOffered: record.PackageOffered,
		Year:           record.Year,
		Image:          record.Image,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}
