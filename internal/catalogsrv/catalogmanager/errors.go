package catalogmanager

import (
	"net/http"

	"campussrv/internal/common/apperrors"
)

// Base catalog error
var (
	ErrCatalogError apperrors.Error = apperrors.New("catalog processing failed").SetStatusCode(http.StatusInternalServerError)
)

// Not found errors
var (
	ErrCourseNotFound    apperrors.Error = ErrCatalogError.New("course not found").SetStatusCode(http.StatusNotFound)
	ErrPlacementNotFound apperrors.Error = ErrCatalogError.New("placement not found").SetStatusCode(http.StatusNotFound)
)

// Conflict errors
var (
	ErrCourseAlreadyExists apperrors.Error = ErrCatalogError.New("course with this slug already exists").SetStatusCode(http.StatusConflict)
)

// Authorization errors
var (
	ErrUnauthorized apperrors.Error = ErrCatalogError.New("unauthorized").SetStatusCode(http.StatusUnauthorized)
)

// Validation errors
var (
	ErrInvalidSchema       apperrors.Error = ErrCatalogError.New("invalid request").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
	ErrValidationFailed    apperrors.Error = ErrCatalogError.New("validation failed").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
	ErrInvalidCourseID     apperrors.Error = ErrCatalogError.New("invalid course id").SetStatusCode(http.StatusBadRequest)
	ErrInvalidPlacementID  apperrors.Error = ErrCatalogError.New("invalid placement id").SetStatusCode(http.StatusBadRequest)
	ErrUnableToLoadObject  apperrors.Error = ErrCatalogError.New("failed to load object").SetStatusCode(http.StatusInternalServerError)
	ErrUnableToSaveObject  apperrors.Error = ErrCatalogError.New("failed to save object").SetStatusCode(http.StatusInternalServerError)
)
