package apis

import (
	schemaerr "campussrv/internal/catalogsrv/schema/errors"
	"campussrv/internal/common/apperrors"
	"campussrv/internal/common/httpx"
)

// toHTTPError unpacks validation failures into an HTTP error carrying
// the full per-field detail list. Any other error passes through
// unchanged; the response wrapper renders it from its status code.
func toHTTPError(err apperrors.Error) error {
	for _, wrapped := range err.UnwrapAll() {
		if verrs, ok := wrapped.(schemaerr.ValidationErrors); ok {
			return httpx.ErrValidationFailed(verrs.Strings())
		}
	}
	return err
}
