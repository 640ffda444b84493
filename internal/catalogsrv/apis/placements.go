package apis

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campussrv/internal/catalogsrv/catalogmanager"
	"campussrv/internal/common/httpx"
)

// createPlacement creates a new placement record from the request body.
func createPlacement(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	if r.Body == nil {
		return nil, httpx.ErrInvalidRequest("request body is required")
	}
	req, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, httpx.ErrUnableToReadRequest()
	}

	placement, appErr := catalogmanager.CreatePlacement(ctx, req)
	if appErr != nil {
		return nil, toHTTPError(appErr)
	}

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/api/placements/" + placement.ID.String(),
		Response:   placement,
	}, nil
}

// listPlacements returns all placement records, newest first.
func listPlacements(r *http.Request) (*httpx.Response, error) {
	placements, appErr := catalogmanager.ListPlacements(r.Context())
	if appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   placements,
	}, nil
}

// getPlacement returns a single placement record by id.
func getPlacement(r *http.Request) (*httpx.Response, error) {
	placement, appErr := catalogmanager.GetPlacementByID(r.Context(), chi.URLParam(r, "placementID"))
	if appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   placement,
	}, nil
}

// deletePlacement deletes a placement record by id. Deleting a record
// that does not exist succeeds.
func deletePlacement(r *http.Request) (*httpx.Response, error) {
	if appErr := catalogmanager.DeletePlacement(r.Context(), chi.URLParam(r, "placementID")); appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   map[string]string{"message": "placement deleted"},
	}, nil
}
