// Package apis implements the catalog HTTP API: public catalog reads
// and the authenticated admin operations for courses, placements, and
// image uploads.
package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campussrv/internal/catalogsrv/auth"
	"campussrv/internal/common/httpx"
)

// responseHandlerParam describes one API route. Routes marked
// RequireAuth only run for an authenticated principal.
type responseHandlerParam struct {
	Method      string
	Path        string
	Handler     httpx.RequestHandler
	RequireAuth bool
}

var catalogHandlers = []responseHandlerParam{
	{
		Method:  http.MethodGet,
		Path:    "/categories",
		Handler: listCategories,
	},
	{
		Method:  http.MethodGet,
		Path:    "/courses",
		Handler: listCourses,
	},
	{
		Method:  http.MethodGet,
		Path:    "/courses/slug/{slug}",
		Handler: getCourseBySlug,
	},
	{
		Method:  http.MethodGet,
		Path:    "/courses/{courseID}",
		Handler: getCourse,
	},
	{
		Method:      http.MethodPost,
		Path:        "/courses",
		Handler:     createCourse,
		RequireAuth: true,
	},
	{
		Method:      http.MethodDelete,
		Path:        "/courses/{courseID}",
		Handler:     deleteCourse,
		RequireAuth: true,
	},
	{
		Method:  http.MethodGet,
		Path:    "/placements",
		Handler: listPlacements,
	},
	{
		Method:  http.MethodGet,
		Path:    "/placements/{placementID}",
		Handler: getPlacement,
	},
	{
		Method:      http.MethodPost,
		Path:        "/placements",
		Handler:     createPlacement,
		RequireAuth: true,
	},
	{
		Method:      http.MethodDelete,
		Path:        "/placements/{placementID}",
		Handler:     deletePlacement,
		RequireAuth: true,
	},
	{
		Method:      http.MethodPost,
		Path:        "/upload",
		Handler:     uploadImage,
		RequireAuth: true,
	},
}

// Router registers the catalog API routes on the given router.
func Router(r chi.Router) chi.Router {
	r.Group(func(r chi.Router) {
		for _, handler := range catalogHandlers {
			h := handler.Handler
			if handler.RequireAuth {
				h = auth.EnforceAuthMiddleware(h)
			}
			r.Method(handler.Method, handler.Path, httpx.WrapHttpRsp(h))
		}
	})
	return r
}
