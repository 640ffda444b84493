package apis

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campussrv/internal/catalogsrv/catalogmanager"
	"campussrv/internal/catalogsrv/catcommon"
	"campussrv/internal/common/httpx"
)

// createCourse creates a new course from the request body.
func createCourse(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	if r.Body == nil {
		return nil, httpx.ErrInvalidRequest("request body is required")
	}
	req, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, httpx.ErrUnableToReadRequest()
	}

	course, appErr := catalogmanager.CreateCourse(ctx, req)
	if appErr != nil {
		return nil, toHTTPError(appErr)
	}

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/api/courses/" + course.ID.String(),
		Response:   course,
	}, nil
}

// listCourses returns all courses, most recently updated first.
func listCourses(r *http.Request) (*httpx.Response, error) {
	courses, appErr := catalogmanager.ListCourses(r.Context())
	if appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   courses,
	}, nil
}

// getCourse returns a single course by id.
func getCourse(r *http.Request) (*httpx.Response, error) {
	course, appErr := catalogmanager.GetCourseByID(r.Context(), chi.URLParam(r, "courseID"))
	if appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   course,
	}, nil
}

// getCourseBySlug returns a single course by its URL slug.
func getCourseBySlug(r *http.Request) (*httpx.Response, error) {
	course, appErr := catalogmanager.GetCourseBySlug(r.Context(), chi.URLParam(r, "slug"))
	if appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   course,
	}, nil
}

type categoryInfo struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// listCategories returns the course categories with their display
// labels, so clients don't hardcode the mapping.
func listCategories(r *http.Request) (*httpx.Response, error) {
	categories := catcommon.Categories()
	out := make([]categoryInfo, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryInfo{Value: string(c), Label: c.Label()})
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   out,
	}, nil
}

// deleteCourse deletes a course by id. Deleting a course that does not
// exist succeeds.
func deleteCourse(r *http.Request) (*httpx.Response, error) {
	if appErr := catalogmanager.DeleteCourse(r.Context(), chi.URLParam(r, "courseID")); appErr != nil {
		return nil, appErr
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   map[string]string{"message": "course deleted"},
	}, nil
}
