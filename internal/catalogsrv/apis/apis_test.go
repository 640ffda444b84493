package apis

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campussrv/internal/catalogsrv/auth"
	"campussrv/internal/catalogsrv/config"
	"campussrv/internal/catalogsrv/db"
	"campussrv/internal/catalogsrv/db/dberror"
	"campussrv/internal/catalogsrv/db/models"
	"campussrv/internal/common/apperrors"
	"campussrv/internal/common/uuid"
)

// stubDatabase is an in-memory db.Database for exercising the handlers
// without postgres.
type stubDatabase struct {
	courses    []*models.Course
	placements []*models.Placement
	now        time.Time
}

var _ db.Database = (*stubDatabase)(nil)

func (s *stubDatabase) tick() time.Time {
	s.now = s.now.Add(time.Minute)
	return s.now
}

func (s *stubDatabase) CreateCourse(ctx context.Context, course *models.Course) apperrors.Error {
	for _, existing := range s.courses {
		if existing.Slug == course.Slug {
			return dberror.ErrAlreadyExists
		}
	}
	now := s.tick()
	course.CourseID = uuid.New()
	course.CreatedAt = now
	course.UpdatedAt = now
	s.courses = append(s.courses, course)
	return nil
}

func (s *stubDatabase) GetCourseByID(ctx context.Context, courseID uuid.UUID) (*models.Course, apperrors.Error) {
	for _, course := range s.courses {
		if course.CourseID == courseID {
			return course, nil
		}
	}
	return nil, dberror.ErrNotFound
}

func (s *stubDatabase) GetCourseBySlug(ctx context.Context, slug string) (*models.Course, apperrors.Error) {
	for _, course := range s.courses {
		if course.Slug == slug {
			return course, nil
		}
	}
	return nil, dberror.ErrNotFound
}

func (s *stubDatabase) ListCourses(ctx context.Context) ([]*models.Course, apperrors.Error) {
	out := make([]*models.Course, 0, len(s.courses))
	for i := len(s.courses) - 1; i >= 0; i-- {
		out = append(out, s.courses[i])
	}
	return out, nil
}

func (s *stubDatabase) DeleteCourse(ctx context.Context, courseID uuid.UUID) apperrors.Error {
	for i, course := range s.courses {
		if course.CourseID == courseID {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			break
		}
	}
	return nil
}

func (s *stubDatabase) CreatePlacement(ctx context.Context, placement *models.Placement) apperrors.Error {
	now := s.tick()
	placement.PlacementID = uuid.New()
	placement.CreatedAt = now
	placement.UpdatedAt = now
	s.placements = append(s.placements, placement)
	return nil
}

func (s *stubDatabase) GetPlacementByID(ctx context.Context, placementID uuid.UUID) (*models.Placement, apperrors.Error) {
	for _, placement := range s.placements {
		if placement.PlacementID == placementID {
			return placement, nil
		}
	}
	return nil, dberror.ErrNotFound
}

func (s *stubDatabase) ListPlacements(ctx context.Context) ([]*models.Placement, apperrors.Error) {
	out := make([]*models.Placement, 0, len(s.placements))
	for i := len(s.placements) - 1; i >= 0; i-- {
		out = append(out, s.placements[i])
	}
	return out, nil
}

func (s *stubDatabase) DeletePlacement(ctx context.Context, placementID uuid.UUID) apperrors.Error {
	for i, placement := range s.placements {
		if placement.PlacementID == placementID {
			s.placements = append(s.placements[:i], s.placements[i+1:]...)
			break
		}
	}
	return nil
}

func (s *stubDatabase) Close(ctx context.Context) {}

// setupTestRouter mounts the API under /api against the stub store, with
// the same auth middleware the real server uses.
func setupTestRouter(t *testing.T, store *stubDatabase) http.Handler {
	t.Helper()
	config.TestInit()

	r := chi.NewRouter()
	r.Use(auth.ContextMiddleware)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(db.WithDatabase(req.Context(), store)))
		})
	})
	r.Route("/api", func(r chi.Router) {
		Router(r)
	})
	return r
}

func executeRequest(t *testing.T, router http.Handler, method, target string, body []byte, authorized bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+config.Config().Auth.APISharedSecret)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func courseBody(t *testing.T, title string) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"title":            title,
		"category":         "CORE Programming",
		"level":            "Beginner",
		"shortDescription": "Short description.",
		"fullDescription":  "Full description.",
		"thumbnail":        "/uploads/courses/x.png",
		"price":            1000,
		"startDate":        "2025-07-01",
	})
	require.NoError(t, err)
	return b
}

func TestCourseEndpoints(t *testing.T) {
	store := &stubDatabase{}
	router := setupTestRouter(t, store)

	// create requires auth
	rec := executeRequest(t, router, http.MethodPost, "/api/courses", courseBody(t, "Java Bootcamp"), false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = executeRequest(t, router, http.MethodPost, "/api/courses", courseBody(t, "Java Bootcamp"), true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Location"), "/api/courses/")

	var created struct {
		ID   string `json:"id"`
		Slug string `json:"slug"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "java-bootcamp", created.Slug)

	// duplicate slug conflicts
	rec = executeRequest(t, router, http.MethodPost, "/api/courses", courseBody(t, "Java Bootcamp"), true)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// public reads need no auth
	rec = executeRequest(t, router, http.MethodGet, "/api/courses", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec = executeRequest(t, router, http.MethodGet, "/api/courses/"+created.ID, nil, false)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = executeRequest(t, router, http.MethodGet, "/api/courses/slug/java-bootcamp", nil, false)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = executeRequest(t, router, http.MethodGet, "/api/courses/not-a-uuid", nil, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// delete requires auth and is idempotent
	rec = executeRequest(t, router, http.MethodDelete, "/api/courses/"+created.ID, nil, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = executeRequest(t, router, http.MethodDelete, "/api/courses/"+created.ID, nil, true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = executeRequest(t, router, http.MethodDelete, "/api/courses/"+created.ID, nil, true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = executeRequest(t, router, http.MethodDelete, "/api/courses/not-a-uuid", nil, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCategoriesEndpoint(t *testing.T) {
	router := setupTestRouter(t, &stubDatabase{})

	rec := executeRequest(t, router, http.MethodGet, "/api/categories", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []struct {
		Value string `json:"value"`
		Label string `json:"label"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.Len(t, categories, 4)
	assert.Equal(t, "CORE Programming", categories[0].Value)
	assert.Equal(t, "Core Programming", categories[0].Label)
}

func TestCreateCourseValidationDetails(t *testing.T) {
	store := &stubDatabase{}
	router := setupTestRouter(t, store)

	body, err := json.Marshal(map[string]any{
		"category": "Cooking",
		"price":    -5,
	})
	require.NoError(t, err)

	rec := executeRequest(t, router, http.MethodPost, "/api/courses", body, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var rsp struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rsp))
	assert.Equal(t, "validation failed", rsp.Error)
	assert.NotEmpty(t, rsp.Details)
}

func TestPlacementEndpoints(t *testing.T) {
	store := &stubDatabase{}
	router := setupTestRouter(t, store)

	body, err := json.Marshal(map[string]any{
		"studentName": "Priya Sharma",
		"course":      "Java Bootcamp",
		"company":     "TechCorp",
		"role":        "Engineer",
		"year":        2025,
	})
	require.NoError(t, err)

	rec := executeRequest(t, router, http.MethodPost, "/api/placements", body, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = executeRequest(t, router, http.MethodPost, "/api/placements", body, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = executeRequest(t, router, http.MethodGet, "/api/placements", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec = executeRequest(t, router, http.MethodGet, "/api/placements/"+created.ID, nil, false)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = executeRequest(t, router, http.MethodDelete, "/api/placements/"+created.ID, nil, true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = executeRequest(t, router, http.MethodGet, "/api/placements/"+created.ID, nil, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUploadEndpoint(t *testing.T) {
	store := &stubDatabase{}
	router := setupTestRouter(t, store)
	config.Config().Upload.Dir = t.TempDir()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", "thumb.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewReader(body.Bytes()))
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewReader(body.Bytes()))
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+config.Config().Auth.APISharedSecret)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var rsp struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rsp))
	assert.Contains(t, rsp.URL, "/uploads/courses/")
	assert.Contains(t, rsp.URL, "-thumb.png")
}
