package catalogmanager

import (
	"context"
	"testing"
	"time"

	"campussrv/internal/catalogsrv/catcommon"
	"campussrv/internal/catalogsrv/db"
	"campussrv/internal/catalogsrv/db/dberror"
	"campussrv/internal/catalogsrv/db/models"
	schemaerr "campussrv/internal/catalogsrv/schema/errors"
	"campussrv/internal/common/apperrors"
	"campussrv/internal/common/uuid"
)

// stubStore is an in-memory db.Database used to exercise the managers
// without a running postgres.
type stubStore struct {
	courses        []*models.Course
	placements     []*models.Placement
	clock          time.Time
	failWith       apperrors.Error
	deletedCourses []uuid.UUID
}

var _ db.Database = (*stubStore)(nil)

func newStubStore() *stubStore {
	return &stubStore{clock: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
}

// tick advances the stub clock so successive records get distinct
// timestamps, matching the ordering the real store produces.
func (s *stubStore) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

func (s *stubStore) CreateCourse(ctx context.Context, course *models.Course) apperrors.Error {
	if s.failWith != nil {
		return s.failWith
	}
	for _, existing := range s.courses {
		if existing.Slug == course.Slug {
			return dberror.ErrAlreadyExists.Msg("course already exists")
		}
	}
	now := s.tick()
	course.CourseID = uuid.New()
	course.CreatedAt = now
	course.UpdatedAt = now
	s.courses = append(s.courses, course)
	return nil
}

func (s *stubStore) GetCourseByID(ctx context.Context, courseID uuid.UUID) (*models.Course, apperrors.Error) {
	for _, course := range s.courses {
		if course.CourseID == courseID {
			return course, nil
		}
	}
	return nil, dberror.ErrNotFound.Msg("course not found")
}

func (s *stubStore) GetCourseBySlug(ctx context.Context, slug string) (*models.Course, apperrors.Error) {
	for _, course := range s.courses {
		if course.Slug == slug {
			return course, nil
		}
	}
	return nil, dberror.ErrNotFound.Msg("course not found")
}

func (s *stubStore) ListCourses(ctx context.Context) ([]*models.Course, apperrors.Error) {
	out := make([]*models.Course, 0, len(s.courses))
	for i := len(s.courses) - 1; i >= 0; i-- {
		out = append(out, s.courses[i])
	}
	return out, nil
}

func (s *stubStore) DeleteCourse(ctx context.Context, courseID uuid.UUID) apperrors.Error {
	s.deletedCourses = append(s.deletedCourses, courseID)
	for i, course := range s.courses {
		if course.CourseID == courseID {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *stubStore) CreatePlacement(ctx context.Context, placement *models.Placement) apperrors.Error {
	if s.failWith != nil {
		return s.failWith
	}
	now := s.tick()
	placement.PlacementID = uuid.New()
	placement.CreatedAt = now
	placement.UpdatedAt = now
	s.placements = append(s.placements, placement)
	return nil
}

func (s *stubStore) GetPlacementByID(ctx context.Context, placementID uuid.UUID) (*models.Placement, apperrors.Error) {
	for _, placement := range s.placements {
		if placement.PlacementID == placementID {
			return placement, nil
		}
	}
	return nil, dberror.ErrNotFound.Msg("placement not found")
}

func (s *stubStore) ListPlacements(ctx context.Context) ([]*models.Placement, apperrors.Error) {
	out := make([]*models.Placement, 0, len(s.placements))
	for i := len(s.placements) - 1; i >= 0; i-- {
		out = append(out, s.placements[i])
	}
	return out, nil
}

func (s *stubStore) DeletePlacement(ctx context.Context, placementID uuid.UUID) apperrors.Error {
	for i, placement := range s.placements {
		if placement.PlacementID == placementID {
			s.placements = append(s.placements[:i], s.placements[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *stubStore) Close(ctx context.Context) {}

// newTestContext returns a context carrying the stub store and an
// authenticated admin principal.
func newTestContext(t *testing.T, store *stubStore) context.Context {
	t.Helper()
	ctx := db.WithDatabase(context.Background(), store)
	return catcommon.WithUserContext(ctx, &catcommon.UserContext{
		Username:  "admin",
		Principal: catcommon.PrincipalTypeAdmin,
	})
}

// newAnonContext returns a context carrying the stub store but no
// principal.
func newAnonContext(t *testing.T, store *stubStore) context.Context {
	t.Helper()
	return db.WithDatabase(context.Background(), store)
}

// validationDetails extracts the per-field validation messages wrapped
// in a validation failure.
func validationDetails(t *testing.T, err apperrors.Error) []string {
	t.Helper()
	for _, wrapped := range err.UnwrapAll() {
		if verrs, ok := wrapped.(schemaerr.ValidationErrors); ok {
			return verrs.Strings()
		}
	}
	t.Fatalf("error does not carry validation details: %v", err)
	return nil
}
