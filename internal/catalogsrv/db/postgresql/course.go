package postgresql

import (
	"context"
	"database/sql"

	"github.com/jackc/pgconn"
	"github.com/rs/zerolog/log"

	"campussrv/internal/catalogsrv/db/dberror"
	"campussrv/internal/catalogsrv/db/models"
	"campussrv/internal/common/apperrors"
	"campussrv/internal/common/uuid"
)

// CreateCourse creates a new course in the database.
// It generates a new UUID for the course ID if one is not provided.
// If a course with the same slug already exists, the insertion is
// skipped and ErrAlreadyExists is returned. Returns an error if the
// slug format is invalid or there is a database error.
func (cm *courseManager) CreateCourse(ctx context.Context, course *models.Course) apperrors.Error {
	courseID := course.CourseID
	if courseID == uuid.Nil {
		courseID = uuid.New()
	}

	query := `
		INSERT INTO courses (course_id, slug, title, category, info)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slug) DO NOTHING
		RETURNING course_id, created_at, updated_at;
	`

	row := cm.conn().QueryRowContext(ctx, query, courseID, course.Slug, course.Title, course.Category, course.Info)
	err := row.Scan(&course.CourseID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("slug", course.Slug).Msg("course already exists")
			return dberror.ErrAlreadyExists.Msg("course with this slug already exists")
		}
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23514" && pgErr.ConstraintName == "courses_slug_check" {
				log.Ctx(ctx).Error().Str("slug", course.Slug).Msg("invalid course slug format")
				return dberror.ErrInvalidInput.Msg("invalid course slug format")
			}
		}
		log.Ctx(ctx).Error().Err(err).Str("slug", course.Slug).Msg("failed to insert course")
		return dberror.ErrDatabase.Err(err)
	}

	return nil
}

// GetCourseByID retrieves a course by its UUID.
// Returns ErrNotFound if no course matches.
func (cm *courseManager) GetCourseByID(ctx context.Context, courseID uuid.UUID) (*models.Course, apperrors.Error) {
	query := `
		SELECT course_id, slug, title, category, info, created_at, updated_at
		FROM courses
		WHERE course_id = $1;
	`

	row := cm.conn().QueryRowContext(ctx, query, courseID)
	course := &models.Course{}
	err := row.Scan(&course.CourseID, &course.Slug, &course.Title, &course.Category, &course.Info, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("course_id", courseID.String()).Msg("course not found")
			return nil, dberror.ErrNotFound.Msg("course not found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to retrieve course")
		return nil, dberror.ErrDatabase.Err(err)
	}

	return course, nil
}

// GetCourseBySlug retrieves a course by its slug. Exact match only.
// Returns ErrNotFound if no course matches.
func (cm *courseManager) GetCourseBySlug(ctx context.Context, slug string) (*models.Course, apperrors.Error) {
	query := `
		SELECT course_id, slug, title, category, info, created_at, updated_at
		FROM courses
		WHERE slug = $1;
	`

	row := cm.conn().QueryRowContext(ctx, query, slug)
	course := &models.Course{}
	err := row.Scan(&course.CourseID, &course.Slug, &course.Title, &course.Category, &course.Info, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("slug", slug).Msg("course not found")
			return nil, dberror.ErrNotFound.Msg("course not found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to retrieve course")
		return nil, dberror.ErrDatabase.Err(err)
	}

	return course, nil
}

// ListCourses retrieves all courses ordered by most recently updated
// first. The catalog is a bounded dataset, so there is no pagination.
func (cm *courseManager) ListCourses(ctx context.Context) ([]*models.Course, apperrors.Error) {
	query := `
		SELECT course_id, slug, title, category, info, created_at, updated_at
		FROM courses
		ORDER BY updated_at DESC;
	`

	rows, err := cm.conn().QueryContext(ctx, query)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to query courses")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course := &models.Course{}
		err := rows.Scan(&course.CourseID, &course.Slug, &course.Title, &course.Category, &course.Info, &course.CreatedAt, &course.UpdatedAt)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan course row")
			return nil, dberror.ErrDatabase.Err(err)
		}
		courses = append(courses, course)
	}

	if err = rows.Err(); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error iterating over course rows")
		return nil, dberror.ErrDatabase.Err(err)
	}

	return courses, nil
}

// DeleteCourse deletes a course by its UUID. Deleting a course that
// does not exist is not an error; the operation is idempotent.
func (cm *courseManager) DeleteCourse(ctx context.Context, courseID uuid.UUID) apperrors.Error {
	query := `
		DELETE FROM courses
		WHERE course_id = $1;
	`

	result, err := cm.conn().ExecContext(ctx, query, courseID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to delete course")
		return dberror.ErrDatabase.Err(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to retrieve result information")
		return dberror.ErrDatabase.Err(err)
	}

	if rowsAffected == 0 {
		log.Ctx(ctx).Info().Str("course_id", courseID.String()).Msg("course not found")
	}

	return nil
}
