package models

import (
	"time"

	"github.com/jackc/pgtype"

	"campussrv/internal/common/uuid"
)

/*
 Table "public.courses"
    Column   |           Type           | Collation | Nullable |      Default
-------------+--------------------------+-----------+----------+--------------------
 course_id   | uuid                     |           | not null | uuid_generate_v4()
 slug        | character varying(128)   |           | not null |
 title       | character varying(256)   |           | not null |
 category    | character varying(64)    |           | not null |
 info        | jsonb                    |           | not null | '{}'::jsonb
 created_at  | timestamp with time zone |           | not null | now()
 updated_at  | timestamp with time zone |           | not null | now()
Indexes:
    "courses_pkey" PRIMARY KEY, btree (course_id)
    "courses_slug_key" UNIQUE CONSTRAINT, btree (slug)
    "courses_updated_at_idx" btree (updated_at DESC)
Check constraints:
    "courses_slug_check" CHECK (slug::text ~ '^[a-z0-9]([-a-z0-9]*[a-z0-9])?$'::text)
Triggers:
    update_courses_updated_at BEFORE UPDATE ON courses FOR EACH ROW EXECUTE FUNCTION set_updated_at()
*/

// Course model definition. The slug, title, and category are promoted to
// columns for lookups and uniqueness; the rest of the course document
// lives in the info JSONB payload.
type Course struct {
	CourseID  uuid.UUID    `db:"course_id"`
	Slug      string       `db:"slug"`
	Title     string       `db:"title"`
	Category  string       `db:"category"`
	Info      pgtype.JSONB `db:"info"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}
