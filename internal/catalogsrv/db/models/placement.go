package models

import (
	"time"

	"campussrv/internal/common/uuid"
)

/*
 Table "public.placements"
     Column      |           Type           | Collation | Nullable |      Default
-----------------+--------------------------+-----------+----------+--------------------
 placement_id    | uuid                     |           | not null | uuid_generate_v4()
 student_name    | character varying(256)   |           | not null |
 course          | character varying(256)   |           | not null |
 company         | character varying(256)   |           | not null |
 role            | character varying(256)   |           | not null |
 package_offered | character varying(128)   |           | not null | ''
 year            | integer                  |           | not null |
 image           | text                     |           | not null | ''
 created_at      | timestamp with time zone |           | not null | now()
 updated_at      | timestamp with time zone |           | not null | now()
Indexes:
    "placements_pkey" PRIMARY KEY, btree (placement_id)
    "placements_created_at_idx" btree (created_at DESC)
Triggers:
    update_placements_updated_at BEFORE UPDATE ON placements FOR EACH ROW EXECUTE FUNCTION set_updated_at()
*/

// Placement model definition
type Placement struct {
	PlacementID    uuid.UUID `db:"placement_id"`
	StudentName    string    `db:"student_name"`
	Course         string    `db:"course"`
	Company        string    `db:"company"`
	Role           string    `db:"role"`
	PackageOffered string    `db:"package_offered"`
	Year           int       `db:"year"`
	Image          string    `db:"image"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
