package catalogmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campussrv/internal/common/uuid"
)

func validPlacement() map[string]any {
	return map[string]any{
		"studentName":    "Priya Sharma",
		"course":         "Full Stack Java Development",
		"company":        "TechCorp",
		"role":           "Software Engineer",
		"packageOffered": "6.5 LPA",
		"year":           2025,
		"image":          "/uploads/courses/priya.png",
	}
}

func TestCreatePlacement(t *testing.T) {
	store := newStubStore()
	ctx := newTestContext(t, store)

	placement, err := CreatePlacement(ctx, mustJSON(t, validPlacement()))
	require.Nil(t, err)
	assert.NotEqual(t, uuid.Nil, placement.ID)
	assert.Equal(t, "Priya Sharma", placement.StudentName)
	assert.Equal(t, 2025, placement.Year)
	assert.False(t, placement.CreatedAt.IsZero())
}

func TestCreatePlacementTrimsFields(t *testing.T) {
	store := newStubStore()
	ctx := newTestContext(t, store)

	req := validPlacement()
	req["studentName"] = "  Priya Sharma  "
	req["company"] = " TechCorp "

	placement, err := CreatePlacement(ctx, mustJSON(t, req))
	require.Nil(t, err)
	assert.Equal(t, "Priya Sharma", placement.StudentName)
	assert.Equal(t, "TechCorp", placement.Company)
}

func TestCreatePlacementBatchedValidation(t *testing.T) {
	store := newStubStore()
	ctx := newTestContext(t, store)

	req := validPlacement()
	delete(req, "studentName")
	delete(req, "company")
	delete(req, "year")

	_, err := CreatePlacement(ctx, mustJSON(t, req))
	require.NotNil(t, err)
	require.ErrorIs(t, err, ErrValidationFailed)

	details := validationDetails(t, err)
	assert.True(t, detailsContain(details, "studentName: missing required attribute"))
	assert.True(t, detailsContain(details, "company: missing required attribute"))
	assert.True(t, detailsContain(details, "year: missing required attribute"))
}

func TestCreatePlacementInvalidYear(t *testing.T) {
	for _, year := range []int{0, -3} {
		store := newStubStore()
		ctx := newTestContext(t, store)

		req := validPlacement()
		req["year"] = year

		_, err := CreatePlacement(ctx, mustJSON(t, req))
		require.NotNil(t, err, "year %d", year)
		assert.True(t, detailsContain(validationDetails(t, err), "year: invalid year"))
	}
}

func TestCreatePlacementUnauthorized(t *testing.T) {
	store := newStubStore()
	ctx := newAnonContext(t, store)

	_, err := CreatePlacement(ctx, mustJSON(t, validPlacement()))
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, store.placements)
}

func TestCreatePlacementMalformedJSON(t *testing.T) {
	store := newStubStore()
	ctx := newTestContext(t, store)

	_, err := CreatePlacement(ctx, []byte("[1,2,3]"))
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

func TestListPlacementsNewestFirst(t *testing.T) {
	store := newStubStore()
	ctx := newTestContext(t, store)

	names := []string{"First Student", "Second Student", "Third Student"}
	for _, name := range names {
		req := validPlacement()
		req["studentName"] = name
		_, err := CreatePlacement(ctx, mustJSON(t, req))
		require.Nil(t, err)
	}

	placements, err := ListPlacements(ctx)
	require.Nil(t, err)
	require.Len(t, placements, 3)
	assert.Equal(t, "Third Student", placements[0].StudentName)
	assert.Equal(t, "First Student", placements[2].StudentName)
}

func TestDeletePlacement(t *testing.T) {
	store := newStubStore()
	ctx := newTestContext(t, store)

	created, err := CreatePlacement(ctx, mustJSON(t, validPlacement()))
	require.Nil(t, err)

	require.Nil(t, DeletePlacement(ctx, created.ID.String()))
	_, getErr := GetPlacementByID(ctx, created.ID.String())
	assert.ErrorIs(t, getErr, ErrPlacementNotFound)

	// deleting again is a no-op
	require.Nil(t, DeletePlacement(ctx, created.ID.String()))

	err = DeletePlacement(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidPlacementID)

	err = DeletePlacement(newAnonContext(t, store), created.ID.String())
	assert.ErrorIs(t, err, ErrUnauthorized)
}
