package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/testutil"
)

// newTestTx returns a transaction that is rolled back after the test.
// Requires TEST_DATABASE_URL; TestMain applies the migrations.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	return testutil.NewTx(t)
}

// tripFixture returns a domain.Trip with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func tripFixture(owner uuid.UUID) domain.Trip {
	return domain.Trip{
		OwnerID:     owner,
		Name:        "Paris Adventure",
		Destination: "Paris, France",
		StartDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
		Preferences: []string{"sightseeing", "culture", "food"},
	}
}

func TestTripRepo_Create(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	input := tripFixture(uuid.New())
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.OwnerID, got.OwnerID)
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Destination, got.Destination)
	assert.True(t, got.StartDate.Equal(input.StartDate), "StartDate mismatch")
	assert.True(t, got.EndDate.Equal(input.EndDate), "EndDate mismatch")
	assert.Equal(t, input.Preferences, got.Preferences)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
	assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by DB")
}

func TestTripRepo_Create_NilPreferences(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))

	input := tripFixture(uuid.New())
	input.Preferences = nil

	got, err := r.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Preferences)
}

func TestTripRepo_Create_EndBeforeStartRejectedByDB(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))

	input := tripFixture(uuid.New())
	input.EndDate = input.StartDate.AddDate(0, 0, -1)

	_, err := r.Create(context.Background(), input)

	assert.Error(t, err)
}

func TestTripRepo_GetByID(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture(uuid.New()))
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.OwnerID, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Name, got.Name)
}

func TestTripRepo_GetByID_OtherOwner(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture(uuid.New()))
	require.NoError(t, err)

	_, err = r.GetByID(ctx, uuid.New(), created.ID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))

	_, err := r.GetByID(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_List_ScopedToOwner(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()
	owner := uuid.New()

	first := tripFixture(owner)
	first.Name = "First Trip"
	second := tripFixture(owner)
	second.Name = "Second Trip"

	_, err := r.Create(ctx, first)
	require.NoError(t, err)
	_, err = r.Create(ctx, second)
	require.NoError(t, err)
	_, err = r.Create(ctx, tripFixture(uuid.New()))
	require.NoError(t, err)

	trips, err := r.List(ctx, owner)

	require.NoError(t, err)
	require.Len(t, trips, 2)
	var names []string
	for _, tr := range trips {
		names = append(names, tr.Name)
	}
	assert.ElementsMatch(t, []string{"First Trip", "Second Trip"}, names)
}

func TestTripRepo_ListPaged(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()
	owner := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := r.Create(ctx, tripFixture(owner))
		require.NoError(t, err)
	}

	page, total, err := r.ListPaged(ctx, owner, domain.PaginationParams{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, page, 1)
}

func TestTripRepo_Update(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture(uuid.New()))
	require.NoError(t, err)

	created.Name = "Updated Name"
	created.Destination = "Lyon, France"
	created.EndDate = created.StartDate.AddDate(0, 0, 2)
	created.Preferences = []string{"wine"}

	updated, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, "Updated Name", updated.Name)
	assert.Equal(t, "Lyon, France", updated.Destination)
	assert.True(t, updated.EndDate.Equal(created.EndDate))
	assert.Equal(t, []string{"wine"}, updated.Preferences)
}

func TestTripRepo_Update_OtherOwner(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture(uuid.New()))
	require.NoError(t, err)

	created.OwnerID = uuid.New()
	_, err = r.Update(ctx, created)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture(uuid.New()))
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.OwnerID, created.ID))

	_, err = r.GetByID(ctx, created.OwnerID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete_NotFound(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))

	err := r.Delete(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
