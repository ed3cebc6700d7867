package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppltrack/internal/domain"
	"ppltrack/internal/repository"
	"ppltrack/internal/testutil"
)

func newChecklistService(t *testing.T) *checklistService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewChecklistService(repository.NewSQLiteChecklistRepo(database)).(*checklistService)
}

func TestChecklistService_Today_CreatesFresh(t *testing.T) {
	svc := newChecklistService(t)
	ctx := context.Background()

	c, err := svc.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, svc.now().Format("2006-01-02"), c.Date)
	assert.Zero(t, c.WaterMl)
	assert.False(t, c.CreatineTaken)
}

func TestChecklistService_Today_RollsOverAtMidnight(t *testing.T) {
	svc := newChecklistService(t)
	ctx := context.Background()

	svc.now = func() time.Time { return time.Date(2025, 8, 4, 22, 0, 0, 0, time.UTC) }
	c, err := svc.SetWater(ctx, 2000)
	require.NoError(t, err)
	_, err = svc.ToggleSupplement(ctx, domain.SupplementCreatine)
	require.NoError(t, err)
	assert.Equal(t, "2025-08-04", c.Date)

	// Next day: everything resets, nothing carries over.
	svc.now = func() time.Time { return time.Date(2025, 8, 5, 7, 0, 0, 0, time.UTC) }
	fresh, err := svc.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-08-05", fresh.Date)
	assert.Zero(t, fresh.WaterMl)
	assert.False(t, fresh.CreatineTaken)
}

func TestChecklistService_SetWater_Clamps(t *testing.T) {
	svc := newChecklistService(t)
	ctx := context.Background()

	c, err := svc.SetWater(ctx, -100)
	require.NoError(t, err)
	assert.Zero(t, c.WaterMl)

	c, err = svc.SetWater(ctx, 99999)
	require.NoError(t, err)
	assert.Equal(t, maxWaterMl, c.WaterMl)
}

func TestChecklistService_MarkWaterLogged_RequiresIntake(t *testing.T) {
	svc := newChecklistService(t)
	ctx := context.Background()

	c, err := svc.MarkWaterLogged(ctx)
	require.NoError(t, err)
	assert.False(t, c.WaterLogged, "zero intake stays unlogged")

	_, err = svc.SetWater(ctx, 1500)
	require.NoError(t, err)
	c, err = svc.MarkWaterLogged(ctx)
	require.NoError(t, err)
	assert.True(t, c.WaterLogged)

	c, err = svc.UnlogWater(ctx)
	require.NoError(t, err)
	assert.False(t, c.WaterLogged)
}

func TestChecklistService_ToggleSupplement(t *testing.T) {
	svc := newChecklistService(t)
	ctx := context.Background()

	c, err := svc.ToggleSupplement(ctx, domain.SupplementFishOil)
	require.NoError(t, err)
	assert.True(t, c.FishOilTaken)

	c, err = svc.ToggleSupplement(ctx, domain.SupplementFishOil)
	require.NoError(t, err)
	assert.False(t, c.FishOilTaken)
}

func TestChecklistService_ToggleSupplement_Unknown(t *testing.T) {
	svc := newChecklistService(t)

	_, err := svc.ToggleSupplement(context.Background(), domain.Supplement("zinc"))
	assert.Error(t, err)
}

// failingChecklistRepo simulates a broken store whose reads fail with
// something other than a missing row.
type failingChecklistRepo struct {
	getErr   error
	upserted bool
}

func (r *failingChecklistRepo) Get(context.Context) (*domain.DailyChecklist, error) {
	return nil, r.getErr
}

func (r *failingChecklistRepo) Upsert(context.Context, *domain.DailyChecklist) error {
	r.upserted = true
	return nil
}

func TestChecklistService_Today_PropagatesStoreErrors(t *testing.T) {
	repo := &failingChecklistRepo{getErr: errors.New("disk I/O error")}
	svc := NewChecklistService(repo)

	_, err := svc.Today(context.Background())
	require.Error(t, err)
	assert.False(t, repo.upserted, "a failed read must not overwrite the stored day")
}

func TestChecklistService_Today_MissingRowStartsFresh(t *testing.T) {
	repo := &failingChecklistRepo{getErr: fmt.Errorf("daily checklist: %w", repository.ErrNotFound)}
	svc := NewChecklistService(repo)

	c, err := svc.Today(context.Background())
	require.NoError(t, err)
	assert.Zero(t, c.WaterMl)
	assert.True(t, repo.upserted)
}
