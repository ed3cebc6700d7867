package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppltrack/internal/domain"
	"ppltrack/internal/testutil"
)

func TestChecklistRepo_GetEmpty(t *testing.T) {
	repo := NewSQLiteChecklistRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChecklistRepo_UpsertAndGet(t *testing.T) {
	repo := NewSQLiteChecklistRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	c := domain.NewDailyChecklist("2025-08-04")
	c.WaterMl = 1500
	c.CreatineTaken = true
	require.NoError(t, repo.Upsert(ctx, c))

	fetched, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-08-04", fetched.Date)
	assert.Equal(t, 1500, fetched.WaterMl)
	assert.True(t, fetched.CreatineTaken)
	assert.False(t, fetched.FishOilTaken)
}

func TestChecklistRepo_UpsertReplaces(t *testing.T) {
	repo := NewSQLiteChecklistRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	old := domain.NewDailyChecklist("2025-08-04")
	old.WaterMl = 2000
	old.FishOilTaken = true
	require.NoError(t, repo.Upsert(ctx, old))

	// A new day replaces the row wholesale.
	require.NoError(t, repo.Upsert(ctx, domain.NewDailyChecklist("2025-08-05")))

	fetched, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-08-05", fetched.Date)
	assert.Zero(t, fetched.WaterMl)
	assert.False(t, fetched.FishOilTaken)
}
