package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppltrack/internal/catalog"
	"ppltrack/internal/domain"
	"ppltrack/internal/repository"
	"ppltrack/internal/testutil"
)

func reportFixture(t *testing.T) (ReportService, repository.SessionRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSessionRepo(database)
	return NewReportService(repo, catalog.Default()), repo
}

func completedSession(completed time.Time, opts ...testutil.SessionOption) *domain.Session {
	opts = append(opts, testutil.WithCompletedAt(completed))
	return testutil.NewTestSession(opts...)
}

func TestReportService_Overview_Empty(t *testing.T) {
	svc, _ := reportFixture(t)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Zero(t, overview.SessionCount)
	assert.Empty(t, overview.Weekly)
	assert.Empty(t, overview.Balance)
	assert.Contains(t, overview.Insight, "Welcome to your dashboard!")
}

func TestReportService_Overview_WithRecentSessions(t *testing.T) {
	svc, repo := reportFixture(t)
	ctx := context.Background()

	done := time.Now().UTC().AddDate(0, 0, -3)
	// ex1 is Chest (push), ex8 is Back (pull), ex17 is Legs.
	sess := completedSession(done,
		testutil.WithExercise("ex1", "Flat Barbell Bench Press", "Chest",
			testutil.Set(10, 40)),
		testutil.WithExercise("ex8", "Deadlifts", "Back",
			testutil.Set(10, 40)),
		testutil.WithExercise("ex17", "Leg Press", "Legs",
			testutil.Set(10, 40)),
	)
	require.NoError(t, repo.Create(ctx, sess))

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, overview.SessionCount)
	require.Len(t, overview.Weekly, 1)
	assert.Equal(t, 1200.0, overview.Weekly[0].Volume)

	require.Len(t, overview.Balance, 3)
	total := 0
	for _, p := range overview.Balance {
		total += p.Percent
	}
	assert.InDelta(t, 100, total, 1)
	assert.Contains(t, overview.Insight, "balanced")
}

func TestReportService_Overview_StaleSessionsOnly(t *testing.T) {
	svc, repo := reportFixture(t)
	ctx := context.Background()

	stale := completedSession(time.Now().UTC().AddDate(0, 0, -60),
		testutil.WithExercise("ex1", "Flat Barbell Bench Press", "Chest",
			testutil.Set(10, 40)),
	)
	require.NoError(t, repo.Create(ctx, stale))

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, overview.SessionCount)
	assert.Empty(t, overview.Balance)
	assert.Contains(t, overview.Insight, "not enough data in the last 4 weeks")
}

func TestReportService_TemplateReport(t *testing.T) {
	svc, repo := reportFixture(t)
	ctx := context.Background()

	s1 := testutil.NewTestSession(
		testutil.WithTemplateID("day1"),
		testutil.WithExercise("ex1", "Flat Barbell Bench Press", "Chest",
			testutil.Set(10, 60), testutil.Set(8, 70)),
	)
	s2 := testutil.NewTestSession(
		testutil.WithTemplateID("day2"),
		testutil.WithExercise("ex8", "Deadlifts", "Back",
			testutil.Set(5, 100)),
	)
	require.NoError(t, repo.Create(ctx, s1))
	require.NoError(t, repo.Create(ctx, s2))

	report, err := svc.TemplateReport(ctx, "day1")
	require.NoError(t, err)
	assert.Equal(t, 1, report.SessionCount)
	require.Len(t, report.Exercises, 1)
	assert.Equal(t, "Flat Barbell Bench Press", report.Exercises[0].Name)
	assert.Equal(t, 2, report.Exercises[0].TotalSets)
}

func TestReportService_TemplateReport_UnknownTemplate(t *testing.T) {
	svc, _ := reportFixture(t)

	_, err := svc.TemplateReport(context.Background(), "day99")
	assert.Error(t, err)
}
