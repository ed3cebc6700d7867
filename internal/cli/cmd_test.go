package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppltrack/internal/catalog"
	"ppltrack/internal/coaching"
	"ppltrack/internal/llm"
	"ppltrack/internal/repository"
	"ppltrack/internal/service"
	"ppltrack/internal/testutil"
)

type stubLLM struct{}

func (stubLLM) Generate(context.Context, llm.GenerateRequest) (*llm.GenerateResponse, error) {
	return &llm.GenerateResponse{Text: "stub tip"}, nil
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	checklistRepo := repository.NewSQLiteChecklistRepo(database)
	preferencesRepo := repository.NewSQLitePreferencesRepo(database)
	uow := testutil.NewTestUoW(database)
	cat := catalog.Default()

	return &App{
		Workouts:      service.NewWorkoutService(sessionRepo, preferencesRepo, cat, uow),
		Reports:       service.NewReportService(sessionRepo, cat),
		Checklist:     service.NewChecklistService(checklistRepo),
		Export:        service.NewExportService(sessionRepo, cat),
		Preferences:   service.NewPreferencesService(preferencesRepo),
		Coach:         coaching.NewCoach(stubLLM{}),
		Catalog:       cat,
		IsInteractive: func() bool { return false },
	}
}

func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true
	return root.Execute()
}

func TestStartCmd_CreatesSessionFromTemplate(t *testing.T) {
	app := newTestApp(t)

	err := execute(t, app, "start", "--template", "day1", "--date", "2025-08-04")
	require.NoError(t, err)

	sessions, err := app.Workouts.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "day1", sessions[0].TemplateID)
	assert.Equal(t, "2025-08-04", sessions[0].Date)
	assert.NotEmpty(t, sessions[0].Exercises)
}

func TestSetUpdateCmd_CoercesMalformedInputToZero(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	s, err := app.Workouts.Start(ctx, "day1", "2025-08-04")
	require.NoError(t, err)

	exID := s.Exercises[0].ExerciseID
	err = execute(t, app, "set", "update", s.ID, exID, "1", "--reps", "abc", "--weight", "-20")
	require.NoError(t, err)

	s, err = app.Workouts.GetByID(ctx, s.ID)
	require.NoError(t, err)
	set := s.Exercises[0].Sets[0]
	assert.Equal(t, 0, set.Reps)
	assert.Equal(t, 0.0, set.Weight)
	assert.Equal(t, 0.0, set.Volume)
}

func TestSetUpdateCmd_RecomputesVolume(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	s, err := app.Workouts.Start(ctx, "day1", "2025-08-04")
	require.NoError(t, err)

	exID := s.Exercises[0].ExerciseID
	require.NoError(t, execute(t, app, "set", "update", s.ID, exID, "1", "--reps", "10", "--weight", "60"))

	s, err = app.Workouts.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 600.0, s.Exercises[0].Sets[0].Volume)
}

func TestSetAddAndRemoveCmds(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	s, err := app.Workouts.Start(ctx, "day1", "2025-08-04")
	require.NoError(t, err)
	exID := s.Exercises[0].ExerciseID
	before := len(s.Exercises[0].Sets)

	require.NoError(t, execute(t, app, "set", "add", s.ID, exID))

	s, err = app.Workouts.GetByID(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, s.Exercises[0].Sets, before+1)

	require.NoError(t, execute(t, app, "set", "remove", s.ID, exID, "1"))

	s, err = app.Workouts.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, s.Exercises[0].Sets, before)
}

func TestSessionFinishCmd_LocksSession(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	s, err := app.Workouts.Start(ctx, "day1", "2025-08-04")
	require.NoError(t, err)

	require.NoError(t, execute(t, app, "session", "finish", s.ID))

	exID := s.Exercises[0].ExerciseID
	err = execute(t, app, "set", "update", s.ID, exID, "1", "--reps", "10")
	assert.Error(t, err)
}

func TestSessionCmds_ResolveIDPrefix(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	s, err := app.Workouts.Start(ctx, "day1", "2025-08-04")
	require.NoError(t, err)

	require.NoError(t, execute(t, app, "session", "finish", s.ID[:8]))

	got, err := app.Workouts.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.CompletedAt)
}

func TestSessionRemoveCmd(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	s, err := app.Workouts.Start(ctx, "day1", "2025-08-04")
	require.NoError(t, err)

	require.NoError(t, execute(t, app, "session", "remove", s.ID))

	sessions, err := app.Workouts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestChecklistWaterCmd_AddsGlass(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, execute(t, app, "checklist", "water"))

	c, err := app.Checklist.Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 500, c.WaterMl)
}

func TestChecklistSupplementCmd_UnknownFails(t *testing.T) {
	app := newTestApp(t)

	err := execute(t, app, "checklist", "supplement", "protein")
	assert.Error(t, err)
}

func TestConfigUnitCmd_RejectsInvalid(t *testing.T) {
	app := newTestApp(t)

	err := execute(t, app, "config", "unit", "stone")
	assert.Error(t, err)

	require.NoError(t, execute(t, app, "config", "unit", "lbs"))
	p, err := app.Preferences.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "lbs", string(p.Unit))
}

func TestExportCmd_WritesFile(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	_, err := app.Workouts.Start(ctx, "day1", "2025-08-04")
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, execute(t, app, "export", "--out", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Session ID,Date,Workout,Exercise,Set,Reps,Weight,Volume,Unit"))
}

func TestStartCmd_RestDayWithoutTemplateFails(t *testing.T) {
	app := newTestApp(t)

	// 2025-08-03 is a Sunday, the rest day.
	err := execute(t, app, "start", "--date", "2025-08-03")
	assert.Error(t, err)
}

func TestDashboardCmd_RendersBalanceBars(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	s, err := app.Workouts.Start(ctx, "day1", "2025-08-04")
	require.NoError(t, err)
	exID := s.Exercises[0].ExerciseID
	require.NoError(t, execute(t, app, "set", "update", s.ID, exID, "1", "--reps", "10", "--weight", "60"))
	require.NoError(t, execute(t, app, "session", "finish", s.ID))

	// Completed push volume means the overview has non-empty weekly and
	// balance series to render.
	ov, err := app.Reports.Overview(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, ov.Balance)

	require.NoError(t, execute(t, app, "dashboard"))
}
