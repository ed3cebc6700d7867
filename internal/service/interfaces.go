package service

import (
	"context"
	"io"

	"ppltrack/internal/analysis"
	"ppltrack/internal/domain"
)

type WorkoutService interface {
	Start(ctx context.Context, templateID, date string) (*domain.Session, error)
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
	ListByDate(ctx context.Context, date string) ([]*domain.Session, error)
	AddSet(ctx context.Context, sessionID, exerciseID string) (*domain.Session, error)
	UpdateSet(ctx context.Context, sessionID, exerciseID, setID string, patch domain.SetPatch) (*domain.Session, error)
	RemoveSet(ctx context.Context, sessionID, exerciseID, setID string) (*domain.Session, error)
	SaveProgress(ctx context.Context, s *domain.Session) error
	Finish(ctx context.Context, sessionID string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// Overview is the dashboard aggregate: weekly volume trend, muscle
// balance split and the derived insight line.
type Overview struct {
	Weekly       []analysis.WeekVolume
	Balance      []analysis.BalancePoint
	Insight      string
	SessionCount int
}

type ReportService interface {
	Overview(ctx context.Context) (*Overview, error)
	TemplateReport(ctx context.Context, templateID string) (*analysis.TemplateReport, error)
}

type ChecklistService interface {
	Today(ctx context.Context) (*domain.DailyChecklist, error)
	SetWater(ctx context.Context, ml int) (*domain.DailyChecklist, error)
	MarkWaterLogged(ctx context.Context) (*domain.DailyChecklist, error)
	UnlogWater(ctx context.Context) (*domain.DailyChecklist, error)
	ToggleSupplement(ctx context.Context, supplement domain.Supplement) (*domain.DailyChecklist, error)
}

type ExportService interface {
	WriteCSV(ctx context.Context, w io.Writer) (int, error)
}

type PreferencesService interface {
	Get(ctx context.Context) (*domain.Preferences, error)
	SetUnit(ctx context.Context, unit string) (*domain.Preferences, error)
	SetTheme(ctx context.Context, theme string) (*domain.Preferences, error)
}
