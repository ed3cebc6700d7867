package service

import (
	"context"
	"fmt"
	"time"

	"ppltrack/internal/analysis"
	"ppltrack/internal/catalog"
	"ppltrack/internal/repository"
)

type reportService struct {
	sessions repository.SessionRepo
	catalog  *catalog.Catalog
	now      func() time.Time
}

func NewReportService(sessions repository.SessionRepo, cat *catalog.Catalog) ReportService {
	return &reportService{sessions: sessions, catalog: cat, now: time.Now}
}

func (s *reportService) Overview(ctx context.Context) (*Overview, error) {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	balance := analysis.MuscleBalance(sessions, s.catalog.MuscleGroup, now)
	return &Overview{
		Weekly:       analysis.WeeklyVolume(sessions, now),
		Balance:      balance,
		Insight:      analysis.Insight(balance, len(sessions)),
		SessionCount: len(sessions),
	}, nil
}

func (s *reportService) TemplateReport(ctx context.Context, templateID string) (*analysis.TemplateReport, error) {
	if _, ok := s.catalog.TemplateByID(templateID); !ok {
		return nil, fmt.Errorf("unknown template %q", templateID)
	}
	sessions, err := s.sessions.ListByTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	report := analysis.BuildTemplateReport(sessions)
	return &report, nil
}
