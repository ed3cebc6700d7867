package repository

import (
	"context"

	"ppltrack/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	List(ctx context.Context) ([]*domain.Session, error)
	ListByTemplate(ctx context.Context, templateID string) ([]*domain.Session, error)
	ListByDate(ctx context.Context, date string) ([]*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type ChecklistRepo interface {
	Get(ctx context.Context) (*domain.DailyChecklist, error)
	Upsert(ctx context.Context, c *domain.DailyChecklist) error
}

type PreferencesRepo interface {
	Get(ctx context.Context) (*domain.Preferences, error)
	Upsert(ctx context.Context, p *domain.Preferences) error
}
