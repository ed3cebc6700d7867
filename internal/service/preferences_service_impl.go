package service

import (
	"context"
	"fmt"

	"ppltrack/internal/domain"
	"ppltrack/internal/repository"
)

type preferencesService struct {
	preferences repository.PreferencesRepo
}

func NewPreferencesService(preferences repository.PreferencesRepo) PreferencesService {
	return &preferencesService{preferences: preferences}
}

func (s *preferencesService) Get(ctx context.Context) (*domain.Preferences, error) {
	return s.preferences.Get(ctx)
}

func (s *preferencesService) SetUnit(ctx context.Context, unit string) (*domain.Preferences, error) {
	if !domain.ValidWeightUnits[unit] {
		return nil, fmt.Errorf("invalid unit %q (want kg or lbs)", unit)
	}
	return s.update(ctx, func(p *domain.Preferences) {
		p.Unit = domain.WeightUnit(unit)
	})
}

func (s *preferencesService) SetTheme(ctx context.Context, theme string) (*domain.Preferences, error) {
	if !domain.ValidThemes[theme] {
		return nil, fmt.Errorf("invalid theme %q (want light or dark)", theme)
	}
	return s.update(ctx, func(p *domain.Preferences) {
		p.Theme = domain.Theme(theme)
	})
}

func (s *preferencesService) update(ctx context.Context, fn func(*domain.Preferences)) (*domain.Preferences, error) {
	p, err := s.preferences.Get(ctx)
	if err != nil {
		return nil, err
	}
	fn(p)
	if err := s.preferences.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
