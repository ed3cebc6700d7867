package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ppltrack/internal/domain"
	"ppltrack/internal/repository"
)

// maxWaterMl caps daily water intake at the tracker's 8-glass target.
const maxWaterMl = domain.WaterGoalMl

type checklistService struct {
	checklists repository.ChecklistRepo
	now        func() time.Time
}

func NewChecklistService(checklists repository.ChecklistRepo) ChecklistService {
	return &checklistService{checklists: checklists, now: time.Now}
}

// Today returns the checklist for the current calendar day. A stored
// checklist from an earlier day is replaced wholesale with a fresh one;
// nothing carries over between days.
func (s *checklistService) Today(ctx context.Context) (*domain.DailyChecklist, error) {
	today := s.now().Format("2006-01-02")

	c, err := s.checklists.Get(ctx)
	if err == nil && c.Date == today {
		return c, nil
	}
	// Only a missing row starts a fresh day; a real failure must not
	// wipe the stored record.
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	fresh := domain.NewDailyChecklist(today)
	if err := s.checklists.Upsert(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

func (s *checklistService) SetWater(ctx context.Context, ml int) (*domain.DailyChecklist, error) {
	if ml < 0 {
		ml = 0
	}
	if ml > maxWaterMl {
		ml = maxWaterMl
	}
	return s.update(ctx, func(c *domain.DailyChecklist) {
		c.WaterMl = ml
	})
}

// MarkWaterLogged finalizes the day's water intake. A zero intake stays
// unlogged, matching the disabled log action in the tracker UI.
func (s *checklistService) MarkWaterLogged(ctx context.Context) (*domain.DailyChecklist, error) {
	return s.update(ctx, func(c *domain.DailyChecklist) {
		if c.WaterMl > 0 {
			c.WaterLogged = true
		}
	})
}

func (s *checklistService) UnlogWater(ctx context.Context) (*domain.DailyChecklist, error) {
	return s.update(ctx, func(c *domain.DailyChecklist) {
		c.WaterLogged = false
	})
}

func (s *checklistService) ToggleSupplement(ctx context.Context, supplement domain.Supplement) (*domain.DailyChecklist, error) {
	c, err := s.Today(ctx)
	if err != nil {
		return nil, err
	}
	if !c.ToggleSupplement(supplement) {
		return nil, fmt.Errorf("unknown supplement %q", supplement)
	}
	if err := s.checklists.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *checklistService) update(ctx context.Context, fn func(*domain.DailyChecklist)) (*domain.DailyChecklist, error) {
	c, err := s.Today(ctx)
	if err != nil {
		return nil, err
	}
	fn(c)
	if err := s.checklists.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
