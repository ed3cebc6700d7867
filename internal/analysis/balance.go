package analysis

import (
	"fmt"
	"math"
	"strings"
	"time"

	"ppltrack/internal/domain"
)

// Muscle groups contributing to each side of the push/pull/legs split.
// Anything else (e.g. Core, Cardio) counts toward neither side and is
// excluded from the percentage base.
var (
	pushGroups = map[string]bool{"Chest": true, "Shoulders": true, "Triceps": true}
	pullGroups = map[string]bool{"Back": true, "Biceps": true}
	legGroups  = map[string]bool{"Legs": true}
)

// BalancePoint is one bar of the muscle balance chart.
type BalancePoint struct {
	Label   string
	Percent int
}

// laggingThreshold is the percentage below which a split is flagged as
// lagging in the dashboard insight.
const laggingThreshold = 25

// MuscleBalance computes the push/pull/legs volume split over the
// trailing 28 days of completed sessions. groupOf resolves an exercise
// id to its current catalog muscle group. Returns an empty slice when
// no volume fell inside the window.
func MuscleBalance(sessions []*domain.Session, groupOf func(exerciseID string) string, now time.Time) []BalancePoint {
	cutoff := now.AddDate(0, 0, -windowDays)

	var push, pull, legs float64
	for _, s := range sessions {
		if s.CompletedAt == nil || !s.CompletedAt.After(cutoff) {
			continue
		}
		for _, ex := range s.Exercises {
			group := groupOf(ex.ExerciseID)
			vol := ExerciseVolume(ex)
			switch {
			case pushGroups[group]:
				push += vol
			case pullGroups[group]:
				pull += vol
			case legGroups[group]:
				legs += vol
			}
		}
	}

	total := push + pull + legs
	if total <= 0 {
		return nil
	}
	return []BalancePoint{
		{Label: "Push", Percent: int(math.Round(push / total * 100))},
		{Label: "Pull", Percent: int(math.Round(pull / total * 100))},
		{Label: "Legs", Percent: int(math.Round(legs / total * 100))},
	}
}

// Insight produces the one-line dashboard insight from the balance
// split. sessionCount is the all-time session count, used to
// distinguish "no data yet" from "no recent data".
func Insight(balance []BalancePoint, sessionCount int) string {
	if len(balance) == 0 {
		if sessionCount > 0 {
			return "You've recorded workouts, but not enough data in the last 4 weeks to analyze your PPL balance. Keep logging to unlock insights!"
		}
		return "Welcome to your dashboard! Complete a few workouts to see your progress and get personalized insights."
	}

	lagging := balance[0]
	for _, p := range balance[1:] {
		if p.Percent < lagging.Percent {
			lagging = p
		}
	}
	if lagging.Percent < laggingThreshold {
		return fmt.Sprintf("Your %s volume is a bit lower than other areas. Consider focusing on your %s days to ensure balanced development.",
			strings.ToLower(lagging.Label), lagging.Label)
	}
	return "Keep up the great work! Your training seems balanced."
}
