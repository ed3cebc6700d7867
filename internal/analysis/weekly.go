package analysis

import (
	"sort"
	"time"

	"ppltrack/internal/domain"
)

// windowDays is the trailing window for dashboard aggregates.
const windowDays = 28

// WeekVolume is the summed session volume for one ISO week.
type WeekVolume struct {
	Year   int
	Week   int
	Label  string
	Volume float64
}

// WeeklyVolume buckets completed-session volume by ISO week over the
// trailing 28 days, sorted chronologically. Sessions without a
// completion timestamp are excluded regardless of their calendar date.
func WeeklyVolume(sessions []*domain.Session, now time.Time) []WeekVolume {
	cutoff := now.AddDate(0, 0, -windowDays)

	byWeek := make(map[weekKey]float64)
	for _, s := range sessions {
		if s.CompletedAt == nil || !s.CompletedAt.After(cutoff) {
			continue
		}
		byWeek[weekOf(*s.CompletedAt)] += s.TotalVolume
	}

	keys := make([]weekKey, 0, len(byWeek))
	for k := range byWeek {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].before(keys[j]) })

	out := make([]WeekVolume, 0, len(keys))
	for _, k := range keys {
		out = append(out, WeekVolume{
			Year:   k.Year,
			Week:   k.Week,
			Label:  k.Label(),
			Volume: byWeek[k],
		})
	}
	return out
}
