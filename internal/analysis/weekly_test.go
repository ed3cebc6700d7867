package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppltrack/internal/domain"
	"ppltrack/internal/testutil"
)

// sessionAt builds a completed session with the given total volume,
// completed at the given instant.
func sessionAt(completed time.Time, volume float64) *domain.Session {
	s := testutil.NewTestSession(testutil.WithDate(completed.Format("2006-01-02")))
	s.Status = domain.SessionCompleted
	s.CompletedAt = &completed
	s.TotalVolume = volume
	return s
}

func TestWeeklyVolume_BucketsByISOWeek(t *testing.T) {
	now := time.Date(2025, 8, 4, 12, 0, 0, 0, time.UTC) // Monday, ISO week 32

	week32 := time.Date(2025, 8, 4, 9, 0, 0, 0, time.UTC)
	week31 := time.Date(2025, 7, 28, 9, 0, 0, 0, time.UTC)
	sessions := []*domain.Session{
		sessionAt(week31, 300),
		sessionAt(week32, 400),
		sessionAt(week32.Add(48*time.Hour), 100),
	}

	out := WeeklyVolume(sessions, now.Add(72*time.Hour))
	require.Len(t, out, 2)
	assert.Equal(t, "W31", out[0].Label)
	assert.Equal(t, 300.0, out[0].Volume)
	assert.Equal(t, "W32", out[1].Label)
	assert.Equal(t, 500.0, out[1].Volume)
}

func TestWeeklyVolume_ExcludesOutsideWindow(t *testing.T) {
	now := time.Date(2025, 8, 4, 12, 0, 0, 0, time.UTC)

	recent := sessionAt(now.AddDate(0, 0, -7), 200)
	stale := sessionAt(now.AddDate(0, 0, -35), 900)
	inProgress := testutil.NewTestSession()

	out := WeeklyVolume([]*domain.Session{recent, stale, inProgress}, now)
	require.Len(t, out, 1)
	assert.Equal(t, 200.0, out[0].Volume)
}

func TestWeeklyVolume_YearBoundary(t *testing.T) {
	// Dec 30 2024 and Jan 1 2025 both fall in ISO week 1 of week-year 2025.
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	dec := sessionAt(time.Date(2024, 12, 30, 9, 0, 0, 0, time.UTC), 100)
	jan := sessionAt(time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC), 150)

	out := WeeklyVolume([]*domain.Session{dec, jan}, now)
	require.Len(t, out, 1)
	assert.Equal(t, 2025, out[0].Year)
	assert.Equal(t, 1, out[0].Week)
	assert.Equal(t, 250.0, out[0].Volume)
}

func TestWeeklyVolume_Empty(t *testing.T) {
	out := WeeklyVolume(nil, time.Now())
	assert.Empty(t, out)
}
