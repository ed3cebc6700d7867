package analysis

import (
	"fmt"
	"time"
)

// weekKey identifies an ISO 8601 week. The year is the ISO week-year,
// which can differ from the calendar year around January 1st.
type weekKey struct {
	Year int
	Week int
}

func weekOf(t time.Time) weekKey {
	year, week := t.UTC().ISOWeek()
	return weekKey{Year: year, Week: week}
}

func (k weekKey) before(other weekKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Week < other.Week
}

// Label renders the key as a short chart label, e.g. "W32".
func (k weekKey) Label() string {
	return fmt.Sprintf("W%d", k.Week)
}
