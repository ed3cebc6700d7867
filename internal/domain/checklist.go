package domain

// Water is tracked in 500ml glasses against a fixed 4000ml daily goal.
const (
	GlassMl     = 500
	WaterGoalMl = 4000
)

// DailyChecklist tracks water intake and supplements for a single calendar
// date. When the stored date no longer matches today the whole record is
// replaced with a fresh one.
type DailyChecklist struct {
	Date              string // YYYY-MM-DD, local calendar day
	WaterMl           int
	CreatineTaken     bool
	FishOilTaken      bool
	MultivitaminTaken bool
	WaterLogged       bool
}

// NewDailyChecklist returns a zeroed checklist for the given date.
func NewDailyChecklist(date string) *DailyChecklist {
	return &DailyChecklist{Date: date}
}

// ToggleSupplement flips the named supplement. Returns false for an
// unknown supplement key.
func (c *DailyChecklist) ToggleSupplement(s Supplement) bool {
	switch s {
	case SupplementCreatine:
		c.CreatineTaken = !c.CreatineTaken
	case SupplementFishOil:
		c.FishOilTaken = !c.FishOilTaken
	case SupplementMultivitamin:
		c.MultivitaminTaken = !c.MultivitaminTaken
	default:
		return false
	}
	return true
}
