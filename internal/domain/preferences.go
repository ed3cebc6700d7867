package domain

// Preferences is the single-row user settings record.
type Preferences struct {
	ID    string // always "default"
	Unit  WeightUnit
	Theme Theme
}

// DefaultPreferences mirrors the seeded preferences row.
func DefaultPreferences() *Preferences {
	return &Preferences{ID: "default", Unit: UnitKg, Theme: ThemeDark}
}
