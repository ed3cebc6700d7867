package domain

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in-progress"
	SessionCompleted  SessionStatus = "completed"
)

type WeightUnit string

const (
	UnitKg  WeightUnit = "kg"
	UnitLbs WeightUnit = "lbs"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ValidWeightUnits is the canonical set of accepted weight unit strings.
var ValidWeightUnits = map[string]bool{
	"kg": true, "lbs": true,
}

// ValidThemes is the canonical set of accepted theme strings.
var ValidThemes = map[string]bool{
	"light": true, "dark": true,
}

// Supplement identifies one of the daily checklist supplements.
type Supplement string

const (
	SupplementCreatine     Supplement = "creatine"
	SupplementFishOil      Supplement = "fish-oil"
	SupplementMultivitamin Supplement = "multivitamin"
)
