package analysis

import "ppltrack/internal/domain"

// ExerciseStats is aggregate performance for one exercise across the
// sessions of a template. Only sets with both reps and weight recorded
// count; warm-up placeholders with a zero in either field are skipped.
type ExerciseStats struct {
	ExerciseID string
	Name       string
	TotalSets  int
	TotalReps  int
	MaxWeight  float64
	AvgReps    float64
	AvgWeight  float64
}

// TemplateReport is the per-template performance summary shown by the
// stats command.
type TemplateReport struct {
	SessionCount int
	AvgVolume    float64
	Exercises    []ExerciseStats
}

// BuildTemplateReport aggregates the given sessions, which the caller
// has already filtered to a single template. Exercises appear in
// first-seen order; exercises with no qualifying sets are omitted.
func BuildTemplateReport(sessions []*domain.Session) TemplateReport {
	report := TemplateReport{SessionCount: len(sessions)}
	if len(sessions) == 0 {
		return report
	}

	var totalVolume float64
	type acc struct {
		stats       ExerciseStats
		totalWeight float64
	}
	byExercise := make(map[string]*acc)
	var order []string

	for _, s := range sessions {
		totalVolume += s.TotalVolume
		for _, ex := range s.Exercises {
			a, ok := byExercise[ex.ExerciseID]
			if !ok {
				a = &acc{stats: ExerciseStats{ExerciseID: ex.ExerciseID, Name: ex.Name}}
				byExercise[ex.ExerciseID] = a
				order = append(order, ex.ExerciseID)
			}
			for _, set := range ex.Sets {
				if set.Reps <= 0 || set.Weight <= 0 {
					continue
				}
				a.stats.TotalSets++
				a.stats.TotalReps += set.Reps
				a.totalWeight += set.Weight
				if set.Weight > a.stats.MaxWeight {
					a.stats.MaxWeight = set.Weight
				}
			}
		}
	}

	report.AvgVolume = totalVolume / float64(len(sessions))
	for _, id := range order {
		a := byExercise[id]
		if a.stats.TotalSets == 0 {
			continue
		}
		a.stats.AvgReps = float64(a.stats.TotalReps) / float64(a.stats.TotalSets)
		a.stats.AvgWeight = a.totalWeight / float64(a.stats.TotalSets)
		report.Exercises = append(report.Exercises, a.stats)
	}
	return report
}
