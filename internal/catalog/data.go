package catalog

import (
	"time"

	"ppltrack/internal/domain"
)

var defaultExercises = []domain.Exercise{
	{ID: "ex1", Name: "Flat Barbell Bench Press", MuscleGroup: "Chest"},
	{ID: "ex2", Name: "Incline Dumbbell Press", MuscleGroup: "Chest"},
	{ID: "ex3", Name: "Overhead Barbell Press", MuscleGroup: "Shoulders"},
	{ID: "ex4", Name: "Dumbbell Lateral Raises", MuscleGroup: "Shoulders"},
	{ID: "ex5", Name: "Cable Tricep Pushdowns", MuscleGroup: "Triceps"},
	{ID: "ex6", Name: "Overhead Tricep Extensions", MuscleGroup: "Triceps"},
	{ID: "ex7", Name: "Push-Ups", MuscleGroup: "Chest"},
	{ID: "ex8", Name: "Deadlifts", MuscleGroup: "Back"},
	{ID: "ex9", Name: "Pull-Ups", MuscleGroup: "Back"},
	{ID: "ex10", Name: "Lat Pulldown", MuscleGroup: "Back"},
	{ID: "ex11", Name: "Barbell Rows", MuscleGroup: "Back"},
	{ID: "ex12", Name: "Face Pulls", MuscleGroup: "Shoulders"},
	{ID: "ex13", Name: "Barbell Bicep Curls", MuscleGroup: "Biceps"},
	{ID: "ex14", Name: "Incline Dumbbell Curls", MuscleGroup: "Biceps"},
	{ID: "ex15", Name: "Back Squats", MuscleGroup: "Legs"},
	{ID: "ex16", Name: "Romanian Deadlifts", MuscleGroup: "Legs"},
	{ID: "ex17", Name: "Leg Press", MuscleGroup: "Legs"},
	{ID: "ex18", Name: "Walking Lunges", MuscleGroup: "Legs"},
	{ID: "ex19", Name: "Hanging Leg Raises", MuscleGroup: "Core"},
	{ID: "ex20", Name: "Plank with Side Twists", MuscleGroup: "Core"},
	{ID: "ex21", Name: "Incline Barbell Bench Press", MuscleGroup: "Chest"},
	{ID: "ex22", Name: "Flat Dumbbell Press", MuscleGroup: "Chest"},
	{ID: "ex23", Name: "Barbell Pendlay Rows", MuscleGroup: "Back"},
	{ID: "ex24", Name: "Dumbbell Chest Flys", MuscleGroup: "Chest"},
	{ID: "ex25", Name: "Cable Lat Pullover", MuscleGroup: "Back"},
	{ID: "ex26", Name: "Bar Dips", MuscleGroup: "Triceps"},
	{ID: "ex27", Name: "Skull Crushers (EZ Bar)", MuscleGroup: "Triceps"},
	{ID: "ex28", Name: "Preacher Curls", MuscleGroup: "Biceps"},
	{ID: "ex29", Name: "Hammer Curls", MuscleGroup: "Biceps"},
	{ID: "ex30", Name: "Front Squats", MuscleGroup: "Legs"},
	{ID: "ex31", Name: "Bulgarian Split Squats", MuscleGroup: "Legs"},
	{ID: "ex32", Name: "Leg Extension (Machine)", MuscleGroup: "Legs"},
	{ID: "ex33", Name: "Hamstring Curls (Machine)", MuscleGroup: "Legs"},
	{ID: "ex34", Name: "Standing Calf Raises", MuscleGroup: "Legs"},
	{ID: "ex35", Name: "Seated Calf Raises", MuscleGroup: "Legs"},
	{ID: "ex36", Name: "Cable Woodchoppers", MuscleGroup: "Core"},
	{ID: "ex37", Name: "Weighted Decline Sit-Ups", MuscleGroup: "Core"},
}

var defaultTemplates = []domain.WorkoutTemplate{
	{
		ID:        "day1",
		DayOfWeek: time.Monday,
		Title:     "Push (Chest, Shoulders, Triceps)",
		Exercises: []domain.TemplateExercise{
			{ExerciseID: "ex1", DefaultSets: 3, DefaultReps: "8-10"},
			{ExerciseID: "ex2", DefaultSets: 2, DefaultReps: "8-10"},
			{ExerciseID: "ex3", DefaultSets: 3, DefaultReps: "8-10"},
			{ExerciseID: "ex4", DefaultSets: 4, DefaultReps: "12-15"},
			{ExerciseID: "ex5", DefaultSets: 2, DefaultReps: "10-12"},
			{ExerciseID: "ex6", DefaultSets: 2, DefaultReps: "10-12"},
			{ExerciseID: "ex7", DefaultSets: 2, DefaultReps: "Failure"},
		},
	},
	{
		ID:        "day2",
		DayOfWeek: time.Tuesday,
		Title:     "Pull (Back, Biceps, Rear Delts)",
		Exercises: []domain.TemplateExercise{
			{ExerciseID: "ex8", DefaultSets: 4, DefaultReps: "6-8"},
			{ExerciseID: "ex9", DefaultSets: 3, DefaultReps: "8-10"},
			{ExerciseID: "ex11", DefaultSets: 3, DefaultReps: "8-10"},
			{ExerciseID: "ex12", DefaultSets: 2, DefaultReps: "12-15"},
			{ExerciseID: "ex13", DefaultSets: 2, DefaultReps: "10-12"},
			{ExerciseID: "ex14", DefaultSets: 3, DefaultReps: "8-10"},
		},
	},
	{
		ID:        "day3",
		DayOfWeek: time.Wednesday,
		Title:     "Legs + Core",
		Exercises: []domain.TemplateExercise{
			{ExerciseID: "ex15", DefaultSets: 4, DefaultReps: "8-10"},
			{ExerciseID: "ex16", DefaultSets: 3, DefaultReps: "8-10"},
			{ExerciseID: "ex17", DefaultSets: 2, DefaultReps: "12-15"},
			{ExerciseID: "ex18", DefaultSets: 3, DefaultReps: "12-15"},
			{ExerciseID: "ex19", DefaultSets: 4, DefaultReps: "15-20"},
			{ExerciseID: "ex20", DefaultSets: 3, DefaultReps: "20"},
		},
	},
	{
		ID:        "day4",
		DayOfWeek: time.Thursday,
		Title:     "Chest + Back",
		Exercises: []domain.TemplateExercise{
			{ExerciseID: "ex21", DefaultSets: 3, DefaultReps: "8-10"},
			{ExerciseID: "ex22", DefaultSets: 2, DefaultReps: "8-10"},
			{ExerciseID: "ex9", DefaultSets: 4, DefaultReps: "8-10"},
			{ExerciseID: "ex23", DefaultSets: 3, DefaultReps: "8-10"},
			{ExerciseID: "ex24", DefaultSets: 3, DefaultReps: "12-15"},
			{ExerciseID: "ex25", DefaultSets: 2, DefaultReps: "10-12"},
			{ExerciseID: "ex26", DefaultSets: 2, DefaultReps: "Failure"},
		},
	},
	{
		ID:        "day5",
		DayOfWeek: time.Friday,
		Title:     "Full Arms + Shoulders",
		Exercises: []domain.TemplateExercise{
			{ExerciseID: "ex5", DefaultSets: 3, DefaultReps: "8-10"},
			{ExerciseID: "ex27", DefaultSets: 3, DefaultReps: "10-12"},
			{ExerciseID: "ex28", DefaultSets: 2, DefaultReps: "10-12"},
			{ExerciseID: "ex14", DefaultSets: 2, DefaultReps: "8-10"},
			{ExerciseID: "ex29", DefaultSets: 2, DefaultReps: "10-12"},
			{ExerciseID: "ex4", DefaultSets: 4, DefaultReps: "12-15"},
			{ExerciseID: "ex12", DefaultSets: 3, DefaultReps: "12-15"},
		},
	},
	{
		ID:        "day6",
		DayOfWeek: time.Saturday,
		Title:     "Legs + Core",
		Exercises: []domain.TemplateExercise{
			{ExerciseID: "ex30", DefaultSets: 3, DefaultReps: "8-10"},
			{ExerciseID: "ex31", DefaultSets: 3, DefaultReps: "12-15"},
			{ExerciseID: "ex32", DefaultSets: 2, DefaultReps: "12-15"},
			{ExerciseID: "ex33", DefaultSets: 3, DefaultReps: "10-12"},
			{ExerciseID: "ex34", DefaultSets: 4, DefaultReps: "15-20"},
			{ExerciseID: "ex35", DefaultSets: 4, DefaultReps: "15-20"},
			{ExerciseID: "ex36", DefaultSets: 3, DefaultReps: "15"},
			{ExerciseID: "ex37", DefaultSets: 3, DefaultReps: "15-20"},
		},
	},
}
