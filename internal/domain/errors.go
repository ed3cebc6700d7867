package domain

import "errors"

var (
	// ErrSessionCompleted indicates a mutation was attempted on a session
	// that has already been finished. Completed sessions are locked.
	ErrSessionCompleted = errors.New("session is completed")

	// ErrExerciseNotFound indicates the referenced exercise is not part of
	// the session aggregate.
	ErrExerciseNotFound = errors.New("exercise not in session")

	// ErrSetNotFound indicates the referenced set entry does not exist.
	ErrSetNotFound = errors.New("set entry not found")
)
