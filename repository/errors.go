package repository

import "errors"

var (
	// ErrNotFound means no active record has the requested id. Callers
	// route to a not-found experience, not an error experience.
	ErrNotFound = errors.New("design record not found")

	// ErrRepositoryUnavailable means the backend store was never
	// configured or reachable. Every operation degrades to empty results.
	ErrRepositoryUnavailable = errors.New("design repository unavailable")

	// ErrFetchFailure means a configured backend failed a specific call.
	// The call returns empty results; the caller may retry.
	ErrFetchFailure = errors.New("design fetch failed")
)
