package credentials

import (
	apperrors "github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/errors"
)

// ErrNotFound is returned by Repo.Get when the key holds no value.
var ErrNotFound = apperrors.ErrNotFound

// Repo is the key-value port behind the credential store. Implementations
// persist values across process restarts (or not, for fakes) and make no
// attempt to coordinate concurrent writers; the last write wins.
type Repo interface {
	// Get returns the stored value or ErrNotFound
	Get(key string) (string, error)

	// Set stores value under key, replacing any previous value
	Set(key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	// Clear removes every key in one operation
	Clear() error
}
