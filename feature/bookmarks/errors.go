package bookmarks

import "errors"

var (
	// ErrUserNotFound is returned when the external user id does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrValidation marks request validation failures.
	ErrValidation = errors.New("validation failed")
	// ErrAlreadyExists is returned when a single add hits an existing bookmark.
	ErrAlreadyExists = errors.New("bookmark already exists")
	// ErrBookmarkNotFound is returned when a single delete matches nothing.
	ErrBookmarkNotFound = errors.New("bookmark not found")
	// ErrStorageDisabled is returned by snapshot operations without object storage.
	ErrStorageDisabled = errors.New("snapshot storage is not configured")
	// ErrSnapshotNotFound is returned when a snapshot key has no object behind it.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// ValidationError carries the client-facing message of a rejected request.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}
