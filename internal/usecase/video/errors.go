package video

import "errors"

var (
	ErrUnknownVariant       = errors.New("video: unknown background type")
	ErrMissingField         = errors.New("video: missing background field")
	ErrInvalidFormat        = errors.New("video: invalid background value")
	ErrInvalidEnumValue     = errors.New("video: invalid enum value")
	ErrMissingRequiredField = errors.New("video: missing required field")
	ErrVideoNotFound        = errors.New("video: video not found")

	// ErrStillProcessing signals that a tracked render has not reached a
	// terminal state yet; the task queue reschedules on it.
	ErrStillProcessing = errors.New("video: still processing")
)
