package exam

import "errors"

var (
	// ErrStoreUnavailable wraps any infrastructure failure of a store
	// adapter. Fatal for the request; never retried here.
	ErrStoreUnavailable = errors.New("store unavailable")

	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateRoll = errors.New("roll number already registered")

	ErrExamNotFound     = errors.New("exam not found")
	ErrAlreadyCompleted = errors.New("exam already completed")
	ErrAlreadyGraded    = errors.New("exam already submitted")
	ErrNoActiveExam     = errors.New("no exam in progress")
)
