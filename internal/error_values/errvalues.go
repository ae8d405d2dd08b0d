package errorvalues

import "errors"

var (
	ErrProfileNotFound = errors.New("user profile doesn't exist")
	ErrInvalidProfile  = errors.New("profile has missing or out-of-range fields")
	ErrNoCandidates    = errors.New("no candidates available for selection")
	ErrInvalidDate   = errors.New("invalid date format")
	ErrEmptySchedule = errors.New("schedule has no assignments")
	ErrInvalidToken  = errors.New("invalid identity token")
)
