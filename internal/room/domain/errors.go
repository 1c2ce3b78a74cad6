package domain

import "errors"

var (
	// ErrEmptyMeetingID indicates a missing meeting ID.
	ErrEmptyMeetingID = errors.New("meeting id is required")
	// ErrEmptyDisplayName indicates a missing participant display name.
	ErrEmptyDisplayName = errors.New("participant display name is required")
	// ErrEmptyMotion indicates a missing vote motion text.
	ErrEmptyMotion = errors.New("vote motion text is required")
	// ErrInvalidQuorumPercent indicates a quorum percentage outside 1-100.
	ErrInvalidQuorumPercent = errors.New("quorum percentage must be between 1 and 100")
)
