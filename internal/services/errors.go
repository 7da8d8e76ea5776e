package services

import "errors"

var (
	// ErrInvalidMoodValue is returned by RecordMood for values outside [1,5].
	ErrInvalidMoodValue = errors.New("invalid mood value")
	// ErrMalformedHistory is returned by Initialize when the stored history
	// is not a sequence of valid mood records.
	ErrMalformedHistory = errors.New("malformed mood history")
	// ErrMalformedCurrentMood is returned by Initialize when the stored
	// current mood is not an integer in [1,5].
	ErrMalformedCurrentMood = errors.New("malformed current mood")
)
