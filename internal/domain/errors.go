package domain

import "errors"

var (
	ErrIncompleteBands     = errors.New("incomplete band powers")
	ErrBaselineNotFound    = errors.New("baseline not found")
	ErrInvalidSampleBuffer = errors.New("invalid sample buffer")
)
