package domain

import "errors"

var (
	// ErrIncompleteInput indicates at least one required field is missing.
	ErrIncompleteInput = errors.New("incomplete input")

	// ErrInvalidWorkloadTotal indicates staff percentages do not sum to 100.
	ErrInvalidWorkloadTotal = errors.New("workload total must be exactly 100%")

	// ErrInvalidRange indicates the start date falls after the end date.
	ErrInvalidRange = errors.New("start date must be before or equal to end date")

	// ErrIncompleteRange indicates one or both date endpoints are missing.
	ErrIncompleteRange = errors.New("both a start and end date are required")
)
