package nextclosure

import "errors"

// Sentinel errors for enumerator construction and the closure step.
var (
	// ErrNilGround is returned when a nil ground sequence is supplied.
	ErrNilGround = errors.New("nextclosure: ground sequence is nil")

	// ErrNilOperator is returned when a nil closure operator is supplied.
	ErrNilOperator = errors.New("nextclosure: closure operator is nil")

	// ErrUnknownPivot is returned by Oplus when the pivot element does not
	// belong to the ground sequence.
	ErrUnknownPivot = errors.New("nextclosure: pivot not in ground sequence")
)
