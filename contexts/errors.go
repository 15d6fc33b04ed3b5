package contexts

import "errors"

// Sentinel errors for context construction.
var (
	// ErrDuplicateObject indicates the object sequence repeats an element.
	ErrDuplicateObject = errors.New("contexts: duplicate object")

	// ErrDuplicateAttribute indicates the attribute sequence repeats an element.
	ErrDuplicateAttribute = errors.New("contexts: duplicate attribute")

	// ErrUnknownObject indicates an incidence entry references an object
	// outside the declared object sequence.
	ErrUnknownObject = errors.New("contexts: incidence references unknown object")

	// ErrUnknownAttribute indicates an incidence entry references an
	// attribute outside the declared attribute sequence.
	ErrUnknownAttribute = errors.New("contexts: incidence references unknown attribute")

	// ErrNilIncidence indicates FromFunc received a nil generator.
	ErrNilIncidence = errors.New("contexts: incidence function is nil")
)
