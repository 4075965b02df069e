package zmanim

import "errors"

var (
	// ErrPrecondition is returned when an operation is called with a date it does not accept
	ErrPrecondition = errors.New("precondition violated")

	// ErrCollaborator is returned when the calendar or the astronomical provider fails
	ErrCollaborator = errors.New("collaborator failure")

	// ErrUnsupportedClassification is returned for days whose service times are not defined yet
	ErrUnsupportedClassification = errors.New("unsupported classification")
)
