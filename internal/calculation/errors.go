package calculation

import "errors"

var (
	// ErrUnknownParameter is returned when a sensitivity sweep names an input that cannot be varied.
	ErrUnknownParameter = errors.New("unknown sensitivity parameter")
	// ErrScenarioNotFound is returned when a named scenario is absent from the configuration.
	ErrScenarioNotFound = errors.New("scenario not found")
)
