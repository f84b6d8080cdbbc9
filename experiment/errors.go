package experiment

import "errors"

var (
	// ErrNoExperimentName is returned by Build when the experiment name is unset or empty.
	ErrNoExperimentName = errors.New("experiment name is required")

	// ErrNoAlternatives is returned by Build when no alternatives were supplied.
	ErrNoAlternatives = errors.New("experiment requires at least one alternative")

	// ErrBadTrafficFraction is returned by Builder.WithTrafficFraction when the fraction is
	// outside of [0, 1].
	ErrBadTrafficFraction = errors.New("traffic fraction must be between 0 and 1")

	// ErrDuplicateExperiment is returned when a definition file declares the same experiment
	// name more than once.
	ErrDuplicateExperiment = errors.New("duplicate experiment name")
)
