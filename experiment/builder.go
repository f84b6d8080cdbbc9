package experiment

import (
	"fmt"
	"math"

	"github.com/seatgeek/sixpack-go/internal/pointer"
)

// Builder accumulates the fields of an Experiment and validates them.
//
// A Builder is meant to be used by a single goroutine and discarded once Build has been called.
type Builder struct {
	svc             ParticipationService
	name            string
	alternatives    AlternativeSet
	forcedChoice    *Alternative
	trafficFraction *float64
}

// NewBuilder returns a Builder for experiments that participate through svc.
func NewBuilder(svc ParticipationService) *Builder {
	return &Builder{svc: svc}
}

// WithName sets the experiment name. An empty name is only rejected by Build.
func (b *Builder) WithName(name string) *Builder {
	b.name = name

	return b
}

// WithAlternative adds an alternative to the experiment.
func (b *Builder) WithAlternative(alt Alternative) *Builder {
	b.alternatives.Add(alt)

	return b
}

// WithAlternatives adds any number of alternatives to the experiment. Calling it with no
// alternatives leaves the builder unchanged.
//
// To add the contents of an AlternativeSet, pass set.List()...
func (b *Builder) WithAlternatives(alts ...Alternative) *Builder {
	if len(alts) == 0 {
		return b
	}
	b.alternatives.Add(alts...)

	return b
}

// WithForcedChoice makes the experiment request alt instead of a randomized assignment.
//
// alt is not required to be one of the experiment alternatives.
func (b *Builder) WithForcedChoice(alt Alternative) *Builder {
	b.forcedChoice = pointer.To(alt)

	return b
}

// WithTrafficFraction sets the fraction of traffic that takes part in the experiment. Unlike the
// other setters it validates immediately and returns ErrBadTrafficFraction when fraction is
// not within [0, 1].
func (b *Builder) WithTrafficFraction(fraction float64) (*Builder, error) {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return b, fmt.Errorf("%w: %v", ErrBadTrafficFraction, fraction)
	}
	b.trafficFraction = pointer.To(fraction)

	return b, nil
}

// Build validates the accumulated fields and returns the Experiment.
//
// The name is checked before the alternatives, so a builder missing both reports
// ErrNoExperimentName.
func (b *Builder) Build() (*Experiment, error) {
	if b.name == "" {
		return nil, ErrNoExperimentName
	}

	if b.alternatives.IsEmpty() {
		return nil, ErrNoAlternatives
	}

	e := &Experiment{
		name:         b.name,
		alternatives: b.alternatives.Clone(),
		svc:          b.svc,
	}
	if b.forcedChoice != nil {
		e.forcedChoice = pointer.To(*b.forcedChoice)
	}
	if b.trafficFraction != nil {
		e.trafficFraction = pointer.To(*b.trafficFraction)
	}

	return e, nil
}
