package experiment

import "context"

// ParticipationService assigns a participant to one of the alternatives of an experiment.
//
// Implementations must invoke exactly one of onSuccess or onFailure for every call to
// ParticipateIn. They may do so before returning or later from another goroutine.
type ParticipationService interface {
	ParticipateIn(ctx context.Context, e *Experiment, onSuccess OnParticipationSuccess, onFailure OnParticipationFailure)
}

// OnParticipationSuccess receives the alternative chosen for an experiment.
type OnParticipationSuccess interface {
	OnParticipation(e *Experiment, chosen Alternative)
}

// OnParticipationFailure receives the reason no alternative could be chosen.
type OnParticipationFailure interface {
	OnParticipationFailed(e *Experiment, err error)
}

// ParticipationSuccessFunc adapts a function to the OnParticipationSuccess interface.
type ParticipationSuccessFunc func(e *Experiment, chosen Alternative)

// OnParticipation calls f(e, chosen).
func (f ParticipationSuccessFunc) OnParticipation(e *Experiment, chosen Alternative) {
	f(e, chosen)
}

// ParticipationFailureFunc adapts a function to the OnParticipationFailure interface.
type ParticipationFailureFunc func(e *Experiment, err error)

// OnParticipationFailed calls f(e, err).
func (f ParticipationFailureFunc) OnParticipationFailed(e *Experiment, err error) {
	f(e, err)
}
