package experiment

import "context"

// Experiment is a validated A/B test. It cannot be modified once built and is safe for
// concurrent use.
type Experiment struct {
	name            string
	alternatives    AlternativeSet
	forcedChoice    *Alternative
	trafficFraction *float64
	svc             ParticipationService
}

// Name returns the experiment name.
func (e *Experiment) Name() string {
	return e.name
}

// Alternatives returns a copy of the experiment alternatives.
func (e *Experiment) Alternatives() AlternativeSet {
	return e.alternatives.Clone()
}

// ForcedChoice returns the forced alternative and whether one was set.
func (e *Experiment) ForcedChoice() (Alternative, bool) {
	if e.forcedChoice == nil {
		return Alternative{}, false
	}

	return *e.forcedChoice, true
}

// HasForcedChoice reports whether the experiment requests a fixed alternative.
func (e *Experiment) HasForcedChoice() bool {
	return e.forcedChoice != nil
}

// TrafficFraction returns the traffic fraction and whether one was set.
func (e *Experiment) TrafficFraction() (float64, bool) {
	if e.trafficFraction == nil {
		return 0, false
	}

	return *e.trafficFraction, true
}

// ParticipationService returns the service the experiment participates through.
func (e *Experiment) ParticipationService() ParticipationService {
	return e.svc
}

// String returns the experiment name.
//
// Implements the fmt.Stringer interface.
func (e *Experiment) String() string {
	return e.name
}

// Participate asks the participation service to choose an alternative. The outcome is reported
// through onSuccess or onFailure by the service; Participate never calls them itself.
func (e *Experiment) Participate(ctx context.Context, onSuccess OnParticipationSuccess, onFailure OnParticipationFailure) {
	e.svc.ParticipateIn(ctx, e, onSuccess, onFailure)
}
