package experiment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/seatgeek/sixpack-go/experiment"
	"github.com/seatgeek/sixpack-go/internal/testing/mocks"
)

func newTestExperiment(t *testing.T, svc experiment.ParticipationService) *experiment.Experiment {
	t.Helper()

	exp, err := experiment.NewBuilder(svc).
		WithName("test-experiment").
		WithAlternative(experiment.NewAlternative("test")).
		Build()
	require.NoError(t, err)

	return exp
}

func Test_Experiment_ForcedChoice(t *testing.T) {
	t.Parallel()

	test := experiment.NewAlternative("test")

	exp, err := experiment.NewBuilder(mocks.NewMockParticipationService(t)).
		WithName("test-experiment").
		WithAlternative(test).
		WithForcedChoice(test).
		Build()
	require.NoError(t, err)

	assert.True(t, exp.HasForcedChoice())
	got, ok := exp.ForcedChoice()
	assert.True(t, ok)
	assert.Equal(t, test, got)
}

func Test_Experiment_NoForcedChoice(t *testing.T) {
	t.Parallel()

	exp := newTestExperiment(t, mocks.NewMockParticipationService(t))

	assert.False(t, exp.HasForcedChoice())
	got, ok := exp.ForcedChoice()
	assert.False(t, ok)
	assert.Equal(t, experiment.Alternative{}, got)
}

func Test_Experiment_ForcedChoiceOutsideAlternatives(t *testing.T) {
	t.Parallel()

	// Membership of the forced choice is left to the participation service.
	exp, err := experiment.NewBuilder(mocks.NewMockParticipationService(t)).
		WithName("test-experiment").
		WithAlternative(experiment.NewAlternative("red")).
		WithForcedChoice(experiment.NewAlternative("blue")).
		Build()
	require.NoError(t, err)

	got, ok := exp.ForcedChoice()
	require.True(t, ok)
	assert.Equal(t, "blue", got.Name)
	assert.False(t, exp.Alternatives().Contains(got))
}

func Test_Experiment_NoTrafficFraction(t *testing.T) {
	t.Parallel()

	exp := newTestExperiment(t, mocks.NewMockParticipationService(t))

	got, ok := exp.TrafficFraction()
	assert.False(t, ok)
	assert.Zero(t, got)
}

func Test_Experiment_String(t *testing.T) {
	t.Parallel()

	exp := newTestExperiment(t, mocks.NewMockParticipationService(t))

	assert.Equal(t, "test-experiment", exp.String())
	assert.Equal(t, exp.Name(), exp.String())
}

func Test_Experiment_Participate(t *testing.T) {
	t.Parallel()

	var (
		ctx       = context.Background()
		svc       = mocks.NewMockParticipationService(t)
		onSuccess = mocks.NewMockOnParticipationSuccess(t)
		onFailure = mocks.NewMockOnParticipationFailure(t)
	)

	exp := newTestExperiment(t, svc)

	svc.EXPECT().ParticipateIn(
		ctx,
		mock.MatchedBy(func(e *experiment.Experiment) bool { return e == exp }),
		mock.MatchedBy(func(cb experiment.OnParticipationSuccess) bool { return cb == onSuccess }),
		mock.MatchedBy(func(cb experiment.OnParticipationFailure) bool { return cb == onFailure }),
	).Return().Once()

	exp.Participate(ctx, onSuccess, onFailure)

	svc.AssertNumberOfCalls(t, "ParticipateIn", 1)
	onSuccess.AssertNotCalled(t, "OnParticipation", mock.Anything, mock.Anything)
	onFailure.AssertNotCalled(t, "OnParticipationFailed", mock.Anything, mock.Anything)
}

func Test_Experiment_ParticipateRepeatedly(t *testing.T) {
	t.Parallel()

	var (
		ctx       = context.Background()
		svc       = mocks.NewMockParticipationService(t)
		onSuccess = mocks.NewMockOnParticipationSuccess(t)
		onFailure = mocks.NewMockOnParticipationFailure(t)
	)

	exp := newTestExperiment(t, svc)

	svc.EXPECT().ParticipateIn(ctx, exp, onSuccess, onFailure).Return().Times(3)

	for range 3 {
		exp.Participate(ctx, onSuccess, onFailure)
	}
}

func Test_Experiment_ParticipateReportsThroughCallbacks(t *testing.T) {
	t.Parallel()

	var (
		ctx    = context.Background()
		svc    = mocks.NewMockParticipationService(t)
		failed = errors.New("server unavailable")
	)

	exp := newTestExperiment(t, svc)

	svc.EXPECT().ParticipateIn(ctx, exp, mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *experiment.Experiment, onSuccess experiment.OnParticipationSuccess, _ experiment.OnParticipationFailure) {
			onSuccess.OnParticipation(e, experiment.NewAlternative("test"))
		}).Return().Once()
	svc.EXPECT().ParticipateIn(ctx, exp, mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *experiment.Experiment, _ experiment.OnParticipationSuccess, onFailure experiment.OnParticipationFailure) {
			onFailure.OnParticipationFailed(e, failed)
		}).Return().Once()

	var (
		chosen []experiment.Alternative
		errs   []error
	)
	onSuccess := experiment.ParticipationSuccessFunc(func(e *experiment.Experiment, alt experiment.Alternative) {
		assert.Same(t, exp, e)
		chosen = append(chosen, alt)
	})
	onFailure := experiment.ParticipationFailureFunc(func(e *experiment.Experiment, err error) {
		assert.Same(t, exp, e)
		errs = append(errs, err)
	})

	exp.Participate(ctx, onSuccess, onFailure)
	exp.Participate(ctx, onSuccess, onFailure)

	assert.Equal(t, []experiment.Alternative{experiment.NewAlternative("test")}, chosen)
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], failed)
}
