package experiment_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/seatgeek/sixpack-go/experiment"
)

func alternativeGen() *rapid.Generator[experiment.Alternative] {
	return rapid.Custom(func(t *rapid.T) experiment.Alternative {
		return experiment.NewAlternative(rapid.StringMatching(`[a-z][a-z0-9-]{0,11}`).Draw(t, "alternative"))
	})
}

func TestProperty_Builder_ValidInputsBuild(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		name := rapid.StringN(1, 32, -1).Draw(rt, "name")
		alts := rapid.SliceOfN(alternativeGen(), 1, 10).Draw(rt, "alternatives")

		exp, err := experiment.NewBuilder(nil).
			WithName(name).
			WithAlternatives(alts...).
			Build()
		require.NoError(rt, err)

		require.Equal(rt, name, exp.Name())
		require.Equal(rt, name, exp.String())
		require.True(rt, experiment.NewAlternativeSet(alts...).Equal(exp.Alternatives()))
	})
}

func TestProperty_Builder_AlternativeOrderDoesNotMatter(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		alts := rapid.SliceOfN(alternativeGen(), 1, 10).Draw(rt, "alternatives")
		shuffled := rapid.Permutation(alts).Draw(rt, "shuffled")

		one := experiment.NewBuilder(nil).WithName("exp")
		for _, a := range alts {
			one.WithAlternative(a)
		}
		expA, err := one.Build()
		require.NoError(rt, err)

		expB, err := experiment.NewBuilder(nil).
			WithName("exp").
			WithAlternatives(shuffled...).
			Build()
		require.NoError(rt, err)

		require.True(rt, expA.Alternatives().Equal(expB.Alternatives()))
	})
}

func TestProperty_Builder_NameErrorWins(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		alts := rapid.SliceOfN(alternativeGen(), 0, 5).Draw(rt, "alternatives")

		_, err := experiment.NewBuilder(nil).
			WithAlternatives(alts...).
			Build()
		require.ErrorIs(rt, err, experiment.ErrNoExperimentName)
	})
}

func TestProperty_Builder_TrafficFractionRange(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		fraction := rapid.Float64().Draw(rt, "fraction")

		_, err := experiment.NewBuilder(nil).WithTrafficFraction(fraction)
		if fraction >= 0 && fraction <= 1 {
			require.NoError(rt, err)
		} else {
			require.ErrorIs(rt, err, experiment.ErrBadTrafficFraction)
		}
	})
}
