/*
Package experiment describes A/B test experiments on the client side.

An Experiment is a named set of mutually exclusive alternatives with an optional traffic
fraction and an optional forced choice. Experiments are immutable and can only be created
through a Builder, which validates them:

	exp, err := experiment.NewBuilder(client).
		WithName("button-color").
		WithAlternatives(experiment.NewAlternative("red"), experiment.NewAlternative("blue")).
		Build()
	if err != nil {
		return err
	}

The traffic fraction is validated as soon as it is set, so it is the one setter that returns
an error:

	b, err := experiment.NewBuilder(client).
		WithName("button-color").
		WithAlternative(experiment.NewAlternative("red")).
		WithTrafficFraction(0.1)

# Participation

An Experiment does not pick alternatives itself. Participate hands the experiment to the
ParticipationService it was built with, which reports the chosen Alternative, or the reason it
could not choose one, through exactly one of the two callbacks:

	exp.Participate(ctx,
		experiment.ParticipationSuccessFunc(func(e *experiment.Experiment, chosen experiment.Alternative) {
			render(chosen.Name)
		}),
		experiment.ParticipationFailureFunc(func(e *experiment.Experiment, err error) {
			lggr.Warnw("participation failed", "experiment", e, "error", err)
		}),
	)

# Definitions

Experiments can also be declared in a YAML file and built in bulk with LoadDefinitions. Every
definition goes through the Builder, so the same validation applies.
*/
package experiment
