/*
Package sixpack is an HTTP client for the sixpack A/B testing server.

Client implements experiment.ParticipationService, so experiments built with a Client
participate by asking the server for an alternative:

	client, err := sixpack.NewClient("http://localhost:5000",
		sixpack.WithClientID(userID),
		sixpack.WithLogger(lggr),
	)
	if err != nil {
		return err
	}

	exp, err := experiment.NewBuilder(client).
		WithName("button-color").
		WithAlternatives(experiment.NewAlternatives("red", "blue")...).
		Build()
	if err != nil {
		return err
	}

	exp.Participate(ctx, onSuccess, onFailure)

Participate and Convert are also available as plain calls returning an error for callers that
do not need callbacks.

# Names

The server only accepts experiment names, alternative names and KPIs made of letters, digits,
dashes, underscores and spaces, starting with a letter or digit. The client rejects other names
with ErrInvalidName before making a request.

# Metrics

WithRegisterer registers Prometheus collectors counting participations and conversions by
experiment and outcome, and a histogram of request durations by endpoint.
*/
package sixpack
