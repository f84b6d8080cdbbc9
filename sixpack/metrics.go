package sixpack

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// metrics holds the Prometheus collectors of a Client. A nil *metrics records nothing.
type metrics struct {
	participations  *prometheus.CounterVec
	conversions     *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		participations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sixpack",
			Name:      "participations_total",
			Help:      "Number of participation requests by experiment and outcome.",
		}, []string{"experiment", "outcome"}),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sixpack",
			Name:      "conversions_total",
			Help:      "Number of conversion requests by experiment and outcome.",
		}, []string{"experiment", "outcome"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sixpack",
			Name:      "request_duration_seconds",
			Help:      "Duration of requests to the sixpack server by endpoint.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}

	for _, c := range []prometheus.Collector{m.participations, m.conversions, m.requestDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *metrics) observeParticipation(experimentName string, err error) {
	if m == nil {
		return
	}
	m.participations.WithLabelValues(experimentName, outcome(err)).Inc()
}

func (m *metrics) observeConversion(experimentName string, err error) {
	if m == nil {
		return
	}
	m.conversions.WithLabelValues(experimentName, outcome(err)).Inc()
}

func (m *metrics) observeRequest(endpoint string, d time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

func outcome(err error) string {
	if err != nil {
		return outcomeFailure
	}

	return outcomeSuccess
}
