package sixpack

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/seatgeek/sixpack-go/pkg/logger"
)

type options struct {
	clientID   string
	userAgent  string
	ipAddress  string
	timeout    time.Duration
	httpClient *http.Client
	lggr       logger.Logger
	registerer prometheus.Registerer
}

// Option configures a Client.
type Option func(*options)

// WithClientID sets the id identifying the participant to the server. The same id must be used
// to participate and to convert. A random UUID is used by default.
func WithClientID(id string) Option {
	return func(o *options) {
		o.clientID = id
	}
}

// WithUserAgent forwards the participant user agent to the server, which uses it to ignore
// bots.
func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.userAgent = userAgent
	}
}

// WithIPAddress forwards the participant IP address to the server.
func WithIPAddress(ip string) Option {
	return func(o *options) {
		o.ipAddress = ip
	}
}

// WithTimeout sets the timeout of the default HTTP client. It has no effect when WithHTTPClient
// is used.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithHTTPClient sets the HTTP client used to reach the server.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets the logger. Requests are logged at debug level and failed participations at
// error level.
func WithLogger(lggr logger.Logger) Option {
	return func(o *options) {
		o.lggr = lggr
	}
}

// WithRegisterer registers the client metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}
