package sixpack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/ksuid"

	"github.com/seatgeek/sixpack-go/config"
	"github.com/seatgeek/sixpack-go/experiment"
	"github.com/seatgeek/sixpack-go/pkg/logger"
)

const (
	endpointParticipate = "participate"
	endpointConvert     = "convert"

	// RequestIDHeader carries the id generated for every request to the server.
	RequestIDHeader = "X-Request-Id"

	statusOK = "ok"

	// maxBodySize bounds how much of a response body is read.
	maxBodySize = 1 << 20
)

// Client talks to a sixpack server on behalf of a single participant.
//
// Client implements experiment.ParticipationService and is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	clientID   string
	userAgent  string
	ipAddress  string
	httpClient *http.Client
	lggr       logger.Logger
	metrics    *metrics
}

var _ experiment.ParticipationService = (*Client)(nil)

// Participation is the outcome of a successful participation.
type Participation struct {
	Experiment  *experiment.Experiment
	Alternative experiment.Alternative
	ClientID    string
}

// Conversion is the outcome of a successful conversion.
type Conversion struct {
	Experiment  string
	Alternative experiment.Alternative
	ClientID    string
	KPI         string
}

// response is the JSON body returned by the participate and convert endpoints.
type response struct {
	Status      string                 `json:"status"`
	Message     string                 `json:"message,omitempty"`
	ClientID    string                 `json:"client_id"`
	Alternative experiment.Alternative `json:"alternative"`
	Experiment  struct {
		Name string `json:"name"`
	} `json:"experiment"`
}

// NewClient creates a client for the sixpack server at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("sixpack base URL is required")
	}

	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse sixpack base URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("sixpack base URL must be an absolute http(s) URL: %q", baseURL)
	}

	o := options{
		timeout: config.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.clientID == "" {
		o.clientID = uuid.NewString()
	}
	if o.lggr == nil {
		o.lggr = logger.Nop()
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{
			Timeout: o.timeout,
		}
	}

	var m *metrics
	if o.registerer != nil {
		m, err = newMetrics(o.registerer)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}

	return &Client{
		baseURL:    u,
		clientID:   o.clientID,
		userAgent:  o.userAgent,
		ipAddress:  o.ipAddress,
		httpClient: o.httpClient,
		lggr:       o.lggr,
		metrics:    m,
	}, nil
}

// NewClientFromConfig creates a client from the loaded configuration. opts are applied after
// the configuration and take precedence.
func NewClientFromConfig(cfg config.SixpackConfig, opts ...Option) (*Client, error) {
	cfgOpts := []Option{
		WithClientID(cfg.ClientID),
		WithUserAgent(cfg.UserAgent),
		WithIPAddress(cfg.IPAddress),
	}
	if cfg.Timeout > 0 {
		cfgOpts = append(cfgOpts, WithTimeout(cfg.Timeout))
	}

	return NewClient(cfg.BaseURL, append(cfgOpts, opts...)...)
}

// ClientID returns the id identifying the participant.
func (c *Client) ClientID() string {
	return c.clientID
}

// ParticipateIn asks the server to choose an alternative of e and reports the outcome through
// exactly one of onSuccess or onFailure, before returning.
func (c *Client) ParticipateIn(
	ctx context.Context,
	e *experiment.Experiment,
	onSuccess experiment.OnParticipationSuccess,
	onFailure experiment.OnParticipationFailure,
) {
	p, err := c.Participate(ctx, e)
	if err != nil {
		c.lggr.Errorw("Failed to participate", "experiment", e.Name(), "client_id", c.clientID, "error", err)
		onFailure.OnParticipationFailed(e, err)

		return
	}

	onSuccess.OnParticipation(e, p.Alternative)
}

// Participate asks the server to choose an alternative of e for the participant.
//
// Alternatives are sent sorted by name. The server treats the first one as the control, which
// it returns to participants excluded by the traffic fraction.
//
// Experiments with an invalid name are rejected before any request and are not counted in the
// metrics, so bad input cannot grow the experiment label set.
func (c *Client) Participate(ctx context.Context, e *experiment.Experiment) (*Participation, error) {
	if err := ValidateName("experiment", e.Name()); err != nil {
		return nil, err
	}

	p, err := c.participate(ctx, e)
	c.metrics.observeParticipation(e.Name(), err)

	return p, err
}

func (c *Client) participate(ctx context.Context, e *experiment.Experiment) (*Participation, error) {
	alts := e.Alternatives()
	q := c.query(e.Name())
	for _, alt := range alts.List() {
		if err := ValidateName("alternative", alt.Name); err != nil {
			return nil, err
		}
		q.Add("alternatives", alt.Name)
	}

	forced, hasForced := e.ForcedChoice()
	if hasForced {
		if err := ValidateName("forced alternative", forced.Name); err != nil {
			return nil, err
		}
		q.Set("force", forced.Name)
	}
	if fraction, ok := e.TrafficFraction(); ok {
		q.Set("traffic_fraction", strconv.FormatFloat(fraction, 'f', -1, 64))
	}

	resp, err := c.get(ctx, endpointParticipate, q)
	if err != nil {
		return nil, fmt.Errorf("failed to participate in %s: %w", e.Name(), err)
	}

	chosen := resp.Alternative
	if !alts.Contains(chosen) && (!hasForced || chosen != forced) {
		return nil, fmt.Errorf("%w: %q for experiment %s", ErrUnknownAlternative, chosen.Name, e.Name())
	}

	return &Participation{
		Experiment:  e,
		Alternative: chosen,
		ClientID:    c.responseClientID(resp),
	}, nil
}

// Convert records a conversion of the participant in the named experiment. kpi is optional.
//
// Like Participate, an invalid experiment name is rejected without being counted.
func (c *Client) Convert(ctx context.Context, experimentName, kpi string) (*Conversion, error) {
	if err := ValidateName("experiment", experimentName); err != nil {
		return nil, err
	}

	conv, err := c.convert(ctx, experimentName, kpi)
	c.metrics.observeConversion(experimentName, err)

	return conv, err
}

func (c *Client) convert(ctx context.Context, experimentName, kpi string) (*Conversion, error) {
	q := c.query(experimentName)
	if kpi != "" {
		if err := ValidateName("kpi", kpi); err != nil {
			return nil, err
		}
		q.Set("kpi", kpi)
	}

	resp, err := c.get(ctx, endpointConvert, q)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", experimentName, err)
	}

	return &Conversion{
		Experiment:  experimentName,
		Alternative: resp.Alternative,
		ClientID:    c.responseClientID(resp),
		KPI:         kpi,
	}, nil
}

// query returns the parameters shared by every request.
func (c *Client) query(experimentName string) url.Values {
	q := url.Values{}
	q.Set("experiment", experimentName)
	q.Set("client_id", c.clientID)
	if c.userAgent != "" {
		q.Set("user_agent", c.userAgent)
	}
	if c.ipAddress != "" {
		q.Set("ip_address", c.ipAddress)
	}

	return q
}

func (c *Client) responseClientID(resp *response) string {
	if resp.ClientID == "" {
		return c.clientID
	}

	return resp.ClientID
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values) (*response, error) {
	reqURL := c.baseURL.JoinPath(endpoint)
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := ksuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	lggr := c.lggr.With("request_id", requestID, "endpoint", endpoint)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	c.metrics.observeRequest(endpoint, elapsed)
	if err != nil {
		lggr.Debugw("Request failed", "duration", elapsed, "error", err)

		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	lggr.Debugw("Request completed", "status", resp.StatusCode, "duration", elapsed)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var out response
	if resp.StatusCode != http.StatusOK {
		// Failure bodies usually carry a message, but any body is accepted.
		if jsonErr := json.Unmarshal(body, &out); jsonErr != nil || out.Message == "" {
			out.Message = strings.TrimSpace(string(body))
		}

		return nil, &ServerError{StatusCode: resp.StatusCode, Message: out.Message}
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse sixpack response: %w", err)
	}

	if out.Status != statusOK {
		return nil, &ServerError{StatusCode: resp.StatusCode, Message: out.Message}
	}

	return &out, nil
}
