package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"matchmind/internal/platform/metrics"
	"matchmind/internal/requestctx"
)

const (
	PathRecommendations      = "/recommendations"
	PathDomainAnalysis       = "/domain-analysis"
	PathQuantitativeAnalysis = "/quantitative-analysis"
	PathQualitativeAnalysis  = "/qualitative-analysis"
	PathEmployees            = "/employees"
	PathProjects             = "/projects"
	PathDashboardMetrics     = "/dashboard/metrics"
	PathEvaluations          = "/evaluations"
	PathEmployeeEvaluation   = "/employee-evaluation"
	PathResumeUploadURL      = "/resume/upload-url"
)

// IDs are escaped as single path segments, so "/", "?" and "#" stay inside the ID.
func PathProjectAssign(projectID string) string {
	return "/projects/" + url.PathEscape(projectID) + "/assign"
}

func PathEvaluationAction(evaluationID, action string) string {
	return "/evaluations/" + url.PathEscape(evaluationID) + "/" + action
}

type Options struct {
	BaseURL string
	APIKey  string
	// Timeout of zero leaves requests unbounded except by the caller's context.
	Timeout    time.Duration
	Logger     *zap.Logger
	Metrics    *metrics.Collector
	HTTPClient *http.Client
}

// Client talks to the external personnel backend. Every call returns either
// the decoded response or an error; there are no retries.
type Client struct {
	rest     *resty.Client
	uploader *resty.Client
	log      *zap.Logger
	metrics  *metrics.Collector
}

func New(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	rest := newResty(opts.HTTPClient)
	rest.SetBaseURL(strings.TrimRight(opts.BaseURL, "/"))
	rest.SetHeader("Content-Type", "application/json")
	rest.SetHeader("Accept", "application/json")
	if opts.APIKey != "" {
		rest.SetHeader("x-api-key", opts.APIKey)
	}
	rest.SetTimeout(opts.Timeout)

	uploader := newResty(opts.HTTPClient)
	uploader.SetTimeout(opts.Timeout)

	return &Client{
		rest:     rest,
		uploader: uploader,
		log:      logger.Named("backend"),
		metrics:  opts.Metrics,
	}
}

func newResty(hc *http.Client) *resty.Client {
	if hc != nil {
		return resty.NewWithClient(hc)
	}
	return resty.New()
}

type call struct {
	method   string
	path     string
	endpoint string
	query    map[string]string
	body     any
	errorKey []string
}

// do executes the call and returns the raw body of a 2xx response.
func (c *Client) do(ctx context.Context, in call) ([]byte, error) {
	req := c.rest.R().SetContext(ctx)
	requestID := requestctx.GetRequestID(ctx)
	if requestID != "" {
		req.SetHeader(requestctx.HeaderRequestID, requestID)
	}
	if len(in.query) > 0 {
		req.SetQueryParams(in.query)
	}
	if in.body != nil {
		req.SetBody(in.body)
	}
	endpoint := in.endpoint
	if endpoint == "" {
		endpoint = in.path
	}

	c.log.Debug("backend request",
		zap.String("method", in.method),
		zap.String("path", in.path),
		zap.String("requestId", requestID),
		zap.String("operator", requestctx.GetOperator(ctx)),
		zap.Any("body", in.body),
	)
	start := time.Now()
	resp, err := req.Execute(in.method, in.path)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.RecordUpstream(endpoint, true, elapsed)
		c.log.Debug("backend transport failure", zap.String("path", in.path), zap.Error(err))
		return nil, fmt.Errorf("%s %s: %w", in.method, in.path, err)
	}

	body := resp.Body()
	c.log.Debug("backend response",
		zap.String("path", in.path),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("elapsed", elapsed),
		zap.ByteString("body", body),
	)
	if !resp.IsSuccess() {
		c.metrics.RecordUpstream(endpoint, true, elapsed)
		keys := in.errorKey
		if len(keys) == 0 {
			keys = defaultErrorKeys
		}
		return nil, newError(resp.StatusCode(), body, keys...)
	}
	c.metrics.RecordUpstream(endpoint, false, elapsed)
	return body, nil
}

func (c *Client) doJSON(ctx context.Context, in call, out any) error {
	body, err := c.do(ctx, in)
	if err != nil {
		return err
	}
	return decode(in, body, out)
}

func decode(in call, body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s %s: unexpected response: %w", in.method, in.path, err)
	}
	return nil
}
