package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "recruitment-portal/1.0"

// Error represents a failed backend request before envelope normalization.
type Error struct {
	Path       string
	StatusCode int
	Message    string
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("request error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("request error for %s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the client behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

// DefaultOptions returns sensible defaults for backend calls.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Client is the backend API client. Resource clients hang off it as fields;
// none of them mutate shared state, so a single Client is safe for concurrent
// page fan-out.
type Client struct {
	baseURL string
	http    *http.Client
	opts    *Options

	Jobs         *JobsService
	Applicants   *ApplicantsService
	Applications *ApplicationsService
	Assessments  *AssessmentsService
	Interviews   *InterviewsService
}

// NewClient creates a backend client for the given base URL.
func NewClient(baseURL string, opts *Options) (*Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{Path: baseURL, Message: "invalid base URL", Cause: err}
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: opts.Timeout},
		opts:    opts,
	}
	c.Jobs = &JobsService{client: c}
	c.Applicants = &ApplicantsService{client: c}
	c.Applications = &ApplicationsService{client: c}
	c.Assessments = &AssessmentsService{client: c}
	c.Interviews = &InterviewsService{client: c}
	return c, nil
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// response carries the raw outcome of a backend request.
type response struct {
	StatusCode int
	Body       []byte
}

// do performs a backend request and reads the full body. The returned error
// covers transport-level failures only; HTTP status handling is left to the
// caller so 404-as-empty endpoints can be distinguished.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, &Error{Path: path, Message: "failed to create request", Cause: err}
	}

	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for key, value := range c.opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Path: path, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Path: path, StatusCode: resp.StatusCode, Message: "failed to read response body", Cause: err}
	}

	return &response{StatusCode: resp.StatusCode, Body: bodyBytes}, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*response, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, "")
}

func (c *Client) postJSON(ctx context.Context, path string, payload []byte) (*response, error) {
	return c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(payload), "application/json")
}

// statusError derives the user-facing message for a non-2xx response,
// preferring the server-provided body text (e.g. a duplicate-application
// message) over the generic status line.
func statusError(resp *response) string {
	if text := strings.TrimSpace(string(resp.Body)); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
}

func isOK(status int) bool {
	return status >= 200 && status < 300
}
