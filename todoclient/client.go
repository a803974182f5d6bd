package todoclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/todo-backend/todo-contract-tests/framework"

	"github.com/pkg/errors"
)

const (
	contentTypeJSON = "application/json"

	// DefaultTimeout applies to each request when no other timeout is configured.
	DefaultTimeout = time.Second * 10
)

// Client sends requests to a Todo service. A Client has no per-request state, so tests can
// share one or create one per test with its own logger.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	logger     framework.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client. A nil value means http.DefaultClient.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the maximum duration of each request. Zero disables the timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.timeout = timeout }
}

// WithLogger sets where request and response details are logged.
func WithLogger(logger framework.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Client.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		timeout:    DefaultTimeout,
		logger:     framework.NullLogger(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Request describes one request to send with Do.
type Request struct {
	Method string
	URL    string
	// Headers are added after the defaults for the method, so they can override them.
	Headers http.Header
	// Payload, if not nil, is encoded with json.Marshal and sent as the request body.
	Payload interface{}
}

// Options sends an OPTIONS request, as a browser would for a CORS preflight check.
func (c *Client) Options(ctx context.Context, url string, headers http.Header) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodOptions, URL: url, Headers: headers})
}

// Post sends a POST request with a JSON payload.
func (c *Client) Post(ctx context.Context, url string, payload interface{}) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, URL: url, Payload: payload})
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, URL: url})
}

// Put sends a PUT request with a JSON payload.
func (c *Client) Put(ctx context.Context, url string, payload interface{}) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, URL: url, Payload: payload})
}

// Patch sends a PATCH request with a JSON payload.
func (c *Client) Patch(ctx context.Context, url string, payload interface{}) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodPatch, URL: url, Payload: payload})
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, url string) (*Response, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, URL: url})
}

// Do sends a request and reads the whole response. It returns an error for any status of
// 400 or above, as well as for transport failures.
func (c *Client) Do(ctx context.Context, r Request) (*Response, error) {
	var body []byte
	if r.Payload != nil {
		data, err := json.Marshal(r.Payload)
		if err != nil {
			return nil, errors.Wrap(err, "could not encode request payload")
		}
		body = data
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, bytes.NewReader(body))
	if err != nil {
		return nil, newTransportError(r.Method, r.URL, err)
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		req.Header.Set("Content-Type", contentTypeJSON)
		req.Header.Set("Accept", contentTypeJSON)
	case http.MethodGet:
		req.Header.Set("Accept", contentTypeJSON)
	}
	for name, values := range r.Headers {
		req.Header.Del(name)
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	c.logger.Printf(">> %s", curlCommand(req, body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("<< error: %s", err)
		return nil, newTransportError(r.Method, r.URL, err)
	}
	defer func() { _ = resp.Body.Close() }()
	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		c.logger.Printf("<< error reading body: %s", err)
		return nil, newTransportError(r.Method, r.URL, err)
	}

	result := newResponse(r.Method, req.URL, resp, respBody)
	c.logger.Printf("<< %s", result)

	if resp.StatusCode >= 400 {
		return nil, &StatusError{
			Method:     r.Method,
			URL:        r.URL,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}
	return result, nil
}
