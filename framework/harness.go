package framework

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const statusQueryInterval = time.Millisecond * 100

// TestHarness holds everything the tests need to know about the service under test: where it
// is, and how to talk to it.
type TestHarness struct {
	serviceURL     string
	httpClient     *http.Client
	requestTimeout time.Duration
	logger         Logger
}

// NewTestHarness creates a TestHarness instance, and verifies that the service is responding
// by querying its base URL until it gets an HTTP response or the startup timeout elapses.
func NewTestHarness(
	serviceURL string,
	requestTimeout time.Duration,
	startupTimeout time.Duration,
	debugLogger Logger,
	startupOutput io.Writer,
) (*TestHarness, error) {
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	h := &TestHarness{
		serviceURL:     serviceURL,
		httpClient:     &http.Client{},
		requestTimeout: requestTimeout,
		logger:         debugLogger,
	}
	if err := h.awaitService(startupTimeout, startupOutput); err != nil {
		return nil, err
	}
	return h, nil
}

// ServiceURL returns the collection URL of the service under test.
func (h *TestHarness) ServiceURL() string {
	return h.serviceURL
}

// HTTPClient returns the client that all test requests should go through.
func (h *TestHarness) HTTPClient() *http.Client {
	return h.httpClient
}

// RequestTimeout is the maximum time any single request to the service may take.
func (h *TestHarness) RequestTimeout() time.Duration {
	return h.requestTimeout
}

// Logger returns the harness-level debug logger.
func (h *TestHarness) Logger() Logger {
	return h.logger
}

func (h *TestHarness) awaitService(timeout time.Duration, output io.Writer) error {
	if output == nil {
		output = io.Discard
	}
	fmt.Fprintf(output, "Connecting to service at %s", h.serviceURL)

	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		status, err := h.queryStatus()
		if err == nil {
			fmt.Fprintln(output)
			if status >= 400 {
				return fmt.Errorf("service returned status code %d from %s", status, h.serviceURL)
			}
			h.logger.Printf("Service responded with status %d", status)
			return nil
		}
		h.logger.Printf("Service not ready yet: %s", err)
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(statusQueryInterval)
	}
}

func (h *TestHarness) queryStatus() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), h.requestTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.serviceURL, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return resp.StatusCode, nil
}
