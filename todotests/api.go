package todotests

import (
	"context"
	"net/http"

	"github.com/todo-backend/todo-contract-tests/framework"
	"github.com/todo-backend/todo-contract-tests/servicedef"
	"github.com/todo-backend/todo-contract-tests/todoclient"

	"github.com/stretchr/testify/require"
)

// T represents a test or subtest in the Todo test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is
// outside of the Go test runner, with extra features such as debug logging and deferred cleanup
// provided by the framework package.
//
// Every T has its own todoclient.Client whose request log goes to that test's debug output, and
// methods for the request steps that scenarios are made of. Each step blocks until the response
// has been fully read, so the steps of a scenario always happen in the order they are written.
//
// To make test assertions, use Expect, or the assert and require packages passing the *T as if
// it were a *testing.T.
type T struct {
	context *framework.Context
	harness *framework.TestHarness
	client  *todoclient.Client
}

func newTestScope(c *framework.Context, harness *framework.TestHarness) *T {
	return &T{
		context: c,
		harness: harness,
		client: todoclient.New(
			todoclient.WithHTTPClient(harness.HTTPClient()),
			todoclient.WithTimeout(harness.RequestTimeout()),
			todoclient.WithLogger(c.DebugLogger()),
		),
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.harness))
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// SkipWithReason stops the test immediately and reports it as skipped rather than failed.
func (t *T) SkipWithReason(reason string) {
	t.context.SkipWithReason(reason)
}

// Defer schedules a cleanup action for the end of the current test.
func (t *T) Defer(cleanup func()) {
	t.context.Defer(cleanup)
}

// BaseURL is the collection URL of the service under test.
func (t *T) BaseURL() string {
	return t.harness.ServiceURL()
}

func (t *T) Options(url string, headers http.Header) (*todoclient.Response, error) {
	return t.client.Options(context.Background(), url, headers)
}

func (t *T) Post(url string, payload interface{}) (*todoclient.Response, error) {
	return t.client.Post(context.Background(), url, payload)
}

func (t *T) Get(url string) (*todoclient.Response, error) {
	return t.client.Get(context.Background(), url)
}

func (t *T) Put(url string, payload interface{}) (*todoclient.Response, error) {
	return t.client.Put(context.Background(), url, payload)
}

func (t *T) Patch(url string, payload interface{}) (*todoclient.Response, error) {
	return t.client.Patch(context.Background(), url, payload)
}

func (t *T) Delete(url string) (*todoclient.Response, error) {
	return t.client.Delete(context.Background(), url)
}

// Preflight sends an OPTIONS request to the collection URL from the given origin. Only the
// Origin header is sent, so the service has to answer with CORS headers even when the request
// is not a full preflight.
func (t *T) Preflight(origin string) (*todoclient.Response, error) {
	headers := make(http.Header)
	headers.Set("Origin", origin)
	return t.Options(t.BaseURL(), headers)
}

// Create posts a new item to the collection, and schedules it to be deleted again when the test
// ends. The item is found by its Location, or if there is none, by the url property that
// Todo-Backend services also return in the body.
func (t *T) Create(params servicedef.TodoParams) (*todoclient.Response, error) {
	resp, err := t.Post(t.BaseURL(), params)
	if err != nil {
		return resp, err
	}
	itemURL, locErr := resp.ResolveLocation()
	if locErr != nil {
		itemURL = resp.Body.GetByKey("url").StringValue()
	}
	if itemURL != "" {
		t.DeleteAfterTest(itemURL)
	} else {
		t.Debug("cannot clean up new item, service did not say where it is")
	}
	return resp, err
}

// RequireCreated is like Create, but the test stops immediately unless the item was created
// and the service told us its URL. It returns the absolute item URL.
func (t *T) RequireCreated(params servicedef.TodoParams) string {
	resp, err := t.Create(params)
	require.NoError(t, err, "could not create item")
	return t.RequireItemURL(resp)
}

// RequireItemURL returns the absolute URL from a response's Location header, or stops the test
// if there is none.
func (t *T) RequireItemURL(resp *todoclient.Response) string {
	itemURL, err := resp.ResolveLocation()
	require.NoError(t, err)
	return itemURL
}

// DeleteAfterTest schedules a DELETE for the item URL when the test ends. An item that is
// already gone is not an error.
func (t *T) DeleteAfterTest(itemURL string) {
	t.Defer(func() {
		if _, err := t.Delete(itemURL); err != nil && !todoclient.IsNotFound(err) {
			t.Debug("cleanup of %s failed: %s", itemURL, err)
			t.harness.Logger().Printf("%s: cleanup of %s failed: %s", t.context.ID(), itemURL, err)
		}
	})
}
