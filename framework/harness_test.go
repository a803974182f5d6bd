package framework

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarnessConnectsToRespondingService(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		var out bytes.Buffer
		h, err := NewTestHarness(server.URL+"/todos", time.Second, time.Second, nil, &out)
		require.NoError(t, err)

		assert.Equal(t, server.URL+"/todos", h.ServiceURL())
		assert.Equal(t, time.Second, h.RequestTimeout())
		assert.NotNil(t, h.HTTPClient())
		assert.Contains(t, out.String(), "Connecting to service at "+server.URL+"/todos")

		require.Len(t, requestsCh, 1)
		r := <-requestsCh
		assert.Equal(t, "GET", r.Request.Method)
		assert.Equal(t, "/todos", r.Request.URL.Path)
	})
}

func TestHarnessRejectsErrorStatus(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(404), func(server *httptest.Server) {
		_, err := NewTestHarness(server.URL, time.Second, time.Second, nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status code 404")
	})
}

func TestHarnessTimesOutIfServiceIsUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewTestHarness(url, time.Millisecond*100, time.Millisecond*300, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}
