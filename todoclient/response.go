package todoclient

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Response is a fully read response from the service.
type Response struct {
	// Method and URL identify the request that produced this response.
	Method string
	URL    *url.URL

	Status int

	// Header maps each lowercased header name to its first value.
	Header map[string]string

	// Body is the parsed JSON body, or ldvalue.Null() if the response was not JSON.
	Body ldvalue.Value

	RawBody []byte
}

func newResponse(method string, requestURL *url.URL, resp *http.Response, body []byte) *Response {
	r := &Response{
		Method:  method,
		URL:     requestURL,
		Status:  resp.StatusCode,
		Header:  make(map[string]string, len(resp.Header)),
		Body:    ldvalue.Null(),
		RawBody: body,
	}
	for name, values := range resp.Header {
		if len(values) > 0 {
			r.Header[strings.ToLower(name)] = values[0]
		}
	}
	if isJSONContentType(resp.Header.Get("Content-Type")) && json.Valid(body) {
		r.Body = ldvalue.Parse(body)
	}
	return r
}

func isJSONContentType(value string) bool {
	mediaType, _, err := mime.ParseMediaType(value)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// Location returns the raw value of the Location header, or "" if there was none.
func (r *Response) Location() string {
	return r.Header["location"]
}

// ResolveLocation returns the Location header as an absolute URL. A relative Location is
// resolved against the URL of the request, as a browser would.
func (r *Response) ResolveLocation() (string, error) {
	location := r.Location()
	if location == "" {
		return "", fmt.Errorf("%s %s: response had no Location header", r.Method, r.URL)
	}
	ref, err := url.Parse(location)
	if err != nil {
		return "", fmt.Errorf("%s %s: malformed Location header %q: %w", r.Method, r.URL, location, err)
	}
	if r.URL == nil {
		return ref.String(), nil
	}
	return r.URL.ResolveReference(ref).String(), nil
}

func (r *Response) String() string {
	s := fmt.Sprintf("HTTP %d", r.Status)
	if location := r.Location(); location != "" {
		s += " Location: " + location
	}
	if len(r.RawBody) > 0 {
		s += " " + string(r.RawBody)
	}
	return s
}
