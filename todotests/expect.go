package todotests

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/todo-backend/todo-contract-tests/todoclient"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Expectation makes assertions about properties of one response.
type Expectation struct {
	t    *T
	resp *todoclient.Response
}

// Expect takes the result of a request step. If the request was rejected, the test stops
// immediately, since none of the assertions that follow could be meaningful.
func Expect(t *T, resp *todoclient.Response, err error) Expectation {
	require.NoError(t, err, "request was rejected")
	require.NotNil(t, resp)
	return Expectation{t: t, resp: resp}
}

// To asserts that the response has the property at path, and that its value satisfies every
// matcher. With no matchers, it only asserts that the property exists. See Property for the
// path syntax.
//
// Failures are recorded without stopping the test, so one call can report several mismatches.
func (e Expectation) To(path string, matchers ...types.GomegaMatcher) Expectation {
	actual, found := Property(e.resp, path)
	if !found {
		assert.Fail(e.t, fmt.Sprintf("response did not have property %q", path),
			"response was: %s", e.resp)
		return e
	}
	for _, m := range matchers {
		ok, err := m.Match(actual)
		if err != nil {
			assert.Fail(e.t, fmt.Sprintf("could not check property %q", path), err.Error())
			continue
		}
		if !ok {
			assert.Fail(e.t, fmt.Sprintf("property %q did not match", path), m.FailureMessage(actual))
		}
	}
	return e
}

// ExpectRejected asserts that a request step failed, and that the failure message contains
// the given text, for instance "Not Found".
func ExpectRejected(t *T, resp *todoclient.Response, err error, messageContains string) {
	if err == nil {
		assert.Fail(t, "expected request to be rejected", "but it succeeded with %s", resp)
		return
	}
	assert.Contains(t, err.Error(), messageContains, "request was rejected for the wrong reason")
}

// Property looks up a value in a response by a dotted path:
//
//	status               the status code, as an int
//	header               all headers, as a map[string]string with lowercase names
//	header.<name>        one header value; the name is case-insensitive
//	body                 the parsed JSON body
//	body.<key>...        a property of the body; numeric keys index into arrays
//
// JSON values are returned as plain Go values: string, bool, float64, []interface{} or
// map[string]interface{}. The second return value is false if there is no such property.
func Property(resp *todoclient.Response, path string) (interface{}, bool) {
	if resp == nil {
		return nil, false
	}
	parts := strings.Split(path, ".")
	switch parts[0] {
	case "status":
		if len(parts) > 1 {
			return nil, false
		}
		return resp.Status, true
	case "header":
		if len(parts) == 1 {
			headers := make(map[string]string, len(resp.Header))
			for k, v := range resp.Header {
				headers[k] = v
			}
			return headers, true
		}
		value, ok := resp.Header[strings.ToLower(strings.Join(parts[1:], "."))]
		return value, ok
	case "body":
		value := resp.Body
		if value.IsNull() {
			return nil, false
		}
		for _, key := range parts[1:] {
			var ok bool
			if value, ok = childValue(value, key); !ok {
				return nil, false
			}
		}
		return value.AsArbitraryValue(), true
	}
	return nil, false
}

func childValue(value ldvalue.Value, key string) (ldvalue.Value, bool) {
	switch value.Type() {
	case ldvalue.ObjectType:
		for _, k := range value.Keys() {
			if k == key {
				return value.GetByKey(key), true
			}
		}
	case ldvalue.ArrayType:
		if i, err := strconv.Atoi(key); err == nil && i >= 0 && i < value.Count() {
			return value.GetByIndex(i), true
		}
	}
	return ldvalue.Null(), false
}

// Equal matches a value that is deeply equal to expected. Numbers in a JSON body are float64.
func Equal(expected interface{}) types.GomegaMatcher {
	return gomega.Equal(expected)
}

// BeTrue matches the boolean true.
func BeTrue() types.GomegaMatcher {
	return gomega.BeTrue()
}

// MatchPattern matches a string against a regular expression.
func MatchPattern(pattern string) types.GomegaMatcher {
	return gomega.MatchRegexp(pattern)
}

// HaveAllKeys matches a map that contains every one of the keys, and possibly others.
func HaveAllKeys(keys ...string) types.GomegaMatcher {
	matchers := make([]types.GomegaMatcher, 0, len(keys))
	for _, k := range keys {
		matchers = append(matchers, gomega.HaveKey(k))
	}
	return gomega.And(matchers...)
}

// ContainItemWithTitle matches a JSON array that has an object whose title is the given text.
func ContainItemWithTitle(title string) types.GomegaMatcher {
	return gomega.ContainElement(gomega.HaveKeyWithValue("title", title))
}
