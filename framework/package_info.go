// Package framework contains the low-level implementation of test harness infrastructure
// that does not know anything about Todo items.
//
// The general model is:
//
// 1. The test harness talks to a service under test over HTTP, starting from one base URL.
// Before any tests run, it waits for that URL to respond.
//
// 2. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier, to accumulate
// success/failure results, to capture debug output, and to schedule cleanup actions.
//
// The domain-specific code that knows what is being tested is responsible for the requests
// it sends and for a domain-specific test API on top of the test context.
package framework
