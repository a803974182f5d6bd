// Package todotests contains the Todo-Backend contract tests themselves and their supporting
// API.
//
// Test harness infrastructure that is not specific to Todo items, such as the test context
// and result reporting, is in the lower-level framework package. Sending requests is done by
// the todoclient package.
package todotests
