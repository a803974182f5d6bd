// Package todoclient sends requests to a Todo service and turns the responses into values
// that tests can make assertions about.
//
// Every request either produces a *Response, or fails with a *TransportError (the service
// could not be reached, or did not answer in time) or a *StatusError (the service answered
// with a 4xx or 5xx status).
package todoclient
