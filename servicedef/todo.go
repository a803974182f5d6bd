// Package servicedef defines the JSON shapes that the tests send to a Todo service.
package servicedef

// Headers that a Todo service must include in its response to a CORS preflight request.
const (
	HeaderAllowOrigin  = "access-control-allow-origin"
	HeaderAllowMethods = "access-control-allow-methods"
	HeaderAllowHeaders = "access-control-allow-headers"
)

// TodoParams is the request body for creating or updating a Todo item. Fields left at their
// zero value are omitted, so the same type serves for POST, PUT and PATCH.
type TodoParams struct {
	Title     string `json:"title,omitempty"`
	Completed *bool  `json:"completed,omitempty"`
	Order     *int   `json:"order,omitempty"`
}

// Completed returns TodoParams that only set the completed flag.
func Completed(value bool) TodoParams {
	return TodoParams{Completed: &value}
}

// Titled returns TodoParams that only set the title.
func Titled(title string) TodoParams {
	return TodoParams{Title: title}
}
