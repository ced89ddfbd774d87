// Package result defines the uniform outcome envelope returned by every
// service operation. Expected business conditions (not found, forbidden,
// empty set) are expressed through the envelope instead of errors;
// infrastructure failures travel separately as plain Go errors.
package result

// Status classifies a business outcome. The zero value is deliberately
// unspecified and success-shaped: callers distinguish success from failure
// by the presence of Data plus Message, not by Status alone.
type Status string

const (
	StatusUnspecified Status = ""
	StatusSucceeded   Status = "succeeded"
	StatusNotFound    Status = "not_found"
	StatusNotForUser  Status = "not_for_user"
)

// Result wraps one operation outcome. It is a pure value type constructed
// by field initialization; a Result with no Data always carries a
// non-empty Message explaining why.
type Result[T any] struct {
	Status  Status `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Data    *T     `json:"data,omitempty"`
}
