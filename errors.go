package unifiaccess

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// codeSuccess is the envelope code the controller returns for every
// successful request.
const codeSuccess = "SUCCESS"

// Substrings the controller embeds in enrollment-related error codes.
// The exact codes have changed across Access releases, so matching is
// deliberately loose.
const (
	codeSessionNotFound = "SESSION_NOT_FOUND"
	codeTokenEmpty      = "TOKEN_EMPTY"
)

var (
	// ErrNoData indicates a SUCCESS envelope that carried no data field
	// where one was expected.
	ErrNoData = errors.New("no data in response")

	// ErrSessionNotFound indicates an enrollment session that no longer
	// exists on the controller, typically because it was cancelled.
	ErrSessionNotFound = errors.New("enrollment session not found")
)

// APIError is a non-SUCCESS envelope returned by the controller.
type APIError struct {
	// Code is the vendor error code, e.g. "CODE_PARAMS_INVALID".
	Code string

	// Message is the human-readable msg field of the envelope.
	Message string

	// Endpoint is the API path the error came from.
	Endpoint string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("access API error %s on %s: %s", e.Code, e.Endpoint, e.Message)
}

// HasAPICode reports whether err wraps an *APIError whose vendor code
// contains fragment. Substring matching is intentional: the controller's
// code strings have grown prefixes between releases.
func HasAPICode(err error, fragment string) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return strings.Contains(apiErr.Code, fragment)
}
