package oauth2

import "fmt"

// ErrorResponse is the structured error body returned by an OAuth2 token
// endpoint on a non-2xx response, as defined in RFC 6749 section 5.2.
type ErrorResponse struct {
	// ErrorCode is the standard error identifier, e.g. "invalid_grant",
	// "invalid_client", "invalid_request".
	ErrorCode string `json:"error"`

	// ErrorDescription is a human-readable explanation of the failure.
	ErrorDescription string `json:"error_description,omitempty"`

	// ErrorURI points at documentation for the failure, when provided.
	ErrorURI string `json:"error_uri,omitempty"`
}

// ProtocolError is returned when the token endpoint answers with a non-2xx
// status. It carries the parsed error body plus the raw payload so callers
// can always distinguish a server-side rejection from a success response or
// a transport failure.
type ProtocolError struct {
	// StatusCode is the HTTP status returned by the token endpoint.
	StatusCode int

	// Response is the parsed error body. Zero-valued when the server
	// returned something that was not a standard error document.
	Response ErrorResponse

	// Raw is the unparsed response body, kept verbatim for diagnostics.
	Raw []byte
}

func (e *ProtocolError) Error() string {
	if e.Response.ErrorCode == "" {
		return fmt.Sprintf("token endpoint returned status %d", e.StatusCode)
	}
	if e.Response.ErrorDescription == "" {
		return fmt.Sprintf("token endpoint returned %s (status %d)", e.Response.ErrorCode, e.StatusCode)
	}
	return fmt.Sprintf("token endpoint returned %s (status %d): %s", e.Response.ErrorCode, e.StatusCode, e.Response.ErrorDescription)
}
