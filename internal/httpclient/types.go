package httpclient

import "fmt"

// HTTPError represents a non-200 response of the BFF
type HTTPError struct {
	StatusCode int
	// Code is the error code of the BFF error envelope, when the body held one
	Code    string
	Message string
	URL     string
}

// Error returns the error message
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for URL %s: %s", e.StatusCode, e.URL, e.Message)
}

// NewHTTPError creates a new HTTP error
func NewHTTPError(statusCode int, url, message string) error {
	return &HTTPError{
		StatusCode: statusCode,
		URL:        url,
		Message:    message,
	}
}
