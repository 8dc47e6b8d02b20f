package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorType represents the category of error that occurred during a fetch operation
type ErrorType string

const (
	// ErrorTypeNetwork indicates a network-level error (connection refused, DNS, etc.)
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeRateLimit indicates the request was rejected due to rate limiting (HTTP 429)
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeServer indicates a server error (HTTP 5xx)
	ErrorTypeServer ErrorType = "server"
	// ErrorTypeClient indicates a client error (HTTP 4xx except 429)
	ErrorTypeClient ErrorType = "client"
	// ErrorTypeTimeout indicates the request timed out
	ErrorTypeTimeout ErrorType = "timeout"
	// ErrorTypeUnknown indicates an error of unknown type
	ErrorTypeUnknown ErrorType = "unknown"
)

// FetchError represents a failed page retrieval
type FetchError struct {
	URL        string
	Type       ErrorType
	StatusCode int
	Message    string
	Cause      error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch %s: %s error (status %d): %s", e.URL, e.Type, e.StatusCode, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("fetch %s: %s error: %s: %v", e.URL, e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch %s: %s error: %s", e.URL, e.Type, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// NewNetworkError creates a network error
func NewNetworkError(url string, cause error) *FetchError {
	return &FetchError{
		URL:     url,
		Type:    ErrorTypeNetwork,
		Message: "network request failed",
		Cause:   cause,
	}
}

// NewTimeoutError creates a timeout error
func NewTimeoutError(url string, cause error) *FetchError {
	return &FetchError{
		URL:     url,
		Type:    ErrorTypeTimeout,
		Message: "request timed out",
		Cause:   cause,
	}
}

// ClassifyTransportError maps an error returned before any response was
// received into a FetchError.
func ClassifyTransportError(url string, err error) *FetchError {
	if errors.Is(err, context.DeadlineExceeded) {
		return NewTimeoutError(url, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NewTimeoutError(url, err)
	}
	return NewNetworkError(url, err)
}

// ClassifyHTTPError classifies a non-2xx HTTP status code into a FetchError
func ClassifyHTTPError(url string, statusCode int) *FetchError {
	e := &FetchError{URL: url, StatusCode: statusCode}
	switch {
	case statusCode == 429:
		e.Type = ErrorTypeRateLimit
		e.Message = "rate limit exceeded"
	case statusCode >= 500:
		e.Type = ErrorTypeServer
		e.Message = "server returned an error"
	case statusCode >= 400:
		e.Type = ErrorTypeClient
		e.Message = fmt.Sprintf("client error: HTTP %d", statusCode)
	default:
		e.Type = ErrorTypeUnknown
		e.Message = fmt.Sprintf("unexpected status code: %d", statusCode)
	}
	return e
}
