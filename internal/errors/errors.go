// Package errors defines domain-level errors used throughout the application.
// These errors represent management failures and are mapped to appropriate HTTP status codes at the API boundary.
//
// NOTE: Important for developers
// When adding a new error here, you MUST consider how it should be handled when returned from API endpoints.
//
// Unmapped errors will default to HTTP 500 Internal Server Error.
//
// Don't forget to:
// 1. Add your error to mapError (internal/daemon/api_server.go)
// 2. Add a test case to TestMapError (internal/daemon/api_server_test.go)
package errors

import (
	"errors"
)

var (
	// ErrBadRequest indicates that the client provided invalid input or made a malformed request.
	// Recommended to map to HTTP 400 Bad Request.
	ErrBadRequest = errors.New("bad request")

	// ErrEndpointNotFound indicates that no custom endpoint is registered under the requested ID.
	// Recommended to map to HTTP 404 Not Found.
	ErrEndpointNotFound = errors.New("endpoint not found")

	// ErrEndpointDisabled indicates that the custom endpoint exists but has been disabled by configuration.
	// Recommended to map to HTTP 404 Not Found.
	ErrEndpointDisabled = errors.New("this endpoint is disabled")

	// ErrEndpointInvokeFailed indicates that a custom endpoint returned an error while producing its payload.
	// The payload is owned by an external collaborator, so this is treated as a dependency failure.
	// Recommended to map to HTTP 502 Bad Gateway.
	ErrEndpointInvokeFailed = errors.New("endpoint invocation failed")
)
