// Package web is a small framework-agnostic HTTP layer. Adapters in
// pkg/web/adapters bind it to Echo, Gin or Fiber.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Server is implemented by every framework adapter
type Server interface {
	// Route registration
	RegisterRoute(method, path string, handler HandlerFunc, middlewares ...MiddlewareFunc)

	// Global middleware
	Use(middleware MiddlewareFunc)

	// Server lifecycle. Start blocks until the server stops; a graceful Stop
	// makes it return ErrServerClosed.
	Start(addr string) error
	Stop(ctx context.Context) error

	// Server information
	Name() string
}

// ErrServerClosed is returned by Start after Stop
var ErrServerClosed = http.ErrServerClosed

// RequestContext provides a framework-agnostic view of a request
type RequestContext interface {
	// Context returns the request's context.Context
	Context() context.Context

	// Request data
	Method() string
	Path() string
	RealIP() string
	Header(key string) string

	// Query parameters
	QueryParam(key string) string

	// Context data
	Get(key string) any
	Set(key string, val any)

	Response() Response
}

// Response provides response writing capabilities
type Response interface {
	// Status returns the status written so far, or 200 if none was
	Status() int
	SetHeader(key, value string)

	JSON(code int, v any) error
	HTML(code int, html string) error
	String(code int, s string) error
	Blob(code int, contentType string, b []byte) error
}

// HandlerFunc defines the signature for HTTP handlers
type HandlerFunc func(RequestContext) error

// MiddlewareFunc defines the signature for middleware
type MiddlewareFunc func(HandlerFunc) HandlerFunc

// HTTPError represents an HTTP error with status code and message
type HTTPError struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Internal error  `json:"-"` // Stores the error returned by an external dependency
}

// Error makes HTTPError implement the error interface
func (he *HTTPError) Error() string {
	if he.Internal != nil {
		return fmt.Sprintf("code=%d, message=%s, internal=%v", he.Code, he.Message, he.Internal)
	}
	return fmt.Sprintf("code=%d, message=%s", he.Code, he.Message)
}

// Unwrap returns the internal error
func (he *HTTPError) Unwrap() error {
	return he.Internal
}

// NewHTTPError creates a new HTTPError. The message defaults to the status
// text for code.
func NewHTTPError(code int, message ...string) *HTTPError {
	he := &HTTPError{Code: code, Message: http.StatusText(code)}
	if len(message) > 0 {
		he.Message = message[0]
	}
	return he
}

// ErrorBody is the JSON body adapters write for handler errors
type ErrorBody struct {
	Error string `json:"error"`
}

// StatusAndBody maps an error returned by a handler onto a status and body.
// Adapters use it so that every framework reports errors the same way.
func StatusAndBody(err error) (int, ErrorBody) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, ErrorBody{Error: httpErr.Message}
	}
	return http.StatusInternalServerError, ErrorBody{Error: err.Error()}
}
