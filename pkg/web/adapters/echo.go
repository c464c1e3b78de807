package adapters

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/toyz/axonscan/pkg/web"
)

// EchoAdapter implements web.Server for Echo v4
type EchoAdapter struct {
	engine *echo.Echo
}

// NewEchoAdapter creates a new Echo adapter. It installs an error handler
// that reports errors in the web.ErrorBody shape.
func NewEchoAdapter(e *echo.Echo) *EchoAdapter {
	e.HTTPErrorHandler = handleEchoError
	return &EchoAdapter{engine: e}
}

// NewDefaultEchoAdapter creates a new Echo adapter with a quiet Echo instance
func NewDefaultEchoAdapter() *EchoAdapter {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	return NewEchoAdapter(e)
}

func handleEchoError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if he, ok := err.(*echo.HTTPError); ok {
		_ = c.JSON(he.Code, web.ErrorBody{Error: fmt.Sprint(he.Message)})
		return
	}

	code, body := web.StatusAndBody(err)
	_ = c.JSON(code, body)
}

// RegisterRoute registers a route with the Echo server
func (ea *EchoAdapter) RegisterRoute(method, path string, handler web.HandlerFunc, middlewares ...web.MiddlewareFunc) {
	echoMiddlewares := make([]echo.MiddlewareFunc, len(middlewares))
	for i, mw := range middlewares {
		echoMiddlewares[i] = ea.convertMiddleware(mw)
	}

	ea.engine.Add(method, path, ea.convertHandler(handler), echoMiddlewares...)
}

// Use adds global middleware
func (ea *EchoAdapter) Use(middleware web.MiddlewareFunc) {
	ea.engine.Use(ea.convertMiddleware(middleware))
}

// Start starts the server
func (ea *EchoAdapter) Start(addr string) error {
	return ea.engine.Start(addr)
}

// Stop stops the server
func (ea *EchoAdapter) Stop(ctx context.Context) error {
	return ea.engine.Shutdown(ctx)
}

// Name returns the adapter name
func (ea *EchoAdapter) Name() string {
	return "Echo"
}

// GetEngine returns the underlying Echo instance
func (ea *EchoAdapter) GetEngine() *echo.Echo {
	return ea.engine
}

// convertHandler converts web.HandlerFunc to echo.HandlerFunc. Handler errors
// are written immediately so that middleware observes the final status.
func (ea *EchoAdapter) convertHandler(handler web.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := handler(&EchoRequestContext{context: c}); err != nil {
			if c.Response().Committed {
				return nil
			}
			code, body := web.StatusAndBody(err)
			return c.JSON(code, body)
		}
		return nil
	}
}

// convertMiddleware converts web.MiddlewareFunc to echo.MiddlewareFunc
func (ea *EchoAdapter) convertMiddleware(middleware web.MiddlewareFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			webNext := func(ctx web.RequestContext) error {
				return next(c)
			}
			return middleware(webNext)(&EchoRequestContext{context: c})
		}
	}
}

// EchoRequestContext implements web.RequestContext for Echo
type EchoRequestContext struct {
	context echo.Context
}

// Context returns the request context
func (erc *EchoRequestContext) Context() context.Context {
	return erc.context.Request().Context()
}

// Method returns the HTTP method
func (erc *EchoRequestContext) Method() string {
	return erc.context.Request().Method
}

// Path returns the request path
func (erc *EchoRequestContext) Path() string {
	return erc.context.Request().URL.Path
}

// RealIP returns the real IP address
func (erc *EchoRequestContext) RealIP() string {
	return erc.context.RealIP()
}

// Header returns a request header
func (erc *EchoRequestContext) Header(key string) string {
	return erc.context.Request().Header.Get(key)
}

// QueryParam returns query parameter by name
func (erc *EchoRequestContext) QueryParam(key string) string {
	return erc.context.QueryParam(key)
}

// Get retrieves data from context
func (erc *EchoRequestContext) Get(key string) any {
	return erc.context.Get(key)
}

// Set stores data in context
func (erc *EchoRequestContext) Set(key string, val any) {
	erc.context.Set(key, val)
}

// Response returns the response writer
func (erc *EchoRequestContext) Response() web.Response {
	return &EchoResponse{context: erc.context}
}

// EchoResponse implements web.Response for Echo
type EchoResponse struct {
	context echo.Context
}

// Status returns response status code
func (er *EchoResponse) Status() int {
	return er.context.Response().Status
}

// SetHeader sets response header
func (er *EchoResponse) SetHeader(key, value string) {
	er.context.Response().Header().Set(key, value)
}

// JSON writes JSON response
func (er *EchoResponse) JSON(code int, v any) error {
	return er.context.JSON(code, v)
}

// HTML writes HTML response
func (er *EchoResponse) HTML(code int, html string) error {
	return er.context.HTML(code, html)
}

// String writes string response
func (er *EchoResponse) String(code int, s string) error {
	return er.context.String(code, s)
}

// Blob writes blob response
func (er *EchoResponse) Blob(code int, contentType string, b []byte) error {
	return er.context.Blob(code, contentType, b)
}
