package adapters

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/toyz/axonscan/pkg/web"
)

// FiberAdapter wraps a Fiber app to implement web.Server
type FiberAdapter struct {
	app *fiber.App
}

// NewFiberAdapter creates a new Fiber adapter instance
func NewFiberAdapter() *FiberAdapter {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(web.ErrorBody{Error: e.Message})
			}
			code, body := web.StatusAndBody(err)
			return c.Status(code).JSON(body)
		},
	})

	return &FiberAdapter{app: app}
}

// NewDefaultFiberAdapter creates a new Fiber adapter with panic recovery
func NewDefaultFiberAdapter() *FiberAdapter {
	adapter := NewFiberAdapter()
	adapter.app.Use(recover.New())
	return adapter
}

// RegisterRoute registers a route with the Fiber app
func (fa *FiberAdapter) RegisterRoute(method, path string, handler web.HandlerFunc, middlewares ...web.MiddlewareFunc) {
	var handlers []fiber.Handler
	for _, middleware := range middlewares {
		handlers = append(handlers, convertMiddlewareToFiber(middleware))
	}
	handlers = append(handlers, convertHandlerToFiber(handler))

	fa.app.Add(method, path, handlers...)
}

// Use adds global middleware
func (fa *FiberAdapter) Use(middleware web.MiddlewareFunc) {
	fa.app.Use(convertMiddlewareToFiber(middleware))
}

// Start starts the Fiber server
func (fa *FiberAdapter) Start(addr string) error {
	return fa.app.Listen(addr)
}

// Stop gracefully shuts down the Fiber server
func (fa *FiberAdapter) Stop(ctx context.Context) error {
	return fa.app.ShutdownWithContext(ctx)
}

// Name returns the adapter name
func (fa *FiberAdapter) Name() string {
	return "Fiber"
}

// GetApp returns the underlying Fiber app
func (fa *FiberAdapter) GetApp() *fiber.App {
	return fa.app
}

// convertHandlerToFiber converts a web handler to a Fiber handler
func convertHandlerToFiber(handler web.HandlerFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := handler(&FiberRequestContext{ctx: c}); err != nil {
			code, body := web.StatusAndBody(err)
			return c.Status(code).JSON(body)
		}
		return nil
	}
}

// convertMiddlewareToFiber converts a web middleware to a Fiber middleware
func convertMiddlewareToFiber(middleware web.MiddlewareFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return middleware(func(ctx web.RequestContext) error {
			return c.Next()
		})(&FiberRequestContext{ctx: c})
	}
}

// FiberRequestContext wraps fiber.Ctx to implement web.RequestContext
type FiberRequestContext struct {
	ctx *fiber.Ctx
}

// Context returns the user context of the request
func (frc *FiberRequestContext) Context() context.Context {
	return frc.ctx.UserContext()
}

// Method returns the HTTP method
func (frc *FiberRequestContext) Method() string {
	return frc.ctx.Method()
}

// Path returns the request path
func (frc *FiberRequestContext) Path() string {
	return utils.CopyString(frc.ctx.Path())
}

// RealIP returns the client IP
func (frc *FiberRequestContext) RealIP() string {
	return frc.ctx.IP()
}

// Header returns a request header
func (frc *FiberRequestContext) Header(key string) string {
	return utils.CopyString(frc.ctx.Get(key))
}

// QueryParam returns a query parameter. Fiber values are only valid during
// the request, so the result is copied.
func (frc *FiberRequestContext) QueryParam(key string) string {
	return utils.CopyString(frc.ctx.Query(key))
}

// Get retrieves data from the request locals
func (frc *FiberRequestContext) Get(key string) any {
	return frc.ctx.Locals(key)
}

// Set stores data in the request locals
func (frc *FiberRequestContext) Set(key string, val any) {
	frc.ctx.Locals(key, val)
}

// Response returns the response writer
func (frc *FiberRequestContext) Response() web.Response {
	return &FiberResponse{ctx: frc.ctx}
}

// FiberResponse wraps fiber.Ctx to implement web.Response
type FiberResponse struct {
	ctx *fiber.Ctx
}

// Status returns response status code
func (fr *FiberResponse) Status() int {
	return fr.ctx.Response().StatusCode()
}

// SetHeader sets response header
func (fr *FiberResponse) SetHeader(key, value string) {
	fr.ctx.Set(key, value)
}

// JSON writes JSON response
func (fr *FiberResponse) JSON(code int, v any) error {
	return fr.ctx.Status(code).JSON(v)
}

// HTML writes HTML response
func (fr *FiberResponse) HTML(code int, html string) error {
	fr.ctx.Status(code)
	fr.ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return fr.ctx.SendString(html)
}

// String writes string response
func (fr *FiberResponse) String(code int, s string) error {
	return fr.ctx.Status(code).SendString(s)
}

// Blob writes blob response
func (fr *FiberResponse) Blob(code int, contentType string, b []byte) error {
	fr.ctx.Status(code)
	fr.ctx.Set(fiber.HeaderContentType, contentType)
	return fr.ctx.Send(b)
}
