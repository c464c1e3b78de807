package adapters

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/toyz/axonscan/pkg/web"
)

// GinAdapter implements web.Server for the Gin framework
type GinAdapter struct {
	engine *gin.Engine

	mu     sync.Mutex
	server *http.Server
}

// NewGinAdapter creates a new Gin adapter
func NewGinAdapter(g *gin.Engine) *GinAdapter {
	return &GinAdapter{engine: g}
}

// NewDefaultGinAdapter creates a new Gin adapter with panic recovery. Request
// logging is left to web middleware.
func NewDefaultGinAdapter() *GinAdapter {
	engine := gin.New()
	engine.Use(gin.Recovery())
	return &GinAdapter{engine: engine}
}

// RegisterRoute registers a route with the Gin server
func (ga *GinAdapter) RegisterRoute(method, path string, handler web.HandlerFunc, middlewares ...web.MiddlewareFunc) {
	var handlers []gin.HandlerFunc
	for _, middleware := range middlewares {
		handlers = append(handlers, ga.convertMiddleware(middleware))
	}
	handlers = append(handlers, ga.convertHandler(handler))

	ga.engine.Handle(method, path, handlers...)
}

// Use registers a global middleware with the Gin server
func (ga *GinAdapter) Use(middleware web.MiddlewareFunc) {
	ga.engine.Use(ga.convertMiddleware(middleware))
}

// Start serves the engine through an http.Server so that Stop can shut it
// down gracefully
func (ga *GinAdapter) Start(addr string) error {
	ga.mu.Lock()
	ga.server = &http.Server{Addr: addr, Handler: ga.engine}
	server := ga.server
	ga.mu.Unlock()

	return server.ListenAndServe()
}

// Stop gracefully shuts the server down
func (ga *GinAdapter) Stop(ctx context.Context) error {
	ga.mu.Lock()
	server := ga.server
	ga.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}

// Name returns the adapter name
func (ga *GinAdapter) Name() string {
	return "Gin"
}

// GetEngine returns the underlying Gin engine
func (ga *GinAdapter) GetEngine() *gin.Engine {
	return ga.engine
}

// convertHandler converts web.HandlerFunc to gin.HandlerFunc
func (ga *GinAdapter) convertHandler(handler web.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := handler(&GinRequestContext{ctx: c}); err != nil {
			if c.Writer.Written() {
				return
			}
			code, body := web.StatusAndBody(err)
			c.JSON(code, body)
		}
	}
}

// convertMiddleware converts web.MiddlewareFunc to gin.HandlerFunc
func (ga *GinAdapter) convertMiddleware(middleware web.MiddlewareFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		next := func(rc web.RequestContext) error {
			c.Next()
			return nil
		}

		if err := middleware(next)(&GinRequestContext{ctx: c}); err != nil {
			code, body := web.StatusAndBody(err)
			c.AbortWithStatusJSON(code, body)
		}
	}
}

// GinRequestContext implements web.RequestContext for Gin
type GinRequestContext struct {
	ctx *gin.Context
}

// Context returns the request context
func (grc *GinRequestContext) Context() context.Context {
	return grc.ctx.Request.Context()
}

// Method returns the HTTP method
func (grc *GinRequestContext) Method() string {
	return grc.ctx.Request.Method
}

// Path returns the request path
func (grc *GinRequestContext) Path() string {
	return grc.ctx.Request.URL.Path
}

// RealIP returns the real IP address
func (grc *GinRequestContext) RealIP() string {
	return grc.ctx.ClientIP()
}

// Header returns a request header
func (grc *GinRequestContext) Header(key string) string {
	return grc.ctx.GetHeader(key)
}

// QueryParam returns a query parameter
func (grc *GinRequestContext) QueryParam(name string) string {
	return grc.ctx.Query(name)
}

// Get retrieves data from context
func (grc *GinRequestContext) Get(key string) any {
	value, _ := grc.ctx.Get(key)
	return value
}

// Set stores data in context
func (grc *GinRequestContext) Set(key string, val any) {
	grc.ctx.Set(key, val)
}

// Response returns the response writer
func (grc *GinRequestContext) Response() web.Response {
	return &GinResponse{ctx: grc.ctx}
}

// GinResponse implements web.Response for Gin
type GinResponse struct {
	ctx *gin.Context
}

// Status returns response status code
func (gr *GinResponse) Status() int {
	return gr.ctx.Writer.Status()
}

// SetHeader sets response header
func (gr *GinResponse) SetHeader(key, value string) {
	gr.ctx.Header(key, value)
}

// JSON writes JSON response
func (gr *GinResponse) JSON(code int, v any) error {
	gr.ctx.JSON(code, v)
	return nil
}

// HTML writes HTML response
func (gr *GinResponse) HTML(code int, html string) error {
	gr.ctx.Data(code, "text/html; charset=utf-8", []byte(html))
	return nil
}

// String writes string response
func (gr *GinResponse) String(code int, s string) error {
	gr.ctx.String(code, "%s", s)
	return nil
}

// Blob writes blob response
func (gr *GinResponse) Blob(code int, contentType string, b []byte) error {
	gr.ctx.Data(code, contentType, b)
	return nil
}
