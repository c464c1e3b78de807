package controllers

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/toyz/axonscan/pkg/web"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID assigns every request an id, reusing the caller's X-Request-ID
// when present
func RequestID() web.MiddlewareFunc {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx web.RequestContext) error {
			id := ctx.Header(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			ctx.Set(requestIDKey, id)
			ctx.Response().SetHeader(RequestIDHeader, id)
			return next(ctx)
		}
	}
}

// RequestIDFrom returns the id assigned by RequestID, or ""
func RequestIDFrom(ctx web.RequestContext) string {
	id, _ := ctx.Get(requestIDKey).(string)
	return id
}

// AccessLog logs one line per request after it has been handled
func AccessLog(logger *zap.Logger) web.MiddlewareFunc {
	logger = logger.Named("http")
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx web.RequestContext) error {
			start := time.Now()
			err := next(ctx)

			fields := []zap.Field{
				zap.String("method", ctx.Method()),
				zap.String("path", ctx.Path()),
				zap.Int("status", ctx.Response().Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("remote_ip", ctx.RealIP()),
				zap.String("request_id", RequestIDFrom(ctx)),
			}
			if err != nil {
				logger.Warn("request failed", append(fields, zap.Error(err))...)
			} else {
				logger.Info("request", fields...)
			}
			return err
		}
	}
}
