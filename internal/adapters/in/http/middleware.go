package http

import (
	"time"

	"foodies/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogger puts the request id set by echo's RequestID middleware into
// the request context and logs every request once it is served.
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			req := ctx.Request()
			requestID := ctx.Response().Header().Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = req.Header.Get(echo.HeaderXRequestID)
			}
			reqCtx := logger.WithRequestID(req.Context(), requestID)
			ctx.SetRequest(req.WithContext(reqCtx))

			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", ctx.Path()),
				zap.Int("status", ctx.Response().Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("remote_ip", ctx.RealIP()),
			}
			requestLog := logger.FromCtx(reqCtx, log)
			if ctx.Response().Status >= 500 {
				requestLog.Error("request served", fields...)
			} else {
				requestLog.Info("request served", fields...)
			}

			return nil
		}
	}
}
