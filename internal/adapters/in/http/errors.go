package http

import (
	"errors"
	"net/http"

	"foodies/internal/generated/servers"
	"foodies/internal/pkg/errs"
	"foodies/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusOf maps an application error to the HTTP status it is reported with.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errs.IsValidation(err), errors.Is(err, errs.ErrSignatureMismatch):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrProvider):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError reports err as a servers.Error. Server-side failures are logged
// and their details are not echoed to the client.
func (s *Server) writeError(ctx echo.Context, err error) error {
	code := statusOf(err)
	message := err.Error()

	if code >= http.StatusInternalServerError {
		logger.FromCtx(ctx.Request().Context(), s.log).Error("request failed",
			zap.String("path", ctx.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

// ErrorHandler renders echo's own errors (routing, binding, middleware) in
// the servers.Error shape.
func ErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else {
			logger.FromCtx(ctx.Request().Context(), log).Error("unhandled error", zap.Error(err))
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, servers.Error{Code: code, Message: message})
		}
		if err != nil {
			log.Warn("failed to write error response", zap.Error(err))
		}
	}
}
