package http

import (
	"net/http"
	"time"

	_ "foodies/internal/generated/docs"
	"foodies/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const BasePath = "/api/v1"

type RouterConfig struct {
	// RateLimit is the per-client request rate across the API. Zero disables
	// limiting.
	RateLimit float64
	// VerifyRateLimit applies to payment verification on top of RateLimit.
	VerifyRateLimit float64
}

// NewRouter wires the API, live updates, health check and API docs onto a
// new echo instance.
func NewRouter(
	cfg RouterConfig,
	server *Server,
	live *LiveUpdates,
	auth *Authenticator,
	log *zap.Logger,
) (*echo.Echo, error) {
	if log == nil {
		log = zap.NewNop()
	}

	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc, BasePath)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(log)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(log.Named("access")))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(BasePath, auth.Middleware())
	if cfg.RateLimit > 0 {
		api.Use(rateLimiter(cfg.RateLimit))
	}

	api.GET("/ws/:topic", live.Handle)

	api.Use(validator)
	if cfg.VerifyRateLimit > 0 {
		api.Use(verifyRateLimiter(cfg.VerifyRateLimit))
	}
	servers.RegisterHandlers(api, server)

	return e, nil
}

func rateLimiter(rps float64) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(rps),
		Burst:     int(rps * 2),
		ExpiresIn: 3 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store:               store,
		IdentifierExtractor: clientIdentity,
	})
}

// verifyRateLimiter throttles signature verification per client, which is
// the endpoint signatures can be guessed against.
func verifyRateLimiter(rps float64) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(rps),
		Burst:     max(1, int(rps)),
		ExpiresIn: 3 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path != BasePath+"/payments/verify"
		},
		Store:               store,
		IdentifierExtractor: clientIdentity,
	})
}

// clientIdentity keys rate limits by principal, falling back to the client IP.
func clientIdentity(c echo.Context) (string, error) {
	if p := principalFrom(c); p.ID() != "" {
		return "principal:" + p.String(), nil
	}
	return "ip:" + c.RealIP(), nil
}
