package http

import (
	"net/http"
	"strings"

	"foodies/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// RequestValidator checks request parameters and bodies against the API
// document before they reach a handler. Requests for paths the document does
// not describe pass through untouched.
func RequestValidator(doc *openapi3.T, basePath string) (echo.MiddlewareFunc, error) {
	doc.Servers = nil

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         false,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			probe := req.Clone(req.Context())
			probe.URL.Path = strings.TrimPrefix(req.URL.Path, basePath)

			route, params, err := router.FindRoute(probe)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    probe,
				PathParams: params,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: validationMessage(err),
				})
			}

			// ValidateRequest replaces the body it consumed.
			req.Body = probe.Body
			return next(ctx)
		}
	}, nil
}

func validationMessage(err error) string {
	switch e := err.(type) {
	case *openapi3filter.RequestError:
		return e.Error()
	case *openapi3filter.SecurityRequirementsError:
		return "security requirements failed"
	case *routers.RouteError:
		return e.Reason
	default:
		return err.Error()
	}
}
