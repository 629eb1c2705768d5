package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"foodies/internal/core/domain/model/kernel"
	"foodies/internal/generated/servers"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// Claims is the token payload: the subject is the principal id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator turns HS256 bearer tokens into kernel.Principal values.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// Issue signs a token for p that is valid for ttl.
func (a *Authenticator) Issue(p kernel.Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: p.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Parse validates token and returns the principal it names. SYSTEM tokens
// are refused: that role is reserved for in-process callers.
func (a *Authenticator) Parse(token string) (kernel.Principal, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return kernel.Principal{}, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return kernel.Principal{}, errors.New("invalid token")
	}

	role, err := kernel.ParseRole(claims.Role)
	if err != nil {
		return kernel.Principal{}, err
	}
	if role == kernel.RoleSystem {
		return kernel.Principal{}, errors.New("system role cannot be claimed")
	}

	return kernel.NewPrincipal(claims.Subject, role)
}

// Middleware rejects requests without a valid token. The token is read from
// the Authorization header, or from the "token" query parameter for
// WebSocket upgrades, which browsers cannot send headers with.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := bearerToken(ctx.Request())
			if token == "" {
				return unauthorized(ctx, "missing bearer token")
			}

			principal, err := a.Parse(token)
			if err != nil {
				return unauthorized(ctx, "invalid token")
			}

			ctx.Set(principalKey, principal)
			return next(ctx)
		}
	}
}

func bearerToken(r *http.Request) string {
	if header := r.Header.Get(echo.HeaderAuthorization); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}
	return r.URL.Query().Get("token")
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{Code: http.StatusUnauthorized, Message: message})
}

// principalFrom returns the principal set by Middleware, or the zero
// principal, which every command rejects.
func principalFrom(ctx echo.Context) kernel.Principal {
	p, _ := ctx.Get(principalKey).(kernel.Principal)
	return p
}
