package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/wastemap/collection-api/internal/core/domain"
)

// principalKey is the echo context key the resolved principal is stored
// under. Everything past this middleware works with an explicit
// domain.Principal, never with raw claims.
const principalKey = "principal"

// Auth validates the JWT and injects the resolved principal into context.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			id, _ := claims["sub"].(string)
			role, _ := claims["role"].(string)
			name, _ := claims["name"].(string)
			email, _ := claims["email"].(string)
			if id == "" || !domain.Role(role).Valid() {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing identity claims")
			}

			c.Set(principalKey, domain.Principal{
				ID:    id,
				Role:  domain.Role(role),
				Name:  name,
				Email: email,
			})

			return next(c)
		}
	}
}

// Principal extracts the principal injected by Auth. The bool is false when
// the middleware did not run (or rejected the request).
func Principal(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}
