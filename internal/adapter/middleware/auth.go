package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// UserIDKey is where the authenticated user id lands on the echo context.
const UserIDKey = "user_id"

// JWTAuth verifies a Bearer token (HS256) and attaches the subject claim as
// the owner id. Handlers downstream never see the token itself.
func JWTAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			raw = strings.TrimSpace(raw)
			if !ok || raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Unauthorized: No authentication token provided",
					"code":  "NO_TOKEN",
				})
			}

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !tok.Valid {
				code, msg := "INVALID_TOKEN", "Unauthorized: Invalid token"
				switch {
				case errors.Is(err, jwt.ErrTokenExpired):
					code, msg = "EXPIRED_TOKEN", "Unauthorized: Token has expired"
				case errors.Is(err, jwt.ErrTokenMalformed):
					code, msg = "MALFORMED_TOKEN", "Unauthorized: Malformed authentication token"
				}
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": msg, "code": code})
			}

			sub, err := tok.Claims.GetSubject()
			if err != nil || sub == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Unauthorized: Token has no subject",
					"code":  "INVALID_TOKEN",
				})
			}

			c.Set(UserIDKey, sub)
			return next(c)
		}
	}
}
