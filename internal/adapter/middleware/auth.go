package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// Claims is what the login service puts in access tokens; this service only verifies them.
type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

type Identity struct {
	UserID uuid.UUID
	Admin  bool
}

// JWTAuth verifies an HS256 bearer token and stores the caller's Identity on the context.
func JWTAuth(secret string) echo.MiddlewareFunc {
	key := []byte(secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}

			var claims Claims
			_, err := jwt.ParseWithClaims(strings.TrimPrefix(auth, "Bearer "), &claims, func(t *jwt.Token) (any, error) {
				return key, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token subject"})
			}

			c.Set(identityKey, Identity{UserID: userID, Admin: claims.Admin})
			return next(c)
		}
	}
}

func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := IdentityFrom(c)
			if err != nil || !id.Admin {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

var ErrNoIdentity = errors.New("no identity on request")

func IdentityFrom(c echo.Context) (Identity, error) {
	id, ok := c.Get(identityKey).(Identity)
	if !ok {
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}

// SignToken issues a token the middleware accepts. Used by tests and local tooling.
func SignToken(secret string, userID uuid.UUID, admin bool, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
