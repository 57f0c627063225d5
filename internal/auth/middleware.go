package auth

import (
	"errors"
	"fmt"
	"strings"

	"dispatchbase/internal/config"
	"dispatchbase/internal/models"
	"dispatchbase/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	CtxUserIDKey   = "user_id"
	CtxUsernameKey = "username"
	CtxUserRoleKey = "user_role"
)

func bearerToken(c *fiber.Ctx) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Missing Authorization header")
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Authorization must be 'Bearer <token>'")
	}
	return strings.TrimSpace(token), nil
}

// JWTMiddleware verifies the bearer token and reloads its user, so a
// deactivated account or a changed role takes effect before the token expires.
// The user's id, username and current role are stored in Locals.
func JWTMiddleware(cfg *config.Config, users *store.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := bearerToken(c)
		if err != nil {
			return err
		}

		claims := &JWTCustomClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		user, err := users.FindByID(claims.UserID)
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Account no longer exists")
		}
		if err != nil {
			return err
		}
		if !user.IsActive {
			logrus.WithField("user_id", user.ID).Warn("token used by deactivated account")
			return fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
		}

		c.Locals(CtxUserIDKey, user.ID)
		c.Locals(CtxUsernameKey, user.Username)
		c.Locals(CtxUserRoleKey, user.Role)
		return c.Next()
	}
}

// RequireRole lets the request through only for the listed roles. It must run
// after JWTMiddleware.
func RequireRole(allowedRoles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(CtxUserRoleKey).(models.UserRole)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Role unavailable")
		}

		for _, r := range allowedRoles {
			if r == role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Not permitted for this role")
	}
}
