package auth

import (
	"errors"
	"strings"

	"dispatchbase/internal/config"
	"dispatchbase/internal/models"
	"dispatchbase/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type RegisterAdminRequest struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterAdminHandler creates the first admin account. It refuses once any
// admin exists.
func RegisterAdminHandler(users *store.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterAdminRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Username = strings.TrimSpace(body.Username)
		body.FullName = strings.TrimSpace(body.FullName)
		if body.Username == "" || body.Password == "" || body.FullName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Username, full name and password are required")
		}

		count, err := users.CountByRole(models.RoleAdmin)
		if err != nil {
			logrus.WithError(err).Error("count admins")
			return fiber.NewError(fiber.StatusInternalServerError, "Could not check existing admins")
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusForbidden, "An admin already exists")
		}

		hash, err := HashPassword(body.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not hash password")
		}

		user := models.User{
			Username:     body.Username,
			FullName:     body.FullName,
			PasswordHash: hash,
			Role:         models.RoleAdmin,
			IsActive:     true,
		}
		if _, err := users.Create(&user); err != nil {
			logrus.WithError(err).Error("create admin")
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create user")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		})
	}
}

func LoginHandler(cfg *config.Config, users *store.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		body.Username = strings.TrimSpace(body.Username)

		user, err := users.FindByUsername(body.Username)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				logrus.WithError(err).Error("login lookup")
			}
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
		}
		if !CheckPassword(user.PasswordHash, body.Password) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
		}
		if !user.IsActive {
			return fiber.NewError(fiber.StatusForbidden, "Account is inactive")
		}

		token, err := GenerateToken(cfg.JWTSecret, user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not issue token")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":        user.ID,
				"username":  user.Username,
				"full_name": user.FullName,
				"role":      user.Role,
			},
		})
	}
}

// MeHandler returns the caller's profile as loaded by JWTMiddleware.
func MeHandler(users *store.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals(CtxUserIDKey).(uint)

		user, err := users.FindByID(userID)
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Account no longer exists")
		}
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"user_id":   user.ID,
			"username":  user.Username,
			"full_name": user.FullName,
			"role":      user.Role,
			"is_active": user.IsActive,
		})
	}
}
