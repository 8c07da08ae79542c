// internals/middlewares/auth_middleware.go
package middlewares

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/configs"
	helper "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/helpers"
)

// Locals keys set for every authenticated request.
const (
	LocUserID  = "user_id"
	LocEmail   = "user_email"
	LocIsAdmin = "is_admin"
)

// AuthRequired parses the Bearer token and stores the caller identity in
// Locals. Every protected group mounts this.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		secret := configs.JWTSecret
		if secret == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		}); err != nil {
			log.Println("[ERROR] Token parse failed:", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		if err := validateExpiry(claims); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			log.Println("[ERROR] user_id claim:", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or missing user ID")
		}

		c.Locals(LocUserID, userID.String())
		if email, ok := claims["email"].(string); ok {
			c.Locals(LocEmail, email)
		}
		isAdmin, _ := claims["is_admin"].(bool)
		c.Locals(LocIsAdmin, isAdmin)

		return c.Next()
	}
}

// AdminOnly gates admin routes; mount after AuthRequired.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isAdmin, _ := c.Locals(LocIsAdmin).(bool); !isAdmin {
			return helper.JsonError(c, fiber.StatusForbidden, "You are not allowed to perform this action")
		}
		return c.Next()
	}
}

// GetUserID returns the authenticated caller's id from Locals.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocUserID).(string)
	if raw == "" {
		return uuid.Nil, errors.New("missing user_id in context")
	}
	return uuid.Parse(raw)
}

// IsAdmin reports the admin flag from Locals.
func IsAdmin(c *fiber.Ctx) bool {
	isAdmin, _ := c.Locals(LocIsAdmin).(bool)
	return isAdmin
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	const prefix = "Bearer "
	auth := c.Get("Authorization")
	if auth == "" || !strings.HasPrefix(auth, prefix) {
		return "", errors.New("Authorization header missing or malformed")
	}
	return strings.TrimSpace(auth[len(prefix):]), nil
}

func validateExpiry(claims jwt.MapClaims) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("missing exp claim")
	}
	if time.Now().After(time.Unix(int64(exp), 0)) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"].(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("missing user_id claim")
	}
	return uuid.Parse(raw)
}
