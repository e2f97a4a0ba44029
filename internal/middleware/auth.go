package middleware

import (
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/config"
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JWTProtected requires a bearer token signed with JWT_SECRET. With no
// secret configured the API stays open and the handler is a pass-through.
func JWTProtected(cfg *config.Config) fiber.Handler {
	if cfg.JWTSecret == "" {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// Subject returns the sub claim of the verified token, if the request carried one.
func Subject(c *fiber.Ctx) (string, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return "", false
	}
	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", false
	}
	return sub, true
}

// CanAccessSubject reports whether the caller may act on sub. Requests
// without a verified token are allowed; auth is enforced by JWTProtected.
func CanAccessSubject(c *fiber.Ctx, sub string) bool {
	tokenSub, ok := Subject(c)
	if !ok {
		return true
	}
	return tokenSub == sub
}
