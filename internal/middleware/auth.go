package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/rentpal/admin-backend/internal/config"
	"github.com/rentpal/admin-backend/internal/dto"
)

// JWTProtected guards admin routes with the bearer token issued by the
// sign-in endpoint.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}
