package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// OTP rejects tokens that still await 2FA validation.
func OTP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user").(*jwt.Token)
		claims := user.Claims.(jwt.MapClaims)

		if claims["otp"].(bool) {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{
					"error": "2FA required",
				})
		}

		return c.Next()
	}
}
