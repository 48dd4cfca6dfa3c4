package middleware

import (
	"carmarket-service/config"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

func JWT() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS512",
			Key:    []byte(config.Config("JWT_ACCESS_KEY")),
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if err.Error() == "Missing or malformed JWT" {
				return c.Status(fiber.StatusUnauthorized).
					JSON(fiber.Map{
						"error": "Missing or malformed JWT",
					})
			}
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{
					"error": "Invalid or expired JWT",
				})
		},
	})
}
