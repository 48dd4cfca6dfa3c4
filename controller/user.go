package controller

import (
	"carmarket-service/database"
	"carmarket-service/model"
	"carmarket-service/service"
	"carmarket-service/utils"

	"github.com/gofiber/fiber/v2"
)

// UserUpdateInput whitelists the mutable profile fields.
type UserUpdateInput struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
}

func UserProfile(c *fiber.Ctx) error {
	p := utils.Principal(c)

	user := new(model.User)
	if err := database.Postgres.First(&user, p.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.JSON(fiber.Map{
		"user": service.NewUserView(*user),
		"role": user.Role,
		"2fa":  user.Otp_enabled,
	})
}

func UserUpdate(c *fiber.Ctx) error {
	p := utils.Principal(c)

	input := new(UserUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid updates"})
	}

	user := new(model.User)
	if err := database.Postgres.First(&user, p.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}

	if err := database.Postgres.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.JSON(service.NewUserView(*user))
}
