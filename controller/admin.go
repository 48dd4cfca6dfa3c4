package controller

import (
	"carmarket-service/database"
	"carmarket-service/event"
	"carmarket-service/model"
	"carmarket-service/service"
	"carmarket-service/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminUsers lists all registered users. Route access is enforced by the
// casbin RBAC middleware.
func AdminUsers(c *fiber.Ctx) error {
	var users []model.User
	if err := database.Postgres.Order("created_at DESC").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	views := make([]fiber.Map, 0, len(users))
	for _, user := range users {
		views = append(views, fiber.Map{
			"user": service.NewUserView(user),
			"role": user.Role,
		})
	}

	return c.JSON(views)
}

// AdminListingDelete soft-deletes any listing regardless of ownership.
func AdminListingDelete(c *fiber.Ctx) error {
	p := utils.Principal(c)

	id, ok := paramUint(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing id"})
	}

	if err := service.SoftDeleteListing(database.Postgres, p, id); err != nil {
		return respondError(c, err)
	}

	event.EmitJSON("backoffice", "listing.deleted", fiber.Map{"id": id, "by": p.ID})

	return c.JSON(fiber.Map{"message": "Listing deleted successfully"})
}
