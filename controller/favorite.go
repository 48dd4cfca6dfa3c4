package controller

import (
	"carmarket-service/database"
	"carmarket-service/service"
	"carmarket-service/utils"

	"github.com/gofiber/fiber/v2"
)

func FavoriteAdd(c *fiber.Ctx) error {
	p := utils.Principal(c)

	id, ok := paramUint(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing id"})
	}

	if err := service.AddFavorite(database.Postgres, p, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Added to favorites"})
}

func FavoriteRemove(c *fiber.Ctx) error {
	p := utils.Principal(c)

	id, ok := paramUint(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing id"})
	}

	if err := service.RemoveFavorite(database.Postgres, p, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Removed from favorites"})
}

func FavoriteList(c *fiber.Ctx) error {
	p := utils.Principal(c)

	listings, err := service.Favorites(database.Postgres, p.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(listings)
}
