package controller

import (
	"context"
	"time"

	"carmarket-service/catalog"
	"carmarket-service/config"
	"carmarket-service/database"

	"github.com/gofiber/fiber/v2"
)

const carsCacheKey = "cars:models"
const carsCacheTTL = 24 * time.Hour

func carsApiUrl() string {
	if url := config.Config("CARS_API_URL"); url != "" {
		return url
	}
	return "https://cars-base.ru/api/cars?full=1"
}

// CarModels proxies the external brand/model catalog, cached in redis for a
// day. The embedded table answers when the remote catalog is unreachable.
func CarModels(c *fiber.Ctx) error {
	cache := database.Redis[0]

	if cache != nil {
		if cached, err := cache.Get(context.Background(), carsCacheKey).Bytes(); err == nil {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(cached)
		}
	}

	code, body, errs := fiber.Get(carsApiUrl()).Bytes()
	if len(errs) > 0 || code != fiber.StatusOK {
		return c.JSON(catalog.Brands())
	}

	if cache != nil {
		cache.Set(context.Background(), carsCacheKey, body, carsCacheTTL)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}
