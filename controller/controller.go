package controller

import (
	"errors"
	"log"
	"strconv"

	"carmarket-service/service"
	"carmarket-service/socketio"

	"github.com/gofiber/fiber/v2"
)

// MessageNotifier fans freshly persisted messages out to the chat rooms.
// Package-level so tests can substitute a recorder.
var MessageNotifier service.Notifier = socketio.ChatNotifier{}

func respondError(c *fiber.Ctx, err error) error {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		return c.Status(svcErr.Status).JSON(fiber.Map{"error": svcErr.Message})
	}

	log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}

func paramUint(c *fiber.Ctx, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(value), true
}

func queryUint(c *fiber.Ctx, name string) uint {
	value, _ := strconv.ParseUint(c.Query(name), 10, 64)
	return uint(value)
}

func queryInt(c *fiber.Ctx, name string) int {
	value, _ := strconv.Atoi(c.Query(name))
	return value
}

func queryFloat(c *fiber.Ctx, name string) float64 {
	value, _ := strconv.ParseFloat(c.Query(name), 64)
	return value
}
