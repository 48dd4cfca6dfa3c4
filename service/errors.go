package service

import "github.com/gofiber/fiber/v2"

// Error is a service failure carrying the HTTP status it maps to.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(message string) *Error {
	return &Error{Status: fiber.StatusNotFound, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: fiber.StatusForbidden, Message: message}
}

func Validation(message string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Message: message}
}
