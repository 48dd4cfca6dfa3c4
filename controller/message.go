package controller

import (
	"carmarket-service/database"
	"carmarket-service/event"
	"carmarket-service/service"
	"carmarket-service/utils"

	"github.com/gofiber/fiber/v2"
)

type SendMessageInput struct {
	Content    string `json:"content"`
	ReceiverID uint   `json:"receiverId"`
}

// MessageConversations lists the caller's conversations, one entry per
// (listing, counterparty), newest first.
func MessageConversations(c *fiber.Ctx) error {
	p := utils.Principal(c)

	conversations, err := service.Conversations(database.Postgres, p.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(conversations)
}

// MessageThread returns the chronological history of one (listing,
// counterparty) thread plus the listing's soft-delete status.
func MessageThread(c *fiber.Ctx) error {
	p := utils.Principal(c)

	listingID, ok := paramUint(c, "listingId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing id"})
	}
	otherID := queryUint(c, "otherParticipantId")

	messages, status, err := service.Thread(database.Postgres, listingID, p.ID, otherID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data":          messages,
		"listingStatus": status,
	})
}

// MessageSend persists a new message and broadcasts it to the listing's chat
// room after the write commits.
func MessageSend(c *fiber.Ctx) error {
	p := utils.Principal(c)

	listingID, ok := paramUint(c, "listingId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing id"})
	}

	input := new(SendMessageInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Review your input"})
	}

	message, err := service.Send(database.Postgres, MessageNotifier, p, listingID, input.Content, input.ReceiverID)
	if err != nil {
		return respondError(c, err)
	}

	event.EmitJSON("backoffice", "message.sent", message)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": message})
}
