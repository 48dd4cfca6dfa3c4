package service

import (
	"errors"
	"strings"

	"carmarket-service/model"

	"gorm.io/gorm"
)

// Send validates and persists a new message, then hands it to the notifier
// for real-time delivery. Persistence completes before any broadcast; a
// failed broadcast never rolls the message back.
func Send(db *gorm.DB, notifier Notifier, p Principal, listingID uint, content string, receiverID uint) (*Message, error) {
	if p.IsAdmin() {
		return nil, Forbidden("Administrators cannot send messages")
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, Validation("Message content is required")
	}

	var listing model.Listing
	if err := db.Unscoped().First(&listing, listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Listing not found")
		}
		return nil, err
	}
	if listing.DeletedAt.Valid {
		return nil, Forbidden("Cannot send a message for a deleted listing")
	}

	// First contact defaults to the listing owner. The owner replying must
	// name the buyer: a listing can carry several buyer threads at once.
	if receiverID == 0 {
		if p.ID == listing.UserID {
			return nil, Validation("receiverId is required when replying to a buyer")
		}
		receiverID = listing.UserID
	}
	if receiverID == p.ID {
		return nil, Validation("Cannot send a message to yourself")
	}

	var receiver model.User
	if err := db.First(&receiver, receiverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Receiver not found")
		}
		return nil, err
	}

	message := model.Message{
		Content:    content,
		SenderID:   p.ID,
		ReceiverID: receiverID,
		ListingID:  listingID,
	}
	if err := db.Create(&message).Error; err != nil {
		return nil, err
	}

	if err := db.
		Preload("Sender").
		Preload("Receiver").
		Preload("Listing", unscoped).
		Preload("Listing.User").
		First(&message, message.ID).Error; err != nil {
		return nil, err
	}

	view := NewMessageView(message)

	if notifier != nil {
		notifier.NewMessage(listingID, view)
	}

	return &view, nil
}
