package service

import (
	"errors"
	"fmt"

	"carmarket-service/model"

	"gorm.io/gorm"
)

// Conversations derives the caller's conversation list from the flat message
// log. One conversation exists per (listing, counterparty) pair; the
// representative entry is the most recent message under that key. Listings are
// read through the soft-delete scope so threads on deleted listings stay
// visible.
func Conversations(db *gorm.DB, userID uint) ([]Message, error) {
	var rows []model.Message
	err := db.
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Preload("Sender").
		Preload("Receiver").
		Preload("Listing", unscoped).
		Preload("Listing.User").
		Preload("Listing.Images", orderedImages).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	// Rows are newest first, so the first row seen for a key is the
	// representative message. Grouping by listing alone would merge two
	// buyers of the same car into one thread.
	seen := make(map[string]bool, len(rows))
	conversations := make([]Message, 0, len(rows))
	for _, row := range rows {
		other := row.SenderID
		if other == userID {
			other = row.ReceiverID
		}
		key := fmt.Sprintf("%d-%d", row.ListingID, other)
		if seen[key] {
			continue
		}
		seen[key] = true
		conversations = append(conversations, NewMessageView(row))
	}

	return conversations, nil
}

// Thread returns the chronological message history between the caller and one
// specific counterparty about one listing, together with the listing's
// soft-delete status. A missing listing row is NotFound; a soft-deleted
// listing is a normal state for history viewing.
func Thread(db *gorm.DB, listingID uint, userID uint, otherID uint) ([]Message, *ListingStatus, error) {
	if otherID == 0 {
		return nil, nil, Validation("otherParticipantId is required")
	}

	var listing model.Listing
	if err := db.Unscoped().First(&listing, listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, NotFound("Listing not found")
		}
		return nil, nil, err
	}

	var rows []model.Message
	err := db.
		Where("listing_id = ?", listingID).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, otherID, otherID, userID).
		Order("created_at ASC, id ASC").
		Preload("Sender").
		Preload("Receiver").
		Preload("Listing", unscoped).
		Preload("Listing.User").
		Find(&rows).Error
	if err != nil {
		return nil, nil, err
	}

	messages := make([]Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, NewMessageView(row))
	}

	status := &ListingStatus{IsDeleted: listing.DeletedAt.Valid}
	if listing.DeletedAt.Valid {
		deletedAt := listing.DeletedAt.Time
		status.DeletedAt = &deletedAt
	}

	return messages, status, nil
}
