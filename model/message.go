package model

import "gorm.io/gorm"

// Message is one entry in the flat message log. Conversations are not stored:
// they are derived at query time from (ListingID, counterparty). Messages are
// immutable once created and survive listing deletion.
type Message struct {
	gorm.Model
	Content    string  `gorm:"not null" json:"content"`
	SenderID   uint    `gorm:"not null;index" json:"senderId"`
	ReceiverID uint    `gorm:"not null;index" json:"receiverId"`
	ListingID  uint    `gorm:"not null;index" json:"listingId"`
	Sender     User    `gorm:"foreignKey:SenderID" json:"sender"`
	Receiver   User    `gorm:"foreignKey:ReceiverID" json:"receiver"`
	Listing    Listing `gorm:"foreignKey:ListingID" json:"listing"`
}
