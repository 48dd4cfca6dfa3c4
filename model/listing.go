package model

import "gorm.io/gorm"

// Listing is a vehicle post. The gorm.Model DeletedAt column carries the
// soft-delete state: deleted listings stay addressable for existing
// conversations and favorites but drop out of default-scoped queries.
type Listing struct {
	gorm.Model
	Title        string  `gorm:"not null" json:"title"`
	Description  string  `gorm:"not null" json:"description"`
	Price        float64 `gorm:"not null" json:"price"`
	Brand        string  `gorm:"not null;index" json:"brand"`
	CarModel     string  `gorm:"not null;index" json:"model"`
	Year         int     `gorm:"not null" json:"year"`
	Mileage      int     `gorm:"not null" json:"mileage"`
	FuelType     string  `gorm:"not null" json:"fuelType"`
	Transmission string  `gorm:"not null" json:"transmission"`
	Color        string  `gorm:"not null" json:"color"`
	Location     string  `gorm:"not null" json:"location"`
	UserID       uint    `gorm:"not null;index"`
	User         User    `gorm:"foreignKey:UserID" json:"user"`

	Images []ListingImage `gorm:"foreignKey:ListingID" json:"images"`
}

// ListingImage keeps one uploaded photo reference; Position preserves the
// order the seller uploaded them in.
type ListingImage struct {
	gorm.Model
	ListingID uint   `gorm:"not null;index"`
	URL       string `gorm:"not null" json:"url"`
	Position  int    `gorm:"not null" json:"position"`
}

// Favorite is a (user, listing) pairing, unique per pair.
type Favorite struct {
	gorm.Model
	UserID    uint    `gorm:"not null;uniqueIndex:idx_favorite_user_listing"`
	ListingID uint    `gorm:"not null;uniqueIndex:idx_favorite_user_listing"`
	User      User    `gorm:"foreignKey:UserID" json:"user"`
	Listing   Listing `gorm:"foreignKey:ListingID" json:"listing"`
}
