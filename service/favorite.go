package service

import (
	"errors"

	"carmarket-service/model"

	"gorm.io/gorm"
)

// AddFavorite pairs the caller with a listing. Idempotent: favoriting twice is
// a no-op. Soft-deleted listings reject new favorites, own listings and admin
// callers are rejected outright.
func AddFavorite(db *gorm.DB, p Principal, listingID uint) error {
	if p.IsAdmin() {
		return Forbidden("Administrators cannot favorite listings")
	}

	var listing model.Listing
	if err := db.First(&listing, listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Listing not found")
		}
		return err
	}
	if listing.UserID == p.ID {
		return Validation("You cannot add your own listing to favorites")
	}

	if count := db.
		Where("user_id = ? AND listing_id = ?", p.ID, listingID).
		First(new(model.Favorite)).
		RowsAffected; count > 0 {
		return nil
	}

	return db.Create(&model.Favorite{UserID: p.ID, ListingID: listingID}).Error
}

// RemoveFavorite destroys the pairing if present; removing a non-favorite is a
// no-op.
func RemoveFavorite(db *gorm.DB, p Principal, listingID uint) error {
	return db.Unscoped().
		Where("user_id = ? AND listing_id = ?", p.ID, listingID).
		Delete(&model.Favorite{}).Error
}

// Favorites lists the caller's favorited listings newest first. Soft-deleted
// listings stay visible here; their deletedAt tells the client to render them
// as inactive.
func Favorites(db *gorm.DB, userID uint) ([]Listing, error) {
	var rows []model.Favorite
	err := db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("Listing", unscoped).
		Preload("Listing.User").
		Preload("Listing.Images", orderedImages).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	listings := make([]Listing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, NewListingView(row.Listing))
	}
	return listings, nil
}
