package service

import (
	"errors"
	"strings"

	"carmarket-service/model"

	"gorm.io/gorm"
)

type ListingInput struct {
	Title        string  `json:"title" form:"title"`
	Description  string  `json:"description" form:"description"`
	Price        float64 `json:"price" form:"price"`
	Brand        string  `json:"brand" form:"brand"`
	CarModel     string  `json:"model" form:"model"`
	Year         int     `json:"year" form:"year"`
	Mileage      int     `json:"mileage" form:"mileage"`
	FuelType     string  `json:"fuelType" form:"fuelType"`
	Transmission string  `json:"transmission" form:"transmission"`
	Color        string  `json:"color" form:"color"`
	Location     string  `json:"location" form:"location"`
}

// ListingUpdate carries the whitelisted, optional fields of a PATCH.
type ListingUpdate struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Brand        *string  `json:"brand"`
	CarModel     *string  `json:"model"`
	Year         *int     `json:"year"`
	Mileage      *int     `json:"mileage"`
	FuelType     *string  `json:"fuelType"`
	Transmission *string  `json:"transmission"`
	Color        *string  `json:"color"`
	Location     *string  `json:"location"`
}

type ListingFilters struct {
	Brand        string
	CarModel     string
	MinPrice     float64
	MaxPrice     float64
	MinYear      int
	MaxYear      int
	FuelType     string
	Transmission string
	Location     string
}

// CreateListing stores a new vehicle post with its ordered image references.
// Admins cannot own listings.
func CreateListing(db *gorm.DB, p Principal, input ListingInput, imageURLs []string) (*Listing, error) {
	if p.IsAdmin() {
		return nil, Forbidden("Administrators cannot create listings")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, Validation("Title is required")
	}
	if input.Price <= 0 {
		return nil, Validation("Price must be positive")
	}
	if input.Brand == "" || input.CarModel == "" {
		return nil, Validation("Brand and model are required")
	}
	if len(imageURLs) == 0 {
		return nil, Validation("No images uploaded")
	}

	listing := model.Listing{
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		Brand:        input.Brand,
		CarModel:     input.CarModel,
		Year:         input.Year,
		Mileage:      input.Mileage,
		FuelType:     input.FuelType,
		Transmission: input.Transmission,
		Color:        input.Color,
		Location:     input.Location,
		UserID:       p.ID,
	}
	for i, url := range imageURLs {
		listing.Images = append(listing.Images, model.ListingImage{URL: url, Position: i})
	}

	if err := db.Create(&listing).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("User").Preload("Images", orderedImages).First(&listing, listing.ID).Error; err != nil {
		return nil, err
	}

	view := NewListingView(listing)
	return &view, nil
}

// Listings returns active listings newest first, narrowed by the filters.
// Soft-deleted rows never appear here.
func Listings(db *gorm.DB, f ListingFilters) ([]Listing, error) {
	tx := db.
		Preload("User").
		Preload("Images", orderedImages).
		Order("created_at DESC")

	if f.Brand != "" {
		tx = tx.Where("brand = ?", f.Brand)
	}
	if f.CarModel != "" {
		tx = tx.Where("car_model = ?", f.CarModel)
	}
	if f.FuelType != "" {
		tx = tx.Where("fuel_type = ?", f.FuelType)
	}
	if f.Transmission != "" {
		tx = tx.Where("transmission = ?", f.Transmission)
	}
	if f.Location != "" {
		tx = tx.Where("location = ?", f.Location)
	}
	if f.MinPrice > 0 {
		tx = tx.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		tx = tx.Where("price <= ?", f.MaxPrice)
	}
	if f.MinYear > 0 {
		tx = tx.Where("year >= ?", f.MinYear)
	}
	if f.MaxYear > 0 {
		tx = tx.Where("year <= ?", f.MaxYear)
	}

	var rows []model.Listing
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	listings := make([]Listing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, NewListingView(row))
	}
	return listings, nil
}

// GetListing resolves one listing by id, soft-deleted included: an existing
// conversation or favorite may still address it.
func GetListing(db *gorm.DB, id uint) (*Listing, error) {
	var listing model.Listing
	err := db.Unscoped().
		Preload("User").
		Preload("Images", orderedImages).
		First(&listing, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Listing not found")
		}
		return nil, err
	}

	view := NewListingView(listing)
	return &view, nil
}

// UpdateListing applies the non-nil fields of a PATCH. Owner only; deleted
// listings cannot be edited.
func UpdateListing(db *gorm.DB, p Principal, id uint, update ListingUpdate) (*Listing, error) {
	var listing model.Listing
	if err := db.First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("Listing not found")
		}
		return nil, err
	}
	if listing.UserID != p.ID {
		return nil, Forbidden("Not authorized")
	}

	if update.Title != nil {
		listing.Title = *update.Title
	}
	if update.Description != nil {
		listing.Description = *update.Description
	}
	if update.Price != nil {
		listing.Price = *update.Price
	}
	if update.Brand != nil {
		listing.Brand = *update.Brand
	}
	if update.CarModel != nil {
		listing.CarModel = *update.CarModel
	}
	if update.Year != nil {
		listing.Year = *update.Year
	}
	if update.Mileage != nil {
		listing.Mileage = *update.Mileage
	}
	if update.FuelType != nil {
		listing.FuelType = *update.FuelType
	}
	if update.Transmission != nil {
		listing.Transmission = *update.Transmission
	}
	if update.Color != nil {
		listing.Color = *update.Color
	}
	if update.Location != nil {
		listing.Location = *update.Location
	}

	if err := db.Save(&listing).Error; err != nil {
		return nil, err
	}
	if err := db.Preload("User").Preload("Images", orderedImages).First(&listing, listing.ID).Error; err != nil {
		return nil, err
	}

	view := NewListingView(listing)
	return &view, nil
}

// SoftDeleteListing marks a listing deleted. Owner or admin; deletion is
// monotonic, deleting an already-deleted listing is a no-op.
func SoftDeleteListing(db *gorm.DB, p Principal, id uint) error {
	var listing model.Listing
	if err := db.Unscoped().First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Listing not found")
		}
		return err
	}
	if listing.UserID != p.ID && !p.IsAdmin() {
		return Forbidden("Not authorized to delete this listing")
	}
	if listing.DeletedAt.Valid {
		return nil
	}

	return db.Delete(&listing).Error
}

// PermanentDeleteListing purges the listing's favorite rows and marks the
// listing deleted in one transaction. Messages are retained.
func PermanentDeleteListing(db *gorm.DB, p Principal, id uint) error {
	var listing model.Listing
	if err := db.Unscoped().First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Listing not found")
		}
		return err
	}
	if listing.UserID != p.ID {
		return Forbidden("Not authorized to delete this listing")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("listing_id = ?", id).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		if listing.DeletedAt.Valid {
			return nil
		}
		return tx.Delete(&listing).Error
	})
}

// UserListings returns all of a user's own posts, deleted ones included, so
// owners can still reach the permanent-delete path.
func UserListings(db *gorm.DB, userID uint) ([]Listing, error) {
	var rows []model.Listing
	err := db.Unscoped().
		Where("user_id = ?", userID).
		Preload("User").
		Preload("Images", orderedImages).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	listings := make([]Listing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, NewListingView(row))
	}
	return listings, nil
}
