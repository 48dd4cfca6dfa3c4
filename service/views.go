package service

import (
	"time"

	"carmarket-service/catalog"
	"carmarket-service/model"

	"gorm.io/gorm"
)

// View structs shape the JSON the API and the socket channel share.

type User struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type Listing struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	Brand        string     `json:"brand"`
	BrandName    string     `json:"brandName"`
	CarModel     string     `json:"model"`
	ModelName    string     `json:"modelName"`
	Year         int        `json:"year"`
	Mileage      int        `json:"mileage"`
	FuelType     string     `json:"fuelType"`
	Transmission string     `json:"transmission"`
	Color        string     `json:"color"`
	Location     string     `json:"location"`
	Images       []string   `json:"images"`
	UserID       uint       `json:"userId"`
	User         User       `json:"user"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"deletedAt"`
}

type Message struct {
	ID         uint      `json:"id"`
	Content    string    `json:"content"`
	SenderID   uint      `json:"senderId"`
	ReceiverID uint      `json:"receiverId"`
	ListingID  uint      `json:"listingId"`
	CreatedAt  time.Time `json:"createdAt"`
	Sender     User      `json:"sender"`
	Receiver   User      `json:"receiver"`
	Listing    *Listing  `json:"listing,omitempty"`
}

// ListingStatus reports the soft-delete state of a thread's listing so
// clients can switch composition off while keeping history readable.
type ListingStatus struct {
	IsDeleted bool       `json:"isDeleted"`
	DeletedAt *time.Time `json:"deletedAt"`
}

func NewUserView(u model.User) User {
	return User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}

func NewListingView(l model.Listing) Listing {
	images := make([]string, 0, len(l.Images))
	for _, image := range l.Images {
		images = append(images, image.URL)
	}

	view := Listing{
		ID:           l.ID,
		Title:        l.Title,
		Description:  l.Description,
		Price:        l.Price,
		Brand:        l.Brand,
		BrandName:    catalog.BrandName(l.Brand),
		CarModel:     l.CarModel,
		ModelName:    catalog.ModelName(l.Brand, l.CarModel),
		Year:         l.Year,
		Mileage:      l.Mileage,
		FuelType:     l.FuelType,
		Transmission: l.Transmission,
		Color:        l.Color,
		Location:     l.Location,
		Images:       images,
		UserID:       l.UserID,
		User:         NewUserView(l.User),
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
	if l.DeletedAt.Valid {
		deletedAt := l.DeletedAt.Time
		view.DeletedAt = &deletedAt
	}
	return view
}

func NewMessageView(m model.Message) Message {
	view := Message{
		ID:         m.ID,
		Content:    m.Content,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		ListingID:  m.ListingID,
		CreatedAt:  m.CreatedAt,
		Sender:     NewUserView(m.Sender),
		Receiver:   NewUserView(m.Receiver),
	}
	if m.Listing.ID != 0 {
		listing := NewListingView(m.Listing)
		view.Listing = &listing
	}
	return view
}

// unscoped reads through the soft-delete scope: conversations and threads keep
// referencing deleted listings.
func unscoped(tx *gorm.DB) *gorm.DB {
	return tx.Unscoped()
}

// orderedImages preloads listing photos in upload order.
func orderedImages(tx *gorm.DB) *gorm.DB {
	return tx.Order("position ASC")
}
