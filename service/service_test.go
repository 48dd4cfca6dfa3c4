package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"carmarket-service/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Listing{},
		&model.ListingImage{},
		&model.Favorite{},
		&model.Message{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role string) model.User {
	t.Helper()

	user := model.User{
		Email:     email,
		Password:  "hash",
		FirstName: "Test",
		LastName:  "User",
		Phone:     "+70000000000",
		Role:      role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestListing(t *testing.T, db *gorm.DB, ownerID uint, title string) model.Listing {
	t.Helper()

	listing := model.Listing{
		Title:        title,
		Description:  "well maintained",
		Price:        550000,
		Brand:        "VAZ",
		CarModel:     "VAZ_VESTA",
		Year:         2019,
		Mileage:      43000,
		FuelType:     "petrol",
		Transmission: "manual",
		Color:        "white",
		Location:     "Москва",
		UserID:       ownerID,
		Images: []model.ListingImage{
			{URL: "/uploads/cars/front.jpg", Position: 0},
			{URL: "/uploads/cars/side.jpg", Position: 1},
		},
	}
	require.NoError(t, db.Create(&listing).Error)
	return listing
}

func createTestMessage(t *testing.T, db *gorm.DB, listingID, senderID, receiverID uint, content string, at time.Time) model.Message {
	t.Helper()

	message := model.Message{
		Content:    content,
		SenderID:   senderID,
		ReceiverID: receiverID,
		ListingID:  listingID,
	}
	message.CreatedAt = at
	require.NoError(t, db.Create(&message).Error)
	return message
}

type recordingNotifier struct {
	listingIDs []uint
	messages   []Message
}

func (n *recordingNotifier) NewMessage(listingID uint, message Message) {
	n.listingIDs = append(n.listingIDs, listingID)
	n.messages = append(n.messages, message)
}
