package service

import (
	"testing"
	"time"

	"carmarket-service/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testListingInput() ListingInput {
	return ListingInput{
		Title:        "Toyota Camry 2020",
		Description:  "one owner",
		Price:        2100000,
		Brand:        "TOYOTA",
		CarModel:     "TOYOTA_CAMRY",
		Year:         2020,
		Mileage:      38000,
		FuelType:     "petrol",
		Transmission: "automatic",
		Color:        "black",
		Location:     "Казань",
	}
}

func TestCreateListing(t *testing.T) {
	db := setupTestDB(t)

	seller := createTestUser(t, db, "seller@example.com", model.RoleUser)

	listing, err := CreateListing(db, Principal{ID: seller.ID, Role: seller.Role}, testListingInput(),
		[]string{"/uploads/cars/a.jpg", "/uploads/cars/b.jpg"})
	require.NoError(t, err)

	assert.Equal(t, "Toyota Camry 2020", listing.Title)
	assert.Equal(t, "Toyota", listing.BrandName)
	assert.Equal(t, "Camry", listing.ModelName)
	assert.Equal(t, seller.ID, listing.UserID)
	assert.Equal(t, []string{"/uploads/cars/a.jpg", "/uploads/cars/b.jpg"}, listing.Images)
	assert.Nil(t, listing.DeletedAt)
}

func TestCreateListing_AdminForbidden(t *testing.T) {
	db := setupTestDB(t)

	admin := createTestUser(t, db, "admin@example.com", model.RoleAdmin)

	_, err := CreateListing(db, Principal{ID: admin.ID, Role: admin.Role}, testListingInput(), []string{"/uploads/cars/a.jpg"})
	require.Error(t, err)

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 403, svcErr.Status)
}

func TestCreateListing_Validation(t *testing.T) {
	db := setupTestDB(t)

	seller := createTestUser(t, db, "seller@example.com", model.RoleUser)
	p := Principal{ID: seller.ID, Role: seller.Role}

	var svcErr *Error

	input := testListingInput()
	input.Title = " "
	_, err := CreateListing(db, p, input, []string{"/uploads/cars/a.jpg"})
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 400, svcErr.Status)

	input = testListingInput()
	input.Price = 0
	_, err = CreateListing(db, p, input, []string{"/uploads/cars/a.jpg"})
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 400, svcErr.Status)

	_, err = CreateListing(db, p, testListingInput(), nil)
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 400, svcErr.Status)
}

func TestListings_FiltersAndSoftDeleteScope(t *testing.T) {
	db := setupTestDB(t)

	seller := createTestUser(t, db, "seller@example.com", model.RoleUser)
	vesta := createTestListing(t, db, seller.ID, "Lada Vesta")
	camry := model.Listing{
		Title: "Toyota Camry", Description: "d", Price: 2100000,
		Brand: "TOYOTA", CarModel: "TOYOTA_CAMRY", Year: 2020, Mileage: 38000,
		FuelType: "petrol", Transmission: "automatic", Color: "black",
		Location: "Казань", UserID: seller.ID,
	}
	require.NoError(t, db.Create(&camry).Error)

	all, err := Listings(db, ListingFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byBrand, err := Listings(db, ListingFilters{Brand: "TOYOTA"})
	require.NoError(t, err)
	require.Len(t, byBrand, 1)
	assert.Equal(t, camry.ID, byBrand[0].ID)

	byPrice, err := Listings(db, ListingFilters{MaxPrice: 1000000})
	require.NoError(t, err)
	require.Len(t, byPrice, 1)
	assert.Equal(t, vesta.ID, byPrice[0].ID)

	byYear, err := Listings(db, ListingFilters{MinYear: 2020})
	require.NoError(t, err)
	require.Len(t, byYear, 1)
	assert.Equal(t, camry.ID, byYear[0].ID)

	// Soft-deleted listings drop out of search results.
	require.NoError(t, db.Delete(&model.Listing{}, camry.ID).Error)
	all, err = Listings(db, ListingFilters{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, vesta.ID, all[0].ID)
}

func TestGetListing_DeletedStaysAddressable(t *testing.T) {
	db := setupTestDB(t)

	seller := createTestUser(t, db, "seller@example.com", model.RoleUser)
	listing := createTestListing(t, db, seller.ID, "Lada Vesta")

	require.NoError(t, db.Delete(&model.Listing{}, listing.ID).Error)

	view, err := GetListing(db, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, listing.ID, view.ID)
	assert.NotNil(t, view.DeletedAt)

	_, err = GetListing(db, 9999)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 404, svcErr.Status)
}

func TestUpdateListing_OwnerOnly(t *testing.T) {
	db := setupTestDB(t)

	seller := createTestUser(t, db, "seller@example.com", model.RoleUser)
	stranger := createTestUser(t, db, "stranger@example.com", model.RoleUser)
	listing := createTestListing(t, db, seller.ID, "Lada Vesta")

	newPrice := 499000.0
	updated, err := UpdateListing(db, Principal{ID: seller.ID, Role: seller.Role}, listing.ID, ListingUpdate{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 499000.0, updated.Price)
	assert.Equal(t, "Lada Vesta", updated.Title)

	_, err = UpdateListing(db, Principal{ID: stranger.ID, Role: stranger.Role}, listing.ID, ListingUpdate{Price: &newPrice})
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 403, svcErr.Status)
}

func TestSoftDeleteListing(t *testing.T) {
	db := setupTestDB(t)

	seller := createTestUser(t, db, "seller@example.com", model.RoleUser)
	stranger := createTestUser(t, db, "stranger@example.com", model.RoleUser)
	admin := createTestUser(t, db, "admin@example.com", model.RoleAdmin)
	mine := createTestListing(t, db, seller.ID, "Lada Vesta")
	other := createTestListing(t, db, seller.ID, "Toyota Camry")

	err := SoftDeleteListing(db, Principal{ID: stranger.ID, Role: stranger.Role}, mine.ID)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 403, svcErr.Status)

	require.NoError(t, SoftDeleteListing(db, Principal{ID: seller.ID, Role: seller.Role}, mine.ID))

	var deleted model.Listing
	require.NoError(t, db.Unscoped().First(&deleted, mine.ID).Error)
	require.True(t, deleted.DeletedAt.Valid)
	deletedAt := deleted.DeletedAt.Time

	// Monotonic: deleting again neither fails nor moves the timestamp.
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, SoftDeleteListing(db, Principal{ID: seller.ID, Role: seller.Role}, mine.ID))
	require.NoError(t, db.Unscoped().First(&deleted, mine.ID).Error)
	assert.Equal(t, deletedAt, deleted.DeletedAt.Time)

	// Admins may delete anyone's listing.
	require.NoError(t, SoftDeleteListing(db, Principal{ID: admin.ID, Role: admin.Role}, other.ID))

	require.ErrorAs(t, SoftDeleteListing(db, Principal{ID: seller.ID, Role: seller.Role}, 9999), &svcErr)
	assert.Equal(t, 404, svcErr.Status)
}

func TestPermanentDeleteListing_PurgesFavoritesKeepsMessages(t *testing.T) {
	db := setupTestDB(t)

	seller := createTestUser(t, db, "seller@example.com", model.RoleUser)
	buyer := createTestUser(t, db, "buyer@example.com", model.RoleUser)
	listing := createTestListing(t, db, seller.ID, "Lada Vesta")

	require.NoError(t, AddFavorite(db, Principal{ID: buyer.ID, Role: buyer.Role}, listing.ID))
	createTestMessage(t, db, listing.ID, buyer.ID, seller.ID, "Hi", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	err := PermanentDeleteListing(db, Principal{ID: buyer.ID, Role: buyer.Role}, listing.ID)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 403, svcErr.Status)

	require.NoError(t, PermanentDeleteListing(db, Principal{ID: seller.ID, Role: seller.Role}, listing.ID))

	var favorites int64
	db.Model(&model.Favorite{}).Where("listing_id = ?", listing.ID).Count(&favorites)
	assert.Zero(t, favorites)

	var messages int64
	db.Model(&model.Message{}).Where("listing_id = ?", listing.ID).Count(&messages)
	assert.EqualValues(t, 1, messages)

	var row model.Listing
	require.NoError(t, db.Unscoped().First(&row, listing.ID).Error)
	assert.True(t, row.DeletedAt.Valid)
}

func TestUserListings_IncludesDeleted(t *testing.T) {
	db := setupTestDB(t)

	seller := createTestUser(t, db, "seller@example.com", model.RoleUser)
	active := createTestListing(t, db, seller.ID, "Lada Vesta")
	gone := createTestListing(t, db, seller.ID, "Toyota Camry")
	require.NoError(t, db.Delete(&model.Listing{}, gone.ID).Error)

	listings, err := UserListings(db, seller.ID)
	require.NoError(t, err)
	require.Len(t, listings, 2)

	ids := []uint{listings[0].ID, listings[1].ID}
	assert.Contains(t, ids, active.ID)
	assert.Contains(t, ids, gone.ID)
}
