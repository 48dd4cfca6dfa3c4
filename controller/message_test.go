package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"carmarket-service/controller"
	"carmarket-service/database"
	"carmarket-service/model"
	"carmarket-service/router"
	"carmarket-service/service"
	"carmarket-service/utils"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testNotifier struct {
	rooms []uint
}

func (n *testNotifier) NewMessage(listingID uint, _ service.Message) {
	n.rooms = append(n.rooms, listingID)
}

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB, *testNotifier) {
	t.Helper()

	t.Setenv("JWT_ACCESS_KEY", "test-access-key")
	t.Setenv("JWT_REFRESH_KEY", "test-refresh-key")
	t.Setenv("JWT_ACCESS_EXPIRE", "15")
	t.Setenv("JWT_REFRESH_EXPIRE", "60")

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
	database.Postgres = db

	notifier := &testNotifier{}
	previous := controller.MessageNotifier
	controller.MessageNotifier = notifier
	t.Cleanup(func() { controller.MessageNotifier = previous })

	app := fiber.New(fiber.Config{StrictRouting: true})
	router.Rest(app)

	return app, db, notifier
}

func createUser(t *testing.T, db *gorm.DB, email string, role string) model.User {
	t.Helper()

	user := model.User{
		Email:     email,
		Password:  "hash",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createListing(t *testing.T, db *gorm.DB, ownerID uint) model.Listing {
	t.Helper()

	listing := model.Listing{
		Title: "Lada Vesta", Description: "d", Price: 550000,
		Brand: "VAZ", CarModel: "VAZ_VESTA", Year: 2019, Mileage: 43000,
		FuelType: "petrol", Transmission: "manual", Color: "white",
		Location: "Москва", UserID: ownerID,
	}
	require.NoError(t, db.Create(&listing).Error)
	return listing
}

func accessToken(t *testing.T, user model.User) string {
	t.Helper()

	tokens, err := utils.GenerateTokens(fmt.Sprint(user.ID), user.Role, false)
	require.NoError(t, err)
	return tokens.Access
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestMessageSendAndThread(t *testing.T) {
	app, db, notifier := setupTestApp(t)

	seller := createUser(t, db, "seller@example.com", model.RoleUser)
	buyer := createUser(t, db, "buyer@example.com", model.RoleUser)
	listing := createListing(t, db, seller.ID)

	token := accessToken(t, buyer)

	resp := doJSON(t, app, "POST", fmt.Sprintf("/api/messages/listing/%d", listing.ID), token,
		fiber.Map{"content": "Hi", "receiverId": seller.ID})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Hi", data["content"])
	assert.EqualValues(t, buyer.ID, data["senderId"])
	assert.EqualValues(t, seller.ID, data["receiverId"])

	// Broadcast went to the listing's room after the write.
	require.Len(t, notifier.rooms, 1)
	assert.Equal(t, listing.ID, notifier.rooms[0])

	// The message is immediately readable through the thread query.
	resp = doJSON(t, app, "GET",
		fmt.Sprintf("/api/messages/listing/%d?otherParticipantId=%d", listing.ID, seller.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body = decodeBody(t, resp)
	messages := body["data"].([]any)
	require.Len(t, messages, 1)
	assert.Equal(t, "Hi", messages[0].(map[string]any)["content"])

	status := body["listingStatus"].(map[string]any)
	assert.Equal(t, false, status["isDeleted"])
	assert.Nil(t, status["deletedAt"])
}

func TestMessageSend_DeletedListing(t *testing.T) {
	app, db, _ := setupTestApp(t)

	seller := createUser(t, db, "seller@example.com", model.RoleUser)
	buyer := createUser(t, db, "buyer@example.com", model.RoleUser)
	listing := createListing(t, db, seller.ID)
	token := accessToken(t, buyer)

	// Seed one message, then soft-delete the listing.
	message := model.Message{Content: "Hi", SenderID: buyer.ID, ReceiverID: seller.ID, ListingID: listing.ID}
	message.CreatedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&message).Error)
	require.NoError(t, db.Delete(&model.Listing{}, listing.ID).Error)

	resp := doJSON(t, app, "POST", fmt.Sprintf("/api/messages/listing/%d", listing.ID), token,
		fiber.Map{"content": "Anyone there?"})
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NotEmpty(t, decodeBody(t, resp)["error"])

	// The conversation survives with the listing flagged deleted.
	resp = doJSON(t, app, "GET", "/api/messages/conversations", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var conversations []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&conversations))
	require.Len(t, conversations, 1)

	nested := conversations[0]["listing"].(map[string]any)
	assert.NotNil(t, nested["deletedAt"])
}

func TestMessageSend_AdminForbidden(t *testing.T) {
	app, db, _ := setupTestApp(t)

	seller := createUser(t, db, "seller@example.com", model.RoleUser)
	admin := createUser(t, db, "admin@example.com", model.RoleAdmin)
	listing := createListing(t, db, seller.ID)

	resp := doJSON(t, app, "POST", fmt.Sprintf("/api/messages/listing/%d", listing.ID), accessToken(t, admin),
		fiber.Map{"content": "Official notice"})
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestMessageSend_MissingListing(t *testing.T) {
	app, db, _ := setupTestApp(t)

	buyer := createUser(t, db, "buyer@example.com", model.RoleUser)

	resp := doJSON(t, app, "POST", "/api/messages/listing/9999", accessToken(t, buyer),
		fiber.Map{"content": "Hello?"})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestMessageEndpoints_RequireAuth(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp := doJSON(t, app, "GET", "/api/messages/conversations", "", nil)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/messages/listing/1", "", fiber.Map{"content": "Hi"})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMessageThread_RequiresCounterparty(t *testing.T) {
	app, db, _ := setupTestApp(t)

	seller := createUser(t, db, "seller@example.com", model.RoleUser)
	buyer := createUser(t, db, "buyer@example.com", model.RoleUser)
	listing := createListing(t, db, seller.ID)

	resp := doJSON(t, app, "GET", fmt.Sprintf("/api/messages/listing/%d", listing.ID), accessToken(t, buyer), nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
