package router

import (
	"carmarket-service/controller"
	"carmarket-service/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func Rest(app *fiber.App) {
	api := app.Group("/api", logger.New())

	// Auth
	auth := api.Group("/auth")
	auth.Post("/register", controller.AuthRegister)
	auth.Post("/login", controller.AuthLogin)
	auth.Post("/token/renew", controller.AuthTokenRenew)
	auth.Get("/check-email", controller.AuthCheckEmail)
	auth.Post("/2fa/secret", middleware.JWT(), middleware.OTP(), controller.AuthOtpSecret)
	auth.Post("/2fa/verify", middleware.JWT(), middleware.OTP(), controller.AuthOtpVerify)
	auth.Post("/2fa/validate", middleware.JWT(), controller.AuthOtpValidate)
	auth.Post("/2fa/disable", middleware.JWT(), middleware.OTP(), controller.AuthOtpDisable)
	auth.Get("/me", middleware.JWT(), middleware.OTP(), controller.UserProfile)
	auth.Patch("/me", middleware.JWT(), middleware.OTP(), controller.UserUpdate)

	// Listings; fixed segments registered before /:id
	api.Get("/listings", controller.ListingList)
	api.Post("/listings", middleware.JWT(), middleware.OTP(), controller.ListingCreate)
	listings := api.Group("/listings")
	listings.Get("/user", middleware.JWT(), middleware.OTP(), controller.ListingMine)
	listings.Get("/favorites", middleware.JWT(), middleware.OTP(), controller.FavoriteList)
	listings.Post("/:id/favorite", middleware.JWT(), middleware.OTP(), controller.FavoriteAdd)
	listings.Delete("/:id/favorite", middleware.JWT(), middleware.OTP(), controller.FavoriteRemove)
	listings.Get("/:id", controller.ListingGet)
	listings.Patch("/:id", middleware.JWT(), middleware.OTP(), controller.ListingUpdate)
	listings.Delete("/:id", middleware.JWT(), middleware.OTP(), controller.ListingDelete)
	listings.Delete("/:id/permanent", middleware.JWT(), middleware.OTP(), controller.ListingPermanentDelete)

	// Messages
	messages := api.Group("/messages", middleware.JWT(), middleware.OTP())
	messages.Get("/conversations", controller.MessageConversations)
	messages.Get("/listing/:listingId", controller.MessageThread)
	messages.Post("/listing/:listingId", controller.MessageSend)

	// Cars catalog
	cars := api.Group("/cars")
	cars.Get("/models", controller.CarModels)

	// Admin
	admin := api.Group("/admin", middleware.JWT(), middleware.OTP(), middleware.RBAC())
	admin.Get("/users", controller.AdminUsers)
	admin.Delete("/listings/:id", controller.AdminListingDelete)
}
