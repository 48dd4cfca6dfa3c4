package controller

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"carmarket-service/config"
	"carmarket-service/database"
	"carmarket-service/event"
	"carmarket-service/service"
	"carmarket-service/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	maxListingImages    = 5
	maxListingImageSize = 10 << 20 // 10MB
)

func uploadDir() string {
	if dir := config.Config("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

func saveListingImages(c *fiber.Ctx, files []*multipart.FileHeader) ([]string, []string, error) {
	dir := filepath.Join(uploadDir(), "cars")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, err
	}

	urls := make([]string, 0, len(files))
	paths := make([]string, 0, len(files))
	for _, file := range files {
		name := uuid.New().String() + filepath.Ext(file.Filename)
		path := filepath.Join(dir, name)
		if err := c.SaveFile(file, path); err != nil {
			return urls, paths, err
		}
		paths = append(paths, path)
		urls = append(urls, "/uploads/cars/"+name)
	}
	return urls, paths, nil
}

func removeFiles(paths []string) {
	for _, path := range paths {
		os.Remove(path)
	}
}

// ListingCreate accepts a multipart form with the listing fields and 1-5
// images.
func ListingCreate(c *fiber.Ctx) error {
	p := utils.Principal(c)

	input := new(service.ListingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Review your input"})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No images uploaded"})
	}
	files := form.File["images"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No images uploaded"})
	}
	if len(files) > maxListingImages {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Too many files. Maximum is 5 files"})
	}
	for _, file := range files {
		if file.Size > maxListingImageSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File size too large. Maximum size is 10MB"})
		}
	}

	urls, paths, err := saveListingImages(c, files)
	if err != nil {
		removeFiles(paths)
		return respondError(c, err)
	}

	listing, err := service.CreateListing(database.Postgres, p, *input, urls)
	if err != nil {
		// the row never landed, drop the uploaded files with it
		removeFiles(paths)
		return respondError(c, err)
	}

	event.EmitJSON("backoffice", "listing.created", listing)

	return c.Status(fiber.StatusCreated).JSON(listing)
}

// ListingList returns active listings narrowed by the query filters.
func ListingList(c *fiber.Ctx) error {
	filters := service.ListingFilters{
		Brand:        c.Query("brand"),
		CarModel:     c.Query("model"),
		MinPrice:     queryFloat(c, "minPrice"),
		MaxPrice:     queryFloat(c, "maxPrice"),
		MinYear:      queryInt(c, "minYear"),
		MaxYear:      queryInt(c, "maxYear"),
		FuelType:     c.Query("fuelType"),
		Transmission: c.Query("transmission"),
		Location:     c.Query("location"),
	}

	listings, err := service.Listings(database.Postgres, filters)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(listings)
}

func ListingGet(c *fiber.Ctx) error {
	id, ok := paramUint(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing id"})
	}

	listing, err := service.GetListing(database.Postgres, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(listing)
}

func ListingUpdate(c *fiber.Ctx) error {
	p := utils.Principal(c)

	id, ok := paramUint(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing id"})
	}

	update := new(service.ListingUpdate)
	if err := c.BodyParser(update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid updates"})
	}

	listing, err := service.UpdateListing(database.Postgres, p, id, *update)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(listing)
}

// ListingDelete soft-deletes: the row stays addressable for conversation
// history and favorites.
func ListingDelete(c *fiber.Ctx) error {
	p := utils.Principal(c)

	id, ok := paramUint(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing id"})
	}

	if err := service.SoftDeleteListing(database.Postgres, p, id); err != nil {
		return respondError(c, err)
	}

	event.EmitJSON("backoffice", "listing.deleted", fiber.Map{"id": id})

	return c.JSON(fiber.Map{"message": "Listing deleted successfully"})
}

// ListingPermanentDelete purges favorites and marks the listing deleted;
// messages survive.
func ListingPermanentDelete(c *fiber.Ctx) error {
	p := utils.Principal(c)

	id, ok := paramUint(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid listing id"})
	}

	if err := service.PermanentDeleteListing(database.Postgres, p, id); err != nil {
		return respondError(c, err)
	}

	event.EmitJSON("backoffice", "listing.purged", fiber.Map{"id": id})

	return c.JSON(fiber.Map{"message": "Listing deleted successfully"})
}

func ListingMine(c *fiber.Ctx) error {
	p := utils.Principal(c)

	listings, err := service.UserListings(database.Postgres, p.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(listings)
}
