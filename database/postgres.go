package database

import (
	"fmt"
	"log"

	"carmarket-service/config"
	"carmarket-service/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var Postgres *gorm.DB

func PostgresConnect() {
	var err error
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.Config("POSTGRES_HOST"),
		config.Config("POSTGRES_PORT"),
		config.Config("POSTGRES_USER"),
		config.Config("POSTGRES_PASSWORD"),
		config.Config("POSTGRES_DB"),
	)
	Postgres, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect postgres")
	}

	log.Printf("Connection opened to Postgres")
	Postgres.AutoMigrate(
		&model.User{},
		&model.Listing{},
		&model.ListingImage{},
		&model.Favorite{},
		&model.Message{},
	)
	log.Printf("Postgres Database Migrated")

	SeedAdmin(Postgres)
}

// SeedAdmin creates the ADMIN account from ADMIN_EMAIL/ADMIN_PASSWORD when
// configured and the account does not exist yet.
func SeedAdmin(db *gorm.DB) {
	email := config.Config("ADMIN_EMAIL")
	password := config.Config("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	if count := db.Where(&model.User{Email: email}).First(new(model.User)).RowsAffected; count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Printf("failed to hash admin password: %v", err)
		return
	}

	admin := model.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Admin",
		Role:      model.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("failed to seed admin user: %v", err)
		return
	}

	Casbin().AddGroupingPolicy(fmt.Sprint(admin.ID), "admin")
	log.Printf("admin user seeded: %s", email)
}
