package model

import "gorm.io/gorm"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User struct
type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `gorm:"not null" json:"password"`
	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `gorm:"not null" json:"lastName"`
	Phone     string `json:"phone"`
	Role      string `gorm:"not null;default:USER" json:"role"`

	Otp_enabled bool `gorm:"default:false;"`
	Otp_secret  string
}
