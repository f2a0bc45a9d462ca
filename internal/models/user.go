package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeProvider UserType = "provider"
	UserTypeAdmin    UserType = "admin"
)

// User is the identity record shared by customers, providers and admins.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password     string         `gorm:"not null" json:"-"`
	FirstName    string         `gorm:"size:100;not null" json:"first_name"`
	LastName     string         `gorm:"size:100;not null" json:"last_name"`
	Phone        *string        `gorm:"size:30" json:"phone,omitempty"`
	UserType     UserType       `gorm:"size:20;not null;default:'customer';index" json:"user_type"`
	ProfileImage *string        `gorm:"type:text" json:"profile_image,omitempty"`
	IsVerified   bool           `gorm:"default:false" json:"is_verified"`
	GDPRConsent  bool           `gorm:"default:false" json:"gdpr_consent"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
