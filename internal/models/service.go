package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PriceType string

const (
	PriceTypeFixed  PriceType = "fixed"
	PriceTypeHourly PriceType = "hourly"
	PriceTypeQuote  PriceType = "quote"
)

// Service is a provider's offering in one category.
// Invariant: PriceMin <= PriceMax when both are set.
type Service struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProviderID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"provider_id"`
	CategoryID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"category_id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	PriceType   PriceType      `gorm:"size:20;not null;default:'quote'" json:"price_type"`
	PriceMin    *float64       `json:"price_min,omitempty"`
	PriceMax    *float64       `json:"price_max,omitempty"`
	Images      datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"images"`
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Provider    Provider       `gorm:"foreignKey:ProviderID" json:"-"`
	Category    Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
