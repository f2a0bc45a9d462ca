package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Provider extends a User with userType=provider. At most one per user,
// enforced by the unique index on UserID. RatingAvg/TotalReviews are
// denormalized aggregates recomputed inside the review-creation transaction.
type Provider struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CompanyName       *string        `gorm:"size:255" json:"company_name,omitempty"`
	TaxID             *string        `gorm:"size:50" json:"tax_id,omitempty"`
	Description       string         `gorm:"type:text" json:"description"`
	ExperienceYears   int            `gorm:"default:0" json:"experience_years"`
	ServiceAreaLat    float64        `gorm:"not null" json:"service_area_lat"`
	ServiceAreaLng    float64        `gorm:"not null" json:"service_area_lng"`
	ServiceAreaRadius float64        `gorm:"not null;default:10" json:"service_area_radius"`
	RatingAvg         float64        `gorm:"default:0" json:"rating_avg"`
	TotalReviews      int            `gorm:"default:0" json:"total_reviews"`
	IsApproved        bool           `gorm:"default:false;index" json:"is_approved"`
	Documents         datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"documents"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	User              User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Services          []Service      `gorm:"foreignKey:ProviderID" json:"services,omitempty"`
}
