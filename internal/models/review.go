package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is written once per completed booking (unique index on BookingID).
// RevieweeID is the provider's underlying user id. The provider may attach
// exactly one reply; rating and comment are immutable after creation.
type Review struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BookingID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"booking_id"`
	ReviewerID    uuid.UUID `gorm:"type:uuid;not null;index" json:"reviewer_id"`
	RevieweeID    uuid.UUID `gorm:"type:uuid;not null;index" json:"reviewee_id"`
	Rating        int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment       *string   `gorm:"type:text" json:"comment,omitempty"`
	ProviderReply *string   `gorm:"type:text" json:"provider_reply,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Booking       Booking   `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	Reviewer      User      `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
}
