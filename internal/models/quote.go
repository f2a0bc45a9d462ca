package models

import (
	"time"

	"github.com/google/uuid"
)

type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// IsTerminal reports whether no further transitions are allowed.
func (s QuoteStatus) IsTerminal() bool {
	return s != QuoteStatusPending
}

// CanTransitionTo reports whether the status may move to next. Only pending
// quotes move; accepted, rejected and expired are terminal.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	if s != QuoteStatusPending {
		return false
	}
	return next == QuoteStatusAccepted || next == QuoteStatusRejected || next == QuoteStatusExpired
}

// Quote is a provider's priced bid on a service request. The unique index on
// (request_id, provider_id) makes one-quote-per-provider structural.
type Quote struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RequestID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_quotes_request_provider" json:"request_id"`
	ProviderID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_quotes_request_provider" json:"provider_id"`
	Price      float64        `gorm:"not null" json:"price"`
	Message    string         `gorm:"type:text" json:"message"`
	ValidUntil time.Time      `gorm:"not null;index" json:"valid_until"`
	Status     QuoteStatus    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	Request    ServiceRequest `gorm:"foreignKey:RequestID" json:"request,omitempty"`
	Provider   Provider       `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}
