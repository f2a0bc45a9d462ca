package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// CanTransitionTo encodes pending → confirmed → in_progress → completed,
// with cancelled reachable from pending and confirmed only.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusInProgress || next == BookingStatusCancelled
	case BookingStatusInProgress:
		return next == BookingStatusCompleted
	default:
		return false
	}
}

// IsTerminal reports whether no further status transitions are allowed.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
	PaymentStatusFailed   PaymentStatus = "failed"
)

func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded, PaymentStatusFailed:
		return true
	}
	return false
}

// Booking is created from exactly one accepted quote (unique index on
// QuoteID). TotalPrice is copied from the quote at creation and never
// mutated afterwards.
type Booking struct {
	ID            uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuoteID       uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex" json:"quote_id"`
	CustomerID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"customer_id"`
	ProviderID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"provider_id"`
	ScheduledDate time.Time     `gorm:"not null;index" json:"scheduled_date"`
	Status        BookingStatus `gorm:"size:20;not null;default:'pending';index" json:"status"`
	TotalPrice    float64       `gorm:"not null" json:"total_price"`
	PaymentStatus PaymentStatus `gorm:"size:20;not null;default:'pending'" json:"payment_status"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Quote         Quote         `gorm:"foreignKey:QuoteID" json:"quote,omitempty"`
	Customer      User          `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Provider      Provider      `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}
