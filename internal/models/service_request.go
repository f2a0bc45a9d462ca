package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RequestStatus string

const (
	RequestStatusOpen       RequestStatus = "open"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

// CanTransitionTo reports whether the status may move to next.
// Completed and cancelled are terminal.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	switch s {
	case RequestStatusOpen:
		return next == RequestStatusInProgress || next == RequestStatusCancelled
	case RequestStatusInProgress:
		// A booking cancellation reopens the request.
		return next == RequestStatusCompleted || next == RequestStatusOpen
	default:
		return false
	}
}

// ServiceRequest is a customer's posted job.
type ServiceRequest struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"customer_id"`
	CategoryID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"category_id"`
	Title         string         `gorm:"size:255;not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	Address       string         `gorm:"size:255" json:"address"`
	City          string         `gorm:"size:100" json:"city"`
	PostalCode    string         `gorm:"size:10;index" json:"postal_code"`
	Lat           float64        `gorm:"not null" json:"lat"`
	Lng           float64        `gorm:"not null" json:"lng"`
	PreferredDate *time.Time     `json:"preferred_date,omitempty"`
	BudgetMin     *float64       `json:"budget_min,omitempty"`
	BudgetMax     *float64       `json:"budget_max,omitempty"`
	Images        datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"images"`
	Status        RequestStatus  `gorm:"size:20;not null;default:'open';index" json:"status"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Customer      User           `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Category      Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Quotes        []Quote        `gorm:"foreignKey:RequestID" json:"quotes,omitempty"`
}
