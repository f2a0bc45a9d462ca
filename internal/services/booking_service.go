package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dienstly/dienstly-backend/internal/apperr"
	"github.com/dienstly/dienstly-backend/internal/models"
)

type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

func (s *BookingService) GetByID(id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Preload("Quote.Request.Category").
		Preload("Customer").
		Preload("Provider.User").
		First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, apperr.NotFound("booking not found")
	}
	return &booking, nil
}

// Confirm: provider accepts the schedule. pending → confirmed.
func (s *BookingService) Confirm(userID uuid.UUID, id uuid.UUID) (*models.Booking, error) {
	return s.transition(userID, id, models.BookingStatusConfirmed, roleProvider)
}

// Start: provider begins the work. confirmed → in_progress.
func (s *BookingService) Start(userID uuid.UUID, id uuid.UUID) (*models.Booking, error) {
	return s.transition(userID, id, models.BookingStatusInProgress, roleProvider)
}

// Complete sets completedAt and moves the underlying request to completed
// in the same transaction. in_progress → completed.
func (s *BookingService) Complete(userID uuid.UUID, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.getOwned(userID, id, roleProvider)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(models.BookingStatusCompleted) {
		return nil, apperr.InvalidState("booking cannot be completed from status " + string(booking.Status))
	}

	now := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(booking).Updates(map[string]interface{}{
			"status":       models.BookingStatusCompleted,
			"completed_at": now,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.ServiceRequest{}).
			Where("id = ?", booking.Quote.RequestID).
			Update("status", models.RequestStatusCompleted).Error
	})
	if err != nil {
		return nil, err
	}

	booking.Status = models.BookingStatusCompleted
	booking.CompletedAt = &now
	return booking, nil
}

// Cancel is allowed for either party while the booking is pending or
// confirmed. The underlying request reopens so the customer can collect
// new quotes.
func (s *BookingService) Cancel(userID uuid.UUID, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.getOwned(userID, id, roleEither)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(models.BookingStatusCancelled) {
		return nil, apperr.InvalidState("booking cannot be cancelled from status " + string(booking.Status))
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(booking).Update("status", models.BookingStatusCancelled).Error; err != nil {
			return err
		}
		return tx.Model(&models.ServiceRequest{}).
			Where("id = ? AND status = ?", booking.Quote.RequestID, models.RequestStatusInProgress).
			Update("status", models.RequestStatusOpen).Error
	})
	if err != nil {
		return nil, err
	}

	booking.Status = models.BookingStatusCancelled
	return booking, nil
}

// SetPaymentStatus updates the payment axis; the booking status is
// untouched and TotalPrice never changes.
func (s *BookingService) SetPaymentStatus(id uuid.UUID, status models.PaymentStatus) (*models.Booking, error) {
	if !models.ValidPaymentStatus(status) {
		return nil, apperr.Validation("invalid payment status")
	}

	booking, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(booking).Update("payment_status", status).Error; err != nil {
		return nil, err
	}
	booking.PaymentStatus = status
	return booking, nil
}

// ListByCustomer returns the customer's bookings, newest first.
func (s *BookingService) ListByCustomer(customerID uuid.UUID, page, limit int) ([]models.Booking, int64, error) {
	var total int64
	if err := s.db.Model(&models.Booking{}).Where("customer_id = ?", customerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	err := s.db.Preload("Quote.Request.Category").
		Preload("Provider.User").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&bookings).Error
	return bookings, total, err
}

// ListByProvider returns the provider's bookings ordered by schedule,
// optionally windowed to one month and filtered by status. Cancelled
// bookings are excluded unless explicitly requested.
func (s *BookingService) ListByProvider(userID uuid.UUID, month, year int, status models.BookingStatus) ([]models.Booking, error) {
	var provider models.Provider
	if err := s.db.Where("user_id = ?", userID).First(&provider).Error; err != nil {
		return nil, apperr.NotFound("provider profile not found")
	}

	q := s.db.Preload("Customer").
		Preload("Quote.Request").
		Where("provider_id = ?", provider.ID)

	if month >= 1 && month <= 12 && year > 0 {
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		q = q.Where("scheduled_date >= ? AND scheduled_date < ?", start, end)
	}

	if status != "" {
		q = q.Where("status = ?", status)
	} else {
		q = q.Where("status <> ?", models.BookingStatusCancelled)
	}

	var bookings []models.Booking
	err := q.Order("scheduled_date ASC").Find(&bookings).Error
	return bookings, err
}

type partyRole int

const (
	roleProvider partyRole = iota
	roleEither
)

func (s *BookingService) getOwned(userID uuid.UUID, id uuid.UUID, role partyRole) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Quote").Preload("Provider").First(&booking, "id = ?", id).Error; err != nil {
		return nil, apperr.NotFound("booking not found")
	}

	isProvider := booking.Provider.UserID == userID
	isCustomer := booking.CustomerID == userID

	switch role {
	case roleProvider:
		if !isProvider {
			return nil, apperr.Forbidden("only the provider can perform this action")
		}
	case roleEither:
		if !isProvider && !isCustomer {
			return nil, apperr.Forbidden("not a party to this booking")
		}
	}
	return &booking, nil
}

func (s *BookingService) transition(userID uuid.UUID, id uuid.UUID, next models.BookingStatus, role partyRole) (*models.Booking, error) {
	booking, err := s.getOwned(userID, id, role)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(next) {
		return nil, apperr.InvalidState("booking cannot move from " + string(booking.Status) + " to " + string(next))
	}

	if err := s.db.Model(booking).Update("status", next).Error; err != nil {
		return nil, err
	}
	booking.Status = next
	return booking, nil
}
