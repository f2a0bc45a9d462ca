package services

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dienstly/dienstly-backend/internal/apperr"
	"github.com/dienstly/dienstly-backend/internal/dto"
	"github.com/dienstly/dienstly-backend/internal/models"
)

type QuoteService struct {
	db *gorm.DB
}

func NewQuoteService(db *gorm.DB) *QuoteService {
	return &QuoteService{db: db}
}

// Create submits a pending quote. The provider must be approved, offer an
// active service in the request's category, and must not have quoted the
// request before; the request must still be open.
func (s *QuoteService) Create(userID uuid.UUID, req *dto.CreateQuoteRequest) (*models.Quote, error) {
	if req.Price <= 0 {
		return nil, apperr.Validation("price must be greater than zero")
	}
	validUntil, err := time.Parse(time.RFC3339, req.ValidUntil)
	if err != nil {
		return nil, apperr.Validation("valid_until must be RFC 3339")
	}
	if !validUntil.After(time.Now()) {
		return nil, apperr.Validation("valid_until must be in the future")
	}
	requestID, err := uuid.Parse(req.RequestID)
	if err != nil {
		return nil, apperr.Validation("invalid request_id")
	}

	var provider models.Provider
	if err := s.db.Where("user_id = ?", userID).First(&provider).Error; err != nil {
		return nil, apperr.NotFound("provider profile not found")
	}
	if !provider.IsApproved {
		return nil, apperr.Forbidden("provider is not approved")
	}

	var request models.ServiceRequest
	if err := s.db.First(&request, "id = ?", requestID).Error; err != nil {
		return nil, apperr.NotFound("service request not found")
	}
	if request.Status != models.RequestStatusOpen {
		return nil, apperr.InvalidState("can only quote open requests")
	}

	var matching int64
	err = s.db.Model(&models.Service{}).
		Where("provider_id = ? AND category_id = ? AND is_active = true", provider.ID, request.CategoryID).
		Count(&matching).Error
	if err != nil {
		return nil, err
	}
	if matching == 0 {
		return nil, apperr.Forbidden("provider has no active service in this category")
	}

	var existing models.Quote
	if err := s.db.Where("request_id = ? AND provider_id = ?", requestID, provider.ID).First(&existing).Error; err == nil {
		return nil, apperr.Conflict("provider has already quoted this request")
	}

	quote := models.Quote{
		ID:         uuid.New(),
		RequestID:  requestID,
		ProviderID: provider.ID,
		Price:      req.Price,
		Message:    req.Message,
		ValidUntil: validUntil,
		Status:     models.QuoteStatusPending,
	}

	// The unique index on (request_id, provider_id) backs the precheck
	// against concurrent submissions.
	if err := s.db.Create(&quote).Error; err != nil {
		return nil, err
	}
	return &quote, nil
}

// Accept moves the quote to accepted and spawns its booking in one
// transaction. The request row is locked so concurrent accepts of sibling
// quotes cannot create a second booking; sibling pending quotes are
// auto-rejected and the request moves to in_progress.
func (s *QuoteService) Accept(userID uuid.UUID, quoteID uuid.UUID, req *dto.AcceptQuoteRequest) (*dto.AcceptQuoteResponse, error) {
	scheduledDate, err := time.Parse(time.RFC3339, req.ScheduledDate)
	if err != nil {
		return nil, apperr.Validation("scheduled_date must be RFC 3339")
	}

	var result dto.AcceptQuoteResponse
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var quote models.Quote
		if err := tx.First(&quote, "id = ?", quoteID).Error; err != nil {
			return apperr.NotFound("quote not found")
		}

		var request models.ServiceRequest
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&request, "id = ?", quote.RequestID).Error; err != nil {
			return apperr.NotFound("service request not found")
		}

		if request.CustomerID != userID {
			return apperr.Forbidden("not authorized to accept quotes on this request")
		}
		if request.Status != models.RequestStatusOpen {
			return apperr.InvalidState("request is no longer open")
		}
		if !quote.Status.CanTransitionTo(models.QuoteStatusAccepted) {
			return apperr.InvalidState("quote is not pending")
		}
		if time.Now().After(quote.ValidUntil) {
			return apperr.InvalidState("quote has expired")
		}

		if err := tx.Model(&quote).Update("status", models.QuoteStatusAccepted).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Quote{}).
			Where("request_id = ? AND id <> ? AND status = ?", request.ID, quote.ID, models.QuoteStatusPending).
			Update("status", models.QuoteStatusRejected).Error; err != nil {
			return err
		}

		booking := models.Booking{
			ID:            uuid.New(),
			QuoteID:       quote.ID,
			CustomerID:    request.CustomerID,
			ProviderID:    quote.ProviderID,
			ScheduledDate: scheduledDate,
			Status:        models.BookingStatusPending,
			TotalPrice:    quote.Price,
			PaymentStatus: models.PaymentStatusPending,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		if err := tx.Model(&request).Update("status", models.RequestStatusInProgress).Error; err != nil {
			return err
		}

		quote.Status = models.QuoteStatusAccepted
		result.Quote = quote
		result.Booking = booking
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Reject declines a pending quote; terminal.
func (s *QuoteService) Reject(userID uuid.UUID, quoteID uuid.UUID) (*models.Quote, error) {
	var quote models.Quote
	if err := s.db.Preload("Request").First(&quote, "id = ?", quoteID).Error; err != nil {
		return nil, apperr.NotFound("quote not found")
	}
	if quote.Request.CustomerID != userID {
		return nil, apperr.Forbidden("not authorized to reject quotes on this request")
	}
	if !quote.Status.CanTransitionTo(models.QuoteStatusRejected) {
		return nil, apperr.InvalidState("quote is not pending")
	}

	if err := s.db.Model(&quote).Update("status", models.QuoteStatusRejected).Error; err != nil {
		return nil, err
	}
	quote.Status = models.QuoteStatusRejected
	return &quote, nil
}

// ListByProvider returns the provider's own quotes, newest first.
func (s *QuoteService) ListByProvider(userID uuid.UUID, page, limit int) ([]models.Quote, int64, error) {
	var provider models.Provider
	if err := s.db.Where("user_id = ?", userID).First(&provider).Error; err != nil {
		return nil, 0, apperr.NotFound("provider profile not found")
	}

	var total int64
	if err := s.db.Model(&models.Quote{}).Where("provider_id = ?", provider.ID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var quotes []models.Quote
	err := s.db.Preload("Request.Category").
		Where("provider_id = ?", provider.ID).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&quotes).Error
	return quotes, total, err
}

// ExpirePending marks pending quotes whose validity window has elapsed.
// Returns the number of quotes expired.
func (s *QuoteService) ExpirePending(now time.Time) (int64, error) {
	result := s.db.Model(&models.Quote{}).
		Where("status = ? AND valid_until < ?", models.QuoteStatusPending, now).
		Update("status", models.QuoteStatusExpired)
	return result.RowsAffected, result.Error
}

// StartExpirySweep runs ExpirePending on a fixed interval until done closes.
func (s *QuoteService) StartExpirySweep(interval time.Duration, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				expired, err := s.ExpirePending(time.Now())
				if err != nil {
					slog.Error("quote expiry sweep failed", "error", err)
				} else if expired > 0 {
					slog.Info("quote expiry sweep completed", "expired", expired)
				}
			case <-done:
				return
			}
		}
	}()
}
