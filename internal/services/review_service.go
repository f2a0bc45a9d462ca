package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dienstly/dienstly-backend/internal/apperr"
	"github.com/dienstly/dienstly-backend/internal/dto"
	"github.com/dienstly/dienstly-backend/internal/models"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// Create writes the review and recomputes the provider's rating aggregate
// in one transaction: either both land or neither does. One review per
// booking, completed bookings only, reviewer must be the booking's customer.
func (s *ReviewService) Create(reviewerID uuid.UUID, req *dto.CreateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}
	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, apperr.Validation("invalid booking_id")
	}

	var booking models.Booking
	if err := s.db.Preload("Provider").First(&booking, "id = ?", bookingID).Error; err != nil {
		return nil, apperr.NotFound("booking not found")
	}
	if booking.CustomerID != reviewerID {
		return nil, apperr.Forbidden("only the booking's customer can review it")
	}
	if booking.Status != models.BookingStatusCompleted {
		return nil, apperr.InvalidState("can only review completed bookings")
	}

	var existing models.Review
	if err := s.db.Where("booking_id = ?", bookingID).First(&existing).Error; err == nil {
		return nil, apperr.Conflict("review already exists for this booking")
	}

	review := models.Review{
		ID:         uuid.New(),
		BookingID:  bookingID,
		ReviewerID: reviewerID,
		RevieweeID: booking.Provider.UserID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// The unique index on booking_id turns a precheck race into a
		// transaction failure instead of a duplicate.
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		return recomputeProviderRating(tx, booking.ProviderID, booking.Provider.UserID)
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Reply attaches the provider's single reply to a review of them.
func (s *ReviewService) Reply(userID uuid.UUID, reviewID uuid.UUID, reply string) (*models.Review, error) {
	if reply == "" {
		return nil, apperr.Validation("reply text is required")
	}

	var review models.Review
	if err := s.db.First(&review, "id = ?", reviewID).Error; err != nil {
		return nil, apperr.NotFound("review not found")
	}
	if review.RevieweeID != userID {
		return nil, apperr.Forbidden("not authorized to reply to this review")
	}
	if review.ProviderReply != nil {
		return nil, apperr.InvalidState("review already has a reply")
	}

	if err := s.db.Model(&review).Update("provider_reply", reply).Error; err != nil {
		return nil, err
	}
	review.ProviderReply = &reply
	return &review, nil
}

// ListForProvider returns the reviews of the provider's underlying user,
// newest first, with the per-star breakdown.
func (s *ReviewService) ListForProvider(userID uuid.UUID, page, limit int) ([]models.Review, *dto.ReviewStats, int64, error) {
	var provider models.Provider
	if err := s.db.Where("user_id = ?", userID).First(&provider).Error; err != nil {
		return nil, nil, 0, apperr.NotFound("provider profile not found")
	}

	var total int64
	if err := s.db.Model(&models.Review{}).Where("reviewee_id = ?", provider.UserID).Count(&total).Error; err != nil {
		return nil, nil, 0, err
	}

	var reviews []models.Review
	err := s.db.Preload("Reviewer").
		Preload("Booking.Quote.Request").
		Where("reviewee_id = ?", provider.UserID).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&reviews).Error
	if err != nil {
		return nil, nil, 0, err
	}

	type ratingCount struct {
		Rating int
		Count  int
	}
	var counts []ratingCount
	err = s.db.Model(&models.Review{}).
		Select("rating, COUNT(*) AS count").
		Where("reviewee_id = ?", provider.UserID).
		Group("rating").
		Scan(&counts).Error
	if err != nil {
		return nil, nil, 0, err
	}

	breakdown := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, rc := range counts {
		breakdown[rc.Rating] = rc.Count
	}

	stats := &dto.ReviewStats{
		Average:   provider.RatingAvg,
		Total:     total,
		Breakdown: breakdown,
	}
	return reviews, stats, total, nil
}

// recomputeProviderRating refreshes the denormalized aggregate from the
// full review set inside the caller's transaction.
func recomputeProviderRating(tx *gorm.DB, providerID uuid.UUID, revieweeID uuid.UUID) error {
	var agg struct {
		Avg   float64
		Count int64
	}
	err := tx.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("reviewee_id = ?", revieweeID).
		Scan(&agg).Error
	if err != nil {
		return err
	}

	return tx.Model(&models.Provider{}).
		Where("id = ?", providerID).
		Updates(map[string]interface{}{
			"rating_avg":    agg.Avg,
			"total_reviews": agg.Count,
		}).Error
}
