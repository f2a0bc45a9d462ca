package dto

import "github.com/dienstly/dienstly-backend/internal/models"

type CreateReviewRequest struct {
	BookingID string  `json:"booking_id"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment,omitempty"`
}

type ReplyToReviewRequest struct {
	Reply string `json:"reply"`
}

type ReviewListResponse struct {
	Data  []models.Review `json:"data"`
	Stats ReviewStats     `json:"stats"`
	Meta  ListMeta        `json:"meta"`
}

// ReviewStats carries the provider's aggregate and per-star breakdown.
type ReviewStats struct {
	Average   float64     `json:"average"`
	Total     int64       `json:"total"`
	Breakdown map[int]int `json:"breakdown"`
}
