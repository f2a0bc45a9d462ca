package dto

import "github.com/dienstly/dienstly-backend/internal/models"

type CreateQuoteRequest struct {
	RequestID  string  `json:"request_id"`
	Price      float64 `json:"price"`
	Message    string  `json:"message"`
	ValidUntil string  `json:"valid_until"`
}

type AcceptQuoteRequest struct {
	ScheduledDate string `json:"scheduled_date"`
}

// AcceptQuoteResponse returns the terminalized quote together with the
// booking spawned from it.
type AcceptQuoteResponse struct {
	Quote   models.Quote   `json:"quote"`
	Booking models.Booking `json:"booking"`
}

type QuoteListResponse struct {
	Data []models.Quote `json:"data"`
	Meta ListMeta       `json:"meta"`
}
