package dto

import "github.com/dienstly/dienstly-backend/internal/models"

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status"`
}

type BookingListResponse struct {
	Data []models.Booking `json:"data"`
	Meta ListMeta         `json:"meta"`
}
