package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dienstly/dienstly-backend/internal/models"
)

func TestRequestStatusTransitions(t *testing.T) {
	tests := []struct {
		from models.RequestStatus
		to   models.RequestStatus
		want bool
	}{
		{models.RequestStatusOpen, models.RequestStatusInProgress, true},
		{models.RequestStatusOpen, models.RequestStatusCancelled, true},
		{models.RequestStatusOpen, models.RequestStatusCompleted, false},
		{models.RequestStatusInProgress, models.RequestStatusCompleted, true},
		{models.RequestStatusInProgress, models.RequestStatusOpen, true},
		{models.RequestStatusInProgress, models.RequestStatusCancelled, false},
		{models.RequestStatusCompleted, models.RequestStatusOpen, false},
		{models.RequestStatusCancelled, models.RequestStatusOpen, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestQuoteStatusTransitions(t *testing.T) {
	terminal := []models.QuoteStatus{
		models.QuoteStatusAccepted,
		models.QuoteStatusRejected,
		models.QuoteStatusExpired,
	}

	for _, next := range terminal {
		assert.True(t, models.QuoteStatusPending.CanTransitionTo(next), "pending -> %s", next)
	}
	assert.False(t, models.QuoteStatusPending.IsTerminal())

	for _, from := range terminal {
		assert.True(t, from.IsTerminal())
		for _, next := range append(terminal, models.QuoteStatusPending) {
			assert.False(t, from.CanTransitionTo(next), "%s -> %s must be blocked", from, next)
		}
	}
}

func TestBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		from models.BookingStatus
		to   models.BookingStatus
		want bool
	}{
		{models.BookingStatusPending, models.BookingStatusConfirmed, true},
		{models.BookingStatusPending, models.BookingStatusCancelled, true},
		{models.BookingStatusPending, models.BookingStatusInProgress, false},
		{models.BookingStatusConfirmed, models.BookingStatusInProgress, true},
		{models.BookingStatusConfirmed, models.BookingStatusCancelled, true},
		{models.BookingStatusConfirmed, models.BookingStatusCompleted, false},
		{models.BookingStatusInProgress, models.BookingStatusCompleted, true},
		{models.BookingStatusInProgress, models.BookingStatusCancelled, false},
		{models.BookingStatusCompleted, models.BookingStatusConfirmed, false},
		{models.BookingStatusCancelled, models.BookingStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	assert.True(t, models.BookingStatusCompleted.IsTerminal())
	assert.True(t, models.BookingStatusCancelled.IsTerminal())
	assert.False(t, models.BookingStatusPending.IsTerminal())
	assert.False(t, models.BookingStatusConfirmed.IsTerminal())
	assert.False(t, models.BookingStatusInProgress.IsTerminal())
}

func TestValidPaymentStatus(t *testing.T) {
	valid := []models.PaymentStatus{
		models.PaymentStatusPending,
		models.PaymentStatusPaid,
		models.PaymentStatusRefunded,
		models.PaymentStatusFailed,
	}
	for _, s := range valid {
		assert.True(t, models.ValidPaymentStatus(s))
	}
	assert.False(t, models.ValidPaymentStatus("authorized"))
	assert.False(t, models.ValidPaymentStatus(""))
}
