package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/dienstly/dienstly-backend/internal/apperr"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", apperr.NotFound("missing"), fiber.StatusNotFound},
		{"forbidden", apperr.Forbidden("nope"), fiber.StatusForbidden},
		{"conflict", apperr.Conflict("taken"), fiber.StatusConflict},
		{"invalid state", apperr.InvalidState("wrong phase"), fiber.StatusUnprocessableEntity},
		{"validation", apperr.Validation("bad input"), fiber.StatusBadRequest},
		{"unauthorized", apperr.Unauthorized("who"), fiber.StatusUnauthorized},
		{"plain error", errors.New("boom"), fiber.StatusInternalServerError},
		{"nil-kind wrap", apperr.Wrap(apperr.KindUnknown, "wrapped", errors.New("boom")), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.StatusCode(tt.err))
		})
	}
}

func TestKindOfSurvivesWrapping(t *testing.T) {
	inner := apperr.NotFound("request not found")
	outer := fmt.Errorf("loading request: %w", inner)

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(outer))
	assert.Equal(t, fiber.StatusNotFound, apperr.StatusCode(outer))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperr.Wrap(apperr.KindConflict, "saving quote", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "saving quote")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestValidationf(t *testing.T) {
	err := apperr.Validationf("radius must be between %d and %d km", 1, 100)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, "radius must be between 1 and 100 km", err.Error())
}
