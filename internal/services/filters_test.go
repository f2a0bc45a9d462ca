package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dienstly/dienstly-backend/internal/apperr"
	"github.com/dienstly/dienstly-backend/internal/dto"
	"github.com/dienstly/dienstly-backend/internal/models"
)

func TestProviderFilterNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        ProviderFilter
		wantPage  int
		wantLimit int
	}{
		{"zero values get defaults", ProviderFilter{}, 1, 10},
		{"negative page clamped", ProviderFilter{Page: -3, Limit: 20}, 1, 20},
		{"oversized limit clamped", ProviderFilter{Page: 2, Limit: 500}, 2, 10},
		{"valid values untouched", ProviderFilter{Page: 3, Limit: 50}, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantLimit, tt.in.Limit)
		})
	}
}

func TestRequestFilterNormalize(t *testing.T) {
	f := RequestFilter{}
	f.Normalize()

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.Limit)
	assert.Equal(t, models.RequestStatusOpen, f.Status, "browse defaults to open requests")

	f = RequestFilter{Status: models.RequestStatusCompleted, Page: 2, Limit: 5}
	f.Normalize()
	assert.Equal(t, models.RequestStatusCompleted, f.Status)
	assert.Equal(t, 2, f.Page)
	assert.Equal(t, 5, f.Limit)
}

func TestValidateRegister(t *testing.T) {
	valid := func() dto.RegisterRequest {
		return dto.RegisterRequest{
			Email:       "anna@example.com",
			Password:    "supersecret",
			FirstName:   "Anna",
			LastName:    "Schmidt",
			UserType:    "customer",
			GDPRConsent: true,
		}
	}

	tests := []struct {
		name   string
		mutate func(*dto.RegisterRequest)
		wantOK bool
	}{
		{"valid customer", func(r *dto.RegisterRequest) {}, true},
		{"valid provider", func(r *dto.RegisterRequest) { r.UserType = "provider" }, true},
		{"bad email", func(r *dto.RegisterRequest) { r.Email = "not-an-email" }, false},
		{"short password", func(r *dto.RegisterRequest) { r.Password = "short" }, false},
		{"missing first name", func(r *dto.RegisterRequest) { r.FirstName = "" }, false},
		{"missing last name", func(r *dto.RegisterRequest) { r.LastName = "" }, false},
		{"admin not self-registerable", func(r *dto.RegisterRequest) { r.UserType = "admin" }, false},
		{"unknown user type", func(r *dto.RegisterRequest) { r.UserType = "robot" }, false},
		{"no gdpr consent", func(r *dto.RegisterRequest) { r.GDPRConsent = false }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)
			err := validateRegister(&req)
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			}
		})
	}
}

func TestHashTokenIsStable(t *testing.T) {
	a := hashToken("some-refresh-token")
	b := hashToken("some-refresh-token")
	c := hashToken("another-token")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64, "sha256 hex digest")
}
