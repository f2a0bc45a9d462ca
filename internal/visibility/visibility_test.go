package visibility_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dienstly/dienstly-backend/internal/models"
	"github.com/dienstly/dienstly-backend/internal/visibility"
)

func berlinProvider() *models.Provider {
	return &models.Provider{
		ID:                uuid.New(),
		ServiceAreaLat:    52.52,
		ServiceAreaLng:    13.405,
		ServiceAreaRadius: 25,
	}
}

func requestAt(lat, lng float64, categoryID uuid.UUID, status models.RequestStatus) models.ServiceRequest {
	return models.ServiceRequest{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Lat:        lat,
		Lng:        lng,
		Status:     status,
	}
}

func TestVisible(t *testing.T) {
	provider := berlinProvider()
	cleaning := uuid.New()
	moving := uuid.New()
	categories := []uuid.UUID{cleaning}

	tests := []struct {
		name          string
		request       models.ServiceRequest
		categories    []uuid.UUID
		alreadyQuoted bool
		want          bool
	}{
		{
			name:       "open request in category and area",
			request:    requestAt(52.53, 13.40, cleaning, models.RequestStatusOpen),
			categories: categories,
			want:       true,
		},
		{
			name:       "request not open",
			request:    requestAt(52.53, 13.40, cleaning, models.RequestStatusInProgress),
			categories: categories,
			want:       false,
		},
		{
			name:       "category not offered",
			request:    requestAt(52.53, 13.40, moving, models.RequestStatusOpen),
			categories: categories,
			want:       false,
		},
		{
			name:          "already quoted",
			request:       requestAt(52.53, 13.40, cleaning, models.RequestStatusOpen),
			categories:    categories,
			alreadyQuoted: true,
			want:          false,
		},
		{
			name:       "outside service area",
			request:    requestAt(48.137, 11.575, cleaning, models.RequestStatusOpen),
			categories: categories,
			want:       false,
		},
		{
			name:       "no active services sees nothing",
			request:    requestAt(52.53, 13.40, cleaning, models.RequestStatusOpen),
			categories: nil,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := visibility.Visible(provider, tt.categories, &tt.request, tt.alreadyQuoted)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterByArea(t *testing.T) {
	provider := berlinProvider()
	cat := uuid.New()

	near1 := requestAt(52.53, 13.40, cat, models.RequestStatusOpen)
	far := requestAt(48.137, 11.575, cat, models.RequestStatusOpen)
	near2 := requestAt(52.50, 13.42, cat, models.RequestStatusOpen)

	filtered := visibility.FilterByArea(provider, []models.ServiceRequest{near1, far, near2})

	assert.Len(t, filtered, 2)
	assert.Equal(t, near1.ID, filtered[0].ID)
	assert.Equal(t, near2.ID, filtered[1].ID)
}

func TestPage(t *testing.T) {
	cat := uuid.New()
	var requests []models.ServiceRequest
	for i := 0; i < 5; i++ {
		requests = append(requests, requestAt(52.52, 13.405, cat, models.RequestStatusOpen))
	}

	assert.Len(t, visibility.Page(requests, 1, 2), 2)
	assert.Len(t, visibility.Page(requests, 3, 2), 1)
	assert.Empty(t, visibility.Page(requests, 4, 2), "past the end yields an empty page")
	assert.Equal(t, requests[2].ID, visibility.Page(requests, 2, 2)[0].ID)
}

func TestPageFollowsFilter(t *testing.T) {
	// The geographic gate runs before pagination, so a page is filled
	// from the filtered set rather than leaving gaps.
	provider := berlinProvider()
	cat := uuid.New()

	var requests []models.ServiceRequest
	for i := 0; i < 4; i++ {
		requests = append(requests, requestAt(52.52, 13.405, cat, models.RequestStatusOpen))
		requests = append(requests, requestAt(48.137, 11.575, cat, models.RequestStatusOpen))
	}

	filtered := visibility.FilterByArea(provider, requests)
	page := visibility.Page(filtered, 1, 3)

	assert.Len(t, page, 3)
	for _, r := range page {
		assert.True(t, visibility.Covers(provider, &r))
	}
}
