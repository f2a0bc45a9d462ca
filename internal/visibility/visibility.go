// Package visibility decides which open service requests a provider sees.
// The rule is pure so it can be applied to any candidate set: the request
// service runs the category and already-quoted parts in SQL and this package
// applies the geographic gate before pagination.
package visibility

import (
	"github.com/google/uuid"

	"github.com/dienstly/dienstly-backend/internal/geo"
	"github.com/dienstly/dienstly-backend/internal/models"
)

// Covers reports whether the provider's service area contains the request
// location.
func Covers(p *models.Provider, r *models.ServiceRequest) bool {
	return geo.WithinRadius(p.ServiceAreaLat, p.ServiceAreaLng, r.Lat, r.Lng, p.ServiceAreaRadius)
}

// Visible is the full rule: request open, category among the provider's
// active service categories, not already quoted by the provider, and inside
// the service area. A provider with zero active services sees nothing.
func Visible(p *models.Provider, categoryIDs []uuid.UUID, r *models.ServiceRequest, alreadyQuoted bool) bool {
	if r.Status != models.RequestStatusOpen || alreadyQuoted {
		return false
	}
	if !containsID(categoryIDs, r.CategoryID) {
		return false
	}
	return Covers(p, r)
}

// FilterByArea keeps the requests inside the provider's service area,
// preserving order. Runs before pagination so pages are never under-filled
// by the geographic gate.
func FilterByArea(p *models.Provider, requests []models.ServiceRequest) []models.ServiceRequest {
	out := make([]models.ServiceRequest, 0, len(requests))
	for i := range requests {
		if Covers(p, &requests[i]) {
			out = append(out, requests[i])
		}
	}
	return out
}

// Page slices the filtered set for the requested page (1-based).
func Page(requests []models.ServiceRequest, page, limit int) []models.ServiceRequest {
	start := (page - 1) * limit
	if start >= len(requests) {
		return []models.ServiceRequest{}
	}
	end := start + limit
	if end > len(requests) {
		end = len(requests)
	}
	return requests[start:end]
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
