package dto

import "github.com/dienstly/dienstly-backend/internal/models"

type CreateProviderRequest struct {
	CompanyName       *string  `json:"company_name,omitempty"`
	TaxID             *string  `json:"tax_id,omitempty"`
	Description       string   `json:"description"`
	ExperienceYears   int      `json:"experience_years"`
	ServiceAreaLat    float64  `json:"service_area_lat"`
	ServiceAreaLng    float64  `json:"service_area_lng"`
	ServiceAreaRadius float64  `json:"service_area_radius"`
	Documents         []string `json:"documents,omitempty"`
}

type UpdateProviderRequest struct {
	CompanyName       *string  `json:"company_name,omitempty"`
	TaxID             *string  `json:"tax_id,omitempty"`
	Description       *string  `json:"description,omitempty"`
	ExperienceYears   *int     `json:"experience_years,omitempty"`
	ServiceAreaLat    *float64 `json:"service_area_lat,omitempty"`
	ServiceAreaLng    *float64 `json:"service_area_lng,omitempty"`
	ServiceAreaRadius *float64 `json:"service_area_radius,omitempty"`
}

type ApproveProviderRequest struct {
	IsApproved bool `json:"is_approved"`
}

type ProviderListResponse struct {
	Data []models.Provider `json:"data"`
	Meta ListMeta          `json:"meta"`
}

type ProviderStatsResponse struct {
	TotalQuotes       int64   `json:"total_quotes"`
	AcceptedQuotes    int64   `json:"accepted_quotes"`
	ConversionRate    float64 `json:"conversion_rate"`
	ActiveBookings    int64   `json:"active_bookings"`
	CompletedBookings int64   `json:"completed_bookings"`
	TotalEarnings     float64 `json:"total_earnings"`
	Rating            float64 `json:"rating"`
	TotalReviews      int     `json:"total_reviews"`
}

type ProviderDashboardResponse struct {
	Stats          DashboardStats          `json:"stats"`
	RecentRequests []models.ServiceRequest `json:"recent_requests"`
	ActiveBookings []models.Booking        `json:"active_bookings"`
}

type DashboardStats struct {
	NewRequests  int64   `json:"new_requests"`
	ActiveOrders int64   `json:"active_orders"`
	Completed    int64   `json:"completed"`
	Rating       float64 `json:"rating"`
}
