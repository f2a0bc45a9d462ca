package dto

import "github.com/dienstly/dienstly-backend/internal/models"

type AdminDashboardResponse struct {
	Users     AdminUserStats     `json:"users"`
	Providers AdminProviderStats `json:"providers"`
	Requests  AdminRequestStats  `json:"requests"`
	Bookings  AdminBookingStats  `json:"bookings"`
	Revenue   AdminRevenueStats  `json:"revenue"`
}

type AdminUserStats struct {
	Total       int64 `json:"total"`
	NewThisWeek int64 `json:"new_this_week"`
}

type AdminProviderStats struct {
	Total           int64 `json:"total"`
	PendingApproval int64 `json:"pending_approval"`
}

type AdminRequestStats struct {
	Total       int64 `json:"total"`
	Active      int64 `json:"active"`
	NewThisWeek int64 `json:"new_this_week"`
}

type AdminBookingStats struct {
	Total          int64   `json:"total"`
	Completed      int64   `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
}

type AdminRevenueStats struct {
	Total float64 `json:"total"`
}

type UserListResponse struct {
	Data []models.User `json:"data"`
	Meta ListMeta      `json:"meta"`
}

type UpdateUserRequest struct {
	IsVerified *bool `json:"is_verified,omitempty"`
}

// RevenueReportEntry is one day of paid completed-booking revenue.
type RevenueReportEntry struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}
