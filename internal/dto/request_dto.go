package dto

import "github.com/dienstly/dienstly-backend/internal/models"

type CreateRequestRequest struct {
	// CategoryID accepts a category UUID or slug.
	CategoryID    string   `json:"category_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	PostalCode    string   `json:"postal_code"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
	PreferredDate *string  `json:"preferred_date,omitempty"`
	BudgetMin     *float64 `json:"budget_min,omitempty"`
	BudgetMax     *float64 `json:"budget_max,omitempty"`
	Images        []string `json:"images,omitempty"`
}

type UpdateRequestRequest struct {
	Title         *string  `json:"title,omitempty"`
	Description   *string  `json:"description,omitempty"`
	PreferredDate *string  `json:"preferred_date,omitempty"`
	BudgetMin     *float64 `json:"budget_min,omitempty"`
	BudgetMax     *float64 `json:"budget_max,omitempty"`
}

type RequestListResponse struct {
	Data []models.ServiceRequest `json:"data"`
	Meta ListMeta                `json:"meta"`
}
