package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dienstly/dienstly-backend/internal/apperr"
	"github.com/dienstly/dienstly-backend/internal/dto"
	"github.com/dienstly/dienstly-backend/internal/models"
	"github.com/dienstly/dienstly-backend/internal/visibility"
)

// RequestFilter is the typed search filter for browsing service requests.
type RequestFilter struct {
	CategoryID   *uuid.UUID
	CategorySlug string
	Status       models.RequestStatus
	PostalPrefix string
	Lat          *float64
	Lng          *float64
	RadiusKm     float64
	Page         int
	Limit        int
}

func (f *RequestFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 10
	}
	if f.Status == "" {
		f.Status = models.RequestStatusOpen
	}
}

func (f *RequestFilter) scope(db *gorm.DB) *gorm.DB {
	q := db.Where("service_requests.status = ?", f.Status)
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.PostalPrefix != "" {
		prefix := f.PostalPrefix
		if len(prefix) > 2 {
			prefix = prefix[:2]
		}
		q = q.Where("postal_code LIKE ?", prefix+"%")
	}
	return q
}

type RequestService struct {
	db         *gorm.DB
	categories *CategoryService
}

func NewRequestService(db *gorm.DB, categories *CategoryService) *RequestService {
	return &RequestService{db: db, categories: categories}
}

func (s *RequestService) Create(customerID uuid.UUID, req *dto.CreateRequestRequest) (*models.ServiceRequest, error) {
	if req.Title == "" {
		return nil, apperr.Validation("title is required")
	}
	if req.BudgetMin != nil && req.BudgetMax != nil && *req.BudgetMin > *req.BudgetMax {
		return nil, apperr.Validation("budget_min must not exceed budget_max")
	}

	category, err := s.categories.Resolve(req.CategoryID)
	if err != nil {
		return nil, err
	}

	request := models.ServiceRequest{
		ID:          uuid.New(),
		CustomerID:  customerID,
		CategoryID:  category.ID,
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		PostalCode:  req.PostalCode,
		Lat:         req.Lat,
		Lng:         req.Lng,
		BudgetMin:   req.BudgetMin,
		BudgetMax:   req.BudgetMax,
		Images:      toJSONArray(req.Images),
		Status:      models.RequestStatusOpen,
	}

	if req.PreferredDate != nil {
		parsed, err := time.Parse(time.RFC3339, *req.PreferredDate)
		if err != nil {
			return nil, apperr.Validation("preferred_date must be RFC 3339")
		}
		request.PreferredDate = &parsed
	}

	if err := s.db.Create(&request).Error; err != nil {
		return nil, err
	}

	request.Category = *category
	return &request, nil
}

// List browses requests matching the filter. The geographic gate, if any,
// runs over the full candidate set before pagination so pages stay full.
func (s *RequestService) List(filter *RequestFilter) ([]models.ServiceRequest, int64, error) {
	filter.Normalize()

	if filter.CategorySlug != "" && filter.CategoryID == nil {
		category, err := s.categories.GetBySlug(filter.CategorySlug)
		if err != nil {
			return nil, 0, err
		}
		filter.CategoryID = &category.ID
	}

	var requests []models.ServiceRequest
	err := filter.scope(s.db.Model(&models.ServiceRequest{})).
		Preload("Customer").
		Preload("Category").
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}

	if filter.Lat != nil && filter.Lng != nil && filter.RadiusKm > 0 {
		center := models.Provider{
			ServiceAreaLat:    *filter.Lat,
			ServiceAreaLng:    *filter.Lng,
			ServiceAreaRadius: filter.RadiusKm,
		}
		requests = visibility.FilterByArea(&center, requests)
	}

	total := int64(len(requests))
	return visibility.Page(requests, filter.Page, filter.Limit), total, nil
}

// VisibleToProvider computes the open requests the provider should see:
// category match on active services, not already quoted, inside the service
// area, newest first. Distance filtering happens before pagination.
func (s *RequestService) VisibleToProvider(provider *models.Provider, filter *RequestFilter) ([]models.ServiceRequest, int64, error) {
	filter.Normalize()

	categoryIDs, err := s.activeCategoryIDs(provider.ID)
	if err != nil {
		return nil, 0, err
	}
	if filter.CategorySlug != "" {
		category, err := s.categories.GetBySlug(filter.CategorySlug)
		if err != nil {
			return nil, 0, err
		}
		if !containsUUID(categoryIDs, category.ID) {
			return []models.ServiceRequest{}, 0, nil
		}
		categoryIDs = []uuid.UUID{category.ID}
	}
	// No active services means no visible requests, not a wildcard.
	if len(categoryIDs) == 0 {
		return []models.ServiceRequest{}, 0, nil
	}

	var candidates []models.ServiceRequest
	err = s.db.Model(&models.ServiceRequest{}).
		Preload("Customer").
		Preload("Category").
		Where("status = ?", models.RequestStatusOpen).
		Where("category_id IN ?", categoryIDs).
		Where("NOT EXISTS (SELECT 1 FROM quotes WHERE quotes.request_id = service_requests.id AND quotes.provider_id = ?)", provider.ID).
		Order("created_at DESC").
		Find(&candidates).Error
	if err != nil {
		return nil, 0, err
	}

	matched := visibility.FilterByArea(provider, candidates)
	total := int64(len(matched))
	return visibility.Page(matched, filter.Page, filter.Limit), total, nil
}

func (s *RequestService) activeCategoryIDs(providerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.Model(&models.Service{}).
		Where("provider_id = ? AND is_active = true", providerID).
		Distinct().
		Pluck("category_id", &ids).Error
	return ids, err
}

func (s *RequestService) GetByID(id uuid.UUID) (*models.ServiceRequest, error) {
	var request models.ServiceRequest
	err := s.db.Preload("Customer").
		Preload("Category").
		Preload("Quotes", func(db *gorm.DB) *gorm.DB { return db.Order("quotes.created_at DESC") }).
		Preload("Quotes.Provider.User").
		First(&request, "id = ?", id).Error
	if err != nil {
		return nil, apperr.NotFound("service request not found")
	}
	return &request, nil
}

func (s *RequestService) ListByCustomer(customerID uuid.UUID, status models.RequestStatus) ([]models.ServiceRequest, error) {
	q := s.db.Preload("Category").Where("customer_id = ?", customerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var requests []models.ServiceRequest
	err := q.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (s *RequestService) Update(id uuid.UUID, userID uuid.UUID, req *dto.UpdateRequestRequest) (*models.ServiceRequest, error) {
	var request models.ServiceRequest
	if err := s.db.First(&request, "id = ?", id).Error; err != nil {
		return nil, apperr.NotFound("service request not found")
	}
	if request.CustomerID != userID {
		return nil, apperr.Forbidden("not authorized to update this request")
	}
	if request.Status != models.RequestStatusOpen {
		return nil, apperr.InvalidState("can only update open requests")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, apperr.Validation("title cannot be empty")
		}
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.BudgetMin != nil {
		updates["budget_min"] = *req.BudgetMin
	}
	if req.BudgetMax != nil {
		updates["budget_max"] = *req.BudgetMax
	}
	if req.PreferredDate != nil {
		parsed, err := time.Parse(time.RFC3339, *req.PreferredDate)
		if err != nil {
			return nil, apperr.Validation("preferred_date must be RFC 3339")
		}
		updates["preferred_date"] = parsed
	}

	if len(updates) > 0 {
		if err := s.db.Model(&request).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

// Cancel is terminal: a cancelled request cannot be reopened.
func (s *RequestService) Cancel(id uuid.UUID, userID uuid.UUID) (*models.ServiceRequest, error) {
	var request models.ServiceRequest
	if err := s.db.First(&request, "id = ?", id).Error; err != nil {
		return nil, apperr.NotFound("service request not found")
	}
	if request.CustomerID != userID {
		return nil, apperr.Forbidden("not authorized to cancel this request")
	}
	if !request.Status.CanTransitionTo(models.RequestStatusCancelled) {
		return nil, apperr.InvalidState("can only cancel open requests")
	}

	if err := s.db.Model(&request).Update("status", models.RequestStatusCancelled).Error; err != nil {
		return nil, err
	}
	request.Status = models.RequestStatusCancelled
	return &request, nil
}

func containsUUID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
