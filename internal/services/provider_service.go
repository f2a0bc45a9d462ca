package services

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/dienstly/dienstly-backend/internal/apperr"
	"github.com/dienstly/dienstly-backend/internal/dto"
	"github.com/dienstly/dienstly-backend/internal/geo"
	"github.com/dienstly/dienstly-backend/internal/models"
)

// ProviderFilter is the typed search filter for the public provider list.
// Zero-valued fields are ignored; no untyped query maps.
type ProviderFilter struct {
	CategorySlug string
	MinRating    float64
	Lat          *float64
	Lng          *float64
	RadiusKm     float64
	Page         int
	Limit        int
}

// Normalize clamps pagination to sane bounds.
func (f *ProviderFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 10
	}
}

func (f *ProviderFilter) scope(db *gorm.DB) *gorm.DB {
	q := db.Where("is_approved = true")
	if f.MinRating > 0 {
		q = q.Where("rating_avg >= ?", f.MinRating)
	}
	if f.CategorySlug != "" {
		q = q.Where("EXISTS (SELECT 1 FROM services s JOIN categories c ON c.id = s.category_id"+
			" WHERE s.provider_id = providers.id AND s.is_active = true AND c.slug = ?)", f.CategorySlug)
	}
	return q
}

type ProviderService struct {
	db *gorm.DB
}

func NewProviderService(db *gorm.DB) *ProviderService {
	return &ProviderService{db: db}
}

// Create registers a provider profile for a user of type provider. At most
// one profile per user.
func (s *ProviderService) Create(userID uuid.UUID, req *dto.CreateProviderRequest) (*models.Provider, error) {
	var existing models.Provider
	if err := s.db.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		return nil, apperr.Conflict("user already has a provider profile")
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, apperr.NotFound("user not found")
	}
	if user.UserType != models.UserTypeProvider {
		return nil, apperr.Forbidden("user must be registered as a provider")
	}

	if req.ServiceAreaRadius < 1 || req.ServiceAreaRadius > 100 {
		return nil, apperr.Validation("service_area_radius must be between 1 and 100 km")
	}

	provider := models.Provider{
		ID:                uuid.New(),
		UserID:            userID,
		CompanyName:       req.CompanyName,
		TaxID:             req.TaxID,
		Description:       req.Description,
		ExperienceYears:   req.ExperienceYears,
		ServiceAreaLat:    req.ServiceAreaLat,
		ServiceAreaLng:    req.ServiceAreaLng,
		ServiceAreaRadius: req.ServiceAreaRadius,
		Documents:         toJSONArray(req.Documents),
	}

	if err := s.db.Create(&provider).Error; err != nil {
		return nil, err
	}

	provider.User = user
	return &provider, nil
}

// List returns approved providers matching the filter, highest rated first.
// The geographic gate runs over the full candidate set before pagination.
func (s *ProviderService) List(filter *ProviderFilter) ([]models.Provider, int64, error) {
	filter.Normalize()

	var providers []models.Provider
	q := filter.scope(s.db.Model(&models.Provider{})).
		Preload("User").
		Preload("Services", "is_active = true").
		Preload("Services.Category").
		Order("rating_avg DESC")

	if err := q.Find(&providers).Error; err != nil {
		return nil, 0, err
	}

	if filter.Lat != nil && filter.Lng != nil && filter.RadiusKm > 0 {
		filtered := providers[:0]
		for _, p := range providers {
			if geo.WithinRadius(*filter.Lat, *filter.Lng, p.ServiceAreaLat, p.ServiceAreaLng, filter.RadiusKm) {
				filtered = append(filtered, p)
			}
		}
		providers = filtered
	}

	total := int64(len(providers))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(providers) {
		return []models.Provider{}, total, nil
	}
	end := start + filter.Limit
	if end > len(providers) {
		end = len(providers)
	}
	return providers[start:end], total, nil
}

func (s *ProviderService) GetByID(id uuid.UUID) (*models.Provider, error) {
	var provider models.Provider
	err := s.db.Preload("User").
		Preload("Services", "is_active = true").
		Preload("Services.Category").
		First(&provider, "id = ?", id).Error
	if err != nil {
		return nil, apperr.NotFound("provider not found")
	}
	return &provider, nil
}

func (s *ProviderService) GetByUserID(userID uuid.UUID) (*models.Provider, error) {
	var provider models.Provider
	err := s.db.Preload("User").
		Preload("Services").
		Preload("Services.Category").
		Where("user_id = ?", userID).First(&provider).Error
	if err != nil {
		return nil, apperr.NotFound("provider profile not found")
	}
	return &provider, nil
}

func (s *ProviderService) Update(id uuid.UUID, userID uuid.UUID, req *dto.UpdateProviderRequest) (*models.Provider, error) {
	var provider models.Provider
	if err := s.db.First(&provider, "id = ?", id).Error; err != nil {
		return nil, apperr.NotFound("provider not found")
	}
	if provider.UserID != userID {
		return nil, apperr.Forbidden("not authorized to update this provider")
	}

	updates := map[string]interface{}{}
	if req.CompanyName != nil {
		updates["company_name"] = *req.CompanyName
	}
	if req.TaxID != nil {
		updates["tax_id"] = *req.TaxID
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ExperienceYears != nil {
		updates["experience_years"] = *req.ExperienceYears
	}
	if req.ServiceAreaLat != nil {
		updates["service_area_lat"] = *req.ServiceAreaLat
	}
	if req.ServiceAreaLng != nil {
		updates["service_area_lng"] = *req.ServiceAreaLng
	}
	if req.ServiceAreaRadius != nil {
		if *req.ServiceAreaRadius < 1 || *req.ServiceAreaRadius > 100 {
			return nil, apperr.Validation("service_area_radius must be between 1 and 100 km")
		}
		updates["service_area_radius"] = *req.ServiceAreaRadius
	}

	if len(updates) > 0 {
		if err := s.db.Model(&provider).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

func (s *ProviderService) Approve(id uuid.UUID, approved bool) (*models.Provider, error) {
	var provider models.Provider
	if err := s.db.First(&provider, "id = ?", id).Error; err != nil {
		return nil, apperr.NotFound("provider not found")
	}

	if err := s.db.Model(&provider).Update("is_approved", approved).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

// Stats aggregates the provider's quote conversion and earnings.
func (s *ProviderService) Stats(userID uuid.UUID) (*dto.ProviderStatsResponse, error) {
	provider, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	var totalQuotes, acceptedQuotes, activeBookings, completedBookings int64
	var totalEarnings float64

	if err := s.db.Model(&models.Quote{}).Where("provider_id = ?", provider.ID).Count(&totalQuotes).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Quote{}).
		Where("provider_id = ? AND status = ?", provider.ID, models.QuoteStatusAccepted).
		Count(&acceptedQuotes).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Booking{}).
		Where("provider_id = ? AND status IN ?", provider.ID, activeBookingStatuses).
		Count(&activeBookings).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Booking{}).
		Where("provider_id = ? AND status = ?", provider.ID, models.BookingStatusCompleted).
		Count(&completedBookings).Error; err != nil {
		return nil, err
	}
	err = s.db.Model(&models.Booking{}).
		Where("provider_id = ? AND status = ? AND payment_status = ?",
			provider.ID, models.BookingStatusCompleted, models.PaymentStatusPaid).
		Select("COALESCE(SUM(total_price), 0)").Scan(&totalEarnings).Error
	if err != nil {
		return nil, err
	}

	conversionRate := 0.0
	if totalQuotes > 0 {
		conversionRate = float64(acceptedQuotes) / float64(totalQuotes) * 100
	}

	return &dto.ProviderStatsResponse{
		TotalQuotes:       totalQuotes,
		AcceptedQuotes:    acceptedQuotes,
		ConversionRate:    conversionRate,
		ActiveBookings:    activeBookings,
		CompletedBookings: completedBookings,
		TotalEarnings:     totalEarnings,
		Rating:            provider.RatingAvg,
		TotalReviews:      provider.TotalReviews,
	}, nil
}

var activeBookingStatuses = []models.BookingStatus{
	models.BookingStatusPending,
	models.BookingStatusConfirmed,
	models.BookingStatusInProgress,
}

// Dashboard summarizes the provider's pipeline: visible new requests,
// active orders, completed count, plus short lists of each.
func (s *ProviderService) Dashboard(userID uuid.UUID, requests *RequestService) (*dto.ProviderDashboardResponse, error) {
	provider, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	visible, visibleTotal, err := requests.VisibleToProvider(provider, &RequestFilter{Page: 1, Limit: 3})
	if err != nil {
		return nil, err
	}

	var activeOrders, completed int64
	if err := s.db.Model(&models.Booking{}).
		Where("provider_id = ? AND status IN ?", provider.ID, activeBookingStatuses).
		Count(&activeOrders).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Booking{}).
		Where("provider_id = ? AND status = ?", provider.ID, models.BookingStatusCompleted).
		Count(&completed).Error; err != nil {
		return nil, err
	}

	var activeBookings []models.Booking
	err = s.db.Preload("Customer").
		Preload("Quote.Request.Category").
		Where("provider_id = ? AND status IN ?", provider.ID, activeBookingStatuses).
		Order("scheduled_date ASC").
		Limit(3).
		Find(&activeBookings).Error
	if err != nil {
		return nil, err
	}

	return &dto.ProviderDashboardResponse{
		Stats: dto.DashboardStats{
			NewRequests:  visibleTotal,
			ActiveOrders: activeOrders,
			Completed:    completed,
			Rating:       provider.RatingAvg,
		},
		RecentRequests: visible,
		ActiveBookings: activeBookings,
	}, nil
}

// --- Service (offering) management ---

func (s *ProviderService) CreateService(userID uuid.UUID, req *dto.CreateServiceRequest, categories *CategoryService) (*models.Service, error) {
	provider, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	category, err := categories.Resolve(req.CategoryID)
	if err != nil {
		return nil, err
	}

	if req.Title == "" {
		return nil, apperr.Validation("title is required")
	}
	priceType := models.PriceType(req.PriceType)
	switch priceType {
	case models.PriceTypeFixed, models.PriceTypeHourly, models.PriceTypeQuote:
	default:
		return nil, apperr.Validation("price_type must be fixed, hourly or quote")
	}
	if req.PriceMin != nil && req.PriceMax != nil && *req.PriceMin > *req.PriceMax {
		return nil, apperr.Validation("price_min must not exceed price_max")
	}

	service := models.Service{
		ID:          uuid.New(),
		ProviderID:  provider.ID,
		CategoryID:  category.ID,
		Title:       req.Title,
		Description: req.Description,
		PriceType:   priceType,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		Images:      toJSONArray(req.Images),
		IsActive:    true,
	}

	if err := s.db.Create(&service).Error; err != nil {
		return nil, err
	}
	service.Category = *category
	return &service, nil
}

func (s *ProviderService) UpdateService(userID uuid.UUID, serviceID uuid.UUID, req *dto.UpdateServiceRequest) (*models.Service, error) {
	provider, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	var service models.Service
	if err := s.db.First(&service, "id = ?", serviceID).Error; err != nil {
		return nil, apperr.NotFound("service not found")
	}
	if service.ProviderID != provider.ID {
		return nil, apperr.Forbidden("not authorized to update this service")
	}

	priceMin, priceMax := service.PriceMin, service.PriceMax
	if req.PriceMin != nil {
		priceMin = req.PriceMin
	}
	if req.PriceMax != nil {
		priceMax = req.PriceMax
	}
	if priceMin != nil && priceMax != nil && *priceMin > *priceMax {
		return nil, apperr.Validation("price_min must not exceed price_max")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.PriceType != nil {
		pt := models.PriceType(*req.PriceType)
		switch pt {
		case models.PriceTypeFixed, models.PriceTypeHourly, models.PriceTypeQuote:
		default:
			return nil, apperr.Validation("price_type must be fixed, hourly or quote")
		}
		updates["price_type"] = pt
	}
	if req.PriceMin != nil {
		updates["price_min"] = *req.PriceMin
	}
	if req.PriceMax != nil {
		updates["price_max"] = *req.PriceMax
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(&service).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &service, nil
}

func (s *ProviderService) DeleteService(userID uuid.UUID, serviceID uuid.UUID) error {
	provider, err := s.GetByUserID(userID)
	if err != nil {
		return err
	}

	result := s.db.Where("id = ? AND provider_id = ?", serviceID, provider.ID).Delete(&models.Service{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("service not found")
	}
	return nil
}

func toJSONArray(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}
