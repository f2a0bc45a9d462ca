package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dienstly/dienstly-backend/internal/apperr"
	"github.com/dienstly/dienstly-backend/internal/dto"
	"github.com/dienstly/dienstly-backend/internal/models"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// ListActive returns the public taxonomy, ordered by German name.
func (s *CategoryService) ListActive() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Where("is_active = true").Order("name_de ASC").Find(&categories).Error
	return categories, err
}

// ListAll returns every category including inactive ones (admin view).
func (s *CategoryService) ListAll() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Order("name_de ASC").Find(&categories).Error
	return categories, err
}

func (s *CategoryService) GetBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, apperr.NotFound("category not found")
	}
	return &category, nil
}

func (s *CategoryService) GetByID(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, apperr.NotFound("category not found")
	}
	return &category, nil
}

// Resolve looks up a category by UUID or, failing that, by slug.
func (s *CategoryService) Resolve(idOrSlug string) (*models.Category, error) {
	if id, err := uuid.Parse(idOrSlug); err == nil {
		return s.GetByID(id)
	}
	return s.GetBySlug(idOrSlug)
}

func (s *CategoryService) Create(req *dto.CreateCategoryRequest) (*models.Category, error) {
	if req.Slug == "" || req.NameDe == "" || req.NameEn == "" {
		return nil, apperr.Validation("slug, name_de and name_en are required")
	}

	var existing models.Category
	if err := s.db.Where("slug = ?", req.Slug).First(&existing).Error; err == nil {
		return nil, apperr.Conflict("category slug already exists")
	}

	category := models.Category{
		ID:       uuid.New(),
		Slug:     req.Slug,
		NameDe:   req.NameDe,
		NameEn:   req.NameEn,
		Icon:     req.Icon,
		IsActive: true,
	}
	if req.ParentID != nil {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			return nil, apperr.Validation("invalid parent_id")
		}
		if _, err := s.GetByID(parentID); err != nil {
			return nil, err
		}
		category.ParentID = &parentID
	}

	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Update(id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, apperr.NotFound("category not found")
	}

	updates := map[string]interface{}{}
	if req.NameDe != nil {
		updates["name_de"] = *req.NameDe
	}
	if req.NameEn != nil {
		updates["name_en"] = *req.NameEn
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(&category).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &category, nil
}

// Delete refuses to remove a category that services or requests still
// reference.
func (s *CategoryService) Delete(id uuid.UUID) error {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		return apperr.NotFound("category not found")
	}

	var serviceCount, requestCount int64
	if err := s.db.Model(&models.Service{}).Where("category_id = ?", id).Count(&serviceCount).Error; err != nil {
		return err
	}
	if err := s.db.Model(&models.ServiceRequest{}).Where("category_id = ?", id).Count(&requestCount).Error; err != nil {
		return err
	}
	if serviceCount > 0 || requestCount > 0 {
		return apperr.InvalidState("cannot delete category with existing services or requests")
	}

	if err := s.db.Delete(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("category not found")
		}
		return err
	}
	return nil
}
