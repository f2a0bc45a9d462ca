package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dienstly/dienstly-backend/internal/apperr"
	"github.com/dienstly/dienstly-backend/internal/dto"
	"github.com/dienstly/dienstly-backend/internal/models"
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// Dashboard aggregates platform-wide counters for the admin overview.
func (s *AdminService) Dashboard() (*dto.AdminDashboardResponse, error) {
	weekAgo := time.Now().AddDate(0, 0, -7)
	resp := &dto.AdminDashboardResponse{}

	if err := s.db.Model(&models.User{}).Count(&resp.Users.Total).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.User{}).Where("created_at >= ?", weekAgo).Count(&resp.Users.NewThisWeek).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Provider{}).Count(&resp.Providers.Total).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Provider{}).Where("is_approved = ?", false).Count(&resp.Providers.PendingApproval).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.ServiceRequest{}).Count(&resp.Requests.Total).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.ServiceRequest{}).
		Where("status IN ?", []models.RequestStatus{models.RequestStatusOpen, models.RequestStatusInProgress}).
		Count(&resp.Requests.Active).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.ServiceRequest{}).Where("created_at >= ?", weekAgo).Count(&resp.Requests.NewThisWeek).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Booking{}).Count(&resp.Bookings.Total).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusCompleted).
		Count(&resp.Bookings.Completed).Error; err != nil {
		return nil, err
	}
	if resp.Bookings.Total > 0 {
		resp.Bookings.CompletionRate = float64(resp.Bookings.Completed) / float64(resp.Bookings.Total) * 100
	}

	err := s.db.Model(&models.Booking{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where("payment_status = ?", models.PaymentStatusPaid).
		Scan(&resp.Revenue.Total).Error
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// ListUsers pages through all users, optionally matching a search term
// against email and name.
func (s *AdminService) ListUsers(search string, page, limit int) ([]models.User, int64, error) {
	query := s.db.Model(&models.User{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := query.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *AdminService) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, apperr.NotFound("user not found")
	}
	return &user, nil
}

func (s *AdminService) UpdateUser(id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.IsVerified != nil {
		updates["is_verified"] = *req.IsVerified
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser soft deletes the account and revokes its refresh tokens.
func (s *AdminService) DeleteUser(id uuid.UUID) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
}

// PendingProviders lists unapproved provider profiles, oldest first, so
// the queue is worked in arrival order.
func (s *AdminService) PendingProviders(page, limit int) ([]models.Provider, int64, error) {
	query := s.db.Model(&models.Provider{}).Where("is_approved = ?", false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var providers []models.Provider
	err := query.Preload("User").
		Order("created_at ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&providers).Error
	if err != nil {
		return nil, 0, err
	}
	return providers, total, nil
}

// RevenueReport sums paid completed-booking revenue per day over the
// given window, inclusive of both ends.
func (s *AdminService) RevenueReport(from, to time.Time) ([]dto.RevenueReportEntry, error) {
	if to.Before(from) {
		return nil, apperr.Validation("end date must not be before start date")
	}

	var entries []dto.RevenueReportEntry
	err := s.db.Model(&models.Booking{}).
		Select("TO_CHAR(completed_at, 'YYYY-MM-DD') AS date, SUM(total_price) AS revenue").
		Where("status = ? AND payment_status = ?", models.BookingStatusCompleted, models.PaymentStatusPaid).
		Where("completed_at >= ? AND completed_at < ?", from, to.AddDate(0, 0, 1)).
		Group("TO_CHAR(completed_at, 'YYYY-MM-DD')").
		Order("date ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
