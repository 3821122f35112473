package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/varsitymarket/varsity-market-backend/internal/dto"
	"github.com/varsitymarket/varsity-market-backend/internal/models"
	"gorm.io/gorm"
)

var ErrInvalidRole = errors.New("role must be user or admin")

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

func (s *AdminService) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (s *AdminService) UpdateUserRole(userID uuid.UUID, role string) (*models.User, error) {
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, ErrInvalidRole
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if err := s.db.Model(&user).Update("role", role).Error; err != nil {
		return nil, err
	}
	user.Role = role
	return &user, nil
}

// DeleteUser removes the account and its refresh tokens. Products and
// conversations are kept; conversation listings tolerate the dangling
// references.
func (s *AdminService) DeleteUser(userID uuid.UUID) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return ErrUserNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		tx.Where("user_id = ?", userID).Delete(&models.RefreshToken{})
		return tx.Delete(&user).Error
	})
}

func (s *AdminService) ListProducts() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Preload("Seller").Order("created_at DESC").Find(&products).Error
	return products, err
}

func (s *AdminService) DeleteProduct(productID uuid.UUID) error {
	result := s.db.Delete(&models.Product{}, "id = ?", productID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Statistics aggregates marketplace-wide counts for the admin dashboard.
func (s *AdminService) Statistics() (*dto.StatisticsResponse, error) {
	stats := &dto.StatisticsResponse{}

	s.db.Model(&models.User{}).Count(&stats.TotalUsers)
	s.db.Model(&models.Product{}).Count(&stats.TotalProducts)
	s.db.Model(&models.Conversation{}).Count(&stats.TotalConversations)
	s.db.Model(&models.Message{}).Count(&stats.TotalMessages)
	s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&stats.AdminCount)

	var avg *float64
	if err := s.db.Model(&models.Product{}).Select("AVG(price)").Scan(&avg).Error; err == nil && avg != nil {
		stats.AvgProductPrice = *avg
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	s.db.Model(&models.User{}).Where("created_at > ?", weekAgo).Count(&stats.RecentUsers)
	s.db.Model(&models.Product{}).Where("created_at > ?", weekAgo).Count(&stats.RecentProducts)

	return stats, nil
}
