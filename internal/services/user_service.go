package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/varsitymarket/varsity-market-backend/internal/dto"
	"github.com/varsitymarket/varsity-market-backend/internal/models"
	"gorm.io/gorm"
)

var ErrInvalidPhone = errors.New("phone number must be in E.164 format, e.g. +27821234567")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// UpdateProfile merges non-nil fields into the user record. An empty phone
// number clears it; anything else must be E.164.
func (s *UserService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, errors.New("name cannot be empty")
		}
		user.Name = *req.Name
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.University != nil {
		user.University = *req.University
	}
	if req.PhoneNumber != nil {
		if *req.PhoneNumber != "" && !models.ValidPhoneNumber(*req.PhoneNumber) {
			return nil, ErrInvalidPhone
		}
		user.PhoneNumber = *req.PhoneNumber
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
