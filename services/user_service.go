package services

import (
	"errors"
	"fmt"

	"github.com/vanshikasingh06/health-mate/models"
	"github.com/vanshikasingh06/health-mate/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdatePicture is the only mutable part of a profile; the health
// attributes stay as registered.
func (s *UserService) UpdatePicture(userID uint, base64Image string) (string, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return "", err
	}

	url, err := utils.UploadProfilePicture(base64Image, user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to upload picture: %w", err)
	}

	user.ProfilePicture = url
	if err := s.db.Save(user).Error; err != nil {
		return "", err
	}
	return url, nil
}
