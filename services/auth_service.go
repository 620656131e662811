package services

import (
	"errors"
	"time"

	"github.com/vanshikasingh06/health-mate/models"
	"github.com/vanshikasingh06/health-mate/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Name     string
	Age      int
	Height   float64
	Weight   float64
	Gender   string
}

// Register creates a user after checking both unique identities. Profile
// fields (age, height, weight, gender) are fixed at this point.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	var existing models.User
	err := s.db.Where("username = ? OR email = ?", input.Username, input.Email).
		First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateUser
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
		Age:          input.Age,
		Height:       input.Height,
		Weight:       input.Weight,
		Gender:       input.Gender,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	// Best effort; registration stands even if the mailer is down.
	if err := utils.SendWelcomeEmail(user.Email, user.Name); err != nil {
		utils.L().Warn("welcome_email_failed", zap.Error(err), zap.Uint("user_id", user.ID))
	}

	return &user, nil
}

// Authenticate checks one username/password pair and returns a signed
// token. The caller gets the same error whichever half was wrong.
func (s *AuthService) Authenticate(username, password string) (string, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateToken(user.ID, user.Username)
}

// ForgotPassword issues a short-lived reset code. It never reveals whether
// the email exists.
func (s *AuthService) ForgotPassword(email string) error {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.Save(&user).Error; err != nil {
		return err
	}

	if err := utils.SendResetEmail(user.Email, token); err != nil {
		utils.L().Warn("reset_email_failed", zap.Error(err), zap.Uint("user_id", user.ID))
	}
	return nil
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	var user models.User
	err := s.db.Where("reset_token = ?", token).First(&user).Error
	if err != nil || token == "" || time.Now().After(user.ResetTokenExp) {
		return ErrInvalidResetToken
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.Save(&user).Error
}
