package service

import (
	"strings"
	"time"

	"github.com/mariaed-2103/Dashboard-Financeiro/internal/apperr"
	"github.com/mariaed-2103/Dashboard-Financeiro/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles profile operations for the authenticated user.
type UserService struct {
	DB         *gorm.DB
	BcryptCost int
}

func NewUserService(db *gorm.DB, bcryptCost int) *UserService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{DB: db, BcryptCost: bcryptCost}
}

// Profile returns the user owning the email.
func (s *UserService) Profile(userEmail string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", userEmail).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes the display name.
func (s *UserService) UpdateProfile(userEmail, name string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}

	user, err := s.Profile(userEmail)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.UpdatedAt = time.Now()
	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePassword verifies the current password and stores a new hash.
func (s *UserService) UpdatePassword(userEmail, currentPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return apperr.Validation("password must have at least 6 characters")
	}

	user, err := s.Profile(userEmail)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return apperr.Validation("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.BcryptCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return s.DB.Save(user).Error
}

// UpdateAvatar stores the URL of an already-persisted avatar image.
func (s *UserService) UpdateAvatar(userEmail, avatarURL string) (*models.User, error) {
	user, err := s.Profile(userEmail)
	if err != nil {
		return nil, err
	}

	user.AvatarURL = avatarURL
	user.UpdatedAt = time.Now()
	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
