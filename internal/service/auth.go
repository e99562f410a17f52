package service

import (
	"regexp"
	"strings"
	"time"

	"github.com/mariaed-2103/Dashboard-Financeiro/internal/apperr"
	"github.com/mariaed-2103/Dashboard-Financeiro/internal/models"
	"github.com/mariaed-2103/Dashboard-Financeiro/internal/util"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService handles registration and login.
type AuthService struct {
	DB         *gorm.DB
	JWTSecret  string
	JWTIssuer  string
	TokenTTL   time.Duration
	BcryptCost int
	Categories *CategoryService
}

func NewAuthService(db *gorm.DB, secret, issuer string, ttlHours, bcryptCost int, categories *CategoryService) *AuthService {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		DB:         db,
		JWTSecret:  secret,
		JWTIssuer:  issuer,
		TokenTTL:   time.Duration(ttlHours) * time.Hour,
		BcryptCost: bcryptCost,
		Categories: categories,
	}
}

// Register stores a new user with a hashed password and seeds the
// default categories for them.
func (s *AuthService) Register(name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	if !emailRe.MatchString(email) {
		return nil, apperr.Validation("invalid email")
	}
	if len(password) < 6 {
		return nil, apperr.Validation("password must have at least 6 characters")
	}

	var count int64
	if err := s.DB.Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Validation("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Validation("email already registered")
		}
		return nil, err
	}

	if err := s.Categories.CreateDefaults(user.Email); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies credentials and returns a signed bearer token.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil, apperr.Auth("invalid credentials")
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperr.Auth("invalid credentials")
	}

	token, err := util.GenerateToken(s.JWTSecret, s.JWTIssuer, user.Email, s.TokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}
