package service

import (
	"strings"

	"github.com/mariaed-2103/Dashboard-Financeiro/internal/apperr"
	"github.com/mariaed-2103/Dashboard-Financeiro/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxCustomCategories caps non-default categories per user. Checked in the
// application only; two concurrent creates can exceed it by one. The
// normalized-name uniqueness, in contrast, is backed by a DB unique index.
const maxCustomCategories = 20

// defaultCategoryNames are seeded for every new user.
var defaultCategoryNames = []string{"Food", "Transport", "Housing", "Leisure", "Health"}

// CategoryService manages per-user categories.
type CategoryService struct {
	DB *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{DB: db}
}

// normalizeName canonicalizes a category name for uniqueness comparison.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ListActive returns all active categories owned by the user.
func (s *CategoryService) ListActive(userEmail string) ([]models.Category, error) {
	var categories []models.Category
	if err := s.DB.
		Where("user_email = ? AND active = ?", userEmail, true).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Create adds a custom category for the user.
func (s *CategoryService) Create(userEmail, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("category name is required")
	}

	var customCount int64
	if err := s.DB.Model(&models.Category{}).
		Where("user_email = ? AND is_default = ?", userEmail, false).
		Count(&customCount).Error; err != nil {
		return nil, err
	}
	if customCount >= maxCustomCategories {
		return nil, apperr.Limit("category limit reached")
	}

	normalized := normalizeName(name)

	var existing int64
	if err := s.DB.Model(&models.Category{}).
		Where("user_email = ? AND normalized_name = ?", userEmail, normalized).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, apperr.Conflict("category already exists")
	}

	category := models.Category{
		ID:             uuid.NewString(),
		UserEmail:      userEmail,
		Name:           name,
		NormalizedName: normalized,
		IsDefault:      false,
		Active:         true,
	}
	if err := s.DB.Create(&category).Error; err != nil {
		// concurrent writers race past the count check; the unique index
		// on (user_email, normalized_name) is the authority
		if isUniqueViolation(err) {
			return nil, apperr.Conflict("category already exists")
		}
		return nil, err
	}
	return &category, nil
}

// Rename changes a category's display name (and its normalized form).
func (s *CategoryService) Rename(userEmail, id, newName string) (*models.Category, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, apperr.Validation("category name is required")
	}

	var category models.Category
	if err := s.DB.
		Where("id = ? AND user_email = ?", id, userEmail).
		First(&category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("category not found")
		}
		return nil, err
	}

	if category.IsDefault {
		return nil, apperr.Policy("default categories cannot be renamed")
	}

	category.Name = newName
	category.NormalizedName = normalizeName(newName)
	if err := s.DB.Save(&category).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict("category already exists")
		}
		return nil, err
	}
	return &category, nil
}

// SoftDelete marks a category inactive. Categories still referenced by
// non-deleted transactions cannot be removed.
func (s *CategoryService) SoftDelete(userEmail, id string) error {
	var category models.Category
	if err := s.DB.
		Where("id = ? AND user_email = ?", id, userEmail).
		First(&category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperr.NotFound("category not found")
		}
		return err
	}

	if category.IsDefault {
		return apperr.Policy("default categories cannot be removed")
	}

	var inUse int64
	if err := s.DB.Model(&models.Transaction{}).
		Where("user_email = ? AND category_id = ? AND deleted_at IS NULL", userEmail, id).
		Count(&inUse).Error; err != nil {
		return err
	}
	if inUse > 0 {
		return apperr.Policy("category has transactions and cannot be removed")
	}

	category.Active = false
	return s.DB.Save(&category).Error
}

// CreateDefaults idempotently seeds the default categories for a new user,
// skipping any name the user already holds.
func (s *CategoryService) CreateDefaults(userEmail string) error {
	for _, name := range defaultCategoryNames {
		normalized := normalizeName(name)

		var existing int64
		if err := s.DB.Model(&models.Category{}).
			Where("user_email = ? AND normalized_name = ?", userEmail, normalized).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			continue
		}

		category := models.Category{
			ID:             uuid.NewString(),
			UserEmail:      userEmail,
			Name:           name,
			NormalizedName: normalized,
			IsDefault:      true,
			Active:         true,
		}
		if err := s.DB.Create(&category).Error; err != nil {
			if isUniqueViolation(err) {
				continue
			}
			return err
		}
	}
	return nil
}

// isUniqueViolation detects a unique-index constraint failure from SQLite.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
