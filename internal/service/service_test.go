package service

import (
	"fmt"
	"testing"

	"github.com/mariaed-2103/Dashboard-Financeiro/internal/database"
	"github.com/mariaed-2103/Dashboard-Financeiro/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database and migrates the schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	// a single connection keeps the in-memory database alive
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// seedCategory inserts a category directly, bypassing service rules.
func seedCategory(t *testing.T, db *gorm.DB, userEmail, name string, isDefault, active bool) models.Category {
	t.Helper()

	category := models.Category{
		ID:             uuid.NewString(),
		UserEmail:      userEmail,
		Name:           name,
		NormalizedName: normalizeName(name),
		IsDefault:      isDefault,
		Active:         active,
	}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category %q: %v", name, err)
	}
	return category
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}
