package service

import (
	"testing"

	"github.com/mariaed-2103/Dashboard-Financeiro/internal/apperr"
	"github.com/mariaed-2103/Dashboard-Financeiro/internal/util"

	"gorm.io/gorm"
)

func newAuth(db *gorm.DB) *AuthService {
	// bcrypt cost 4 keeps the tests fast
	return NewAuthService(db, "test-secret", "finance-dashboard", 1, 4, NewCategoryService(db))
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	auth := newAuth(db)

	user, err := auth.Register("Ana", "Ana@Example.com ", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "ana@example.com" {
		t.Errorf("email = %q, want lowercased trimmed ana@example.com", user.Email)
	}
	if user.PasswordHash == "secret123" || user.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}

	token, logged, err := auth.Login("ana@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.ID != user.ID {
		t.Errorf("logged user id = %q, want %q", logged.ID, user.ID)
	}

	claims, err := util.ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Email != "ana@example.com" {
		t.Errorf("token email = %q, want ana@example.com", claims.Email)
	}
}

func TestRegister_SeedsDefaultCategories(t *testing.T) {
	db := newTestDB(t)
	auth := newAuth(db)

	if _, err := auth.Register("Ana", "ana@example.com", "secret123"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	categories, err := auth.Categories.ListActive("ana@example.com")
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(categories) != 5 {
		t.Errorf("got %d default categories, want 5", len(categories))
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	auth := newAuth(db)

	if _, err := auth.Register("Ana", "ana@example.com", "secret123"); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := auth.Register("Other Ana", "ANA@example.com", "different456")
	if !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("duplicate register error = %v, want validation", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	db := newTestDB(t)
	auth := newAuth(db)

	cases := []struct {
		name, email, password string
	}{
		{"", "ana@example.com", "secret123"},
		{"Ana", "not-an-email", "secret123"},
		{"Ana", "", "secret123"},
		{"Ana", "ana@example.com", "short"},
	}
	for _, c := range cases {
		if _, err := auth.Register(c.name, c.email, c.password); !apperr.Is(err, apperr.KindValidation) {
			t.Errorf("Register(%q, %q, ...) error = %v, want validation", c.name, c.email, err)
		}
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	db := newTestDB(t)
	auth := newAuth(db)

	if _, err := auth.Register("Ana", "ana@example.com", "secret123"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := auth.Login("ana@example.com", "wrong-pass"); !apperr.Is(err, apperr.KindAuth) {
		t.Errorf("wrong password error = %v, want auth", err)
	}
	if _, _, err := auth.Login("nobody@example.com", "secret123"); !apperr.Is(err, apperr.KindAuth) {
		t.Errorf("unknown email error = %v, want auth", err)
	}
}

func TestUserService_PasswordFlow(t *testing.T) {
	db := newTestDB(t)
	auth := newAuth(db)
	users := NewUserService(db, 4)

	if _, err := auth.Register("Ana", "ana@example.com", "secret123"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := users.UpdatePassword("ana@example.com", "wrong", "newpass456"); !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("wrong current password error = %v, want validation", err)
	}
	if err := users.UpdatePassword("ana@example.com", "secret123", "newpass456"); err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}

	if _, _, err := auth.Login("ana@example.com", "newpass456"); err != nil {
		t.Errorf("login with new password: %v", err)
	}
	if _, _, err := auth.Login("ana@example.com", "secret123"); !apperr.Is(err, apperr.KindAuth) {
		t.Errorf("login with old password error = %v, want auth", err)
	}
}

func TestUserService_Profile(t *testing.T) {
	db := newTestDB(t)
	auth := newAuth(db)
	users := NewUserService(db, 4)

	if _, err := auth.Register("Ana", "ana@example.com", "secret123"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	updated, err := users.UpdateProfile("ana@example.com", "Ana Clara")
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "Ana Clara" {
		t.Errorf("name = %q, want Ana Clara", updated.Name)
	}

	if _, err := users.Profile("ghost@example.com"); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("missing profile error = %v, want not found", err)
	}
}
