package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/msomdec/atelier/internal/domain"
	"github.com/msomdec/atelier/internal/repository/sqlite"
	"github.com/msomdec/atelier/internal/service"
)

const testJWTSecret = "test-secret-key-for-unit-tests-0123456789"

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestAuthService(t *testing.T) (*service.AuthService, *sqlite.DB) {
	t.Helper()
	db := newTestDB(t)
	// Use cost 4 for fast tests.
	return service.NewAuthService(db.Users(), testJWTSecret, 4), db
}

func registerInput(email string) service.RegisterInput {
	return service.RegisterInput{
		Email:           email,
		DisplayName:     "Test User",
		Password:        "password123",
		ConfirmPassword: "password123",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	auth, _ := newTestAuthService(t)

	user, err := auth.Register(context.Background(), registerInput("  New@Example.com "))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected user ID to be set")
	}
	if user.Email != "new@example.com" {
		t.Fatalf("expected normalized email new@example.com, got %s", user.Email)
	}
	if user.PasswordHash == "password123" {
		t.Fatal("password stored in clear")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, registerInput("dup@example.com")); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := auth.Register(ctx, registerInput("dup@example.com"))
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(in *service.RegisterInput)
	}{
		{"empty email", func(in *service.RegisterInput) { in.Email = "" }},
		{"malformed email", func(in *service.RegisterInput) { in.Email = "not-an-email" }},
		{"empty display name", func(in *service.RegisterInput) { in.DisplayName = "  " }},
		{"short password", func(in *service.RegisterInput) { in.Password, in.ConfirmPassword = "short", "short" }},
		{"password mismatch", func(in *service.RegisterInput) { in.ConfirmPassword = "different456" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := registerInput("case@example.com")
			tc.mutate(&in)
			_, err := auth.Register(ctx, in)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, registerInput("login@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	t.Run("success", func(t *testing.T) {
		got, token, err := auth.Login(ctx, "LOGIN@example.com", "password123")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if got.ID != user.ID {
			t.Fatalf("expected logged in user %d, got %d", user.ID, got.ID)
		}
		userID, err := auth.ValidateToken(token)
		if err != nil {
			t.Fatalf("ValidateToken: %v", err)
		}
		if userID != user.ID {
			t.Fatalf("expected user ID %d, got %d", user.ID, userID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		if _, _, err := auth.Login(ctx, "login@example.com", "wrongpassword"); !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		if _, _, err := auth.Login(ctx, "nobody@example.com", "password123"); !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestAuthService_ValidateToken_Rejects(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, registerInput("tamper@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, token, err := auth.Login(ctx, "tamper@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	sign := func(method jwt.SigningMethod, key any, exp time.Time) string {
		t.Helper()
		claims := service.Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(exp),
		}}
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return s
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-valid-jwt"},
		{"tampered signature", token[:len(token)-5] + "XXXXX"},
		{"expired", sign(jwt.SigningMethodHS256, []byte(testJWTSecret), time.Now().Add(-time.Minute))},
		{"wrong secret", sign(jwt.SigningMethodHS256, []byte("wrong-secret-wrong-secret-wrong-secret"), time.Now().Add(time.Hour))},
		{"alg none", sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, time.Now().Add(time.Hour))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := auth.ValidateToken(tc.token); !errors.Is(err, domain.ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}
