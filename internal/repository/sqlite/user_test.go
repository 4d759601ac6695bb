package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/msomdec/atelier/internal/domain"
	"github.com/msomdec/atelier/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestUserRepository_CreateAndLookup(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{Email: "owner@example.com", DisplayName: "Closet Owner", PasswordHash: "hashedpw"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID == 0 || user.CreatedAt.IsZero() {
		t.Fatalf("expected ID and CreatedAt to be set, got %+v", user)
	}

	ignoreTimes := cmpopts.IgnoreFields(domain.User{}, "CreatedAt", "UpdatedAt")

	byID, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if diff := cmp.Diff(user, byID, ignoreTimes); diff != "" {
		t.Fatalf("GetByID mismatch (-want +got):\n%s", diff)
	}

	byEmail, err := repo.GetByEmail(ctx, "owner@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if diff := cmp.Diff(user, byEmail, ignoreTimes); diff != "" {
		t.Fatalf("GetByEmail mismatch (-want +got):\n%s", diff)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.User{Email: "dup@example.com", DisplayName: "One", PasswordHash: "h1"}); err != nil {
		t.Fatalf("Create first: %v", err)
	}
	err := repo.Create(ctx, &domain.User{Email: "dup@example.com", DisplayName: "Two", PasswordHash: "h2"})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	lookups := map[string]func() error{
		"by id": func() error {
			_, err := repo.GetByID(ctx, 99999)
			return err
		},
		"by email": func() error {
			_, err := repo.GetByEmail(ctx, "nobody@example.com")
			return err
		},
	}
	for name, lookup := range lookups {
		t.Run(name, func(t *testing.T) {
			if err := lookup(); !errors.Is(err, domain.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}
}
