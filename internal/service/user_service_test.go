package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"yatube/internal/models"
)

func availableUserRepo() *userRepoStub {
	repo := noopUserRepo()
	repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		return nil, models.NewNotFoundError("user", email)
	}
	repo.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return nil, models.NewNotFoundError("user", username)
	}
	return repo
}

func TestUserServiceRegisterHashesPassword(t *testing.T) {
	repo := availableUserRepo()
	var created *models.User
	repo.createFn = func(_ context.Context, u *models.User) error {
		u.ID = 1
		created = u
		return nil
	}

	svc := NewUserService(repo)
	user, err := svc.Register(context.Background(), " leo ", "Leo@Example.COM", "correct horse")
	if err != nil {
		t.Fatal(err)
	}
	if user.Username != "leo" || user.Email != "leo@example.com" {
		t.Fatalf("expected normalized identity, got %+v", user)
	}
	if created.Password == "correct horse" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("correct horse")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestUserServiceRegisterShortPassword(t *testing.T) {
	svc := NewUserService(availableUserRepo())
	_, err := svc.Register(context.Background(), "leo", "leo@example.com", "short")
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestUserServiceRegisterDuplicateEmail(t *testing.T) {
	repo := availableUserRepo()
	repo.getByEmailFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: 1}, nil
	}

	svc := NewUserService(repo)
	_, err := svc.Register(context.Background(), "leo", "leo@example.com", "correct horse")
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "CONFLICT" {
		t.Fatalf("expected conflict app error, got %#v", err)
	}
}

func TestUserServiceAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	repo := noopUserRepo()
	repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		if email != "leo@example.com" {
			return nil, models.NewNotFoundError("user", email)
		}
		return &models.User{ID: 1, Email: email, Password: string(hash)}, nil
	}

	svc := NewUserService(repo)
	user, err := svc.Authenticate(context.Background(), "LEO@example.com", "correct horse")
	if err != nil {
		t.Fatal(err)
	}
	if user.ID != 1 {
		t.Fatalf("unexpected user %+v", user)
	}

	for _, tc := range []struct{ email, password string }{
		{"leo@example.com", "wrong"},
		{"ghost@example.com", "correct horse"},
	} {
		_, err := svc.Authenticate(context.Background(), tc.email, tc.password)
		var appErr *models.AppError
		if !errors.As(err, &appErr) || appErr.Code != "UNAUTHORIZED" {
			t.Fatalf("expected unauthorized for %q, got %#v", tc.email, err)
		}
	}
}
