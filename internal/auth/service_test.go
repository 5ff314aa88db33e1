package auth

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	tokens := NewTokenService("test-secret", time.Hour)
	service, err := NewService(NewBcryptHasher(4), tokens, zap.NewNop())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return service
}

func TestLoginDemoCredential(t *testing.T) {
	service := newTestService(t)

	user, token, err := service.Login("demo@vibrovolt.com", "demo123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Email != "demo@vibrovolt.com" || user.Name != "Demo User" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if token == "" {
		t.Fatalf("expected a signed token")
	}

	claims, err := NewTokenService("test-secret", time.Hour).ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service := newTestService(t)

	cases := []struct{ email, password string }{
		{"demo@vibrovolt.com", "wrong"},
		{"someone@else.com", "demo123"},
		{"", ""},
	}
	for _, tc := range cases {
		if _, _, err := service.Login(tc.email, tc.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("login %q/%q: expected ErrInvalidCredentials, got %v", tc.email, tc.password, err)
		}
	}
}

func TestRegisterAndLogin(t *testing.T) {
	service := newTestService(t)

	user, token, err := service.Register("Asha", "asha@example.com", "+91 90000 00000", "secret99")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" || user.ID == "" {
		t.Fatalf("expected user id and token")
	}

	if _, _, err := service.Login("Asha@Example.com", "secret99"); err != nil {
		t.Fatalf("login after register: %v", err)
	}

	if _, _, err := service.Register("Asha", "asha@example.com", "x", "secret99"); !errors.Is(err, ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	service := newTestService(t)

	user, _, err := service.Register("Asha", "asha@example.com", "+91 90000 00000", "secret99")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	updated, err := service.UpdateProfile(user.ID, "Asha K", "asha.k@example.com", "")
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Name != "Asha K" || updated.Email != "asha.k@example.com" {
		t.Fatalf("unexpected profile: %+v", updated)
	}
	if updated.Phone != "+91 90000 00000" {
		t.Fatalf("empty phone must keep existing value, got %q", updated.Phone)
	}

	if _, err := service.UpdateProfile("missing", "X", "", ""); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if _, err := service.UpdateProfile(user.ID, "", "demo@vibrovolt.com", ""); !errors.Is(err, ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse for taken email, got %v", err)
	}
}
