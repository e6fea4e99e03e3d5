package service

import (
	"errors"
	"testing"

	"institute_backend/internal/model"
	"institute_backend/internal/repository"
	"institute_backend/internal/util"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), testConfig())
}

func TestStaffRegisterAndLogin(t *testing.T) {
	svc := newAuthFixture(t)

	user, err := svc.Register(RegisterReq{
		Name:     "Office Staff",
		Email:    "staff@pragati.edu",
		Password: "letmein7",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != model.Staff {
		t.Fatalf("role should default to staff, got %s", user.Role)
	}
	if !user.IsActive {
		t.Fatal("new user should be active")
	}

	token, err := svc.Login("staff@pragati.edu", "letmein7")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := util.ParseJWT(token, "test-secret-not-for-production")
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != model.Staff {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	// A staff token must not pass the student parser.
	if _, err := util.ParseStudentJWT(token, "test-secret-not-for-production"); err == nil {
		t.Fatal("staff token accepted as student token")
	}
}

func TestStaffRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthFixture(t)

	req := RegisterReq{Name: "One", Email: "dup@pragati.edu", Password: "letmein7"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(req); !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("expected ErrEmailRegistered, got %v", err)
	}
}

func TestStaffLoginFailures(t *testing.T) {
	svc := newAuthFixture(t)

	user, err := svc.Register(RegisterReq{Name: "Two", Email: "two@pragati.edu", Password: "letmein7"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login("two@pragati.edu", "wrong"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login("nobody@pragati.edu", "letmein7"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}

	// Deactivated accounts look like bad credentials.
	user.IsActive = false
	if err := svc.UserRepo.Update(user); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := svc.Login("two@pragati.edu", "letmein7"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("inactive user: expected ErrInvalidCredentials, got %v", err)
	}
}
