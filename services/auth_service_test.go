package services

import (
	"errors"
	"testing"
	"time"

	"github.com/tuananhtran-web/orderbanhmi/entity"
	"github.com/tuananhtran-web/orderbanhmi/repository"

	"gorm.io/gorm"
)

func newAuthFixture(t *testing.T) (*gorm.DB, *AuthService) {
	t.Helper()
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour, "admin", "13681368")
	return db, svc
}

func TestBootstrapLoginBypassesStore(t *testing.T) {
	_, svc := newAuthFixture(t)

	token, user, bootstrap, err := svc.Login("admin", "13681368")
	if err != nil {
		t.Fatalf("bootstrap login: %v", err)
	}
	if !bootstrap {
		t.Error("bootstrap flag should be set")
	}
	if token == "" {
		t.Error("bootstrap login should issue a token")
	}
	if user.Role != entity.RoleAdmin {
		t.Errorf("bootstrap role = %s, want admin", user.Role)
	}
}

func TestLoginHandleMatching(t *testing.T) {
	db, svc := newAuthFixture(t)
	mustCreate(t, db, &entity.User{
		Name: "Linh", Username: "Linh", Password: "secret",
		Role: entity.RoleStaff, Status: entity.StatusActive, Phone: "0901234567",
	})

	// Case-insensitive username.
	if _, _, _, err := svc.Login("LINH", "secret"); err != nil {
		t.Errorf("case-insensitive handle login: %v", err)
	}
	// Phone as handle.
	if _, _, _, err := svc.Login("0901234567", "secret"); err != nil {
		t.Errorf("phone handle login: %v", err)
	}
	// Exact password only.
	if _, _, _, err := svc.Login("linh", "SECRET"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginDistinguishesPendingAndLocked(t *testing.T) {
	db, svc := newAuthFixture(t)
	mustCreate(t, db, &entity.User{Name: "P", Username: "pending", Password: "pw", Role: entity.RoleStaff, Status: entity.StatusPending})
	mustCreate(t, db, &entity.User{Name: "L", Username: "locked", Password: "pw", Role: entity.RoleStaff, Status: entity.StatusLocked})

	if _, _, _, err := svc.Login("pending", "pw"); !errors.Is(err, ErrPendingApproval) {
		t.Errorf("pending login = %v, want ErrPendingApproval", err)
	}
	if _, _, _, err := svc.Login("locked", "pw"); !errors.Is(err, ErrAccountLocked) {
		t.Errorf("locked login = %v, want ErrAccountLocked", err)
	}
}

func TestLoginMarksOnline(t *testing.T) {
	db, svc := newAuthFixture(t)
	staff := &entity.User{Name: "Linh", Username: "linh", Password: "pw", Role: entity.RoleStaff, Status: entity.StatusActive}
	mustCreate(t, db, staff)

	if _, _, _, err := svc.Login("linh", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	var fresh entity.User
	db.First(&fresh, staff.ID)
	if !fresh.IsOnline {
		t.Error("login should mark the user online")
	}

	svc.Logout(staff.ID, false)
	db.First(&fresh, staff.ID)
	if fresh.IsOnline {
		t.Error("logout should mark the user offline")
	}
}

func TestRegisterRejectsDuplicatePhone(t *testing.T) {
	_, svc := newAuthFixture(t)

	user, err := svc.Register("Mai", "0909999999", "pw1234")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Status != entity.StatusPending {
		t.Errorf("fresh registration status = %s, want pending", user.Status)
	}
	if user.Username != "0909999999" {
		t.Errorf("registration should use the phone as handle, got %q", user.Username)
	}

	if _, err := svc.Register("Mai Again", "0909999999", "pw1234"); err == nil {
		t.Fatal("duplicate phone should be rejected")
	}
}

func TestRestoreOnlyActive(t *testing.T) {
	db, svc := newAuthFixture(t)
	active := &entity.User{Name: "A", Username: "a", Password: "pw", Role: entity.RoleStaff, Status: entity.StatusActive}
	locked := &entity.User{Name: "B", Username: "b", Password: "pw", Role: entity.RoleStaff, Status: entity.StatusLocked}
	mustCreate(t, db, active)
	mustCreate(t, db, locked)

	if _, err := svc.Restore(active.ID, false); err != nil {
		t.Errorf("active user should restore: %v", err)
	}
	if _, err := svc.Restore(locked.ID, false); !errors.Is(err, ErrAccountLocked) {
		t.Errorf("locked restore = %v, want ErrAccountLocked", err)
	}
	if _, err := svc.Restore(9999, false); err == nil {
		t.Error("deleted user should not restore")
	}
	if user, err := svc.Restore(0, true); err != nil || user.Role != entity.RoleAdmin {
		t.Errorf("bootstrap restore = (%v, %v), want the synthetic admin", user, err)
	}
}

func TestUpdateProfile(t *testing.T) {
	db, svc := newAuthFixture(t)
	staff := &entity.User{Name: "Old", Username: "linh", Password: "oldpw", Role: entity.RoleStaff, Status: entity.StatusActive}
	mustCreate(t, db, staff)

	updated, err := svc.UpdateProfile(staff.ID, "New Name", "newpw", "")
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Name != "New Name" {
		t.Errorf("name = %q", updated.Name)
	}
	if _, _, _, err := svc.Login("linh", "newpw"); err != nil {
		t.Errorf("login with new password: %v", err)
	}
	if _, _, _, err := svc.Login("linh", "oldpw"); err == nil {
		t.Error("old password should no longer work")
	}
}
