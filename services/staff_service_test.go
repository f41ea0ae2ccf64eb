package services

import (
	"testing"

	"github.com/tuananhtran-web/orderbanhmi/entity"
	"github.com/tuananhtran-web/orderbanhmi/repository"

	"gorm.io/gorm"
)

func newStaffFixture(t *testing.T) (*gorm.DB, *StaffService, *memorySink) {
	t.Helper()
	db := newTestDB(t)
	sink := &memorySink{}
	notifier := NewNotificationService(repository.NewNotificationRepository(db))
	notifier.Events = sink
	svc := NewStaffService(repository.NewUserRepository(db), notifier)
	svc.Events = sink
	return db, svc, sink
}

func TestAddStaffIsActiveImmediately(t *testing.T) {
	_, svc, _ := newStaffFixture(t)

	user, err := svc.AddStaff("Mai", "mai", "pw1234", "0908888888")
	if err != nil {
		t.Fatalf("add staff: %v", err)
	}
	if user.Status != entity.StatusActive {
		t.Errorf("admin-created account status = %s, want active", user.Status)
	}

	if _, err := svc.AddStaff("", "x", "pw", ""); err == nil {
		t.Error("missing name should be rejected")
	}
}

func TestApproveActivatesAndNotifies(t *testing.T) {
	db, svc, sink := newStaffFixture(t)
	pending := &entity.User{Name: "P", Username: "p", Password: "pw", Role: entity.RoleStaff, Status: entity.StatusPending}
	mustCreate(t, db, pending)

	if err := svc.Approve(pending.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	var fresh entity.User
	db.First(&fresh, pending.ID)
	if fresh.Status != entity.StatusActive {
		t.Errorf("status = %s, want active", fresh.Status)
	}
	if len(sink.notifications) != 1 || sink.notifications[0].UserID != pending.ID {
		t.Errorf("approval should notify the user, got %+v", sink.notifications)
	}
}

func TestLockRevokesLiveSession(t *testing.T) {
	db, svc, sink := newStaffFixture(t)
	staff := &entity.User{Name: "L", Username: "l", Password: "pw", Role: entity.RoleStaff, Status: entity.StatusActive}
	mustCreate(t, db, staff)

	if err := svc.Lock(staff.ID); err != nil {
		t.Fatalf("lock: %v", err)
	}

	var fresh entity.User
	db.First(&fresh, staff.ID)
	if fresh.Status != entity.StatusLocked {
		t.Errorf("status = %s, want locked", fresh.Status)
	}
	if len(sink.logouts) != 1 || sink.logouts[0] != staff.ID {
		t.Errorf("lock should force a logout, got %v", sink.logouts)
	}

	if err := svc.Unlock(staff.ID); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	db.First(&fresh, staff.ID)
	if fresh.Status != entity.StatusActive {
		t.Errorf("status after unlock = %s, want active", fresh.Status)
	}
}

func TestDeleteRevokesLiveSession(t *testing.T) {
	db, svc, sink := newStaffFixture(t)
	staff := &entity.User{Name: "D", Username: "d", Password: "pw", Role: entity.RoleStaff, Status: entity.StatusActive}
	mustCreate(t, db, staff)

	if err := svc.Delete(staff.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(sink.logouts) != 1 || sink.logouts[0] != staff.ID {
		t.Errorf("delete should force a logout, got %v", sink.logouts)
	}
	var count int64
	db.Model(&entity.User{}).Where("id = ?", staff.ID).Count(&count)
	if count != 0 {
		t.Error("user row should be gone")
	}
}
