package services

import (
	"errors"
	"log"

	"github.com/tuananhtran-web/orderbanhmi/entity"
	"github.com/tuananhtran-web/orderbanhmi/repository"
)

// StaffService is the admin side of account management. Locking or deleting a
// user revokes their live session immediately through the event sink; no
// reload or re-login check is involved.
type StaffService struct {
	Repo     *repository.UserRepository
	Notifier *NotificationService
	Events   EventSink
}

func NewStaffService(repo *repository.UserRepository, notifier *NotificationService) *StaffService {
	return &StaffService{Repo: repo, Notifier: notifier}
}

func (s *StaffService) List() ([]entity.User, error) {
	return s.Repo.List()
}

// AddStaff creates an account that can log in right away, unlike
// self-registration which starts pending.
func (s *StaffService) AddStaff(name, username, password, phone string) (*entity.User, error) {
	if name == "" || username == "" || password == "" {
		return nil, errors.New("name, username and password are required")
	}
	user := &entity.User{
		Name:     name,
		Username: username,
		Password: password,
		Role:     entity.RoleStaff,
		Status:   entity.StatusActive,
		Phone:    phone,
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}
	publish(s.Events, "users", ChangeAdded, user)
	return user, nil
}

// Approve activates a pending registration and tells the user.
func (s *StaffService) Approve(id uint) error {
	if err := s.setStatus(id, entity.StatusActive); err != nil {
		return err
	}
	if err := s.Notifier.Notify(id, "Your account has been approved!", entity.NotifySystem); err != nil {
		log.Printf("staff approve: notify %d: %v", id, err)
	}
	return nil
}

// Lock freezes the account and force-terminates any live session.
func (s *StaffService) Lock(id uint) error {
	if err := s.setStatus(id, entity.StatusLocked); err != nil {
		return err
	}
	if s.Events != nil {
		s.Events.ForceLogout(id)
	}
	return nil
}

func (s *StaffService) Unlock(id uint) error {
	return s.setStatus(id, entity.StatusActive)
}

func (s *StaffService) setStatus(id uint, status entity.UserStatus) error {
	if err := s.Repo.Update(id, map[string]any{"status": status}); err != nil {
		return err
	}
	user, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	publish(s.Events, "users", ChangeModified, user)
	return nil
}

// Delete removes the account; the vanished user's session terminates like a
// lockout.
func (s *StaffService) Delete(id uint) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	publish(s.Events, "users", ChangeRemoved, map[string]any{"id": id})
	if s.Events != nil {
		s.Events.ForceLogout(id)
	}
	return nil
}
