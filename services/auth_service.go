package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/tuananhtran-web/orderbanhmi/entity"
	"github.com/tuananhtran-web/orderbanhmi/repository"
	"github.com/tuananhtran-web/orderbanhmi/utils"
)

// Distinct login rejections; each surfaces its own message.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPendingApproval    = errors.New("account pending approval")
	ErrAccountLocked      = errors.New("account locked")
)

// AuthService owns login/logout/registration and session restoration.
type AuthService struct {
	UserRepo *repository.UserRepository

	jwtSecret string
	jwtTTL    time.Duration

	bootstrapUsername string
	bootstrapPassword string

	Events EventSink
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration, bootUser, bootPass string) *AuthService {
	return &AuthService{
		UserRepo:          repo,
		jwtSecret:         secret,
		jwtTTL:            ttl,
		bootstrapUsername: bootUser,
		bootstrapPassword: bootPass,
	}
}

// BootstrapUser is the synthetic store-independent administrator identity.
func (s *AuthService) BootstrapUser() *entity.User {
	return &entity.User{
		Name:     "Administrator",
		Username: s.bootstrapUsername,
		Role:     entity.RoleAdmin,
		Status:   entity.StatusActive,
		IsOnline: true,
	}
}

// Login checks the fixed bootstrap credential before touching the store, so
// the administrator can always get in even when the store is unreachable.
// Regular users match case-insensitively on the handle or exactly on phone,
// with an exact password; pending and locked staff get distinct rejections.
func (s *AuthService) Login(username, password string) (string, *entity.User, bool, error) {
	handle := strings.TrimSpace(username)
	pass := strings.TrimSpace(password)

	if handle == s.bootstrapUsername && pass == s.bootstrapPassword {
		token, err := utils.GenerateToken(0, string(entity.RoleAdmin), true, s.jwtSecret, s.jwtTTL)
		if err != nil {
			return "", nil, false, errors.New("cannot generate token")
		}
		return token, s.BootstrapUser(), true, nil
	}

	user, err := s.UserRepo.FindForLogin(handle, pass)
	if err != nil {
		return "", nil, false, ErrInvalidCredentials
	}

	if user.Role == entity.RoleStaff {
		switch user.Status {
		case entity.StatusPending:
			return "", nil, false, ErrPendingApproval
		case entity.StatusLocked:
			return "", nil, false, ErrAccountLocked
		}
	}

	// Best-effort: login succeeds even when the online flag does not land.
	if err := s.UserRepo.SetOnline(user.ID, true); err != nil {
		log.Printf("login: mark online %d: %v", user.ID, err)
	}
	user.IsOnline = true

	token, err := utils.GenerateToken(user.ID, string(user.Role), false, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, false, errors.New("cannot generate token")
	}
	return token, user, false, nil
}

// Logout always succeeds locally; the offline mark is best-effort and skipped
// entirely for the bootstrap session, which has no stored record.
func (s *AuthService) Logout(userID uint, bootstrap bool) {
	if bootstrap || userID == 0 {
		return
	}
	if err := s.UserRepo.SetOnline(userID, false); err != nil {
		log.Printf("logout: mark offline %d: %v", userID, err)
	}
}

// Register creates a pending staff account; the phone doubles as the handle.
func (s *AuthService) Register(name, phone, password string) (*entity.User, error) {
	phone = strings.TrimSpace(phone)
	count, err := s.UserRepo.CountByPhone(phone)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("phone already registered")
	}

	user := &entity.User{
		Name:     strings.TrimSpace(name),
		Username: phone,
		Password: password,
		Role:     entity.RoleStaff,
		Status:   entity.StatusPending,
		Phone:    phone,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	publish(s.Events, "users", ChangeAdded, user)
	return user, nil
}

// Restore re-resolves a remembered session against the fresh user list. Only
// active users restore; anything else fails so the client clears its
// persisted id.
func (s *AuthService) Restore(userID uint, bootstrap bool) (*entity.User, error) {
	if bootstrap {
		return s.BootstrapUser(), nil
	}
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Status == entity.StatusLocked {
		return nil, ErrAccountLocked
	}
	if user.Status != entity.StatusActive {
		return nil, ErrPendingApproval
	}
	return user, nil
}

// UpdateProfile is the self-service edit: name, password, avatar.
func (s *AuthService) UpdateProfile(userID uint, name, password, avatar string) (*entity.User, error) {
	updates := map[string]any{}
	if name != "" {
		updates["name"] = name
	}
	if password != "" {
		updates["password"] = password
	}
	if avatar != "" {
		updates["avatar"] = avatar
	}
	if len(updates) > 0 {
		if err := s.UserRepo.Update(userID, updates); err != nil {
			return nil, err
		}
	}
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	publish(s.Events, "users", ChangeModified, user)
	return user, nil
}
