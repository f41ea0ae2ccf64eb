package services

import (
	"errors"
	"log"

	"github.com/tuananhtran-web/orderbanhmi/entity"
	"github.com/tuananhtran-web/orderbanhmi/repository"
)

type ShiftService struct {
	Repo     *repository.ShiftRepository
	UserRepo *repository.UserRepository
	Notifier *NotificationService
	Events   EventSink
}

func NewShiftService(repo *repository.ShiftRepository, userRepo *repository.UserRepository, notifier *NotificationService) *ShiftService {
	return &ShiftService{Repo: repo, UserRepo: userRepo, Notifier: notifier}
}

type ShiftIn struct {
	Date      string `json:"date" binding:"required"`      // YYYY-MM-DD
	StartTime string `json:"startTime" binding:"required"` // HH:MM
	EndTime   string `json:"endTime" binding:"required"`
	StaffIDs  []uint `json:"staffIds" binding:"required"`
	Note      string `json:"note"`
}

// Create persists a shift and tells every assigned staff member. Shifts are
// read-only once created.
func (s *ShiftService) Create(in *ShiftIn) (*entity.Shift, error) {
	if len(in.StaffIDs) == 0 {
		return nil, errors.New("at least one staff member is required")
	}

	staff := make([]entity.User, 0, len(in.StaffIDs))
	for _, id := range in.StaffIDs {
		u, err := s.UserRepo.FindByID(id)
		if err != nil {
			return nil, errors.New("staff member not found")
		}
		staff = append(staff, *u)
	}

	shift := &entity.Shift{
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Note:      in.Note,
		Staff:     staff,
	}
	if err := s.Repo.Create(shift); err != nil {
		return nil, err
	}
	publish(s.Events, "shifts", ChangeAdded, shift)

	msg := "New shift " + in.Date + " " + in.StartTime + " - " + in.EndTime
	for _, u := range staff {
		if err := s.Notifier.Notify(u.ID, msg, entity.NotifyShift); err != nil {
			log.Printf("shift create: notify %d: %v", u.ID, err)
		}
	}
	return shift, nil
}

func (s *ShiftService) ListAll() ([]entity.Shift, error) {
	return s.Repo.ListAll()
}

// ForStaff returns a member's shifts from the given date on, oldest first.
func (s *ShiftService) ForStaff(staffID uint, fromDate string) ([]entity.Shift, error) {
	return s.Repo.ListForStaffFrom(staffID, fromDate)
}
