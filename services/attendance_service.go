package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/tuananhtran-web/orderbanhmi/entity"
	"github.com/tuananhtran-web/orderbanhmi/repository"
)

// LatenessGraceMinutes is the slack on both shift boundaries: a check-in is
// late only past start+grace, a check-out early only before end-grace.
const LatenessGraceMinutes = 15

// GeoFailure is the cause class a client reports when geolocation fails.
type GeoFailure string

const (
	GeoPermissionDenied GeoFailure = "permission_denied"
	GeoUnavailable      GeoFailure = "position_unavailable"
	GeoTimeout          GeoFailure = "timeout"
	GeoUnknown          GeoFailure = "unknown"
)

// GeoAdvice is the cause-specific recovery guidance. Only a timeout offers the
// camera fallback; denied permission and disabled OS location are hard stops.
type GeoAdvice struct {
	Message             string `json:"message"`
	OfferCameraFallback bool   `json:"offerCameraFallback"`
}

func ClassifyGeoFailure(cause GeoFailure) GeoAdvice {
	switch cause {
	case GeoPermissionDenied:
		return GeoAdvice{
			Message: "Location permission is blocked. Grant it in Settings > Apps > Permissions > Location, then retry.",
		}
	case GeoUnavailable:
		return GeoAdvice{
			Message: "Device location (GPS) is turned off. Enable location in the system settings, then retry.",
		}
	case GeoTimeout:
		return GeoAdvice{
			Message:             "GPS signal is too weak. Move somewhere more open, or take a photo instead.",
			OfferCameraFallback: true,
		}
	default:
		return GeoAdvice{Message: "Unknown location error. Please try again."}
	}
}

// LatenessState is the three-valued outcome of checking a record against the
// schedule: on time, late/early, or no matching shift at all.
type LatenessState string

const (
	LatenessOnTime  LatenessState = "on_time"
	LatenessLate    LatenessState = "late"
	LatenessEarly   LatenessState = "early"
	OutsideSchedule LatenessState = "outside_schedule"
)

type AttendanceService struct {
	Repo      *repository.CheckInRepository
	ShiftRepo *repository.ShiftRepository
	UserRepo  *repository.UserRepository
	Notifier  *NotificationService
	Uploader  *UploadService
	Events    EventSink
}

func NewAttendanceService(
	repo *repository.CheckInRepository,
	shiftRepo *repository.ShiftRepository,
	userRepo *repository.UserRepository,
	notifier *NotificationService,
	uploader *UploadService,
) *AttendanceService {
	return &AttendanceService{
		Repo: repo, ShiftRepo: shiftRepo, UserRepo: userRepo,
		Notifier: notifier, Uploader: uploader,
	}
}

// Check records one physical check action. Evidence is either coordinates or a
// captured photo; a photo substitutes for coordinates (recorded as zero), and
// a request with neither is rejected before any write. The notification
// fan-out afterwards is best-effort.
func (s *AttendanceService) Check(staff *entity.User, typ entity.CheckType, lat, lng float64, photo []byte, photoName string) (*entity.CheckInRecord, error) {
	if !typ.Valid() {
		return nil, errors.New("invalid check type")
	}

	imageURL := ""
	if len(photo) > 0 {
		url, err := s.Uploader.Upload(photo, photoName, "checkin_evidence")
		if err != nil {
			return nil, fmt.Errorf("upload evidence: %w", err)
		}
		imageURL = url
		lat, lng = 0, 0
	} else if lat == 0 && lng == 0 {
		return nil, errors.New("missing location evidence")
	}

	address := "Check In"
	if typ == entity.CheckOut {
		address = "Check Out"
	}
	rec := &entity.CheckInRecord{
		StaffID:   staff.ID,
		Timestamp: time.Now().UnixMilli(),
		Type:      typ,
		Latitude:  lat,
		Longitude: lng,
		ImageURL:  imageURL,
		Address:   address,
	}
	if err := s.Repo.Create(rec); err != nil {
		return nil, err
	}
	publish(s.Events, "check_ins", ChangeAdded, rec)

	action := "checked in"
	selfMsg := "Check-in recorded!"
	if typ == entity.CheckOut {
		action = "checked out"
		selfMsg = "Check-out recorded!"
	}
	admins, err := s.UserRepo.ListAdmins()
	if err != nil {
		log.Printf("attendance: list admins: %v", err)
	} else {
		for _, admin := range admins {
			if err := s.Notifier.Notify(admin.ID, fmt.Sprintf("%s %s", staff.Name, action), entity.NotifyShift); err != nil {
				log.Printf("attendance: notify admin %d: %v", admin.ID, err)
			}
		}
	}
	if err := s.Notifier.Notify(staff.ID, selfMsg, entity.NotifySystem); err != nil {
		log.Printf("attendance: notify staff %d: %v", staff.ID, err)
	}

	return rec, nil
}

// TodayStatus derives on/off-shift state from the last record of the current
// calendar day: on-shift iff that record exists and is an "in".
func (s *AttendanceService) TodayStatus(staffID uint, now time.Time) (bool, []entity.CheckInRecord, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	records, err := s.Repo.ListByStaffBetween(staffID, dayStart.UnixMilli(), dayEnd.UnixMilli())
	if err != nil {
		return false, nil, err
	}
	if len(records) == 0 {
		return false, records, nil
	}
	last := records[len(records)-1]
	return last.Type == entity.CheckIn, records, nil
}

func (s *AttendanceService) History(staffID uint) ([]entity.CheckInRecord, error) {
	return s.Repo.ListByStaff(staffID)
}

func (s *AttendanceService) ListAll() ([]entity.CheckInRecord, error) {
	return s.Repo.ListAll()
}

// matchShift finds the shift whose date equals the record's calendar date and
// whose staff set contains the record's staff member.
func matchShift(rec *entity.CheckInRecord, shifts []entity.Shift) *entity.Shift {
	date := time.UnixMilli(rec.Timestamp).Format("2006-01-02")
	for i := range shifts {
		if shifts[i].Date == date && shifts[i].HasStaff(rec.StaffID) {
			return &shifts[i]
		}
	}
	return nil
}

// shiftBoundary combines the record's calendar date with an HH:MM shift time.
func shiftBoundary(rec *entity.CheckInRecord, hhmm string) (time.Time, error) {
	day := time.UnixMilli(rec.Timestamp)
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location()), nil
}

// EvaluateLateness grades a record against the schedule. A check-in is late
// strictly after start+grace (exactly on the boundary is on time); a check-out
// is early strictly before end-grace. A record with no matching shift is
// outside the schedule, a distinct third state.
func EvaluateLateness(rec *entity.CheckInRecord, shifts []entity.Shift) LatenessState {
	shift := matchShift(rec, shifts)
	if shift == nil {
		return OutsideSchedule
	}

	at := time.UnixMilli(rec.Timestamp)
	grace := LatenessGraceMinutes * time.Minute

	if rec.Type == entity.CheckIn {
		start, err := shiftBoundary(rec, shift.StartTime)
		if err != nil {
			return OutsideSchedule
		}
		if at.After(start.Add(grace)) {
			return LatenessLate
		}
		return LatenessOnTime
	}

	end, err := shiftBoundary(rec, shift.EndTime)
	if err != nil {
		return OutsideSchedule
	}
	if at.Before(end.Add(-grace)) {
		return LatenessEarly
	}
	return LatenessOnTime
}
