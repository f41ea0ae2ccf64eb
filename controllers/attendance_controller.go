package controllers

import (
	"io"
	"strconv"
	"time"

	"github.com/tuananhtran-web/orderbanhmi/entity"
	"github.com/tuananhtran-web/orderbanhmi/pkg/resp"
	"github.com/tuananhtran-web/orderbanhmi/services"
	"github.com/tuananhtran-web/orderbanhmi/utils"

	"github.com/gin-gonic/gin"
)

type AttendanceController struct {
	Attendance *services.AttendanceService
	Shifts     *services.ShiftService
	Auth       *services.AuthService
}

func NewAttendanceController(att *services.AttendanceService, shifts *services.ShiftService, auth *services.AuthService) *AttendanceController {
	return &AttendanceController{Attendance: att, Shifts: shifts, Auth: auth}
}

// POST /attendance/check (multipart: type, lat, lng, optional photo)
func (a *AttendanceController) Check(c *gin.Context) {
	staff, err := a.Auth.Restore(utils.CurrentUserID(c), utils.IsBootstrap(c))
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	typ := entity.CheckType(c.PostForm("type"))
	if !typ.Valid() {
		resp.BadRequest(c, "type must be in or out")
		return
	}
	lat, _ := strconv.ParseFloat(c.PostForm("lat"), 64)
	lng, _ := strconv.ParseFloat(c.PostForm("lng"), 64)

	var photo []byte
	var photoName string
	if fh, err := c.FormFile("photo"); err == nil {
		f, err := fh.Open()
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		defer f.Close()
		photo, err = io.ReadAll(f)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		photoName = fh.Filename
	}

	rec, err := a.Attendance.Check(staff, typ, lat, lng, photo, photoName)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, rec)
}

// POST /attendance/geo-advice
func (a *AttendanceController) GeoAdvice(c *gin.Context) {
	var req struct {
		Cause string `json:"cause" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, services.ClassifyGeoFailure(services.GeoFailure(req.Cause)))
}

// GET /attendance/status
func (a *AttendanceController) TodayStatus(c *gin.Context) {
	checkedIn, records, err := a.Attendance.TodayStatus(utils.CurrentUserID(c), time.Now())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"checkedIn": checkedIn, "records": records})
}

// GET /attendance/history
func (a *AttendanceController) History(c *gin.Context) {
	records, err := a.Attendance.History(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, records)
}

type checkInView struct {
	entity.CheckInRecord
	Lateness services.LatenessState `json:"lateness"`
}

// GET /admin/attendance: every record annotated against the schedule.
func (a *AttendanceController) ListAll(c *gin.Context) {
	records, err := a.Attendance.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	shifts, err := a.Shifts.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	views := make([]checkInView, 0, len(records))
	for i := range records {
		views = append(views, checkInView{
			CheckInRecord: records[i],
			Lateness:      services.EvaluateLateness(&records[i], shifts),
		})
	}
	resp.OK(c, views)
}
