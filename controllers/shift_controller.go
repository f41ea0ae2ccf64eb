package controllers

import (
	"time"

	"github.com/tuananhtran-web/orderbanhmi/pkg/resp"
	"github.com/tuananhtran-web/orderbanhmi/services"
	"github.com/tuananhtran-web/orderbanhmi/utils"

	"github.com/gin-gonic/gin"
)

type ShiftController struct {
	Shifts *services.ShiftService
}

func NewShiftController(shifts *services.ShiftService) *ShiftController {
	return &ShiftController{Shifts: shifts}
}

// POST /admin/shifts
func (s *ShiftController) Create(c *gin.Context) {
	var in services.ShiftIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	shift, err := s.Shifts.Create(&in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, shift)
}

// GET /admin/shifts
func (s *ShiftController) ListAll(c *gin.Context) {
	shifts, err := s.Shifts.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, shifts)
}

// GET /shifts (own upcoming, from today unless ?from=YYYY-MM-DD)
func (s *ShiftController) Mine(c *gin.Context) {
	from := c.Query("from")
	if from == "" {
		from = time.Now().Format("2006-01-02")
	}
	shifts, err := s.Shifts.ForStaff(utils.CurrentUserID(c), from)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, shifts)
}
