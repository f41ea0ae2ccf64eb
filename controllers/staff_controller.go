package controllers

import (
	"github.com/tuananhtran-web/orderbanhmi/pkg/resp"
	"github.com/tuananhtran-web/orderbanhmi/services"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	Staff *services.StaffService
}

func NewStaffController(staff *services.StaffService) *StaffController {
	return &StaffController{Staff: staff}
}

// GET /admin/staff
func (s *StaffController) List(c *gin.Context) {
	users, err := s.Staff.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, users)
}

// POST /admin/staff
func (s *StaffController) Add(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required,min=4"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := s.Staff.AddStaff(req.Name, req.Username, req.Password, req.Phone)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, user)
}

// POST /admin/staff/:id/approve
func (s *StaffController) Approve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.Staff.Approve(id); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"approved": id})
}

// POST /admin/staff/:id/lock
func (s *StaffController) Lock(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.Staff.Lock(id); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"locked": id})
}

// POST /admin/staff/:id/unlock
func (s *StaffController) Unlock(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.Staff.Unlock(id); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"unlocked": id})
}

// DELETE /admin/staff/:id
func (s *StaffController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.Staff.Delete(id); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
