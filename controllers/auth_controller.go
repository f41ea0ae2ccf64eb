package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/tuananhtran-web/orderbanhmi/pkg/resp"
	"github.com/tuananhtran-web/orderbanhmi/services"
	"github.com/tuananhtran-web/orderbanhmi/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=4"`
}

type ProfileRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
}

type AuthController struct {
	Auth   *services.AuthService
	Upload *services.UploadService
}

func NewAuthController(auth *services.AuthService, upload *services.UploadService) *AuthController {
	return &AuthController{Auth: auth, Upload: upload}
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, bootstrap, err := a.Auth.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPendingApproval), errors.Is(err, services.ErrAccountLocked):
			resp.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrInvalidCredentials):
			resp.Unauthorized(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"token":     token,
		"bootstrap": bootstrap,
		"user":      user,
	})
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Auth.Register(req.Name, req.Phone, req.Password)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, user)
}

// POST /auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	a.Auth.Logout(utils.CurrentUserID(c), utils.IsBootstrap(c))
	resp.OK(c, gin.H{"loggedOut": true})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Auth.Restore(utils.CurrentUserID(c), utils.IsBootstrap(c))
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, user)
}

// PATCH /profile
func (a *AuthController) UpdateProfile(c *gin.Context) {
	if utils.IsBootstrap(c) {
		resp.BadRequest(c, "bootstrap account has no stored profile")
		return
	}
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Auth.UpdateProfile(utils.CurrentUserID(c), req.Name, req.Password, req.Avatar)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

// POST /profile/avatar (multipart "file")
func (a *AuthController) UploadAvatar(c *gin.Context) {
	if utils.IsBootstrap(c) {
		resp.BadRequest(c, "bootstrap account has no stored profile")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "missing file")
		return
	}
	f, err := fh.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	url, err := a.Upload.Upload(data, fh.Filename, "avatars")
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	user, err := a.Auth.UpdateProfile(utils.CurrentUserID(c), "", "", url)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}
