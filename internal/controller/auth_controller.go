package controller

import (
	"errors"

	"institute_backend/internal/service"
	"institute_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary Register a staff account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.RegisterReq true "Staff account"
// @Success 201 {object} util.Response
// @Router /auth/register [post]
func (ctl *AuthController) Register(c *gin.Context) {
	var req service.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.AuthService.Register(req)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.BadRequest(c, err.Error())
			return
		}
		util.LogInternalError(c, err)
		return
	}

	user.Password = ""
	util.Created(c, user)
}

// Login godoc
// @Summary Staff login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginReq true "Credentials"
// @Success 200 {object} util.Response
// @Router /auth/login [post]
func (ctl *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	token, err := ctl.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Unauthorized(c)
			return
		}
		util.LogInternalError(c, err)
		return
	}

	util.Success(c, gin.H{"token": token})
}

// Me godoc
// @Summary Current staff profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /auth/me [get]
func (ctl *AuthController) Me(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	user, err := ctl.AuthService.GetUser(claims.UserID)
	if err != nil {
		util.NotFound(c)
		return
	}

	user.Password = ""
	util.Success(c, user)
}
