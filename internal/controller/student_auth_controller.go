package controller

import (
	"errors"

	"institute_backend/internal/service"
	"institute_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentAuthController struct {
	StudentAuthService *service.StudentAuthService
}

func NewStudentAuthController(studentAuthService *service.StudentAuthService) *StudentAuthController {
	return &StudentAuthController{StudentAuthService: studentAuthService}
}

// Register godoc
// @Summary Claim a student account with enrollment number and date of birth
// @Tags student-auth
// @Accept json
// @Produce json
// @Param body body service.StudentRegisterReq true "Registration"
// @Success 201 {object} util.Response
// @Router /student/auth/register [post]
func (ctl *StudentAuthController) Register(c *gin.Context) {
	var req service.StudentRegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	token, err := ctl.StudentAuthService.Register(req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrStudentNotFound):
			util.NotFound(c)
		case errors.Is(err, util.ErrLoginAlreadyEnabled):
			util.BadRequest(c, err.Error())
		default:
			util.LogInternalError(c, err)
		}
		return
	}

	util.Created(c, gin.H{"token": token})
}

// Login godoc
// @Summary Student login
// @Tags student-auth
// @Accept json
// @Produce json
// @Param body body service.StudentLoginReq true "Credentials"
// @Success 200 {object} util.Response
// @Router /student/auth/login [post]
func (ctl *StudentAuthController) Login(c *gin.Context) {
	var req service.StudentLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	token, err := ctl.StudentAuthService.Login(req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLoginNotEnabled), errors.Is(err, util.ErrInvalidCredentials):
			util.Unauthorized(c)
		default:
			util.LogInternalError(c, err)
		}
		return
	}

	util.Success(c, gin.H{"token": token})
}
