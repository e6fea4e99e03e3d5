package controller

import (
	"errors"

	"institute_backend/internal/service"
	"institute_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	StudentService *service.StudentService
}

func NewStudentController(studentService *service.StudentService) *StudentController {
	return &StudentController{StudentService: studentService}
}

// List godoc
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /students [get]
func (ctl *StudentController) List(c *gin.Context) {
	students, err := ctl.StudentService.List()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, students)
}

// Get godoc
// @Summary Get a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} util.Response
// @Router /students/{id} [get]
func (ctl *StudentController) Get(c *gin.Context) {
	student, err := ctl.StudentService.Get(util.ParseUintOrZero(c.Param("id")))
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, student)
}

// Create godoc
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.StudentCreateReq true "Student"
// @Success 201 {object} util.Response
// @Router /students [post]
func (ctl *StudentController) Create(c *gin.Context) {
	var req service.StudentCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	student, err := ctl.StudentService.Create(req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Created(c, student)
}

// Update godoc
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param body body service.StudentUpdateReq true "Fields to update"
// @Success 200 {object} util.Response
// @Router /students/{id} [put]
func (ctl *StudentController) Update(c *gin.Context) {
	var req service.StudentUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	student, err := ctl.StudentService.Update(util.ParseUintOrZero(c.Param("id")), req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, student)
}

// Delete godoc
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} util.Response
// @Router /students/{id} [delete]
func (ctl *StudentController) Delete(c *gin.Context) {
	if err := ctl.StudentService.Delete(util.ParseUintOrZero(c.Param("id"))); err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, nil)
}

// UploadPhoto godoc
// @Summary Upload or replace a student photo
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param photo formData file true "Photo file"
// @Success 200 {object} util.Response
// @Router /students/{id}/photo [post]
func (ctl *StudentController) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		util.BadRequest(c, "photo file is required")
		return
	}

	student, err := ctl.StudentService.UploadPhoto(c.Request.Context(), util.ParseUintOrZero(c.Param("id")), file)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, student)
}

// SetPassword godoc
// @Summary Set a student's login password
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param body body service.SetPasswordReq true "New password"
// @Success 200 {object} util.Response
// @Router /students/{id}/password [post]
func (ctl *StudentController) SetPassword(c *gin.Context) {
	var req service.SetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	student, err := ctl.StudentService.SetPassword(util.ParseUintOrZero(c.Param("id")), req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, student)
}

func (ctl *StudentController) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrStudentNotFound):
		util.NotFound(c)
	case errors.Is(err, util.ErrEnrollmentTaken),
		errors.Is(err, util.ErrInvalidDate),
		errors.Is(err, util.ErrInvalidFileType),
		errors.Is(err, util.ErrFileTooLarge):
		util.BadRequest(c, err.Error())
	default:
		util.LogInternalError(c, err)
	}
}
