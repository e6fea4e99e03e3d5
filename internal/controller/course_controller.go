package controller

import (
	"errors"

	"institute_backend/internal/service"
	"institute_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// ListPublic godoc
// @Summary List active courses for the public website
// @Tags courses
// @Produce json
// @Success 200 {object} util.Response
// @Router /public/courses [get]
func (ctl *CourseController) ListPublic(c *gin.Context) {
	courses, err := ctl.CourseService.ListPublic()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, courses)
}

// List godoc
// @Summary List all courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /courses [get]
func (ctl *CourseController) List(c *gin.Context) {
	courses, err := ctl.CourseService.List()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, courses)
}

// Get godoc
// @Summary Get a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Router /courses/{id} [get]
func (ctl *CourseController) Get(c *gin.Context) {
	course, err := ctl.CourseService.Get(util.ParseUintOrZero(c.Param("id")))
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, course)
}

// Create godoc
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CourseCreateReq true "Course"
// @Success 201 {object} util.Response
// @Router /courses [post]
func (ctl *CourseController) Create(c *gin.Context) {
	var req service.CourseCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	course, err := ctl.CourseService.Create(req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Created(c, course)
}

// Update godoc
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param body body service.CourseUpdateReq true "Fields to update"
// @Success 200 {object} util.Response
// @Router /courses/{id} [put]
func (ctl *CourseController) Update(c *gin.Context) {
	var req service.CourseUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	course, err := ctl.CourseService.Update(util.ParseUintOrZero(c.Param("id")), req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, course)
}

// Delete godoc
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response
// @Router /courses/{id} [delete]
func (ctl *CourseController) Delete(c *gin.Context) {
	if err := ctl.CourseService.Delete(util.ParseUintOrZero(c.Param("id"))); err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, nil)
}

func (ctl *CourseController) respondError(c *gin.Context, err error) {
	if errors.Is(err, util.ErrCourseNotFound) {
		util.NotFound(c)
		return
	}
	util.LogInternalError(c, err)
}
