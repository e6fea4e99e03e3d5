package controller

import (
	"errors"
	"net/http"

	"institute_backend/internal/service"
	"institute_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// StudentExamController exposes the attempt lifecycle to logged-in
// students.
type StudentExamController struct {
	AttemptService *service.AttemptService
}

func NewStudentExamController(attemptService *service.AttemptService) *StudentExamController {
	return &StudentExamController{AttemptService: attemptService}
}

// ListAvailable godoc
// @Summary List exams currently open for attempting
// @Tags student-exams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /student/exams [get]
func (ctl *StudentExamController) ListAvailable(c *gin.Context) {
	exams, err := ctl.AttemptService.ListAvailable()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, exams)
}

// Start godoc
// @Summary Start or resume an exam attempt
// @Tags student-exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Success 200 {object} util.Response
// @Router /student/exams/{id}/start [post]
func (ctl *StudentExamController) Start(c *gin.Context) {
	claims := util.GetStudentFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	result, err := ctl.AttemptService.Start(util.ParseUintOrZero(c.Param("id")), claims.StudentID)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, result)
}

// Submit godoc
// @Summary Submit answers and close the attempt
// @Tags student-exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Param body body service.SubmitRequest true "Answers"
// @Success 200 {object} util.Response
// @Router /student/exams/{id}/submit [post]
func (ctl *StudentExamController) Submit(c *gin.Context) {
	claims := util.GetStudentFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var req service.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	result, err := ctl.AttemptService.Submit(claims.StudentID, util.ParseUintOrZero(c.Param("id")), req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, result)
}

// ListAttempts godoc
// @Summary List the student's past attempts, newest first
// @Tags student-exams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /student/attempts [get]
func (ctl *StudentExamController) ListAttempts(c *gin.Context) {
	claims := util.GetStudentFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	attempts, err := ctl.AttemptService.ListAttempts(claims.StudentID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, attempts)
}

func (ctl *StudentExamController) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrExamNotFound), errors.Is(err, util.ErrAttemptNotFound):
		util.NotFound(c)
	case errors.Is(err, util.ErrExamAlreadySubmitted):
		util.Error(c, http.StatusConflict, err.Error())
	default:
		util.LogInternalError(c, err)
	}
}
