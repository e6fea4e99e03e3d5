package controller

import (
	"errors"

	"institute_backend/internal/service"
	"institute_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ExamController exposes the staff side of the exam module.
type ExamController struct {
	ExamService *service.ExamService
}

func NewExamController(examService *service.ExamService) *ExamController {
	return &ExamController{ExamService: examService}
}

// List godoc
// @Summary List exams
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /exams [get]
func (ctl *ExamController) List(c *gin.Context) {
	exams, err := ctl.ExamService.ListExams()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, exams)
}

// Get godoc
// @Summary Get an exam
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Success 200 {object} util.Response
// @Router /exams/{id} [get]
func (ctl *ExamController) Get(c *gin.Context) {
	exam, err := ctl.ExamService.GetExam(util.ParseUintOrZero(c.Param("id")))
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, exam)
}

// Create godoc
// @Summary Create an exam
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ExamCreateReq true "Exam"
// @Success 201 {object} util.Response
// @Router /exams [post]
func (ctl *ExamController) Create(c *gin.Context) {
	var req service.ExamCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	exam, err := ctl.ExamService.CreateExam(req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Created(c, exam)
}

// Update godoc
// @Summary Update an exam
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Param body body service.ExamUpdateReq true "Fields to update"
// @Success 200 {object} util.Response
// @Router /exams/{id} [put]
func (ctl *ExamController) Update(c *gin.Context) {
	var req service.ExamUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	exam, err := ctl.ExamService.UpdateExam(util.ParseUintOrZero(c.Param("id")), req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, exam)
}

// Delete godoc
// @Summary Delete an exam with its questions, options and attempts
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Success 200 {object} util.Response
// @Router /exams/{id} [delete]
func (ctl *ExamController) Delete(c *gin.Context) {
	if err := ctl.ExamService.DeleteExam(util.ParseUintOrZero(c.Param("id"))); err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, nil)
}

// ListQuestions godoc
// @Summary List an exam's questions with answers visible
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Success 200 {object} util.Response
// @Router /exams/{id}/questions [get]
func (ctl *ExamController) ListQuestions(c *gin.Context) {
	questions, err := ctl.ExamService.ListQuestions(util.ParseUintOrZero(c.Param("id")))
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, questions)
}

// CreateQuestion godoc
// @Summary Add a question with its options
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exam ID"
// @Param body body service.QuestionCreateReq true "Question"
// @Success 201 {object} util.Response
// @Router /exams/{id}/questions [post]
func (ctl *ExamController) CreateQuestion(c *gin.Context) {
	var req service.QuestionCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	question, err := ctl.ExamService.CreateQuestion(util.ParseUintOrZero(c.Param("id")), req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Created(c, question)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question_id path int true "Question ID"
// @Param body body service.QuestionUpdateReq true "Fields to update"
// @Success 200 {object} util.Response
// @Router /questions/{question_id} [put]
func (ctl *ExamController) UpdateQuestion(c *gin.Context) {
	var req service.QuestionUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	question, err := ctl.ExamService.UpdateQuestion(util.ParseUintOrZero(c.Param("question_id")), req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, question)
}

// DeleteQuestion godoc
// @Summary Delete a question and its options
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param question_id path int true "Question ID"
// @Success 200 {object} util.Response
// @Router /questions/{question_id} [delete]
func (ctl *ExamController) DeleteQuestion(c *gin.Context) {
	if err := ctl.ExamService.DeleteQuestion(util.ParseUintOrZero(c.Param("question_id"))); err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, nil)
}

// AddOption godoc
// @Summary Add an option to a question
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question_id path int true "Question ID"
// @Param body body service.OptionReq true "Option"
// @Success 201 {object} util.Response
// @Router /questions/{question_id}/options [post]
func (ctl *ExamController) AddOption(c *gin.Context) {
	var req service.OptionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	option, err := ctl.ExamService.AddOption(util.ParseUintOrZero(c.Param("question_id")), req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Created(c, option)
}

// UpdateOption godoc
// @Summary Update an option
// @Tags exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question_id path int true "Question ID"
// @Param option_id path int true "Option ID"
// @Param body body service.OptionUpdateReq true "Fields to update"
// @Success 200 {object} util.Response
// @Router /questions/{question_id}/options/{option_id} [put]
func (ctl *ExamController) UpdateOption(c *gin.Context) {
	var req service.OptionUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	option, err := ctl.ExamService.UpdateOption(
		util.ParseUintOrZero(c.Param("question_id")),
		util.ParseUintOrZero(c.Param("option_id")),
		req,
	)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, option)
}

// DeleteOption godoc
// @Summary Delete an option
// @Tags exams
// @Produce json
// @Security BearerAuth
// @Param question_id path int true "Question ID"
// @Param option_id path int true "Option ID"
// @Success 200 {object} util.Response
// @Router /questions/{question_id}/options/{option_id} [delete]
func (ctl *ExamController) DeleteOption(c *gin.Context) {
	err := ctl.ExamService.DeleteOption(
		util.ParseUintOrZero(c.Param("question_id")),
		util.ParseUintOrZero(c.Param("option_id")),
	)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, nil)
}

func (ctl *ExamController) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrExamNotFound),
		errors.Is(err, util.ErrQuestionNotFound),
		errors.Is(err, util.ErrOptionNotFound):
		util.NotFound(c)
	case errors.Is(err, util.ErrOptionsRequired):
		util.BadRequest(c, err.Error())
	default:
		util.LogInternalError(c, err)
	}
}
