package controller

import (
	"errors"

	"institute_backend/internal/service"
	"institute_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FeeController struct {
	FeeService *service.FeeService
}

func NewFeeController(feeService *service.FeeService) *FeeController {
	return &FeeController{FeeService: feeService}
}

// List godoc
// @Summary List fee records, optionally filtered by student
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param student_id query int false "Student ID"
// @Success 200 {object} util.Response
// @Router /fees [get]
func (ctl *FeeController) List(c *gin.Context) {
	studentID := util.ParseUintOrZero(c.Query("student_id"))
	fees, err := ctl.FeeService.List(studentID)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, fees)
}

// Get godoc
// @Summary Get a fee record
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Success 200 {object} util.Response
// @Router /fees/{id} [get]
func (ctl *FeeController) Get(c *gin.Context) {
	fee, err := ctl.FeeService.Get(util.ParseUintOrZero(c.Param("id")))
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, fee)
}

// Create godoc
// @Summary Record a fee payment
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.FeeCreateReq true "Fee payment"
// @Success 201 {object} util.Response
// @Router /fees [post]
func (ctl *FeeController) Create(c *gin.Context) {
	var req service.FeeCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	fee, err := ctl.FeeService.Create(req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Created(c, fee)
}

// Update godoc
// @Summary Update a fee record
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Param body body service.FeeUpdateReq true "Fields to update"
// @Success 200 {object} util.Response
// @Router /fees/{id} [put]
func (ctl *FeeController) Update(c *gin.Context) {
	var req service.FeeUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	fee, err := ctl.FeeService.Update(util.ParseUintOrZero(c.Param("id")), req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, fee)
}

// Delete godoc
// @Summary Delete a fee record
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Success 200 {object} util.Response
// @Router /fees/{id} [delete]
func (ctl *FeeController) Delete(c *gin.Context) {
	if err := ctl.FeeService.Delete(util.ParseUintOrZero(c.Param("id"))); err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, nil)
}

func (ctl *FeeController) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrFeeNotFound), errors.Is(err, util.ErrStudentNotFound):
		util.NotFound(c)
	case errors.Is(err, util.ErrInvalidDate):
		util.BadRequest(c, err.Error())
	default:
		util.LogInternalError(c, err)
	}
}
