package controller

import (
	"errors"

	"institute_backend/internal/service"
	"institute_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExpenseController struct {
	ExpenseService *service.ExpenseService
}

func NewExpenseController(expenseService *service.ExpenseService) *ExpenseController {
	return &ExpenseController{ExpenseService: expenseService}
}

// List godoc
// @Summary List expenses
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /expenses [get]
func (ctl *ExpenseController) List(c *gin.Context) {
	expenses, err := ctl.ExpenseService.List()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, expenses)
}

// Get godoc
// @Summary Get an expense
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expense ID"
// @Success 200 {object} util.Response
// @Router /expenses/{id} [get]
func (ctl *ExpenseController) Get(c *gin.Context) {
	expense, err := ctl.ExpenseService.Get(util.ParseUintOrZero(c.Param("id")))
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, expense)
}

// Create godoc
// @Summary Record an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ExpenseCreateReq true "Expense"
// @Success 201 {object} util.Response
// @Router /expenses [post]
func (ctl *ExpenseController) Create(c *gin.Context) {
	var req service.ExpenseCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	expense, err := ctl.ExpenseService.Create(req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Created(c, expense)
}

// Update godoc
// @Summary Update an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expense ID"
// @Param body body service.ExpenseUpdateReq true "Fields to update"
// @Success 200 {object} util.Response
// @Router /expenses/{id} [put]
func (ctl *ExpenseController) Update(c *gin.Context) {
	var req service.ExpenseUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	expense, err := ctl.ExpenseService.Update(util.ParseUintOrZero(c.Param("id")), req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, expense)
}

// Delete godoc
// @Summary Delete an expense
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Expense ID"
// @Success 200 {object} util.Response
// @Router /expenses/{id} [delete]
func (ctl *ExpenseController) Delete(c *gin.Context) {
	if err := ctl.ExpenseService.Delete(util.ParseUintOrZero(c.Param("id"))); err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, nil)
}

func (ctl *ExpenseController) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrExpenseNotFound):
		util.NotFound(c)
	case errors.Is(err, util.ErrInvalidDate):
		util.BadRequest(c, err.Error())
	default:
		util.LogInternalError(c, err)
	}
}
