package controller

import (
	"errors"

	"institute_backend/internal/service"
	"institute_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TradeController struct {
	TradeService *service.TradeService
}

func NewTradeController(tradeService *service.TradeService) *TradeController {
	return &TradeController{TradeService: tradeService}
}

// List godoc
// @Summary List trades
// @Tags trades
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /trades [get]
func (ctl *TradeController) List(c *gin.Context) {
	trades, err := ctl.TradeService.List()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, trades)
}

// Get godoc
// @Summary Get a trade
// @Tags trades
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trade ID"
// @Success 200 {object} util.Response
// @Router /trades/{id} [get]
func (ctl *TradeController) Get(c *gin.Context) {
	trade, err := ctl.TradeService.Get(util.ParseUintOrZero(c.Param("id")))
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, trade)
}

// Create godoc
// @Summary Create a trade
// @Tags trades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.TradeCreateReq true "Trade"
// @Success 201 {object} util.Response
// @Router /trades [post]
func (ctl *TradeController) Create(c *gin.Context) {
	var req service.TradeCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	trade, err := ctl.TradeService.Create(req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Created(c, trade)
}

// Update godoc
// @Summary Update a trade
// @Tags trades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trade ID"
// @Param body body service.TradeUpdateReq true "Fields to update"
// @Success 200 {object} util.Response
// @Router /trades/{id} [put]
func (ctl *TradeController) Update(c *gin.Context) {
	var req service.TradeUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	trade, err := ctl.TradeService.Update(util.ParseUintOrZero(c.Param("id")), req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, trade)
}

// Delete godoc
// @Summary Delete a trade
// @Tags trades
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trade ID"
// @Success 200 {object} util.Response
// @Router /trades/{id} [delete]
func (ctl *TradeController) Delete(c *gin.Context) {
	if err := ctl.TradeService.Delete(util.ParseUintOrZero(c.Param("id"))); err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, nil)
}

func (ctl *TradeController) respondError(c *gin.Context, err error) {
	if errors.Is(err, util.ErrTradeNotFound) {
		util.NotFound(c)
		return
	}
	util.LogInternalError(c, err)
}
