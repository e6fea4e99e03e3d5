package controller

import (
	"errors"

	"institute_backend/internal/service"
	"institute_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnquiryController struct {
	EnquiryService *service.EnquiryService
}

func NewEnquiryController(enquiryService *service.EnquiryService) *EnquiryController {
	return &EnquiryController{EnquiryService: enquiryService}
}

// Create godoc
// @Summary Submit a public enquiry
// @Tags enquiries
// @Accept json
// @Produce json
// @Param body body service.EnquiryCreateReq true "Enquiry"
// @Success 201 {object} util.Response
// @Router /public/enquiries [post]
func (ctl *EnquiryController) Create(c *gin.Context) {
	var req service.EnquiryCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	enquiry, err := ctl.EnquiryService.Create(req)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Created(c, enquiry)
}

// List godoc
// @Summary List enquiries
// @Tags enquiries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /enquiries [get]
func (ctl *EnquiryController) List(c *gin.Context) {
	enquiries, err := ctl.EnquiryService.List()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, enquiries)
}

// Get godoc
// @Summary Get an enquiry
// @Tags enquiries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enquiry ID"
// @Success 200 {object} util.Response
// @Router /enquiries/{id} [get]
func (ctl *EnquiryController) Get(c *gin.Context) {
	enquiry, err := ctl.EnquiryService.Get(util.ParseUintOrZero(c.Param("id")))
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, enquiry)
}

// Delete godoc
// @Summary Delete an enquiry
// @Tags enquiries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enquiry ID"
// @Success 200 {object} util.Response
// @Router /enquiries/{id} [delete]
func (ctl *EnquiryController) Delete(c *gin.Context) {
	if err := ctl.EnquiryService.Delete(util.ParseUintOrZero(c.Param("id"))); err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, nil)
}

func (ctl *EnquiryController) respondError(c *gin.Context, err error) {
	if errors.Is(err, util.ErrEnquiryNotFound) {
		util.NotFound(c)
		return
	}
	util.LogInternalError(c, err)
}
