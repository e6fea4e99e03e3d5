package controller

import (
	"errors"

	"institute_backend/internal/service"
	"institute_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	CertificateService *service.CertificateService
}

func NewCertificateController(certificateService *service.CertificateService) *CertificateController {
	return &CertificateController{CertificateService: certificateService}
}

// List godoc
// @Summary List certificates
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /certificates [get]
func (ctl *CertificateController) List(c *gin.Context) {
	certs, err := ctl.CertificateService.List()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, certs)
}

// Get godoc
// @Summary Get a certificate
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Certificate ID"
// @Success 200 {object} util.Response
// @Router /certificates/{id} [get]
func (ctl *CertificateController) Get(c *gin.Context) {
	cert, err := ctl.CertificateService.Get(util.ParseUintOrZero(c.Param("id")))
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, cert)
}

// Create godoc
// @Summary Issue a certificate
// @Tags certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CertificateCreateReq true "Certificate"
// @Success 201 {object} util.Response
// @Router /certificates [post]
func (ctl *CertificateController) Create(c *gin.Context) {
	var req service.CertificateCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	cert, err := ctl.CertificateService.Create(req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Created(c, cert)
}

// Update godoc
// @Summary Update a certificate
// @Tags certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Certificate ID"
// @Param body body service.CertificateUpdateReq true "Fields to update"
// @Success 200 {object} util.Response
// @Router /certificates/{id} [put]
func (ctl *CertificateController) Update(c *gin.Context) {
	var req service.CertificateUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	cert, err := ctl.CertificateService.Update(util.ParseUintOrZero(c.Param("id")), req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, cert)
}

// Delete godoc
// @Summary Delete a certificate
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param id path int true "Certificate ID"
// @Success 200 {object} util.Response
// @Router /certificates/{id} [delete]
func (ctl *CertificateController) Delete(c *gin.Context) {
	if err := ctl.CertificateService.Delete(util.ParseUintOrZero(c.Param("id"))); err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, nil)
}

// VerifyByCode godoc
// @Summary Verify a certificate by its code
// @Tags certificates
// @Produce json
// @Param code path string true "Certificate code"
// @Success 200 {object} util.Response
// @Router /public/certificates/verify/{code} [get]
func (ctl *CertificateController) VerifyByCode(c *gin.Context) {
	result, err := ctl.CertificateService.VerifyByCode(c.Param("code"))
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, result)
}

// VerifyByEnrollment godoc
// @Summary Verify the latest certificate by enrollment number and date of birth
// @Tags certificates
// @Accept json
// @Produce json
// @Param body body service.VerifyByEnrollmentReq true "Lookup"
// @Success 200 {object} util.Response
// @Router /public/certificates/verify [post]
func (ctl *CertificateController) VerifyByEnrollment(c *gin.Context) {
	var req service.VerifyByEnrollmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	result, err := ctl.CertificateService.VerifyByEnrollment(req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, result)
}

func (ctl *CertificateController) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCertificateNotFound), errors.Is(err, util.ErrStudentNotFound):
		util.NotFound(c)
	case errors.Is(err, util.ErrCertificateCodeTaken), errors.Is(err, util.ErrInvalidDate):
		util.BadRequest(c, err.Error())
	default:
		util.LogInternalError(c, err)
	}
}
