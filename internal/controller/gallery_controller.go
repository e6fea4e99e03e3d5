package controller

import (
	"errors"

	"institute_backend/internal/service"
	"institute_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GalleryController struct {
	GalleryService *service.GalleryService
}

func NewGalleryController(galleryService *service.GalleryService) *GalleryController {
	return &GalleryController{GalleryService: galleryService}
}

// ListPublic godoc
// @Summary List active gallery items
// @Tags gallery
// @Produce json
// @Success 200 {object} util.Response
// @Router /public/gallery [get]
func (ctl *GalleryController) ListPublic(c *gin.Context) {
	items, err := ctl.GalleryService.ListPublic()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, items)
}

// List godoc
// @Summary List all gallery items
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /gallery [get]
func (ctl *GalleryController) List(c *gin.Context) {
	items, err := ctl.GalleryService.ListAll()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, items)
}

// Upload godoc
// @Summary Upload a gallery image or video
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Media file"
// @Param title formData string false "Title"
// @Success 201 {object} util.Response
// @Router /gallery [post]
func (ctl *GalleryController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		util.BadRequest(c, "media file is required")
		return
	}

	item, err := ctl.GalleryService.Upload(c.Request.Context(), c.PostForm("title"), file)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Created(c, item)
}

// Update godoc
// @Summary Update a gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gallery item ID"
// @Param body body service.GalleryUpdateReq true "Fields to update"
// @Success 200 {object} util.Response
// @Router /gallery/{id} [put]
func (ctl *GalleryController) Update(c *gin.Context) {
	var req service.GalleryUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.GalleryService.Update(util.ParseUintOrZero(c.Param("id")), req)
	if err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, item)
}

// Delete godoc
// @Summary Delete a gallery item
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gallery item ID"
// @Success 200 {object} util.Response
// @Router /gallery/{id} [delete]
func (ctl *GalleryController) Delete(c *gin.Context) {
	if err := ctl.GalleryService.Delete(c.Request.Context(), util.ParseUintOrZero(c.Param("id"))); err != nil {
		ctl.respondError(c, err)
		return
	}
	util.Success(c, nil)
}

func (ctl *GalleryController) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrMediaNotFound):
		util.NotFound(c)
	case errors.Is(err, util.ErrInvalidFileType), errors.Is(err, util.ErrFileTooLarge):
		util.BadRequest(c, err.Error())
	default:
		util.LogInternalError(c, err)
	}
}
