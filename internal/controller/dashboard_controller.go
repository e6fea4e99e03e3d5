package controller

import (
	"institute_backend/internal/service"
	"institute_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// Summary godoc
// @Summary Dashboard counters and financial totals
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /dashboard/summary [get]
func (ctl *DashboardController) Summary(c *gin.Context) {
	summary, err := ctl.DashboardService.Summary(c.Request.Context())
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, summary)
}
