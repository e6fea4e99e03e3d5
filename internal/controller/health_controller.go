package controller

import (
	"institute_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// Health godoc
// @Summary Liveness and database connectivity check
// @Tags health
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (ctl *HealthController) Health(c *gin.Context) {
	dbStatus := "up"
	if sqlDB, err := ctl.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	util.Success(c, gin.H{
		"status":   "ok",
		"database": dbStatus,
	})
}
