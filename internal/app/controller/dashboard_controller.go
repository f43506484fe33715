package controller

import (
	"fmt"
	"time"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/service"
	apperrors "github.com/Rajeshpandey9807/radhira-pos-backend/internal/errors"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/export"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboardService service.DashboardService
}

func NewDashboardController(dashboardService service.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Snapshot returns the live dashboard summary
// GET /api/v1/dashboard
func (ctrl *DashboardController) Snapshot(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	snapshot, err := ctrl.dashboardService.GetSnapshot()
	if err != nil {
		log.Error("Failed to build dashboard snapshot", err)
		apperrors.InternalError(c, "Failed to load dashboard")
		return
	}

	apperrors.OK(c, "", gin.H{"dashboard": snapshot})
}

// Export streams the snapshot as an XLSX workbook
// GET /api/v1/dashboard/export
func (ctrl *DashboardController) Export(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	snapshot, err := ctrl.dashboardService.GetSnapshot()
	if err != nil {
		log.Error("Failed to build dashboard snapshot", err)
		apperrors.InternalError(c, "Failed to export dashboard")
		return
	}

	workbook, err := export.DashboardWorkbook(snapshot)
	if err != nil {
		log.Error("Failed to build dashboard workbook", err)
		apperrors.InternalError(c, "Failed to export dashboard")
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("dashboard-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		log.Error("Failed to stream dashboard workbook", err)
	}
}
