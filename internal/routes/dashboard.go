package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/controllers"
	"asset-system/internal/services"
)

func runDashboardRouter(secure *echo.Group, dashboardService services.DashboardServiceInterface, logger *zap.Logger) {
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)

	secure.GET("/dashboard/stats", dashboardCtrl.GetStats)
}
