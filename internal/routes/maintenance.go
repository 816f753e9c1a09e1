package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/controllers"
	"asset-system/internal/services"
)

func runMaintenanceRouter(secure *echo.Group, maintenanceService services.MaintenanceServiceInterface, logger *zap.Logger) {
	maintenanceCtrl := controllers.NewMaintenanceController(maintenanceService, logger)

	secure.GET("/maintenances", maintenanceCtrl.GetMaintenances)
	secure.GET("/maintenances/:id", maintenanceCtrl.FindMaintenance)
	secure.POST("/maintenances", maintenanceCtrl.CreateMaintenance)
	secure.PUT("/maintenances/:id", maintenanceCtrl.UpdateMaintenance)
	secure.GET("/maintenances/:id/logs", maintenanceCtrl.GetMaintenanceLogs)
}
