package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/controllers"
	"asset-system/internal/services"
)

func runReportRouter(secure *echo.Group, reportService services.ReportServiceInterface, logger *zap.Logger) {
	reportCtrl := controllers.NewReportController(reportService, logger)

	secure.GET("/reports/tickets", reportCtrl.GetTicketReport)
	secure.GET("/reports/equipments", reportCtrl.GetEquipmentReport)
}
