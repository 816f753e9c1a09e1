package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/controllers"
	"asset-system/internal/services"
)

func runMovementRouter(secure *echo.Group, movementService services.MovementServiceInterface, logger *zap.Logger) {
	movementCtrl := controllers.NewMovementController(movementService, logger)

	secure.GET("/movements", movementCtrl.GetMovements)
	secure.POST("/movements", movementCtrl.CreateMovement)
}
