package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/controllers"
	"asset-system/internal/services"
)

func runEquipmentRouter(secure *echo.Group, equipmentService services.EquipmentServiceInterface, logger *zap.Logger) {
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)

	secure.GET("/equipments", equipmentCtrl.GetEquipments)
	secure.GET("/equipments/:id", equipmentCtrl.FindEquipment)
	secure.POST("/equipments", equipmentCtrl.CreateEquipment)
	secure.PUT("/equipments/:id", equipmentCtrl.UpdateEquipment)
	secure.DELETE("/equipments/:id", equipmentCtrl.DeleteEquipment)
}
