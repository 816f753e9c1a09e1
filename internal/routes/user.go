package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/controllers"
	"asset-system/internal/services"
	"asset-system/pkg/middleware"
)

func runUserRouter(secure *echo.Group, userService services.UserServiceInterface, authMW *middleware.AuthMiddleware, logger *zap.Logger) {
	userCtrl := controllers.NewUserController(userService, logger)

	secure.GET("/users", userCtrl.GetUsers, authMW.RequireAdmin)
}
