package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/controllers"
	"asset-system/internal/services"
)

func runAuthRouter(api, secure *echo.Group, authService services.AuthServiceInterface, logger *zap.Logger) {
	authCtrl := controllers.NewAuthController(authService, logger)

	auth := api.Group("/auth")
	auth.POST("/signup", authCtrl.SignUp)
	auth.POST("/login", authCtrl.Login)
	auth.POST("/refresh", authCtrl.Refresh)

	secure.GET("/auth/me", authCtrl.Me)
}
