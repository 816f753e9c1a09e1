package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/controllers"
	"asset-system/internal/services"
)

func runSupportTicketRouter(secure *echo.Group, ticketService services.SupportTicketServiceInterface, logger *zap.Logger) {
	ticketCtrl := controllers.NewSupportTicketController(ticketService, logger)

	secure.GET("/support-tickets", ticketCtrl.GetSupportTickets)
	secure.GET("/support-tickets/:id", ticketCtrl.FindSupportTicket)
	secure.POST("/support-tickets", ticketCtrl.CreateSupportTicket)
	secure.PUT("/support-tickets/:id", ticketCtrl.UpdateSupportTicket)
	secure.GET("/support-tickets/:id/logs", ticketCtrl.GetTicketLogs)
}
