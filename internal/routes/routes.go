package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/client/authz"
	"asset-system/internal/repositories"
	"asset-system/internal/services"
	"asset-system/pkg/config"
	"asset-system/pkg/metrics"
	"asset-system/pkg/middleware"
	"asset-system/pkg/service"
)

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	cfg *config.Config,
	logger *zap.Logger,
) {
	api := e.Group("/api")

	admins := authz.NewAdminChecker(cfg.Auth.AdminIdentifiers)
	authMW := middleware.NewAuthMiddleware(jwtSvc, admins, logger)
	txManager := repositories.NewTxManager(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	profileRepo := repositories.NewProfileRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	ticketRepo := repositories.NewSupportTicketRepository(dbConn)
	maintenanceRepo := repositories.NewMaintenanceRepository(dbConn)
	changeLogRepo := repositories.NewChangeLogRepository(dbConn)
	movementRepo := repositories.NewMovementRepository(dbConn)
	reportRepo := repositories.NewReportRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn)

	authService := services.NewAuthService(profileRepo, cacheRepo, jwtSvc, &cfg.Auth, logger)
	userService := services.NewUserService(profileRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, logger)
	ticketService := services.NewSupportTicketService(ticketRepo, changeLogRepo, txManager, logger)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, changeLogRepo, txManager, logger)
	movementService := services.NewMovementService(movementRepo, equipmentRepo, logger)
	reportService := services.NewReportService(reportRepo, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, logger)

	e.GET("/metrics", metrics.Handler())

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, authService, logger)
	runUserRouter(secureGroup, userService, authMW, logger)
	runEquipmentRouter(secureGroup, equipmentService, logger)
	runSupportTicketRouter(secureGroup, ticketService, logger)
	runMaintenanceRouter(secureGroup, maintenanceService, logger)
	runMovementRouter(secureGroup, movementService, logger)
	runReportRouter(secureGroup, reportService, logger)
	runDashboardRouter(secureGroup, dashboardService, logger)

	logger.Info("routes registered")
}
