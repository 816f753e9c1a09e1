package main

import (
	"flag"
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"asset-system/internal/routes"
	"asset-system/pkg/config"
	"asset-system/pkg/database/postgresql"
	apperrors "asset-system/pkg/errors"
	applogger "asset-system/pkg/logger"
	"asset-system/pkg/metrics"
	appmw "asset-system/pkg/middleware"
	"asset-system/pkg/service"
	"asset-system/pkg/utils"
	"asset-system/pkg/validation"

	assetsystem "asset-system"
)

func main() {
	migrate := flag.Bool("migrate", false, "apply pending migrations before starting")
	flag.Parse()

	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	if *migrate {
		if err := postgresql.Migrate(cfg.Postgres.DSN, assetsystem.Migrations); err != nil {
			logger.Fatal("migrations failed", zap.Error(err))
		}
		logger.Info("migrations applied")
	}

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
	})
	defer redisClient.Close()

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Erro interno do servidor", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition"},
	}))
	e.Use(appmw.RequestLogger(logger))

	metrics.Register()
	e.Use(metrics.Middleware())

	routes.InitRouter(e, dbConn, redisClient, jwtSvc, cfg, logger)

	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
