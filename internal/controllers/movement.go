package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/services"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/utils"
)

type MovementController struct {
	movementService services.MovementServiceInterface
	logger          *zap.Logger
}

func NewMovementController(
	movementService services.MovementServiceInterface,
	logger *zap.Logger,
) *MovementController {
	return &MovementController{movementService: movementService, logger: logger}
}

func (c *MovementController) GetMovements(ctx echo.Context) error {
	var equipmentID *uuid.UUID
	if raw := ctx.QueryParam("equipment_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusBadRequest, "equipment_id inválido", err, nil),
				c.logger)
		}
		equipmentID = &id
	}

	res, err := c.movementService.GetMovements(ctx.Request().Context(), equipmentID)
	if err != nil {
		c.logger.Error("GetMovements: falha ao listar movimentações", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Movimentações carregadas", http.StatusOK, uint64(len(res)))
}

func (c *MovementController) CreateMovement(ctx echo.Context) error {
	var payload dto.CreateMovementDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Dados inválidos no corpo da requisição", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.movementService.CreateMovement(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateMovement: falha ao registrar movimentação", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Movimentação registrada com sucesso", http.StatusCreated)
}
