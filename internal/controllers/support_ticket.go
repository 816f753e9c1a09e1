package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/services"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/utils"
)

type SupportTicketController struct {
	ticketService services.SupportTicketServiceInterface
	logger        *zap.Logger
}

func NewSupportTicketController(
	ticketService services.SupportTicketServiceInterface,
	logger *zap.Logger,
) *SupportTicketController {
	return &SupportTicketController{ticketService: ticketService, logger: logger}
}

func (c *SupportTicketController) GetSupportTickets(ctx echo.Context) error {
	res, err := c.ticketService.GetSupportTickets(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetSupportTickets: falha ao listar chamados", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Chamados carregados", http.StatusOK, uint64(len(res)))
}

func (c *SupportTicketController) FindSupportTicket(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.ticketService.FindSupportTicket(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Chamado encontrado", http.StatusOK)
}

func (c *SupportTicketController) CreateSupportTicket(ctx echo.Context) error {
	var payload dto.CreateSupportTicketDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Dados inválidos no corpo da requisição", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.ticketService.CreateSupportTicket(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateSupportTicket: falha ao criar chamado", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Chamado criado com sucesso", http.StatusCreated)
}

func (c *SupportTicketController) UpdateSupportTicket(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateSupportTicketDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Dados inválidos no corpo da requisição", err, nil),
			c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.ticketService.UpdateSupportTicket(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Chamado atualizado com sucesso", http.StatusOK)
}

func (c *SupportTicketController) GetTicketLogs(ctx echo.Context) error {
	id, err := parseIDParam(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.ticketService.GetTicketLogs(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Histórico do chamado carregado", http.StatusOK, uint64(len(res)))
}
