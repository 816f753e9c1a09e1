package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/repositories"
	"asset-system/pkg/utils"
)

type SupportTicketServiceInterface interface {
	GetSupportTickets(ctx context.Context) ([]entities.SupportTicket, error)
	FindSupportTicket(ctx context.Context, id uuid.UUID) (*entities.SupportTicket, error)
	CreateSupportTicket(ctx context.Context, payload dto.CreateSupportTicketDTO) (*entities.SupportTicket, error)
	UpdateSupportTicket(ctx context.Context, id uuid.UUID, payload dto.UpdateSupportTicketDTO) (*entities.SupportTicket, error)
	GetTicketLogs(ctx context.Context, id uuid.UUID) ([]entities.ChangeLogEntry, error)
}

type SupportTicketService struct {
	ticketRepo    repositories.SupportTicketRepositoryInterface
	changeLogRepo repositories.ChangeLogRepositoryInterface
	txManager     repositories.TxManagerInterface
	logger        *zap.Logger
}

func NewSupportTicketService(
	ticketRepo repositories.SupportTicketRepositoryInterface,
	changeLogRepo repositories.ChangeLogRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) SupportTicketServiceInterface {
	return &SupportTicketService{
		ticketRepo:    ticketRepo,
		changeLogRepo: changeLogRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

func (s *SupportTicketService) GetSupportTickets(ctx context.Context) ([]entities.SupportTicket, error) {
	return s.ticketRepo.GetSupportTickets(ctx)
}

func (s *SupportTicketService) FindSupportTicket(ctx context.Context, id uuid.UUID) (*entities.SupportTicket, error) {
	return s.ticketRepo.FindSupportTicket(ctx, nil, id)
}

func (s *SupportTicketService) CreateSupportTicket(ctx context.Context, payload dto.CreateSupportTicketDTO) (*entities.SupportTicket, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	ticket, err := s.ticketRepo.CreateSupportTicket(ctx, userID, payload)
	if err != nil {
		s.logger.Error("ticket: create failed", zap.String("title", payload.Title), zap.Error(err))
		return nil, err
	}

	s.logger.Info("ticket: created",
		zap.String("id", ticket.ID.String()),
		zap.String("category", ticket.Category))
	return ticket, nil
}

// UpdateSupportTicket applies the patch and records field-level history for
// status, priority and assignee, all in one transaction.
func (s *SupportTicketService) UpdateSupportTicket(ctx context.Context, id uuid.UUID, payload dto.UpdateSupportTicketDTO) (*entities.SupportTicket, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var updated *entities.SupportTicket
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		old, err := s.ticketRepo.FindSupportTicket(ctx, tx, id)
		if err != nil {
			return err
		}

		updated, err = s.ticketRepo.UpdateSupportTicket(ctx, tx, id, payload)
		if err != nil {
			return err
		}

		changes := changeEntries(id, userID, []*fieldChange{
			diffString("status", old.Status, payload.Status),
			diffString("priority", old.Priority, payload.Priority),
			diffUUID("assigned_to", old.AssignedTo, payload.AssignedTo),
		})
		for i := range changes {
			if err := s.changeLogRepo.CreateTicketLogInTx(ctx, tx, &changes[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("ticket: update failed", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	return updated, nil
}

func (s *SupportTicketService) GetTicketLogs(ctx context.Context, id uuid.UUID) ([]entities.ChangeLogEntry, error) {
	if _, err := s.ticketRepo.FindSupportTicket(ctx, nil, id); err != nil {
		return nil, err
	}
	return s.changeLogRepo.FindByTicketID(ctx, id)
}
