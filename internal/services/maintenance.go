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

type MaintenanceServiceInterface interface {
	GetMaintenances(ctx context.Context) ([]entities.Maintenance, error)
	FindMaintenance(ctx context.Context, id uuid.UUID) (*entities.Maintenance, error)
	CreateMaintenance(ctx context.Context, payload dto.CreateMaintenanceDTO) (*entities.Maintenance, error)
	UpdateMaintenance(ctx context.Context, id uuid.UUID, payload dto.UpdateMaintenanceDTO) (*entities.Maintenance, error)
	GetMaintenanceLogs(ctx context.Context, id uuid.UUID) ([]entities.ChangeLogEntry, error)
}

type MaintenanceService struct {
	maintenanceRepo repositories.MaintenanceRepositoryInterface
	changeLogRepo   repositories.ChangeLogRepositoryInterface
	txManager       repositories.TxManagerInterface
	logger          *zap.Logger
}

func NewMaintenanceService(
	maintenanceRepo repositories.MaintenanceRepositoryInterface,
	changeLogRepo repositories.ChangeLogRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) MaintenanceServiceInterface {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		changeLogRepo:   changeLogRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

func (s *MaintenanceService) GetMaintenances(ctx context.Context) ([]entities.Maintenance, error) {
	return s.maintenanceRepo.GetMaintenances(ctx)
}

func (s *MaintenanceService) FindMaintenance(ctx context.Context, id uuid.UUID) (*entities.Maintenance, error) {
	return s.maintenanceRepo.FindMaintenance(ctx, nil, id)
}

func (s *MaintenanceService) CreateMaintenance(ctx context.Context, payload dto.CreateMaintenanceDTO) (*entities.Maintenance, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	maintenance, err := s.maintenanceRepo.CreateMaintenance(ctx, userID, payload)
	if err != nil {
		s.logger.Error("maintenance: create failed", zap.String("title", payload.Title), zap.Error(err))
		return nil, err
	}

	s.logger.Info("maintenance: created",
		zap.String("id", maintenance.ID.String()),
		zap.String("type", maintenance.Type))
	return maintenance, nil
}

func (s *MaintenanceService) UpdateMaintenance(ctx context.Context, id uuid.UUID, payload dto.UpdateMaintenanceDTO) (*entities.Maintenance, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var updated *entities.Maintenance
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		old, err := s.maintenanceRepo.FindMaintenance(ctx, tx, id)
		if err != nil {
			return err
		}

		updated, err = s.maintenanceRepo.UpdateMaintenance(ctx, tx, id, payload)
		if err != nil {
			return err
		}

		changes := changeEntries(id, userID, []*fieldChange{
			diffString("status", old.Status, payload.Status),
			diffString("priority", old.Priority, payload.Priority),
			diffUUID("technician_id", old.TechnicianID, payload.TechnicianID),
		})
		for i := range changes {
			if err := s.changeLogRepo.CreateMaintenanceLogInTx(ctx, tx, &changes[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("maintenance: update failed", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	return updated, nil
}

func (s *MaintenanceService) GetMaintenanceLogs(ctx context.Context, id uuid.UUID) ([]entities.ChangeLogEntry, error) {
	if _, err := s.maintenanceRepo.FindMaintenance(ctx, nil, id); err != nil {
		return nil, err
	}
	return s.changeLogRepo.FindByMaintenanceID(ctx, id)
}
