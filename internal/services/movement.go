package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/repositories"
	"asset-system/pkg/utils"
)

type MovementServiceInterface interface {
	GetMovements(ctx context.Context, equipmentID *uuid.UUID) ([]entities.Movement, error)
	CreateMovement(ctx context.Context, payload dto.CreateMovementDTO) (*entities.Movement, error)
}

type MovementService struct {
	movementRepo  repositories.MovementRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewMovementService(
	movementRepo repositories.MovementRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) MovementServiceInterface {
	return &MovementService{
		movementRepo:  movementRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (s *MovementService) GetMovements(ctx context.Context, equipmentID *uuid.UUID) ([]entities.Movement, error) {
	return s.movementRepo.GetMovements(ctx, equipmentID)
}

func (s *MovementService) CreateMovement(ctx context.Context, payload dto.CreateMovementDTO) (*entities.Movement, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	// The equipment must exist before a movement can reference it.
	if _, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID); err != nil {
		return nil, err
	}

	movement, err := s.movementRepo.CreateMovement(ctx, userID, payload)
	if err != nil {
		s.logger.Error("movement: create failed",
			zap.String("equipment_id", payload.EquipmentID.String()), zap.Error(err))
		return nil, err
	}

	s.logger.Info("movement: created", zap.String("id", movement.ID.String()))
	return movement, nil
}
