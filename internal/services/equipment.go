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

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uuid.UUID) error
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{equipmentRepo: equipmentRepo, logger: logger}
}

func (s *EquipmentService) GetEquipments(ctx context.Context) ([]entities.Equipment, error) {
	return s.equipmentRepo.GetEquipments(ctx)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	equipment, err := s.equipmentRepo.CreateEquipment(ctx, userID, payload)
	if err != nil {
		s.logger.Error("equipment: create failed", zap.String("name", payload.Name), zap.Error(err))
		return nil, err
	}

	s.logger.Info("equipment: created",
		zap.String("id", equipment.ID.String()),
		zap.String("name", equipment.Name))
	return equipment, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	equipment, err := s.equipmentRepo.UpdateEquipment(ctx, id, payload)
	if err != nil {
		s.logger.Error("equipment: update failed", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return equipment, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	if err := s.equipmentRepo.DeleteEquipment(ctx, id); err != nil {
		s.logger.Error("equipment: delete failed", zap.String("id", id.String()), zap.Error(err))
		return err
	}
	s.logger.Info("equipment: deleted", zap.String("id", id.String()))
	return nil
}
