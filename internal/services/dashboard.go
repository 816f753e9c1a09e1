package services

import (
	"context"

	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/repositories"
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
	logger        *zap.Logger
}

func NewDashboardService(dashboardRepo repositories.DashboardRepositoryInterface, logger *zap.Logger) DashboardServiceInterface {
	return &DashboardService{dashboardRepo: dashboardRepo, logger: logger}
}

func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	stats, err := s.dashboardRepo.GetStats(ctx)
	if err != nil {
		s.logger.Error("dashboard: stats query failed", zap.Error(err))
		return nil, err
	}
	return stats, nil
}
