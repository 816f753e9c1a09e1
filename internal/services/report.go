package services

import (
	"context"

	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/repositories"
)

type ReportServiceInterface interface {
	GetTicketReport(ctx context.Context, filter dto.ReportFilter) ([]dto.ReportItemDTO, uint64, error)
	GetEquipmentReport(ctx context.Context, filter dto.EquipmentReportFilter) ([]dto.EquipmentReportItemDTO, uint64, error)
}

type reportService struct {
	reportRepo repositories.ReportRepositoryInterface
	logger     *zap.Logger
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &reportService{reportRepo: reportRepo, logger: logger}
}

func (s *reportService) GetTicketReport(ctx context.Context, filter dto.ReportFilter) ([]dto.ReportItemDTO, uint64, error) {
	items, total, err := s.reportRepo.GetTicketReport(ctx, filter)
	if err != nil {
		s.logger.Error("report: query failed", zap.Error(err))
		return nil, 0, err
	}
	return items, total, nil
}

func (s *reportService) GetEquipmentReport(ctx context.Context, filter dto.EquipmentReportFilter) ([]dto.EquipmentReportItemDTO, uint64, error) {
	items, total, err := s.reportRepo.GetEquipmentReport(ctx, filter)
	if err != nil {
		s.logger.Error("report: equipment query failed", zap.Error(err))
		return nil, 0, err
	}
	return items, total, nil
}
