package services

import (
	"context"

	"go.uber.org/zap"

	"asset-system/internal/entities"
	"asset-system/internal/repositories"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context) ([]entities.Profile, error)
}

type UserService struct {
	profileRepo repositories.ProfileRepositoryInterface
	logger      *zap.Logger
}

func NewUserService(profileRepo repositories.ProfileRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{profileRepo: profileRepo, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context) ([]entities.Profile, error) {
	return s.profileRepo.GetProfiles(ctx)
}
