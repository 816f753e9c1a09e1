package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/repositories"
	"asset-system/pkg/config"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/service"
	"asset-system/pkg/utils"
)

type AuthServiceInterface interface {
	SignUp(ctx context.Context, payload dto.SignUpDTO) (*dto.LoginResponseDTO, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error)
	Me(ctx context.Context) (*entities.Profile, error)
}

type AuthService struct {
	profileRepo repositories.ProfileRepositoryInterface
	cacheRepo   repositories.CacheRepositoryInterface
	jwtService  service.JWTService
	cfg         *config.AuthConfig
	logger      *zap.Logger
}

func NewAuthService(
	profileRepo repositories.ProfileRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	cfg *config.AuthConfig,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		profileRepo: profileRepo,
		cacheRepo:   cacheRepo,
		jwtService:  jwtService,
		cfg:         cfg,
		logger:      logger,
	}
}

func (s *AuthService) SignUp(ctx context.Context, payload dto.SignUpDTO) (*dto.LoginResponseDTO, error) {
	if existing, _, err := s.profileRepo.FindProfileByEmail(ctx, payload.Email); err == nil && existing != nil {
		return nil, apperrors.NewHttpError(http.StatusConflict, "Email já cadastrado", nil, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.CreateProfile(ctx, payload.Email, string(hash), payload.FullName, "user")
	if err != nil {
		s.logger.Error("signup: failed to create profile", zap.String("email", payload.Email), zap.Error(err))
		return nil, err
	}

	access, refresh, err := s.jwtService.GenerateTokens(profile.ID, profile.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info("signup: profile created", zap.String("email", profile.Email))
	return &dto.LoginResponseDTO{
		Tokens: dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh},
		User:   *profile,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	logger := s.logger.With(zap.String("email", payload.Email))

	// Lockout after repeated failures, keyed per login.
	attemptsKey := fmt.Sprintf("login_attempts:%s", payload.Email)
	attemptsStr, _ := s.cacheRepo.Get(ctx, attemptsKey)
	if attempts, _ := strconv.Atoi(attemptsStr); attempts >= s.cfg.MaxLoginAttempts {
		logger.Warn("login: account locked out")
		return nil, apperrors.NewHttpError(
			http.StatusTooManyRequests,
			fmt.Sprintf("Muitas tentativas. Tente novamente em %.0f minutos.", s.cfg.LockoutDuration.Minutes()),
			nil,
			nil,
		)
	}

	profile, hash, err := s.profileRepo.FindProfileByEmail(ctx, payload.Email)
	if err != nil {
		s.registerFailedAttempt(ctx, attemptsKey)
		logger.Warn("login: profile not found")
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(payload.Password)); err != nil {
		s.registerFailedAttempt(ctx, attemptsKey)
		logger.Warn("login: wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	_ = s.cacheRepo.Del(ctx, attemptsKey)

	access, refresh, err := s.jwtService.GenerateTokens(profile.ID, profile.Email)
	if err != nil {
		return nil, err
	}

	logger.Info("login: success")
	return &dto.LoginResponseDTO{
		Tokens: dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh},
		User:   *profile,
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	profile, err := s.profileRepo.FindProfileByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	access, refresh, err := s.jwtService.GenerateTokens(profile.ID, profile.Email)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) Me(ctx context.Context) (*entities.Profile, error) {
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return s.profileRepo.FindProfileByID(ctx, userID)
}

func (s *AuthService) registerFailedAttempt(ctx context.Context, key string) {
	attempts, err := s.cacheRepo.Incr(ctx, key)
	if err != nil {
		return
	}
	if attempts == 1 {
		_, _ = s.cacheRepo.Expire(ctx, key, s.cfg.LockoutDuration)
	}
}
