package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/pkg/config"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/service"
)

type fakeProfileRepo struct {
	profiles map[string]*entities.Profile
	hashes   map[string]string
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles: make(map[string]*entities.Profile),
		hashes:   make(map[string]string),
	}
}

func (f *fakeProfileRepo) GetProfiles(ctx context.Context) ([]entities.Profile, error) {
	out := make([]entities.Profile, 0, len(f.profiles))
	for _, p := range f.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProfileRepo) FindProfileByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeProfileRepo) FindProfileByEmail(ctx context.Context, email string) (*entities.Profile, string, error) {
	p, ok := f.profiles[email]
	if !ok {
		return nil, "", apperrors.ErrUserNotFound
	}
	cp := *p
	return &cp, f.hashes[email], nil
}

func (f *fakeProfileRepo) CreateProfile(ctx context.Context, email, passwordHash, fullName, role string) (*entities.Profile, error) {
	p := &entities.Profile{ID: uuid.New(), Email: email, FullName: &fullName, Role: role}
	f.profiles[email] = p
	f.hashes[email] = passwordHash
	cp := *p
	return &cp, nil
}

type memoryCacheRepo struct {
	values map[string]int64
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{values: make(map[string]int64)}
}

func (m *memoryCacheRepo) Get(ctx context.Context, key string) (string, error) {
	if v, ok := m.values[key]; ok {
		return strconv.FormatInt(v, 10), nil
	}
	return "", nil
}

func (m *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}

func (m *memoryCacheRepo) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

func (m *memoryCacheRepo) Incr(ctx context.Context, key string) (int64, error) {
	m.values[key]++
	return m.values[key], nil
}

func (m *memoryCacheRepo) Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	return true, nil
}

func newAuthService(profileRepo *fakeProfileRepo, cacheRepo *memoryCacheRepo) AuthServiceInterface {
	cfg := &config.AuthConfig{MaxLoginAttempts: 3, LockoutDuration: 15 * time.Minute}
	jwtSvc := service.NewJWTService("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(profileRepo, cacheRepo, jwtSvc, cfg, zap.NewNop())
}

func seedUser(t *testing.T, repo *fakeProfileRepo, email, password string) *entities.Profile {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	p, err := repo.CreateProfile(context.Background(), email, string(hash), "Fulano", "user")
	require.NoError(t, err)
	return p
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	user := seedUser(t, profileRepo, "user@corp.com", "secret123")
	svc := newAuthService(profileRepo, newMemoryCacheRepo())

	res, err := svc.Login(context.Background(), dto.LoginDTO{Email: "user@corp.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, user.ID, res.User.ID)
	assert.NotEmpty(t, res.Tokens.AccessToken)
	assert.NotEmpty(t, res.Tokens.RefreshToken)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	seedUser(t, profileRepo, "user@corp.com", "secret123")
	svc := newAuthService(profileRepo, newMemoryCacheRepo())

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: "user@corp.com", Password: "wrong"})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthServiceLockoutAfterRepeatedFailures(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	seedUser(t, profileRepo, "user@corp.com", "secret123")
	cache := newMemoryCacheRepo()
	svc := newAuthService(profileRepo, cache)

	for i := 0; i < 3; i++ {
		_, err := svc.Login(context.Background(), dto.LoginDTO{Email: "user@corp.com", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	// Fourth attempt hits the lockout even with the right password.
	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: "user@corp.com", Password: "secret123"})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 429, httpErr.Code)
}

func TestAuthServiceSignUpAndRefresh(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	svc := newAuthService(profileRepo, newMemoryCacheRepo())

	res, err := svc.SignUp(context.Background(), dto.SignUpDTO{
		Email:    "novo@corp.com",
		Password: "secret123",
		FullName: "Novo Usuário",
	})
	require.NoError(t, err)
	assert.Equal(t, "novo@corp.com", res.User.Email)

	pair, err := svc.Refresh(context.Background(), res.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	// Access tokens are rejected by Refresh.
	_, err = svc.Refresh(context.Background(), res.Tokens.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenIsNotRefresh)
}

func TestAuthServiceSignUpDuplicateEmail(t *testing.T) {
	profileRepo := newFakeProfileRepo()
	seedUser(t, profileRepo, "user@corp.com", "secret123")
	svc := newAuthService(profileRepo, newMemoryCacheRepo())

	_, err := svc.SignUp(context.Background(), dto.SignUpDTO{
		Email:    "user@corp.com",
		Password: "secret123",
		FullName: "Duplicado",
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 409, httpErr.Code)
}
