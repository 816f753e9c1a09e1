package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-system/internal/entities"
	apperrors "asset-system/pkg/errors"
)

const profileColumns = "id, email, full_name, role, password_hash, created_at, updated_at"

type ProfileRepositoryInterface interface {
	GetProfiles(ctx context.Context) ([]entities.Profile, error)
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error)
	FindProfileByEmail(ctx context.Context, email string) (*entities.Profile, string, error)
	CreateProfile(ctx context.Context, email, passwordHash, fullName, role string) (*entities.Profile, error)
}

type ProfileRepository struct {
	storage *pgxpool.Pool
}

func NewProfileRepository(storage *pgxpool.Pool) ProfileRepositoryInterface {
	return &ProfileRepository{storage: storage}
}

func scanProfile(row pgx.Row) (*entities.Profile, string, error) {
	var p entities.Profile
	var hash string
	err := row.Scan(&p.ID, &p.Email, &p.FullName, &p.Role, &hash, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", apperrors.ErrNotFound
		}
		return nil, "", err
	}
	return &p, hash, nil
}

func (r *ProfileRepository) GetProfiles(ctx context.Context) ([]entities.Profile, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("id", "email", "full_name", "role", "created_at", "updated_at").
		From("profiles").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]entities.Profile, 0)
	for rows.Next() {
		var p entities.Profile
		if err := rows.Scan(&p.ID, &p.Email, &p.FullName, &p.Role, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *ProfileRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	row := r.storage.QueryRow(ctx, "SELECT "+profileColumns+" FROM profiles WHERE id = $1", id)
	profile, _, err := scanProfile(row)
	return profile, err
}

func (r *ProfileRepository) FindProfileByEmail(ctx context.Context, email string) (*entities.Profile, string, error) {
	row := r.storage.QueryRow(ctx, "SELECT "+profileColumns+" FROM profiles WHERE email = $1", email)
	return scanProfile(row)
}

func (r *ProfileRepository) CreateProfile(ctx context.Context, email, passwordHash, fullName, role string) (*entities.Profile, error) {
	row := r.storage.QueryRow(ctx, `
		INSERT INTO profiles (id, email, password_hash, full_name, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+profileColumns,
		uuid.New(), email, passwordHash, fullName, role,
	)
	profile, _, err := scanProfile(row)
	return profile, err
}
