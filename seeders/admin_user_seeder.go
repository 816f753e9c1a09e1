package seeders

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"asset-system/pkg/config"
)

// SeedAdminUser creates the default administrator profile if it does not
// exist yet. The email must match one of the configured admin identifiers.
func SeedAdminUser(ctx context.Context, db *pgxpool.Pool, cfg *config.Config) error {
	const email = "admin@admin.com"

	var exists bool
	err := db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM profiles WHERE email = $1)", email).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check admin profile: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `
		INSERT INTO profiles (id, email, full_name, role, password_hash)
		VALUES ($1, $2, $3, 'admin', $4)`,
		uuid.New(), email, "Administrador", string(hash),
	)
	if err != nil {
		return fmt.Errorf("insert admin profile: %w", err)
	}
	return nil
}
