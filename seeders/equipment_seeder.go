package seeders

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type equipmentSample struct {
	name     string
	brand    string
	model    string
	kind     string
	status   string
	location string
}

var equipmentSamples = []equipmentSample{
	{"Desktop Recepção", "Dell", "OptiPlex 7010", "desktop", "ativo", "Recepção"},
	{"Notebook TI", "Lenovo", "ThinkPad T14", "notebook", "ativo", "TI"},
	{"Servidor Arquivos", "HP", "ProLiant DL380", "server", "ativo", "Sala de servidores"},
	{"Impressora Financeiro", "Epson", "L3250", "printer", "manutencao", "Financeiro"},
	{"Monitor Reserva", "LG", "24MK430", "monitor", "estoque", "Almoxarifado"},
}

// SeedSampleEquipments inserts a handful of demo equipments owned by the
// admin profile. Skips entirely when equipments already exist.
func SeedSampleEquipments(ctx context.Context, db *pgxpool.Pool) error {
	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM equipments").Scan(&count); err != nil {
		return fmt.Errorf("count equipments: %w", err)
	}
	if count > 0 {
		return nil
	}

	var adminID uuid.UUID
	err := db.QueryRow(ctx, "SELECT id FROM profiles WHERE email = 'admin@admin.com'").Scan(&adminID)
	if err != nil {
		return fmt.Errorf("sample equipments need the admin profile: %w", err)
	}

	for _, s := range equipmentSamples {
		_, err := db.Exec(ctx, `
			INSERT INTO equipments (id, name, brand, model, type, status, location, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.New(), s.name, s.brand, s.model, s.kind, s.status, s.location, adminID,
		)
		if err != nil {
			return fmt.Errorf("insert equipment %q: %w", s.name, err)
		}
	}
	return nil
}
