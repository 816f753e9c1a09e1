package repositories

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	assetsystem "asset-system"
	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/pkg/database/postgresql"
	apperrors "asset-system/pkg/errors"
)

var testPool *pgxpool.Pool

// TestMain wires a throwaway database when TEST_DATABASE_URL is set. Without
// it the integration tests skip, so the unit suite stays self-contained.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn != "" {
		if err := postgresql.Migrate(dsn, assetsystem.Migrations); err != nil {
			log.Fatalf("failed to migrate test database: %v", err)
		}
		var err error
		testPool, err = pgxpool.New(context.Background(), dsn)
		if err != nil {
			log.Fatalf("failed to connect to test database: %v", err)
		}
		defer testPool.Close()
	}
	os.Exit(m.Run())
}

func requirePool(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
}

func cleanupTables(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `
		TRUNCATE TABLE maintenance_logs, support_ticket_logs, movements,
		support_tickets, maintenances, equipments, profiles CASCADE`)
	require.NoError(t, err)
}

func seedProfile(t *testing.T) uuid.UUID {
	t.Helper()
	repo := NewProfileRepository(testPool)
	p, err := repo.CreateProfile(context.Background(), "tester@corp.com", "hash", "Tester", "user")
	require.NoError(t, err)
	return p.ID
}

func TestSupportTicketRepositoryRoundTrip(t *testing.T) {
	requirePool(t)
	cleanupTables(t)
	ctx := context.Background()
	userID := seedProfile(t)
	repo := NewSupportTicketRepository(testPool)

	created, err := repo.CreateSupportTicket(ctx, userID, dto.CreateSupportTicketDTO{
		Title:       "Printer jam",
		Description: null.StringFrom("Papel preso"),
		Category:    "Hardware",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.TicketStatusPending, created.Status)
	assert.Equal(t, entities.PriorityMedium, created.Priority)
	assert.Equal(t, userID, created.CreatedBy)

	status := entities.TicketStatusFinalized
	updated, err := repo.UpdateSupportTicket(ctx, nil, created.ID, dto.UpdateSupportTicketDTO{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entities.TicketStatusFinalized, updated.Status)
	assert.NotNil(t, updated.CompletedAt, "finalizing stamps completed_at")
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	list, err := repo.GetSupportTickets(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestSupportTicketListOrderedNewestFirst(t *testing.T) {
	requirePool(t)
	cleanupTables(t)
	ctx := context.Background()
	userID := seedProfile(t)
	repo := NewSupportTicketRepository(testPool)

	first, err := repo.CreateSupportTicket(ctx, userID, dto.CreateSupportTicketDTO{Title: "primeiro", Category: "Outro"})
	require.NoError(t, err)
	second, err := repo.CreateSupportTicket(ctx, userID, dto.CreateSupportTicketDTO{Title: "segundo", Category: "Outro"})
	require.NoError(t, err)

	list, err := repo.GetSupportTickets(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestEquipmentRepositoryDelete(t *testing.T) {
	requirePool(t)
	cleanupTables(t)
	ctx := context.Background()
	userID := seedProfile(t)
	repo := NewEquipmentRepository(testPool)

	created, err := repo.CreateEquipment(ctx, userID, dto.CreateEquipmentDTO{
		Name: "Desktop",
		Type: entities.EquipmentTypeDesktop,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentStatusActive, created.Status)

	require.NoError(t, repo.DeleteEquipment(ctx, created.ID))
	assert.ErrorIs(t, repo.DeleteEquipment(ctx, created.ID), apperrors.ErrNotFound)

	_, err = repo.FindEquipment(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestChangeLogRepositoryWithinTx(t *testing.T) {
	requirePool(t)
	cleanupTables(t)
	ctx := context.Background()
	userID := seedProfile(t)
	ticketRepo := NewSupportTicketRepository(testPool)
	logRepo := NewChangeLogRepository(testPool)
	txManager := NewTxManager(testPool)

	ticket, err := ticketRepo.CreateSupportTicket(ctx, userID, dto.CreateSupportTicketDTO{Title: "x", Category: "Outro"})
	require.NoError(t, err)

	oldVal, newVal := entities.TicketStatusPending, entities.TicketStatusInProgress
	err = txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return logRepo.CreateTicketLogInTx(ctx, tx, &entities.ChangeLogEntry{
			ParentID:     ticket.ID,
			FieldChanged: "status",
			OldValue:     &oldVal,
			NewValue:     &newVal,
			ChangedBy:    userID,
		})
	})
	require.NoError(t, err)

	logs, err := logRepo.FindByTicketID(ctx, ticket.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "status", logs[0].FieldChanged)
	assert.NotNil(t, logs[0].ActorName)
}
