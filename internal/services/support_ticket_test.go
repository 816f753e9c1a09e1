package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/repositories"
	"asset-system/pkg/contextkeys"
	apperrors "asset-system/pkg/errors"
)

type fakeTicketRepo struct {
	ticket *entities.SupportTicket
}

func (f *fakeTicketRepo) GetSupportTickets(ctx context.Context) ([]entities.SupportTicket, error) {
	if f.ticket == nil {
		return nil, nil
	}
	return []entities.SupportTicket{*f.ticket}, nil
}

func (f *fakeTicketRepo) FindSupportTicket(ctx context.Context, q repositories.Querier, id uuid.UUID) (*entities.SupportTicket, error) {
	if f.ticket == nil || f.ticket.ID != id {
		return nil, apperrors.ErrNotFound
	}
	cp := *f.ticket
	return &cp, nil
}

func (f *fakeTicketRepo) CreateSupportTicket(ctx context.Context, createdBy uuid.UUID, payload dto.CreateSupportTicketDTO) (*entities.SupportTicket, error) {
	created := &entities.SupportTicket{
		ID:        uuid.New(),
		Title:     payload.Title,
		Status:    entities.TicketStatusPending,
		Priority:  entities.PriorityMedium,
		Category:  payload.Category,
		CreatedBy: createdBy,
	}
	f.ticket = created
	cp := *created
	return &cp, nil
}

func (f *fakeTicketRepo) UpdateSupportTicket(ctx context.Context, q repositories.Querier, id uuid.UUID, payload dto.UpdateSupportTicketDTO) (*entities.SupportTicket, error) {
	if f.ticket == nil || f.ticket.ID != id {
		return nil, apperrors.ErrNotFound
	}
	if payload.Status != nil {
		f.ticket.Status = *payload.Status
		if *payload.Status == entities.TicketStatusFinalized {
			now := time.Now()
			f.ticket.CompletedAt = &now
		}
	}
	if payload.Priority != nil {
		f.ticket.Priority = *payload.Priority
	}
	if payload.AssignedTo != nil {
		f.ticket.AssignedTo = payload.AssignedTo
	}
	cp := *f.ticket
	return &cp, nil
}

type fakeChangeLogRepo struct {
	ticketEntries      []entities.ChangeLogEntry
	maintenanceEntries []entities.ChangeLogEntry
}

func (f *fakeChangeLogRepo) CreateTicketLogInTx(ctx context.Context, tx pgx.Tx, entry *entities.ChangeLogEntry) error {
	f.ticketEntries = append(f.ticketEntries, *entry)
	return nil
}

func (f *fakeChangeLogRepo) CreateMaintenanceLogInTx(ctx context.Context, tx pgx.Tx, entry *entities.ChangeLogEntry) error {
	f.maintenanceEntries = append(f.maintenanceEntries, *entry)
	return nil
}

func (f *fakeChangeLogRepo) FindByTicketID(ctx context.Context, ticketID uuid.UUID) ([]entities.ChangeLogEntry, error) {
	return f.ticketEntries, nil
}

func (f *fakeChangeLogRepo) FindByMaintenanceID(ctx context.Context, maintenanceID uuid.UUID) ([]entities.ChangeLogEntry, error) {
	return f.maintenanceEntries, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

func authedCtx(userID uuid.UUID) context.Context {
	ctx := context.WithValue(context.Background(), contextkeys.UserIDKey, userID)
	return context.WithValue(ctx, contextkeys.UserEmailKey, "user@corp.com")
}

func TestSupportTicketServiceUpdateWritesChangeLogs(t *testing.T) {
	userID := uuid.New()
	ticketRepo := &fakeTicketRepo{ticket: &entities.SupportTicket{
		ID:       uuid.New(),
		Title:    "Printer jam",
		Status:   entities.TicketStatusPending,
		Priority: entities.PriorityMedium,
		Category: "Hardware",
	}}
	logRepo := &fakeChangeLogRepo{}
	svc := NewSupportTicketService(ticketRepo, logRepo, passthroughTxManager{}, zap.NewNop())

	status := entities.TicketStatusInProgress
	priority := entities.PriorityHigh
	updated, err := svc.UpdateSupportTicket(authedCtx(userID), ticketRepo.ticket.ID, dto.UpdateSupportTicketDTO{
		Status:   &status,
		Priority: &priority,
	})

	require.NoError(t, err)
	assert.Equal(t, entities.TicketStatusInProgress, updated.Status)

	require.Len(t, logRepo.ticketEntries, 2)
	fields := []string{logRepo.ticketEntries[0].FieldChanged, logRepo.ticketEntries[1].FieldChanged}
	assert.Contains(t, fields, "status")
	assert.Contains(t, fields, "priority")
	for _, entry := range logRepo.ticketEntries {
		assert.Equal(t, userID, entry.ChangedBy)
	}
}

func TestSupportTicketServiceUpdateSkipsUnchangedFields(t *testing.T) {
	userID := uuid.New()
	ticketRepo := &fakeTicketRepo{ticket: &entities.SupportTicket{
		ID:       uuid.New(),
		Title:    "Sem rede",
		Status:   entities.TicketStatusPending,
		Priority: entities.PriorityMedium,
		Category: "Rede",
	}}
	logRepo := &fakeChangeLogRepo{}
	svc := NewSupportTicketService(ticketRepo, logRepo, passthroughTxManager{}, zap.NewNop())

	// Same status as stored: no log entry expected.
	status := entities.TicketStatusPending
	title := "Sem rede em toda a sala"
	_, err := svc.UpdateSupportTicket(authedCtx(userID), ticketRepo.ticket.ID, dto.UpdateSupportTicketDTO{
		Status: &status,
		Title:  &title,
	})

	require.NoError(t, err)
	assert.Empty(t, logRepo.ticketEntries, "untracked and unchanged fields produce no history")
}

func TestSupportTicketServiceUpdateUnknownID(t *testing.T) {
	svc := NewSupportTicketService(&fakeTicketRepo{}, &fakeChangeLogRepo{}, passthroughTxManager{}, zap.NewNop())

	status := entities.TicketStatusCancelled
	_, err := svc.UpdateSupportTicket(authedCtx(uuid.New()), uuid.New(), dto.UpdateSupportTicketDTO{Status: &status})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSupportTicketServiceCreateInjectsCreator(t *testing.T) {
	userID := uuid.New()
	ticketRepo := &fakeTicketRepo{}
	svc := NewSupportTicketService(ticketRepo, &fakeChangeLogRepo{}, passthroughTxManager{}, zap.NewNop())

	created, err := svc.CreateSupportTicket(authedCtx(userID), dto.CreateSupportTicketDTO{
		Title:    "Printer jam",
		Category: "Hardware",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, created.CreatedBy)
	assert.Equal(t, entities.TicketStatusPending, created.Status)
}

func TestSupportTicketServiceCreateWithoutIdentity(t *testing.T) {
	svc := NewSupportTicketService(&fakeTicketRepo{}, &fakeChangeLogRepo{}, passthroughTxManager{}, zap.NewNop())

	_, err := svc.CreateSupportTicket(context.Background(), dto.CreateSupportTicketDTO{
		Title:    "x",
		Category: "Outro",
	})

	assert.ErrorIs(t, err, apperrors.ErrUserIDNotFoundInContext)
}
