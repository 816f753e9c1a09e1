package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/pkg/types"
)

type fakeMaintenanceAPI struct {
	userID  uuid.UUID
	records []entities.Maintenance
	fail    error
	calls   int
}

func (f *fakeMaintenanceAPI) ListMaintenances(ctx context.Context) ([]entities.Maintenance, error) {
	f.calls++
	if f.fail != nil {
		return nil, f.fail
	}
	out := make([]entities.Maintenance, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeMaintenanceAPI) CreateMaintenance(ctx context.Context, payload dto.CreateMaintenanceDTO) (*entities.Maintenance, error) {
	f.calls++
	if f.fail != nil {
		return nil, f.fail
	}
	status := payload.Status
	if status == "" {
		status = entities.MaintenanceStatusPending
	}
	priority := payload.Priority
	if priority == "" {
		priority = entities.PriorityMedium
	}
	created := entities.Maintenance{
		ID:          uuid.New(),
		Title:       payload.Title,
		Type:        payload.Type,
		Status:      status,
		Priority:    priority,
		RequestedBy: f.userID,
		BaseEntity: types.BaseEntity{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	f.records = append([]entities.Maintenance{created}, f.records...)
	return &created, nil
}

func (f *fakeMaintenanceAPI) UpdateMaintenance(ctx context.Context, id uuid.UUID, payload dto.UpdateMaintenanceDTO) (*entities.Maintenance, error) {
	f.calls++
	if f.fail != nil {
		return nil, f.fail
	}
	for i := range f.records {
		if f.records[i].ID == id {
			if payload.Status != nil {
				f.records[i].Status = *payload.Status
			}
			cp := f.records[i]
			return &cp, nil
		}
	}
	return nil, errors.New("registro não encontrado")
}

func (f *fakeMaintenanceAPI) GetMaintenanceLogs(ctx context.Context, id uuid.UUID) ([]entities.ChangeLogEntry, error) {
	f.calls++
	return nil, f.fail
}

func TestMaintenanceStoreCreateDefaults(t *testing.T) {
	userID := uuid.New()
	api := &fakeMaintenanceAPI{userID: userID}
	notifier := &recordingNotifier{}
	s := NewMaintenanceStore(api, signedInManager(userID), notifier)

	created, err := s.Create(context.Background(), dto.CreateMaintenanceDTO{
		Title: "Troca de fonte",
		Type:  entities.MaintenanceTypeCorrective,
	})

	require.NoError(t, err)
	assert.Equal(t, entities.MaintenanceStatusPending, created.Status)
	assert.Equal(t, entities.PriorityMedium, created.Priority)
	assert.Equal(t, userID, created.RequestedBy)
	assert.Equal(t, []string{"Manutenção criada"}, notifier.successes)
}

func TestMaintenanceStoreFetchAllWithoutIdentityIsNoOp(t *testing.T) {
	api := &fakeMaintenanceAPI{}
	s := NewMaintenanceStore(api, signedOutManager(), &recordingNotifier{})

	require.NoError(t, s.FetchAll(context.Background()))
	assert.Zero(t, api.calls)
}

func TestMaintenanceStoreUpdateFailureNotifies(t *testing.T) {
	userID := uuid.New()
	api := &fakeMaintenanceAPI{userID: userID, fail: errors.New("serviço indisponível")}
	notifier := &recordingNotifier{}
	s := NewMaintenanceStore(api, signedInManager(userID), notifier)

	status := entities.MaintenanceStatusCompleted
	_, err := s.Update(context.Background(), uuid.New(), dto.UpdateMaintenanceDTO{Status: &status})

	require.Error(t, err)
	assert.Equal(t, []string{"Erro ao atualizar manutenção"}, notifier.errors)
}
