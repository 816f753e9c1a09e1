package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"asset-system/client/session"
	"asset-system/internal/dto"
	"asset-system/internal/entities"
)

type MaintenanceAPI interface {
	ListMaintenances(ctx context.Context) ([]entities.Maintenance, error)
	CreateMaintenance(ctx context.Context, payload dto.CreateMaintenanceDTO) (*entities.Maintenance, error)
	UpdateMaintenance(ctx context.Context, id uuid.UUID, payload dto.UpdateMaintenanceDTO) (*entities.Maintenance, error)
	GetMaintenanceLogs(ctx context.Context, id uuid.UUID) ([]entities.ChangeLogEntry, error)
}

type MaintenanceStore struct {
	api      MaintenanceAPI
	session  *session.Manager
	notifier Notifier

	mu      sync.RWMutex
	items   []entities.Maintenance
	loading bool
}

func NewMaintenanceStore(api MaintenanceAPI, sess *session.Manager, notifier Notifier) *MaintenanceStore {
	return &MaintenanceStore{api: api, session: sess, notifier: notifier}
}

func (s *MaintenanceStore) Items() []entities.Maintenance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Maintenance, len(s.items))
	copy(out, s.items)
	return out
}

func (s *MaintenanceStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *MaintenanceStore) FetchAll(ctx context.Context) error {
	if s.session.Current() == nil {
		return nil
	}

	s.setLoading(true)
	defer s.setLoading(false)

	items, err := s.api.ListMaintenances(ctx)
	if err != nil {
		s.notifier.Error("Erro ao carregar manutenções", err.Error())
		return err
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *MaintenanceStore) Create(ctx context.Context, payload dto.CreateMaintenanceDTO) (*entities.Maintenance, error) {
	if s.session.Current() == nil {
		return nil, nil
	}

	created, err := s.api.CreateMaintenance(ctx, payload)
	if err != nil {
		s.notifier.Error("Erro ao criar manutenção", err.Error())
		return nil, err
	}

	s.mu.Lock()
	s.items = append([]entities.Maintenance{*created}, s.items...)
	s.mu.Unlock()

	s.notifier.Success("Manutenção criada", created.Title)
	return created, nil
}

func (s *MaintenanceStore) Update(ctx context.Context, id uuid.UUID, payload dto.UpdateMaintenanceDTO) (*entities.Maintenance, error) {
	if s.session.Current() == nil {
		return nil, nil
	}

	updated, err := s.api.UpdateMaintenance(ctx, id, payload)
	if err != nil {
		s.notifier.Error("Erro ao atualizar manutenção", err.Error())
		return nil, err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = *updated
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Success("Manutenção atualizada", updated.Title)
	return updated, nil
}

func (s *MaintenanceStore) Logs(ctx context.Context, id uuid.UUID) ([]entities.ChangeLogEntry, error) {
	if s.session.Current() == nil {
		return nil, nil
	}

	logs, err := s.api.GetMaintenanceLogs(ctx, id)
	if err != nil {
		s.notifier.Error("Erro ao carregar histórico da manutenção", err.Error())
		return nil, err
	}
	return logs, nil
}

func (s *MaintenanceStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
