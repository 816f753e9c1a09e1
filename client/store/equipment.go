package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"asset-system/client/session"
	"asset-system/internal/dto"
	"asset-system/internal/entities"
)

// EquipmentAPI is the backend collection contract the store depends on.
type EquipmentAPI interface {
	ListEquipments(ctx context.Context) ([]entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uuid.UUID) error
}

// EquipmentStore mirrors the remote equipment collection into local state.
// It is the sole writer of its collection.
type EquipmentStore struct {
	api      EquipmentAPI
	session  *session.Manager
	notifier Notifier

	mu      sync.RWMutex
	items   []entities.Equipment
	loading bool
}

func NewEquipmentStore(api EquipmentAPI, sess *session.Manager, notifier Notifier) *EquipmentStore {
	return &EquipmentStore{api: api, session: sess, notifier: notifier}
}

// Items returns a snapshot copy of the local collection, newest first.
func (s *EquipmentStore) Items() []entities.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Equipment, len(s.items))
	copy(out, s.items)
	return out
}

func (s *EquipmentStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// FetchAll replaces the local collection with the backend's. Without an
// identity it returns without contacting the backend.
func (s *EquipmentStore) FetchAll(ctx context.Context) error {
	if s.session.Current() == nil {
		return nil
	}

	s.setLoading(true)
	defer s.setLoading(false)

	items, err := s.api.ListEquipments(ctx)
	if err != nil {
		s.notifier.Error("Erro ao carregar equipamentos", err.Error())
		return err
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// Create inserts on the backend and prepends the returned record, keeping
// newest-first order without a refetch.
func (s *EquipmentStore) Create(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	if s.session.Current() == nil {
		return nil, nil
	}

	created, err := s.api.CreateEquipment(ctx, payload)
	if err != nil {
		s.notifier.Error("Erro ao criar equipamento", err.Error())
		return nil, err
	}

	s.mu.Lock()
	s.items = append([]entities.Equipment{*created}, s.items...)
	s.mu.Unlock()

	s.notifier.Success("Equipamento criado", created.Name)
	return created, nil
}

// Update patches on the backend and replaces the matching local record with
// the server-materialized row.
func (s *EquipmentStore) Update(ctx context.Context, id uuid.UUID, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	if s.session.Current() == nil {
		return nil, nil
	}

	updated, err := s.api.UpdateEquipment(ctx, id, payload)
	if err != nil {
		s.notifier.Error("Erro ao atualizar equipamento", err.Error())
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

	s.notifier.Success("Equipamento atualizado", updated.Name)
	return updated, nil
}

// Delete removes the record on the backend, then locally. Irreversible.
func (s *EquipmentStore) Delete(ctx context.Context, id uuid.UUID) error {
	if s.session.Current() == nil {
		return nil
	}

	if err := s.api.DeleteEquipment(ctx, id); err != nil {
		s.notifier.Error("Erro ao remover equipamento", err.Error())
		return err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Success("Equipamento removido", "")
	return nil
}

func (s *EquipmentStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
