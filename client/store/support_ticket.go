package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"asset-system/client/session"
	"asset-system/internal/dto"
	"asset-system/internal/entities"
)

type SupportTicketAPI interface {
	ListSupportTickets(ctx context.Context) ([]entities.SupportTicket, error)
	CreateSupportTicket(ctx context.Context, payload dto.CreateSupportTicketDTO) (*entities.SupportTicket, error)
	UpdateSupportTicket(ctx context.Context, id uuid.UUID, payload dto.UpdateSupportTicketDTO) (*entities.SupportTicket, error)
	GetTicketLogs(ctx context.Context, id uuid.UUID) ([]entities.ChangeLogEntry, error)
}

// SupportTicketStore mirrors the remote support-ticket collection. Tickets
// are never deleted, only cancelled via status.
type SupportTicketStore struct {
	api      SupportTicketAPI
	session  *session.Manager
	notifier Notifier

	mu      sync.RWMutex
	items   []entities.SupportTicket
	loading bool
}

func NewSupportTicketStore(api SupportTicketAPI, sess *session.Manager, notifier Notifier) *SupportTicketStore {
	return &SupportTicketStore{api: api, session: sess, notifier: notifier}
}

func (s *SupportTicketStore) Items() []entities.SupportTicket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.SupportTicket, len(s.items))
	copy(out, s.items)
	return out
}

func (s *SupportTicketStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *SupportTicketStore) FetchAll(ctx context.Context) error {
	if s.session.Current() == nil {
		return nil
	}

	s.setLoading(true)
	defer s.setLoading(false)

	items, err := s.api.ListSupportTickets(ctx)
	if err != nil {
		s.notifier.Error("Erro ao carregar chamados", err.Error())
		return err
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *SupportTicketStore) Create(ctx context.Context, payload dto.CreateSupportTicketDTO) (*entities.SupportTicket, error) {
	if s.session.Current() == nil {
		return nil, nil
	}

	created, err := s.api.CreateSupportTicket(ctx, payload)
	if err != nil {
		s.notifier.Error("Erro ao criar chamado", err.Error())
		return nil, err
	}

	s.mu.Lock()
	s.items = append([]entities.SupportTicket{*created}, s.items...)
	s.mu.Unlock()

	s.notifier.Success("Chamado criado", created.Title)
	return created, nil
}

func (s *SupportTicketStore) Update(ctx context.Context, id uuid.UUID, payload dto.UpdateSupportTicketDTO) (*entities.SupportTicket, error) {
	if s.session.Current() == nil {
		return nil, nil
	}

	updated, err := s.api.UpdateSupportTicket(ctx, id, payload)
	if err != nil {
		s.notifier.Error("Erro ao atualizar chamado", err.Error())
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

	s.notifier.Success("Chamado atualizado", updated.Title)
	return updated, nil
}

// Logs fetches the backend-produced change history for one ticket. Read-only,
// not mirrored into local state.
func (s *SupportTicketStore) Logs(ctx context.Context, id uuid.UUID) ([]entities.ChangeLogEntry, error) {
	if s.session.Current() == nil {
		return nil, nil
	}

	logs, err := s.api.GetTicketLogs(ctx, id)
	if err != nil {
		s.notifier.Error("Erro ao carregar histórico do chamado", err.Error())
		return nil, err
	}
	return logs, nil
}

func (s *SupportTicketStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
