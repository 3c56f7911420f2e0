package memory

import (
	"sync"

	"github.com/PabloGalante/orderdesk-agent/internal/domain"
)

// TicketStore is a simple in-memory implementation of domain.TicketStore.
// It is NOT persistent; tickets live for the lifetime of the process.
type TicketStore struct {
	mu      sync.RWMutex
	tickets []*domain.SupportTicket
}

func NewTicketStore() *TicketStore {
	return &TicketStore{}
}

func (s *TicketStore) AppendTicket(ticket *domain.SupportTicket) error {
	if ticket == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickets = append(s.tickets, ticket)
	return nil
}

// ListRecentTickets returns the last `limit` tickets, oldest first.
// If limit <= 0, returns all.
func (s *TicketStore) ListRecentTickets(limit int) ([]*domain.SupportTicket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.tickets) {
		limit = len(s.tickets)
	}

	start := len(s.tickets) - limit
	out := make([]*domain.SupportTicket, 0, limit)
	out = append(out, s.tickets[start:]...)
	return out, nil
}
