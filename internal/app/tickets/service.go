package tickets

import (
	"context"

	"github.com/PabloGalante/orderdesk-agent/internal/domain"
)

// Service holds the logic of reading recorded support tickets
type Service struct {
	store domain.TicketStore
}

// NewService creates a ticket service from a TicketStore
func NewService(store domain.TicketStore) *Service {
	return &Service{
		store: store,
	}
}

// ListRecent returns the last `limit` tickets, oldest first.
// If limit <= 0, a reasonable default value is used.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]*domain.SupportTicket, error) {
	if s.store == nil {
		return []*domain.SupportTicket{}, nil
	}

	if limit <= 0 {
		limit = 20
	}

	// ctx is accepted for symmetry with the other services; the in-memory
	// store does not use it.
	return s.store.ListRecentTickets(limit)
}
