package domain

import "time"

// TicketID identifies a support ticket
type TicketID string

// SupportTicket is the record produced by a completed support-intake form.
// It is immutable once created.
type SupportTicket struct {
	ID        TicketID  `json:"id"`
	SessionID SessionID `json:"session_id"`

	Name    string `json:"name"`
	OrderID string `json:"order_id"`
	Issue   string `json:"issue"`

	CreatedAt time.Time `json:"created_at"`
}

// TicketStore defines the minimum operations to record intake submissions
type TicketStore interface {
	AppendTicket(ticket *SupportTicket) error
	ListRecentTickets(limit int) ([]*SupportTicket, error)
}
