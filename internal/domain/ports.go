package domain

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExists   = errors.New("session already exists")
)

// OrderCatalog exposes the immutable order reference data.
// The boolean is a sentinel: a missing order is not an error.
type OrderCatalog interface {
	FindByID(id string) (*Order, bool)
	ListAll() []*Order
}

// FaqCatalog matches user text against the seeded questions.
// Matching is case-insensitive containment of the full question,
// first entry in catalog order wins.
type FaqCatalog interface {
	MatchByText(userText string) (*FaqEntry, bool)
	ListAll() []*FaqEntry
}

// SessionStore defines session persistence
type SessionStore interface {
	CreateSession(session *Session) error
	UpdateSession(session *Session) error
	GetSession(id SessionID) (*Session, error)
}

// MessageStore defines message persistence
type MessageStore interface {
	AppendMessage(msg *Message) error
	GetMessagesBySession(sessionID SessionID, limit int) ([]*Message, error)
}
