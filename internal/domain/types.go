package domain

import "time"

type SessionID string
type UserID string
type MessageID string

type Role string

const (
	RoleUser         Role = "user"
	RoleBot          Role = "bot"
	RoleSupportAgent Role = "support_agent"
)

type Timestamp = time.Time
