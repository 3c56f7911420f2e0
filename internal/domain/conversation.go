package domain

// Message represents any message in a session timeline (user, bot or support agent)
type Message struct {
	ID        MessageID
	SessionID SessionID
	Author    Role
	Text      string
	CreatedAt Timestamp
}

// Session represents one conversation between a user and the assistant.
// The intake state lives on the session so that concurrent conversations
// never share it.
type Session struct {
	ID        SessionID
	UserID    UserID
	CreatedAt Timestamp
	UpdatedAt Timestamp

	Title  string
	Intake IntakeState
}
