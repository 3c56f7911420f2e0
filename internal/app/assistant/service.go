package assistant

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/PabloGalante/orderdesk-agent/internal/app/format"
	"github.com/PabloGalante/orderdesk-agent/internal/app/router"
	"github.com/PabloGalante/orderdesk-agent/internal/domain"
	"github.com/PabloGalante/orderdesk-agent/internal/observability"
	"github.com/PabloGalante/orderdesk-agent/internal/observability/metrics"
)

const welcomeText = "Hello! I'm your order assistant. How can I help you today?"

// Service is the conversation core: it owns one router/formatter pair and
// drives a session's turns. All state outside the stores is immutable.
type Service struct {
	sessionStore domain.SessionStore
	messageStore domain.MessageStore
	ticketStore  domain.TicketStore

	router    *router.Router
	formatter *format.Formatter

	now   func() time.Time
	newID func() string
}

func NewService(
	orders domain.OrderCatalog,
	faqs domain.FaqCatalog,
	sessionStore domain.SessionStore,
	messageStore domain.MessageStore,
	ticketStore domain.TicketStore,
) *Service {
	return &Service{
		sessionStore: sessionStore,
		messageStore: messageStore,
		ticketStore:  ticketStore,
		router:       router.NewRouter(orders, faqs),
		formatter:    format.NewFormatter(orders, faqs),
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

type StartSessionInput struct {
	UserID domain.UserID
	Title  string
}

type StartSessionOutput struct {
	Session *domain.Session
	Welcome *domain.Message
}

func (s *Service) StartSession(ctx context.Context, in StartSessionInput) (*StartSessionOutput, error) {
	now := s.now()

	log := observability.LoggerFromContext(ctx).With("user_id", in.UserID)
	log.Info("starting new session")

	session := &domain.Session{
		ID:        domain.SessionID(s.newID()),
		UserID:    in.UserID,
		CreatedAt: now,
		UpdatedAt: now,
		Title:     in.Title,
		Intake:    domain.IntakeState{Step: domain.IntakeIdle},
	}

	if err := s.sessionStore.CreateSession(session); err != nil {
		log.Error("failed to create session", "error", err)
		return nil, err
	}

	welcome := &domain.Message{
		ID:        domain.MessageID(s.newID()),
		SessionID: session.ID,
		Author:    domain.RoleBot,
		Text:      welcomeText,
		CreatedAt: now,
	}

	if err := s.messageStore.AppendMessage(welcome); err != nil {
		log.Error("failed to append welcome message", "error", err)
		return nil, err
	}
	metrics.Messages.WithLabelValues(string(domain.RoleBot)).Inc()

	log.Info("session started", "session_id", session.ID)

	return &StartSessionOutput{Session: session, Welcome: welcome}, nil
}

type SendMessageInput struct {
	SessionID domain.SessionID
	UserID    domain.UserID
	Text      string
}

// OutboundMessage pairs a stored reply with its advisory pacing delay,
// relative to the previous reply. Presentation layers may honor or elide it.
type OutboundMessage struct {
	Message *domain.Message
	Delay   time.Duration
}

type SendMessageOutput struct {
	UserMessage *domain.Message
	Replies     []OutboundMessage
}

// SendMessage runs one conversation turn: store the user text, route it
// against the session's intake state, render the action, and append every
// reply in emission order before returning.
func (s *Service) SendMessage(ctx context.Context, in SendMessageInput) (*SendMessageOutput, error) {
	session, err := s.sessionStore.GetSession(in.SessionID)
	if err != nil {
		return nil, err
	}

	log := observability.LoggerFromContext(ctx).With(
		"session_id", session.ID,
		"user_id", session.UserID,
	)
	log.Info("handling message", "text", in.Text)

	now := s.now()

	userMsg := &domain.Message{
		ID:        domain.MessageID(s.newID()),
		SessionID: session.ID,
		Author:    domain.RoleUser,
		Text:      in.Text,
		CreatedAt: now,
	}

	if err := s.messageStore.AppendMessage(userMsg); err != nil {
		log.Error("failed to append user message", "error", err)
		return nil, err
	}
	metrics.Messages.WithLabelValues(string(domain.RoleUser)).Inc()

	action := s.router.Route(in.Text, &session.Intake)
	metrics.RoutedIntents.WithLabelValues(action.Kind()).Inc()
	log.Info("routed", "action", action.Kind(), "intake_step", session.Intake.Step)

	if err := s.recordSubmission(ctx, session, action); err != nil {
		log.Error("failed to record ticket", "error", err)
		return nil, err
	}

	// Replies are appended synchronously in emission order; delays are
	// advisory metadata for the presentation layer only.
	var out []OutboundMessage
	for _, reply := range s.formatter.Render(action) {
		msg := &domain.Message{
			ID:        domain.MessageID(s.newID()),
			SessionID: session.ID,
			Author:    reply.Role,
			Text:      reply.Text,
			CreatedAt: s.now(),
		}
		if err := s.messageStore.AppendMessage(msg); err != nil {
			log.Error("failed to append reply", "error", err)
			return nil, err
		}
		metrics.Messages.WithLabelValues(string(reply.Role)).Inc()
		out = append(out, OutboundMessage{Message: msg, Delay: reply.Delay})
	}

	session.UpdatedAt = s.now()
	if err := s.sessionStore.UpdateSession(session); err != nil {
		log.Error("failed to update session", "error", err)
		return nil, err
	}

	return &SendMessageOutput{UserMessage: userMsg, Replies: out}, nil
}

// QuickAction routes a UI-triggered action exactly as if its label had been
// typed by the user.
func (s *Service) QuickAction(ctx context.Context, sessionID domain.SessionID, userID domain.UserID, label string) (*SendMessageOutput, error) {
	return s.SendMessage(ctx, SendMessageInput{
		SessionID: sessionID,
		UserID:    userID,
		Text:      label,
	})
}

func (s *Service) GetSessionTimeline(
	ctx context.Context,
	sessionID domain.SessionID,
	limit int,
) (*domain.Session, []*domain.Message, error) {
	session, err := s.sessionStore.GetSession(sessionID)
	if err != nil {
		return nil, nil, err
	}

	msgs, err := s.messageStore.GetMessagesBySession(sessionID, limit)
	if err != nil {
		return nil, nil, err
	}

	return session, msgs, nil
}

// recordSubmission turns a completed intake form into a support ticket.
func (s *Service) recordSubmission(ctx context.Context, session *domain.Session, action router.Action) error {
	reply, ok := action.(router.IntakeReply)
	if !ok || reply.Result.Submitted == nil || s.ticketStore == nil {
		return nil
	}

	sub := reply.Result.Submitted
	ticket := &domain.SupportTicket{
		ID:        domain.TicketID(s.newID()),
		SessionID: session.ID,
		Name:      sub.Name,
		OrderID:   sub.OrderID,
		Issue:     sub.Issue,
		CreatedAt: s.now(),
	}

	if err := s.ticketStore.AppendTicket(ticket); err != nil {
		return err
	}
	metrics.TicketsCreated.Inc()

	observability.LoggerFromContext(ctx).Info("support ticket recorded",
		"ticket_id", ticket.ID,
		"session_id", session.ID,
	)
	return nil
}
