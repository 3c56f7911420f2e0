package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PabloGalante/orderdesk-agent/internal/app/assistant"
	"github.com/PabloGalante/orderdesk-agent/internal/app/tickets"
	"github.com/PabloGalante/orderdesk-agent/internal/domain"
)

type Server struct {
	svc       *assistant.Service
	ticketSvc *tickets.Service
	orders    domain.OrderCatalog
	faqs      domain.FaqCatalog

	// historyLimit caps how many messages a timeline request returns;
	// zero means the full history.
	historyLimit int
}

func NewServer(
	svc *assistant.Service,
	ticketSvc *tickets.Service,
	orders domain.OrderCatalog,
	faqs domain.FaqCatalog,
	historyLimit int,
) http.Handler {
	s := &Server{
		svc:          svc,
		ticketSvc:    ticketSvc,
		orders:       orders,
		faqs:         faqs,
		historyLimit: historyLimit,
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(withRequestLogging)
	r.Use(withCORS)

	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/sessions", s.handleCreateSession)
	r.Get("/sessions/{id}", s.handleGetSession)
	r.Post("/sessions/{id}/messages", s.handleSendMessage)
	r.Post("/sessions/{id}/quick-actions", s.handleQuickAction)

	r.Get("/orders", s.handleListOrders)
	r.Get("/faqs", s.handleListFaqs)
	r.Get("/tickets", s.handleListTickets)

	return r
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type createSessionRequest struct {
	UserID string `json:"user_id"`
	Title  string `json:"title,omitempty"`
}

type createSessionResponse struct {
	Session sessionResponse  `json:"session"`
	Welcome *messageResponse `json:"welcome_message,omitempty"`
}

type sessionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`

	// DelayMs is the advisory typing delay a front end may apply before
	// revealing this message. Zero for stored history.
	DelayMs int64 `json:"delay_ms,omitempty"`
}

type sendMessageRequest struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

type quickActionRequest struct {
	UserID string `json:"user_id"`
	Label  string `json:"label"`
}

type sendMessageResponse struct {
	UserMessage messageResponse   `json:"user_message"`
	Replies     []messageResponse `json:"replies"`
}

type getSessionResponse struct {
	Session  sessionResponse   `json:"session"`
	Messages []messageResponse `json:"messages"`
}

type orderResponse struct {
	ID             string   `json:"id"`
	Status         string   `json:"status"`
	DeliveryDate   string   `json:"delivery_date"`
	Items          []string `json:"items"`
	TrackingNumber string   `json:"tracking_number"`
}

type faqResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ─────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if req.UserID == "" {
		badRequest(w, "user_id is required")
		return
	}

	out, err := s.svc.StartSession(r.Context(), assistant.StartSessionInput{
		UserID: domain.UserID(req.UserID),
		Title:  req.Title,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	var welcome *messageResponse
	if out.Welcome != nil {
		m := toMessageResponse(out.Welcome, 0)
		welcome = &m
	}

	writeJSON(w, http.StatusCreated, createSessionResponse{
		Session: toSessionResponse(out.Session),
		Welcome: welcome,
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := domain.SessionID(chi.URLParam(r, "id"))

	session, msgs, err := s.svc.GetSessionTimeline(r.Context(), id, s.historyLimit)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			http.NotFound(w, r)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, getSessionResponse{
		Session:  toSessionResponse(session),
		Messages: toMessagesResponse(msgs),
	})
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	id := domain.SessionID(chi.URLParam(r, "id"))

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if req.UserID == "" {
		badRequest(w, "user_id is required")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		badRequest(w, "text is required")
		return
	}

	out, err := s.svc.SendMessage(r.Context(), assistant.SendMessageInput{
		SessionID: id,
		UserID:    domain.UserID(req.UserID),
		Text:      req.Text,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			http.NotFound(w, r)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSendMessageResponse(out))
}

func (s *Server) handleQuickAction(w http.ResponseWriter, r *http.Request) {
	id := domain.SessionID(chi.URLParam(r, "id"))

	var req quickActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	if req.UserID == "" {
		badRequest(w, "user_id is required")
		return
	}
	if strings.TrimSpace(req.Label) == "" {
		badRequest(w, "label is required")
		return
	}

	out, err := s.svc.QuickAction(r.Context(), id, domain.UserID(req.UserID), req.Label)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			http.NotFound(w, r)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSendMessageResponse(out))
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders := s.orders.ListAll()
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderResponse{
			ID:             o.ID,
			Status:         string(o.Status),
			DeliveryDate:   o.DeliveryDate,
			Items:          o.Items,
			TrackingNumber: o.TrackingNumber,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": out})
}

func (s *Server) handleListFaqs(w http.ResponseWriter, r *http.Request) {
	faqs := s.faqs.ListAll()
	out := make([]faqResponse, 0, len(faqs))
	for _, e := range faqs {
		out = append(out, faqResponse{Question: e.Question, Answer: e.Answer})
	}
	writeJSON(w, http.StatusOK, map[string]any{"faqs": out})
}

func (s *Server) handleListTickets(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			badRequest(w, "limit must be a positive integer")
			return
		}
		limit = n
	}

	list, err := s.ticketSvc.ListRecent(r.Context(), limit)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tickets": list})
}

// ─────────────────────────────────────────────
// Mapping helpers
// ─────────────────────────────────────────────

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		ID:        string(s.ID),
		UserID:    string(s.UserID),
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toMessageResponse(m *domain.Message, delay time.Duration) messageResponse {
	return messageResponse{
		ID:        string(m.ID),
		SessionID: string(m.SessionID),
		Author:    string(m.Author),
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		DelayMs:   delay.Milliseconds(),
	}
}

func toMessagesResponse(msgs []*domain.Message) []messageResponse {
	out := make([]messageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessageResponse(m, 0))
	}
	return out
}

func toSendMessageResponse(out *assistant.SendMessageOutput) sendMessageResponse {
	replies := make([]messageResponse, 0, len(out.Replies))
	for _, r := range out.Replies {
		replies = append(replies, toMessageResponse(r.Message, r.Delay))
	}
	return sendMessageResponse{
		UserMessage: toMessageResponse(out.UserMessage, 0),
		Replies:     replies,
	}
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func internalError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}
