// Package router classifies raw user text into an Action. Rules are
// evaluated in a fixed precedence order; the first matching rule wins.
package router

import (
	"regexp"
	"strings"

	"github.com/PabloGalante/orderdesk-agent/internal/app/intake"
	"github.com/PabloGalante/orderdesk-agent/internal/domain"
)

// Canned replies for the keyword rules.
const (
	trackPromptText = "Please enter your 5-digit Order ID to track your package."

	addressText = "To change your delivery address, please provide:\n\n" +
		"1. Your order ID\n2. The new delivery address\n\n" +
		"I'll help you update it right away."

	orderIDHelpText = "Your Order ID is a 5-digit number found in your order confirmation email. For example: 12345, 67890, etc."

	cancelRefundText = "I can help you with cancellation or refund requests. Please provide your order ID and reason for cancellation."

	deliveryTimeText = "Based on your location, standard delivery takes 3-5 business days. Express delivery (if selected) takes 1-2 business days."

	thanksText = "You're welcome! Is there anything else I can help you with?"

	helloText = "Hello! I'm your order assistant. How can I help you today?"

	defaultHelpText = "I'm here to help you track your orders. Please enter your 5-digit Order ID or use the quick action buttons below."
)

// A standalone 5-digit run; digits embedded in longer runs do not count.
var orderIDPattern = regexp.MustCompile(`\b\d{5}\b`)

type Router struct {
	orders domain.OrderCatalog
	faqs   domain.FaqCatalog
}

func NewRouter(orders domain.OrderCatalog, faqs domain.FaqCatalog) *Router {
	return &Router{orders: orders, faqs: faqs}
}

// Route dispatches one user turn. The intake state is the session's own;
// Route mutates it when the support form advances.
//
// Precedence: support-domain rules (which fully short-circuit, so an order
// ID typed as a form answer is captured, not reinterpreted), then the
// order-ID regex, then exact quick actions, then substring keywords, then
// the generic fallback.
func (r *Router) Route(text string, st *domain.IntakeState) Action {
	text = strings.TrimSpace(text)
	lower := strings.ToLower(text)

	if st.Active || strings.Contains(lower, "support") || strings.Contains(lower, "help") {
		if a, handled := r.routeSupport(text, lower, st); handled {
			return a
		}
		// Nothing in the support domain claimed the turn: fall through to
		// general dispatch. Load-bearing for e.g. "help, where is my order".
	}

	if id := orderIDPattern.FindString(text); id != "" {
		order, ok := r.orders.FindByID(id)
		if !ok {
			order = nil
		}
		return ShowOrderStatus{Order: order, OrderID: id}
	}

	// Quick actions (exact, case-insensitive).
	switch lower {
	case "track order":
		return ShowGenericResponse{Text: trackPromptText}
	case "history":
		return ShowOrderHistory{}
	case "address":
		return ShowGenericResponse{Text: addressText}
	case "support":
		return ShowSupportMenu{}
	}

	// Keyword fallbacks, fixed order, first hit wins.
	switch {
	case strings.Contains(lower, "order id"):
		return ShowGenericResponse{Text: orderIDHelpText}
	case strings.Contains(lower, "track") || strings.Contains(lower, "where is my order"):
		return ShowGenericResponse{Text: trackPromptText}
	case strings.Contains(lower, "cancel") || strings.Contains(lower, "refund"):
		return ShowGenericResponse{Text: cancelRefundText}
	case strings.Contains(lower, "delivery time") || strings.Contains(lower, "when will it arrive"):
		return ShowGenericResponse{Text: deliveryTimeText}
	case strings.Contains(lower, "thank"):
		return ShowGenericResponse{Text: thanksText}
	case strings.Contains(lower, "hello") || strings.Contains(lower, "hi"):
		return ShowGenericResponse{Text: helloText}
	case strings.Contains(lower, "try another") || strings.Contains(lower, "track another"):
		return ShowGenericResponse{Text: trackPromptText}
	case strings.Contains(lower, "contact") || strings.Contains(lower, "support"):
		return ShowSupportMenu{}
	}

	return ShowGenericResponse{Text: defaultHelpText}
}

// routeSupport handles the support domain. The boolean reports whether the
// turn was claimed; false cascades back into general dispatch.
func (r *Router) routeSupport(text, lower string, st *domain.IntakeState) (Action, bool) {
	if lower == "escalate" {
		return Escalate{Result: intake.Escalate(st)}, true
	}

	if entry, ok := r.faqs.MatchByText(text); ok {
		return ShowFaqAnswer{Entry: entry}, true
	}

	// An active form consumes the answer before any other interpretation.
	if st.Active {
		return IntakeReply{Result: intake.Submit(st, text)}, true
	}

	switch lower {
	case "email support", "email":
		return ShowContactEmail{}, true
	case "call support", "call":
		return ShowContactPhone{}, true
	case "support form", "form":
		return IntakeReply{Result: intake.Start(st)}, true
	case "faq", "faqs":
		return ShowFaqMenu{}, true
	case "back":
		return ShowSupportMenu{AsAgent: true}, true
	}

	return nil, false
}
