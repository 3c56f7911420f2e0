package router

import (
	"github.com/PabloGalante/orderdesk-agent/internal/app/intake"
	"github.com/PabloGalante/orderdesk-agent/internal/domain"
)

// Action is the routed outcome of one user turn. The set is sealed: the
// formatter switches over these variants without a default case.
type Action interface {
	// Kind is a stable label, used for logging and metrics.
	Kind() string
}

// ShowOrderStatus reports a catalog lookup. Order is nil when no order
// matched the extracted ID.
type ShowOrderStatus struct {
	Order   *domain.Order
	OrderID string
}

// ShowFaqAnswer answers with a matched FAQ entry.
type ShowFaqAnswer struct {
	Entry *domain.FaqEntry
}

// ShowFaqMenu lists every FAQ question.
type ShowFaqMenu struct{}

// ShowSupportMenu shows the support options. AsAgent is true when the menu
// was requested from inside the support flow ("back"), where the original
// answers in the support-agent voice.
type ShowSupportMenu struct {
	AsAgent bool
}

// IntakeReply carries the support-form replies for this turn.
type IntakeReply struct {
	Result intake.Result
}

// Escalate hands the conversation to a senior representative.
type Escalate struct {
	Result intake.Result
}

// ShowOrderHistory lists every order in the catalog.
type ShowOrderHistory struct{}

// ShowContactEmail and ShowContactPhone answer with the canned contact cards.
type ShowContactEmail struct{}
type ShowContactPhone struct{}

// ShowGenericResponse carries a canned or default reply.
type ShowGenericResponse struct {
	Text string
}

func (ShowOrderStatus) Kind() string     { return "show_order_status" }
func (ShowFaqAnswer) Kind() string       { return "show_faq_answer" }
func (ShowFaqMenu) Kind() string         { return "show_faq_menu" }
func (ShowSupportMenu) Kind() string     { return "show_support_menu" }
func (IntakeReply) Kind() string         { return "intake_reply" }
func (Escalate) Kind() string            { return "escalate" }
func (ShowOrderHistory) Kind() string    { return "show_order_history" }
func (ShowContactEmail) Kind() string    { return "contact_email" }
func (ShowContactPhone) Kind() string    { return "contact_phone" }
func (ShowGenericResponse) Kind() string { return "generic_response" }
