// Package format renders routed actions into ordered, human-readable
// replies. All functions are pure over the immutable catalogs.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/PabloGalante/orderdesk-agent/internal/app/intake"
	"github.com/PabloGalante/orderdesk-agent/internal/app/router"
	"github.com/PabloGalante/orderdesk-agent/internal/domain"
)

const (
	supportMenuText = "How can we help you today? You can:\n\n" +
		"1. Email Support\n2. Call Support\n3. Fill out a support form\n4. View FAQs\n\n" +
		"Or type 'escalate' to speak with a senior representative."

	contactEmailText = "You can reach our support team at support@dummycompany.com. We typically respond within 24-48 hours."

	contactPhoneText = "You can call our support team at +1 (555) 123-4567. Our support hours are Monday-Friday, 9 AM to 5 PM EST."

	orderNotFoundText = "Sorry, no order found with ID: %s. Please check and try again."

	trackAnotherText      = "Would you like to track another order or contact support?"
	tryAnotherText        = "Would you like to try another order ID or contact support?"
	historyHeaderText     = "Here are your recent orders:\n\n"
	historyTrailerText    = "\nWould you like to track any specific order?"
	faqMenuHeaderText     = "Here are some frequently asked questions:\n\n"
	faqMenuTrailerText    = "\nPlease type the question you're interested in, or type 'back' to return to the main menu."
	deliveredClosingText  = "Your order has been delivered. Thank you for shopping with us!"
	inTransitClosingText  = "Your order is on its way! You can track it in real-time using the tracking number above."
	processingClosingText = "We're currently processing your order. It will be shipped soon."
	pendingClosingText    = "Your order is pending. Our team will process it shortly."
)

// Pacing delays mirroring the original typing choreography. They are
// advisory: callers may elide them entirely.
const (
	typingDelay   = time.Second
	lookupDelay   = 2 * time.Second
	followUpDelay = time.Second
)

// Reply is one outbound message with its author role and advisory delay
// relative to the previous reply.
type Reply struct {
	Text  string
	Role  domain.Role
	Delay time.Duration
}

type Formatter struct {
	orders domain.OrderCatalog
	faqs   domain.FaqCatalog
}

func NewFormatter(orders domain.OrderCatalog, faqs domain.FaqCatalog) *Formatter {
	return &Formatter{orders: orders, faqs: faqs}
}

// Render maps an action to its ordered replies. The order of the returned
// slice is the emission order and must be preserved downstream.
func (f *Formatter) Render(a router.Action) []Reply {
	switch act := a.(type) {
	case router.ShowOrderStatus:
		return renderOrderStatus(act)

	case router.ShowFaqAnswer:
		return []Reply{{Text: act.Entry.Answer, Role: domain.RoleSupportAgent, Delay: typingDelay}}

	case router.ShowFaqMenu:
		return []Reply{{Text: f.faqMenu(), Role: domain.RoleSupportAgent, Delay: typingDelay}}

	case router.ShowSupportMenu:
		role := domain.RoleBot
		if act.AsAgent {
			role = domain.RoleSupportAgent
		}
		return []Reply{{Text: supportMenuText, Role: role, Delay: typingDelay}}

	case router.IntakeReply:
		return intakeReplies(act.Result.Replies)

	case router.Escalate:
		return intakeReplies(act.Result.Replies)

	case router.ShowOrderHistory:
		return []Reply{{Text: f.orderHistory(), Role: domain.RoleBot, Delay: typingDelay}}

	case router.ShowContactEmail:
		return []Reply{{Text: contactEmailText, Role: domain.RoleSupportAgent, Delay: typingDelay}}

	case router.ShowContactPhone:
		return []Reply{{Text: contactPhoneText, Role: domain.RoleSupportAgent, Delay: typingDelay}}

	case router.ShowGenericResponse:
		return []Reply{{Text: act.Text, Role: domain.RoleBot, Delay: typingDelay}}
	}

	return nil
}

func renderOrderStatus(act router.ShowOrderStatus) []Reply {
	if act.Order == nil {
		return []Reply{
			{Text: fmt.Sprintf(orderNotFoundText, act.OrderID), Role: domain.RoleBot, Delay: lookupDelay},
			{Text: tryAnotherText, Role: domain.RoleBot, Delay: followUpDelay},
		}
	}

	return []Reply{
		{Text: OrderDetails(act.Order), Role: domain.RoleBot, Delay: lookupDelay},
		{Text: trackAnotherText, Role: domain.RoleBot, Delay: followUpDelay},
	}
}

// OrderDetails renders the status card for one order. Delivery date and
// tracking number are suppressed while the order is still Pending or
// Processing; the items line is always present.
func OrderDetails(o *domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order #%s Status: %s\n", o.ID, o.Status)

	if o.Status != domain.StatusPending && o.Status != domain.StatusProcessing {
		fmt.Fprintf(&b, "Estimated Delivery: %s\n", o.DeliveryDate)
		fmt.Fprintf(&b, "Tracking Number: %s\n\n", o.TrackingNumber)
	}

	fmt.Fprintf(&b, "Items: %s\n\n", strings.Join(o.Items, ", "))
	b.WriteString(statusClosing(o.Status))
	return b.String()
}

func statusClosing(s domain.OrderStatus) string {
	switch s {
	case domain.StatusDelivered:
		return deliveredClosingText
	case domain.StatusShipped, domain.StatusInTransit:
		return inTransitClosingText
	case domain.StatusProcessing:
		return processingClosingText
	case domain.StatusPending:
		return pendingClosingText
	}
	return ""
}

func (f *Formatter) orderHistory() string {
	var b strings.Builder
	b.WriteString(historyHeaderText)
	for _, o := range f.orders.ListAll() {
		fmt.Fprintf(&b, "Order #%s - %s (%s)\n", o.ID, o.Status, o.DeliveryDate)
	}
	b.WriteString(historyTrailerText)
	return b.String()
}

func (f *Formatter) faqMenu() string {
	var b strings.Builder
	b.WriteString(faqMenuHeaderText)
	for i, e := range f.faqs.ListAll() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, e.Question)
	}
	b.WriteString(faqMenuTrailerText)
	return b.String()
}

// intakeReplies lifts flow replies into support-agent messages. The first
// reply inherits the standard typing delay when the flow left it unpaced.
func intakeReplies(replies []intake.Reply) []Reply {
	out := make([]Reply, 0, len(replies))
	for i, r := range replies {
		delay := r.Delay
		if i == 0 && delay == 0 {
			delay = typingDelay
		}
		out = append(out, Reply{Text: r.Text, Role: domain.RoleSupportAgent, Delay: delay})
	}
	return out
}
