package domain

// IntakeStep is the position inside the support-intake form.
type IntakeStep string

const (
	IntakeIdle            IntakeStep = "idle"
	IntakeAwaitingName    IntakeStep = "awaiting_name"
	IntakeAwaitingOrderID IntakeStep = "awaiting_order_id"
	IntakeAwaitingIssue   IntakeStep = "awaiting_issue"
)

// IntakeState is the only mutable conversation state. It is owned by a
// single Session; the step only ever advances name -> order id -> issue,
// and escalation or submission resets it to the zero value.
type IntakeState struct {
	Active  bool
	Step    IntakeStep
	Name    string
	OrderID string
	Issue   string
}

// Reset returns the state to idle and discards any captured fields.
func (s *IntakeState) Reset() {
	*s = IntakeState{Step: IntakeIdle}
}
