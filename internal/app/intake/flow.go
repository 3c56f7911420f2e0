// Package intake implements the multi-step support form: a small state
// machine collecting name, order ID and issue description in that order.
package intake

import (
	"fmt"
	"time"

	"github.com/PabloGalante/orderdesk-agent/internal/domain"
)

const (
	promptName    = "Please provide your name to start the support form."
	promptOrderID = "Thank you! Please provide your Order ID (if applicable)."
	promptIssue   = "Please describe your issue in detail."

	submitThanks = "Thank you for submitting your support request!"
	submitSummary = "We have received your request with the following details:\n\n" +
		"Name: %s\nOrder ID: %s\nIssue: %s\n\n" +
		"Our support team will review your request and get back to you within 24-48 hours."
	submitFollowUp = "Is there anything else I can help you with?"

	escalateHandOff  = "I'm connecting you to a senior representative. Please wait a moment..."
	escalateGreeting = "Hello, I'm Sarah, a senior customer service representative. How can I assist you today?"
)

// Reply is one outbound support-agent message. Delay is advisory pacing
// relative to the previous reply; correctness never depends on it.
type Reply struct {
	Text  string
	Delay time.Duration
}

// Submission carries the captured fields of a completed form.
type Submission struct {
	Name    string
	OrderID string
	Issue   string
}

// Result is what a flow operation emits for the current turn.
type Result struct {
	Replies []Reply

	// Submitted is non-nil only when the issue step just completed the form.
	Submitted *Submission
}

// Start activates the form and asks for the name. Any previously captured
// fields are discarded.
func Start(st *domain.IntakeState) Result {
	st.Reset()
	st.Active = true
	st.Step = domain.IntakeAwaitingName

	return Result{Replies: []Reply{{Text: promptName}}}
}

// Submit feeds one user answer into the active form and advances the step.
// Field contents are not validated: any text is accepted as given.
func Submit(st *domain.IntakeState, text string) Result {
	if !st.Active {
		return Result{}
	}

	switch st.Step {
	case domain.IntakeAwaitingName:
		st.Name = text
		st.Step = domain.IntakeAwaitingOrderID
		return Result{Replies: []Reply{{Text: promptOrderID}}}

	case domain.IntakeAwaitingOrderID:
		st.OrderID = text
		st.Step = domain.IntakeAwaitingIssue
		return Result{Replies: []Reply{{Text: promptIssue}}}

	case domain.IntakeAwaitingIssue:
		st.Issue = text
		submitted := &Submission{Name: st.Name, OrderID: st.OrderID, Issue: st.Issue}
		summary := fmt.Sprintf(submitSummary, submitted.Name, submitted.OrderID, submitted.Issue)
		st.Reset()

		return Result{
			Replies: []Reply{
				{Text: submitThanks},
				{Text: summary, Delay: time.Second},
				{Text: submitFollowUp, Delay: time.Second},
			},
			Submitted: submitted,
		}
	}

	return Result{}
}

// Escalate abandons any in-progress capture and hands the conversation to a
// senior representative. Valid from every step, including idle.
func Escalate(st *domain.IntakeState) Result {
	st.Reset()

	return Result{Replies: []Reply{
		{Text: escalateHandOff},
		{Text: escalateGreeting, Delay: 2 * time.Second},
	}}
}
