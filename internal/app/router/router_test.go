package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/orderdesk-agent/internal/app/router"
	"github.com/PabloGalante/orderdesk-agent/internal/catalog"
	"github.com/PabloGalante/orderdesk-agent/internal/domain"
)

func newRouter() *router.Router {
	return router.NewRouter(
		catalog.NewOrderCatalog(catalog.SeedOrders()),
		catalog.NewFaqCatalog(catalog.SeedFaqs()),
	)
}

func TestOrderIDExtraction(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name string
		text string
		id   string
	}{
		{"bare id", "12345", "12345"},
		{"embedded id", "please check order 12345 for me", "12345"},
		{"unknown id still routes to lookup", "99999", "99999"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var st domain.IntakeState
			a := r.Route(tc.text, &st)

			status, ok := a.(router.ShowOrderStatus)
			require.True(t, ok, "expected ShowOrderStatus, got %T", a)
			assert.Equal(t, tc.id, status.OrderID)
		})
	}
}

func TestOrderIDRequiresStandaloneFiveDigits(t *testing.T) {
	r := newRouter()
	var st domain.IntakeState

	a := r.Route("my number is 123456", &st)
	_, isStatus := a.(router.ShowOrderStatus)
	assert.False(t, isStatus, "six-digit run must not be treated as an order ID")

	a = r.Route("1234", &st)
	_, isStatus = a.(router.ShowOrderStatus)
	assert.False(t, isStatus)
}

func TestUnknownOrderIDYieldsNilOrder(t *testing.T) {
	r := newRouter()
	var st domain.IntakeState

	a := r.Route("99999", &st)
	status := a.(router.ShowOrderStatus)
	assert.Nil(t, status.Order)
	assert.Equal(t, "99999", status.OrderID)
}

func TestQuickActions(t *testing.T) {
	r := newRouter()

	var st domain.IntakeState
	assert.IsType(t, router.ShowOrderHistory{}, r.Route("history", &st))
	assert.IsType(t, router.ShowSupportMenu{}, r.Route("Support", &st))

	a := r.Route("track order", &st)
	generic := a.(router.ShowGenericResponse)
	assert.Contains(t, generic.Text, "5-digit Order ID")
}

func TestKeywordFallbackOrder(t *testing.T) {
	r := newRouter()
	var st domain.IntakeState

	// "order id" is checked before "track".
	a := r.Route("what is my order id for tracking", &st)
	assert.Contains(t, a.(router.ShowGenericResponse).Text, "confirmation email")

	a = r.Route("I want a refund", &st)
	assert.Contains(t, a.(router.ShowGenericResponse).Text, "cancellation or refund")

	a = r.Route("hello there", &st)
	assert.Contains(t, a.(router.ShowGenericResponse).Text, "order assistant")
}

func TestDefaultFallback(t *testing.T) {
	r := newRouter()
	var st domain.IntakeState

	a := r.Route("what is the meaning of life", &st)
	assert.Contains(t, a.(router.ShowGenericResponse).Text, "quick action buttons")
}

func TestSupportModeFallthrough(t *testing.T) {
	r := newRouter()
	var st domain.IntakeState

	// "help" pulls the turn into the support domain, nothing there matches,
	// and the keyword rules still apply.
	a := r.Route("help, where is my order", &st)
	generic, ok := a.(router.ShowGenericResponse)
	require.True(t, ok, "expected fallthrough to keyword rules, got %T", a)
	assert.Contains(t, generic.Text, "5-digit Order ID")
}

func TestSupportDomainRules(t *testing.T) {
	r := newRouter()

	t.Run("escalate", func(t *testing.T) {
		var st domain.IntakeState
		st.Active = true
		st.Step = domain.IntakeAwaitingName

		a := r.Route("escalate", &st)
		require.IsType(t, router.Escalate{}, a)
		assert.False(t, st.Active)
	})

	t.Run("faq beats active intake", func(t *testing.T) {
		var st domain.IntakeState
		st.Active = true
		st.Step = domain.IntakeAwaitingName

		a := r.Route("How do I cancel my order?", &st)
		require.IsType(t, router.ShowFaqAnswer{}, a)
		// The form did not consume the text.
		assert.Equal(t, domain.IntakeAwaitingName, st.Step)
	})

	t.Run("contact cards", func(t *testing.T) {
		var st domain.IntakeState
		assert.IsType(t, router.ShowContactEmail{}, r.Route("email support", &st))
		assert.IsType(t, router.ShowContactPhone{}, r.Route("call support", &st))
	})

	t.Run("form start", func(t *testing.T) {
		var st domain.IntakeState
		// "support form" contains "support", so it enters the support domain.
		a := r.Route("support form", &st)
		require.IsType(t, router.IntakeReply{}, a)
		assert.True(t, st.Active)
		assert.Equal(t, domain.IntakeAwaitingName, st.Step)
	})

	t.Run("bare option words outside support mode fall to general rules", func(t *testing.T) {
		// "faq", "back", "email" etc. neither contain support/help nor run
		// while a form is active, so they never reach the option rules.
		var st domain.IntakeState
		assert.IsType(t, router.ShowGenericResponse{}, r.Route("faq", &st))
		assert.IsType(t, router.ShowGenericResponse{}, r.Route("back", &st))
		assert.IsType(t, router.ShowGenericResponse{}, r.Route("email", &st))
	})
}

func TestOrderIDDuringIntakeIsCaptured(t *testing.T) {
	r := newRouter()
	var st domain.IntakeState

	r.Route("support form", &st)
	r.Route("Alice", &st)
	require.Equal(t, domain.IntakeAwaitingOrderID, st.Step)

	// Digits typed as a form answer belong to the form, not order tracking.
	a := r.Route("12345", &st)
	require.IsType(t, router.IntakeReply{}, a)
	assert.Equal(t, "12345", st.OrderID)
	assert.Equal(t, domain.IntakeAwaitingIssue, st.Step)
}

func TestFullIntakeThroughRouter(t *testing.T) {
	r := newRouter()
	var st domain.IntakeState

	r.Route("support form", &st)
	r.Route("Alice", &st)
	r.Route("12345", &st)
	a := r.Route("broken item", &st)

	reply := a.(router.IntakeReply)
	require.NotNil(t, reply.Result.Submitted)
	assert.Equal(t, "Alice", reply.Result.Submitted.Name)
	assert.Equal(t, domain.IntakeState{Step: domain.IntakeIdle}, st)
}
