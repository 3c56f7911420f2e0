package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/orderdesk-agent/internal/adapters/storage/memory"
	"github.com/PabloGalante/orderdesk-agent/internal/domain"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	store := memory.NewSessionStore()

	sess := &domain.Session{ID: "s1", UserID: "u1"}
	require.NoError(t, store.CreateSession(sess))
	assert.ErrorIs(t, store.CreateSession(sess), domain.ErrSessionExists)

	got, err := store.GetSession("s1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	_, err = store.GetSession("missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	assert.ErrorIs(t, store.UpdateSession(&domain.Session{ID: "missing"}), domain.ErrSessionNotFound)
}

func TestSessionStoreGetReturnsCopy(t *testing.T) {
	store := memory.NewSessionStore()
	require.NoError(t, store.CreateSession(&domain.Session{ID: "s1", UserID: "u1"}))

	first, err := store.GetSession("s1")
	require.NoError(t, err)

	// Mutating the returned session must not leak into the store until
	// UpdateSession is called.
	first.Intake.Active = true
	first.Intake.Step = domain.IntakeAwaitingOrderID
	first.Intake.Name = "Mallory"

	second, err := store.GetSession("s1")
	require.NoError(t, err)
	assert.False(t, second.Intake.Active)
	assert.Empty(t, second.Intake.Name)

	require.NoError(t, store.UpdateSession(first))
	third, err := store.GetSession("s1")
	require.NoError(t, err)
	assert.True(t, third.Intake.Active)
	assert.Equal(t, "Mallory", third.Intake.Name)
}

func TestMessageStoreKeepsOrderAndLimit(t *testing.T) {
	store := memory.NewMessageStore()

	for i, text := range []string{"one", "two", "three"} {
		require.NoError(t, store.AppendMessage(&domain.Message{
			ID:        domain.MessageID(text),
			SessionID: "s1",
			Text:      text,
			CreatedAt: time.Unix(int64(i), 0),
		}))
	}

	msgs, err := store.GetMessagesBySession("s1", 0)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "one", msgs[0].Text)
	assert.Equal(t, "three", msgs[2].Text)

	msgs, err = store.GetMessagesBySession("s1", 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "two", msgs[0].Text)
}

func TestTicketStoreListRecent(t *testing.T) {
	store := memory.NewTicketStore()

	for _, id := range []string{"t1", "t2", "t3"} {
		require.NoError(t, store.AppendTicket(&domain.SupportTicket{ID: domain.TicketID(id)}))
	}

	all, err := store.ListRecentTickets(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	last, err := store.ListRecentTickets(2)
	require.NoError(t, err)
	require.Len(t, last, 2)
	assert.Equal(t, domain.TicketID("t2"), last[0].ID)
	assert.Equal(t, domain.TicketID("t3"), last[1].ID)
}
