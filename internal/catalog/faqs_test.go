package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/orderdesk-agent/internal/catalog"
	"github.com/PabloGalante/orderdesk-agent/internal/domain"
)

func TestMatchByTextIsCaseInsensitive(t *testing.T) {
	c := catalog.NewFaqCatalog(catalog.SeedFaqs())

	entry, ok := c.MatchByText("HOW DO I CANCEL MY ORDER? it never arrived")
	require.True(t, ok)
	assert.Contains(t, entry.Answer, "cancel it and process a refund")
}

func TestMatchByTextRequiresFullQuestion(t *testing.T) {
	c := catalog.NewFaqCatalog(catalog.SeedFaqs())

	_, ok := c.MatchByText("cancel my order")
	assert.False(t, ok, "partial question text must not match")
}

func TestMatchByTextFirstEntryWins(t *testing.T) {
	entries := []*domain.FaqEntry{
		{Question: "where is my parcel", Answer: "first"},
		{Question: "where is my parcel right now", Answer: "second"},
	}
	c := catalog.NewFaqCatalog(entries)

	// Both questions are contained in the text; catalog order decides.
	entry, ok := c.MatchByText("where is my parcel right now please")
	require.True(t, ok)
	assert.Equal(t, "first", entry.Answer)
}

func TestSeedFaqsOrderAndSize(t *testing.T) {
	faqs := catalog.SeedFaqs()
	require.Len(t, faqs, 5)
	assert.Contains(t, faqs[0].Question, "shipping address")
	assert.Contains(t, faqs[4].Question, "return policies")
}
