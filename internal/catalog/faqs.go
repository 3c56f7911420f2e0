package catalog

import (
	"strings"

	"github.com/PabloGalante/orderdesk-agent/internal/domain"
)

// FaqCatalog is the in-memory implementation of domain.FaqCatalog.
type FaqCatalog struct {
	entries []*domain.FaqEntry
}

func NewFaqCatalog(entries []*domain.FaqEntry) *FaqCatalog {
	return &FaqCatalog{entries: entries}
}

// MatchByText reports the first entry whose full question is contained in
// the user text, case-insensitively. Catalog order decides ties.
func (c *FaqCatalog) MatchByText(userText string) (*domain.FaqEntry, bool) {
	lower := strings.ToLower(userText)
	for _, e := range c.entries {
		if strings.Contains(lower, strings.ToLower(e.Question)) {
			return e, true
		}
	}
	return nil, false
}

// ListAll returns every entry in seed order.
func (c *FaqCatalog) ListAll() []*domain.FaqEntry {
	return c.entries
}

// SeedFaqs returns the built-in support FAQs.
func SeedFaqs() []*domain.FaqEntry {
	return []*domain.FaqEntry{
		{Question: "How can I change my shipping address?", Answer: "To change your shipping address, please provide your order ID and the new address. If your order hasn't been shipped yet, we can update it for you."},
		{Question: "How do I cancel my order?", Answer: "To cancel your order, please provide your order ID. If your order hasn't been shipped yet, we can cancel it and process a refund."},
		{Question: "What should I do if my order hasn't arrived?", Answer: "If your order hasn't arrived by the expected delivery date, please check the tracking information. If there are issues, contact our support team with your order ID."},
		{Question: "How do I request a refund?", Answer: "To request a refund, please provide your order ID and reason for the refund. Our team will review your request and get back to you within 24-48 hours."},
		{Question: "What are your return policies?", Answer: "We accept returns within 30 days of delivery. Items must be unused and in original packaging. Please contact support with your order ID to initiate a return."},
	}
}
