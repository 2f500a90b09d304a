package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer holds the shipping details entered at checkout.
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// FullName joins first and last name for the order API, which takes a
// single name field.
func (c Customer) FullName() string {
	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if name == "" {
		name = c.FirstName
	}
	return name
}

// Totals is the monetary summary of a set of cart lines.
// Subtotal sums labelled prices, Total sums selling prices, Discount is
// the difference accumulated per line.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// CheckoutDraft is the in-progress, not-yet-submitted set of lines plus
// shipping details. It is built from a cart snapshot (or a single buy-now
// line) and discarded on successful submission.
type CheckoutDraft struct {
	ID       uuid.UUID
	Lines    []CartLine
	Customer Customer
	State    CheckoutState

	// FromCart marks drafts built from the persisted cart, so the cart can
	// be cleared after a successful submission. Buy-now drafts leave the
	// cart untouched.
	FromCart bool
}

// NewDraft snapshots cart lines into a fresh draft.
func NewDraft(lines []CartLine) *CheckoutDraft {
	snapshot := make([]CartLine, len(lines))
	copy(snapshot, lines)
	return &CheckoutDraft{
		ID:       uuid.New(),
		Lines:    snapshot,
		State:    CheckoutStateDraft,
		FromCart: true,
	}
}

// BuyNowDraft builds a draft with a single synthetic line, bypassing the
// cart entirely.
func BuyNowDraft(p Product, quantity int) *CheckoutDraft {
	if quantity < 1 {
		quantity = 1
	}
	return &CheckoutDraft{
		ID:       uuid.New(),
		Lines:    []CartLine{LineFromProduct(p, quantity)},
		State:    CheckoutStateDraft,
		FromCart: false,
	}
}
