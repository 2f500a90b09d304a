package checkout

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cocosmart/shopcore/internal/domain"
	"github.com/cocosmart/shopcore/pkg/errors"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// ComputeTotals derives the monetary summary for a set of lines. Pure
// function: subtotal over labelled prices, total over selling prices,
// discount is the per-line difference.
func ComputeTotals(lines []domain.CartLine) domain.Totals {
	totals := domain.Totals{
		Subtotal: decimal.Zero,
		Discount: decimal.Zero,
		Total:    decimal.Zero,
	}
	for _, line := range lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		totals.Subtotal = totals.Subtotal.Add(line.LabelledPrice.Mul(qty))
		totals.Discount = totals.Discount.Add(line.LabelledPrice.Sub(line.UnitPrice).Mul(qty))
		totals.Total = totals.Total.Add(line.UnitPrice.Mul(qty))
	}
	return totals
}

// ValidateShipping checks the customer-entered shipping details. Fail-fast:
// the first failing rule is returned, in field order.
func ValidateShipping(c domain.Customer) error {
	if strings.TrimSpace(c.FirstName) == "" {
		return &errors.ErrValidation{Field: errors.FieldFirstName, Message: "first name is required"}
	}
	if strings.TrimSpace(c.LastName) == "" {
		return &errors.ErrValidation{Field: errors.FieldLastName, Message: "last name is required"}
	}
	if !phonePattern.MatchString(c.Phone) {
		return &errors.ErrValidation{Field: errors.FieldPhone, Message: "phone must be exactly 10 digits"}
	}
	if len(strings.TrimSpace(c.Address)) < 5 {
		return &errors.ErrValidation{Field: errors.FieldAddress, Message: "address must be at least 5 characters"}
	}
	return nil
}
