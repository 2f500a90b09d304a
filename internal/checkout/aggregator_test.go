package checkout_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cocosmart/shopcore/internal/checkout"
	"github.com/cocosmart/shopcore/internal/domain"
	"github.com/cocosmart/shopcore/pkg/errors"
)

func line(unit, labelled int64, qty int) domain.CartLine {
	return domain.CartLine{
		ProductID:     "P",
		UnitPrice:     decimal.NewFromInt(unit),
		LabelledPrice: decimal.NewFromInt(labelled),
		Quantity:      qty,
	}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		lines        []domain.CartLine
		wantSubtotal int64
		wantDiscount int64
		wantTotal    int64
	}{
		{
			name:  "empty cart",
			lines: nil,
		},
		{
			name: "two lines with and without discount",
			lines: []domain.CartLine{
				line(100, 150, 2),
				line(50, 50, 1),
			},
			wantSubtotal: 350,
			wantDiscount: 100,
			wantTotal:    250,
		},
		{
			name: "single discounted line",
			lines: []domain.CartLine{
				line(100, 150, 2),
			},
			wantSubtotal: 300,
			wantDiscount: 100,
			wantTotal:    200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := checkout.ComputeTotals(tt.lines)
			assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(tt.wantSubtotal)), "subtotal %s", totals.Subtotal)
			assert.True(t, totals.Discount.Equal(decimal.NewFromInt(tt.wantDiscount)), "discount %s", totals.Discount)
			assert.True(t, totals.Total.Equal(decimal.NewFromInt(tt.wantTotal)), "total %s", totals.Total)
		})
	}
}

func TestComputeTotals_Idempotent(t *testing.T) {
	lines := []domain.CartLine{
		line(100, 150, 2),
		line(50, 50, 1),
	}

	first := checkout.ComputeTotals(lines)
	second := checkout.ComputeTotals(lines)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.Discount.Equal(second.Discount))
	assert.True(t, first.Total.Equal(second.Total))
}

func TestValidateShipping(t *testing.T) {
	valid := domain.Customer{
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "0771234567",
		Address:   "123 Main St",
	}

	tests := []struct {
		name      string
		mutate    func(*domain.Customer)
		wantField string
	}{
		{
			name:   "valid details pass",
			mutate: func(c *domain.Customer) {},
		},
		{
			name:      "missing first name fails first",
			mutate:    func(c *domain.Customer) { c.FirstName = "" },
			wantField: errors.FieldFirstName,
		},
		{
			name:      "missing last name",
			mutate:    func(c *domain.Customer) { c.LastName = " " },
			wantField: errors.FieldLastName,
		},
		{
			name:      "phone too short",
			mutate:    func(c *domain.Customer) { c.Phone = "077123" },
			wantField: errors.FieldPhone,
		},
		{
			name:      "phone with letters",
			mutate:    func(c *domain.Customer) { c.Phone = "07712345ab" },
			wantField: errors.FieldPhone,
		},
		{
			name:      "phone too long",
			mutate:    func(c *domain.Customer) { c.Phone = "07712345678" },
			wantField: errors.FieldPhone,
		},
		{
			name:      "address too short",
			mutate:    func(c *domain.Customer) { c.Address = "abc" },
			wantField: errors.FieldAddress,
		},
		{
			name: "first failing rule wins over later ones",
			mutate: func(c *domain.Customer) {
				c.FirstName = ""
				c.Phone = "bad"
				c.Address = ""
			},
			wantField: errors.FieldFirstName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)

			err := checkout.ValidateShipping(c)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var vErr *errors.ErrValidation
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestDraftSteppers(t *testing.T) {
	newDraft := func() *domain.CheckoutDraft {
		return domain.NewDraft([]domain.CartLine{
			{ProductID: "P1", Quantity: 1},
			{ProductID: "P2", Quantity: 3},
		})
	}

	t.Run("increment raises quantity", func(t *testing.T) {
		d := newDraft()
		checkout.Increment(d, "P1")
		assert.Equal(t, 2, d.Lines[0].Quantity)
	})

	t.Run("decrement floors at one", func(t *testing.T) {
		d := newDraft()
		checkout.Decrement(d, "P1")
		assert.Equal(t, 1, d.Lines[0].Quantity)

		checkout.Decrement(d, "P2")
		checkout.Decrement(d, "P2")
		checkout.Decrement(d, "P2")
		assert.Equal(t, 1, d.Lines[1].Quantity)
	})

	t.Run("remove deletes the line", func(t *testing.T) {
		d := newDraft()
		checkout.Remove(d, "P1")
		require.Len(t, d.Lines, 1)
		assert.Equal(t, "P2", d.Lines[0].ProductID)
	})

	t.Run("unknown product is a no-op", func(t *testing.T) {
		d := newDraft()
		checkout.Increment(d, "P9")
		checkout.Decrement(d, "P9")
		checkout.Remove(d, "P9")
		assert.Len(t, d.Lines, 2)
	})
}

func TestBuyNowDraft(t *testing.T) {
	p := domain.Product{
		ID:            "P1",
		Name:          "King Coconut",
		Price:         decimal.NewFromInt(100),
		LabelledPrice: decimal.NewFromInt(150),
		Images:        []string{"a.jpg", "b.jpg"},
	}

	d := domain.BuyNowDraft(p, 2)
	require.Len(t, d.Lines, 1)
	assert.Equal(t, 2, d.Lines[0].Quantity)
	assert.Equal(t, "a.jpg", d.Lines[0].ImageRef)
	assert.False(t, d.FromCart)

	// quantity is clamped up to one
	d = domain.BuyNowDraft(p, 0)
	require.Len(t, d.Lines, 1)
	assert.Equal(t, 1, d.Lines[0].Quantity)
}
