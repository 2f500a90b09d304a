package domain

import (
	"github.com/shopspring/decimal"
)

// Product is what the product lookup collaborator supplies when a line is
// added to the cart. Price and LabelledPrice are trusted at add time; the
// server re-prices authoritatively at order submission.
type Product struct {
	ID            string          `json:"productID"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	LabelledPrice decimal.Decimal `json:"labelledPrice"`
	Images        []string        `json:"images"`
}

// CartLine is one product entry in the cart with a merged quantity.
// A cart holds at most one line per ProductID, and Quantity is always >= 1
// while the line exists.
type CartLine struct {
	ProductID     string          `json:"productID"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"price"`
	LabelledPrice decimal.Decimal `json:"labelledPrice"`
	Quantity      int             `json:"quantity"`
	ImageRef      string          `json:"image"`
}

// LineTotal is the selling price times quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// LineFromProduct builds a fresh cart line for a product not yet in the cart.
func LineFromProduct(p Product, quantity int) CartLine {
	var image string
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return CartLine{
		ProductID:     p.ID,
		Name:          p.Name,
		UnitPrice:     p.Price,
		LabelledPrice: p.LabelledPrice,
		Quantity:      quantity,
		ImageRef:      image,
	}
}
