package checkout

import (
	"github.com/cocosmart/shopcore/internal/domain"
)

// Draft line steppers mirror the checkout view's quantity controls: plus and
// minus adjust by one with a floor of 1, removal only happens through the
// explicit delete action.

// Increment raises a draft line's quantity by one.
func Increment(draft *domain.CheckoutDraft, productID string) {
	for i := range draft.Lines {
		if draft.Lines[i].ProductID == productID {
			draft.Lines[i].Quantity++
			return
		}
	}
}

// Decrement lowers a draft line's quantity by one, stopping at 1.
func Decrement(draft *domain.CheckoutDraft, productID string) {
	for i := range draft.Lines {
		if draft.Lines[i].ProductID == productID {
			if draft.Lines[i].Quantity > 1 {
				draft.Lines[i].Quantity--
			}
			return
		}
	}
}

// Remove deletes a line from the draft entirely.
func Remove(draft *domain.CheckoutDraft, productID string) {
	for i := range draft.Lines {
		if draft.Lines[i].ProductID == productID {
			draft.Lines = append(draft.Lines[:i], draft.Lines[i+1:]...)
			return
		}
	}
}
