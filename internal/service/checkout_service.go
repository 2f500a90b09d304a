package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/cocosmart/shopcore/internal/backend"
	"github.com/cocosmart/shopcore/internal/cart"
	"github.com/cocosmart/shopcore/internal/checkout"
	"github.com/cocosmart/shopcore/internal/domain"
	"github.com/cocosmart/shopcore/pkg/errors"
)

// OrderAPI is the slice of the backend client the checkout pipeline needs.
type OrderAPI interface {
	SubmitOrder(ctx context.Context, customer domain.Customer, items []backend.OrderItem) (string, error)
	RecordIncome(ctx context.Context, items []backend.OrderItem, orderID string) error
}

// CheckoutService runs a checkout attempt end to end: validate shipping
// details, create the order, then record the income entry. The two network
// calls are sequential, not atomic; the income record is best effort.
type CheckoutService struct {
	carts  *cart.Store
	api    OrderAPI
	logger *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(carts *cart.Store, api OrderAPI, logger *zap.Logger) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{
		carts:  carts,
		api:    api,
		logger: logger,
	}
}

// SubmitResult reports the outcome of a submitted checkout attempt.
// FinanceWarning is set when the order was placed but the income record
// could not be created.
type SubmitResult struct {
	OrderID         string `json:"orderID"`
	FinanceRecorded bool   `json:"financeRecorded"`
	FinanceWarning  string `json:"financeWarning,omitempty"`
}

// Submit drives a draft through the submission pipeline. A validation
// failure puts the draft back in DRAFT for the user to fix; an order
// submission failure moves it to FAILED with the draft preserved, and a
// retry from FAILED skips re-validation of already-accepted input.
func (s *CheckoutService) Submit(ctx context.Context, draft *domain.CheckoutDraft) (*SubmitResult, error) {
	if len(draft.Lines) == 0 {
		return nil, &errors.ErrEmptyCart{}
	}

	switch draft.State {
	case domain.CheckoutStateDraft:
		draft.State = domain.CheckoutStateValidating
		if err := checkout.ValidateShipping(draft.Customer); err != nil {
			draft.State = domain.CheckoutStateDraft
			return nil, err
		}
		draft.State = domain.CheckoutStateSubmitting
	case domain.CheckoutStateFailed:
		// retry: input was already accepted, go straight to submission
		draft.State = domain.CheckoutStateSubmitting
	default:
		return nil, &errors.ErrInvalidStateTransition{
			From: draft.State,
			To:   domain.CheckoutStateSubmitting,
		}
	}

	items := backend.ItemsFromLines(draft.Lines)

	s.logger.Info("Submitting order",
		zap.String("draft_id", draft.ID.String()),
		zap.Int("item_count", len(items)),
	)
	orderID, err := s.api.SubmitOrder(ctx, draft.Customer, items)
	if err != nil {
		draft.State = domain.CheckoutStateFailed
		return nil, err
	}
	draft.State = domain.CheckoutStateOrderCreated

	result := &SubmitResult{OrderID: orderID}

	draft.State = domain.CheckoutStateRecordingFinance
	if err := s.api.RecordIncome(ctx, items, orderID); err != nil {
		// The order stands; there is no compensating transaction.
		s.logger.Warn("Income record failed after order creation",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		result.FinanceWarning = err.Error()
		draft.State = domain.CheckoutStateFailed
	} else {
		result.FinanceRecorded = true
		draft.State = domain.CheckoutStateComplete
	}

	if draft.FromCart {
		if err := s.carts.Clear(ctx); err != nil {
			s.logger.Warn("Failed to clear cart after checkout", zap.Error(err))
		}
	}

	return result, nil
}
