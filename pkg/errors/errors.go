package errors

import (
	"fmt"

	"github.com/cocosmart/shopcore/internal/domain"
)

// Validation field identifiers, in the order checkout validates them.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldPhone     = "phone"
	FieldAddress   = "address"
)

// ErrValidation is returned when a checkout draft fails shipping validation.
// Validation is fail-fast: only the first failing field is reported.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s: invalid", e.Field)
}

// ErrEmptyCart is returned when checkout is attempted with no lines.
// It is raised before any network call is made.
type ErrEmptyCart struct{}

func (e *ErrEmptyCart) Error() string {
	return "cart is empty"
}

// ErrOrderSubmission is returned when the remote order API rejects or fails
// the order creation call. Message carries the server-provided reason when
// the response body was parseable, otherwise a generic description.
type ErrOrderSubmission struct {
	Message string
	Status  int
}

func (e *ErrOrderSubmission) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("order submission failed: %s", e.Message)
	}
	return "order submission failed"
}

// ErrFinanceRecord is returned when the income record for an already-placed
// order could not be created. The order itself stands; callers surface this
// as a warning, never as a checkout failure.
type ErrFinanceRecord struct {
	OrderID string
	Cause   error
}

func (e *ErrFinanceRecord) Error() string {
	return fmt.Sprintf("finance record for order %s failed: %v", e.OrderID, e.Cause)
}

func (e *ErrFinanceRecord) Unwrap() error {
	return e.Cause
}

// ErrStorageUnavailable is returned when the cart key-value store cannot be
// reached. Callers degrade to an in-memory cart for the session.
type ErrStorageUnavailable struct {
	Cause error
}

func (e *ErrStorageUnavailable) Error() string {
	return fmt.Sprintf("cart storage unavailable: %v", e.Cause)
}

func (e *ErrStorageUnavailable) Unwrap() error {
	return e.Cause
}

// ErrInvalidStateTransition is returned when a checkout attempt is moved to
// a state its current state does not allow.
type ErrInvalidStateTransition struct {
	From domain.CheckoutState
	To   domain.CheckoutState
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}
