package domain

// CheckoutState tracks a single checkout attempt through the two-step
// submission pipeline.
type CheckoutState string

const (
	// DRAFT - lines and shipping details still being edited
	CheckoutStateDraft CheckoutState = "DRAFT"
	// VALIDATING - shipping details being checked before any network call
	CheckoutStateValidating CheckoutState = "VALIDATING"
	// SUBMITTING - order creation call in flight
	CheckoutStateSubmitting CheckoutState = "SUBMITTING"
	// ORDER_CREATED - remote order exists, income record not yet attempted
	CheckoutStateOrderCreated CheckoutState = "ORDER_CREATED"
	// RECORDING_FINANCE - income record call in flight
	CheckoutStateRecordingFinance CheckoutState = "RECORDING_FINANCE"
	// COMPLETE - order placed (income record best-effort)
	CheckoutStateComplete CheckoutState = "COMPLETE"
	// FAILED - submission failed; draft preserved so the user may retry
	CheckoutStateFailed CheckoutState = "FAILED"
)

// IsValid checks if the checkout state is valid
func (s CheckoutState) IsValid() bool {
	switch s {
	case CheckoutStateDraft,
		CheckoutStateValidating,
		CheckoutStateSubmitting,
		CheckoutStateOrderCreated,
		CheckoutStateRecordingFinance,
		CheckoutStateComplete,
		CheckoutStateFailed:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a state transition is valid
func (s CheckoutState) CanTransitionTo(next CheckoutState) bool {
	switch s {
	case CheckoutStateDraft:
		return next == CheckoutStateValidating
	case CheckoutStateValidating:
		// back to DRAFT when validation fails and the user fixes input
		return next == CheckoutStateSubmitting ||
			next == CheckoutStateDraft
	case CheckoutStateSubmitting:
		return next == CheckoutStateOrderCreated ||
			next == CheckoutStateFailed
	case CheckoutStateOrderCreated:
		return next == CheckoutStateRecordingFinance
	case CheckoutStateRecordingFinance:
		return next == CheckoutStateComplete ||
			next == CheckoutStateFailed
	case CheckoutStateFailed:
		// retry re-submits accepted input without re-validating
		return next == CheckoutStateSubmitting
	case CheckoutStateComplete:
		return false // terminal
	default:
		return false
	}
}
