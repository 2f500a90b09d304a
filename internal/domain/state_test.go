package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cocosmart/shopcore/internal/domain"
)

func TestCheckoutStateIsValid(t *testing.T) {
	valid := []domain.CheckoutState{
		domain.CheckoutStateDraft,
		domain.CheckoutStateValidating,
		domain.CheckoutStateSubmitting,
		domain.CheckoutStateOrderCreated,
		domain.CheckoutStateRecordingFinance,
		domain.CheckoutStateComplete,
		domain.CheckoutStateFailed,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "state %s", s)
	}

	assert.False(t, domain.CheckoutState("PENDING").IsValid())
	assert.False(t, domain.CheckoutState("").IsValid())
}

func TestCheckoutStateTransitions(t *testing.T) {
	tests := []struct {
		from    domain.CheckoutState
		to      domain.CheckoutState
		allowed bool
	}{
		{domain.CheckoutStateDraft, domain.CheckoutStateValidating, true},
		{domain.CheckoutStateDraft, domain.CheckoutStateSubmitting, false},
		{domain.CheckoutStateValidating, domain.CheckoutStateSubmitting, true},
		{domain.CheckoutStateValidating, domain.CheckoutStateDraft, true},
		{domain.CheckoutStateValidating, domain.CheckoutStateComplete, false},
		{domain.CheckoutStateSubmitting, domain.CheckoutStateOrderCreated, true},
		{domain.CheckoutStateSubmitting, domain.CheckoutStateFailed, true},
		{domain.CheckoutStateSubmitting, domain.CheckoutStateComplete, false},
		{domain.CheckoutStateOrderCreated, domain.CheckoutStateRecordingFinance, true},
		{domain.CheckoutStateOrderCreated, domain.CheckoutStateFailed, false},
		{domain.CheckoutStateRecordingFinance, domain.CheckoutStateComplete, true},
		{domain.CheckoutStateRecordingFinance, domain.CheckoutStateFailed, true},
		{domain.CheckoutStateFailed, domain.CheckoutStateSubmitting, true},
		{domain.CheckoutStateFailed, domain.CheckoutStateValidating, false},
		{domain.CheckoutStateComplete, domain.CheckoutStateDraft, false},
		{domain.CheckoutStateComplete, domain.CheckoutStateSubmitting, false},
	}

	for _, tt := range tests {
		got := tt.from.CanTransitionTo(tt.to)
		assert.Equal(t, tt.allowed, got, "%s -> %s", tt.from, tt.to)
	}
}
