package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a status change is not allowed by
// the campaign state machine.
var ErrInvalidTransition = errors.New("invalid campaign transition")

// CampaignStatus is a state of the campaign lifecycle.
type CampaignStatus string

const (
	StatusDraft          CampaignStatus = "draft"
	StatusPendingPayment CampaignStatus = "pending_payment"
	StatusActive         CampaignStatus = "active"
	StatusPaused         CampaignStatus = "paused"
	StatusCompleted      CampaignStatus = "completed"
	StatusExpired        CampaignStatus = "expired"
	StatusRejected       CampaignStatus = "rejected"
)

// transitions lists the allowed moves out of every state. Terminal states
// have no entry.
var transitions = map[CampaignStatus][]CampaignStatus{
	StatusDraft:          {StatusPendingPayment, StatusRejected},
	StatusPendingPayment: {StatusActive, StatusRejected, StatusExpired},
	StatusActive:         {StatusPaused, StatusCompleted, StatusExpired},
	StatusPaused:         {StatusActive, StatusExpired},
}

// Valid reports whether s is a known status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPendingPayment, StatusActive, StatusPaused,
		StatusCompleted, StatusExpired, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition, spend or delivery is
// possible.
func (s CampaignStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusExpired || s == StatusRejected
}

// CanTransitionTo reports whether the state machine allows s -> to.
func (s CampaignStatus) CanTransitionTo(to CampaignStatus) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionError describes a refused status change.
type TransitionError struct {
	From   CampaignStatus
	To     CampaignStatus
	Reason string
}

func (e *TransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("campaign cannot move from %s to %s: %s", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("campaign cannot move from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// CheckTransition returns a *TransitionError when from -> to is not allowed.
func CheckTransition(from, to CampaignStatus) error {
	if !from.CanTransitionTo(to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}
