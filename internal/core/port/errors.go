package port

import (
	"errors"

	"club-ads/internal/core/domain"
)

var (
	// ErrNotFound is returned when a zone, campaign or creative is missing.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a concurrent update changed the record
	// between read and write. Callers may retry.
	ErrConflict = errors.New("concurrent update conflict")
	// ErrCampaignNotActive is returned by the metering path for campaigns
	// that are not Active. Terminal campaigns never pass this guard.
	ErrCampaignNotActive = errors.New("campaign is not active")
	// ErrNoEligibleAd means there is nothing to show. It is a normal outcome.
	ErrNoEligibleAd = errors.New("no eligible ad")
	// ErrPaymentFailure wraps failures reported by the payment gateway.
	ErrPaymentFailure = errors.New("payment failure")
	// ErrValidation is returned for invalid input.
	ErrValidation = errors.New("validation failed")
	// ErrForbidden is returned when the caller does not own the resource.
	ErrForbidden = errors.New("forbidden")

	ErrInvalidTransition = domain.ErrInvalidTransition
)
