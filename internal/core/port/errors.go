package port

import "errors"

var (
	// ErrNotFound is returned when a referenced campaign, house ad or API
	// key does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is returned when a requested status change is
	// outside the allowed campaign state machine.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAdTypeImmutable is returned when an update tries to change the
	// ad_type of an existing campaign.
	ErrAdTypeImmutable = errors.New("ad_type cannot be changed after creation")

	// ErrInvalidAPIKey is returned when a supplied API key is unknown or
	// inactive.
	ErrInvalidAPIKey = errors.New("invalid API key")

	// ErrPaymentRequired is returned when the external payment bridge does
	// not confirm the campaign fee. The campaign row must not be created in
	// that case.
	ErrPaymentRequired = errors.New("payment not confirmed")

	// ErrEventNotAllowed is returned when an event type is not valid for
	// the targeted ad kind, e.g. reward_complete on a house ad.
	ErrEventNotAllowed = errors.New("event type not allowed for ad kind")
)
