package booking

import "errors"

// ErrSessionNotFound is returned when a session id does not resolve to a
// live session (unknown, expired, or cancelled).
var ErrSessionNotFound = errors.New("booking session not found or expired")

// ErrUnknownCarousel is returned when a carousel key is neither the service
// grouping nor a known add-on category.
var ErrUnknownCarousel = errors.New("unknown carousel key")

// ErrNotReadyToConfirm is returned when confirmation is requested before
// the wizard has reached the payment step with a method selected.
var ErrNotReadyToConfirm = errors.New("booking is not ready to confirm")
