package models

import "time"

// CarouselKeyService is the carousel key for the single service grouping;
// add-on carousels use their category id as the key.
const CarouselKeyService = "service"

// BookingSession is the server-side state of one wizard run, cached between
// requests.
type BookingSession struct {
	SessionID string         `json:"sessionId"`
	Selection SelectionModel `json:"selection"`
	Wizard    WizardState    `json:"wizard"`

	// CarouselIndex holds the current tier index per carousel key
	// ("service" or an add-on category).
	CarouselIndex map[string]int `json:"carouselIndex,omitempty"`
	// CarouselInit records which (vehicle type, carousel key) pairs have
	// already run popular-first initialization.
	CarouselInit map[string]bool `json:"carouselInit,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PaymentRequest describes a payment to be processed at confirmation.
type PaymentRequest struct {
	SessionID string        `json:"sessionId"`
	Amount    float64       `json:"amount"`
	Currency  string        `json:"currency"`
	Method    PaymentMethod `json:"method"`
}

// Invoice records the outcome of a payment attempt.
type Invoice struct {
	InvoiceID string        `json:"invoiceId"`
	SessionID string        `json:"sessionId"`
	Amount    float64       `json:"amount"`
	Currency  string        `json:"currency"`
	Method    PaymentMethod `json:"method"`
	Status    string        `json:"status"`
	PaymentID string        `json:"paymentId,omitempty"`
	// ClientSecret is set for card payments so the client can complete the
	// Stripe PaymentIntent.
	ClientSecret string    `json:"clientSecret,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BookingConfirmation is the terminal event emitted when a wizard run
// completes. The booking itself is not persisted here; downstream systems
// consume this event.
type BookingConfirmation struct {
	BookingRef  string         `json:"bookingRef"`
	Selection   SelectionModel `json:"selection"`
	Total       float64        `json:"total"`
	Invoice     *Invoice       `json:"invoice,omitempty"`
	ConfirmedAt time.Time      `json:"confirmedAt"`
}
