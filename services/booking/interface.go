package booking

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"glossify/models"
	catalogsvc "glossify/services/catalog"
)

// BookingSessionService manages stateful wizard sessions: selection
// mutations, carousel navigation, step sequencing, derived summaries, and
// final confirmation.
type BookingSessionService interface {
	InitiateSession(ctx context.Context) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	CancelSession(ctx context.Context, sessionID string) error

	SelectVehicleType(ctx context.Context, sessionID string, vehicleType models.VehicleType) (*models.BookingSession, error)
	UpdateVehicleDetails(ctx context.Context, sessionID string, upd VehicleDetailsUpdate) (*models.BookingSession, error)
	SelectServiceTier(ctx context.Context, sessionID string, tierID string) (*models.BookingSession, error)
	ToggleAddonTier(ctx context.Context, sessionID string, category models.AddonCategory, tierID string) (*models.BookingSession, error)
	SetSchedule(ctx context.Context, sessionID string, dates []string, timeOfDay string) (*models.BookingSession, error)
	SetPaymentMethod(ctx context.Context, sessionID string, method models.PaymentMethod) (*models.BookingSession, error)

	NavigateCarousel(ctx context.Context, sessionID string, carouselKey string, direction Direction) (*models.BookingSession, error)
	JumpCarousel(ctx context.Context, sessionID string, carouselKey string, index int) (*models.BookingSession, error)

	Advance(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Retreat(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Reset(ctx context.Context, sessionID string) (*models.BookingSession, error)

	GetSummary(ctx context.Context, sessionID string) (*SessionSummary, error)
	ConfirmBooking(ctx context.Context, sessionID string) (*models.BookingConfirmation, error)
}

// DefaultBookingSessionService implements BookingSessionService with
// Redis-cached sessions and the catalog resolver.
type DefaultBookingSessionService struct {
	Resolver   catalogsvc.Resolver
	Payments   PaymentHandler
	Cache      *redis.Client
	SessionTTL time.Duration
}
