package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"glossify/models"
	catalogsvc "glossify/services/catalog"
	"glossify/utils"
)

const sessionKeyPrefix = "bsession:"

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

// InitiateSession creates a fresh wizard session at the first step.
func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context) (*models.BookingSession, error) {
	now := time.Now().UTC()
	sess := &models.BookingSession{
		SessionID: uuid.New().String(),
		Selection: models.NewSelectionModel(),
		Wizard:    models.NewWizardState(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("booking session initiated", zap.String("sessionID", sess.SessionID))
	return sess, nil
}

// GetSession returns the live session for an id.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.loadSession(ctx, sessionID)
}

// CancelSession deletes the session data from the cache.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

// SelectVehicleType sets the vehicle type and drops the prior
// identification details.
func (s *DefaultBookingSessionService) SelectVehicleType(ctx context.Context, sessionID string, vehicleType models.VehicleType) (*models.BookingSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.BookingSession) error {
		// Tier selections are left alone on purpose: if they survive into
		// the new type's catalogs they keep working, otherwise they price
		// at 0 and the summary flags them for re-selection.
		sess.Selection = SelectVehicleType(sess.Selection, vehicleType)
		return nil
	})
}

// UpdateVehicleDetails merges a partial identification update.
func (s *DefaultBookingSessionService) UpdateVehicleDetails(ctx context.Context, sessionID string, upd VehicleDetailsUpdate) (*models.BookingSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.BookingSession) error {
		sess.Selection = UpdateVehicleDetails(sess.Selection, upd)
		return nil
	})
}

// SelectServiceTier toggles the service tier and re-centers the service
// carousel on a newly selected tier.
func (s *DefaultBookingSessionService) SelectServiceTier(ctx context.Context, sessionID string, tierID string) (*models.BookingSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.BookingSession) error {
		sess.Selection = SelectServiceTier(sess.Selection, tierID)
		if sess.Selection.ServiceTierID != "" {
			s.recenterOnTier(ctx, sess, models.CarouselKeyService, tierID)
		}
		return nil
	})
}

// ToggleAddonTier toggles the tier for one add-on category and re-centers
// that category's carousel on a newly selected tier.
func (s *DefaultBookingSessionService) ToggleAddonTier(ctx context.Context, sessionID string, category models.AddonCategory, tierID string) (*models.BookingSession, error) {
	if !models.IsValidAddonCategory(category) {
		// Caller misuse: ignore rather than fail the session.
		return s.loadSession(ctx, sessionID)
	}
	return s.mutate(ctx, sessionID, func(sess *models.BookingSession) error {
		sess.Selection = ToggleAddonTier(sess.Selection, category, tierID)
		if sess.Selection.AddonTiers[category] == tierID {
			s.recenterOnTier(ctx, sess, string(category), tierID)
		}
		return nil
	})
}

// SetSchedule replaces the chosen dates and time wholesale.
func (s *DefaultBookingSessionService) SetSchedule(ctx context.Context, sessionID string, dates []string, timeOfDay string) (*models.BookingSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.BookingSession) error {
		sess.Selection = SetSchedule(sess.Selection, dates, timeOfDay)
		return nil
	})
}

// SetPaymentMethod replaces the payment method.
func (s *DefaultBookingSessionService) SetPaymentMethod(ctx context.Context, sessionID string, method models.PaymentMethod) (*models.BookingSession, error) {
	if !models.IsValidPaymentMethod(method) {
		return s.loadSession(ctx, sessionID)
	}
	return s.mutate(ctx, sessionID, func(sess *models.BookingSession) error {
		sess.Selection = SetPaymentMethod(sess.Selection, method)
		return nil
	})
}

// NavigateCarousel moves one carousel's focus left or right with clamping.
func (s *DefaultBookingSessionService) NavigateCarousel(ctx context.Context, sessionID string, carouselKey string, direction Direction) (*models.BookingSession, error) {
	category, err := categoryForKey(carouselKey)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, sessionID, func(sess *models.BookingSession) error {
		resolved, resolveErr := s.Resolver.Resolve(ctx, sess.Selection.Vehicle.Type, category)
		if resolveErr != nil {
			return ignoreCatalogErr(resolveErr)
		}
		s.ensureCarousel(sess, carouselKey, resolved.Items)
		// The stored index may belong to another vehicle type's catalog;
		// clamp before stepping.
		current := JumpTo(sess.CarouselIndex[carouselKey], len(resolved.Items))
		setCarouselIndex(sess, carouselKey, Navigate(current, len(resolved.Items), direction))
		return nil
	})
}

// JumpCarousel re-centers one carousel on an explicit index.
func (s *DefaultBookingSessionService) JumpCarousel(ctx context.Context, sessionID string, carouselKey string, index int) (*models.BookingSession, error) {
	category, err := categoryForKey(carouselKey)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, sessionID, func(sess *models.BookingSession) error {
		resolved, resolveErr := s.Resolver.Resolve(ctx, sess.Selection.Vehicle.Type, category)
		if resolveErr != nil {
			return ignoreCatalogErr(resolveErr)
		}
		s.ensureCarousel(sess, carouselKey, resolved.Items)
		setCarouselIndex(sess, carouselKey, JumpTo(index, len(resolved.Items)))
		return nil
	})
}

// Advance moves the wizard forward when the current step's precondition
// holds; otherwise the session is returned unchanged.
func (s *DefaultBookingSessionService) Advance(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.BookingSession) error {
		sess.Wizard = Advance(sess.Wizard, sess.Selection)
		return nil
	})
}

// Retreat moves the wizard one step back.
func (s *DefaultBookingSessionService) Retreat(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.BookingSession) error {
		sess.Wizard = Retreat(sess.Wizard)
		return nil
	})
}

// Reset returns the wizard to the first step with a fresh selection.
func (s *DefaultBookingSessionService) Reset(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.mutate(ctx, sessionID, func(sess *models.BookingSession) error {
		sess.Selection = models.NewSelectionModel()
		sess.Wizard = ResetWizard()
		sess.CarouselIndex = nil
		sess.CarouselInit = nil
		return nil
	})
}

// --- internals ---

func (s *DefaultBookingSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var sess models.BookingSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &sess, nil
}

// saveSession writes the session back and refreshes its idle TTL.
func (s *DefaultBookingSessionService) saveSession(ctx context.Context, sess *models.BookingSession) error {
	sess.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(sess.SessionID), data, s.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) mutate(ctx context.Context, sessionID string, fn func(*models.BookingSession) error) (*models.BookingSession, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// ensureCarousel runs popular-first initialization exactly once per
// (vehicle type, carousel key).
func (s *DefaultBookingSessionService) ensureCarousel(sess *models.BookingSession, carouselKey string, tiers []models.CatalogItem) {
	initKey := string(sess.Selection.Vehicle.Type) + ":" + carouselKey
	if sess.CarouselInit[initKey] {
		return
	}
	setCarouselIndex(sess, carouselKey, InitialIndex(tiers))
	if sess.CarouselInit == nil {
		sess.CarouselInit = make(map[string]bool)
	}
	sess.CarouselInit[initKey] = true
}

// recenterOnTier jumps the carousel to the selected tier. Resolution
// failures are swallowed: re-centering is cosmetic and must not fail a
// selection that already succeeded.
func (s *DefaultBookingSessionService) recenterOnTier(ctx context.Context, sess *models.BookingSession, carouselKey, tierID string) {
	category, err := categoryForKey(carouselKey)
	if err != nil {
		return
	}
	resolved, err := s.Resolver.Resolve(ctx, sess.Selection.Vehicle.Type, category)
	if err != nil {
		return
	}
	s.ensureCarousel(sess, carouselKey, resolved.Items)
	for i, item := range resolved.Items {
		if item.ID == tierID {
			setCarouselIndex(sess, carouselKey, JumpTo(i, len(resolved.Items)))
			return
		}
	}
}

func setCarouselIndex(sess *models.BookingSession, carouselKey string, index int) {
	if sess.CarouselIndex == nil {
		sess.CarouselIndex = make(map[string]int)
	}
	sess.CarouselIndex[carouselKey] = index
}

// categoryForKey maps a carousel key to its catalog category id.
func categoryForKey(carouselKey string) (string, error) {
	if carouselKey == models.CarouselKeyService {
		return catalogsvc.CategoryService, nil
	}
	if models.IsValidAddonCategory(models.AddonCategory(carouselKey)) {
		return carouselKey, nil
	}
	return "", ErrUnknownCarousel
}

// ignoreCatalogErr downgrades catalog resolution failures to a no-op;
// infrastructure errors still propagate.
func ignoreCatalogErr(err error) error {
	var ce *catalogsvc.CatalogError
	if errors.As(err, &ce) {
		return nil
	}
	return err
}
