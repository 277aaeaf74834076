package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"glossify/models"
	catalogsvc "glossify/services/catalog"
)

// AnnotatedTier is a catalog item decorated with its carousel position and
// selection state for rendering.
type AnnotatedTier struct {
	models.CatalogItem
	Position Position `json:"position"`
	Selected bool     `json:"selected"`
}

// CategoryView is the derived view of one carousel: the service grouping or
// one add-on category.
type CategoryView struct {
	Key            string              `json:"key"`
	Shape          models.CatalogShape `json:"shape,omitempty"`
	Tiers          []AnnotatedTier     `json:"tiers,omitempty"`
	CurrentIndex   int                 `json:"currentIndex"`
	SelectedTierID string              `json:"selectedTierId,omitempty"`
	// StaleSelection flags a selected tier no longer present in the
	// resolved list; it prices at 0 and needs re-selection.
	StaleSelection bool `json:"staleSelection,omitempty"`
	// Available is false when resolution failed for this category. The
	// failure stays local: other categories render normally.
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
}

// SessionSummary is the read-only derived view the presentation layer
// renders: step state, selections, annotated catalogs, and the running
// total recomputed from scratch.
type SessionSummary struct {
	SessionID        string                  `json:"sessionId"`
	CurrentStep      models.Step             `json:"currentStep"`
	CompletedSteps   []models.Step           `json:"completedSteps"`
	Vehicle          models.VehicleSelection `json:"vehicle"`
	VehicleSupported bool                    `json:"vehicleSupported"`
	Service          *CategoryView           `json:"service,omitempty"`
	Addons           []CategoryView          `json:"addons,omitempty"`
	Schedule         models.Schedule         `json:"schedule"`
	PaymentMethod    models.PaymentMethod    `json:"paymentMethod,omitempty"`
	Total            float64                 `json:"total"`
}

// GetSummary assembles the derived view for a session. Catalog failures for
// individual categories never fail the summary.
func (s *DefaultBookingSessionService) GetSummary(ctx context.Context, sessionID string) (*SessionSummary, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	summary := &SessionSummary{
		SessionID:      sess.SessionID,
		CurrentStep:    sess.Wizard.CurrentStep,
		CompletedSteps: sess.Wizard.CompletedSteps,
		Vehicle:        sess.Selection.Vehicle,
		Schedule:       sess.Selection.Schedule,
		PaymentMethod:  sess.Selection.PaymentMethod,
	}

	vehicleType := sess.Selection.Vehicle.Type
	if vehicleType == "" {
		return summary, nil
	}
	_, supported := catalogsvc.PartitionFor(vehicleType)
	summary.VehicleSupported = supported
	if !supported {
		return summary, nil
	}

	carouselTouched := false

	serviceCatalog, view := s.categoryView(ctx, sess, models.CarouselKeyService,
		sess.Selection.ServiceTierID, &carouselTouched)
	summary.Service = &view

	addonCatalogs := make(map[models.AddonCategory]*models.ResolvedCatalog, len(models.AllAddonCategories))
	for _, category := range models.AllAddonCategories {
		resolved, view := s.categoryView(ctx, sess, string(category),
			sess.Selection.AddonTiers[category], &carouselTouched)
		summary.Addons = append(summary.Addons, view)
		addonCatalogs[category] = resolved
	}

	summary.Total = ComputeTotal(sess.Selection, serviceCatalog, addonCatalogs)

	// Persist first-time carousel initializations so they run once per
	// (vehicle type, category), not on every read.
	if carouselTouched {
		if err := s.saveSession(ctx, sess); err != nil {
			return nil, err
		}
	}
	return summary, nil
}

// categoryView resolves one category and annotates its tiers. A catalog
// failure produces an unavailable view with a user-facing message.
func (s *DefaultBookingSessionService) categoryView(ctx context.Context, sess *models.BookingSession, carouselKey, selectedTierID string, carouselTouched *bool) (*models.ResolvedCatalog, CategoryView) {
	view := CategoryView{Key: carouselKey, SelectedTierID: selectedTierID}

	category, err := categoryForKey(carouselKey)
	if err != nil {
		view.Message = err.Error()
		return nil, view
	}

	resolved, err := s.Resolver.Resolve(ctx, sess.Selection.Vehicle.Type, category)
	if err != nil {
		var ce *catalogsvc.CatalogError
		if errors.As(err, &ce) {
			view.Message = ce.Message
		} else {
			view.Message = "catalog temporarily unavailable"
		}
		return nil, view
	}

	initKey := string(sess.Selection.Vehicle.Type) + ":" + carouselKey
	if !sess.CarouselInit[initKey] {
		s.ensureCarousel(sess, carouselKey, resolved.Items)
		*carouselTouched = true
	}
	// An index saved while touring another vehicle type's larger catalog can
	// sit past the end of this one; clamp it into the resolved list.
	currentIndex := JumpTo(sess.CarouselIndex[carouselKey], len(resolved.Items))
	if currentIndex != sess.CarouselIndex[carouselKey] {
		setCarouselIndex(sess, carouselKey, currentIndex)
		*carouselTouched = true
	}

	view.Available = true
	view.Shape = resolved.Shape
	view.CurrentIndex = currentIndex
	view.Tiers = make([]AnnotatedTier, 0, len(resolved.Items))
	selectionFound := selectedTierID == ""
	for i, item := range resolved.Items {
		selected := item.ID == selectedTierID
		if selected {
			selectionFound = true
		}
		view.Tiers = append(view.Tiers, AnnotatedTier{
			CatalogItem: item,
			Position:    TierPosition(i, currentIndex),
			Selected:    selected,
		})
	}
	view.StaleSelection = !selectionFound
	return resolved, view
}

// ConfirmBooking processes payment for the computed total and moves the
// wizard to its terminal state. The confirmation is emitted, not persisted;
// downstream systems own booking storage.
func (s *DefaultBookingSessionService) ConfirmBooking(ctx context.Context, sessionID string) (*models.BookingConfirmation, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Wizard.CurrentStep != models.StepPayment || !CanAdvance(sess.Wizard, sess.Selection) {
		return nil, ErrNotReadyToConfirm
	}

	total := s.computeSessionTotal(ctx, sess)

	invoice, err := s.Payments.ProcessPayment(ctx, models.PaymentRequest{
		SessionID: sess.SessionID,
		Amount:    total,
		Currency:  "usd",
		Method:    sess.Selection.PaymentMethod,
	})
	if err != nil {
		sess.Wizard = Fail(sess.Wizard)
		if saveErr := s.saveSession(ctx, sess); saveErr != nil {
			return nil, saveErr
		}
		return nil, err
	}

	sess.Wizard = Complete(sess.Wizard, sess.Selection)
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	return &models.BookingConfirmation{
		BookingRef:  uuid.New().String(),
		Selection:   sess.Selection,
		Total:       total,
		Invoice:     invoice,
		ConfirmedAt: sess.UpdatedAt,
	}, nil
}

// computeSessionTotal resolves whatever catalogs are reachable and prices
// the selection against them; unreachable catalogs contribute 0.
func (s *DefaultBookingSessionService) computeSessionTotal(ctx context.Context, sess *models.BookingSession) float64 {
	var serviceCatalog *models.ResolvedCatalog
	if resolved, err := s.Resolver.Resolve(ctx, sess.Selection.Vehicle.Type, catalogsvc.CategoryService); err == nil {
		serviceCatalog = resolved
	}
	addonCatalogs := make(map[models.AddonCategory]*models.ResolvedCatalog, len(sess.Selection.AddonTiers))
	for category := range sess.Selection.AddonTiers {
		if resolved, err := s.Resolver.Resolve(ctx, sess.Selection.Vehicle.Type, string(category)); err == nil {
			addonCatalogs[category] = resolved
		}
	}
	return ComputeTotal(sess.Selection, serviceCatalog, addonCatalogs)
}
