package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glossify/models"
	"glossify/services/booking"
	"glossify/utils"
)

// BookingHandler exposes the wizard session endpoints.
type BookingHandler struct {
	Service booking.BookingSessionService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// InitiateSession creates a new wizard session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	sess, err := h.Service.InitiateSession(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to start booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, sess)
}

// GetSummary returns the derived view for a session.
func (h *BookingHandler) GetSummary(c *gin.Context) {
	summary, err := h.Service.GetSummary(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// UpdateVehicle sets the vehicle type and/or merges identification details.
func (h *BookingHandler) UpdateVehicle(c *gin.Context) {
	var input struct {
		Type    models.VehicleType            `json:"type"`
		Details *booking.VehicleDetailsUpdate `json:"details"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ctx := c.Request.Context()
	sessionID := c.Param("sessionID")

	var sess *models.BookingSession
	var err error
	if input.Type != "" {
		if !models.IsValidVehicleType(input.Type) {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown vehicle type")
			return
		}
		sess, err = h.Service.SelectVehicleType(ctx, sessionID, input.Type)
		if err != nil {
			h.respondError(c, err)
			return
		}
	}
	if input.Details != nil {
		sess, err = h.Service.UpdateVehicleDetails(ctx, sessionID, *input.Details)
		if err != nil {
			h.respondError(c, err)
			return
		}
	}
	if sess == nil {
		sess, err = h.Service.GetSession(ctx, sessionID)
		if err != nil {
			h.respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, sess)
}

// SelectServiceTier toggles the selected service tier.
func (h *BookingHandler) SelectServiceTier(c *gin.Context) {
	var input struct {
		TierID string `json:"tierId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	sess, err := h.Service.SelectServiceTier(c.Request.Context(), c.Param("sessionID"), input.TierID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// ToggleAddon toggles the tier for one add-on category.
func (h *BookingHandler) ToggleAddon(c *gin.Context) {
	var input struct {
		Category models.AddonCategory `json:"category" binding:"required"`
		TierID   string               `json:"tierId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !models.IsValidAddonCategory(input.Category) {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown add-on category")
		return
	}
	sess, err := h.Service.ToggleAddonTier(c.Request.Context(), c.Param("sessionID"), input.Category, input.TierID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// SetSchedule replaces the chosen dates and time.
func (h *BookingHandler) SetSchedule(c *gin.Context) {
	var input struct {
		Dates []string `json:"dates"`
		Time  string   `json:"time"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	sess, err := h.Service.SetSchedule(c.Request.Context(), c.Param("sessionID"), input.Dates, input.Time)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// SetPaymentMethod replaces the chosen payment method.
func (h *BookingHandler) SetPaymentMethod(c *gin.Context) {
	var input struct {
		Method models.PaymentMethod `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !models.IsValidPaymentMethod(input.Method) {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown payment method")
		return
	}
	sess, err := h.Service.SetPaymentMethod(c.Request.Context(), c.Param("sessionID"), input.Method)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Carousel navigates or jumps one carousel.
func (h *BookingHandler) Carousel(c *gin.Context) {
	var input struct {
		Key       string `json:"key" binding:"required"`
		Action    string `json:"action" binding:"required"`
		Direction string `json:"direction"`
		Index     int    `json:"index"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ctx := c.Request.Context()
	sessionID := c.Param("sessionID")

	var sess *models.BookingSession
	var err error
	switch input.Action {
	case "navigate":
		direction := booking.Direction(input.Direction)
		if direction != booking.DirectionLeft && direction != booking.DirectionRight {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", "direction must be left or right")
			return
		}
		sess, err = h.Service.NavigateCarousel(ctx, sessionID, input.Key, direction)
	case "jump":
		sess, err = h.Service.JumpCarousel(ctx, sessionID, input.Key, input.Index)
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "action must be navigate or jump")
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Advance moves the wizard forward if the current step's precondition holds.
func (h *BookingHandler) Advance(c *gin.Context) {
	sess, err := h.Service.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Retreat moves the wizard one step back.
func (h *BookingHandler) Retreat(c *gin.Context) {
	sess, err := h.Service.Retreat(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Reset returns the wizard to the first step with a fresh selection.
func (h *BookingHandler) Reset(c *gin.Context) {
	sess, err := h.Service.Reset(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// Confirm settles payment and completes the wizard.
func (h *BookingHandler) Confirm(c *gin.Context) {
	confirmation, err := h.Service.ConfirmBooking(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// Cancel deletes the session.
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.Is(err, booking.ErrUnknownCarousel):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case errors.Is(err, booking.ErrNotReadyToConfirm):
		utils.JSONError(c, http.StatusConflict, "booking is not ready to confirm", "")
	default:
		h.Logger.Error("booking handler failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
