package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/flowcraft/payment-service/internal/models"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
)

// EventVerifier authenticates raw webhook bytes against the signature
// header. In production this is pkg/payment.StripeService; tests swap
// in a fake so dispatch can be exercised without real signatures.
type EventVerifier interface {
	VerifyEvent(payload []byte, signatureHeader string) (stripe.Event, error)
}

// EventHandler processes one verified event. Handlers must tolerate
// duplicate delivery; Stripe redelivers on any non-2xx response.
type EventHandler func(event stripe.Event) error

type WebhookService struct {
	verifier EventVerifier
	handlers map[string]EventHandler
	logger   *zap.Logger
}

func NewWebhookService(verifier EventVerifier, logger *zap.Logger) *WebhookService {
	s := &WebhookService{
		verifier: verifier,
		handlers: make(map[string]EventHandler),
		logger:   logger,
	}

	s.Register("checkout.session.completed", s.handleCheckoutCompleted)
	s.Register("invoice.payment_succeeded", s.handleInvoicePaymentSucceeded)

	return s
}

// Register maps an event type to a handler. Adding a new event type is
// one Register call, not a new switch arm.
func (s *WebhookService) Register(eventType string, handler EventHandler) {
	s.handlers[eventType] = handler
}

// HandleEvent verifies the raw payload, dispatches by event type, and
// acknowledges. Unrecognized types are logged and acknowledged; an
// unverified body is never dispatched.
func (s *WebhookService) HandleEvent(payload []byte, signatureHeader string) (*models.WebhookAck, error) {
	event, err := s.verifier.VerifyEvent(payload, signatureHeader)
	if err != nil {
		return nil, &SignatureError{Err: err}
	}

	handler, ok := s.handlers[string(event.Type)]
	if !ok {
		s.logger.Info("unhandled webhook event type",
			zap.String("event_type", string(event.Type)),
			zap.String("event_id", event.ID),
		)
	} else if err := handler(event); err != nil {
		return nil, &ProcessingError{
			EventType: string(event.Type),
			EventID:   event.ID,
			Err:       err,
		}
	}

	return &models.WebhookAck{
		Received:  true,
		EventType: string(event.Type),
		EventID:   event.ID,
	}, nil
}

// This is where a real deployment would provision the purchased plan;
// for now the completed checkout is only recorded.
func (s *WebhookService) handleCheckoutCompleted(event stripe.Event) error {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("unmarshal checkout session: %w", err)
	}

	planName := session.Metadata["planName"]
	if planName == "" {
		planName = session.Metadata["planId"]
	}

	var subscriptionID string
	if session.Subscription != nil {
		subscriptionID = session.Subscription.ID
	}

	s.logger.Info("checkout session completed",
		zap.String("customer_email", session.CustomerEmail),
		zap.String("plan", planName),
		zap.String("subscription_id", subscriptionID),
		zap.String("payment_status", string(session.PaymentStatus)),
		zap.String("session_id", session.ID),
	)

	return nil
}

func (s *WebhookService) handleInvoicePaymentSucceeded(event stripe.Event) error {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		return fmt.Errorf("unmarshal invoice: %w", err)
	}

	var customerID string
	if invoice.Customer != nil {
		customerID = invoice.Customer.ID
	}
	var subscriptionID string
	if invoice.Subscription != nil {
		subscriptionID = invoice.Subscription.ID
	}

	s.logger.Info("invoice payment succeeded",
		zap.String("customer", customerID),
		zap.String("amount_paid", fmt.Sprintf("$%.2f", float64(invoice.AmountPaid)/100)),
		zap.String("invoice_id", invoice.ID),
		zap.String("subscription_id", subscriptionID),
		zap.String("period_start", formatEpochDate(invoice.PeriodStart)),
		zap.String("period_end", formatEpochDate(invoice.PeriodEnd)),
	)

	return nil
}

func formatEpochDate(sec int64) string {
	return time.Unix(sec, 0).UTC().Format("2006-01-02")
}
