package service

import (
	"github.com/flowcraft/payment-service/internal/models"
	"github.com/flowcraft/payment-service/pkg/utils"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
)

// CheckoutClient is the one Stripe capability the payment service
// needs, kept as an interface so tests can substitute a fake.
type CheckoutClient interface {
	CreateSubscriptionCheckout(customerEmail, priceID string, metadata map[string]string) (*stripe.CheckoutSession, error)
}

type PaymentService struct {
	checkout  CheckoutClient
	catalog   *models.PlanCatalog
	validator *utils.Validator
	logger    *zap.Logger
}

func NewPaymentService(checkout CheckoutClient, catalog *models.PlanCatalog, validator *utils.Validator, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		checkout:  checkout,
		catalog:   catalog,
		validator: validator,
		logger:    logger,
	}
}

// CreateCheckoutSession validates the request and opens one Stripe
// Checkout session for the resolved plan. Invalid input never reaches
// Stripe.
func (s *PaymentService) CreateCheckoutSession(req models.CheckoutRequest) (*models.CheckoutResult, error) {
	plan, ok := s.catalog.Get(req.PlanID)
	if !ok {
		return nil, &ValidationError{Message: `Invalid plan ID. Must be "starter" or "pro"`}
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, &ValidationError{Message: "Valid email address is required"}
	}

	s.logger.Info("creating checkout session",
		zap.String("email", req.Email),
		zap.String("plan", plan.Name),
	)

	session, err := s.checkout.CreateSubscriptionCheckout(req.Email, plan.PriceID, map[string]string{
		"planId":   plan.ID,
		"planName": plan.Name,
	})
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	s.logger.Info("checkout session created",
		zap.String("session_id", session.ID),
		zap.String("url", session.URL),
	)

	return &models.CheckoutResult{
		SessionID: session.ID,
		URL:       session.URL,
		Plan: models.PlanSummary{
			ID:    plan.ID,
			Name:  plan.Name,
			Price: float64(plan.Price) / 100,
		},
	}, nil
}

// Plans returns the catalog for the public plan listing.
func (s *PaymentService) Plans() []models.Plan {
	return s.catalog.All()
}
