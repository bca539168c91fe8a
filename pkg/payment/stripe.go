package payment

import (
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"
	"github.com/stripe/stripe-go/v74/webhook"
)

type StripeService struct {
	webhookSecret string
	clientURL     string
}

func NewStripeService(secretKey, webhookSecret, clientURL string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{
		webhookSecret: webhookSecret,
		clientURL:     clientURL,
	}
}

// CreateSubscriptionCheckout opens a hosted Checkout session in
// subscription mode. Stripe substitutes the session id into the
// {CHECKOUT_SESSION_ID} placeholder of the success URL.
func (s *StripeService) CreateSubscriptionCheckout(customerEmail, priceID string, metadata map[string]string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		CustomerEmail: stripe.String(customerEmail),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:               stripe.String(s.clientURL + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:                stripe.String(s.clientURL + "/cancel"),
		AllowPromotionCodes:      stripe.Bool(true),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionAuto)),
	}

	for key, value := range metadata {
		params.AddMetadata(key, value)
	}

	return session.New(params)
}

// VerifyEvent checks the Stripe-Signature header against the raw body
// and the endpoint secret. The payload must be the untouched request
// bytes; any re-serialization upstream breaks the signature.
func (s *StripeService) VerifyEvent(payload []byte, signatureHeader string) (stripe.Event, error) {
	return webhook.ConstructEventWithOptions(payload, signatureHeader, s.webhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
}
