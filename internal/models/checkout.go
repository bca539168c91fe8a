package models

// CheckoutRequest is the body of POST /api/create-checkout-session.
type CheckoutRequest struct {
	PlanID string `json:"planId" validate:"required"`
	Email  string `json:"email" validate:"required,checkout_email"`
}

// PlanSummary is the plan slice echoed back to the caller. Price is in
// major units (dollars), unlike Plan.Price which is in cents.
type PlanSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CheckoutResult carries the created Stripe session back to the caller.
type CheckoutResult struct {
	SessionID string      `json:"sessionId"`
	URL       string      `json:"url"`
	Plan      PlanSummary `json:"plan"`
}

// WebhookAck acknowledges a verified and dispatched webhook event.
type WebhookAck struct {
	Received  bool   `json:"received"`
	EventType string `json:"eventType"`
	EventID   string `json:"eventId"`
}
