package service

import "fmt"

// ValidationError is the caller's fault: unknown plan id or malformed
// email. Surfaced as a 400 with the message verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SignatureError means the webhook body could not be authenticated.
// The body is never interpreted as a trusted event.
type SignatureError struct {
	Err error
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("webhook signature verification failed: %v", e.Err)
}

func (e *SignatureError) Unwrap() error {
	return e.Err
}

// ProviderError wraps a failed Stripe API call.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("stripe request failed: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ProcessingError means a verified event's handler failed. Stripe
// treats the resulting non-2xx as a signal to redeliver the event.
type ProcessingError struct {
	EventType string
	EventID   string
	Err       error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing %s event %s: %v", e.EventType, e.EventID, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
