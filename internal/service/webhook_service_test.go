package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
)

// FakeVerifier implements EventVerifier without real signature math
type FakeVerifier struct {
	event stripe.Event
	err   error
}

func (f *FakeVerifier) VerifyEvent(payload []byte, signatureHeader string) (stripe.Event, error) {
	return f.event, f.err
}

func makeEvent(t *testing.T, id, eventType string, object interface{}) stripe.Event {
	t.Helper()
	raw, err := json.Marshal(object)
	require.NoError(t, err)
	return stripe.Event{
		ID:   id,
		Type: eventType,
		Data: &stripe.EventData{Raw: raw},
	}
}

func TestHandleEvent_SignatureFailure(t *testing.T) {
	verifier := &FakeVerifier{err: errors.New("no valid signature found")}
	handled := false
	svc := NewWebhookService(verifier, zap.NewNop())
	svc.Register("checkout.session.completed", func(event stripe.Event) error {
		handled = true
		return nil
	})

	ack, err := svc.HandleEvent([]byte(`{}`), "t=1,v1=bad")

	require.Error(t, err)
	assert.Nil(t, ack)
	assert.False(t, handled, "no handler may run for an unverified body")

	var sigErr *SignatureError
	assert.ErrorAs(t, err, &sigErr)
}

func TestHandleEvent_CheckoutCompleted(t *testing.T) {
	event := makeEvent(t, "evt_1", "checkout.session.completed", map[string]interface{}{
		"id":             "cs_test_123",
		"customer_email": "a@b.com",
		"payment_status": "paid",
		"subscription":   "sub_123",
		"metadata": map[string]string{
			"planId":   "starter",
			"planName": "Starter Plan",
		},
	})
	svc := NewWebhookService(&FakeVerifier{event: event}, zap.NewNop())

	ack, err := svc.HandleEvent([]byte(`{}`), "sig")

	require.NoError(t, err)
	require.NotNil(t, ack)
	assert.True(t, ack.Received)
	assert.Equal(t, "checkout.session.completed", ack.EventType)
	assert.Equal(t, "evt_1", ack.EventID)
}

func TestHandleEvent_InvoicePaymentSucceeded(t *testing.T) {
	event := makeEvent(t, "evt_2", "invoice.payment_succeeded", map[string]interface{}{
		"id":           "in_123",
		"customer":     "cus_123",
		"amount_paid":  2900,
		"subscription": "sub_123",
		"period_start": 1735689600,
		"period_end":   1738368000,
	})
	svc := NewWebhookService(&FakeVerifier{event: event}, zap.NewNop())

	ack, err := svc.HandleEvent([]byte(`{}`), "sig")

	require.NoError(t, err)
	assert.True(t, ack.Received)
	assert.Equal(t, "invoice.payment_succeeded", ack.EventType)
	assert.Equal(t, "evt_2", ack.EventID)
}

func TestHandleEvent_UnknownTypeIsAcknowledged(t *testing.T) {
	event := makeEvent(t, "evt_3", "customer.deleted", map[string]interface{}{
		"id": "cus_123",
	})
	svc := NewWebhookService(&FakeVerifier{event: event}, zap.NewNop())

	ack, err := svc.HandleEvent([]byte(`{}`), "sig")

	require.NoError(t, err)
	assert.True(t, ack.Received)
	assert.Equal(t, "customer.deleted", ack.EventType)
}

func TestHandleEvent_HandlerFailure(t *testing.T) {
	event := makeEvent(t, "evt_4", "checkout.session.completed", map[string]interface{}{
		"id": "cs_test_123",
	})
	svc := NewWebhookService(&FakeVerifier{event: event}, zap.NewNop())
	svc.Register("checkout.session.completed", func(event stripe.Event) error {
		return errors.New("provisioning backend unavailable")
	})

	ack, err := svc.HandleEvent([]byte(`{}`), "sig")

	require.Error(t, err)
	assert.Nil(t, ack)

	var procErr *ProcessingError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, "checkout.session.completed", procErr.EventType)
	assert.Equal(t, "evt_4", procErr.EventID)
}

func TestHandleEvent_RedeliverySameAck(t *testing.T) {
	event := makeEvent(t, "evt_5", "checkout.session.completed", map[string]interface{}{
		"id":             "cs_test_123",
		"customer_email": "a@b.com",
	})
	svc := NewWebhookService(&FakeVerifier{event: event}, zap.NewNop())

	first, err := svc.HandleEvent([]byte(`{}`), "sig")
	require.NoError(t, err)
	second, err := svc.HandleEvent([]byte(`{}`), "sig")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRegister_AdditionalType(t *testing.T) {
	event := makeEvent(t, "evt_6", "customer.subscription.deleted", map[string]interface{}{
		"id": "sub_123",
	})
	svc := NewWebhookService(&FakeVerifier{event: event}, zap.NewNop())

	var seen string
	svc.Register("customer.subscription.deleted", func(event stripe.Event) error {
		seen = event.ID
		return nil
	})

	ack, err := svc.HandleEvent([]byte(`{}`), "sig")

	require.NoError(t, err)
	assert.True(t, ack.Received)
	assert.Equal(t, "evt_6", seen)
}
