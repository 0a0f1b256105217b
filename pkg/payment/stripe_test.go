package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

const testWebhookSecret = "whsec_test_secret"

// signPayload builds a Stripe-Signature header the way Stripe signs
// webhooks: v1 is an HMAC-SHA256 over "<timestamp>.<payload>".
func signPayload(payload []byte, secret string, at time.Time) string {
	ts := at.Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func succeededEventPayload() []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_test_1",
		"object": "event",
		"api_version": "%s",
		"type": "payment_intent.succeeded",
		"data": {
			"object": {
				"id": "pi_test_1",
				"object": "payment_intent",
				"amount": 19500,
				"currency": "usd",
				"status": "succeeded",
				"metadata": {"booking_id": "b-1", "user_id": "u-1"}
			}
		}
	}`, stripe.APIVersion))
}

func TestVerifyWebhookAcceptsSignedPayload(t *testing.T) {
	processor := NewStripeProcessor("sk_test_key", testWebhookSecret, zap.NewNop())
	payload := succeededEventPayload()

	event, err := processor.VerifyWebhook(payload, signPayload(payload, testWebhookSecret, time.Now()))
	require.NoError(t, err)

	assert.Equal(t, EventIntentSucceeded, event.Type)
	require.NotNil(t, event.Intent)
	assert.Equal(t, "pi_test_1", event.Intent.ID)
	assert.Equal(t, int64(19500), event.Intent.Amount)
	assert.Equal(t, "usd", event.Intent.Currency)
	assert.True(t, event.Intent.Succeeded())
	assert.Equal(t, "b-1", event.Intent.Metadata["booking_id"])
}

func TestVerifyWebhookRejectsWrongSecret(t *testing.T) {
	processor := NewStripeProcessor("sk_test_key", testWebhookSecret, zap.NewNop())
	payload := succeededEventPayload()

	_, err := processor.VerifyWebhook(payload, signPayload(payload, "whsec_other_secret", time.Now()))
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyWebhookRejectsTamperedPayload(t *testing.T) {
	processor := NewStripeProcessor("sk_test_key", testWebhookSecret, zap.NewNop())
	payload := succeededEventPayload()
	header := signPayload(payload, testWebhookSecret, time.Now())

	tampered := append([]byte{}, payload...)
	tampered[len(tampered)-2] = ' '

	_, err := processor.VerifyWebhook(tampered, header)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyWebhookRejectsStaleTimestamp(t *testing.T) {
	processor := NewStripeProcessor("sk_test_key", testWebhookSecret, zap.NewNop())
	payload := succeededEventPayload()

	// Outside the default replay tolerance
	header := signPayload(payload, testWebhookSecret, time.Now().Add(-time.Hour))

	_, err := processor.VerifyWebhook(payload, header)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyWebhookGarbageHeader(t *testing.T) {
	processor := NewStripeProcessor("sk_test_key", testWebhookSecret, zap.NewNop())

	_, err := processor.VerifyWebhook([]byte(`{}`), "t=1,v1=deadbeef")
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestIntentSucceeded(t *testing.T) {
	assert.True(t, (&Intent{Status: "succeeded"}).Succeeded())
	assert.False(t, (&Intent{Status: "requires_payment_method"}).Succeeded())
	assert.False(t, (&Intent{Status: "processing"}).Succeeded())
}
