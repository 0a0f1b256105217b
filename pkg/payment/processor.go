package payment

import (
	"context"
	"errors"
)

// ErrBadSignature is returned when a webhook payload fails signature
// verification against the shared signing secret.
var ErrBadSignature = errors.New("webhook signature verification failed")

// Intent is the processor-side handle for an in-progress charge. Amount is
// in the processor's minor units (cents).
type Intent struct {
	ID            string
	ClientSecret  string
	Status        string
	Amount        int64
	Currency      string
	PaymentMethod string
	Metadata      map[string]string
}

// Succeeded reports whether the processor considers the intent collected.
func (i *Intent) Succeeded() bool {
	return i.Status == "succeeded"
}

// Event types surfaced to the payment service. Other processor events are
// passed through with their raw type string and ignored upstream.
const (
	EventIntentSucceeded = "payment_intent.succeeded"
	EventIntentFailed    = "payment_intent.payment_failed"
)

// Event is a verified webhook notification.
type Event struct {
	Type   string
	Intent *Intent
}

// Processor is the boundary to the external payment provider. The concrete
// client is constructed once at startup and injected; services and tests
// only see this interface.
type Processor interface {
	// CreateIntent opens an intent for amount minor units and returns the
	// client-usable secret plus the processor's intent identifier.
	CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*Intent, error)

	// GetIntent fetches the authoritative state of an intent. Client claims
	// of success are never trusted without this call.
	GetIntent(ctx context.Context, id string) (*Intent, error)

	// VerifyWebhook checks the signature over the exact raw payload bytes
	// and decodes the event. Returns ErrBadSignature on verification
	// failure.
	VerifyWebhook(payload []byte, signature string) (*Event, error)
}
