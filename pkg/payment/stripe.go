package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"
)

// StripeProcessor implements Processor on top of the Stripe API.
type StripeProcessor struct {
	api           *client.API
	webhookSecret string
	log           *zap.Logger
}

func NewStripeProcessor(secretKey, webhookSecret string, log *zap.Logger) *StripeProcessor {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeProcessor{
		api:           api,
		webhookSecret: webhookSecret,
		log:           log.With(zap.String("component", "stripe")),
	}
}

func (p *StripeProcessor) CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		p.log.Error("Failed to create payment intent",
			zap.Error(err),
			zap.Int64("amount", amount),
			zap.String("currency", currency),
		)
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	p.log.Info("Payment intent created",
		zap.String("intent_id", pi.ID),
		zap.Int64("amount", amount),
	)

	return intentFromStripe(pi), nil
}

func (p *StripeProcessor) GetIntent(ctx context.Context, id string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.Get(id, params)
	if err != nil {
		p.log.Error("Failed to retrieve payment intent",
			zap.Error(err),
			zap.String("intent_id", id),
		)
		return nil, fmt.Errorf("retrieve payment intent %s: %w", id, err)
	}

	return intentFromStripe(pi), nil
}

func (p *StripeProcessor) VerifyWebhook(payload []byte, signature string) (*Event, error) {
	event, err := webhook.ConstructEvent(payload, signature, p.webhookSecret)
	if err != nil {
		p.log.Warn("Webhook signature verification failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrBadSignature, err)
	}

	switch string(event.Type) {
	case EventIntentSucceeded, EventIntentFailed:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", event.Type, err)
		}
		return &Event{Type: string(event.Type), Intent: intentFromStripe(&pi)}, nil
	}

	// Unhandled event types are acknowledged upstream without action
	return &Event{Type: string(event.Type)}, nil
}

func intentFromStripe(pi *stripe.PaymentIntent) *Intent {
	var method string
	if pi.PaymentMethod != nil {
		method = pi.PaymentMethod.ID
	}

	return &Intent{
		ID:            pi.ID,
		ClientSecret:  pi.ClientSecret,
		Status:        string(pi.Status),
		Amount:        pi.Amount,
		Currency:      string(pi.Currency),
		PaymentMethod: method,
		Metadata:      pi.Metadata,
	}
}
