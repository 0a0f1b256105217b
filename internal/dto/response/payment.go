package response

import (
	"time"

	"car-rental/internal/data/entity"
)

// IntentResponse carries the client-side handle for completing a payment.
// The client secret is consumed by the payment UI only; the server never
// sees raw card credentials.
type IntentResponse struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
}

type PaymentResponse struct {
	ID              string               `json:"id"`
	BookingID       string               `json:"booking_id"`
	Booking         *BookingResponse     `json:"booking,omitempty"`
	UserID          string               `json:"user_id"`
	Amount          float64              `json:"amount"`
	Currency        string               `json:"currency"`
	PaymentIntentID string               `json:"payment_intent_id"`
	Method          entity.PaymentMethod `json:"method"`
	Status          entity.PaymentStatus `json:"status"`
	TransactionID   *string              `json:"transaction_id,omitempty"`
	RefundID        *string              `json:"refund_id,omitempty"`
	RefundAmount    float64              `json:"refund_amount,omitempty"`
	Metadata        map[string]string    `json:"metadata,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

// ConfirmResponse returns both sides of a reconciled payment.
type ConfirmResponse struct {
	Booking BookingResponse `json:"booking"`
	Payment PaymentResponse `json:"payment"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              payment.ID.String(),
		BookingID:       payment.BookingID.String(),
		UserID:          payment.UserID.String(),
		Amount:          payment.Amount,
		Currency:        payment.Currency,
		PaymentIntentID: payment.PaymentIntentID,
		Method:          payment.Method,
		Status:          payment.Status,
		TransactionID:   payment.TransactionID,
		RefundID:        payment.RefundID,
		RefundAmount:    payment.RefundAmount,
		Metadata:        payment.Metadata,
		CreatedAt:       payment.CreatedAt,
	}
}
