package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodCard         PaymentMethod = "card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodCash         PaymentMethod = "cash"
)

// Payment is the durable record of a processor-confirmed charge. Amount is
// in major currency units, converted from the processor's minor units.
// PaymentIntentID is unique; a booking has at most one successful payment.
type Payment struct {
	Base
	BookingID       uuid.UUID         `db:"booking_id"`
	UserID          uuid.UUID         `db:"user_id"`
	Amount          float64           `db:"amount"`
	Currency        string            `db:"currency"`
	PaymentIntentID string            `db:"payment_intent_id"`
	Method          PaymentMethod     `db:"method"`
	Status          PaymentStatus     `db:"status"`
	TransactionID   *string           `db:"transaction_id"`
	RefundID        *string           `db:"refund_id"`
	RefundAmount    float64           `db:"refund_amount"`
	Metadata        map[string]string `db:"metadata"`
}
