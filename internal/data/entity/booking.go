package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Valid reports whether s is one of the enumerated booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo enforces the booking lifecycle graph:
// pending -> confirmed|cancelled, confirmed -> completed|cancelled,
// cancelled and completed are terminal.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	if s == target {
		return false
	}
	switch s {
	case BookingStatusPending:
		return target == BookingStatusConfirmed || target == BookingStatusCancelled
	case BookingStatusConfirmed:
		return target == BookingStatusCompleted || target == BookingStatusCancelled
	}
	return false
}

type PaymentState string

const (
	PaymentStateUnpaid PaymentState = "unpaid"
	PaymentStatePaid   PaymentState = "paid"
)

type Booking struct {
	Base
	OrderID         string        `db:"order_id"`
	VehicleID       uuid.UUID     `db:"vehicle_id"`
	CustomerName    string        `db:"customer_name"`
	Email           string        `db:"email"`
	Phone           string        `db:"phone"`
	PickupDate      time.Time     `db:"pickup_date"`
	ReturnDate      time.Time     `db:"return_date"`
	TotalDays       int           `db:"total_days"`
	TotalPrice      float64       `db:"total_price"`
	Status          BookingStatus `db:"status"`
	PaymentStatus   PaymentState  `db:"payment_status"`
	PaymentIntentID *string       `db:"payment_intent_id"`
	Notes           *string       `db:"notes"`
}
