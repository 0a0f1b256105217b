package repository

import (
	"context"
	"fmt"
	"strings"

	"car-rental/internal/data/entity"
	"car-rental/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingFilter narrows booking listings. Nil fields are not applied.
type BookingFilter struct {
	Email  *string
	Status *string
	Limit  int
	Offset int
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error)
	Count(ctx context.Context, filter BookingFilter) (int64, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error

	// ConfirmPayment is a conditional update: it marks the booking confirmed
	// and paid only when it is not already confirmed, so the synchronous
	// confirmation path and the webhook path cannot both apply side effects.
	// Returns true when this call performed the transition.
	ConfirmPayment(ctx context.Context, bookingID uuid.UUID, paymentIntentID string) (bool, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, order_id, vehicle_id, customer_name, email, phone, pickup_date, return_date,
	total_days, total_price, status, payment_status, payment_intent_id, notes, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.OrderID,
		&booking.VehicleID,
		&booking.CustomerName,
		&booking.Email,
		&booking.Phone,
		&booking.PickupDate,
		&booking.ReturnDate,
		&booking.TotalDays,
		&booking.TotalPrice,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.PaymentIntentID,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, order_id, vehicle_id, customer_name, email, phone, pickup_date, return_date,
			total_days, total_price, status, payment_status, payment_intent_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.OrderID,
		booking.VehicleID,
		booking.CustomerName,
		booking.Email,
		booking.Phone,
		booking.PickupDate,
		booking.ReturnDate,
		booking.TotalDays,
		booking.TotalPrice,
		booking.Status,
		booking.PaymentStatus,
		booking.PaymentIntentID,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("order_id", booking.OrderID),
			zap.String("vehicle_id", booking.VehicleID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.OrderID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func buildBookingFilter(filter BookingFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.Email != nil {
		args = append(args, *filter.Email)
		conditions = append(conditions, fmt.Sprintf("email = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *bookingRepository) FindAll(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error) {
	where, args := buildBookingFilter(filter)

	query := fmt.Sprintf(`SELECT %s FROM bookings%s ORDER BY created_at DESC`, bookingColumns, where)

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.Stringp("email", filter.Email),
			zap.Stringp("status", filter.Status),
		)
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context, filter BookingFilter) (int64, error) {
	where, args := buildBookingFilter(filter)
	query := `SELECT COUNT(*) FROM bookings` + where

	var count int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) ConfirmPayment(ctx context.Context, bookingID uuid.UUID, paymentIntentID string) (bool, error) {
	query := `
		UPDATE bookings
		SET status = $2, payment_status = $3, payment_intent_id = $4, updated_at = NOW()
		WHERE id = $1 AND status <> $2
	`

	result, err := r.db.Exec(ctx, query,
		bookingID,
		entity.BookingStatusConfirmed,
		entity.PaymentStatePaid,
		paymentIntentID,
	)

	if err != nil {
		r.log.Error("Failed to confirm booking payment",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("payment_intent_id", paymentIntentID),
		)
		return false, fmt.Errorf("confirm booking %s payment: %w", bookingID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}
