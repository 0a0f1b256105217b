package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"
	"car-rental/pkg/payment"
	"car-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	CreateIntent(ctx context.Context, req *request.CreateIntentRequest) (*response.IntentResponse, error)
	ConfirmPayment(ctx context.Context, req *request.ConfirmPaymentRequest) (*response.ConfirmResponse, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	GetPaymentByID(ctx context.Context, paymentID string) (*response.PaymentResponse, error)
	GetUserPayments(ctx context.Context) ([]response.PaymentResponse, error)
}

type paymentService struct {
	repo      *repository.Repository
	processor payment.Processor
	timeout   time.Duration
	log       *zap.Logger
}

func NewPaymentService(repo *repository.Repository, processor payment.Processor, config *utils.Config, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:      repo,
		processor: processor,
		timeout:   time.Duration(config.Payment.TimeoutSeconds) * time.Second,
		log:       log.With(zap.String("service", "payment")),
	}
}

const defaultCurrency = "usd"

func (s *paymentService) CreateIntent(ctx context.Context, req *request.CreateIntentRequest) (*response.IntentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create intent validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID format %s", ErrValidation, req.BookingID)
	}

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: no authenticated user", ErrForbidden)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, req.BookingID)
	}

	if booking.PaymentStatus == entity.PaymentStatePaid {
		return nil, fmt.Errorf("%w: booking %s is already paid", ErrInvalidTransition, booking.OrderID)
	}
	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("%w: cannot collect payment for a %s booking", ErrInvalidTransition, booking.Status)
	}

	// The charge amount is the stored booking total; a client-sent amount
	// that disagrees is rejected, never charged.
	if math.Abs(req.Amount-booking.TotalPrice) > 0.005 {
		s.log.Warn("Intent amount does not match booking total",
			zap.String("booking_id", req.BookingID),
			zap.Float64("requested", req.Amount),
			zap.Float64("expected", booking.TotalPrice),
		)
		return nil, fmt.Errorf("%w: amount does not match booking total", ErrValidation)
	}

	cents := int64(math.Round(booking.TotalPrice * 100))
	metadata := map[string]string{
		"booking_id":     booking.ID.String(),
		"order_id":       booking.OrderID,
		"user_id":        userID.String(),
		"customer_email": booking.Email,
	}

	procCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	intent, err := s.processor.CreateIntent(procCtx, cents, defaultCurrency, metadata)
	if err != nil {
		s.log.Error("Failed to create payment intent",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
			zap.Int64("amount_cents", cents),
		)
		return nil, fmt.Errorf("%w: create intent: %v", ErrPaymentProcessor, err)
	}

	s.log.Info("Payment intent created",
		zap.String("booking_id", req.BookingID),
		zap.String("payment_intent_id", intent.ID),
		zap.Int64("amount_cents", cents),
	)

	return &response.IntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}

func (s *paymentService) ConfirmPayment(ctx context.Context, req *request.ConfirmPaymentRequest) (*response.ConfirmResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Confirm payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID format %s", ErrValidation, req.BookingID)
	}

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: no authenticated user", ErrForbidden)
	}

	// If this intent is already recorded, confirmation is a no-op replay.
	existing, err := s.repo.Payment.FindByIntentID(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("check existing payment: %w", err)
	}
	if existing != nil {
		s.log.Info("Payment already recorded, replaying result",
			zap.String("payment_intent_id", req.PaymentIntentID),
		)
		return s.confirmResponse(ctx, existing)
	}

	procCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// Re-query the processor; the client's claim of success is not trusted.
	intent, err := s.processor.GetIntent(procCtx, req.PaymentIntentID)
	if err != nil {
		s.log.Error("Failed to retrieve payment intent",
			zap.Error(err),
			zap.String("payment_intent_id", req.PaymentIntentID),
		)
		return nil, fmt.Errorf("%w: retrieve intent: %v", ErrPaymentProcessor, err)
	}

	if !intent.Succeeded() {
		return nil, fmt.Errorf("%w: intent status is %s", ErrPaymentNotCompleted, intent.Status)
	}

	if metaBookingID := intent.Metadata["booking_id"]; metaBookingID != "" && metaBookingID != req.BookingID {
		s.log.Warn("Intent metadata names a different booking",
			zap.String("payment_intent_id", req.PaymentIntentID),
			zap.String("requested_booking_id", req.BookingID),
			zap.String("intent_booking_id", metaBookingID),
		)
		return nil, fmt.Errorf("%w: intent does not belong to booking %s", ErrValidation, req.BookingID)
	}

	recorded, err := s.finalizePayment(ctx, bookingID, userID, intent)
	if err != nil {
		return nil, err
	}

	return s.confirmResponse(ctx, recorded)
}

func (s *paymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.processor.VerifyWebhook(payload, signature)
	if err != nil {
		if errors.Is(err, payment.ErrBadSignature) {
			s.log.Warn("Webhook signature verification failed", zap.Error(err))
			return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
		return fmt.Errorf("verify webhook: %w", err)
	}

	switch event.Type {
	case payment.EventIntentSucceeded:
		return s.handleIntentSucceeded(ctx, event.Intent)

	case payment.EventIntentFailed:
		s.log.Warn("Payment intent failed",
			zap.String("payment_intent_id", event.Intent.ID),
			zap.String("booking_id", event.Intent.Metadata["booking_id"]),
		)
		return nil

	default:
		s.log.Debug("Ignoring webhook event", zap.String("type", event.Type))
		return nil
	}
}

func (s *paymentService) handleIntentSucceeded(ctx context.Context, intent *payment.Intent) error {
	bookingID, err := uuid.Parse(intent.Metadata["booking_id"])
	if err != nil {
		s.log.Warn("Webhook intent carries no usable booking ID",
			zap.String("payment_intent_id", intent.ID),
		)
		return fmt.Errorf("%w: intent %s has no booking reference", ErrValidation, intent.ID)
	}

	userID, err := uuid.Parse(intent.Metadata["user_id"])
	if err != nil {
		return fmt.Errorf("%w: intent %s has no user reference", ErrValidation, intent.ID)
	}

	if _, err := s.finalizePayment(ctx, bookingID, userID, intent); err != nil {
		return err
	}

	return nil
}

// finalizePayment transitions the booking to confirmed/paid and records the
// payment. Both the synchronous confirmation endpoint and the webhook land
// here; the conditional booking update plus the unique intent index make a
// second arrival observe the first one's result instead of double-applying.
func (s *paymentService) finalizePayment(ctx context.Context, bookingID, userID uuid.UUID, intent *payment.Intent) (*entity.Payment, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, bookingID.String())
	}

	transitioned, err := s.repo.Booking.ConfirmPayment(ctx, bookingID, intent.ID)
	if err != nil {
		return nil, fmt.Errorf("confirm booking payment: %w", err)
	}
	if !transitioned {
		s.log.Info("Booking already confirmed, skipping transition",
			zap.String("booking_id", bookingID.String()),
			zap.String("payment_intent_id", intent.ID),
		)
	}

	// The processor reports a raw payment method reference, not our
	// categories; anything unrecognized is recorded as a card charge.
	method := entity.PaymentMethod(intent.PaymentMethod)
	switch method {
	case entity.MethodCard, entity.MethodBankTransfer, entity.MethodCash:
	default:
		method = entity.MethodCard
	}

	now := time.Now()
	record := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:       bookingID,
		UserID:          userID,
		Amount:          float64(intent.Amount) / 100,
		Currency:        strings.ToUpper(intent.Currency),
		PaymentIntentID: intent.ID,
		Method:          method,
		Status:          entity.PaymentStatusCompleted,
		Metadata:        intent.Metadata,
	}

	if err := s.repo.Payment.Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicateIntent) {
			// Lost the race against a concurrent confirmation; the winner's
			// record is the durable one.
			existing, findErr := s.repo.Payment.FindByIntentID(ctx, intent.ID)
			if findErr != nil {
				return nil, fmt.Errorf("find racing payment: %w", findErr)
			}
			if existing != nil {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("record payment: %w", err)
	}

	s.log.Info("Payment recorded",
		zap.String("payment_id", record.ID.String()),
		zap.String("booking_id", bookingID.String()),
		zap.String("payment_intent_id", intent.ID),
		zap.Float64("amount", record.Amount),
	)

	return record, nil
}

func (s *paymentService) confirmResponse(ctx context.Context, record *entity.Payment) (*response.ConfirmResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, record.BookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", ErrNotFound, record.BookingID.String())
	}

	vehicle, _ := s.repo.Vehicle.FindByID(ctx, booking.VehicleID)

	return &response.ConfirmResponse{
		Booking: response.BookingToResponse(booking, vehicle),
		Payment: response.PaymentToResponse(record),
	}, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*response.PaymentResponse, error) {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid payment ID format %s", ErrValidation, paymentID)
	}

	record, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get payment", zap.Error(err), zap.String("payment_id", paymentID))
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if record == nil {
		return nil, fmt.Errorf("%w: payment %s", ErrNotFound, paymentID)
	}

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: no authenticated user", ErrForbidden)
	}
	role, _ := utils.GetRoleFromContext(ctx)
	if record.UserID != userID && role != string(entity.RoleAdmin) {
		return nil, fmt.Errorf("%w: payment %s belongs to another user", ErrForbidden, paymentID)
	}

	resp := s.paymentWithBooking(ctx, record)
	return &resp, nil
}

func (s *paymentService) GetUserPayments(ctx context.Context) ([]response.PaymentResponse, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: no authenticated user", ErrForbidden)
	}

	records, err := s.repo.Payment.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list payments", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list payments: %w", err)
	}

	paymentResponses := make([]response.PaymentResponse, len(records))
	for i, record := range records {
		paymentResponses[i] = s.paymentWithBooking(ctx, record)
	}

	s.log.Info("Payment history retrieved",
		zap.String("user_id", userID.String()),
		zap.Int("count", len(records)),
	)

	return paymentResponses, nil
}

func (s *paymentService) paymentWithBooking(ctx context.Context, record *entity.Payment) response.PaymentResponse {
	resp := response.PaymentToResponse(record)

	booking, err := s.repo.Booking.FindByID(ctx, record.BookingID)
	if err != nil || booking == nil {
		return resp
	}

	vehicle, _ := s.repo.Vehicle.FindByID(ctx, booking.VehicleID)
	bookingResp := response.BookingToResponse(booking, vehicle)
	resp.Booking = &bookingResp

	return resp
}
