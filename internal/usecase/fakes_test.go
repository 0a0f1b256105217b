package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/pkg/payment"

	"github.com/google/uuid"
)

// In-memory repository fakes. No locking; tests are single-goroutine.

type fakeVehicleRepo struct {
	vehicles map[uuid.UUID]*entity.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[uuid.UUID]*entity.Vehicle)}
}

func (f *fakeVehicleRepo) Create(_ context.Context, vehicle *entity.Vehicle) error {
	f.vehicles[vehicle.ID] = vehicle
	return nil
}

func (f *fakeVehicleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	return f.vehicles[id], nil
}

func (f *fakeVehicleRepo) FindAll(_ context.Context, filter repository.VehicleFilter) ([]*entity.Vehicle, error) {
	var result []*entity.Vehicle
	for _, v := range f.vehicles {
		if filter.Category != nil && string(v.Category) != *filter.Category {
			continue
		}
		if filter.Available != nil && v.Available != *filter.Available {
			continue
		}
		if filter.MinPrice != nil && v.PricePerDay < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && v.PricePerDay > *filter.MaxPrice {
			continue
		}
		result = append(result, v)
	}
	return result, nil
}

func (f *fakeVehicleRepo) Update(_ context.Context, vehicle *entity.Vehicle) error {
	if _, ok := f.vehicles[vehicle.ID]; !ok {
		return fmt.Errorf("vehicle %s not found", vehicle.ID.String())
	}
	f.vehicles[vehicle.ID] = vehicle
	return nil
}

func (f *fakeVehicleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.vehicles[id]; !ok {
		return fmt.Errorf("vehicle %s not found", id.String())
	}
	delete(f.vehicles, id)
	return nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context, filter repository.BookingFilter) ([]*entity.Booking, error) {
	var result []*entity.Booking
	for _, b := range f.bookings {
		if filter.Email != nil && b.Email != *filter.Email {
			continue
		}
		if filter.Status != nil && string(b.Status) != *filter.Status {
			continue
		}
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeBookingRepo) Count(ctx context.Context, filter repository.BookingFilter) (int64, error) {
	all, _ := f.FindAll(ctx, filter)
	return int64(len(all)), nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	booking, ok := f.bookings[bookingID]
	if !ok {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	return nil
}

func (f *fakeBookingRepo) ConfirmPayment(_ context.Context, bookingID uuid.UUID, paymentIntentID string) (bool, error) {
	booking, ok := f.bookings[bookingID]
	if !ok {
		return false, nil
	}
	if booking.Status == entity.BookingStatusConfirmed {
		return false, nil
	}
	booking.Status = entity.BookingStatusConfirmed
	booking.PaymentStatus = entity.PaymentStatePaid
	booking.PaymentIntentID = &paymentIntentID
	booking.UpdatedAt = time.Now()
	return true, nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
	byIntent map[string]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		payments: make(map[uuid.UUID]*entity.Payment),
		byIntent: make(map[string]*entity.Payment),
	}
}

func (f *fakePaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	if _, exists := f.byIntent[p.PaymentIntentID]; exists {
		return fmt.Errorf("payment for intent %s: %w", p.PaymentIntentID, repository.ErrDuplicateIntent)
	}
	f.payments[p.ID] = p
	f.byIntent[p.PaymentIntentID] = p
	return nil
}

func (f *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	return f.payments[id], nil
}

func (f *fakePaymentRepo) FindByIntentID(_ context.Context, paymentIntentID string) (*entity.Payment, error) {
	return f.byIntent[paymentIntentID], nil
}

func (f *fakePaymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Payment, error) {
	var result []*entity.Payment
	for _, p := range f.payments {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return fmt.Errorf("user %s not found", user.ID.String())
	}
	f.users[user.ID] = user
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	if session, ok := f.sessions[token]; ok && session.RevokedAt == nil {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

type fakeContactRepo struct {
	contacts map[uuid.UUID]*entity.Contact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[uuid.UUID]*entity.Contact)}
}

func (f *fakeContactRepo) Create(_ context.Context, contact *entity.Contact) error {
	f.contacts[contact.ID] = contact
	return nil
}

func (f *fakeContactRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Contact, error) {
	return f.contacts[id], nil
}

func (f *fakeContactRepo) FindAll(_ context.Context, status *string) ([]*entity.Contact, error) {
	var result []*entity.Contact
	for _, c := range f.contacts {
		if status != nil && string(c.Status) != *status {
			continue
		}
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeContactRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.ContactStatus) error {
	contact, ok := f.contacts[id]
	if !ok {
		return fmt.Errorf("contact %s not found", id.String())
	}
	contact.Status = status
	return nil
}

// fakeProcessor scripts payment provider behavior per test.
type fakeProcessor struct {
	intents     map[string]*payment.Intent
	createCalls int
	createErr   error
	events      map[string]*payment.Event
}

func newFakeProcessor() *fakeProcessor {
	return &fakeProcessor{
		intents: make(map[string]*payment.Intent),
		events:  make(map[string]*payment.Event),
	}
}

func (f *fakeProcessor) CreateIntent(_ context.Context, amount int64, currency string, metadata map[string]string) (*payment.Intent, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	intent := &payment.Intent{
		ID:           fmt.Sprintf("pi_test_%d", f.createCalls),
		ClientSecret: fmt.Sprintf("pi_test_%d_secret", f.createCalls),
		Status:       "requires_payment_method",
		Amount:       amount,
		Currency:     currency,
		Metadata:     metadata,
	}
	f.intents[intent.ID] = intent
	return intent, nil
}

func (f *fakeProcessor) GetIntent(_ context.Context, id string) (*payment.Intent, error) {
	intent, ok := f.intents[id]
	if !ok {
		return nil, fmt.Errorf("no such payment_intent: %s", id)
	}
	return intent, nil
}

// VerifyWebhook treats the signature as a key into scripted events; any
// other signature fails verification.
func (f *fakeProcessor) VerifyWebhook(_ []byte, signature string) (*payment.Event, error) {
	event, ok := f.events[signature]
	if !ok {
		return nil, fmt.Errorf("%w: no signatures found matching the expected signature for payload", payment.ErrBadSignature)
	}
	return event, nil
}
