// README: Booking service implements state transitions and persistence.
package booking

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"roadready/internal/modules/pricing"
	"roadready/internal/types"
)

type Service struct {
	store         *Store
	quoter        *Quoter
	refundPercent int
	currency      string
}

func NewService(store *Store, quoter *Quoter, refundPercent int, currency string) *Service {
	return &Service{store: store, quoter: quoter, refundPercent: refundPercent, currency: currency}
}

type CreateCommand struct {
	CustomerName  string
	CustomerEmail string
	Quote         QuoteRequest
	PickupAddress string
}

type ConfirmCommand struct {
	BookingID types.ID
}

type CompleteCommand struct {
	BookingID types.ID
}

type CancelCommand struct {
	BookingID types.ID
	ActorType string
	Reason    string
}

// Create prices the draft through the aggregator and persists the booking
// with the assembled breakdown snapshot.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (types.ID, error) {
	if strings.TrimSpace(cmd.CustomerName) == "" {
		return "", ErrBadRequest
	}
	if cmd.Quote.LocationOption == pricing.LocationPickup && strings.TrimSpace(cmd.PickupAddress) == "" {
		return "", ErrBadRequest
	}

	breakdown, err := s.quoter.Quote(ctx, cmd.Quote)
	if err != nil {
		return "", err
	}

	id := types.ID(uuid.NewString())
	now := time.Now().UTC()
	b := &Booking{
		ID:             id,
		CustomerName:   cmd.CustomerName,
		CustomerEmail:  cmd.CustomerEmail,
		TestType:       cmd.Quote.TestType,
		TestCenterID:   cmd.Quote.TestCenterID,
		LocationOption: cmd.Quote.LocationOption,
		PickupAddress:  cmd.PickupAddress,
		DistanceKm:     cmd.Quote.DistanceKm,
		Status:         StatusPending,
		StatusVersion:  0,
		Total:          types.Money{Amount: breakdown.Total, Currency: s.currency},
		Breakdown:      breakdown,
		CreatedAt:      now,
	}
	if cmd.Quote.AddonID != "" {
		aid := cmd.Quote.AddonID
		b.AddonID = &aid
	}
	if cmd.Quote.CouponCode != "" {
		code := cmd.Quote.CouponCode
		b.CouponCode = &code
	}

	if err := s.store.Create(ctx, b); err != nil {
		return "", err
	}
	_ = s.store.AppendEvent(ctx, &Event{
		BookingID:  id,
		FromStatus: StatusNone,
		ToStatus:   StatusPending,
		ActorType:  "admin",
		CreatedAt:  now,
	})
	return id, nil
}

func (s *Service) Confirm(ctx context.Context, cmd ConfirmCommand) error {
	return s.transition(ctx, cmd.BookingID, StatusConfirmed, "admin", nil, nil)
}

func (s *Service) Complete(ctx context.Context, cmd CompleteCommand) error {
	return s.transition(ctx, cmd.BookingID, StatusCompleted, "admin", nil, nil)
}

// Cancel transitions the booking to cancelled and records the refund owed: a
// fixed percentage of the booking total for confirmed bookings, the full
// total for bookings that were never confirmed.
func (s *Service) Cancel(ctx context.Context, cmd CancelCommand) error {
	b, err := s.store.Get(ctx, cmd.BookingID)
	if err != nil {
		return err
	}
	refund := b.Total.Amount
	if b.Status == StatusConfirmed {
		refund = percentOf(b.Total.Amount, s.refundPercent)
	}
	reason := cmd.Reason
	return s.transition(ctx, cmd.BookingID, StatusCancelled, cmd.ActorType, &refund, &reason)
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Booking, error) {
	if id == "" {
		return nil, ErrBadRequest
	}
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, status Status) ([]Booking, error) {
	return s.store.List(ctx, status)
}

func (s *Service) transition(ctx context.Context, id types.ID, to Status, actorType string, refund *int64, reason *string) error {
	b, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if !CanTransition(b.Status, to) {
		return ErrInvalidState
	}
	ok, err := s.store.UpdateStatus(ctx, b.ID, b.Status, to, b.StatusVersion, refund, reason)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConflict
	}
	_ = s.store.AppendEvent(ctx, &Event{
		BookingID:  b.ID,
		FromStatus: b.Status,
		ToStatus:   to,
		ActorType:  actorType,
		CreatedAt:  time.Now().UTC(),
	})
	return nil
}

// percentOf computes pct% of cents, rounded half-up.
func percentOf(cents int64, pct int) int64 {
	return int64(math.Floor(float64(cents)*float64(pct)/100.0 + 0.5))
}
