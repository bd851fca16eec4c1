// README: Booking store backed by PostgreSQL.
package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"roadready/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, b *Booking) error {
	breakdown, err := json.Marshal(b.Breakdown)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
        INSERT INTO bookings (
            id, customer_name, customer_email, test_type, test_center_id,
            location_option, pickup_address, distance_km, addon_id, coupon_code,
            status, status_version, total, currency, breakdown, created_at
        ) VALUES (
            $1, $2, $3, $4, $5,
            $6, $7, $8, $9, $10,
            $11, $12, $13, $14, $15, $16
        )`,
		string(b.ID),
		b.CustomerName,
		b.CustomerEmail,
		string(b.TestType),
		string(b.TestCenterID),
		string(b.LocationOption),
		b.PickupAddress,
		b.DistanceKm,
		toStringPtr(b.AddonID),
		b.CouponCode,
		string(b.Status),
		b.StatusVersion,
		b.Total.Amount,
		b.Total.Currency,
		breakdown,
		b.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Booking, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, customer_name, customer_email, test_type, test_center_id,
               location_option, pickup_address, distance_km, addon_id, coupon_code,
               status, status_version, total, currency, breakdown, refund_amount,
               created_at, confirmed_at, completed_at, cancelled_at, cancellation_reason
        FROM bookings
        WHERE id = $1`, string(id),
	)

	var b Booking
	var addonID, couponCode, cancelReason sql.NullString
	var refundAmount sql.NullInt64
	var breakdown []byte
	var confirmedAt, completedAt, cancelledAt sql.NullTime

	err := row.Scan(
		&b.ID, &b.CustomerName, &b.CustomerEmail, &b.TestType, &b.TestCenterID,
		&b.LocationOption, &b.PickupAddress, &b.DistanceKm, &addonID, &couponCode,
		&b.Status, &b.StatusVersion, &b.Total.Amount, &b.Total.Currency, &breakdown, &refundAmount,
		&b.CreatedAt, &confirmedAt, &completedAt, &cancelledAt, &cancelReason,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(breakdown, &b.Breakdown); err != nil {
		return nil, err
	}
	if addonID.Valid {
		a := types.ID(addonID.String)
		b.AddonID = &a
	}
	if couponCode.Valid {
		b.CouponCode = &couponCode.String
	}
	if refundAmount.Valid {
		r := types.Money{Amount: refundAmount.Int64, Currency: b.Total.Currency}
		b.RefundAmount = &r
	}
	b.ConfirmedAt = toTimePtr(confirmedAt)
	b.CompletedAt = toTimePtr(completedAt)
	b.CancelledAt = toTimePtr(cancelledAt)
	if cancelReason.Valid {
		b.CancelReason = &cancelReason.String
	}
	return &b, nil
}

func (s *Store) List(ctx context.Context, status Status) ([]Booking, error) {
	query := `
        SELECT id, customer_name, customer_email, test_type, test_center_id,
               location_option, status, status_version, total, currency, created_at
        FROM bookings`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.CustomerName, &b.CustomerEmail, &b.TestType, &b.TestCenterID,
			&b.LocationOption, &b.Status, &b.StatusVersion, &b.Total.Amount, &b.Total.Currency,
			&b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateStatus applies an optimistic state transition: the row only changes
// when both the expected status and version still match.
func (s *Store) UpdateStatus(ctx context.Context, id types.ID, from, to Status, version int, refund *int64, reason *string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
        UPDATE bookings
        SET status = $1,
            status_version = status_version + 1,
            refund_amount = COALESCE($2, refund_amount),
            cancellation_reason = COALESCE($3, cancellation_reason),
            confirmed_at = CASE WHEN $1 = 'confirmed' THEN NOW() ELSE confirmed_at END,
            completed_at = CASE WHEN $1 = 'completed' THEN NOW() ELSE completed_at END,
            cancelled_at = CASE WHEN $1 = 'cancelled' THEN NOW() ELSE cancelled_at END
        WHERE id = $4 AND status = $5 AND status_version = $6`,
		string(to),
		refund,
		reason,
		string(id),
		string(from),
		version,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *Store) AppendEvent(ctx context.Context, e *Event) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO booking_state_events (
            booking_id, from_status, to_status, actor_type, created_at
        ) VALUES ($1, $2, $3, $4, $5)`,
		string(e.BookingID),
		string(e.FromStatus),
		string(e.ToStatus),
		e.ActorType,
		e.CreatedAt,
	)
	return err
}

func toStringPtr(v *types.ID) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func toTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
