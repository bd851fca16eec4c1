// README: Booking service tests (flow + invalid requests). DB-backed; skipped without a test DSN.
package booking

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"roadready/internal/modules/addon"
	"roadready/internal/modules/coupon"
	"roadready/internal/modules/pricing"
	"roadready/internal/modules/testcenter"
	"roadready/internal/types"
)

func TestBookingFlowHappyPath(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id := mustCreateBooking(t, svc, "Alice Zhang")
	assertStatus(t, svc, id, StatusPending)

	if err := svc.Confirm(ctx, ConfirmCommand{BookingID: id}); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	assertStatus(t, svc, id, StatusConfirmed)

	if err := svc.Complete(ctx, CompleteCommand{BookingID: id}); err != nil {
		t.Fatalf("complete: %v", err)
	}
	assertStatus(t, svc, id, StatusCompleted)
}

func TestBookingSnapshotsBreakdown(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id := mustCreateBooking(t, svc, "Priya Patel")
	b, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	// 5000 base + 5500 pickup at 60km
	if b.Total.Amount != 10500 {
		t.Errorf("total = %d, want 10500", b.Total.Amount)
	}
	if len(b.Breakdown.Lines) == 0 {
		t.Fatal("expected breakdown snapshot to round-trip through storage")
	}
	last := b.Breakdown.Lines[len(b.Breakdown.Lines)-1]
	if !last.IsTotal || last.Amount != b.Total.Amount {
		t.Errorf("snapshot total line %+v does not match stored total %d", last, b.Total.Amount)
	}
}

func TestBookingCancelRefunds(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Pending bookings refund in full.
	id := mustCreateBooking(t, svc, "Sam Chen")
	if err := svc.Cancel(ctx, CancelCommand{BookingID: id, ActorType: "admin", Reason: "customer request"}); err != nil {
		t.Fatalf("cancel pending: %v", err)
	}
	b, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if b.RefundAmount == nil || b.RefundAmount.Amount != b.Total.Amount {
		t.Errorf("pending cancel refund = %v, want full total %d", b.RefundAmount, b.Total.Amount)
	}

	// Confirmed bookings refund the configured percentage (80% here).
	id2 := mustCreateBooking(t, svc, "Sam Chen 2")
	if err := svc.Confirm(ctx, ConfirmCommand{BookingID: id2}); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if err := svc.Cancel(ctx, CancelCommand{BookingID: id2, ActorType: "admin", Reason: "customer request"}); err != nil {
		t.Fatalf("cancel confirmed: %v", err)
	}
	b2, err := svc.Get(ctx, id2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := int64(8400) // 80% of 10500
	if b2.RefundAmount == nil || b2.RefundAmount.Amount != want {
		t.Errorf("confirmed cancel refund = %v, want %d", b2.RefundAmount, want)
	}
}

func TestBookingInvalidTransitions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id := mustCreateBooking(t, svc, "Invalid Flow")

	if err := svc.Complete(ctx, CompleteCommand{BookingID: id}); err != ErrInvalidState {
		t.Fatalf("complete before confirm: expected ErrInvalidState, got %v", err)
	}
	if err := svc.Cancel(ctx, CancelCommand{BookingID: id, ActorType: "admin"}); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := svc.Confirm(ctx, ConfirmCommand{BookingID: id}); err != ErrInvalidState {
		t.Fatalf("confirm after cancel: expected ErrInvalidState, got %v", err)
	}
}

func TestConcurrentConfirmVsCancel(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	id := mustCreateBooking(t, svc, "Race Condition")

	var wg sync.WaitGroup
	errs := make(chan error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		errs <- svc.Confirm(ctx, ConfirmCommand{BookingID: id})
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		errs <- svc.Cancel(ctx, CancelCommand{BookingID: id, ActorType: "admin", Reason: "race"})
	}()

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil && err != ErrConflict && err != ErrInvalidState {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	b, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if b.Status != StatusConfirmed && b.Status != StatusCancelled {
		t.Fatalf("unexpected final status: %s", b.Status)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	quote := QuoteRequest{
		TestCenterID:   "tc_test",
		TestType:       pricing.TestTypeG2,
		LocationOption: pricing.LocationPickup,
		DistanceKm:     60,
	}

	if _, err := svc.Create(ctx, CreateCommand{CustomerName: "", Quote: quote, PickupAddress: "1 Main St"}); err != ErrBadRequest {
		t.Fatalf("missing customer name: expected ErrBadRequest, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateCommand{CustomerName: "No Address", Quote: quote}); err != ErrBadRequest {
		t.Fatalf("pickup without address: expected ErrBadRequest, got %v", err)
	}
}

func mustCreateBooking(t *testing.T, svc *Service, customer string) types.ID {
	t.Helper()
	id, err := svc.Create(context.Background(), CreateCommand{
		CustomerName:  customer,
		CustomerEmail: "test@example.com",
		Quote: QuoteRequest{
			TestCenterID:   "tc_test",
			TestType:       pricing.TestTypeG2,
			LocationOption: pricing.LocationPickup,
			DistanceKm:     60,
		},
		PickupAddress: "100 Queen St W, Toronto",
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return id
}

func assertStatus(t *testing.T, svc *Service, id types.ID, want Status) {
	t.Helper()
	b, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get booking: %v", err)
	}
	if b.Status != want {
		t.Fatalf("expected status %s, got %s", want, b.Status)
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := setupTestStore(t)
	engine := pricing.NewEngine(pricing.DefaultPickupRates(), "CAD")
	quoter := NewQuoter(engine,
		&stubTestCenters{centers: map[types.ID]*testcenter.TestCenter{
			"tc_test": {ID: "tc_test", Name: "Downsview", BasePrice: 5000, Active: true},
		}},
		&stubAddons{addons: map[types.ID]*addon.Addon{}},
		&stubCoupons{coupons: map[string]*coupon.Coupon{}},
	)
	return NewService(store, quoter, 80, "CAD")
}

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("RR_TEST_DSN")
	if dsn == "" {
		t.Skip("RR_TEST_DSN not set; skipping DB-backed booking tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := applyMigration(ctx, db); err != nil {
		t.Fatalf("apply migration: %v", err)
	}

	if _, err := db.Exec(ctx, "TRUNCATE TABLE booking_state_events, bookings"); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	if _, err := db.Exec(ctx, `
        INSERT INTO test_centers (id, name, base_price)
        VALUES ('tc_test', 'Downsview', 5000)
        ON CONFLICT (id) DO NOTHING`); err != nil {
		t.Fatalf("seed test center: %v", err)
	}

	return NewStore(db)
}

func applyMigration(ctx context.Context, db *pgxpool.Pool) error {
	root, err := repoRoot()
	if err != nil {
		return err
	}
	path := filepath.Join(root, "migrations", "0001_init.sql")
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cleaned := stripSQLComments(string(content))
	for _, stmt := range splitSQL(cleaned) {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for i := 0; i < 6; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func stripSQLComments(input string) string {
	var b strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		b.WriteString(scanner.Text())
		b.WriteString("\n")
	}
	return b.String()
}

func splitSQL(input string) []string {
	parts := strings.Split(input, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}
