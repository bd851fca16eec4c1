// README: Booking lifecycle handlers (create, list, get, state transitions).
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roadready/internal/modules/booking"
	"roadready/internal/modules/pricing"
	"roadready/internal/types"
)

// BookingService is satisfied by *booking.Service.
type BookingService interface {
	Create(ctx context.Context, cmd booking.CreateCommand) (types.ID, error)
	Confirm(ctx context.Context, cmd booking.ConfirmCommand) error
	Complete(ctx context.Context, cmd booking.CompleteCommand) error
	Cancel(ctx context.Context, cmd booking.CancelCommand) error
	Get(ctx context.Context, id types.ID) (*booking.Booking, error)
	List(ctx context.Context, status booking.Status) ([]booking.Booking, error)
}

type BookingHandler struct {
	bookings BookingService
}

func NewBookingHandler(svc BookingService) *BookingHandler {
	return &BookingHandler{bookings: svc}
}

type createBookingReq struct {
	CustomerName  string   `json:"customer_name"`
	CustomerEmail string   `json:"customer_email"`
	PickupAddress string   `json:"pickup_address"`
	Quote         quoteReq `json:"quote"`
}

type bookingResp struct {
	ID             string        `json:"id"`
	CustomerName   string        `json:"customer_name"`
	CustomerEmail  string        `json:"customer_email"`
	TestType       string        `json:"test_type"`
	TestCenterID   string        `json:"test_center_id"`
	LocationOption string        `json:"location_option"`
	PickupAddress  string        `json:"pickup_address,omitempty"`
	DistanceKm     float64       `json:"distance_km"`
	AddonID        *string       `json:"addon_id,omitempty"`
	CouponCode     *string       `json:"coupon_code,omitempty"`
	Status         string        `json:"status"`
	Total          int64         `json:"total"`
	TotalDisplay   string        `json:"total_display"`
	Breakdown      breakdownResp `json:"breakdown"`
	RefundAmount   *int64        `json:"refund_amount,omitempty"`
	CancelReason   *string       `json:"cancel_reason,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	ConfirmedAt    *time.Time    `json:"confirmed_at,omitempty"`
	CompletedAt    *time.Time    `json:"completed_at,omitempty"`
	CancelledAt    *time.Time    `json:"cancelled_at,omitempty"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	id, err := h.bookings.Create(c.Request.Context(), booking.CreateCommand{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		PickupAddress: req.PickupAddress,
		Quote: booking.QuoteRequest{
			TestCenterID:   types.ID(req.Quote.TestCenterID),
			TestType:       pricing.TestType(req.Quote.TestType),
			LocationOption: pricing.LocationOption(req.Quote.LocationOption),
			DistanceKm:     req.Quote.DistanceKm,
			AddonID:        types.ID(req.Quote.AddonID),
			CouponCode:     req.Quote.CouponCode,
		},
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	b, err := h.bookings.Get(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, toBookingResp(b))
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.bookings.List(c.Request.Context(), booking.Status(c.Query("status")))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]bookingResp, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResp(&bookings[i]))
	}
	writeJSON(c, http.StatusOK, out)
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.bookings.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toBookingResp(b))
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	err := h.bookings.Confirm(c.Request.Context(), booking.ConfirmCommand{
		BookingID: types.ID(c.Param("id")),
	})
	h.respondTransition(c, err)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	err := h.bookings.Complete(c.Request.Context(), booking.CompleteCommand{
		BookingID: types.ID(c.Param("id")),
	})
	h.respondTransition(c, err)
}

type cancelBookingReq struct {
	Reason string `json:"reason"`
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	var req cancelBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	err := h.bookings.Cancel(c.Request.Context(), booking.CancelCommand{
		BookingID: types.ID(c.Param("id")),
		ActorType: "admin",
		Reason:    req.Reason,
	})
	h.respondTransition(c, err)
}

// respondTransition re-reads the booking after a successful transition so the
// admin UI gets the refreshed status and refund in one round trip.
func (h *BookingHandler) respondTransition(c *gin.Context, err error) {
	if err != nil {
		writeDomainError(c, err)
		return
	}
	b, err := h.bookings.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toBookingResp(b))
}

func toBookingResp(b *booking.Booking) bookingResp {
	resp := bookingResp{
		ID:             string(b.ID),
		CustomerName:   b.CustomerName,
		CustomerEmail:  b.CustomerEmail,
		TestType:       string(b.TestType),
		TestCenterID:   string(b.TestCenterID),
		LocationOption: string(b.LocationOption),
		PickupAddress:  b.PickupAddress,
		DistanceKm:     b.DistanceKm,
		Status:         string(b.Status),
		Total:          b.Total.Amount,
		TotalDisplay:   types.FormatDollars(b.Total.Amount),
		Breakdown:      toBreakdownResp(b.Breakdown),
		CancelReason:   b.CancelReason,
		CreatedAt:      b.CreatedAt,
		ConfirmedAt:    b.ConfirmedAt,
		CompletedAt:    b.CompletedAt,
		CancelledAt:    b.CancelledAt,
	}
	if b.AddonID != nil {
		s := string(*b.AddonID)
		resp.AddonID = &s
	}
	resp.CouponCode = b.CouponCode
	if b.RefundAmount != nil {
		amt := b.RefundAmount.Amount
		resp.RefundAmount = &amt
	}
	return resp
}
