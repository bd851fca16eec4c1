// README: Quote handler — the pricing preview shown before a booking is created.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"roadready/internal/modules/booking"
	"roadready/internal/modules/pricing"
	"roadready/internal/types"
)

// Quoter is satisfied by *booking.Quoter.
type Quoter interface {
	Quote(ctx context.Context, req booking.QuoteRequest) (pricing.Breakdown, error)
}

type QuoteHandler struct {
	quoter Quoter
}

func NewQuoteHandler(q Quoter) *QuoteHandler {
	return &QuoteHandler{quoter: q}
}

type quoteReq struct {
	TestCenterID   string  `json:"test_center_id"`
	TestType       string  `json:"test_type"`
	LocationOption string  `json:"location_option"`
	DistanceKm     float64 `json:"distance_km"`
	AddonID        string  `json:"addon_id"`
	CouponCode     string  `json:"coupon_code"`
}

type breakdownLineResp struct {
	Label         string `json:"label"`
	Amount        int64  `json:"amount"`
	AmountDisplay string `json:"amount_display"`
	IsFree        bool   `json:"is_free"`
	IsDiscount    bool   `json:"is_discount"`
	IsTotal       bool   `json:"is_total"`
	Note          string `json:"note,omitempty"`
}

type breakdownResp struct {
	Lines    []breakdownLineResp `json:"lines"`
	Subtotal int64               `json:"subtotal"`
	Discount int64               `json:"discount"`
	Total    int64               `json:"total"`
	Currency string              `json:"currency"`
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	b, err := h.quoter.Quote(c.Request.Context(), booking.QuoteRequest{
		TestCenterID:   types.ID(req.TestCenterID),
		TestType:       pricing.TestType(req.TestType),
		LocationOption: pricing.LocationOption(req.LocationOption),
		DistanceKm:     req.DistanceKm,
		AddonID:        types.ID(req.AddonID),
		CouponCode:     req.CouponCode,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toBreakdownResp(b))
}

func toBreakdownResp(b pricing.Breakdown) breakdownResp {
	resp := breakdownResp{
		Lines:    make([]breakdownLineResp, 0, len(b.Lines)),
		Subtotal: b.Subtotal,
		Discount: b.Discount,
		Total:    b.Total,
		Currency: b.Currency,
	}
	for _, l := range b.Lines {
		resp.Lines = append(resp.Lines, breakdownLineResp{
			Label:         l.Label,
			Amount:        l.Amount,
			AmountDisplay: types.FormatDollars(l.Amount),
			IsFree:        l.IsFree,
			IsDiscount:    l.IsDiscount,
			IsTotal:       l.IsTotal,
			Note:          l.Note,
		})
	}
	return resp
}
