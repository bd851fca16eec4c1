// README: Coupon verification handler.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"roadready/internal/modules/coupon"
)

// CouponVerifier is satisfied by *coupon.Service.
type CouponVerifier interface {
	Verify(ctx context.Context, code string) (*coupon.Coupon, error)
}

type CouponHandler struct {
	coupons CouponVerifier
}

func NewCouponHandler(svc CouponVerifier) *CouponHandler {
	return &CouponHandler{coupons: svc}
}

type verifyCouponReq struct {
	Code string `json:"code"`
}

type verifyCouponResp struct {
	Code           string `json:"code"`
	DiscountAmount int64  `json:"discount_amount"`
	Description    string `json:"description"`
}

func (h *CouponHandler) Verify(c *gin.Context) {
	var req verifyCouponReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	cp, err := h.coupons.Verify(c.Request.Context(), req.Code)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, verifyCouponResp{
		Code:           cp.Code,
		DiscountAmount: cp.DiscountAmount,
		Description:    cp.Description,
	})
}
