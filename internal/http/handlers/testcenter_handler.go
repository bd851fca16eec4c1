// README: Test center handlers for list/get.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"roadready/internal/modules/testcenter"
	"roadready/internal/types"
)

// TestCenterDirectory is satisfied by *testcenter.Service.
type TestCenterDirectory interface {
	List(ctx context.Context) ([]testcenter.TestCenter, error)
	Get(ctx context.Context, id types.ID) (*testcenter.TestCenter, error)
}

type TestCenterHandler struct {
	centers TestCenterDirectory
}

func NewTestCenterHandler(svc TestCenterDirectory) *TestCenterHandler {
	return &TestCenterHandler{centers: svc}
}

type testCenterResp struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Address          string `json:"address"`
	City             string `json:"city"`
	Province         string `json:"province"`
	BasePrice        int64  `json:"base_price"`
	BasePriceDisplay string `json:"base_price_display"`
}

func (h *TestCenterHandler) List(c *gin.Context) {
	centers, err := h.centers.List(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]testCenterResp, 0, len(centers))
	for i := range centers {
		out = append(out, toTestCenterResp(&centers[i]))
	}
	writeJSON(c, http.StatusOK, out)
}

func (h *TestCenterHandler) Get(c *gin.Context) {
	tc, err := h.centers.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toTestCenterResp(tc))
}

func toTestCenterResp(tc *testcenter.TestCenter) testCenterResp {
	return testCenterResp{
		ID:               string(tc.ID),
		Name:             tc.Name,
		Address:          tc.Address,
		City:             tc.City,
		Province:         tc.Province,
		BasePrice:        tc.BasePrice,
		BasePriceDisplay: types.FormatDollars(tc.BasePrice),
	}
}
