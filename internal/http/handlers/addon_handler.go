// README: Add-on catalogue handler.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"roadready/internal/modules/addon"
	"roadready/internal/modules/pricing"
)

// AddonCatalogue is satisfied by *addon.Service.
type AddonCatalogue interface {
	List(ctx context.Context, testType pricing.TestType) ([]addon.Addon, error)
}

type AddonHandler struct {
	addons AddonCatalogue
}

func NewAddonHandler(svc AddonCatalogue) *AddonHandler {
	return &AddonHandler{addons: svc}
}

type addonResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	TestType    string `json:"test_type"`
	Price       int64  `json:"price"`
	DurationMin int    `json:"duration_min"`
}

func (h *AddonHandler) List(c *gin.Context) {
	addons, err := h.addons.List(c.Request.Context(), pricing.TestType(c.Query("test_type")))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]addonResp, 0, len(addons))
	for _, a := range addons {
		out = append(out, addonResp{
			ID:          string(a.ID),
			Name:        a.Name,
			Kind:        string(a.Kind),
			TestType:    string(a.TestType),
			Price:       a.Price,
			DurationMin: a.DurationMin,
		})
	}
	writeJSON(c, http.StatusOK, out)
}
