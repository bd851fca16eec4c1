// README: Address search and distance handlers backed by the geo service.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"roadready/internal/geo"
)

// Geocoder is satisfied by *geo.Service.
type Geocoder interface {
	SearchAddress(ctx context.Context, address string) ([]geo.Candidate, error)
	DrivingDistanceKm(ctx context.Context, origin, dest geo.LatLng) (float64, error)
}

type GeoHandler struct {
	geo Geocoder
}

func NewGeoHandler(svc Geocoder) *GeoHandler {
	return &GeoHandler{geo: svc}
}

type addressSearchReq struct {
	Address string `json:"address"`
}

func (h *GeoHandler) SearchAddress(c *gin.Context) {
	var req addressSearchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Address) == "" {
		writeError(c, http.StatusBadRequest, "address is required")
		return
	}
	candidates, err := h.geo.SearchAddress(c.Request.Context(), req.Address)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"candidates": candidates})
}

type distanceReq struct {
	OriginLat float64 `json:"origin_lat"`
	OriginLng float64 `json:"origin_lng"`
	DestLat   float64 `json:"dest_lat"`
	DestLng   float64 `json:"dest_lng"`
}

func (h *GeoHandler) Distance(c *gin.Context) {
	var req distanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	km, err := h.geo.DrivingDistanceKm(c.Request.Context(),
		geo.LatLng{Lat: req.OriginLat, Lng: req.OriginLng},
		geo.LatLng{Lat: req.DestLat, Lng: req.DestLng},
	)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"distance_km": km})
}
