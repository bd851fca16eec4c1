package geo

import (
	"context"
	"errors"
	"fmt"

	"googlemaps.github.io/maps"
)

var ErrNotConfigured = errors.New("maps client not configured")

// LatLng is a geographic coordinate pair.
type LatLng struct {
	Lat float64
	Lng float64
}

// Candidate is a simplified geocoding result.
type Candidate struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formatted_address"`
}

// Service handles interactions with the Google Maps API. A Service built
// without an API key still answers distance queries via great-circle
// fallback, which keeps local development and tests off the network.
type Service struct {
	client *maps.Client
}

// NewService creates a Service with the given API key. An empty key yields a
// fallback-only service rather than an error.
func NewService(apiKey string) (*Service, error) {
	if apiKey == "" {
		return &Service{}, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Service{client: client}, nil
}

// SearchAddress geocodes a free-text address into candidate locations.
func (s *Service) SearchAddress(ctx context.Context, address string) ([]Candidate, error) {
	if s.client == nil {
		return nil, ErrNotConfigured
	}
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{
		Address: address,
		Region:  "ca", // Bias results to Canada
	})
	if err != nil {
		return nil, fmt.Errorf("maps api error: %w", err)
	}

	out := make([]Candidate, 0, len(results))
	for _, r := range results {
		out = append(out, Candidate{
			Latitude:         r.Geometry.Location.Lat,
			Longitude:        r.Geometry.Location.Lng,
			FormattedAddress: r.FormattedAddress,
		})
	}
	return out, nil
}

// DrivingDistanceKm returns the road distance between two points. When the
// Maps client is unavailable or finds no route, it falls back to the
// great-circle distance so pricing previews still work.
func (s *Service) DrivingDistanceKm(ctx context.Context, origin, dest LatLng) (float64, error) {
	if s.client == nil {
		return haversineKm(origin.Lat, origin.Lng, dest.Lat, dest.Lng), nil
	}
	resp, err := s.client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      []string{fmt.Sprintf("%f,%f", origin.Lat, origin.Lng)},
		Destinations: []string{fmt.Sprintf("%f,%f", dest.Lat, dest.Lng)},
		Mode:         maps.TravelModeDriving,
	})
	if err != nil {
		return 0, fmt.Errorf("maps api error: %w", err)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 ||
		resp.Rows[0].Elements[0].Status != "OK" {
		return haversineKm(origin.Lat, origin.Lng, dest.Lat, dest.Lng), nil
	}
	return float64(resp.Rows[0].Elements[0].Distance.Meters) / 1000.0, nil
}
