package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"concrental-backend/internal/domain"
	"concrental-backend/internal/logger"
)

// NominatimClient resolves free-text addresses against a Nominatim endpoint.
// Calls are bounded by the configured timeout and never run inside a
// database transaction.
type NominatimClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

func NewNominatimClient(baseURL, userAgent string, timeout time.Duration) *NominatimClient {
	return &NominatimClient{
		baseURL:   baseURL,
		userAgent: userAgent,
		http:      &http.Client{Timeout: timeout},
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (c *NominatimClient) Geocode(ctx context.Context, address string) (Coordinates, error) {
	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return Coordinates{}, &domain.GeocodeFailedError{Address: address, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	logger.ExternalServiceCall("geocoding", "search", "address", address)
	resp, err := c.http.Do(req)
	if err != nil {
		logger.ExternalServiceResult("geocoding", "search", err)
		return Coordinates{}, &domain.GeocodeFailedError{Address: address, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("geocoder returned status %d", resp.StatusCode)
		logger.ExternalServiceResult("geocoding", "search", err)
		return Coordinates{}, &domain.ExternalServiceError{Service: "geocoding", Err: err}
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Coordinates{}, &domain.ExternalServiceError{Service: "geocoding", Err: err}
	}
	if len(results) == 0 {
		logger.ExternalServiceResult("geocoding", "search", nil, "matches", 0)
		return Coordinates{}, &domain.GeocodeFailedError{Address: address}
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Coordinates{}, &domain.ExternalServiceError{Service: "geocoding", Err: err}
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Coordinates{}, &domain.ExternalServiceError{Service: "geocoding", Err: err}
	}

	logger.ExternalServiceResult("geocoding", "search", nil, "lat", lat, "lon", lon)
	return Coordinates{Latitude: lat, Longitude: lon}, nil
}
