package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"concrental-backend/internal/domain"
	"concrental-backend/internal/logger"
)

// OSRMClient asks an OSRM server for driving distances. It is optional:
// freight estimation falls back to geodesic distance when routing fails.
type OSRMClient struct {
	baseURL string
	http    *http.Client
}

func NewOSRMClient(baseURL string, timeout time.Duration) *OSRMClient {
	return &OSRMClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"` // meters
	} `json:"routes"`
}

// RouteDistanceKm returns the driving distance between two points in
// kilometers.
func (c *OSRMClient) RouteDistanceKm(ctx context.Context, origin, dest Coordinates) (float64, error) {
	// OSRM takes lon,lat pairs.
	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		c.baseURL, origin.Longitude, origin.Latitude, dest.Longitude, dest.Latitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, &domain.RouteUnavailableError{Err: err}
	}

	logger.ExternalServiceCall("routing", "route")
	resp, err := c.http.Do(req)
	if err != nil {
		logger.ExternalServiceResult("routing", "route", err)
		return 0, &domain.RouteUnavailableError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("routing service returned status %d", resp.StatusCode)
		logger.ExternalServiceResult("routing", "route", err)
		return 0, &domain.RouteUnavailableError{Err: err}
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, &domain.RouteUnavailableError{Err: err}
	}
	if body.Code != "Ok" || len(body.Routes) == 0 {
		return 0, &domain.RouteUnavailableError{Err: fmt.Errorf("no route found (code %s)", body.Code)}
	}

	km := body.Routes[0].Distance / 1000
	logger.ExternalServiceResult("routing", "route", nil, "distance_km", km)
	return km, nil
}
