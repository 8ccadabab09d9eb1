package service

import (
	"context"
	"errors"

	"concrental-backend/internal/domain"
	"concrental-backend/internal/geo"
	"concrental-backend/internal/logger"
	"concrental-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// roundTripFactor covers delivery and pickup, two legs each: the truck
// drives out and back to drop the equipment off, then again to collect it.
const roundTripFactor = 4

type freightService struct {
	settings repository.SettingsRepository
	geocoder Geocoder
	router   Router
	locality string
	validate *validator.Validate
}

// NewFreightService builds the estimator. router may be nil, in which case
// every estimate uses geodesic distance.
func NewFreightService(settings repository.SettingsRepository, geocoder Geocoder, router Router, locality string) FreightService {
	return &freightService{
		settings: settings,
		geocoder: geocoder,
		router:   router,
		locality: locality,
		validate: validator.New(),
	}
}

func (s *freightService) Estimate(ctx context.Context, accountID int32, req FreightEstimateRequest) (*FreightEstimate, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &domain.ValidationError{Field: "freight", Reason: err.Error()}
	}

	profile, err := s.settings.GetFreightProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !profile.FuelConsumptionKmPerLiter.IsPositive() {
		return nil, &domain.ValidationError{Field: "fuel_consumption_km_per_liter", Reason: "must be greater than zero"}
	}

	origin, err := s.settings.GetOriginAddress(ctx, accountID, req.OriginAddressID)
	if err != nil {
		return nil, err
	}

	dest, err := s.geocoder.Geocode(ctx, req.DestinationAddress+", "+s.locality)
	if err != nil {
		return nil, err
	}

	originCoords := geo.Coordinates{Latitude: origin.Latitude, Longitude: origin.Longitude}
	oneWayKm, routed, err := s.oneWayDistance(ctx, originCoords, dest, req.RequireRoute)
	if err != nil {
		return nil, err
	}

	totalKm := oneWayKm * roundTripFactor
	cost := decimal.NewFromFloat(totalKm).
		Div(profile.FuelConsumptionKmPerLiter).
		Mul(profile.FuelCostPerLiter).
		Round(2)

	logger.Debug("freight estimated",
		"account_id", accountID,
		"one_way_km", oneWayKm,
		"total_km", totalKm,
		"routed", routed,
		"cost", cost.String())

	return &FreightEstimate{
		DistanceOneWayKm: oneWayKm,
		TotalDistanceKm:  totalKm,
		Cost:             cost,
		Routed:           routed,
	}, nil
}

// oneWayDistance prefers road distance when a router is configured, falling
// back to the geodesic figure unless the caller demanded a routed result.
func (s *freightService) oneWayDistance(ctx context.Context, origin, dest geo.Coordinates, requireRoute bool) (float64, bool, error) {
	if s.router != nil {
		km, err := s.router.RouteDistanceKm(ctx, origin, dest)
		if err == nil {
			return km, true, nil
		}
		if requireRoute {
			return 0, false, err
		}
		logger.Warn("routing unavailable, using geodesic distance", "error", err)
	} else if requireRoute {
		return 0, false, &domain.RouteUnavailableError{Err: errors.New("no routing service configured")}
	}
	return geo.GeodesicKm(origin, dest), false, nil
}
