package service

import (
	"context"

	"concrental-backend/internal/domain"
	"concrental-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

type settingsService struct {
	repo     repository.SettingsRepository
	geocoder Geocoder
	locality string
	validate *validator.Validate
}

func NewSettingsService(repo repository.SettingsRepository, geocoder Geocoder, locality string) SettingsService {
	return &settingsService{
		repo:     repo,
		geocoder: geocoder,
		locality: locality,
		validate: validator.New(),
	}
}

func (s *settingsService) GetFreightProfile(ctx context.Context, accountID int32) (*domain.FreightProfile, error) {
	return s.repo.GetFreightProfile(ctx, accountID)
}

func (s *settingsService) UpdateFreightProfile(ctx context.Context, accountID int32, req UpdateFreightProfileRequest) (*domain.FreightProfile, error) {
	if !req.FuelConsumptionKmPerLiter.IsPositive() {
		return nil, &domain.ValidationError{Field: "fuel_consumption_km_per_liter", Reason: "must be greater than zero"}
	}
	if !req.FuelCostPerLiter.IsPositive() {
		return nil, &domain.ValidationError{Field: "fuel_cost_per_liter", Reason: "must be greater than zero"}
	}

	profile := &domain.FreightProfile{
		AccountID:                 accountID,
		FuelConsumptionKmPerLiter: req.FuelConsumptionKmPerLiter,
		FuelCostPerLiter:          req.FuelCostPerLiter,
	}
	if err := s.repo.UpdateFreightProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// AddOriginAddress geocodes the address before persisting it; freight
// estimation later reads the stored coordinates without another lookup.
func (s *settingsService) AddOriginAddress(ctx context.Context, accountID int32, req AddOriginAddressRequest) (*domain.OriginAddress, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &domain.ValidationError{Field: "origin_address", Reason: err.Error()}
	}

	coords, err := s.geocoder.Geocode(ctx, req.Address+", "+s.locality)
	if err != nil {
		return nil, err
	}

	addr := &domain.OriginAddress{
		AccountID: accountID,
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
	}
	if err := s.repo.AddOriginAddress(ctx, addr); err != nil {
		return nil, err
	}
	return addr, nil
}

func (s *settingsService) ListOriginAddresses(ctx context.Context, accountID int32) ([]domain.OriginAddress, error) {
	return s.repo.ListOriginAddresses(ctx, accountID)
}

func (s *settingsService) DeleteOriginAddress(ctx context.Context, accountID, id int32) error {
	return s.repo.DeleteOriginAddress(ctx, accountID, id)
}
