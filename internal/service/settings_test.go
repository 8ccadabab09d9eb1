package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"concrental-backend/internal/domain"
	"concrental-backend/internal/geo"
)

func TestUpdateFreightProfile(t *testing.T) {
	repo := new(mockSettingsRepository)
	svc := NewSettingsService(repo, nil, "Curitiba, Brazil")

	repo.On("UpdateFreightProfile", mock.Anything, mock.MatchedBy(func(p *domain.FreightProfile) bool {
		return p.AccountID == 1 && p.FuelConsumptionKmPerLiter.Equal(decimal.NewFromInt(8))
	})).Return(nil)

	profile, err := svc.UpdateFreightProfile(context.Background(), 1, UpdateFreightProfileRequest{
		FuelConsumptionKmPerLiter: decimal.NewFromInt(8),
		FuelCostPerLiter:          decimal.RequireFromString("6.10"),
	})
	require.NoError(t, err)
	assert.True(t, profile.FuelCostPerLiter.Equal(decimal.RequireFromString("6.10")))
}

func TestUpdateFreightProfile_RejectsNonPositive(t *testing.T) {
	repo := new(mockSettingsRepository)
	svc := NewSettingsService(repo, nil, "Curitiba, Brazil")

	_, err := svc.UpdateFreightProfile(context.Background(), 1, UpdateFreightProfileRequest{
		FuelConsumptionKmPerLiter: decimal.Zero,
		FuelCostPerLiter:          decimal.RequireFromString("6.10"),
	})
	var validation *domain.ValidationError
	assert.True(t, errors.As(err, &validation))
	repo.AssertNotCalled(t, "UpdateFreightProfile")
}

func TestAddOriginAddress_GeocodesFirst(t *testing.T) {
	repo := new(mockSettingsRepository)
	geocoder := new(mockGeocoder)
	svc := NewSettingsService(repo, geocoder, "Curitiba, Brazil")

	geocoder.On("Geocode", mock.Anything, "Av. Sete de Setembro 3000, Curitiba, Brazil").Return(geo.Coordinates{
		Latitude:  -25.44,
		Longitude: -49.28,
	}, nil)
	repo.On("AddOriginAddress", mock.Anything, mock.MatchedBy(func(a *domain.OriginAddress) bool {
		return a.Latitude == -25.44 && a.Name == "Depósito Central"
	})).Return(nil)

	addr, err := svc.AddOriginAddress(context.Background(), 1, AddOriginAddressRequest{
		Name:    "Depósito Central",
		Address: "Av. Sete de Setembro 3000",
	})
	require.NoError(t, err)
	assert.Equal(t, -25.44, addr.Latitude)
	repo.AssertExpectations(t)
}

func TestAddOriginAddress_GeocodeFailureBlocksSave(t *testing.T) {
	repo := new(mockSettingsRepository)
	geocoder := new(mockGeocoder)
	svc := NewSettingsService(repo, geocoder, "Curitiba, Brazil")

	geocoder.On("Geocode", mock.Anything, mock.Anything).Return(geo.Coordinates{},
		&domain.GeocodeFailedError{Address: "nowhere"})

	_, err := svc.AddOriginAddress(context.Background(), 1, AddOriginAddressRequest{
		Name:    "Depósito",
		Address: "nowhere",
	})
	var failed *domain.GeocodeFailedError
	assert.True(t, errors.As(err, &failed))
	repo.AssertNotCalled(t, "AddOriginAddress")
}
