package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"concrental-backend/internal/domain"
	"concrental-backend/internal/repository"
)

type settingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetFreightProfile(ctx context.Context, accountID int32) (*domain.FreightProfile, error) {
	p := &domain.FreightProfile{AccountID: accountID}
	query := `SELECT fuel_consumption_km_per_liter, fuel_cost_per_liter, updated_on FROM user_settings WHERE account_id = $1`
	err := r.db.QueryRowContext(ctx, query, accountID).Scan(&p.FuelConsumptionKmPerLiter, &p.FuelCostPerLiter, &p.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultFreightProfile(accountID), nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *settingsRepository) UpdateFreightProfile(ctx context.Context, profile *domain.FreightProfile) error {
	query := `INSERT INTO user_settings (account_id, fuel_consumption_km_per_liter, fuel_cost_per_liter, updated_on)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (account_id) DO UPDATE SET fuel_consumption_km_per_liter=$2, fuel_cost_per_liter=$3, updated_on=$4`
	_, err := r.db.ExecContext(ctx, query,
		profile.AccountID, profile.FuelConsumptionKmPerLiter, profile.FuelCostPerLiter, time.Now())
	return err
}

func (r *settingsRepository) AddOriginAddress(ctx context.Context, addr *domain.OriginAddress) error {
	query := `INSERT INTO user_addresses (account_id, address_name, address, latitude, longitude, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		addr.AccountID, addr.Name, addr.Address, addr.Latitude, addr.Longitude, now).Scan(&addr.ID)
	if err != nil {
		return err
	}
	addr.CreatedOn = now
	return nil
}

func (r *settingsRepository) GetOriginAddress(ctx context.Context, accountID, id int32) (*domain.OriginAddress, error) {
	addr := &domain.OriginAddress{}
	query := `SELECT id, account_id, address_name, address, latitude, longitude, created_on FROM user_addresses WHERE account_id = $1 AND id = $2`
	err := r.db.QueryRowContext(ctx, query, accountID, id).Scan(
		&addr.ID, &addr.AccountID, &addr.Name, &addr.Address, &addr.Latitude, &addr.Longitude, &addr.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "origin address", ID: fmt.Sprintf("%d", id)}
	}
	if err != nil {
		return nil, err
	}
	return addr, nil
}

func (r *settingsRepository) ListOriginAddresses(ctx context.Context, accountID int32) ([]domain.OriginAddress, error) {
	query := `SELECT id, account_id, address_name, address, latitude, longitude, created_on FROM user_addresses WHERE account_id = $1 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.OriginAddress
	for rows.Next() {
		var addr domain.OriginAddress
		if err := rows.Scan(&addr.ID, &addr.AccountID, &addr.Name, &addr.Address, &addr.Latitude, &addr.Longitude, &addr.CreatedOn); err != nil {
			return nil, err
		}
		out = append(out, addr)
	}
	return out, rows.Err()
}

func (r *settingsRepository) DeleteOriginAddress(ctx context.Context, accountID, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM user_addresses WHERE account_id=$1 AND id=$2`, accountID, id)
	if err != nil {
		return err
	}
	return requireRow(res, "origin address", fmt.Sprintf("%d", id))
}
