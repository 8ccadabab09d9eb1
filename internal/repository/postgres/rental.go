package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"concrental-backend/internal/domain"
	"concrental-backend/internal/repository"

	"github.com/lib/pq"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `rental_id, account_id, customer_id, equipment_id, start_date, end_date, status, payment_status, valor, freight_cost, signed_contract_path, created_on, updated_on`

const maxRentalIDQuery = `SELECT rental_id FROM rentals WHERE account_id = $1
	ORDER BY length(rental_id) DESC, rental_id DESC LIMIT 1 FOR UPDATE`

// CreateBatch executes the whole booking as one serializable transaction:
// equipment availability check, contiguous ID allocation and the inserts
// either all commit or all roll back.
func (r *rentalRepository) CreateBatch(ctx context.Context, batch *domain.RentalBatch) ([]domain.Rental, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("begin booking: %w", err)
	}
	defer tx.Rollback()

	if err := lockAndCheckAvailable(ctx, tx, batch.AccountID, batch.EquipmentIDs); err != nil {
		return nil, err
	}

	last, err := maxSeqID(ctx, tx, maxRentalIDQuery, batch.AccountID)
	if err != nil {
		return nil, err
	}
	ids, err := domain.NextSeqIDs(domain.RentalIDPrefix, domain.SeqIDWidth, last, len(batch.EquipmentIDs))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	insert := `INSERT INTO rentals (rental_id, account_id, customer_id, equipment_id, start_date, end_date, status, payment_status, valor, freight_cost, created_on, updated_on)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	rentOut := `UPDATE equipments SET status=$1, times_rented=times_rented+1, updated_on=$2 WHERE account_id=$3 AND equipment_id=$4`

	rentals := make([]domain.Rental, 0, len(batch.EquipmentIDs))
	for i, equipmentID := range batch.EquipmentIDs {
		_, err = tx.ExecContext(ctx, insert,
			ids[i], batch.AccountID, batch.CustomerID, equipmentID,
			batch.StartDate, batch.EndDate, domain.RentalStatusActive, domain.PaymentStatusOpen,
			batch.ValorPerUnit, batch.FreightCost, now, now)
		if err != nil {
			if isForeignKeyViolation(err) {
				return nil, &domain.NotFoundError{Resource: "customer", ID: batch.CustomerID}
			}
			return nil, err
		}
		if _, err = tx.ExecContext(ctx, rentOut, domain.EquipmentStatusRented, now, batch.AccountID, equipmentID); err != nil {
			return nil, err
		}
		rentals = append(rentals, domain.Rental{
			RentalID:      ids[i],
			AccountID:     batch.AccountID,
			CustomerID:    batch.CustomerID,
			EquipmentID:   equipmentID,
			StartDate:     batch.StartDate,
			EndDate:       batch.EndDate,
			Status:        domain.RentalStatusActive,
			PaymentStatus: domain.PaymentStatusOpen,
			Valor:         batch.ValorPerUnit,
			FreightCost:   batch.FreightCost,
			CreatedOn:     now,
			UpdatedOn:     now,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return rentals, nil
}

// lockAndCheckAvailable locks the requested equipment rows for the duration
// of the transaction and rejects the batch if any unit is missing or not
// AVAILABLE.
func lockAndCheckAvailable(ctx context.Context, tx *sql.Tx, accountID int32, equipmentIDs []string) error {
	query := `SELECT equipment_id, status FROM equipments WHERE account_id = $1 AND equipment_id = ANY($2) FOR UPDATE`
	rows, err := tx.QueryContext(ctx, query, accountID, pq.Array(equipmentIDs))
	if err != nil {
		return err
	}
	defer rows.Close()

	statuses := make(map[string]domain.EquipmentStatus, len(equipmentIDs))
	for rows.Next() {
		var id string
		var status domain.EquipmentStatus
		if err := rows.Scan(&id, &status); err != nil {
			return err
		}
		statuses[id] = status
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, id := range equipmentIDs {
		status, ok := statuses[id]
		if !ok {
			return &domain.NotFoundError{Resource: "equipment", ID: id}
		}
		if status != domain.EquipmentStatusAvailable {
			return &domain.EquipmentUnavailableError{EquipmentID: id, Status: status}
		}
	}
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, accountID int32, rentalID string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE account_id = $1 AND rental_id = $2`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, accountID, rentalID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "rental", ID: rentalID}
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// Complete flips the rental to COMPLETED and its equipment back to AVAILABLE
// in one transaction. A rental that is already COMPLETED is a conflict, and
// the second call leaves all state untouched.
func (r *rentalRepository) Complete(ctx context.Context, accountID int32, rentalID string) (*domain.Rental, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("begin rental completion: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE account_id = $1 AND rental_id = $2 FOR UPDATE`
	rt, err := scanRental(tx.QueryRowContext(ctx, query, accountID, rentalID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "rental", ID: rentalID}
	}
	if err != nil {
		return nil, err
	}
	if rt.Status != domain.RentalStatusActive {
		return nil, &domain.ConflictError{Resource: "rental", Detail: fmt.Sprintf("rental %s is already completed", rentalID)}
	}

	now := time.Now()
	if _, err := tx.ExecContext(ctx,
		`UPDATE rentals SET status=$1, updated_on=$2 WHERE account_id=$3 AND rental_id=$4`,
		domain.RentalStatusCompleted, now, accountID, rentalID); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE equipments SET status=$1, updated_on=$2 WHERE account_id=$3 AND equipment_id=$4`,
		domain.EquipmentStatusAvailable, now, accountID, rt.EquipmentID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	rt.Status = domain.RentalStatusCompleted
	rt.UpdatedOn = now
	return rt, nil
}

func (r *rentalRepository) UpdatePaymentStatus(ctx context.Context, accountID int32, rentalID string, status domain.PaymentStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE rentals SET payment_status=$1, updated_on=$2 WHERE account_id=$3 AND rental_id=$4`,
		status, time.Now(), accountID, rentalID)
	if err != nil {
		return err
	}
	return requireRow(res, "rental", rentalID)
}

func (r *rentalRepository) UpdateEndDate(ctx context.Context, accountID int32, rentalID string, endDate time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE rentals SET end_date=$1, updated_on=$2 WHERE account_id=$3 AND rental_id=$4`,
		endDate, time.Now(), accountID, rentalID)
	if err != nil {
		return err
	}
	return requireRow(res, "rental", rentalID)
}

func (r *rentalRepository) SetSignedContractPath(ctx context.Context, accountID int32, rentalID, url string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE rentals SET signed_contract_path=$1, updated_on=$2 WHERE account_id=$3 AND rental_id=$4`,
		url, time.Now(), accountID, rentalID)
	if err != nil {
		return err
	}
	return requireRow(res, "rental", rentalID)
}

func (r *rentalRepository) ListByAccount(ctx context.Context, accountID int32, customerID string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE account_id = $1`
	args := []interface{}{accountID}
	if customerID != "" {
		query += ` AND customer_id = $2`
		args = append(args, customerID)
	}
	query += ` ORDER BY start_date DESC, rental_id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRentals(rows)
}

func (r *rentalRepository) ListOverdueByAccount(ctx context.Context, accountID int32, asOf time.Time) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE account_id = $1 AND status = $2 AND end_date < $3
	          ORDER BY end_date ASC`
	day := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())
	rows, err := r.db.QueryContext(ctx, query, accountID, domain.RentalStatusActive, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRentals(rows)
}

func collectRentals(rows *sql.Rows) ([]domain.Rental, error) {
	var out []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rt)
	}
	return out, rows.Err()
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := row.Scan(&rt.RentalID, &rt.AccountID, &rt.CustomerID, &rt.EquipmentID,
		&rt.StartDate, &rt.EndDate, &rt.Status, &rt.PaymentStatus,
		&rt.Valor, &rt.FreightCost, &rt.SignedContractPath, &rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return rt, nil
}
