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

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

const equipmentColumns = `equipment_id, account_id, name, category, serial_number, acquisition_date, status, purchase_status, times_rented, created_on, updated_on`

const maxEquipmentIDQuery = `SELECT equipment_id FROM equipments WHERE account_id = $1
	ORDER BY length(equipment_id) DESC, equipment_id DESC LIMIT 1 FOR UPDATE`

func (r *equipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin equipment create: %w", err)
	}
	defer tx.Rollback()

	last, err := maxSeqID(ctx, tx, maxEquipmentIDQuery, eq.AccountID)
	if err != nil {
		return err
	}
	ids, err := domain.NextSeqIDs(domain.EquipmentIDPrefix, domain.SeqIDWidth, last, 1)
	if err != nil {
		return err
	}

	now := time.Now()
	query := `INSERT INTO equipments (equipment_id, account_id, name, category, serial_number, acquisition_date, status, purchase_status, times_rented, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.ExecContext(ctx, query,
		ids[0], eq.AccountID, eq.Name, eq.Category, eq.SerialNumber, eq.AcquisitionDate,
		domain.EquipmentStatusAvailable, eq.PurchaseStatus, 0, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateSerialError{SerialNumber: eq.SerialNumber}
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	eq.EquipmentID = ids[0]
	eq.Status = domain.EquipmentStatusAvailable
	eq.TimesRented = 0
	eq.CreatedOn = now
	eq.UpdatedOn = now
	return nil
}

func (r *equipmentRepository) GetByID(ctx context.Context, accountID int32, equipmentID string) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipments WHERE account_id = $1 AND equipment_id = $2`
	eq, err := scanEquipment(r.db.QueryRowContext(ctx, query, accountID, equipmentID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "equipment", ID: equipmentID}
	}
	if err != nil {
		return nil, err
	}
	return eq, nil
}

// Update deliberately leaves status out of the SET list: a rental completing
// between the caller's read and this write must keep its AVAILABLE flip.
func (r *equipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	query := `UPDATE equipments SET name=$1, category=$2, serial_number=$3, acquisition_date=$4, purchase_status=$5, updated_on=$6
	          WHERE account_id=$7 AND equipment_id=$8`
	res, err := r.db.ExecContext(ctx, query,
		eq.Name, eq.Category, eq.SerialNumber, eq.AcquisitionDate, eq.PurchaseStatus, time.Now(),
		eq.AccountID, eq.EquipmentID)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateSerialError{SerialNumber: eq.SerialNumber}
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &domain.NotFoundError{Resource: "equipment", ID: eq.EquipmentID}
	}
	return nil
}

func (r *equipmentRepository) SetStatus(ctx context.Context, accountID int32, equipmentID string, status domain.EquipmentStatus) error {
	query := `UPDATE equipments SET status=$1, updated_on=$2
	          WHERE account_id=$3 AND equipment_id=$4 AND status <> $5`
	res, err := r.db.ExecContext(ctx, query,
		status, time.Now(), accountID, equipmentID, domain.EquipmentStatusRented)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}

	// Zero rows: the unit is missing or rented out.
	eq, err := r.GetByID(ctx, accountID, equipmentID)
	if err != nil {
		return err
	}
	return &domain.ConflictError{
		Resource: "equipment",
		Detail:   fmt.Sprintf("%s is %s; complete its rental first", eq.EquipmentID, eq.Status),
	}
}

func (r *equipmentRepository) Delete(ctx context.Context, accountID int32, equipmentID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM equipments WHERE account_id=$1 AND equipment_id=$2`, accountID, equipmentID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.ReferentialIntegrityError{Resource: "equipment", ID: equipmentID}
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &domain.NotFoundError{Resource: "equipment", ID: equipmentID}
	}
	return nil
}

func (r *equipmentRepository) ListByAccount(ctx context.Context, accountID int32) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipments WHERE account_id = $1
	          ORDER BY length(equipment_id) ASC, equipment_id ASC`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Equipment
	for rows.Next() {
		eq, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *eq)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEquipment(row rowScanner) (*domain.Equipment, error) {
	eq := &domain.Equipment{}
	err := row.Scan(&eq.EquipmentID, &eq.AccountID, &eq.Name, &eq.Category, &eq.SerialNumber,
		&eq.AcquisitionDate, &eq.Status, &eq.PurchaseStatus, &eq.TimesRented, &eq.CreatedOn, &eq.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return eq, nil
}
