package postgres

import (
	"context"
	"database/sql"
	"errors"

	"concrental-backend/internal/repository"

	"github.com/lib/pq"
)

// Store bundles all repositories over one *sql.DB.
type Store struct {
	db *sql.DB
	repository.EquipmentRepository
	repository.CustomerRepository
	repository.RentalRepository
	repository.SettingsRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		EquipmentRepository: NewEquipmentRepository(db),
		CustomerRepository:  NewCustomerRepository(db),
		RentalRepository:    NewRentalRepository(db),
		SettingsRepository:  NewSettingsRepository(db),
		UserRepository:      NewUserRepository(db),
	}
}

// Postgres constraint violation classes we translate into domain errors.
const (
	pqUniqueViolation     = pq.ErrorCode("23505")
	pqForeignKeyViolation = pq.ErrorCode("23503")
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation
}

// maxSeqID reads the highest sequential identifier of one account inside the
// caller's transaction. Ordering by length first keeps the comparison numeric
// once a sequence outgrows its zero padding.
func maxSeqID(ctx context.Context, tx *sql.Tx, query string, accountID int32) (string, error) {
	var last string
	err := tx.QueryRowContext(ctx, query, accountID).Scan(&last)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return last, nil
}
