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

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `customer_id, account_id, full_name, company_name, phone_number, email_address, address, document_type, document_number, latitude, longitude, document_path, created_on, updated_on`

const maxCustomerIDQuery = `SELECT customer_id FROM customers WHERE account_id = $1
	ORDER BY length(customer_id) DESC, customer_id DESC LIMIT 1 FOR UPDATE`

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin customer create: %w", err)
	}
	defer tx.Rollback()

	last, err := maxSeqID(ctx, tx, maxCustomerIDQuery, c.AccountID)
	if err != nil {
		return err
	}
	ids, err := domain.NextSeqIDs(domain.CustomerIDPrefix, domain.SeqIDWidth, last, 1)
	if err != nil {
		return err
	}

	now := time.Now()
	query := `INSERT INTO customers (customer_id, account_id, full_name, company_name, phone_number, email_address, address, document_type, document_number, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.ExecContext(ctx, query,
		ids[0], c.AccountID, c.FullName, c.CompanyName, c.PhoneNumber, c.EmailAddress, c.Address,
		c.DocumentType, c.DocumentNumber, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Resource: "customer", Detail: fmt.Sprintf("a customer with %s %s already exists", c.DocumentType, c.DocumentNumber)}
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	c.CustomerID = ids[0]
	c.CreatedOn = now
	c.UpdatedOn = now
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, accountID int32, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE account_id = $1 AND customer_id = $2`
	c, err := scanCustomer(r.db.QueryRowContext(ctx, query, accountID, customerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "customer", ID: customerID}
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET full_name=$1, company_name=$2, phone_number=$3, email_address=$4, address=$5, document_type=$6, document_number=$7, updated_on=$8
	          WHERE account_id=$9 AND customer_id=$10`
	res, err := r.db.ExecContext(ctx, query,
		c.FullName, c.CompanyName, c.PhoneNumber, c.EmailAddress, c.Address, c.DocumentType, c.DocumentNumber, time.Now(),
		c.AccountID, c.CustomerID)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Resource: "customer", Detail: fmt.Sprintf("a customer with %s %s already exists", c.DocumentType, c.DocumentNumber)}
		}
		return err
	}
	return requireRow(res, "customer", c.CustomerID)
}

func (r *customerRepository) UpdateCoordinates(ctx context.Context, accountID int32, customerID string, lat, lon float64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE customers SET latitude=$1, longitude=$2, updated_on=$3 WHERE account_id=$4 AND customer_id=$5`,
		lat, lon, time.Now(), accountID, customerID)
	if err != nil {
		return err
	}
	return requireRow(res, "customer", customerID)
}

func (r *customerRepository) SetDocumentPath(ctx context.Context, accountID int32, customerID, url string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE customers SET document_path=$1, updated_on=$2 WHERE account_id=$3 AND customer_id=$4`,
		url, time.Now(), accountID, customerID)
	if err != nil {
		return err
	}
	return requireRow(res, "customer", customerID)
}

func (r *customerRepository) Delete(ctx context.Context, accountID int32, customerID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE account_id=$1 AND customer_id=$2`, accountID, customerID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.ReferentialIntegrityError{Resource: "customer", ID: customerID}
		}
		return err
	}
	return requireRow(res, "customer", customerID)
}

func (r *customerRepository) ListByAccount(ctx context.Context, accountID int32) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE account_id = $1
	          ORDER BY length(customer_id) ASC, customer_id ASC`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := row.Scan(&c.CustomerID, &c.AccountID, &c.FullName, &c.CompanyName, &c.PhoneNumber,
		&c.EmailAddress, &c.Address, &c.DocumentType, &c.DocumentNumber,
		&c.Latitude, &c.Longitude, &c.DocumentPath, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// requireRow converts a zero-row update/delete into a NotFoundError.
func requireRow(res sql.Result, resource, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &domain.NotFoundError{Resource: resource, ID: id}
	}
	return nil
}
