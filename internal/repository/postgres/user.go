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

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.UserAccount) error {
	query := `INSERT INTO users (username, password_hash, email, created_on) VALUES ($1, $2, $3, $4) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, u.Username, u.PasswordHash, u.Email, now).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Resource: "user", Detail: fmt.Sprintf("username %q is taken", u.Username)}
		}
		return err
	}
	u.CreatedOn = now
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.UserAccount, error) {
	u := &domain.UserAccount{}
	query := `SELECT id, username, password_hash, email, created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "user", ID: fmt.Sprintf("%d", id)}
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.UserAccount, error) {
	u := &domain.UserAccount{}
	query := `SELECT id, username, password_hash, email, created_on FROM users WHERE username ILIKE $1`
	err := r.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Resource: "user", ID: username}
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.UserAccount, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, username, password_hash, email, created_on FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.UserAccount
	for rows.Next() {
		var u domain.UserAccount
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.CreatedOn); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
