package service

import (
	"context"
	"errors"
	"strings"

	"concrental-backend/internal/domain"
	"concrental-backend/internal/logger"
	"concrental-backend/internal/repository"
	"concrental-backend/internal/security"
)

type authService struct {
	users  repository.UserRepository
	tokens security.TokenManager
}

func NewAuthService(users repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{users: users, tokens: tokens}
}

// Login verifies the password and returns a signed access token. The same
// error covers unknown usernames and wrong passwords.
func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.UserAccount, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return "", nil, &domain.ValidationError{Field: "credentials", Reason: "invalid username or password"}
		}
		return "", nil, err
	}
	if !security.CheckPassword(u.PasswordHash, password) {
		logger.Warn("failed login attempt", "username", username)
		return "", nil, &domain.ValidationError{Field: "credentials", Reason: "invalid username or password"}
	}

	token, err := s.tokens.GenerateAccessToken(u.ID, u.Username)
	if err != nil {
		return "", nil, err
	}
	logger.Info("operator logged in", "account_id", u.ID, "username", u.Username)
	return token, u, nil
}

func (s *authService) Register(ctx context.Context, username, password, email string) (*domain.UserAccount, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &domain.ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if len(password) < 8 {
		return nil, &domain.ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &domain.UserAccount{
		Username:     username,
		PasswordHash: hash,
	}
	if email != "" {
		u.Email = &email
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	logger.Info("operator account created", "account_id", u.ID, "username", u.Username)
	return u, nil
}
