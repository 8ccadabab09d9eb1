package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// AccountClaims carries the operator identity every authenticated request
// runs under.
type AccountClaims struct {
	AccountID int32  `json:"account_id"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	GenerateAccessToken(accountID int32, username string) (string, error)
	ValidateToken(tokenString string) (*AccountClaims, error)
}

type tokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *tokenManager) GenerateAccessToken(accountID int32, username string) (string, error) {
	now := time.Now()
	claims := AccountClaims{
		AccountID: accountID,
		Username:  username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(accountID)),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "concrental-backend",
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*AccountClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccountClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*AccountClaims); ok && token.Valid {
		if claims.AccountID == 0 && claims.Subject != "" {
			id, _ := strconv.Atoi(claims.Subject)
			claims.AccountID = int32(id)
		}
		return claims, nil
	}

	return nil, ErrInvalidToken
}
