package auth

import (
	"errors"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the access token payload
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTTokenManager issues HS256 access tokens whose subject is the username
type JWTTokenManager struct {
	secret       []byte
	issuer       string
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTTokenManager creates a token manager signing with secret
func NewJWTTokenManager(secret, issuer string, ttl time.Duration, timeProvider coreport.TimeProvider) *JWTTokenManager {
	return &JWTTokenManager{
		secret:       []byte(secret),
		issuer:       issuer,
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

var _ coreport.TokenManager = (*JWTTokenManager)(nil)

// Issue signs a token for principal
func (m *JWTTokenManager) Issue(principal coreport.Principal) (string, time.Time, error) {
	now := m.timeProvider.Now()
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		Role: principal.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.Username,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Verify checks signature, issuer and expiry; any failure is ErrInvalidCredentials
func (m *JWTTokenManager) Verify(token string) (coreport.Principal, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.timeProvider.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return coreport.Principal{}, fmt.Errorf("%w: token expired", errs.ErrInvalidCredentials)
		}
		return coreport.Principal{}, fmt.Errorf("%w: %v", errs.ErrInvalidCredentials, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return coreport.Principal{}, fmt.Errorf("%w: token has no subject", errs.ErrInvalidCredentials)
	}

	return coreport.Principal{Username: claims.Subject, Role: claims.Role}, nil
}
