package auth

import (
	"fmt"
	"time"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	errs "github.com/fundr-ph/donation-ledger/internal/domain/error"
	authport "github.com/fundr-ph/donation-ledger/internal/domain/port/auth"
	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity inside a signed token
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService implements the TokenService port with HS256-signed JWTs
type JWTService struct {
	secret       []byte
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTService creates a token service. The secret must be non-empty; key
// management is the deployment's concern.
func NewJWTService(secret string, ttl time.Duration, timeProvider coreport.TimeProvider) authport.TokenService {
	if secret == "" {
		panic("jwt secret must not be empty")
	}
	return &JWTService{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

// Issue creates a signed token for the identity
func (s *JWTService) Issue(identity entity.Identity) (string, error) {
	now := s.timeProvider.Now()
	claims := Claims{
		Email: identity.Email,
		Role:  string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Parse validates a token and returns the identity it carries
func (s *JWTService) Parse(tokenString string) (entity.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.timeProvider.Now))
	if err != nil || !token.Valid {
		return entity.Identity{}, errs.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return entity.Identity{}, errs.ErrInvalidToken
	}

	return entity.Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   entity.Role(claims.Role),
	}, nil
}
