package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of an admin token.
const TokenTTL = 24 * time.Hour

// TokenClaims is the signed payload: the admin id plus registered claims.
type TokenClaims struct {
	AdminID uint `json:"id"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type TokenOption func(*TokenService)

// WithClock replaces time.Now for issuing and verifying.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) {
		s.now = now
	}
}

func NewTokenService(secret string, opts ...TokenOption) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}

	s := &TokenService{
		secret: []byte(secret),
		ttl:    TokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue signs a token for adminID that expires TokenTTL from now.
func (s *TokenService) Issue(adminID uint) (string, error) {
	const op = "services.TokenService.Issue"

	now := s.now()
	claims := &TokenClaims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(adminID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Verify checks signature, algorithm and expiry and returns the admin id the
// token was issued for. Every failure is reported as ErrUnauthenticated.
func (s *TokenService) Verify(tokenString string) (uint, error) {
	if tokenString == "" {
		return 0, ErrUnauthenticated
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	var claims TokenClaims
	token, err := parser.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	if claims.AdminID == 0 || claims.Subject != strconv.FormatUint(uint64(claims.AdminID), 10) {
		return 0, fmt.Errorf("%w: subject mismatch", ErrUnauthenticated)
	}
	return claims.AdminID, nil
}
