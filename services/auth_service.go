package services

import (
	"context"
	"fmt"
	"sync"

	"c4knives-backend/models"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the username is unknown so that both
// login failure paths do the same bcrypt work.
var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("not-the-admin-password"), PasswordCost)
	return h
})

// AuthService issues tokens for valid credentials and resolves tokens back to admins.
type AuthService struct {
	admins *AdminService
	tokens *TokenService
}

func NewAuthService(admins *AdminService, tokens *TokenService) *AuthService {
	return &AuthService{admins: admins, tokens: tokens}
}

// Login checks username and password and returns a signed token for the admin.
// Unknown user and wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.Admin, error) {
	const op = "services.AuthService.Login"

	if username == "" || password == "" {
		return "", nil, newValidationError("", "username and password are required")
	}

	admin, err := s.admins.GetByUsername(ctx, username)
	if IsNotFound(err) {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(admin.ID)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, admin, nil
}

// Authenticate verifies token and confirms its subject is an existing admin.
func (s *AuthService) Authenticate(ctx context.Context, token string) (uint, error) {
	const op = "services.AuthService.Authenticate"

	id, err := s.tokens.Verify(token)
	if err != nil {
		return 0, err
	}

	if _, err := s.admins.GetByID(ctx, id); err != nil {
		if IsNotFound(err) {
			return 0, fmt.Errorf("%w: unknown admin %d", ErrUnauthenticated, id)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// Me returns the admin record for id.
func (s *AuthService) Me(ctx context.Context, id uint) (*models.Admin, error) {
	return s.admins.GetByID(ctx, id)
}
