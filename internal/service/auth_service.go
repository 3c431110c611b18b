package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/auth"
	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const bcryptCost = 10

// AuthService handles authentication operations.
//
// Login policy: only the configured owner email self-registers (bootstrap on
// first login); any other unknown email is rejected. Accounts without a stored
// password may log in passwordless until one is set; once set, the password is
// required.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	GetUser(ctx context.Context, email string) (*model.User, error)
	SetPassword(ctx context.Context, email, password string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	ownerEmail string
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, ownerEmail string) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		ownerEmail: ownerEmail,
	}
}

// Login authenticates a user and returns a bearer token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err == errors.ErrUserNotFound {
		if email != s.ownerEmail {
			// Same rejection as a wrong password; unknown emails are not disclosed.
			return "", nil, errors.ErrInvalidCredentials
		}
		user, err = s.bootstrapOwner(ctx)
	}
	if err != nil {
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if user.PasswordSet {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			return "", nil, errors.ErrInvalidCredentials
		}
	}

	user, err = s.userRepo.Update(ctx, email, func(u *model.User) {
		now := time.Now()
		u.LastLogin = &now
	})
	if err != nil {
		return "", nil, fmt.Errorf("update last login: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// bootstrapOwner creates the distinguished owner account on first login.
func (s *authService) bootstrapOwner(ctx context.Context) (*model.User, error) {
	owner := &model.User{
		ID:                    uuid.NewString(),
		Email:                 s.ownerEmail,
		Role:                  auth.RoleOwner,
		PasswordSet:           false,
		RequirePasswordChange: true,
		CreatedAt:             time.Now(),
	}
	if err := s.userRepo.Create(ctx, owner); err != nil {
		return nil, fmt.Errorf("create owner: %w", err)
	}
	return owner, nil
}

// GetUser returns the user record for an authenticated identity.
func (s *authService) GetUser(ctx context.Context, email string) (*model.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}

// SetPassword stores a bcrypt hash for the user and clears the bootstrap flags.
func (s *authService) SetPassword(ctx context.Context, email, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = s.userRepo.Update(ctx, email, func(u *model.User) {
		u.PasswordHash = string(hashed)
		u.PasswordSet = true
		u.RequirePasswordChange = false
	})
	return err
}
