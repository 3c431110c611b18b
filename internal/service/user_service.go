package service

import (
	"context"

	"portfolio/internal/auth"
	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// UserService exposes owner-level user management.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.PublicUser, error)
	UpdateRole(ctx context.Context, email, role string) (*model.User, error)
}

type userService struct {
	userRepo   repository.UserRepository
	ownerEmail string
}

// NewUserService builds a UserService.
func NewUserService(userRepo repository.UserRepository, ownerEmail string) UserService {
	return &userService{userRepo: userRepo, ownerEmail: ownerEmail}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.PublicUser, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	public := make([]model.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	return public, nil
}

// UpdateRole changes a user's role. The owner account cannot be demoted
// through this path.
func (s *userService) UpdateRole(ctx context.Context, email, role string) (*model.User, error) {
	if !auth.ValidRole(role) {
		return nil, errors.ErrInvalidRole
	}
	if email == s.ownerEmail && role != auth.RoleOwner {
		return nil, errors.ErrOwnerRoleImmutable
	}
	return s.userRepo.Update(ctx, email, func(u *model.User) {
		u.Role = role
	})
}
