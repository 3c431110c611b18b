package repository

import (
	"context"
	"fmt"

	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/store"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	// Update applies mutate to the stored user and writes the collection back.
	Update(ctx context.Context, email string, mutate func(*model.User)) (*model.User, error)
}

type userRepository struct {
	store store.Store
}

// NewUserRepository builds a store-backed repository.
func NewUserRepository(s store.Store) UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	found, err := r.store.Read(ctx, store.CollectionUsers, &users)
	if err != nil {
		return nil, err
	}
	if !found {
		return []model.User{}, nil
	}
	return users, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, errors.ErrUserNotFound
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Email == user.Email {
			return fmt.Errorf("user %s already exists", user.Email)
		}
	}
	users = append(users, *user)
	return r.store.Replace(ctx, store.CollectionUsers, users)
}

func (r *userRepository) Update(ctx context.Context, email string, mutate func(*model.User)) (*model.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			mutate(&users[i])
			if err := r.store.Replace(ctx, store.CollectionUsers, users); err != nil {
				return nil, err
			}
			return &users[i], nil
		}
	}
	return nil, errors.ErrUserNotFound
}
