package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/auth"
	"portfolio/internal/errors"
	"portfolio/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, email string, mutate func(*model.User)) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	user := args.Get(0).(*model.User)
	mutate(user)
	return user, args.Error(1)
}

const testOwnerEmail = "owner@example.com"

func TestAuthService_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcryptCost)
	require.NoError(t, err)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
		checkUser     func(*testing.T, *model.User)
	}{
		{
			name:     "unknown email is rejected",
			email:    "stranger@example.com",
			password: "whatever",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "stranger@example.com").Return(nil, errors.ErrUserNotFound)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "owner email bootstraps on first login",
			email:    testOwnerEmail,
			password: "",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, testOwnerEmail).Return(nil, errors.ErrUserNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				m.On("Update", mock.Anything, testOwnerEmail).Return(&model.User{
					ID:                    "owner-id",
					Email:                 testOwnerEmail,
					Role:                  auth.RoleOwner,
					RequirePasswordChange: true,
				}, nil)
			},
			checkUser: func(t *testing.T, u *model.User) {
				assert.Equal(t, auth.RoleOwner, u.Role)
				assert.False(t, u.PasswordSet)
				assert.True(t, u.RequirePasswordChange)
				assert.NotNil(t, u.LastLogin)
			},
		},
		{
			name:     "passwordless login before password is set",
			email:    "editor@example.com",
			password: "",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "editor@example.com").Return(&model.User{
					ID:          "e-1",
					Email:       "editor@example.com",
					Role:        auth.RoleEditor,
					PasswordSet: false,
				}, nil)
				m.On("Update", mock.Anything, "editor@example.com").Return(&model.User{
					ID:    "e-1",
					Email: "editor@example.com",
					Role:  auth.RoleEditor,
				}, nil)
			},
			checkUser: func(t *testing.T, u *model.User) {
				assert.Equal(t, "editor@example.com", u.Email)
				assert.NotNil(t, u.LastLogin)
			},
		},
		{
			name:     "wrong password after password is set",
			email:    "editor@example.com",
			password: "wrong-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "editor@example.com").Return(&model.User{
					Email:        "editor@example.com",
					Role:         auth.RoleEditor,
					PasswordSet:  true,
					PasswordHash: string(hashed),
				}, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "empty password after password is set",
			email:    "editor@example.com",
			password: "",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "editor@example.com").Return(&model.User{
					Email:        "editor@example.com",
					Role:         auth.RoleEditor,
					PasswordSet:  true,
					PasswordHash: string(hashed),
				}, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "correct password after password is set",
			email:    "editor@example.com",
			password: "correct-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "editor@example.com").Return(&model.User{
					ID:           "e-1",
					Email:        "editor@example.com",
					Role:         auth.RoleEditor,
					PasswordSet:  true,
					PasswordHash: string(hashed),
				}, nil)
				m.On("Update", mock.Anything, "editor@example.com").Return(&model.User{
					ID:    "e-1",
					Email: "editor@example.com",
					Role:  auth.RoleEditor,
				}, nil)
			},
			checkUser: func(t *testing.T, u *model.User) {
				assert.Equal(t, "e-1", u.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, testOwnerEmail)

			token, user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
				require.NotNil(t, user)

				claims, err := jwtService.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, user.Email, claims.Email)
				assert.Equal(t, user.Role, claims.Role)

				if tt.checkUser != nil {
					tt.checkUser(t, user)
				}
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_SetPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	stored := &model.User{
		Email:                 "editor@example.com",
		PasswordSet:           false,
		RequirePasswordChange: true,
	}
	mockRepo.On("Update", mock.Anything, "editor@example.com").Return(stored, nil)

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), testOwnerEmail)
	require.NoError(t, service.SetPassword(context.Background(), "editor@example.com", "new-password"))

	assert.True(t, stored.PasswordSet)
	assert.False(t, stored.RequirePasswordChange)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-password")))

	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUpdatesLastLogin(t *testing.T) {
	mockRepo := new(MockUserRepository)
	stored := &model.User{
		ID:    "v-1",
		Email: "viewer@example.com",
		Role:  auth.RoleViewer,
	}
	mockRepo.On("FindByEmail", mock.Anything, "viewer@example.com").Return(stored, nil)
	mockRepo.On("Update", mock.Anything, "viewer@example.com").Return(stored, nil)

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), testOwnerEmail)
	before := time.Now()
	_, user, err := service.Login(context.Background(), "viewer@example.com", "")
	require.NoError(t, err)

	require.NotNil(t, user.LastLogin)
	assert.False(t, user.LastLogin.Before(before))
}
