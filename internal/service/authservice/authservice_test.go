package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful registration",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
			},
			expectedUser: &domain.User{
				ID:           1,
				Login:        "testuser",
				PasswordHash: "hashedpassword",
				Role:         domain.RoleBooster,
				Telegram:     "@testuser",
			},
			expectedError: nil,
		},
		{
			name:     "User already exists",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(&domain.User{Login: "testuser"}, nil)
			},
			expectedUser:  nil,
			expectedError: ErrLoginTaken,
		},
		{
			name:     "Error finding user",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, errors.New("database error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("database error"),
		},
		{
			name:     "Error hashing password",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hash error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("hash error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.login, tt.password, "@testuser")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful authentication",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").
					Return(&domain.User{ID: 1, Login: "testuser", PasswordHash: "hashedpassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
		},
		{
			name:     "Unknown user",
			login:    "nobody",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "nobody").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			login:    "testuser",
			password: "wrongpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").
					Return(&domain.User{ID: 1, Login: "testuser", PasswordHash: "hashedpassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), tt.login, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.login, user.Login)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	t.Run("Delegates to the jwt service with the role string", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT(1, "admin", gomock.Any()).Return("signed-token", nil)

		token, err := service.GenerateToken(1, domain.RoleAdmin)

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", token)
	})

	t.Run("Signing error surfaces", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT(1, "booster", gomock.Any()).Return("", errors.New("sign error"))

		token, err := service.GenerateToken(1, domain.RoleBooster)

		assert.Error(t, err)
		assert.Empty(t, token)
	})
}

func TestVerifyUser(t *testing.T) {
	service, userRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Marks user verified",
			userID: 1,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(context.Background(), 1).Return(&domain.User{ID: 1}, nil)
				userRepo.EXPECT().SetVerified(context.Background(), 1, true).Return(nil)
			},
		},
		{
			name:   "Unknown user",
			userID: 99,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(context.Background(), 99).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.VerifyUser(context.Background(), tt.userID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetMaxOrders(t *testing.T) {
	service, userRepo, _, _ := NewMock(t)

	t.Run("Updates the limit", func(t *testing.T) {
		userRepo.EXPECT().FindByID(context.Background(), 1).Return(&domain.User{ID: 1}, nil)
		userRepo.EXPECT().SetMaxOrders(context.Background(), 1, 5).Return(nil)

		assert.NoError(t, service.SetMaxOrders(context.Background(), 1, 5))
	})

	t.Run("Unknown user", func(t *testing.T) {
		userRepo.EXPECT().FindByID(context.Background(), 99).Return(nil, nil)

		assert.ErrorIs(t, service.SetMaxOrders(context.Background(), 99, 5), ErrUserNotFound)
	})
}

func TestUpdatePayrolls(t *testing.T) {
	service, userRepo, _, _ := NewMock(t)

	payrolls := []domain.Payroll{{Bank: "Sberbank", Type: "card", Value: "1234 5678"}}

	userRepo.EXPECT().ReplacePayrolls(context.Background(), 1, payrolls).Return(nil)
	assert.NoError(t, service.UpdatePayrolls(context.Background(), 1, payrolls))

	userRepo.EXPECT().FindPayrolls(context.Background(), 1).Return(payrolls, nil)
	got, err := service.GetPayrolls(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, payrolls, got)
}
