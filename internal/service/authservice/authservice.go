package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	SetVerified(ctx context.Context, id int, verified bool) error
	SetMaxOrders(ctx context.Context, id, maxOrders int) error
	FindPayrolls(ctx context.Context, userID int) ([]domain.Payroll, error)
	ReplacePayrolls(ctx context.Context, userID int, payrolls []domain.Payroll) error
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

var (
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

func (s *Service) Register(ctx context.Context, login, password, telegram string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
		Role:         domain.RoleBooster,
		Telegram:     telegram,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int, role domain.UserRole) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(userID, string(role), expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) GetUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *Service) VerifyUser(ctx context.Context, id int) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.SetVerified(ctx, id, true)
}

func (s *Service) SetMaxOrders(ctx context.Context, id, maxOrders int) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.SetMaxOrders(ctx, id, maxOrders)
}

func (s *Service) GetPayrolls(ctx context.Context, userID int) ([]domain.Payroll, error) {
	return s.userRepo.FindPayrolls(ctx, userID)
}

func (s *Service) UpdatePayrolls(ctx context.Context, userID int, payrolls []domain.Payroll) error {
	return s.userRepo.ReplacePayrolls(ctx, userID, payrolls)
}
