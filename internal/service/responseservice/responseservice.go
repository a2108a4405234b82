package responseservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/notify"
)

type Repo interface {
	FindByOrderAndUser(ctx context.Context, orderID, userID int) (*domain.Response, error)
	FindByOrderID(ctx context.Context, orderID int) ([]domain.Response, error)
	FindApprovedByOrder(ctx context.Context, orderID int) (*domain.Response, error)
	Save(ctx context.Context, resp *domain.Response) error
	SetApproved(ctx context.Context, id int, approved bool) error
	CloseByOrder(ctx context.Context, orderID int, exceptUserID int) error
	FindByPreOrderAndUser(ctx context.Context, preOrderID, userID int) (*domain.PreOrderResponse, error)
	FindByPreOrderID(ctx context.Context, preOrderID int) ([]domain.PreOrderResponse, error)
	SaveForPreOrder(ctx context.Context, resp *domain.PreOrderResponse) error
}

type OrderRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
}

type PreOrderRepo interface {
	FindByID(ctx context.Context, id int) (*domain.PreOrder, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Accounting interface {
	AddBooster(ctx context.Context, orderID, userID int) (*domain.UserOrder, error)
	AddBoosterWithPrice(ctx context.Context, orderID, userID int, price decimal.Decimal) (*domain.UserOrder, error)
}

type Notifier interface {
	Emit(event notify.Event)
}

type Service struct {
	repo         Repo
	orderRepo    OrderRepo
	preOrderRepo PreOrderRepo
	userRepo     UserRepo
	accounting   Accounting
	notifier     Notifier
}

func New(repo Repo, orderRepo OrderRepo, preOrderRepo PreOrderRepo, userRepo UserRepo, accounting Accounting, notifier Notifier) *Service {
	return &Service{
		repo:         repo,
		orderRepo:    orderRepo,
		preOrderRepo: preOrderRepo,
		userRepo:     userRepo,
		accounting:   accounting,
		notifier:     notifier,
	}
}

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrPreOrderNotFound = errors.New("preorder not found")
	ErrOrderClosed      = errors.New("order is not open for responses")
	ErrAlreadyResponded = errors.New("user already responded to order")
	ErrAlreadyApproved  = errors.New("order already has an approved response")
	ErrResponseNotFound = errors.New("response not found")
)

func (s *Service) Apply(ctx context.Context, orderID, userID int, text string, price *decimal.Decimal) (*domain.Response, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != domain.OrderStatusInProgress {
		return nil, ErrOrderClosed
	}

	existing, err := s.repo.FindByOrderAndUser(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyResponded
	}

	resp := &domain.Response{
		OrderID: orderID,
		UserID:  userID,
		Text:    text,
		Price:   price,
	}
	if err := s.repo.Save(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *Service) List(ctx context.Context, orderID int) ([]domain.Response, error) {
	return s.repo.FindByOrderID(ctx, orderID)
}

// ApplyPreOrder records interest in a preorder. A responded preorder is
// protected from TTL expiry until it is promoted or rejected.
func (s *Service) ApplyPreOrder(ctx context.Context, preOrderID, userID int, text string, price *decimal.Decimal) (*domain.PreOrderResponse, error) {
	preorder, err := s.preOrderRepo.FindByID(ctx, preOrderID)
	if err != nil {
		return nil, err
	}
	if preorder == nil {
		return nil, ErrPreOrderNotFound
	}

	existing, err := s.repo.FindByPreOrderAndUser(ctx, preOrderID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyResponded
	}

	resp := &domain.PreOrderResponse{
		PreOrderID: preOrderID,
		UserID:     userID,
		Text:       text,
		Price:      price,
	}
	if err := s.repo.SaveForPreOrder(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *Service) ListPreOrder(ctx context.Context, preOrderID int) ([]domain.PreOrderResponse, error) {
	return s.repo.FindByPreOrderID(ctx, preOrderID)
}

// Approve picks the winning response: exactly one per order. The approval
// assigns the booster through accounting and declines everyone else. There
// is no rollback if a downstream step fails partway.
func (s *Service) Approve(ctx context.Context, orderID, userID int) (*domain.Response, error) {
	resp, err := s.repo.FindByOrderAndUser(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, ErrResponseNotFound
	}

	approved, err := s.repo.FindApprovedByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if approved != nil {
		return nil, ErrAlreadyApproved
	}

	if resp.Price != nil {
		_, err = s.accounting.AddBoosterWithPrice(ctx, orderID, userID, *resp.Price)
	} else {
		_, err = s.accounting.AddBooster(ctx, orderID, userID)
	}
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetApproved(ctx, resp.ID, true); err != nil {
		return nil, err
	}
	resp.Approved = true
	resp.Closed = true

	if err := s.repo.CloseByOrder(ctx, orderID, userID); err != nil {
		zap.L().Error("can't close competing responses", zap.Error(err))
	}

	order, oErr := s.orderRepo.FindByID(ctx, orderID)
	user, uErr := s.userRepo.FindByID(ctx, userID)
	if oErr == nil && uErr == nil && order != nil && user != nil {
		s.notifier.Emit(notify.Event{
			Type:     notify.EventResponseApproved,
			OrderID:  order.OrderID,
			Username: user.Login,
		})
		s.notifyDeclined(ctx, order, userID)
	}
	return resp, nil
}

func (s *Service) notifyDeclined(ctx context.Context, order *domain.Order, approvedUserID int) {
	responses, err := s.repo.FindByOrderID(ctx, order.ID)
	if err != nil {
		zap.L().Error("can't list responses for decline notices", zap.Error(err))
		return
	}
	for _, resp := range responses {
		if resp.UserID == approvedUserID {
			continue
		}
		user, err := s.userRepo.FindByID(ctx, resp.UserID)
		if err != nil || user == nil {
			continue
		}
		s.notifier.Emit(notify.Event{
			Type:     notify.EventResponseDeclined,
			OrderID:  order.OrderID,
			Username: user.Login,
		})
	}
}

func (s *Service) Decline(ctx context.Context, orderID, userID int) (*domain.Response, error) {
	resp, err := s.repo.FindByOrderAndUser(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, ErrResponseNotFound
	}

	if err := s.repo.SetApproved(ctx, resp.ID, false); err != nil {
		return nil, err
	}
	resp.Approved = false
	resp.Closed = true

	order, oErr := s.orderRepo.FindByID(ctx, orderID)
	user, uErr := s.userRepo.FindByID(ctx, userID)
	if oErr == nil && uErr == nil && order != nil && user != nil {
		s.notifier.Emit(notify.Event{
			Type:     notify.EventResponseDeclined,
			OrderID:  order.OrderID,
			Username: user.Login,
		})
	}
	return resp, nil
}
