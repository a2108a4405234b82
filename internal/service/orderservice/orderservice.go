package orderservice

import (
	"context"
	"errors"
	"time"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/notify"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindByOrderID(ctx context.Context, orderID string) (*domain.Order, error)
	FindBySheet(ctx context.Context, spreadsheet, sheetID string) ([]domain.Order, error)
	List(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error)
	Save(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id int) error
	AddScreenshot(ctx context.Context, s *domain.Screenshot) error
	FindScreenshots(ctx context.Context, orderID int) ([]domain.Screenshot, error)
}

type PreOrderRepo interface {
	FindByID(ctx context.Context, id int) (*domain.PreOrder, error)
	FindByOrderID(ctx context.Context, orderID string) (*domain.PreOrder, error)
	List(ctx context.Context) ([]domain.PreOrder, error)
	FindExpired(ctx context.Context, before time.Time) ([]domain.PreOrder, error)
	Save(ctx context.Context, preorder *domain.PreOrder) error
	Delete(ctx context.Context, id int) error
}

type AccountingRepo interface {
	DeleteByOrderID(ctx context.Context, orderID int) error
	MarkCompletedByOrder(ctx context.Context, orderID int, at time.Time) error
}

type ResponseRepo interface {
	CountByPreOrder(ctx context.Context, preOrderID int) (int, error)
}

type Notifier interface {
	Emit(event notify.Event)
}

type Service struct {
	repo         Repo
	preOrderRepo PreOrderRepo
	accounting   AccountingRepo
	responses    ResponseRepo
	notifier     Notifier
}

func New(repo Repo, preOrderRepo PreOrderRepo, accounting AccountingRepo, responses ResponseRepo, notifier Notifier) *Service {
	return &Service{
		repo:         repo,
		preOrderRepo: preOrderRepo,
		accounting:   accounting,
		responses:    responses,
		notifier:     notifier,
	}
}

var (
	ErrOrderAlreadyExists = errors.New("order already exists")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotInProgress = errors.New("order is not in progress")
	ErrPreOrderNotFound   = errors.New("preorder not found")
)

func (s *Service) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	existing, err := s.repo.FindByOrderID(ctx, order.OrderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("order already exists", zap.String("order_id", order.OrderID))
		return nil, ErrOrderAlreadyExists
	}

	if order.Status == "" {
		order.Status = domain.OrderStatusInProgress
	}
	if order.StatusPaid == "" {
		order.StatusPaid = domain.OrderNotPaid
	}
	if err := s.repo.Save(ctx, order); err != nil {
		zap.L().Error("can't save order: ", zap.Error(err))
		return nil, err
	}

	info := ""
	if order.Info != nil {
		info = order.Info.Game + " " + order.Info.Purchase
	}
	s.notifier.Emit(notify.Event{
		Type:    notify.EventOrderCreated,
		OrderID: order.OrderID,
		Text:    info,
	})
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) GetOrderByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	return s.repo.List(ctx, status)
}

func (s *Service) UpdateOrder(ctx context.Context, order *domain.Order) error {
	existing, err := s.repo.FindByID(ctx, order.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrOrderNotFound
	}
	return s.repo.Update(ctx, order)
}

func (s *Service) DeleteOrder(ctx context.Context, id int) error {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	return s.repo.Delete(ctx, id)
}

// SetStatus transitions an order. Refund drops the order's accounting
// rows; Completed stamps the end date and marks assignments completed.
func (s *Service) SetStatus(ctx context.Context, id int, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	now := time.Now()
	order.Status = status
	switch status {
	case domain.OrderStatusRefund:
		if err := s.accounting.DeleteByOrderID(ctx, order.ID); err != nil {
			return nil, err
		}
	case domain.OrderStatusCompleted:
		order.EndDate = &now
		if err := s.accounting.MarkCompletedByOrder(ctx, order.ID, now); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// CloseRequest is the booster-side "done" action: attach the screenshot
// and complete the order.
func (s *Service) CloseRequest(ctx context.Context, id int, username, screenshotURL string) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != domain.OrderStatusInProgress {
		return nil, ErrOrderNotInProgress
	}

	if err := s.repo.AddScreenshot(ctx, &domain.Screenshot{OrderID: order.ID, URL: screenshotURL}); err != nil {
		return nil, err
	}
	order, err = s.SetStatus(ctx, id, domain.OrderStatusCompleted)
	if err != nil {
		return nil, err
	}

	s.notifier.Emit(notify.Event{
		Type:     notify.EventOrderClosed,
		OrderID:  order.OrderID,
		Username: username,
	})
	return order, nil
}

func (s *Service) GetScreenshots(ctx context.Context, orderID int) ([]domain.Screenshot, error) {
	return s.repo.FindScreenshots(ctx, orderID)
}

func (s *Service) CreatePreOrder(ctx context.Context, preorder *domain.PreOrder) (*domain.PreOrder, error) {
	existing, err := s.preOrderRepo.FindByOrderID(ctx, preorder.OrderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrOrderAlreadyExists
	}
	if err := s.preOrderRepo.Save(ctx, preorder); err != nil {
		return nil, err
	}
	return preorder, nil
}

func (s *Service) GetPreOrder(ctx context.Context, id int) (*domain.PreOrder, error) {
	preorder, err := s.preOrderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if preorder == nil {
		return nil, ErrPreOrderNotFound
	}
	return preorder, nil
}

func (s *Service) ListPreOrders(ctx context.Context) ([]domain.PreOrder, error) {
	return s.preOrderRepo.List(ctx)
}

func (s *Service) DeletePreOrder(ctx context.Context, id int) error {
	preorder, err := s.preOrderRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if preorder == nil {
		return ErrPreOrderNotFound
	}
	return s.preOrderRepo.Delete(ctx, id)
}

// ExpirePreOrders deletes unanswered preorders older than the TTL and
// returns them so the sync worker can clear their sheet rows. A preorder
// with at least one booster response stays alive until an admin decides on
// it. A claimed preorder (an order with the same order id exists) is
// dropped silently: the order owns the sheet row now, so it must not be
// reported for clearing.
func (s *Service) ExpirePreOrders(ctx context.Context, ttl time.Duration) ([]domain.PreOrder, error) {
	aged, err := s.preOrderRepo.FindExpired(ctx, time.Now().Add(-ttl))
	if err != nil {
		return nil, err
	}

	var expired []domain.PreOrder
	for _, preorder := range aged {
		count, err := s.responses.CountByPreOrder(ctx, preorder.ID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			zap.L().Info("aged preorder has responses, keeping",
				zap.String("order_id", preorder.OrderID),
				zap.Int("responses", count),
			)
			continue
		}

		claimed, err := s.repo.FindByOrderID(ctx, preorder.OrderID)
		if err != nil {
			return nil, err
		}
		if err := s.preOrderRepo.Delete(ctx, preorder.ID); err != nil {
			zap.L().Error("can't delete expired preorder", zap.Int("id", preorder.ID), zap.Error(err))
			return nil, err
		}
		if claimed != nil {
			zap.L().Info("stale preorder removed for claimed order", zap.String("order_id", preorder.OrderID))
			continue
		}
		zap.L().Info("expired preorder deleted", zap.String("order_id", preorder.OrderID))
		expired = append(expired, preorder)
	}
	return expired, nil
}
