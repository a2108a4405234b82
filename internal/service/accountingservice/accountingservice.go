package accountingservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/notify"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/pg"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/validate"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.UserOrder, error)
	FindByUserAndOrder(ctx context.Context, userID, orderID int) (*domain.UserOrder, error)
	FindByOrderID(ctx context.Context, orderID int) ([]domain.UserOrder, error)
	Save(ctx context.Context, uo *domain.UserOrder) error
	UpdateDollars(ctx context.Context, id int, dollars decimal.Decimal) error
	AddDollarsByOrder(ctx context.Context, orderID int, delta decimal.Decimal) error
	MarkPaid(ctx context.Context, id int, at time.Time) error
	Delete(ctx context.Context, id int) error
	CountUnpaidByOrder(ctx context.Context, orderID int) (int, error)
	CountActiveByUser(ctx context.Context, userID int) (int, error)
	Report(ctx context.Context, filter domain.ReportFilter) ([]domain.ReportRow, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
}

type OrderRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	UpdateStatusPaid(ctx context.Context, id int, status domain.OrderPaidStatus) error
}

type Notifier interface {
	Emit(event notify.Event)
}

type Service struct {
	repo      Repo
	userRepo  UserRepo
	orderRepo OrderRepo
	notifier  Notifier
	txManager pg.TXManager
}

func New(repo Repo, userRepo UserRepo, orderRepo OrderRepo, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		userRepo:  userRepo,
		orderRepo: orderRepo,
		notifier:  notifier,
		txManager: txManager,
	}
}

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrUserNotVerified = errors.New("user is not verified")
	ErrOrderLimit      = errors.New("user is at max orders limit")
	ErrAlreadyAssigned = errors.New("user already assigned to order")
	ErrNotAssigned     = errors.New("user is not assigned to order")
	ErrOverAllocated   = errors.New("price exceeds unallocated booster payout")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrAlreadyPaid     = errors.New("payment already paid")
)

func (s *Service) checkAssignable(ctx context.Context, orderID, userID int) (*domain.Order, *domain.User, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, ErrOrderNotFound
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}
	if !user.IsVerified {
		return nil, nil, ErrUserNotVerified
	}

	existing, err := s.repo.FindByUserAndOrder(ctx, userID, orderID)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, ErrAlreadyAssigned
	}

	active, err := s.repo.CountActiveByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if active >= user.MaxOrders {
		return nil, nil, ErrOrderLimit
	}
	return order, user, nil
}

// AddBooster gives the new booster an equal fraction of the payout for the
// resulting headcount. Existing shares are left as they are: a second
// booster on a fully-allocated order gets payout/2 while the first keeps
// payout/1, so the shares sum above the payout until an explicit price
// edit. Kept as the documented production behavior.
func (s *Service) AddBooster(ctx context.Context, orderID, userID int) (*domain.UserOrder, error) {
	order, user, err := s.checkAssignable(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}

	shares, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	dollars := order.Price.PriceBoosterDollar.DivRound(decimal.NewFromInt(int64(len(shares)+1)), 4)
	uo := &domain.UserOrder{
		UserID:    userID,
		OrderID:   orderID,
		Dollars:   dollars,
		OrderDate: order.Date,
	}
	if err := s.repo.Save(ctx, uo); err != nil {
		return nil, err
	}

	zap.L().Info("booster assigned",
		zap.String("order_id", order.OrderID),
		zap.String("login", user.Login),
		zap.String("dollars", dollars.String()),
	)
	return uo, nil
}

// AddBoosterWithPrice assigns with an explicit share, guarded against
// over-allocating the order's booster payout.
func (s *Service) AddBoosterWithPrice(ctx context.Context, orderID, userID int, price decimal.Decimal) (*domain.UserOrder, error) {
	order, user, err := s.checkAssignable(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}

	shares, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	allocated := decimal.Zero
	for _, share := range shares {
		allocated = allocated.Add(share.Dollars)
	}
	if allocated.Add(price).GreaterThan(order.Price.PriceBoosterDollar) {
		return nil, ErrOverAllocated
	}

	uo := &domain.UserOrder{
		UserID:    userID,
		OrderID:   orderID,
		Dollars:   price,
		OrderDate: order.Date,
	}
	if err := s.repo.Save(ctx, uo); err != nil {
		return nil, err
	}

	zap.L().Info("booster assigned with price",
		zap.String("order_id", order.OrderID),
		zap.String("login", user.Login),
		zap.String("dollars", price.String()),
	)
	return uo, nil
}

// RemoveBooster deletes the assignment and splits the departing share
// equally across the remaining boosters.
func (s *Service) RemoveBooster(ctx context.Context, orderID, userID int) error {
	uo, err := s.repo.FindByUserAndOrder(ctx, userID, orderID)
	if err != nil {
		return err
	}
	if uo == nil {
		return ErrNotAssigned
	}

	shares, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return err
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, uo.ID); err != nil {
			return err
		}
		remaining := len(shares) - 1
		if remaining == 0 {
			return nil
		}
		delta := uo.Dollars.DivRound(decimal.NewFromInt(int64(remaining)), 4)
		return s.repo.AddDollarsByOrder(ctx, orderID, delta)
	})
}

// UpdateBoosterPrice applies a payout edit as an equal per-booster delta.
func (s *Service) UpdateBoosterPrice(ctx context.Context, oldOrder, newOrder *domain.Order) error {
	if oldOrder.Price == nil || newOrder.Price == nil {
		return nil
	}
	shares, err := s.repo.FindByOrderID(ctx, newOrder.ID)
	if err != nil {
		return err
	}
	if len(shares) == 0 {
		return nil
	}

	diff := newOrder.Price.PriceBoosterDollar.Sub(oldOrder.Price.PriceBoosterDollar)
	if diff.IsZero() {
		return nil
	}
	delta := diff.DivRound(decimal.NewFromInt(int64(len(shares))), 4)
	return s.repo.AddDollarsByOrder(ctx, newOrder.ID, delta)
}

// PaidOrder marks one assignment paid; the order flips to Paid when its
// last assignment does.
func (s *Service) PaidOrder(ctx context.Context, paymentID int) (*domain.UserOrder, error) {
	uo, err := s.repo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if uo == nil {
		return nil, ErrPaymentNotFound
	}
	if uo.Paid {
		return nil, ErrAlreadyPaid
	}

	now := time.Now()
	if err := s.repo.MarkPaid(ctx, uo.ID, now); err != nil {
		return nil, err
	}
	uo.Paid = true
	uo.PaidAt = &now

	unpaid, err := s.repo.CountUnpaidByOrder(ctx, uo.OrderID)
	if err != nil {
		return nil, err
	}
	if unpaid == 0 {
		if err := s.orderRepo.UpdateStatusPaid(ctx, uo.OrderID, domain.OrderPaid); err != nil {
			return nil, err
		}
	}

	order, err := s.orderRepo.FindByID(ctx, uo.OrderID)
	if err == nil && order != nil {
		user, uErr := s.userRepo.FindByID(ctx, uo.UserID)
		username := ""
		if uErr == nil && user != nil {
			username = user.Login
		}
		s.notifier.Emit(notify.Event{
			Type:     notify.EventBoosterPaid,
			OrderID:  order.OrderID,
			Username: username,
		})
	}
	return uo, nil
}

func (s *Service) GetBoosters(ctx context.Context, orderID int) ([]domain.UserOrder, error) {
	return s.repo.FindByOrderID(ctx, orderID)
}

// BoosterShares resolves assignments into named shares, the shape the
// spreadsheet booster cell carries.
func (s *Service) BoosterShares(ctx context.Context, orderID int) ([]validate.BoosterShare, error) {
	userOrders, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	shares := make([]validate.BoosterShare, 0, len(userOrders))
	for _, uo := range userOrders {
		user, err := s.userRepo.FindByID(ctx, uo.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			continue
		}
		shares = append(shares, validate.BoosterShare{
			Name:    user.Login,
			Dollars: uo.Dollars,
		})
	}
	return shares, nil
}

// AssignByName is the sheet-sync entry point: the booster cell names a
// user missing from the DB assignments.
func (s *Service) AssignByName(ctx context.Context, orderID int, username string, price *decimal.Decimal) (*domain.UserOrder, error) {
	user, err := s.userRepo.FindByLogin(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if price != nil {
		return s.AddBoosterWithPrice(ctx, orderID, user.ID, *price)
	}
	return s.AddBooster(ctx, orderID, user.ID)
}

func (s *Service) Report(ctx context.Context, filter domain.ReportFilter) ([]domain.ReportRow, error) {
	report, err := s.repo.Report(ctx, filter)
	if err != nil {
		zap.L().Error("failed to build report", zap.Error(err))
		return nil, err
	}
	return report, nil
}

func (s *Service) UserReport(ctx context.Context, username string, filter domain.ReportFilter) ([]domain.ReportRow, error) {
	user, err := s.userRepo.FindByLogin(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	filter.Username = username
	return s.Report(ctx, filter)
}
