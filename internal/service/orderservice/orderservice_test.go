package orderservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/notify"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockPreOrderRepo, *MockAccountingRepo, *MockResponseRepo, *MockNotifier) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	preOrderRepo := NewMockPreOrderRepo(ctrl)
	accounting := NewMockAccountingRepo(ctrl)
	responses := NewMockResponseRepo(ctrl)
	notifier := NewMockNotifier(ctrl)

	service := New(repo, preOrderRepo, accounting, responses, notifier)
	defer ctrl.Finish()
	return service, repo, preOrderRepo, accounting, responses, notifier
}

func testOrder(id int, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:         id,
		OrderID:    "D-1337",
		Status:     status,
		StatusPaid: domain.OrderNotPaid,
		Info:       &domain.OrderInfo{Game: "WoW", Purchase: "Mythic+"},
		Price: &domain.OrderPrice{
			PriceDollar:        decimal.RequireFromString("100"),
			PriceBoosterDollar: decimal.RequireFromString("70"),
		},
	}
}

func TestCreateOrder(t *testing.T) {
	service, repo, _, _, _, notifier := NewMock(t)

	tests := []struct {
		name          string
		order         *domain.Order
		prepareMock   func(order *domain.Order)
		expectedError error
	}{
		{
			name:  "Creates order and notifies",
			order: &domain.Order{OrderID: "D-1337", Info: &domain.OrderInfo{Game: "WoW", Purchase: "Mythic+"}},
			prepareMock: func(order *domain.Order) {
				repo.EXPECT().FindByOrderID(context.Background(), "D-1337").Return(nil, nil)
				repo.EXPECT().Save(context.Background(), order).DoAndReturn(func(ctx context.Context, o *domain.Order) error {
					o.ID = 1
					return nil
				})
				notifier.EXPECT().Emit(notify.Event{
					Type:    notify.EventOrderCreated,
					OrderID: "D-1337",
					Text:    "WoW Mythic+",
				})
			},
		},
		{
			name:  "Duplicate order id",
			order: &domain.Order{OrderID: "D-1337"},
			prepareMock: func(order *domain.Order) {
				repo.EXPECT().FindByOrderID(context.Background(), "D-1337").Return(testOrder(1, domain.OrderStatusInProgress), nil)
			},
			expectedError: ErrOrderAlreadyExists,
		},
		{
			name:  "Lookup error surfaces",
			order: &domain.Order{OrderID: "D-1337"},
			prepareMock: func(order *domain.Order) {
				repo.EXPECT().FindByOrderID(context.Background(), "D-1337").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock(tt.order)

			created, err := service.CreateOrder(context.Background(), tt.order)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, created.ID)
				assert.Equal(t, domain.OrderStatusInProgress, created.Status)
				assert.Equal(t, domain.OrderNotPaid, created.StatusPaid)
			}
		})
	}
}

func TestSetStatus(t *testing.T) {
	service, repo, _, accounting, _, _ := NewMock(t)

	tests := []struct {
		name          string
		status        domain.OrderStatus
		prepareMock   func()
		expectedError error
		check         func(t *testing.T, order *domain.Order)
	}{
		{
			name:   "Completed stamps end date and closes assignments",
			status: domain.OrderStatusCompleted,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 1).Return(testOrder(1, domain.OrderStatusInProgress), nil)
				accounting.EXPECT().MarkCompletedByOrder(context.Background(), 1, gomock.Any()).Return(nil)
				repo.EXPECT().Update(context.Background(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, domain.OrderStatusCompleted, order.Status)
				assert.NotNil(t, order.EndDate)
			},
		},
		{
			name:   "Refund drops accounting rows",
			status: domain.OrderStatusRefund,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 1).Return(testOrder(1, domain.OrderStatusInProgress), nil)
				accounting.EXPECT().DeleteByOrderID(context.Background(), 1).Return(nil)
				repo.EXPECT().Update(context.Background(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, domain.OrderStatusRefund, order.Status)
				assert.Nil(t, order.EndDate)
			},
		},
		{
			name:   "Unknown order",
			status: domain.OrderStatusCompleted,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 1).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			order, err := service.SetStatus(context.Background(), 1, tt.status)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				tt.check(t, order)
			}
		})
	}
}

func TestCloseRequest(t *testing.T) {
	service, repo, _, accounting, _, notifier := NewMock(t)

	t.Run("Attaches screenshot and completes", func(t *testing.T) {
		repo.EXPECT().FindByID(context.Background(), 1).Return(testOrder(1, domain.OrderStatusInProgress), nil)
		repo.EXPECT().AddScreenshot(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, s *domain.Screenshot) error {
			assert.Equal(t, 1, s.OrderID)
			assert.Equal(t, "https://imgur.com/xyz", s.URL)
			return nil
		})
		// SetStatus re-reads the order
		repo.EXPECT().FindByID(context.Background(), 1).Return(testOrder(1, domain.OrderStatusInProgress), nil)
		accounting.EXPECT().MarkCompletedByOrder(context.Background(), 1, gomock.Any()).Return(nil)
		repo.EXPECT().Update(context.Background(), gomock.Any()).Return(nil)
		notifier.EXPECT().Emit(notify.Event{
			Type:     notify.EventOrderClosed,
			OrderID:  "D-1337",
			Username: "alice",
		})

		order, err := service.CloseRequest(context.Background(), 1, "alice", "https://imgur.com/xyz")

		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, order.Status)
	})

	t.Run("Order not in progress", func(t *testing.T) {
		repo.EXPECT().FindByID(context.Background(), 1).Return(testOrder(1, domain.OrderStatusCompleted), nil)

		order, err := service.CloseRequest(context.Background(), 1, "alice", "https://imgur.com/xyz")

		assert.ErrorIs(t, err, ErrOrderNotInProgress)
		assert.Nil(t, order)
	})

	t.Run("Unknown order", func(t *testing.T) {
		repo.EXPECT().FindByID(context.Background(), 99).Return(nil, nil)

		_, err := service.CloseRequest(context.Background(), 99, "alice", "https://imgur.com/xyz")

		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestCreatePreOrder(t *testing.T) {
	service, _, preOrderRepo, _, _, _ := NewMock(t)

	t.Run("Creates preorder", func(t *testing.T) {
		preOrderRepo.EXPECT().FindByOrderID(context.Background(), "P-1").Return(nil, nil)
		preOrderRepo.EXPECT().Save(context.Background(), gomock.Any()).Return(nil)

		preorder, err := service.CreatePreOrder(context.Background(), &domain.PreOrder{OrderID: "P-1"})

		assert.NoError(t, err)
		assert.NotNil(t, preorder)
	})

	t.Run("Duplicate preorder", func(t *testing.T) {
		preOrderRepo.EXPECT().FindByOrderID(context.Background(), "P-1").Return(&domain.PreOrder{OrderID: "P-1"}, nil)

		preorder, err := service.CreatePreOrder(context.Background(), &domain.PreOrder{OrderID: "P-1"})

		assert.ErrorIs(t, err, ErrOrderAlreadyExists)
		assert.Nil(t, preorder)
	})
}

func TestExpirePreOrders(t *testing.T) {
	service, repo, preOrderRepo, _, responses, _ := NewMock(t)

	t.Run("Deletes unanswered expired and returns them", func(t *testing.T) {
		expired := []domain.PreOrder{
			{ID: 1, OrderID: "P-1"},
			{ID: 2, OrderID: "P-2"},
		}
		preOrderRepo.EXPECT().FindExpired(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, before time.Time) ([]domain.PreOrder, error) {
			assert.True(t, before.Before(time.Now()))
			return expired, nil
		})
		responses.EXPECT().CountByPreOrder(context.Background(), 1).Return(0, nil)
		responses.EXPECT().CountByPreOrder(context.Background(), 2).Return(0, nil)
		repo.EXPECT().FindByOrderID(context.Background(), "P-1").Return(nil, nil)
		repo.EXPECT().FindByOrderID(context.Background(), "P-2").Return(nil, nil)
		preOrderRepo.EXPECT().Delete(context.Background(), 1).Return(nil)
		preOrderRepo.EXPECT().Delete(context.Background(), 2).Return(nil)

		result, err := service.ExpirePreOrders(context.Background(), 24*time.Hour)

		assert.NoError(t, err)
		assert.Equal(t, expired, result)
	})

	t.Run("Responded preorder survives the TTL", func(t *testing.T) {
		preOrderRepo.EXPECT().FindExpired(context.Background(), gomock.Any()).Return([]domain.PreOrder{
			{ID: 5, OrderID: "P-5", Spreadsheet: "SS", SheetID: "May", RowID: 7},
		}, nil)
		responses.EXPECT().CountByPreOrder(context.Background(), 5).Return(2, nil)

		result, err := service.ExpirePreOrders(context.Background(), 24*time.Hour)

		assert.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Claimed preorder is dropped without reporting its row", func(t *testing.T) {
		preOrderRepo.EXPECT().FindExpired(context.Background(), gomock.Any()).Return([]domain.PreOrder{
			{ID: 7, OrderID: "P-7", Spreadsheet: "SS", SheetID: "May", RowID: 7},
		}, nil)
		responses.EXPECT().CountByPreOrder(context.Background(), 7).Return(0, nil)
		repo.EXPECT().FindByOrderID(context.Background(), "P-7").Return(testOrder(3, domain.OrderStatusInProgress), nil)
		preOrderRepo.EXPECT().Delete(context.Background(), 7).Return(nil)

		result, err := service.ExpirePreOrders(context.Background(), 24*time.Hour)

		assert.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Nothing expired", func(t *testing.T) {
		preOrderRepo.EXPECT().FindExpired(context.Background(), gomock.Any()).Return(nil, nil)

		result, err := service.ExpirePreOrders(context.Background(), 24*time.Hour)

		assert.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Delete error surfaces", func(t *testing.T) {
		preOrderRepo.EXPECT().FindExpired(context.Background(), gomock.Any()).Return([]domain.PreOrder{{ID: 1, OrderID: "P-1"}}, nil)
		responses.EXPECT().CountByPreOrder(context.Background(), 1).Return(0, nil)
		repo.EXPECT().FindByOrderID(context.Background(), "P-1").Return(nil, nil)
		preOrderRepo.EXPECT().Delete(context.Background(), 1).Return(errors.New("database error"))

		result, err := service.ExpirePreOrders(context.Background(), 24*time.Hour)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestDeleteOrder(t *testing.T) {
	service, repo, _, _, _, _ := NewMock(t)

	t.Run("Deletes existing order", func(t *testing.T) {
		repo.EXPECT().FindByID(context.Background(), 1).Return(testOrder(1, domain.OrderStatusInProgress), nil)
		repo.EXPECT().Delete(context.Background(), 1).Return(nil)

		assert.NoError(t, service.DeleteOrder(context.Background(), 1))
	})

	t.Run("Unknown order", func(t *testing.T) {
		repo.EXPECT().FindByID(context.Background(), 99).Return(nil, nil)

		assert.ErrorIs(t, service.DeleteOrder(context.Background(), 99), ErrOrderNotFound)
	})
}
