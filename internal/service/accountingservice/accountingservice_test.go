package accountingservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockUserRepo, *MockOrderRepo, *MockNotifier, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	orderRepo := NewMockOrderRepo(ctrl)
	notifier := NewMockNotifier(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(repo, userRepo, orderRepo, notifier, txManager)
	defer ctrl.Finish()
	return service, repo, userRepo, orderRepo, notifier, txManager
}

func testOrder(payout string) *domain.Order {
	return &domain.Order{
		ID:      1,
		OrderID: "D-1337",
		Date:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Status:  domain.OrderStatusInProgress,
		Price: &domain.OrderPrice{
			OrderID:            1,
			PriceDollar:        decimal.RequireFromString("100"),
			PriceBoosterDollar: decimal.RequireFromString(payout),
		},
	}
}

func testUser(id int) *domain.User {
	return &domain.User{
		ID:         id,
		Login:      "alice",
		Role:       domain.RoleBooster,
		IsVerified: true,
		MaxOrders:  3,
	}
}

func TestAddBooster(t *testing.T) {
	service, repo, userRepo, orderRepo, _, _ := NewMock(t)

	tests := []struct {
		name            string
		orderID         int
		userID          int
		prepareMock     func()
		expectedDollars string
		expectedError   error
	}{
		{
			name:    "First booster gets the full payout",
			orderID: 1,
			userID:  2,
			prepareMock: func() {
				orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testOrder("70"), nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(testUser(2), nil)
				repo.EXPECT().FindByUserAndOrder(gomock.Any(), 2, 1).Return(nil, nil)
				repo.EXPECT().CountActiveByUser(gomock.Any(), 2).Return(0, nil)
				repo.EXPECT().FindByOrderID(gomock.Any(), 1).Return(nil, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedDollars: "70",
			expectedError:   nil,
		},
		{
			name:    "Second booster gets half without rebalancing the first",
			orderID: 1,
			userID:  3,
			prepareMock: func() {
				orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testOrder("70"), nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 3).Return(testUser(3), nil)
				repo.EXPECT().FindByUserAndOrder(gomock.Any(), 3, 1).Return(nil, nil)
				repo.EXPECT().CountActiveByUser(gomock.Any(), 3).Return(0, nil)
				repo.EXPECT().FindByOrderID(gomock.Any(), 1).Return([]domain.UserOrder{
					{ID: 10, UserID: 2, OrderID: 1, Dollars: decimal.RequireFromString("70")},
				}, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedDollars: "35",
			expectedError:   nil,
		},
		{
			name:    "Order not found",
			orderID: 99,
			userID:  2,
			prepareMock: func() {
				orderRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:    "Unverified user rejected",
			orderID: 1,
			userID:  2,
			prepareMock: func() {
				user := testUser(2)
				user.IsVerified = false
				orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testOrder("70"), nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(user, nil)
			},
			expectedError: ErrUserNotVerified,
		},
		{
			name:    "Already assigned",
			orderID: 1,
			userID:  2,
			prepareMock: func() {
				orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testOrder("70"), nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(testUser(2), nil)
				repo.EXPECT().FindByUserAndOrder(gomock.Any(), 2, 1).Return(&domain.UserOrder{ID: 10}, nil)
			},
			expectedError: ErrAlreadyAssigned,
		},
		{
			name:    "At max orders limit",
			orderID: 1,
			userID:  2,
			prepareMock: func() {
				orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testOrder("70"), nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(testUser(2), nil)
				repo.EXPECT().FindByUserAndOrder(gomock.Any(), 2, 1).Return(nil, nil)
				repo.EXPECT().CountActiveByUser(gomock.Any(), 2).Return(3, nil)
			},
			expectedError: ErrOrderLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			uo, err := service.AddBooster(context.Background(), tt.orderID, tt.userID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, uo)
			} else {
				assert.NoError(t, err)
				assert.True(t, uo.Dollars.Equal(decimal.RequireFromString(tt.expectedDollars)),
					"got %s", uo.Dollars)
			}
		})
	}
}

func TestAddBoosterWithPrice(t *testing.T) {
	service, repo, userRepo, orderRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		price         string
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Explicit price within the payout",
			price: "20",
			prepareMock: func() {
				orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testOrder("70"), nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(testUser(2), nil)
				repo.EXPECT().FindByUserAndOrder(gomock.Any(), 2, 1).Return(nil, nil)
				repo.EXPECT().CountActiveByUser(gomock.Any(), 2).Return(0, nil)
				repo.EXPECT().FindByOrderID(gomock.Any(), 1).Return([]domain.UserOrder{
					{ID: 10, UserID: 3, OrderID: 1, Dollars: decimal.RequireFromString("40")},
				}, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "Price over the unallocated payout",
			price: "40",
			prepareMock: func() {
				orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testOrder("70"), nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(testUser(2), nil)
				repo.EXPECT().FindByUserAndOrder(gomock.Any(), 2, 1).Return(nil, nil)
				repo.EXPECT().CountActiveByUser(gomock.Any(), 2).Return(0, nil)
				repo.EXPECT().FindByOrderID(gomock.Any(), 1).Return([]domain.UserOrder{
					{ID: 10, UserID: 3, OrderID: 1, Dollars: decimal.RequireFromString("40")},
				}, nil)
			},
			expectedError: ErrOverAllocated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			uo, err := service.AddBoosterWithPrice(context.Background(), 1, 2, decimal.RequireFromString(tt.price))
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, uo)
			} else {
				assert.NoError(t, err)
				assert.True(t, uo.Dollars.Equal(decimal.RequireFromString(tt.price)))
			}
		})
	}
}

func TestRemoveBooster(t *testing.T) {
	service, repo, _, _, _, txManager := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Departing share is split across the remaining boosters",
			prepareMock: func() {
				repo.EXPECT().FindByUserAndOrder(gomock.Any(), 2, 1).Return(&domain.UserOrder{
					ID: 10, UserID: 2, OrderID: 1, Dollars: decimal.RequireFromString("30"),
				}, nil)
				repo.EXPECT().FindByOrderID(gomock.Any(), 1).Return([]domain.UserOrder{
					{ID: 10, UserID: 2, Dollars: decimal.RequireFromString("30")},
					{ID: 11, UserID: 3, Dollars: decimal.RequireFromString("20")},
					{ID: 12, UserID: 4, Dollars: decimal.RequireFromString("20")},
				}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(ctx context.Context) error) error {
						return fn(ctx)
					})
				repo.EXPECT().Delete(gomock.Any(), 10).Return(nil)
				repo.EXPECT().AddDollarsByOrder(gomock.Any(), 1, gomock.Cond(func(d decimal.Decimal) bool { return d.Equal(decimal.RequireFromString("15")) })).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "Last booster leaves, nothing to redistribute",
			prepareMock: func() {
				repo.EXPECT().FindByUserAndOrder(gomock.Any(), 2, 1).Return(&domain.UserOrder{
					ID: 10, UserID: 2, OrderID: 1, Dollars: decimal.RequireFromString("70"),
				}, nil)
				repo.EXPECT().FindByOrderID(gomock.Any(), 1).Return([]domain.UserOrder{
					{ID: 10, UserID: 2, Dollars: decimal.RequireFromString("70")},
				}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(ctx context.Context) error) error {
						return fn(ctx)
					})
				repo.EXPECT().Delete(gomock.Any(), 10).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "Not assigned",
			prepareMock: func() {
				repo.EXPECT().FindByUserAndOrder(gomock.Any(), 2, 1).Return(nil, nil)
			},
			expectedError: ErrNotAssigned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.RemoveBooster(context.Background(), 1, 2)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateBoosterPrice(t *testing.T) {
	service, repo, _, _, _, _ := NewMock(t)

	oldOrder := testOrder("60")
	newOrder := testOrder("90")

	repo.EXPECT().FindByOrderID(gomock.Any(), 1).Return([]domain.UserOrder{
		{ID: 10, UserID: 2, Dollars: decimal.RequireFromString("30")},
		{ID: 11, UserID: 3, Dollars: decimal.RequireFromString("30")},
	}, nil)
	repo.EXPECT().AddDollarsByOrder(gomock.Any(), 1, gomock.Cond(func(d decimal.Decimal) bool { return d.Equal(decimal.RequireFromString("15")) })).Return(nil)

	err := service.UpdateBoosterPrice(context.Background(), oldOrder, newOrder)
	assert.NoError(t, err)
}

func TestUpdateBoosterPriceNoChange(t *testing.T) {
	service, repo, _, _, _, _ := NewMock(t)

	order := testOrder("60")
	repo.EXPECT().FindByOrderID(gomock.Any(), 1).Return([]domain.UserOrder{
		{ID: 10, UserID: 2, Dollars: decimal.RequireFromString("60")},
	}, nil)

	err := service.UpdateBoosterPrice(context.Background(), order, testOrder("60"))
	assert.NoError(t, err)
}

func TestPaidOrder(t *testing.T) {
	service, repo, userRepo, orderRepo, notifier, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Last unpaid payout flips the order to Paid",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.UserOrder{
					ID: 10, UserID: 2, OrderID: 1, Dollars: decimal.RequireFromString("35"),
				}, nil)
				repo.EXPECT().MarkPaid(gomock.Any(), 10, gomock.Any()).Return(nil)
				repo.EXPECT().CountUnpaidByOrder(gomock.Any(), 1).Return(0, nil)
				orderRepo.EXPECT().UpdateStatusPaid(gomock.Any(), 1, domain.OrderPaid).Return(nil)
				orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testOrder("70"), nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(testUser(2), nil)
				notifier.EXPECT().Emit(gomock.Any())
			},
			expectedError: nil,
		},
		{
			name: "Other payouts still unpaid, order status untouched",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.UserOrder{
					ID: 10, UserID: 2, OrderID: 1, Dollars: decimal.RequireFromString("35"),
				}, nil)
				repo.EXPECT().MarkPaid(gomock.Any(), 10, gomock.Any()).Return(nil)
				repo.EXPECT().CountUnpaidByOrder(gomock.Any(), 1).Return(1, nil)
				orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testOrder("70"), nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(testUser(2), nil)
				notifier.EXPECT().Emit(gomock.Any())
			},
			expectedError: nil,
		},
		{
			name: "Payment not found",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 10).Return(nil, nil)
			},
			expectedError: ErrPaymentNotFound,
		},
		{
			name: "Already paid",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.UserOrder{
					ID: 10, UserID: 2, OrderID: 1, Paid: true,
				}, nil)
			},
			expectedError: ErrAlreadyPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			uo, err := service.PaidOrder(context.Background(), 10)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, uo)
			} else {
				assert.NoError(t, err)
				assert.True(t, uo.Paid)
				assert.NotNil(t, uo.PaidAt)
			}
		})
	}
}

func TestAssignByName(t *testing.T) {
	service, repo, userRepo, orderRepo, _, _ := NewMock(t)

	t.Run("Unknown login", func(t *testing.T) {
		userRepo.EXPECT().FindByLogin(gomock.Any(), "ghost").Return(nil, nil)

		uo, err := service.AssignByName(context.Background(), 1, "ghost", nil)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, uo)
	})

	t.Run("Named price goes through the allocation guard", func(t *testing.T) {
		price := decimal.RequireFromString("25")
		userRepo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(testUser(2), nil)
		orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testOrder("70"), nil)
		userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(testUser(2), nil)
		repo.EXPECT().FindByUserAndOrder(gomock.Any(), 2, 1).Return(nil, nil)
		repo.EXPECT().CountActiveByUser(gomock.Any(), 2).Return(0, nil)
		repo.EXPECT().FindByOrderID(gomock.Any(), 1).Return(nil, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		uo, err := service.AssignByName(context.Background(), 1, "alice", &price)
		assert.NoError(t, err)
		assert.True(t, uo.Dollars.Equal(price))
	})
}

func TestUserReport(t *testing.T) {
	service, repo, userRepo, _, _, _ := NewMock(t)

	t.Run("Filter pinned to the requested login", func(t *testing.T) {
		userRepo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(testUser(2), nil)
		repo.EXPECT().Report(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, filter domain.ReportFilter) ([]domain.ReportRow, error) {
				assert.Equal(t, "alice", filter.Username)
				return []domain.ReportRow{{OrderID: "D-1337", Username: "alice"}}, nil
			})

		rows, err := service.UserReport(context.Background(), "alice", domain.ReportFilter{})
		assert.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("Unknown user", func(t *testing.T) {
		userRepo.EXPECT().FindByLogin(gomock.Any(), "ghost").Return(nil, nil)

		rows, err := service.UserReport(context.Background(), "ghost", domain.ReportFilter{})
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, rows)
	})

	t.Run("Repo error surfaces", func(t *testing.T) {
		userRepo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(testUser(2), nil)
		repo.EXPECT().Report(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

		rows, err := service.UserReport(context.Background(), "alice", domain.ReportFilter{})
		assert.Error(t, err)
		assert.Nil(t, rows)
	})
}
