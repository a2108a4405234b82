package sheets

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/validate"
)

func NewMock(t *testing.T) (*Syncer, *MockParserRepo, *MockOrderRepo, *MockOrderService, *MockAccounting, *MockSettingsProvider, *MockSheetsAPI) {
	ctrl := gomock.NewController(t)
	parserRepo := NewMockParserRepo(ctrl)
	orderRepo := NewMockOrderRepo(ctrl)
	orderService := NewMockOrderService(ctrl)
	accounting := NewMockAccounting(ctrl)
	settings := NewMockSettingsProvider(ctrl)
	api := NewMockSheetsAPI(ctrl)

	syncer := NewSyncer(parserRepo, orderRepo, orderService, accounting, settings, api, time.Minute)
	defer ctrl.Finish()
	return syncer, parserRepo, orderRepo, orderService, accounting, settings, api
}

func syncedOrder() *domain.Order {
	return &domain.Order{
		ID:          10,
		OrderID:     "D-1",
		Spreadsheet: "sheet-1",
		SheetID:     "Orders",
		RowID:       2,
		Date:        time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		Shop:        "DudeDuck",
		ShopOrderID: "SH-1",
		Status:      domain.OrderStatusInProgress,
		StatusPaid:  domain.OrderNotPaid,
		Info:        &domain.OrderInfo{Game: "WoW"},
		Price: &domain.OrderPrice{
			PriceDollar:        decimal.RequireFromString("100"),
			PriceBoosterDollar: decimal.RequireFromString("70"),
		},
	}
}

func TestRunOnceRoutesNewRows(t *testing.T) {
	syncer, parserRepo, orderRepo, orderService, _, settings, api := NewMock(t)

	parserRepo.EXPECT().List(context.Background()).Return([]domain.SheetParser{*testParser()}, nil)
	api.EXPECT().ReadRows(context.Background(), "sheet-1", "Orders", 2).Return([][]any{
		{"D-1", "01.05.2024 10:30:00", "DudeDuck", "SH-1", "WoW", "100", "70", "in progress"},
		{"P-1", "02.05.2024", "", "", "Apex", "50", "35"},
	}, nil)
	orderRepo.EXPECT().FindBySheet(context.Background(), "sheet-1", "Orders").Return(nil, nil)

	orderService.EXPECT().CreateOrder(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, order *domain.Order) (*domain.Order, error) {
		assert.Equal(t, "D-1", order.OrderID)
		assert.Equal(t, "SH-1", order.ShopOrderID)
		assert.Equal(t, "sheet-1", order.Spreadsheet)
		assert.Equal(t, "Orders", order.SheetID)
		assert.Equal(t, 2, order.RowID)
		assert.Equal(t, domain.OrderStatusInProgress, order.Status)
		return order, nil
	})
	orderService.EXPECT().CreatePreOrder(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, preorder *domain.PreOrder) (*domain.PreOrder, error) {
		assert.Equal(t, "P-1", preorder.OrderID)
		assert.Equal(t, 3, preorder.RowID)
		assert.True(t, preorder.PriceBoosterDollar.Equal(decimal.RequireFromString("35")))
		return preorder, nil
	})

	settings.EXPECT().Get(context.Background()).Return(&domain.Settings{PreOrderTTL: time.Hour}, nil).Times(2)
	orderService.EXPECT().ExpirePreOrders(context.Background(), time.Hour).Return(nil, nil)

	syncer.RunOnce(context.Background())
}

func TestRunOnceUpdatesAndRebalances(t *testing.T) {
	syncer, parserRepo, orderRepo, orderService, accounting, settings, api := NewMock(t)

	parserRepo.EXPECT().List(context.Background()).Return([]domain.SheetParser{*testParser()}, nil)
	api.EXPECT().ReadRows(context.Background(), "sheet-1", "Orders", 2).Return([][]any{
		{"D-1", "01.05.2024 10:30:00", "DudeDuck", "SH-1", "WoW", "100", "80", "in progress"},
	}, nil)
	orderRepo.EXPECT().FindBySheet(context.Background(), "sheet-1", "Orders").Return([]domain.Order{*syncedOrder()}, nil)

	orderRepo.EXPECT().Update(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, order *domain.Order) error {
		assert.True(t, order.Price.PriceBoosterDollar.Equal(decimal.RequireFromString("80")))
		return nil
	})
	accounting.EXPECT().UpdateBoosterPrice(context.Background(), gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, oldOrder, newOrder *domain.Order) error {
		assert.True(t, oldOrder.Price.PriceBoosterDollar.Equal(decimal.RequireFromString("70")))
		assert.True(t, newOrder.Price.PriceBoosterDollar.Equal(decimal.RequireFromString("80")))
		return nil
	})

	settings.EXPECT().Get(context.Background()).Return(&domain.Settings{PreOrderTTL: time.Hour}, nil).Times(2)
	orderService.EXPECT().ExpirePreOrders(context.Background(), time.Hour).Return(nil, nil)

	syncer.RunOnce(context.Background())
}

func TestRunOnceSkipsInvalidRows(t *testing.T) {
	syncer, parserRepo, orderRepo, orderService, _, settings, api := NewMock(t)

	parserRepo.EXPECT().List(context.Background()).Return([]domain.SheetParser{*testParser()}, nil)
	api.EXPECT().ReadRows(context.Background(), "sheet-1", "Orders", 2).Return([][]any{
		{"", "01.05.2024", "", "", "", "100", "70"},
		{"D-2", "not a date", "", "", "", "100", "70"},
	}, nil)
	orderRepo.EXPECT().FindBySheet(context.Background(), "sheet-1", "Orders").Return(nil, nil)

	// No create or update calls for either broken row.
	settings.EXPECT().Get(context.Background()).Return(&domain.Settings{PreOrderTTL: time.Hour}, nil).Times(2)
	orderService.EXPECT().ExpirePreOrders(context.Background(), time.Hour).Return(nil, nil)

	syncer.RunOnce(context.Background())
}

func TestRunOncePushesBoosterSummaries(t *testing.T) {
	syncer, parserRepo, orderRepo, orderService, accounting, settings, api := NewMock(t)

	parserRepo.EXPECT().List(context.Background()).Return([]domain.SheetParser{*testParser()}, nil)
	api.EXPECT().ReadRows(context.Background(), "sheet-1", "Orders", 2).Return([][]any{
		{"D-1", "01.05.2024 10:30:00", "DudeDuck", "SH-1", "WoW", "100", "70", "in progress", ""},
	}, nil)
	orderRepo.EXPECT().FindBySheet(context.Background(), "sheet-1", "Orders").Return([]domain.Order{*syncedOrder()}, nil)

	// Row matches the DB so there is no update; the booster cell is empty
	// while accounting has a share, so the summary is pushed back.
	accounting.EXPECT().BoosterShares(context.Background(), 10).Return([]validate.BoosterShare{
		{Name: "bob", Dollars: decimal.RequireFromString("17.5")},
	}, nil)
	api.EXPECT().UpdateCell(context.Background(), "sheet-1", "Orders", 2, 8, "bob(17.5)").Return(nil)

	settings.EXPECT().Get(context.Background()).Return(&domain.Settings{PreOrderTTL: time.Hour, SyncBoosters: true}, nil).Times(2)
	orderService.EXPECT().ExpirePreOrders(context.Background(), time.Hour).Return(nil, nil)

	syncer.RunOnce(context.Background())
}

func TestRunOnceClearsExpiredRows(t *testing.T) {
	syncer, parserRepo, _, orderService, _, settings, api := NewMock(t)

	parserRepo.EXPECT().List(context.Background()).Return(nil, nil)
	settings.EXPECT().Get(context.Background()).Return(&domain.Settings{PreOrderTTL: time.Hour}, nil)
	orderService.EXPECT().ExpirePreOrders(context.Background(), time.Hour).Return([]domain.PreOrder{
		{ID: 1, OrderID: "P-9", Spreadsheet: "sheet-1", SheetID: "Orders", RowID: 7},
		{ID: 2, OrderID: "P-10"},
	}, nil)
	// Only the preorder that still has a sheet row gets cleared.
	api.EXPECT().ClearRow(context.Background(), "sheet-1", "Orders", 7).Return(nil)

	syncer.RunOnce(context.Background())
}

func TestUpdateFromRowWithoutPriceRecord(t *testing.T) {
	syncer, _, orderRepo, _, accounting, _, _ := NewMock(t)

	// A DB order without an order_prices row must not break the update.
	existing := &domain.Order{ID: 1, OrderID: "D-1"}
	values := map[string]any{
		"order_id":             "D-1",
		"date":                 time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		"price_dollar":         decimal.RequireFromString("100"),
		"price_booster_dollar": decimal.RequireFromString("70"),
	}

	orderRepo.EXPECT().Update(context.Background(), existing).Return(nil)
	accounting.EXPECT().UpdateBoosterPrice(context.Background(), gomock.Any(), existing).DoAndReturn(func(ctx context.Context, oldOrder, newOrder *domain.Order) error {
		assert.Nil(t, oldOrder.Price)
		return nil
	})

	assert.NotPanics(t, func() {
		syncer.updateFromRow(context.Background(), existing, values, 2)
	})
	assert.NotNil(t, existing.Price)
}