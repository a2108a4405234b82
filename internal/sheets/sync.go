package sheets

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/validate"
)

type ParserRepo interface {
	List(ctx context.Context) ([]domain.SheetParser, error)
}

type OrderRepo interface {
	FindBySheet(ctx context.Context, spreadsheet, sheetID string) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
}

type OrderService interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	CreatePreOrder(ctx context.Context, preorder *domain.PreOrder) (*domain.PreOrder, error)
	ExpirePreOrders(ctx context.Context, ttl time.Duration) ([]domain.PreOrder, error)
}

type Accounting interface {
	BoosterShares(ctx context.Context, orderID int) ([]validate.BoosterShare, error)
	AssignByName(ctx context.Context, orderID int, username string, price *decimal.Decimal) (*domain.UserOrder, error)
	UpdateBoosterPrice(ctx context.Context, oldOrder, newOrder *domain.Order) error
}

type SettingsProvider interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

type SheetsAPI interface {
	ReadRows(ctx context.Context, spreadsheetID, sheetName string, startRow int) ([][]any, error)
	UpdateCell(ctx context.Context, spreadsheetID, sheetName string, row, column int, value any) error
	ClearRow(ctx context.Context, spreadsheetID, sheetName string, row int) error
}

// Syncer runs the scheduled spreadsheet reconciliation: once at startup,
// then on every tick.
type Syncer struct {
	parserRepo   ParserRepo
	orderRepo    OrderRepo
	orderService OrderService
	accounting   Accounting
	settings     SettingsProvider
	api          SheetsAPI
	interval     time.Duration
}

func NewSyncer(
	parserRepo ParserRepo,
	orderRepo OrderRepo,
	orderService OrderService,
	accounting Accounting,
	settings SettingsProvider,
	api SheetsAPI,
	interval time.Duration,
) *Syncer {
	return &Syncer{
		parserRepo:   parserRepo,
		orderRepo:    orderRepo,
		orderService: orderService,
		accounting:   accounting,
		settings:     settings,
		api:          api,
		interval:     interval,
	}
}

func (s *Syncer) Start(ctx context.Context) {
	zap.L().Info("sheet sync started", zap.Duration("interval", s.interval))
	s.RunOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping sheet sync")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce is one full reconciliation pass. A failure on one sheet doesn't
// stop the others; the next tick retries everything.
func (s *Syncer) RunOnce(ctx context.Context) {
	parsers, err := s.parserRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list sheet parsers", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, parser := range parsers {
		if !parser.IsSync {
			continue
		}
		parser := parser
		g.Go(func() error {
			if err := s.syncSheet(ctx, &parser); err != nil {
				zap.L().Error("sheet sync failed",
					zap.String("spreadsheet", parser.Spreadsheet),
					zap.String("sheet", parser.SheetID),
					zap.Error(err),
				)
			}
			return nil
		})
	}
	g.Wait()

	s.expirePreOrders(ctx)
}

func (s *Syncer) syncSheet(ctx context.Context, parser *domain.SheetParser) error {
	rows, err := s.api.ReadRows(ctx, parser.Spreadsheet, parser.SheetID, parser.StartRow)
	if err != nil {
		return err
	}

	dbOrders, err := s.orderRepo.FindBySheet(ctx, parser.Spreadsheet, parser.SheetID)
	if err != nil {
		return err
	}
	byOrderID := make(map[string]*domain.Order, len(dbOrders))
	for i := range dbOrders {
		byOrderID[dbOrders[i].OrderID] = &dbOrders[i]
	}

	boosterColumn := -1
	for _, item := range parser.Items {
		if item.Name == "booster" {
			boosterColumn = item.Column
		}
	}

	for i, row := range rows {
		rowID := parser.StartRow + i

		values, err := ParseRow(parser, row)
		if err != nil {
			var vErr *ValidationError
			if errors.As(err, &vErr) {
				zap.L().Warn("skipping sheet row",
					zap.String("sheet", parser.SheetID),
					zap.Int("row", rowID),
					zap.Error(err),
				)
				continue
			}
			return err
		}

		orderID := stringValue(values, "order_id")
		if orderID == "" {
			continue
		}
		boosterCell := stringValue(values, "booster")

		existing := byOrderID[orderID]
		if existing == nil {
			s.createFromRow(ctx, parser, values, rowID)
			continue
		}

		s.updateFromRow(ctx, existing, values, rowID)
		s.reconcileBoosters(ctx, existing, boosterCell)
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}
	if settings.SyncBoosters && boosterColumn >= 0 {
		s.pushBoosters(ctx, parser, dbOrders, rows, boosterColumn)
	}
	return nil
}

// createFromRow turns an unseen sheet row into a new Order, or into a
// PreOrder when the shop hasn't confirmed it yet.
func (s *Syncer) createFromRow(ctx context.Context, parser *domain.SheetParser, values map[string]any, rowID int) {
	if stringValue(values, "shop_order_id") != "" {
		order := OrderFromValues(values)
		order.Spreadsheet = parser.Spreadsheet
		order.SheetID = parser.SheetID
		order.RowID = rowID
		if _, err := s.orderService.CreateOrder(ctx, order); err != nil {
			zap.L().Error("can't create order from sheet row",
				zap.String("order_id", order.OrderID),
				zap.Int("row", rowID),
				zap.Error(err),
			)
		}
		return
	}

	preorder := PreOrderFromValues(values)
	preorder.Spreadsheet = parser.Spreadsheet
	preorder.SheetID = parser.SheetID
	preorder.RowID = rowID
	if _, err := s.orderService.CreatePreOrder(ctx, preorder); err != nil {
		zap.L().Debug("can't create preorder from sheet row",
			zap.String("order_id", preorder.OrderID),
			zap.Int("row", rowID),
			zap.Error(err),
		)
	}
}

func (s *Syncer) updateFromRow(ctx context.Context, existing *domain.Order, values map[string]any, rowID int) {
	incoming := OrderFromValues(values)
	if !ordersDiffer(existing, incoming) && existing.RowID == rowID {
		return
	}

	oldOrder := *existing
	if existing.Price != nil {
		oldPrice := *existing.Price
		oldOrder.Price = &oldPrice
	}

	existing.RowID = rowID
	existing.Date = incoming.Date
	existing.Shop = incoming.Shop
	existing.ShopOrderID = incoming.ShopOrderID
	existing.Status = incoming.Status
	existing.AuthDate = incoming.AuthDate
	existing.EndDate = incoming.EndDate
	existing.Info = incoming.Info
	existing.Price = incoming.Price
	if incoming.Credentials != nil && (incoming.Credentials.Login != "" || incoming.Credentials.BattleTag != "") {
		existing.Credentials = incoming.Credentials
	}

	if err := s.orderRepo.Update(ctx, existing); err != nil {
		zap.L().Error("can't apply sheet row update",
			zap.String("order_id", existing.OrderID),
			zap.Error(err),
		)
		return
	}

	if err := s.accounting.UpdateBoosterPrice(ctx, &oldOrder, existing); err != nil {
		zap.L().Error("can't rebalance booster shares after price edit",
			zap.String("order_id", existing.OrderID),
			zap.Error(err),
		)
	}
}

// reconcileBoosters adds every booster the sheet names that the DB is
// missing. The sheet never removes assignments.
func (s *Syncer) reconcileBoosters(ctx context.Context, order *domain.Order, boosterCell string) {
	parsed := validate.BoostersFromString(boosterCell)
	if len(parsed) == 0 {
		return
	}

	current, err := s.accounting.BoosterShares(ctx, order.ID)
	if err != nil {
		zap.L().Error("can't load booster shares", zap.String("order_id", order.OrderID), zap.Error(err))
		return
	}
	assigned := make(map[string]struct{}, len(current))
	for _, share := range current {
		assigned[share.Name] = struct{}{}
	}

	for name, price := range parsed {
		if _, ok := assigned[name]; ok {
			continue
		}
		if _, err := s.accounting.AssignByName(ctx, order.ID, name, price); err != nil {
			zap.L().Warn("can't assign booster from sheet",
				zap.String("order_id", order.OrderID),
				zap.String("booster", name),
				zap.Error(err),
			)
		}
	}
}

// pushBoosters writes DB-derived booster summaries back into the sheet
// when the cell disagrees.
func (s *Syncer) pushBoosters(ctx context.Context, parser *domain.SheetParser, orders []domain.Order, rows [][]any, boosterColumn int) {
	for i := range orders {
		order := &orders[i]
		shares, err := s.accounting.BoosterShares(ctx, order.ID)
		if err != nil {
			zap.L().Error("can't load booster shares", zap.String("order_id", order.OrderID), zap.Error(err))
			continue
		}
		summary := validate.BoostersToString(shares)

		rowIndex := order.RowID - parser.StartRow
		current := ""
		if rowIndex >= 0 && rowIndex < len(rows) && boosterColumn < len(rows[rowIndex]) {
			current = cellString(rows[rowIndex][boosterColumn])
		}
		if summary == current {
			continue
		}

		if err := s.api.UpdateCell(ctx, parser.Spreadsheet, parser.SheetID, order.RowID, boosterColumn, summary); err != nil {
			zap.L().Error("can't push booster summary to sheet",
				zap.String("order_id", order.OrderID),
				zap.Error(err),
			)
		}
	}
}

func (s *Syncer) expirePreOrders(ctx context.Context) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		zap.L().Error("can't load settings for preorder expiry", zap.Error(err))
		return
	}

	expired, err := s.orderService.ExpirePreOrders(ctx, settings.PreOrderTTL)
	if err != nil {
		zap.L().Error("preorder expiry failed", zap.Error(err))
		return
	}
	for _, preorder := range expired {
		if preorder.Spreadsheet == "" {
			continue
		}
		if err := s.api.ClearRow(ctx, preorder.Spreadsheet, preorder.SheetID, preorder.RowID); err != nil {
			zap.L().Error("can't clear expired preorder row",
				zap.String("order_id", preorder.OrderID),
				zap.Error(err),
			)
		}
	}
}
