package orderrepo

import (
	"context"
	"errors"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const orderColumns = "id, order_id, spreadsheet, sheet_id, row_id, order_date, shop, shop_order_id, status, status_paid, auth_date, end_date, created_at"

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.OrderID, &order.Spreadsheet, &order.SheetID, &order.RowID,
		&order.Date, &order.Shop, &order.ShopOrderID, &order.Status, &order.StatusPaid,
		&order.AuthDate, &order.EndDate, &order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Repository) loadRelated(ctx context.Context, order *domain.Order) error {
	var info domain.OrderInfo
	err := r.db.QueryRow(ctx, "SELECT order_id, game, category, purchase, comment FROM order_info WHERE order_id = $1", order.ID).
		Scan(&info.OrderID, &info.Game, &info.Category, &info.Purchase, &info.Comment)
	if err == nil {
		order.Info = &info
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	var price domain.OrderPrice
	err = r.db.QueryRow(ctx, "SELECT order_id, price_dollar, price_booster_dollar, price_booster_gold FROM order_prices WHERE order_id = $1", order.ID).
		Scan(&price.OrderID, &price.PriceDollar, &price.PriceBoosterDollar, &price.PriceBoosterGold)
	if err == nil {
		order.Price = &price
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	var creds domain.OrderCredentials
	err = r.db.QueryRow(ctx, "SELECT order_id, battle_tag, login, password FROM order_credentials WHERE order_id = $1", order.ID).
		Scan(&creds.OrderID, &creds.BattleTag, &creds.Login, &creds.Password)
	if err == nil {
		order.Credentials = &creds
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id)
	order, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	if err := r.loadRelated(ctx, order); err != nil {
		zap.L().Error("can't load order relations", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, "SELECT "+orderColumns+" FROM orders WHERE order_id = $1", orderID)
	order, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	if err := r.loadRelated(ctx, order); err != nil {
		zap.L().Error("can't load order relations", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindBySheet(ctx context.Context, spreadsheet, sheetID string) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE spreadsheet = $1 AND sheet_id = $2
        ORDER BY row_id ASC
    `
	rows, err := r.db.Query(ctx, query, spreadsheet, sheetID)
	if err != nil {
		zap.L().Error("can't get orders for sheet", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}

	for i := range orders {
		if err := r.loadRelated(ctx, &orders[i]); err != nil {
			zap.L().Error("can't load order relations", zap.Error(err))
			return nil, err
		}
	}
	return orders, nil
}

func (r *Repository) List(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	query := "SELECT " + orderColumns + " FROM orders ORDER BY order_date DESC"
	args := []any{}
	if status != "" {
		query = "SELECT " + orderColumns + " FROM orders WHERE status = $1 ORDER BY order_date DESC"
		args = append(args, status)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		query := `
        INSERT INTO orders (order_id, spreadsheet, sheet_id, row_id, order_date, shop, shop_order_id, status, status_paid, auth_date, end_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at
    `
		err := r.db.QueryRow(ctx, query,
			order.OrderID, order.Spreadsheet, order.SheetID, order.RowID, order.Date,
			order.Shop, order.ShopOrderID, order.Status, order.StatusPaid, order.AuthDate, order.EndDate,
		).Scan(&order.ID, &order.CreatedAt)
		if err != nil {
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}
		return r.saveRelated(ctx, order)
	})
}

func (r *Repository) saveRelated(ctx context.Context, order *domain.Order) error {
	if order.Info != nil {
		order.Info.OrderID = order.ID
		_, err := r.db.Exec(ctx, `
			INSERT INTO order_info (order_id, game, category, purchase, comment)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (order_id) DO UPDATE SET game = $2, category = $3, purchase = $4, comment = $5
		`, order.ID, order.Info.Game, order.Info.Category, order.Info.Purchase, order.Info.Comment)
		if err != nil {
			zap.L().Error("can't save order info", zap.Error(err))
			return err
		}
	}
	if order.Price != nil {
		order.Price.OrderID = order.ID
		_, err := r.db.Exec(ctx, `
			INSERT INTO order_prices (order_id, price_dollar, price_booster_dollar, price_booster_gold)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (order_id) DO UPDATE SET price_dollar = $2, price_booster_dollar = $3, price_booster_gold = $4
		`, order.ID, order.Price.PriceDollar, order.Price.PriceBoosterDollar, order.Price.PriceBoosterGold)
		if err != nil {
			zap.L().Error("can't save order price", zap.Error(err))
			return err
		}
	}
	if order.Credentials != nil {
		order.Credentials.OrderID = order.ID
		_, err := r.db.Exec(ctx, `
			INSERT INTO order_credentials (order_id, battle_tag, login, password)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (order_id) DO UPDATE SET battle_tag = $2, login = $3, password = $4
		`, order.ID, order.Credentials.BattleTag, order.Credentials.Login, order.Credentials.Password)
		if err != nil {
			zap.L().Error("can't save order credentials", zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, order *domain.Order) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		query := `
        UPDATE orders
        SET spreadsheet = $1, sheet_id = $2, row_id = $3, order_date = $4, shop = $5,
            shop_order_id = $6, status = $7, status_paid = $8, auth_date = $9, end_date = $10
        WHERE id = $11
    `
		_, err := r.db.Exec(ctx, query,
			order.Spreadsheet, order.SheetID, order.RowID, order.Date, order.Shop,
			order.ShopOrderID, order.Status, order.StatusPaid, order.AuthDate, order.EndDate, order.ID,
		)
		if err != nil {
			zap.L().Error("failed to update order", zap.Error(err))
			return err
		}
		return r.saveRelated(ctx, order)
	})
}

func (r *Repository) UpdateStatusPaid(ctx context.Context, id int, status domain.OrderPaidStatus) error {
	_, err := r.db.Exec(ctx, "UPDATE orders SET status_paid = $1 WHERE id = $2", status, id)
	if err != nil {
		zap.L().Error("failed to update order paid status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddScreenshot(ctx context.Context, s *domain.Screenshot) error {
	err := r.db.QueryRow(ctx, "INSERT INTO screenshots (order_id, url) VALUES ($1, $2) RETURNING id, created_at", s.OrderID, s.URL).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		zap.L().Error("can't save screenshot", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindScreenshots(ctx context.Context, orderID int) ([]domain.Screenshot, error) {
	rows, err := r.db.Query(ctx, "SELECT id, order_id, url, created_at FROM screenshots WHERE order_id = $1 ORDER BY id", orderID)
	if err != nil {
		zap.L().Error("can't get screenshots", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var screenshots []domain.Screenshot
	for rows.Next() {
		var s domain.Screenshot
		if err := rows.Scan(&s.ID, &s.OrderID, &s.URL, &s.CreatedAt); err != nil {
			zap.L().Error("can't scan screenshot row", zap.Error(err))
			return nil, err
		}
		screenshots = append(screenshots, s)
	}
	return screenshots, nil
}
