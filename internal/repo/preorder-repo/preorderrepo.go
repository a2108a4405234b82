package preorderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const preorderColumns = "id, order_id, spreadsheet, sheet_id, row_id, order_date, shop, game, category, purchase, price_dollar, price_booster_dollar, created_at"

func scanPreOrder(row pgx.Row) (*domain.PreOrder, error) {
	var p domain.PreOrder
	err := row.Scan(
		&p.ID, &p.OrderID, &p.Spreadsheet, &p.SheetID, &p.RowID, &p.Date, &p.Shop,
		&p.Game, &p.Category, &p.Purchase, &p.PriceDollar, &p.PriceBoosterDollar, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.PreOrder, error) {
	row := r.db.QueryRow(ctx, "SELECT "+preorderColumns+" FROM preorders WHERE id = $1", id)
	preorder, err := scanPreOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find preorder", zap.Error(err))
		return nil, err
	}
	return preorder, nil
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID string) (*domain.PreOrder, error) {
	row := r.db.QueryRow(ctx, "SELECT "+preorderColumns+" FROM preorders WHERE order_id = $1", orderID)
	preorder, err := scanPreOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find preorder", zap.Error(err))
		return nil, err
	}
	return preorder, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.PreOrder, error) {
	rows, err := r.db.Query(ctx, "SELECT "+preorderColumns+" FROM preorders ORDER BY order_date DESC")
	if err != nil {
		zap.L().Error("can't list preorders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var preorders []domain.PreOrder
	for rows.Next() {
		preorder, err := scanPreOrder(rows)
		if err != nil {
			zap.L().Error("can't scan preorder row", zap.Error(err))
			return nil, err
		}
		preorders = append(preorders, *preorder)
	}
	return preorders, nil
}

func (r *Repository) FindExpired(ctx context.Context, before time.Time) ([]domain.PreOrder, error) {
	rows, err := r.db.Query(ctx, "SELECT "+preorderColumns+" FROM preorders WHERE created_at < $1", before)
	if err != nil {
		zap.L().Error("can't get expired preorders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var preorders []domain.PreOrder
	for rows.Next() {
		preorder, err := scanPreOrder(rows)
		if err != nil {
			zap.L().Error("can't scan preorder row", zap.Error(err))
			return nil, err
		}
		preorders = append(preorders, *preorder)
	}
	return preorders, nil
}

func (r *Repository) Save(ctx context.Context, preorder *domain.PreOrder) error {
	query := `
        INSERT INTO preorders (order_id, spreadsheet, sheet_id, row_id, order_date, shop, game, category, purchase, price_dollar, price_booster_dollar)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		preorder.OrderID, preorder.Spreadsheet, preorder.SheetID, preorder.RowID, preorder.Date,
		preorder.Shop, preorder.Game, preorder.Category, preorder.Purchase,
		preorder.PriceDollar, preorder.PriceBoosterDollar,
	).Scan(&preorder.ID, &preorder.CreatedAt)
	if err != nil {
		zap.L().Error("can't save preorder", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM preorders WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete preorder", zap.Error(err))
		return err
	}
	return nil
}
