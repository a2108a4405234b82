package userorderrepo

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/pg"
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

const userOrderColumns = "id, user_id, order_id, dollars, completed, paid, refunded, order_date, completed_at, paid_at"

func scanUserOrder(row pgx.Row) (*domain.UserOrder, error) {
	var uo domain.UserOrder
	err := row.Scan(
		&uo.ID, &uo.UserID, &uo.OrderID, &uo.Dollars, &uo.Completed, &uo.Paid,
		&uo.Refunded, &uo.OrderDate, &uo.CompletedAt, &uo.PaidAt,
	)
	if err != nil {
		return nil, err
	}
	return &uo, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.UserOrder, error) {
	row := r.db.QueryRow(ctx, "SELECT "+userOrderColumns+" FROM user_orders WHERE id = $1", id)
	uo, err := scanUserOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user order", zap.Error(err))
		return nil, err
	}
	return uo, nil
}

func (r *Repository) FindByUserAndOrder(ctx context.Context, userID, orderID int) (*domain.UserOrder, error) {
	row := r.db.QueryRow(ctx, "SELECT "+userOrderColumns+" FROM user_orders WHERE user_id = $1 AND order_id = $2", userID, orderID)
	uo, err := scanUserOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user order", zap.Error(err))
		return nil, err
	}
	return uo, nil
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID int) ([]domain.UserOrder, error) {
	rows, err := r.db.Query(ctx, "SELECT "+userOrderColumns+" FROM user_orders WHERE order_id = $1 ORDER BY id", orderID)
	if err != nil {
		zap.L().Error("can't get user orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var userOrders []domain.UserOrder
	for rows.Next() {
		uo, err := scanUserOrder(rows)
		if err != nil {
			zap.L().Error("can't scan user order row", zap.Error(err))
			return nil, err
		}
		userOrders = append(userOrders, *uo)
	}
	return userOrders, nil
}

func (r *Repository) Save(ctx context.Context, uo *domain.UserOrder) error {
	query := `
        INSERT INTO user_orders (user_id, order_id, dollars, completed, paid, refunded, order_date, completed_at, paid_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		uo.UserID, uo.OrderID, uo.Dollars, uo.Completed, uo.Paid, uo.Refunded,
		uo.OrderDate, uo.CompletedAt, uo.PaidAt,
	).Scan(&uo.ID)
	if err != nil {
		zap.L().Error("can't save user order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateDollars(ctx context.Context, id int, dollars decimal.Decimal) error {
	_, err := r.db.Exec(ctx, "UPDATE user_orders SET dollars = $1 WHERE id = $2", dollars, id)
	if err != nil {
		zap.L().Error("can't update user order dollars", zap.Error(err))
		return err
	}
	return nil
}

// AddDollarsByOrder bulk-increments every share on an order. Used by the
// remove-booster redistribution and the price-edit delta.
func (r *Repository) AddDollarsByOrder(ctx context.Context, orderID int, delta decimal.Decimal) error {
	_, err := r.db.Exec(ctx, "UPDATE user_orders SET dollars = dollars + $1 WHERE order_id = $2", delta, orderID)
	if err != nil {
		zap.L().Error("can't bulk update user order dollars", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkPaid(ctx context.Context, id int, at time.Time) error {
	_, err := r.db.Exec(ctx, "UPDATE user_orders SET paid = TRUE, paid_at = $1 WHERE id = $2", at, id)
	if err != nil {
		zap.L().Error("can't mark user order paid", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkCompletedByOrder(ctx context.Context, orderID int, at time.Time) error {
	_, err := r.db.Exec(ctx, "UPDATE user_orders SET completed = TRUE, completed_at = $1 WHERE order_id = $2", at, orderID)
	if err != nil {
		zap.L().Error("can't mark user orders completed", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM user_orders WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete user order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeleteByOrderID(ctx context.Context, orderID int) error {
	_, err := r.db.Exec(ctx, "DELETE FROM user_orders WHERE order_id = $1", orderID)
	if err != nil {
		zap.L().Error("can't delete user orders", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountUnpaidByOrder(ctx context.Context, orderID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM user_orders WHERE order_id = $1 AND paid = FALSE", orderID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count unpaid user orders", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CountActiveByUser(ctx context.Context, userID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM user_orders WHERE user_id = $1 AND completed = FALSE AND refunded = FALSE", userID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count active user orders", zap.Error(err))
		return 0, err
	}
	return count, nil
}

var reportSortColumns = map[domain.ReportSort]string{
	domain.SortByOrder: "o.order_id",
	domain.SortByDate:  "uo.order_date",
	domain.SortByUser:  "u.login",
}

// Report aggregates assignment rows joined with orders and users. The whole
// result set is loaded into memory, matching how reports are consumed.
func (r *Repository) Report(ctx context.Context, filter domain.ReportFilter) ([]domain.ReportRow, error) {
	builder := sq.Select("o.order_id", "u.login", "uo.dollars", "uo.order_date", "uo.completed", "uo.paid").
		From("user_orders uo").
		Join("orders o ON o.id = uo.order_id").
		Join("users u ON u.id = uo.user_id").
		PlaceholderFormat(sq.Dollar)

	if !filter.From.IsZero() {
		builder = builder.Where(sq.GtOrEq{"uo.order_date": filter.From})
	}
	if !filter.To.IsZero() {
		builder = builder.Where(sq.LtOrEq{"uo.order_date": filter.To})
	}
	if filter.Spreadsheet != "" {
		builder = builder.Where(sq.Eq{"o.spreadsheet": filter.Spreadsheet})
	}
	if filter.SheetID != "" {
		builder = builder.Where(sq.Eq{"o.sheet_id": filter.SheetID})
	}
	if filter.Username != "" {
		builder = builder.Where(sq.Eq{"u.login": filter.Username})
	}
	if filter.Completed != nil {
		builder = builder.Where(sq.Eq{"uo.completed": *filter.Completed})
	}
	if filter.Paid != nil {
		builder = builder.Where(sq.Eq{"uo.paid": *filter.Paid})
	}

	first, ok := reportSortColumns[filter.SortBy]
	if !ok {
		first = reportSortColumns[domain.SortByOrder]
	}
	second, ok := reportSortColumns[filter.ThenBy]
	if !ok {
		second = reportSortColumns[domain.SortByUser]
	}
	builder = builder.OrderBy(first+" ASC", second+" ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		zap.L().Error("can't build report query", zap.Error(err))
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't run report query", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var report []domain.ReportRow
	for rows.Next() {
		var row domain.ReportRow
		if err := rows.Scan(&row.OrderID, &row.Username, &row.Dollars, &row.OrderDate, &row.Completed, &row.Paid); err != nil {
			zap.L().Error("can't scan report row", zap.Error(err))
			return nil, err
		}
		report = append(report, row)
	}
	return report, nil
}
