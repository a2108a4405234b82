package responserepo

import (
	"context"
	"errors"

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

const responseColumns = "id, order_id, user_id, approved, closed, refund, text, price, created_at"

func scanResponse(row pgx.Row) (*domain.Response, error) {
	var resp domain.Response
	err := row.Scan(
		&resp.ID, &resp.OrderID, &resp.UserID, &resp.Approved, &resp.Closed,
		&resp.Refund, &resp.Text, &resp.Price, &resp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *Repository) FindByOrderAndUser(ctx context.Context, orderID, userID int) (*domain.Response, error) {
	row := r.db.QueryRow(ctx, "SELECT "+responseColumns+" FROM responses WHERE order_id = $1 AND user_id = $2", orderID, userID)
	resp, err := scanResponse(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find response", zap.Error(err))
		return nil, err
	}
	return resp, nil
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID int) ([]domain.Response, error) {
	rows, err := r.db.Query(ctx, "SELECT "+responseColumns+" FROM responses WHERE order_id = $1 ORDER BY created_at", orderID)
	if err != nil {
		zap.L().Error("can't get responses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var responses []domain.Response
	for rows.Next() {
		resp, err := scanResponse(rows)
		if err != nil {
			zap.L().Error("can't scan response row", zap.Error(err))
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (r *Repository) FindApprovedByOrder(ctx context.Context, orderID int) (*domain.Response, error) {
	row := r.db.QueryRow(ctx, "SELECT "+responseColumns+" FROM responses WHERE order_id = $1 AND approved = TRUE", orderID)
	resp, err := scanResponse(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find approved response", zap.Error(err))
		return nil, err
	}
	return resp, nil
}

func (r *Repository) Save(ctx context.Context, resp *domain.Response) error {
	query := `
        INSERT INTO responses (order_id, user_id, text, price)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, resp.OrderID, resp.UserID, resp.Text, resp.Price).Scan(&resp.ID, &resp.CreatedAt)
	if err != nil {
		zap.L().Error("can't save response", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetApproved(ctx context.Context, id int, approved bool) error {
	_, err := r.db.Exec(ctx, "UPDATE responses SET approved = $1, closed = TRUE WHERE id = $2", approved, id)
	if err != nil {
		zap.L().Error("can't update response", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CloseByOrder(ctx context.Context, orderID int, exceptUserID int) error {
	_, err := r.db.Exec(ctx, "UPDATE responses SET closed = TRUE WHERE order_id = $1 AND user_id <> $2", orderID, exceptUserID)
	if err != nil {
		zap.L().Error("can't close responses", zap.Error(err))
		return err
	}
	return nil
}

const preOrderResponseColumns = "id, preorder_id, user_id, text, price, created_at"

func scanPreOrderResponse(row pgx.Row) (*domain.PreOrderResponse, error) {
	var resp domain.PreOrderResponse
	err := row.Scan(&resp.ID, &resp.PreOrderID, &resp.UserID, &resp.Text, &resp.Price, &resp.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *Repository) FindByPreOrderAndUser(ctx context.Context, preOrderID, userID int) (*domain.PreOrderResponse, error) {
	row := r.db.QueryRow(ctx, "SELECT "+preOrderResponseColumns+" FROM preorder_responses WHERE preorder_id = $1 AND user_id = $2", preOrderID, userID)
	resp, err := scanPreOrderResponse(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find preorder response", zap.Error(err))
		return nil, err
	}
	return resp, nil
}

func (r *Repository) FindByPreOrderID(ctx context.Context, preOrderID int) ([]domain.PreOrderResponse, error) {
	rows, err := r.db.Query(ctx, "SELECT "+preOrderResponseColumns+" FROM preorder_responses WHERE preorder_id = $1 ORDER BY created_at", preOrderID)
	if err != nil {
		zap.L().Error("can't get preorder responses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var responses []domain.PreOrderResponse
	for rows.Next() {
		resp, err := scanPreOrderResponse(rows)
		if err != nil {
			zap.L().Error("can't scan preorder response row", zap.Error(err))
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (r *Repository) SaveForPreOrder(ctx context.Context, resp *domain.PreOrderResponse) error {
	query := `
        INSERT INTO preorder_responses (preorder_id, user_id, text, price)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, resp.PreOrderID, resp.UserID, resp.Text, resp.Price).Scan(&resp.ID, &resp.CreatedAt)
	if err != nil {
		zap.L().Error("can't save preorder response", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountByPreOrder(ctx context.Context, preOrderID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM preorder_responses WHERE preorder_id = $1", preOrderID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count preorder responses", zap.Error(err))
		return 0, err
	}
	return count, nil
}
