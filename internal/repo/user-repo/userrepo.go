package userrepo

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

const userColumns = "id, login, password_hash, role, is_verified, max_orders, telegram, created_at"

func (repo *Repository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Role, &user.IsVerified, &user.MaxOrders, &user.Telegram, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	row := repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE login = $1", login)
	user, err := repo.scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	row := repo.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	user, err := repo.scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, role, telegram)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.Role, user.Telegram).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := repo.db.Query(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Role, &user.IsVerified, &user.MaxOrders, &user.Telegram, &user.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (repo *Repository) SetVerified(ctx context.Context, id int, verified bool) error {
	_, err := repo.db.Exec(ctx, "UPDATE users SET is_verified = $1 WHERE id = $2", verified, id)
	if err != nil {
		zap.L().Error("can't update user verification", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) SetMaxOrders(ctx context.Context, id, maxOrders int) error {
	_, err := repo.db.Exec(ctx, "UPDATE users SET max_orders = $1 WHERE id = $2", maxOrders, id)
	if err != nil {
		zap.L().Error("can't update user max orders", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) FindPayrolls(ctx context.Context, userID int) ([]domain.Payroll, error) {
	rows, err := repo.db.Query(ctx, "SELECT id, user_id, bank, type, value FROM payrolls WHERE user_id = $1 ORDER BY id", userID)
	if err != nil {
		zap.L().Error("can't get payrolls", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payrolls []domain.Payroll
	for rows.Next() {
		var p domain.Payroll
		if err := rows.Scan(&p.ID, &p.UserID, &p.Bank, &p.Type, &p.Value); err != nil {
			zap.L().Error("can't scan payroll row", zap.Error(err))
			return nil, err
		}
		payrolls = append(payrolls, p)
	}
	return payrolls, nil
}

func (repo *Repository) ReplacePayrolls(ctx context.Context, userID int, payrolls []domain.Payroll) error {
	if _, err := repo.db.Exec(ctx, "DELETE FROM payrolls WHERE user_id = $1", userID); err != nil {
		zap.L().Error("can't delete payrolls", zap.Error(err))
		return err
	}
	for _, p := range payrolls {
		_, err := repo.db.Exec(ctx, "INSERT INTO payrolls (user_id, bank, type, value) VALUES ($1, $2, $3, $4)", userID, p.Bank, p.Type, p.Value)
		if err != nil {
			zap.L().Error("can't insert payroll", zap.Error(err))
			return err
		}
	}
	return nil
}
