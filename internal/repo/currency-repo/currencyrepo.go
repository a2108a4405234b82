package currencyrepo

import (
	"context"
	"encoding/json"
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

func (r *Repository) FindByDate(ctx context.Context, date time.Time) (*domain.Currency, error) {
	var (
		currency domain.Currency
		quotes   []byte
	)
	err := r.db.QueryRow(ctx, "SELECT id, quote_date, quotes FROM currencies WHERE quote_date = $1", date.Format("2006-01-02")).
		Scan(&currency.ID, &currency.Date, &quotes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find currency", zap.Error(err))
		return nil, err
	}
	if err := json.Unmarshal(quotes, &currency.Quotes); err != nil {
		zap.L().Error("can't decode currency quotes", zap.Error(err))
		return nil, err
	}
	return &currency, nil
}

func (r *Repository) Save(ctx context.Context, currency *domain.Currency) error {
	quotes, err := json.Marshal(currency.Quotes)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO currencies (quote_date, quotes)
        VALUES ($1, $2)
        ON CONFLICT (quote_date) DO UPDATE SET quotes = $2
        RETURNING id
    `
	err = r.db.QueryRow(ctx, query, currency.Date.Format("2006-01-02"), quotes).Scan(&currency.ID)
	if err != nil {
		zap.L().Error("can't save currency", zap.Error(err))
		return err
	}
	return nil
}
