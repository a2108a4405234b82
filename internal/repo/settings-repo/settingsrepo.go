package settingsrepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/pg"
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

func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	var (
		settings   domain.Settings
		ttlMinutes int
		precisions []byte
		tokens     []byte
	)
	err := r.db.QueryRow(ctx, "SELECT id, currency_fee, preorder_ttl_min, precisions, api_tokens, sync_boosters FROM settings WHERE id = 1").
		Scan(&settings.ID, &settings.CurrencyFee, &ttlMinutes, &precisions, &tokens, &settings.SyncBoosters)
	if err != nil {
		zap.L().Error("can't get settings", zap.Error(err))
		return nil, err
	}
	settings.PreOrderTTL = time.Duration(ttlMinutes) * time.Minute
	if err := json.Unmarshal(precisions, &settings.Precisions); err != nil {
		zap.L().Error("can't decode settings precisions", zap.Error(err))
		return nil, err
	}
	if err := json.Unmarshal(tokens, &settings.APITokens); err != nil {
		zap.L().Error("can't decode settings api tokens", zap.Error(err))
		return nil, err
	}
	return &settings, nil
}

func (r *Repository) Update(ctx context.Context, settings *domain.Settings) error {
	precisions, err := json.Marshal(settings.Precisions)
	if err != nil {
		return err
	}
	tokens, err := json.Marshal(settings.APITokens)
	if err != nil {
		return err
	}
	query := `
        UPDATE settings
        SET currency_fee = $1, preorder_ttl_min = $2, precisions = $3, api_tokens = $4, sync_boosters = $5
        WHERE id = 1
    `
	_, err = r.db.Exec(ctx, query,
		settings.CurrencyFee, int(settings.PreOrderTTL.Minutes()), precisions, tokens, settings.SyncBoosters,
	)
	if err != nil {
		zap.L().Error("can't update settings", zap.Error(err))
		return err
	}
	return nil
}
