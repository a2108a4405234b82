package currencyservice

import (
	"context"
	"errors"
	"time"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repo interface {
	FindByDate(ctx context.Context, date time.Time) (*domain.Currency, error)
	Save(ctx context.Context, currency *domain.Currency) error
}

type RateClient interface {
	Rates(ctx context.Context, date time.Time, token string) (map[string]decimal.Decimal, error)
}

type SettingsProvider interface {
	Get(ctx context.Context) (*domain.Settings, error)
	TakeToken(ctx context.Context) (string, error)
}

type Service struct {
	repo     Repo
	client   RateClient
	settings SettingsProvider
}

func New(repo Repo, client RateClient, settings SettingsProvider) *Service {
	return &Service{
		repo:     repo,
		client:   client,
		settings: settings,
	}
}

var ErrUnknownCurrency = errors.New("unknown currency code")

// getOrFetch returns the quote row for the calendar date, hitting the FX
// API at most once per day.
func (s *Service) getOrFetch(ctx context.Context, date time.Time) (*domain.Currency, error) {
	currency, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if currency != nil {
		return currency, nil
	}

	token, err := s.settings.TakeToken(ctx)
	if err != nil {
		return nil, err
	}
	quotes, err := s.client.Rates(ctx, date, token)
	if err != nil {
		zap.L().Error("failed to fetch fx rates", zap.Error(err))
		return nil, err
	}

	currency = &domain.Currency{
		Date:   date,
		Quotes: quotes,
	}
	if err := s.repo.Save(ctx, currency); err != nil {
		return nil, err
	}
	return currency, nil
}

func (s *Service) rate(ctx context.Context, date time.Time, code string) (decimal.Decimal, *domain.Settings, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return decimal.Zero, nil, err
	}
	currency, err := s.getOrFetch(ctx, date)
	if err != nil {
		return decimal.Zero, nil, err
	}
	rate, ok := currency.Quotes[code]
	if !ok {
		return decimal.Zero, nil, ErrUnknownCurrency
	}
	return rate, settings, nil
}

func (s *Service) UsdToCurrency(ctx context.Context, dollars decimal.Decimal, date time.Time, code string, withFee, withRound bool) (decimal.Decimal, error) {
	rate, settings, err := s.rate(ctx, date, code)
	if err != nil {
		return decimal.Zero, err
	}

	result := dollars.Mul(rate)
	if withFee {
		result = result.Mul(settings.CurrencyFee)
	}
	if withRound {
		result = result.Round(settings.Precision(code))
	}
	return result, nil
}

func (s *Service) CurrencyToUsd(ctx context.Context, amount decimal.Decimal, date time.Time, code string, withFee, withRound bool) (decimal.Decimal, error) {
	rate, settings, err := s.rate(ctx, date, code)
	if err != nil {
		return decimal.Zero, err
	}

	result := amount.DivRound(rate, 12)
	if withFee {
		result = result.DivRound(settings.CurrencyFee, 12)
	}
	if withRound {
		result = result.Round(settings.Precision("USD"))
	}
	return result, nil
}
