package currencyservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockRateClient, *MockSettingsProvider) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	client := NewMockRateClient(ctrl)
	settings := NewMockSettingsProvider(ctrl)
	service := New(repo, client, settings)
	defer ctrl.Finish()
	return service, repo, client, settings
}

func testSettings() *domain.Settings {
	return &domain.Settings{
		CurrencyFee: decimal.RequireFromString("1.03"),
		Precisions:  map[string]int32{"RUB": 0, "USD": 2},
	}
}

func testQuotes() *domain.Currency {
	return &domain.Currency{
		Date:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Quotes: map[string]decimal.Decimal{"RUB": decimal.RequireFromString("90.5")},
	}
}

func TestUsdToCurrency(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		code          string
		withFee       bool
		withRound     bool
		prepareMock   func(repo *MockRepo, client *MockRateClient, settings *MockSettingsProvider)
		expected      string
		expectedError error
	}{
		{
			name:      "Cached quotes with fee and rounding",
			code:      "RUB",
			withFee:   true,
			withRound: true,
			prepareMock: func(repo *MockRepo, client *MockRateClient, settings *MockSettingsProvider) {
				settings.EXPECT().Get(gomock.Any()).Return(testSettings(), nil)
				repo.EXPECT().FindByDate(gomock.Any(), date).Return(testQuotes(), nil)
			},
			// 100 * 90.5 * 1.03 = 9321.5, rounded to whole rubles
			expected: "9322",
		},
		{
			name:      "Raw conversion without fee or rounding",
			code:      "RUB",
			withFee:   false,
			withRound: false,
			prepareMock: func(repo *MockRepo, client *MockRateClient, settings *MockSettingsProvider) {
				settings.EXPECT().Get(gomock.Any()).Return(testSettings(), nil)
				repo.EXPECT().FindByDate(gomock.Any(), date).Return(testQuotes(), nil)
			},
			expected: "9050",
		},
		{
			name:      "Cache miss fetches and stores the day's quotes",
			code:      "RUB",
			withFee:   false,
			withRound: false,
			prepareMock: func(repo *MockRepo, client *MockRateClient, settings *MockSettingsProvider) {
				settings.EXPECT().Get(gomock.Any()).Return(testSettings(), nil)
				repo.EXPECT().FindByDate(gomock.Any(), date).Return(nil, nil)
				settings.EXPECT().TakeToken(gomock.Any()).Return("fx-key", nil)
				client.EXPECT().Rates(gomock.Any(), date, "fx-key").Return(testQuotes().Quotes, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expected: "9050",
		},
		{
			name: "Unknown currency code",
			code: "XYZ",
			prepareMock: func(repo *MockRepo, client *MockRateClient, settings *MockSettingsProvider) {
				settings.EXPECT().Get(gomock.Any()).Return(testSettings(), nil)
				repo.EXPECT().FindByDate(gomock.Any(), date).Return(testQuotes(), nil)
			},
			expectedError: ErrUnknownCurrency,
		},
		{
			name: "FX client failure surfaces",
			code: "RUB",
			prepareMock: func(repo *MockRepo, client *MockRateClient, settings *MockSettingsProvider) {
				settings.EXPECT().Get(gomock.Any()).Return(testSettings(), nil)
				repo.EXPECT().FindByDate(gomock.Any(), date).Return(nil, nil)
				settings.EXPECT().TakeToken(gomock.Any()).Return("fx-key", nil)
				client.EXPECT().Rates(gomock.Any(), date, "fx-key").Return(nil, errors.New("api down"))
			},
			expectedError: errors.New("api down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, client, settings := NewMock(t)
			tt.prepareMock(repo, client, settings)

			result, err := service.UsdToCurrency(context.Background(), decimal.RequireFromString("100"), date, tt.code, tt.withFee, tt.withRound)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.True(t, result.Equal(decimal.RequireFromString(tt.expected)), "got %s", result)
			}
		})
	}
}

func TestCurrencyToUsdInverse(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	service, repo, _, settings := NewMock(t)

	settings.EXPECT().Get(gomock.Any()).Return(testSettings(), nil).Times(2)
	repo.EXPECT().FindByDate(gomock.Any(), date).Return(testQuotes(), nil).Times(2)

	dollars := decimal.RequireFromString("250")
	rubles, err := service.UsdToCurrency(context.Background(), dollars, date, "RUB", true, false)
	assert.NoError(t, err)

	back, err := service.CurrencyToUsd(context.Background(), rubles, date, "RUB", true, true)
	assert.NoError(t, err)
	assert.True(t, back.Equal(dollars), "round trip drifted: got %s", back)
}
