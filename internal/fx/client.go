package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

// Client fetches historical FX quotes from the currency-data HTTP API.
type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(url string, client clients.HTTPClientI) *Client {
	return &Client{
		url:    url,
		client: client,
	}
}

type ratesResponse struct {
	Success bool               `json:"success"`
	Quotes  map[string]float64 `json:"quotes"`
	Error   struct {
		Code int    `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// Rates returns code->rate quotes for the calendar date. Quote keys come
// back prefixed with the source currency ("USDRUB"); the prefix is
// stripped.
func (c *Client) Rates(ctx context.Context, date time.Time, token string) (map[string]decimal.Decimal, error) {
	url := fmt.Sprintf("%s/historical?date=%s", c.url, date.Format("2006-01-02"))
	headers := http.Header{}
	headers.Set("apikey", token)

	var (
		statusCode  int
		respBody    []byte
		respHeaders http.Header
		err         error
	)
	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		statusCode, respBody, respHeaders, err = c.client.Get(url, headers)
		if err != nil {
			if attempt < maxRetries {
				time.Sleep(retryInterval * time.Duration(attempt))
				continue
			}
			return nil, fmt.Errorf("failed to fetch fx rates after %d retries: %w", maxRetries, err)
		}

		switch statusCode {
		case http.StatusTooManyRequests:
			retryAfter := retryInterval * time.Duration(attempt)
			if header := respHeaders.Get("Retry-After"); header != "" {
				if seconds, err := strconv.Atoi(header); err == nil {
					retryAfter = time.Duration(seconds) * time.Second
				}
			}
			zap.L().Warn("fx rate limit detected, retrying", zap.Int("attempt", attempt), zap.Duration("retryAfter", retryAfter))
			time.Sleep(retryAfter)
		case http.StatusOK:
			return parseRates(respBody)
		default:
			zap.L().Error("unexpected fx status code", zap.Int("status", statusCode))
			return nil, fmt.Errorf("unexpected fx status code: %d", statusCode)
		}
	}
	return nil, fmt.Errorf("failed to fetch fx rates after %d retries", maxRetries)
}

func parseRates(body []byte) (map[string]decimal.Decimal, error) {
	var response ratesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse fx response body: %w", err)
	}
	if !response.Success {
		return nil, fmt.Errorf("fx api error %d: %s", response.Error.Code, response.Error.Info)
	}

	quotes := make(map[string]decimal.Decimal, len(response.Quotes))
	for pair, rate := range response.Quotes {
		code := strings.TrimPrefix(pair, "USD")
		quotes[code] = decimal.NewFromFloat(rate)
	}
	return quotes, nil
}
