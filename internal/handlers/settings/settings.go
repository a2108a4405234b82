package settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/dto"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/service/currencyservice"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/utils"
)

type Service interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, settings *domain.Settings) error
}

type CurrencyService interface {
	UsdToCurrency(ctx context.Context, dollars decimal.Decimal, date time.Time, code string, withFee, withRound bool) (decimal.Decimal, error)
	CurrencyToUsd(ctx context.Context, amount decimal.Decimal, date time.Time, code string, withFee, withRound bool) (decimal.Decimal, error)
}

type SettingsHandler struct {
	settingsService Service
	currencyService CurrencyService
}

func New(settingsService Service, currencyService CurrencyService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		currencyService: currencyService,
	}
}

func toSettingsDTO(settings *domain.Settings) dto.SettingsResponseDTO {
	resp := dto.SettingsResponseDTO{
		CurrencyFee:    settings.CurrencyFee.InexactFloat64(),
		PreOrderTTLMin: int(settings.PreOrderTTL / time.Minute),
		Precisions:     settings.Precisions,
		SyncBoosters:   settings.SyncBoosters,
		APITokens:      make([]dto.APITokenDTO, 0, len(settings.APITokens)),
	}
	for _, token := range settings.APITokens {
		resp.APITokens = append(resp.APITokens, dto.APITokenDTO{Token: token.Token, Uses: token.Uses})
	}
	return resp
}

// Get godoc
//
//	@Summary		Get global settings
//	@Tags			Settings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SettingsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/settings [get]
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSettingsDTO(settings))
}

// Update godoc
//
//	@Summary		Update global settings
//	@Description	Partial update; omitted fields keep their current values.
//	@Tags			Settings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateSettingsRequestDTO	true	"Settings payload"
//	@Success		200		{object}	dto.SettingsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/settings [put]
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSettingsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if req.CurrencyFee != nil {
		settings.CurrencyFee = decimal.NewFromFloat(*req.CurrencyFee)
	}
	if req.PreOrderTTLMin != nil {
		settings.PreOrderTTL = time.Duration(*req.PreOrderTTLMin) * time.Minute
	}
	if req.Precisions != nil {
		settings.Precisions = req.Precisions
	}
	if req.APITokens != nil {
		tokens := make([]domain.APIToken, 0, len(req.APITokens))
		for _, token := range req.APITokens {
			tokens = append(tokens, domain.APIToken{Token: token.Token, Uses: token.Uses})
		}
		settings.APITokens = tokens
	}
	if req.SyncBoosters != nil {
		settings.SyncBoosters = *req.SyncBoosters
	}

	if err := h.settingsService.Update(r.Context(), settings); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSettingsDTO(settings))
}

// Convert godoc
//
//	@Summary		Convert between USD and another currency
//	@Description	Converts an amount using the cached daily rate, applying the configured fee and per-currency rounding. Direction "from_usd" (default) or "to_usd".
//	@Tags			Settings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			amount		query		number	true	"Amount to convert"
//	@Param			currency	query		string	true	"Currency code"	example(RUB)
//	@Param			date		query		string	false	"Quote date (RFC3339), defaults to now"
//	@Param			direction	query		string	false	"Conversion direction"	Enums(from_usd, to_usd)
//	@Success		200			{object}	dto.ConvertResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid parameters"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		422			{object}	utils.Response	"Unknown currency"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/settings/convert [get]
func (h *SettingsHandler) Convert(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	amount, err := strconv.ParseFloat(query.Get("amount"), 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}
	code := query.Get("currency")
	if code == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "currency is required")
		return
	}
	date := time.Now()
	if v := query.Get("date"); v != "" {
		date, err = time.Parse(time.RFC3339, v)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid date")
			return
		}
	}

	var converted decimal.Decimal
	switch query.Get("direction") {
	case "to_usd":
		converted, err = h.currencyService.CurrencyToUsd(r.Context(), decimal.NewFromFloat(amount), date, code, true, true)
		code = "USD"
	default:
		converted, err = h.currencyService.UsdToCurrency(r.Context(), decimal.NewFromFloat(amount), date, code, true, true)
	}
	if err != nil {
		if errors.Is(err, currencyservice.ErrUnknownCurrency) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ConvertResponseDTO{
		Amount:   converted.InexactFloat64(),
		Currency: code,
	})
}
