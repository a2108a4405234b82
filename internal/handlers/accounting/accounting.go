package accounting

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/dto"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/service/accountingservice"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/utils"
)

type Service interface {
	AddBooster(ctx context.Context, orderID, userID int) (*domain.UserOrder, error)
	AddBoosterWithPrice(ctx context.Context, orderID, userID int, price decimal.Decimal) (*domain.UserOrder, error)
	RemoveBooster(ctx context.Context, orderID, userID int) error
	PaidOrder(ctx context.Context, paymentID int) (*domain.UserOrder, error)
	GetBoosters(ctx context.Context, orderID int) ([]domain.UserOrder, error)
	Report(ctx context.Context, filter domain.ReportFilter) ([]domain.ReportRow, error)
	UserReport(ctx context.Context, username string, filter domain.ReportFilter) ([]domain.ReportRow, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
}

type AccountingHandler struct {
	accountingService Service
	userService       UserService
}

func New(accountingService Service, userService UserService) *AccountingHandler {
	return &AccountingHandler{
		accountingService: accountingService,
		userService:       userService,
	}
}

func (h *AccountingHandler) toBoosterDTO(ctx context.Context, assignment *domain.UserOrder) dto.BoosterResponseDTO {
	resp := dto.BoosterResponseDTO{
		ID:          assignment.ID,
		UserID:      assignment.UserID,
		Dollars:     assignment.Dollars.InexactFloat64(),
		Completed:   assignment.Completed,
		Paid:        assignment.Paid,
		OrderDate:   assignment.OrderDate,
		CompletedAt: assignment.CompletedAt,
		PaidAt:      assignment.PaidAt,
	}
	if user, err := h.userService.GetUser(ctx, assignment.UserID); err == nil {
		resp.Login = user.Login
	}
	return resp
}

// AddBooster godoc
//
//	@Summary		Assign a booster to an order
//	@Description	Without a price the payout is split as payout/(n+1) where n is the current booster count; existing shares are not rebalanced. With a price the booster gets exactly that amount, rejected if it exceeds the unallocated payout.
//	@Tags			Accounting
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Order ID"
//	@Param			request	body		dto.AddBoosterRequestDTO	true	"Booster assignment"
//	@Success		200		{object}	dto.BoosterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Order or user not found"
//	@Failure		409		{object}	utils.Response	"Already assigned"
//	@Failure		422		{object}	utils.Response	"User not assignable or price too high"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/accounting/orders/{id}/boosters [post]
func (h *AccountingHandler) AddBooster(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	var req dto.AddBoosterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var assignment *domain.UserOrder
	if req.Price != nil {
		assignment, err = h.accountingService.AddBoosterWithPrice(r.Context(), orderID, req.UserID, decimal.NewFromFloat(*req.Price))
	} else {
		assignment, err = h.accountingService.AddBooster(r.Context(), orderID, req.UserID)
	}
	if err != nil {
		switch {
		case errors.Is(err, accountingservice.ErrOrderNotFound), errors.Is(err, accountingservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, accountingservice.ErrAlreadyAssigned):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, accountingservice.ErrUserNotVerified),
			errors.Is(err, accountingservice.ErrOrderLimit),
			errors.Is(err, accountingservice.ErrOverAllocated):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toBoosterDTO(r.Context(), assignment))
}

// RemoveBooster godoc
//
//	@Summary		Unassign a booster from an order
//	@Description	The departing booster's share is split evenly across the remaining boosters.
//	@Tags			Accounting
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id		path		int	true	"Order ID"
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	utils.Response
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Order not found or user not assigned"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/accounting/orders/{id}/boosters/{userID} [delete]
func (h *AccountingHandler) RemoveBooster(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.accountingService.RemoveBooster(r.Context(), orderID, userID); err != nil {
		switch {
		case errors.Is(err, accountingservice.ErrOrderNotFound), errors.Is(err, accountingservice.ErrNotAssigned):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Booster removed"})
}

// GetBoosters godoc
//
//	@Summary		List an order's boosters
//	@Tags			Accounting
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Order ID"
//	@Success		200	{array}		dto.BoosterResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounting/orders/{id}/boosters [get]
func (h *AccountingHandler) GetBoosters(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	boosters, err := h.accountingService.GetBoosters(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, accountingservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.BoosterResponseDTO, 0, len(boosters))
	for i := range boosters {
		resp = append(resp, h.toBoosterDTO(r.Context(), &boosters[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Paid godoc
//
//	@Summary		Mark a payout as paid
//	@Description	Marks one booster's payout as paid. When it is the order's last unpaid payout the order flips to Paid.
//	@Tags			Accounting
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Payment (assignment) ID"
//	@Success		200	{object}	dto.PaidOrderResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		409	{object}	utils.Response	"Already paid"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounting/payments/{id}/paid [post]
func (h *AccountingHandler) Paid(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment id")
		return
	}
	if _, err := h.accountingService.PaidOrder(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, accountingservice.ErrPaymentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, accountingservice.ErrAlreadyPaid):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaidOrderResponseDTO{Message: "Payment marked as paid"})
}

func parseFilter(query url.Values) (domain.ReportFilter, error) {
	var filter domain.ReportFilter
	if v := query.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, err
		}
		filter.From = t
	}
	if v := query.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, err
		}
		filter.To = t
	}
	filter.Spreadsheet = query.Get("spreadsheet")
	filter.SheetID = query.Get("sheet_id")
	filter.Username = query.Get("username")
	for name, dst := range map[string]**bool{"completed": &filter.Completed, "paid": &filter.Paid} {
		if v := query.Get(name); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return filter, err
			}
			*dst = &b
		}
	}
	filter.SortBy = domain.ReportSort(query.Get("sort_by"))
	filter.ThenBy = domain.ReportSort(query.Get("then_by"))
	return filter, nil
}

func toReportDTO(rows []domain.ReportRow) dto.ReportResponseDTO {
	resp := dto.ReportResponseDTO{Entries: make([]dto.ReportRowDTO, 0, len(rows))}
	total := decimal.Zero
	orders := make(map[string]struct{})
	users := make(map[string]struct{})
	for _, row := range rows {
		total = total.Add(row.Dollars)
		orders[row.OrderID] = struct{}{}
		users[row.Username] = struct{}{}
		resp.Entries = append(resp.Entries, dto.ReportRowDTO{
			OrderID:   row.OrderID,
			Username:  row.Username,
			Dollars:   row.Dollars.InexactFloat64(),
			OrderDate: row.OrderDate,
			Completed: row.Completed,
			Paid:      row.Paid,
		})
	}
	resp.Total = total.InexactFloat64()
	resp.Orders = len(orders)
	resp.Users = len(users)
	return resp
}

// Report godoc
//
//	@Summary		Payout report
//	@Description	Accounting report over all payout assignments, filterable by date range, sheet, booster and status.
//	@Tags			Accounting
//	@Security		BearerAuth
//	@Produce		json
//	@Param			from		query		string	false	"Start of range (RFC3339)"
//	@Param			to			query		string	false	"End of range (RFC3339)"
//	@Param			spreadsheet	query		string	false	"Spreadsheet ID"
//	@Param			sheet_id	query		string	false	"Sheet name"
//	@Param			username	query		string	false	"Booster login"
//	@Param			completed	query		bool	false	"Completed filter"
//	@Param			paid		query		bool	false	"Paid filter"
//	@Param			sort_by		query		string	false	"Primary sort"	Enums(order, date, username)
//	@Param			then_by		query		string	false	"Secondary sort"	Enums(order, date, username)
//	@Success		200			{object}	dto.ReportResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid filter"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Admin only"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/accounting/report [get]
func (h *AccountingHandler) Report(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid filter")
		return
	}
	rows, err := h.accountingService.Report(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toReportDTO(rows))
}

// UserReport godoc
//
//	@Summary		Per-booster payout report
//	@Tags			Accounting
//	@Security		BearerAuth
//	@Produce		json
//	@Param			username	path		string	true	"Booster login"
//	@Param			from		query		string	false	"Start of range (RFC3339)"
//	@Param			to			query		string	false	"End of range (RFC3339)"
//	@Param			completed	query		bool	false	"Completed filter"
//	@Param			paid		query		bool	false	"Paid filter"
//	@Success		200			{object}	dto.ReportResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid filter"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Admin only"
//	@Failure		404			{object}	utils.Response	"User not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/accounting/users/{username}/report [get]
func (h *AccountingHandler) UserReport(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid filter")
		return
	}
	rows, err := h.accountingService.UserReport(r.Context(), username, filter)
	if err != nil {
		if errors.Is(err, accountingservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toReportDTO(rows))
}
