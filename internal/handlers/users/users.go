package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/dto"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/service/authservice"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/auth"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/utils"
)

type Service interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	VerifyUser(ctx context.Context, id int) error
	SetMaxOrders(ctx context.Context, id, maxOrders int) error
	GetPayrolls(ctx context.Context, userID int) ([]domain.Payroll, error)
	UpdatePayrolls(ctx context.Context, userID int, payrolls []domain.Payroll) error
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func toUserDTO(user *domain.User) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:         user.ID,
		Login:      user.Login,
		Role:       string(user.Role),
		IsVerified: user.IsVerified,
		MaxOrders:  user.MaxOrders,
		Telegram:   user.Telegram,
	}
}

// Me godoc
//
//	@Summary		Get current user
//	@Description	Profile of the authenticated user.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.UserResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUserDTO(user))
}

// List godoc
//
//	@Summary		List all users
//	@Description	Admin view of every registered account.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.UserResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.UserResponseDTO, 0, len(users))
	for i := range users {
		resp = append(resp, toUserDTO(&users[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Verify godoc
//
//	@Summary		Verify a user
//	@Description	Mark an account as verified so it can be assigned to orders.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id}/verify [post]
func (h *UserHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	if err := h.userService.VerifyUser(r.Context(), id); err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "User verified"})
}

// SetMaxOrders godoc
//
//	@Summary		Set user max orders
//	@Description	Change the maximum number of active orders a booster may hold at once.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"User ID"
//	@Param			request	body		dto.MaxOrdersRequestDTO	true	"Max orders payload"
//	@Success		200		{object}	utils.Response
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id}/max-orders [post]
func (h *UserHandler) SetMaxOrders(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	var req dto.MaxOrdersRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.MaxOrders < 0 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "max_orders must be non-negative")
		return
	}
	if err := h.userService.SetMaxOrders(r.Context(), id, req.MaxOrders); err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Max orders updated"})
}

// GetPayroll godoc
//
//	@Summary		Get own payout methods
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PayrollDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/me/payroll [get]
func (h *UserHandler) GetPayroll(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	payrolls, err := h.userService.GetPayrolls(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.PayrollDTO, 0, len(payrolls))
	for _, p := range payrolls {
		resp = append(resp, dto.PayrollDTO{Bank: p.Bank, Type: p.Type, Value: p.Value})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// UpdatePayroll godoc
//
//	@Summary		Replace own payout methods
//	@Description	Replaces the full list of payout methods for the authenticated user.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		[]dto.PayrollDTO	true	"Payout methods"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/me/payroll [put]
func (h *UserHandler) UpdatePayroll(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req []dto.PayrollDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	payrolls := make([]domain.Payroll, 0, len(req))
	for _, p := range req {
		payrolls = append(payrolls, domain.Payroll{
			UserID: userID,
			Bank:   p.Bank,
			Type:   p.Type,
			Value:  p.Value,
		})
	}
	if err := h.userService.UpdatePayrolls(r.Context(), userID, payrolls); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Payroll updated"})
}
