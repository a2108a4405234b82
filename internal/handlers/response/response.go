package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/domain"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/dto"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/service/accountingservice"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/service/responseservice"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/auth"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/utils"
)

type Service interface {
	Apply(ctx context.Context, orderID, userID int, text string, price *decimal.Decimal) (*domain.Response, error)
	List(ctx context.Context, orderID int) ([]domain.Response, error)
	Approve(ctx context.Context, orderID, userID int) (*domain.Response, error)
	Decline(ctx context.Context, orderID, userID int) (*domain.Response, error)
	ApplyPreOrder(ctx context.Context, preOrderID, userID int, text string, price *decimal.Decimal) (*domain.PreOrderResponse, error)
	ListPreOrder(ctx context.Context, preOrderID int) ([]domain.PreOrderResponse, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
}

type ResponseHandler struct {
	responseService Service
	userService     UserService
}

func New(responseService Service, userService UserService) *ResponseHandler {
	return &ResponseHandler{
		responseService: responseService,
		userService:     userService,
	}
}

func (h *ResponseHandler) toDTO(ctx context.Context, resp *domain.Response) dto.ResponseDTO {
	out := dto.ResponseDTO{
		ID:        resp.ID,
		OrderID:   resp.OrderID,
		UserID:    resp.UserID,
		Approved:  resp.Approved,
		Closed:    resp.Closed,
		Text:      resp.Text,
		CreatedAt: resp.CreatedAt,
	}
	if resp.Price != nil {
		price := resp.Price.InexactFloat64()
		out.Price = &price
	}
	if user, err := h.userService.GetUser(ctx, resp.UserID); err == nil {
		out.Login = user.Login
	}
	return out
}

func (h *ResponseHandler) toPreOrderDTO(ctx context.Context, resp *domain.PreOrderResponse) dto.PreOrderApplyResponseDTO {
	out := dto.PreOrderApplyResponseDTO{
		ID:         resp.ID,
		PreOrderID: resp.PreOrderID,
		UserID:     resp.UserID,
		Text:       resp.Text,
		CreatedAt:  resp.CreatedAt,
	}
	if resp.Price != nil {
		price := resp.Price.InexactFloat64()
		out.Price = &price
	}
	if user, err := h.userService.GetUser(ctx, resp.UserID); err == nil {
		out.Login = user.Login
	}
	return out
}

// Apply godoc
//
//	@Summary		Apply to an order
//	@Description	Booster responds to an open order, optionally naming a price. One response per user and order.
//	@Tags			Responses
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path		int					true	"Order ID"
//	@Param			request	body		dto.ApplyRequestDTO	true	"Response payload"
//	@Success		200		{object}	dto.ResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Order closed or already responded"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/response/{orderID} [post]
func (h *ResponseHandler) Apply(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	var req dto.ApplyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := r.Context().Value(auth.UserIDKey).(int)
	var price *decimal.Decimal
	if req.Price != nil {
		p := decimal.NewFromFloat(*req.Price)
		price = &p
	}

	resp, err := h.responseService.Apply(r.Context(), orderID, userID, req.Text, price)
	if err != nil {
		switch {
		case errors.Is(err, responseservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, responseservice.ErrOrderClosed), errors.Is(err, responseservice.ErrAlreadyResponded):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toDTO(r.Context(), resp))
}

// ApplyPreOrder godoc
//
//	@Summary		Apply to a preorder
//	@Description	Booster expresses interest in a preorder. A responded preorder is not removed by TTL expiry.
//	@Tags			Responses
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			preorderID	path		int					true	"PreOrder ID"
//	@Param			request		body		dto.ApplyRequestDTO	true	"Response payload"
//	@Success		200			{object}	dto.PreOrderApplyResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"PreOrder not found"
//	@Failure		409			{object}	utils.Response	"Already responded"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/response/preorder/{preorderID} [post]
func (h *ResponseHandler) ApplyPreOrder(w http.ResponseWriter, r *http.Request) {
	preOrderID, err := strconv.Atoi(chi.URLParam(r, "preorderID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid preorder id")
		return
	}
	var req dto.ApplyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := r.Context().Value(auth.UserIDKey).(int)
	var price *decimal.Decimal
	if req.Price != nil {
		p := decimal.NewFromFloat(*req.Price)
		price = &p
	}

	resp, err := h.responseService.ApplyPreOrder(r.Context(), preOrderID, userID, req.Text, price)
	if err != nil {
		switch {
		case errors.Is(err, responseservice.ErrPreOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, responseservice.ErrAlreadyResponded):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toPreOrderDTO(r.Context(), resp))
}

// ListPreOrder godoc
//
//	@Summary		List responses to a preorder
//	@Tags			Responses
//	@Security		BearerAuth
//	@Produce		json
//	@Param			preorderID	path		int	true	"PreOrder ID"
//	@Success		200			{array}		dto.PreOrderApplyResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Admin only"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/response/preorder/{preorderID} [get]
func (h *ResponseHandler) ListPreOrder(w http.ResponseWriter, r *http.Request) {
	preOrderID, err := strconv.Atoi(chi.URLParam(r, "preorderID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid preorder id")
		return
	}
	responses, err := h.responseService.ListPreOrder(r.Context(), preOrderID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	out := make([]dto.PreOrderApplyResponseDTO, 0, len(responses))
	for i := range responses {
		out = append(out, h.toPreOrderDTO(r.Context(), &responses[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// List godoc
//
//	@Summary		List responses to an order
//	@Tags			Responses
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orderID	path		int	true	"Order ID"
//	@Success		200		{array}		dto.ResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/response/{orderID} [get]
func (h *ResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	responses, err := h.responseService.List(r.Context(), orderID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	out := make([]dto.ResponseDTO, 0, len(responses))
	for i := range responses {
		out = append(out, h.toDTO(r.Context(), &responses[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// Approve godoc
//
//	@Summary		Approve a response
//	@Description	Assigns the responding booster via accounting, closes all other responses and notifies everyone involved.
//	@Tags			Responses
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orderID	path		int	true	"Order ID"
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	dto.ResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Order or response not found"
//	@Failure		409		{object}	utils.Response	"Already approved or booster not assignable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/response/{orderID}/approve/{userID} [post]
func (h *ResponseHandler) Approve(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	resp, err := h.responseService.Approve(r.Context(), orderID, userID)
	if err != nil {
		switch {
		case errors.Is(err, responseservice.ErrOrderNotFound), errors.Is(err, responseservice.ErrResponseNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, responseservice.ErrAlreadyApproved),
			errors.Is(err, accountingservice.ErrAlreadyAssigned),
			errors.Is(err, accountingservice.ErrUserNotVerified),
			errors.Is(err, accountingservice.ErrOrderLimit),
			errors.Is(err, accountingservice.ErrOverAllocated):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toDTO(r.Context(), resp))
}

// Decline godoc
//
//	@Summary		Decline a response
//	@Tags			Responses
//	@Security		BearerAuth
//	@Produce		json
//	@Param			orderID	path		int	true	"Order ID"
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{object}	dto.ResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Response not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/response/{orderID}/decline/{userID} [post]
func (h *ResponseHandler) Decline(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	resp, err := h.responseService.Decline(r.Context(), orderID, userID)
	if err != nil {
		if errors.Is(err, responseservice.ErrResponseNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.toDTO(r.Context(), resp))
}
