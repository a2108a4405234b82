package orders

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
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/service/orderservice"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/auth"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/utils"
)

type Service interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	ListOrders(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) error
	DeleteOrder(ctx context.Context, id int) error
	SetStatus(ctx context.Context, id int, status domain.OrderStatus) (*domain.Order, error)
	CloseRequest(ctx context.Context, id int, username, screenshotURL string) (*domain.Order, error)
	GetScreenshots(ctx context.Context, orderID int) ([]domain.Screenshot, error)
	GetPreOrder(ctx context.Context, id int) (*domain.PreOrder, error)
	ListPreOrders(ctx context.Context) ([]domain.PreOrder, error)
	DeletePreOrder(ctx context.Context, id int) error
}

type UserService interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
}

type OrderHandler struct {
	orderService Service
	userService  UserService
}

func New(orderService Service, userService UserService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		userService:  userService,
	}
}

func toOrderDTO(order *domain.Order) dto.OrderResponseDTO {
	resp := dto.OrderResponseDTO{
		ID:          order.ID,
		OrderID:     order.OrderID,
		Spreadsheet: order.Spreadsheet,
		SheetID:     order.SheetID,
		RowID:       order.RowID,
		Date:        order.Date,
		Shop:        order.Shop,
		ShopOrderID: order.ShopOrderID,
		Status:      string(order.Status),
		StatusPaid:  string(order.StatusPaid),
		AuthDate:    order.AuthDate,
		EndDate:     order.EndDate,
	}
	if order.Info != nil {
		resp.Info = &dto.OrderInfoDTO{
			Game:     order.Info.Game,
			Category: order.Info.Category,
			Purchase: order.Info.Purchase,
			Comment:  order.Info.Comment,
		}
	}
	if order.Price != nil {
		resp.Price = &dto.OrderPriceDTO{
			PriceDollar:        order.Price.PriceDollar.InexactFloat64(),
			PriceBoosterDollar: order.Price.PriceBoosterDollar.InexactFloat64(),
		}
		if order.Price.PriceBoosterGold != nil {
			gold := order.Price.PriceBoosterGold.InexactFloat64()
			resp.Price.PriceBoosterGold = &gold
		}
	}
	if order.Credentials != nil {
		resp.Credentials = &dto.OrderCredentialsDTO{
			BattleTag: order.Credentials.BattleTag,
			Login:     order.Credentials.Login,
			Password:  order.Credentials.Password,
		}
	}
	return resp
}

func toPreOrderDTO(preorder *domain.PreOrder) dto.PreOrderResponseDTO {
	return dto.PreOrderResponseDTO{
		ID:                 preorder.ID,
		OrderID:            preorder.OrderID,
		Date:               preorder.Date,
		Shop:               preorder.Shop,
		Game:               preorder.Game,
		Category:           preorder.Category,
		Purchase:           preorder.Purchase,
		PriceDollar:        preorder.PriceDollar.InexactFloat64(),
		PriceBoosterDollar: preorder.PriceBoosterDollar.InexactFloat64(),
		CreatedAt:          preorder.CreatedAt,
	}
}

// Create godoc
//
//	@Summary		Create an order
//	@Description	Register a new paid order. Orders created over the API have no spreadsheet binding.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Order payload"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		409		{object}	utils.Response	"Order already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.OrderID == "" {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "order_id is required")
		return
	}

	order := &domain.Order{
		OrderID:     req.OrderID,
		Date:        req.Date,
		Shop:        req.Shop,
		ShopOrderID: req.ShopOrderID,
		Info: &domain.OrderInfo{
			Game:     req.Info.Game,
			Category: req.Info.Category,
			Purchase: req.Info.Purchase,
			Comment:  req.Info.Comment,
		},
		Price: &domain.OrderPrice{
			PriceDollar:        decimal.NewFromFloat(req.Price.PriceDollar),
			PriceBoosterDollar: decimal.NewFromFloat(req.Price.PriceBoosterDollar),
		},
	}
	if req.Price.PriceBoosterGold != nil {
		gold := decimal.NewFromFloat(*req.Price.PriceBoosterGold)
		order.Price.PriceBoosterGold = &gold
	}
	if req.Credentials != nil {
		order.Credentials = &domain.OrderCredentials{
			BattleTag: req.Credentials.BattleTag,
			Login:     req.Credentials.Login,
			Password:  req.Credentials.Password,
		}
	}

	created, err := h.orderService.CreateOrder(r.Context(), order)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderAlreadyExists) {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(created))
}

// List godoc
//
//	@Summary		List orders
//	@Description	All orders, optionally filtered by status.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Order status filter"	Enums(In Progress, Completed, Refund)
//	@Success		200		{array}		dto.OrderResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.OrderStatus(r.URL.Query().Get("status"))

	orders, err := h.orderService.ListOrders(r.Context(), status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.OrderResponseDTO, 0, len(orders))
	for i := range orders {
		resp = append(resp, toOrderDTO(&orders[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Get godoc
//
//	@Summary		Get one order
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Order ID"
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id} [get]
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// Update godoc
//
//	@Summary		Update an order
//	@Description	Partial update of editable order fields.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Order ID"
//	@Param			request	body		dto.UpdateOrderRequestDTO	true	"Fields to update"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id} [put]
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	var req dto.UpdateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	applyUpdate(order, &req)

	if err := h.orderService.UpdateOrder(r.Context(), order); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

func applyUpdate(order *domain.Order, req *dto.UpdateOrderRequestDTO) {
	if req.Shop != nil {
		order.Shop = *req.Shop
	}
	if req.ShopOrderID != nil {
		order.ShopOrderID = *req.ShopOrderID
	}
	if req.AuthDate != nil {
		order.AuthDate = req.AuthDate
	}
	if req.Info != nil {
		if order.Info == nil {
			order.Info = &domain.OrderInfo{OrderID: order.ID}
		}
		order.Info.Game = req.Info.Game
		order.Info.Category = req.Info.Category
		order.Info.Purchase = req.Info.Purchase
		order.Info.Comment = req.Info.Comment
	}
	if req.Price != nil {
		if order.Price == nil {
			order.Price = &domain.OrderPrice{OrderID: order.ID}
		}
		order.Price.PriceDollar = decimal.NewFromFloat(req.Price.PriceDollar)
		order.Price.PriceBoosterDollar = decimal.NewFromFloat(req.Price.PriceBoosterDollar)
		if req.Price.PriceBoosterGold != nil {
			gold := decimal.NewFromFloat(*req.Price.PriceBoosterGold)
			order.Price.PriceBoosterGold = &gold
		}
	}
	if req.Credentials != nil {
		if order.Credentials == nil {
			order.Credentials = &domain.OrderCredentials{OrderID: order.ID}
		}
		order.Credentials.BattleTag = req.Credentials.BattleTag
		order.Credentials.Login = req.Credentials.Login
		order.Credentials.Password = req.Credentials.Password
	}
}

// Delete godoc
//
//	@Summary		Delete an order
//	@Description	Removes the order together with its payout assignments.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Order ID"
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id} [delete]
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	if err := h.orderService.DeleteOrder(r.Context(), id); err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Order deleted"})
}

// SetStatus godoc
//
//	@Summary		Change order status
//	@Description	Move an order between In Progress, Completed and Refund. Refund unassigns all boosters.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Order ID"
//	@Param			request	body		dto.SetStatusRequestDTO	true	"New status"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		422		{object}	utils.Response	"Unknown status"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/status [post]
func (h *OrderHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	var req dto.SetStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	status := domain.OrderStatus(req.Status)
	switch status {
	case domain.OrderStatusInProgress, domain.OrderStatusCompleted, domain.OrderStatusRefund:
	default:
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Unknown status")
		return
	}

	order, err := h.orderService.SetStatus(r.Context(), id, status)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// Close godoc
//
//	@Summary		Close an order with proof
//	@Description	Booster attaches a completion screenshot and the order is closed.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Order ID"
//	@Param			request	body		dto.CloseOrderRequestDTO	true	"Screenshot URL"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Order is not in progress"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/close-request [post]
func (h *OrderHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	var req dto.CloseOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.URL == "" {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "url is required")
		return
	}

	userID := r.Context().Value(auth.UserIDKey).(int)
	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	order, err := h.orderService.CloseRequest(r.Context(), id, user.Login, req.URL)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, orderservice.ErrOrderNotInProgress):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// Screenshots godoc
//
//	@Summary		List order screenshots
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Order ID"
//	@Success		200	{array}		dto.ScreenshotResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{id}/screenshots [get]
func (h *OrderHandler) Screenshots(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	screenshots, err := h.orderService.GetScreenshots(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.ScreenshotResponseDTO, 0, len(screenshots))
	for _, s := range screenshots {
		resp = append(resp, dto.ScreenshotResponseDTO{ID: s.ID, URL: s.URL, CreatedAt: s.CreatedAt})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ListPreOrders godoc
//
//	@Summary		List preorders
//	@Tags			PreOrders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PreOrderResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/preorders [get]
func (h *OrderHandler) ListPreOrders(w http.ResponseWriter, r *http.Request) {
	preorders, err := h.orderService.ListPreOrders(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.PreOrderResponseDTO, 0, len(preorders))
	for i := range preorders {
		resp = append(resp, toPreOrderDTO(&preorders[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetPreOrder godoc
//
//	@Summary		Get one preorder
//	@Tags			PreOrders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"PreOrder ID"
//	@Success		200	{object}	dto.PreOrderResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"PreOrder not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/preorders/{id} [get]
func (h *OrderHandler) GetPreOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid preorder id")
		return
	}
	preorder, err := h.orderService.GetPreOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, orderservice.ErrPreOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPreOrderDTO(preorder))
}

// DeletePreOrder godoc
//
//	@Summary		Delete a preorder
//	@Tags			PreOrders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"PreOrder ID"
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		404	{object}	utils.Response	"PreOrder not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/preorders/{id} [delete]
func (h *OrderHandler) DeletePreOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid preorder id")
		return
	}
	if err := h.orderService.DeletePreOrder(r.Context(), id); err != nil {
		if errors.Is(err, orderservice.ErrPreOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "PreOrder deleted"})
}
