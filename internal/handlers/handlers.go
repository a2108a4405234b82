package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/docs"
	accountinghandlers "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/handlers/accounting"
	authhandlers "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/handlers/auth"
	ordershandlers "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/handlers/orders"
	responsehandlers "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/handlers/response"
	settingshandlers "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/handlers/settings"
	sheetshandlers "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/handlers/sheets"
	usershandlers "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/handlers/users"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/service"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	SetMaxOrders(w http.ResponseWriter, r *http.Request)
	GetPayroll(w http.ResponseWriter, r *http.Request)
	UpdatePayroll(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	Screenshots(w http.ResponseWriter, r *http.Request)
	ListPreOrders(w http.ResponseWriter, r *http.Request)
	GetPreOrder(w http.ResponseWriter, r *http.Request)
	DeletePreOrder(w http.ResponseWriter, r *http.Request)
}

type AccountingHandler interface {
	AddBooster(w http.ResponseWriter, r *http.Request)
	RemoveBooster(w http.ResponseWriter, r *http.Request)
	GetBoosters(w http.ResponseWriter, r *http.Request)
	Paid(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
	UserReport(w http.ResponseWriter, r *http.Request)
}

type ResponseHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Decline(w http.ResponseWriter, r *http.Request)
	ApplyPreOrder(w http.ResponseWriter, r *http.Request)
	ListPreOrder(w http.ResponseWriter, r *http.Request)
}

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Convert(w http.ResponseWriter, r *http.Request)
}

type SheetsHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Sync(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	UserHandler       UserHandler
	OrderHandler      OrderHandler
	AccountingHandler AccountingHandler
	ResponseHandler   ResponseHandler
	SettingsHandler   SettingsHandler
	SheetsHandler     SheetsHandler
}

func New(s *service.Services, syncer sheetshandlers.Syncer) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		UserHandler:       usershandlers.New(s.AuthService),
		OrderHandler:      ordershandlers.New(s.OrderService, s.AuthService),
		AccountingHandler: accountinghandlers.New(s.AccountingService, s.AuthService),
		ResponseHandler:   responsehandlers.New(s.ResponseService, s.AuthService),
		SettingsHandler:   settingshandlers.New(s.SettingsService, s.CurrencyService),
		SheetsHandler:     sheetshandlers.New(s.ParserService, syncer),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", h.UserHandler.Me)
				r.Get("/me/payroll", h.UserHandler.GetPayroll)
				r.Put("/me/payroll", h.UserHandler.UpdatePayroll)

				r.Group(func(r chi.Router) {
					r.Use(auth.AdminMiddleware)
					r.Get("/", h.UserHandler.List)
					r.Post("/{id}/verify", h.UserHandler.Verify)
					r.Post("/{id}/max-orders", h.UserHandler.SetMaxOrders)
				})
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.OrderHandler.List)
				r.Get("/{id}", h.OrderHandler.Get)
				r.Post("/{id}/close-request", h.OrderHandler.Close)
				r.Get("/{id}/screenshots", h.OrderHandler.Screenshots)

				r.Group(func(r chi.Router) {
					r.Use(auth.AdminMiddleware)
					r.Post("/", h.OrderHandler.Create)
					r.Put("/{id}", h.OrderHandler.Update)
					r.Delete("/{id}", h.OrderHandler.Delete)
					r.Post("/{id}/status", h.OrderHandler.SetStatus)
				})
			})

			r.Route("/preorders", func(r chi.Router) {
				r.Get("/", h.OrderHandler.ListPreOrders)
				r.Get("/{id}", h.OrderHandler.GetPreOrder)
				r.With(auth.AdminMiddleware).Delete("/{id}", h.OrderHandler.DeletePreOrder)
			})

			r.Route("/response", func(r chi.Router) {
				r.Post("/{orderID}", h.ResponseHandler.Apply)
				r.Post("/preorder/{preorderID}", h.ResponseHandler.ApplyPreOrder)

				r.Group(func(r chi.Router) {
					r.Use(auth.AdminMiddleware)
					r.Get("/{orderID}", h.ResponseHandler.List)
					r.Get("/preorder/{preorderID}", h.ResponseHandler.ListPreOrder)
					r.Post("/{orderID}/approve/{userID}", h.ResponseHandler.Approve)
					r.Post("/{orderID}/decline/{userID}", h.ResponseHandler.Decline)
				})
			})

			r.Route("/accounting", func(r chi.Router) {
				r.Get("/orders/{id}/boosters", h.AccountingHandler.GetBoosters)

				r.Group(func(r chi.Router) {
					r.Use(auth.AdminMiddleware)
					r.Post("/orders/{id}/boosters", h.AccountingHandler.AddBooster)
					r.Delete("/orders/{id}/boosters/{userID}", h.AccountingHandler.RemoveBooster)
					r.Post("/payments/{id}/paid", h.AccountingHandler.Paid)
					r.Get("/report", h.AccountingHandler.Report)
					r.Get("/users/{username}/report", h.AccountingHandler.UserReport)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/convert", h.SettingsHandler.Convert)

				r.Group(func(r chi.Router) {
					r.Use(auth.AdminMiddleware)
					r.Get("/", h.SettingsHandler.Get)
					r.Put("/", h.SettingsHandler.Update)
				})
			})

			r.Route("/sheets", func(r chi.Router) {
				r.Use(auth.AdminMiddleware)
				r.Get("/parsers", h.SheetsHandler.List)
				r.Post("/parsers", h.SheetsHandler.Create)
				r.Put("/parsers/{id}", h.SheetsHandler.Update)
				r.Delete("/parsers/{id}", h.SheetsHandler.Delete)
				r.Post("/sync", h.SheetsHandler.Sync)
			})
		})
	})

	return r
}
