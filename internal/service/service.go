package service

import (
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/notify"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/pg"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/repo"
	accountingservice "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/service/accountingservice"
	authservice "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/service/authservice"
	currencyservice "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/service/currencyservice"
	orderservice "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/service/orderservice"
	parserservice "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/service/parserservice"
	responseservice "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/service/responseservice"
	settingsservice "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/service/settingsservice"
	pkgauth "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/auth"
)

type Services struct {
	AuthService       *authservice.Service
	OrderService      *orderservice.Service
	AccountingService *accountingservice.Service
	ResponseService   *responseservice.Service
	SettingsService   *settingsservice.Service
	CurrencyService   *currencyservice.Service
	ParserService     *parserservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, rateClient currencyservice.RateClient, notifier *notify.Queue) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	accountingService := accountingservice.New(repo.UserOrderRepo, repo.UserRepo, repo.OrderRepo, notifier, txManager)
	orderService := orderservice.New(repo.OrderRepo, repo.PreOrderRepo, repo.UserOrderRepo, repo.ResponseRepo, notifier)
	responseService := responseservice.New(repo.ResponseRepo, repo.OrderRepo, repo.PreOrderRepo, repo.UserRepo, accountingService, notifier)
	settingsService := settingsservice.New(repo.SettingsRepo)
	currencyService := currencyservice.New(repo.CurrencyRepo, rateClient, settingsService)
	parserService := parserservice.New(repo.ParserRepo)

	return &Services{
		AuthService:       authService,
		OrderService:      orderService,
		AccountingService: accountingService,
		ResponseService:   responseService,
		SettingsService:   settingsService,
		CurrencyService:   currencyService,
		ParserService:     parserService,
	}
}
