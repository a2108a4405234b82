package repo

import (
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/pg"
	currencyrepo "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/repo/currency-repo"
	orderrepo "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/repo/order-repo"
	parserrepo "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/repo/parser-repo"
	preorderrepo "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/repo/preorder-repo"
	responserepo "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/repo/response-repo"
	settingsrepo "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/repo/settings-repo"
	userrepo "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/repo/user-repo"
	userorderrepo "github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/repo/userorder-repo"
)

type Repositories struct {
	UserRepo      *userrepo.Repository
	OrderRepo     *orderrepo.Repository
	PreOrderRepo  *preorderrepo.Repository
	UserOrderRepo *userorderrepo.Repository
	ResponseRepo  *responserepo.Repository
	CurrencyRepo  *currencyrepo.Repository
	SettingsRepo  *settingsrepo.Repository
	ParserRepo    *parserrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:      userrepo.New(conn),
		OrderRepo:     orderrepo.New(conn, txManager),
		PreOrderRepo:  preorderrepo.New(conn),
		UserOrderRepo: userorderrepo.New(conn, txManager),
		ResponseRepo:  responserepo.New(conn),
		CurrencyRepo:  currencyrepo.New(conn),
		SettingsRepo:  settingsrepo.New(conn),
		ParserRepo:    parserrepo.New(conn),
	}
}
