package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/config"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/fx"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/handlers"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/notify"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/pg"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/repo"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/service"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/internal/sheets"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/auth"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/clients"
	"github.com/CraazzzyyFoxx/dude-duck-backend-sub000/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	queue  *notify.Queue
	syncer *sheets.Syncer

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	auth.SetSecret(cfg.JWTSecret)

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	a.cfg = cfg
	a.queue = newQueue(cfg)
	a.repo = repo.New(conn, txManager)

	fxClient := fx.New(cfg.FXAddress, clients.NewHTTPClient())
	a.srv = service.New(a.repo, txManager, fxClient, a.queue)

	sheetsClient, err := sheets.NewClient(ctx, cfg.GoogleCredentials)
	if err != nil {
		zap.L().Error("sheets client init failed: ", zap.Error(err))
		return fmt.Errorf("can't init sheets client: %w", err)
	}
	a.syncer = sheets.NewSyncer(
		a.repo.ParserRepo,
		a.repo.OrderRepo,
		a.srv.OrderService,
		a.srv.AccountingService,
		a.srv.SettingsService,
		sheetsClient,
		time.Duration(cfg.SyncIntervalSec)*time.Second,
	)
	a.api = handlers.New(a.srv, a.syncer)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.startWorkers(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func newQueue(cfg *config.Config) *notify.Queue {
	var senders []notify.Sender
	if cfg.TelegramToken != "" {
		sender, err := notify.NewTelegramSender(cfg.TelegramToken, cfg.TelegramChannel)
		if err != nil {
			zap.L().Error("telegram sender init failed", zap.Error(err))
		} else {
			senders = append(senders, sender)
		}
	}
	if cfg.DiscordWebhook != "" {
		senders = append(senders, notify.NewDiscordSender(cfg.DiscordWebhook, clients.NewHTTPClient()))
	}
	return notify.NewQueue(128, senders...)
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startWorkers(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.queue.Start(ctx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.syncer.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
