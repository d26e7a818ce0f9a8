package app

import (
	"fmt"
	"net/http"

	"family-organizer/internal/config"
	"family-organizer/internal/db"
	"family-organizer/internal/domain/activities"
	"family-organizer/internal/domain/dashboard"
	"family-organizer/internal/domain/location"
	"family-organizer/internal/domain/mealgen"
	"family-organizer/internal/domain/meals"
	"family-organizer/internal/domain/members"
	"family-organizer/internal/domain/session"
	"family-organizer/internal/domain/settings"
	"family-organizer/internal/domain/shopping"
	"family-organizer/internal/integration/completions"
	"family-organizer/internal/metrics"
	"family-organizer/internal/repository/inmemory"
	pgstate "family-organizer/internal/repository/postgres/state"
	"family-organizer/internal/repository/sqlite/state"
	collections "family-organizer/internal/repository/state"
	"family-organizer/internal/seed"
	"family-organizer/internal/storage"
	"family-organizer/internal/transport/httpserver"
	"family-organizer/internal/transport/httpserver/handler"
	activitieshandler "family-organizer/internal/transport/httpserver/handler/activities"
	commonhandler "family-organizer/internal/transport/httpserver/handler/common"
	familyhandler "family-organizer/internal/transport/httpserver/handler/family"
	mealplanshandler "family-organizer/internal/transport/httpserver/handler/mealplans"
	settingshandler "family-organizer/internal/transport/httpserver/handler/settings"
	shoppinghandler "family-organizer/internal/transport/httpserver/handler/shopping"
	"family-organizer/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	router     http.Handler
	closers    []func() error
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg, log)
}

func NewWithConfig(cfg config.Config, log logger.Logger) (*App, error) {
	a := &App{cfg: cfg}

	log.Info("app: loading seed data", "file", cfg.SeedFile)
	data, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return nil, err
	}

	log.Info("app: opening store", "driver", cfg.Store.Driver)
	backend, err := a.openBackend(log)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	var collector *metrics.Metrics
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}
	store := storage.NewStore(backend, log, storage.WithRecorder(collector))

	memberRepo := collections.NewMemberRepository(store, data.Members)
	mealRepo := collections.NewMealPlanRepository(store, data.MealPlans)
	shoppingRepo := collections.NewShoppingRepository(store)
	activityRepo := collections.NewActivityRepository(store, data.Activities)
	settingsRepo := collections.NewSettingsRepository(store)
	sessionRepo := collections.NewSessionRepository(store)

	memberService := members.NewService(memberRepo, members.Options{HashPasswords: cfg.Auth.HashPasswords})
	sessionService := session.NewService(sessionRepo, memberService, log, collector, session.Options{
		InsecureDemoMode: cfg.Auth.InsecureDemoMode,
	})
	mealService := meals.NewService(mealRepo, memberService)
	shoppingService := shopping.NewService(shoppingRepo, mealService)
	activityService := activities.NewService(activityRepo, memberService, nil)
	settingsService := settings.NewService(settingsRepo)
	completer := completions.New(completions.Config{
		Endpoint:    cfg.MealGen.Endpoint,
		Model:       cfg.MealGen.Model,
		MaxTokens:   cfg.MealGen.MaxTokens,
		Temperature: cfg.MealGen.Temperature,
		Timeout:     cfg.MealGen.Timeout,
	}, nil)
	generator := mealgen.NewService(completer, settingsService, mealService, log, collector, mealgen.Options{
		FallbackAPIKey: cfg.MealGen.APIKey,
	})
	dashboardService := dashboard.NewService(mealService, activityService, shoppingService, memberService, nil)
	locationService := location.NewService(activityService, memberService, nil, nil)

	if cfg.Auth.InsecureDemoMode {
		log.Warn("app: insecure demo mode, login screen shows member passwords")
	}

	handlers := &handler.Handlers{
		Common:     commonhandler.New(sessionService, dashboardService, locationService, log),
		Family:     familyhandler.New(memberService, log),
		MealPlans:  mealplanshandler.New(mealService, generator, log),
		Shopping:   shoppinghandler.New(shoppingService, log),
		Activities: activitieshandler.New(activityService, log),
		Settings:   settingshandler.New(settingsService, log),
	}

	var metricsHandler http.Handler
	if collector != nil {
		metricsHandler = collector.Handler()
	}

	log.Info("app: initializing router")
	a.router = httpserver.NewRouter(cfg, handlers, sessionService, metricsHandler)
	a.httpServer = httpserver.New(cfg, a.router)
	return a, nil
}

func (a *App) openBackend(log logger.Logger) (storage.Backend, error) {
	switch a.cfg.Store.Driver {
	case config.StoreDriverMemory:
		return inmemory.NewStateBackend(), nil
	case config.StoreDriverSQLite:
		conn, err := db.NewSQLite(a.cfg.Store.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, conn.Close)
		return state.NewSQLite(conn), nil
	case config.StoreDriverPostgres:
		conn, err := db.NewPostgres(a.cfg.DB, log)
		if err != nil {
			return nil, err
		}
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, sqlDB.Close)
		if err := db.Migrate(conn, log); err != nil {
			return nil, err
		}
		return pgstate.NewPostgres(conn), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", a.cfg.Store.Driver)
	}
}

// Config returns the configuration the app was built with.
func (a *App) Config() config.Config {
	return a.cfg
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Router() http.Handler {
	return a.router
}

func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}
