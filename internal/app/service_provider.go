package app

import (
	"context"
	"io"
	"net/http"

	"coop_slots/internal/api/middleware"
	sessionAPI "coop_slots/internal/api/session"
	slotAPI "coop_slots/internal/api/slot"
	wagerAPI "coop_slots/internal/api/wager"
	"coop_slots/internal/config"
	"coop_slots/internal/config/env"
	"coop_slots/internal/metrics"
	"coop_slots/internal/repository"
	"coop_slots/internal/repository/memory_repo"
	"coop_slots/internal/repository/pg_repo"
	"coop_slots/internal/repository/redis_repo"
	"coop_slots/internal/repository/session_repo"
	"coop_slots/internal/repository/sqlite_repo"
	"coop_slots/internal/repository/stats_repo"
	"coop_slots/internal/service"
	"coop_slots/internal/service/session"
	"coop_slots/internal/service/simulate"
	"coop_slots/internal/service/spin"
	"coop_slots/internal/service/wager"
	"coop_slots/pkg/logger"
	"coop_slots/pkg/rng"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	log    *zap.Logger
	logCfg config.LoggerConfig

	//TXManager
	txManager wager.TxManager

	// Storage
	storageCfg config.StorageConfig
	pgConfig   config.PGConfig
	dbClient   *pgxpool.Pool
	redisCfg   config.RedisConfig
	redisCli   redis.UniversalClient
	kvRepo     repository.KVRepository
	closers    []io.Closer

	// Slot bits
	gameCfg  config.GameConfig
	spinServ service.SpinService
	simServ  service.SimulationService
	slotHand *slotAPI.Handler

	// Session bits
	sessionRepo repository.SessionRepository
	sessionServ service.SessionService
	sessionHand *sessionAPI.Handler

	// Wager bits
	statsRepo repository.StatsRepository
	wagerServ service.WagerService
	wagerHand *wagerAPI.Handler

	// Operator access
	operatorCfg config.OperatorConfig

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLoggerConfig()
		if err != nil {
			panic("failed to get logger config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		cfg := sp.LoggerCfg()
		sp.log = logger.New(logger.Config{Level: cfg.Level(), Dir: cfg.Dir(), File: cfg.File()})
	}
	return sp.log
}

func (sp *ServiceProvider) StorageCfg() config.StorageConfig {
	if sp.storageCfg == nil {
		cfg, err := env.NewStorageConfig()
		if err != nil {
			panic("failed to get storage config: " + err.Error())
		}
		sp.storageCfg = cfg
	}
	return sp.storageCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		err = pg_repo.EnsureSchema(ctx, dbc)
		if err != nil {
			panic("failed to prepare db schema: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) RedisCfg() config.RedisConfig {
	if sp.redisCfg == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisCfg = cfg
	}
	return sp.redisCfg
}

func (sp *ServiceProvider) RedisClient(ctx context.Context) redis.UniversalClient {
	if sp.redisCli == nil {
		cfg := sp.RedisCfg()
		cli := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})
		if err := cli.Ping(ctx).Err(); err != nil {
			panic("failed to ping redis: " + err.Error())
		}
		sp.redisCli = cli
		sp.closers = append(sp.closers, cli)
	}
	return sp.redisCli
}

// TXManager - транзакции есть только у postgres, остальным хранилищам они не нужны
func (sp *ServiceProvider) TXManager(ctx context.Context) wager.TxManager {
	if sp.txManager == nil {
		if sp.StorageCfg().Driver() != config.StoragePostgres {
			sp.txManager = wager.DirectTx{}
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}

	return sp.txManager
}

// KVRepository выбирает хранилище по STORAGE_DRIVER
func (sp *ServiceProvider) KVRepository(ctx context.Context) repository.KVRepository {
	if sp.kvRepo == nil {
		switch sp.StorageCfg().Driver() {
		case config.StorageSQLite:
			r, err := sqlite_repo.Open(sp.StorageCfg().SQLitePath())
			if err != nil {
				panic("failed to open sqlite: " + err.Error())
			}
			sp.closers = append(sp.closers, r)
			sp.kvRepo = r
		case config.StoragePostgres:
			sp.kvRepo = pg_repo.NewKVRepository(sp.DBClient(ctx))
		case config.StorageRedis:
			sp.kvRepo = redis_repo.NewKVRepository(sp.RedisClient(ctx), sp.RedisCfg().KeyPrefix())
		default:
			sp.kvRepo = memory_repo.NewKVRepository()
		}
		sp.Logger().Info("storage ready", zap.String("driver", sp.StorageCfg().Driver()))
	}
	return sp.kvRepo
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfig()
		if err != nil {
			panic("failed to get slot config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) SpinService() service.SpinService {
	if sp.spinServ == nil {
		sp.spinServ = spin.NewSpinService(
			sp.GameCfg().ReelConfig(),
			spin.WithSource(rng.New()),
			spin.WithPayoutTable(sp.GameCfg().PayoutTable()),
			spin.WithLogger(sp.Logger().Named("spin")),
		)
	}
	return sp.spinServ
}

func (sp *ServiceProvider) SimulationService() service.SimulationService {
	if sp.simServ == nil {
		sp.simServ = simulate.NewSimulationService(sp.SpinService(), sp.Logger().Named("simulate"))
	}
	return sp.simServ
}

func (sp *ServiceProvider) SlotHandler() *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{
			Serv: sp.SpinService(),
			Sim:  sp.SimulationService(),
			Log:  sp.Logger().Named("api.slot"),
		})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) SessionRepository(ctx context.Context) repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository(sp.KVRepository(ctx))
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) SessionService(ctx context.Context) service.SessionService {
	if sp.sessionServ == nil {
		sp.sessionServ = session.NewSessionService(ctx, sp.SessionRepository(ctx),
			session.WithLogger(sp.Logger().Named("session")))
	}
	return sp.sessionServ
}

func (sp *ServiceProvider) SessionHandler(ctx context.Context) *sessionAPI.Handler {
	if sp.sessionHand == nil {
		sp.sessionHand = sessionAPI.NewHandler(sessionAPI.HandlerDeps{
			Serv: sp.SessionService(ctx),
			Log:  sp.Logger().Named("api.session"),
		})
	}
	return sp.sessionHand
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) WagerService(ctx context.Context) service.WagerService {
	if sp.wagerServ == nil {
		sp.wagerServ = wager.NewWagerService(
			sp.SpinService(),
			sp.SessionService(ctx),
			sp.StatsRepository(),
			sp.TXManager(ctx),
			sp.Logger().Named("wager"),
		)
	}
	return sp.wagerServ
}

func (sp *ServiceProvider) WagerHandler(ctx context.Context) *wagerAPI.Handler {
	if sp.wagerHand == nil {
		sp.wagerHand = wagerAPI.NewHandler(wagerAPI.HandlerDeps{Serv: sp.WagerService(ctx)})
	}
	return sp.wagerHand
}

func (sp *ServiceProvider) OperatorCfg() config.OperatorConfig {
	if sp.operatorCfg == nil {
		cfg, err := env.NewOperatorConfig()
		if err != nil {
			panic("failed to get operator config: " + err.Error())
		}
		sp.operatorCfg = cfg
	}
	return sp.operatorCfg
}

// operatorOnly - middleware для операторских ручек, без ключа пропускает всех
func (sp *ServiceProvider) operatorOnly() func(http.Handler) http.Handler {
	secret := sp.OperatorCfg().TokenSecretKey()
	if len(secret) == 0 {
		sp.Logger().Warn("OPERATOR_TOKEN_SECRET is empty, operator routes are open")
		return func(next http.Handler) http.Handler { return next }
	}
	return middleware.RequireOperator(secret)
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))

		operatorOnly := sp.operatorOnly()

		// Slot endpoints
		slotHandler := sp.SlotHandler()
		r.Route("/slot", func(rr chi.Router) {
			rr.Post("/spin", slotHandler.Spin)
			rr.Post("/burst", slotHandler.Burst)
			rr.Post("/simulate", slotHandler.Simulate)
			rr.Get("/last", slotHandler.Last)
			rr.Get("/config", slotHandler.GetConfig)
			rr.With(operatorOnly).Put("/config", slotHandler.PutConfig)
		})

		// Wager endpoints
		wagerHandler := sp.WagerHandler(ctx)
		r.Route("/wager", func(rr chi.Router) {
			rr.Post("/spin", wagerHandler.Spin)
			rr.Post("/burst", wagerHandler.Burst)
		})
		r.Get("/stats", wagerHandler.Stats)

		// Session endpoints
		sessionHandler := sp.SessionHandler(ctx)
		r.Route("/session", func(rr chi.Router) {
			rr.Get("/", sessionHandler.Get)
			rr.Post("/deposit", sessionHandler.Deposit)
			rr.Post("/spend", sessionHandler.Spend)
			rr.With(operatorOnly).Post("/reset", sessionHandler.Reset)
			rr.Post("/reload", sessionHandler.Reload)
		})

		r.Handle("/metrics", metrics.Handler())

		sp.router = r
	}
	return sp.router
}

// Close освобождает соединения с хранилищами
func (sp *ServiceProvider) Close() {
	for i := len(sp.closers) - 1; i >= 0; i-- {
		if err := sp.closers[i].Close(); err != nil {
			sp.Logger().Warn("close failed", zap.Error(err))
		}
	}
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	_ = sp.Logger().Sync()
}
