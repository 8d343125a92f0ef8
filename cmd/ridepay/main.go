package main

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/ridepay/internal/pkg/config"
	"github.com/piresc/ridepay/internal/pkg/database"
	"github.com/piresc/ridepay/internal/pkg/eventbus"
	"github.com/piresc/ridepay/internal/pkg/health"
	"github.com/piresc/ridepay/internal/pkg/logger"
	"github.com/piresc/ridepay/internal/pkg/middleware"
	"github.com/piresc/ridepay/internal/pkg/models"
	nrpkg "github.com/piresc/ridepay/internal/pkg/newrelic"
	"github.com/piresc/ridepay/internal/pkg/requestcontext"
	"github.com/piresc/ridepay/internal/pkg/retry"
	"github.com/piresc/ridepay/internal/pkg/server"
	"github.com/piresc/ridepay/services/fare/route"
	"github.com/piresc/ridepay/services/rides"
	ridegateway "github.com/piresc/ridepay/services/rides/gateway"
	ridehandler "github.com/piresc/ridepay/services/rides/handler"
	ridenats "github.com/piresc/ridepay/services/rides/handler/nats"
	riderepo "github.com/piresc/ridepay/services/rides/repository"
	rideusecase "github.com/piresc/ridepay/services/rides/usecase"
	"github.com/piresc/ridepay/services/wallet"
	walletgateway "github.com/piresc/ridepay/services/wallet/gateway"
	wallethandler "github.com/piresc/ridepay/services/wallet/handler"
	walletrepo "github.com/piresc/ridepay/services/wallet/repository"
	walletusecase "github.com/piresc/ridepay/services/wallet/usecase"
)

type repositories struct {
	wallet  wallet.WalletRepo
	trips   rides.TripRepo
	drivers rides.DriverRepo
}

func main() {
	appName := "ridepay"
	configPath := "config/ridepay.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("storage", configs.Storage.Driver),
		logger.String("event_bus", configs.EventBus.Type),
	)

	e := echo.New()
	e.HideBanner = true
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	healthService := health.NewHealthService()

	repos := initStorage(configs, zapLogger, srv, healthService)

	// Driver locator and rate limiting share Redis when it is configured
	var (
		locator      rides.DriverLocator
		requestLimit echo.MiddlewareFunc
	)
	if configs.Storage.Driver == "memory" {
		locator = ridegateway.NewMemoryLocator()
	} else {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		srv.Components().Register("redis", func(context.Context) error { return redisClient.Close() })
		healthService.AddChecker("redis", health.PingChecker(redisClient))
		locator = ridegateway.NewRedisLocator(redisClient)
		requestLimit = rideRequestLimiter(configs.RateLimit, redisClient.GetClient())
	}

	bus, err := eventbus.New(configs)
	if err != nil {
		zapLogger.Fatal("Failed to connect to event bus", logger.Err(err), logger.String("type", configs.EventBus.Type))
	}
	srv.Components().Register("event_bus", func(context.Context) error { return bus.Close() })
	healthService.AddChecker("event_bus", health.PingChecker(bus))
	publisher := eventbus.NewEventPublisher(bus, retry.NewWithDefaults())

	router, err := route.NewFromConfig(configs.Maps)
	if err != nil {
		zapLogger.Fatal("Failed to initialize route estimator", logger.Err(err))
	}

	// Initialize usecases
	walletUC := walletusecase.NewWalletUC(configs, repos.wallet, walletgateway.NewWalletGW(publisher))
	rideUC := rideusecase.NewRideUC(
		configs,
		repos.trips,
		repos.drivers,
		locator,
		ridegateway.NewRideGW(publisher),
		walletUC,
		router,
	)

	// Settle completed trips from the event stream
	consumerCtx, stopConsumers := context.WithCancel(context.Background())
	srv.Components().Register("consumers", func(context.Context) error {
		stopConsumers()
		return nil
	})
	settlement := ridenats.NewSettlementHandler(rideUC, bus, nrApp)
	if err := settlement.InitConsumers(consumerCtx); err != nil {
		zapLogger.Fatal("Failed to initialize event consumers", logger.Err(err))
	}

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(requestcontext.Middleware())
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	api := e.Group("/api/v1", middleware.JWTAuthMiddleware(configs.JWT))
	wallethandler.NewHandler(walletUC).RegisterRoutes(api)
	rideRoutes := ridehandler.NewHandler(rideUC)
	rideRoutes.RegisterRoutes(api, requestLimit)

	internal := e.Group("/internal", middleware.ValidateAPIKey(configs.APIKey.Internal))
	rideRoutes.RegisterInternalRoutes(internal)

	if err := srv.Run(context.Background()); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}
	zapLogger.Info("Server exited gracefully")
}

// initStorage opens the configured store and returns the repositories built
// on it. The postgres client is closed by the server on shutdown.
func initStorage(configs *models.Config, zapLogger *logger.ZapLogger, srv *server.GracefulServer, hs *health.HealthService) repositories {
	switch configs.Storage.Driver {
	case "memory":
		rideStore := riderepo.NewMemoryRepository()
		return repositories{
			wallet:  walletrepo.NewMemoryRepository(),
			trips:   rideStore,
			drivers: rideStore,
		}
	case "", "postgres":
		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
		}
		srv.Components().Register("postgres", func(context.Context) error { return postgresClient.Close() })
		hs.AddChecker("postgres", health.PingChecker(postgresClient))

		if configs.Database.MigrateOnStart {
			if err := database.MigrateUp(postgresClient.GetDB().DB); err != nil {
				zapLogger.Fatal("Failed to apply migrations", logger.Err(err))
			}
			zapLogger.Info("Database migrations applied")
		}

		rideStore := riderepo.NewPostgresRepository(postgresClient.GetDB())
		return repositories{
			wallet:  walletrepo.NewPostgresRepository(postgresClient.GetDB()),
			trips:   rideStore,
			drivers: rideStore,
		}
	default:
		zapLogger.Fatal("Unknown storage driver", logger.String("driver", configs.Storage.Driver))
		return repositories{}
	}
}

func rideRequestLimiter(cfg models.RateLimitConfig, client *redis.Client) echo.MiddlewareFunc {
	if cfg.RideRequests <= 0 {
		return nil
	}
	period := time.Duration(cfg.PeriodSeconds) * time.Second
	if period <= 0 {
		period = time.Minute
	}
	return middleware.ActorRateLimiter(cfg.RideRequests, period, client)
}
