package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Catalog/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/Catalog/internal/handler/http"
	"github.com/mikiasgoitom/Catalog/internal/handler/http/middleware"
	redisclient "github.com/mikiasgoitom/Catalog/internal/infrastructure/cache"
	"github.com/mikiasgoitom/Catalog/internal/infrastructure/config"
	database "github.com/mikiasgoitom/Catalog/internal/infrastructure/database"
	"github.com/mikiasgoitom/Catalog/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/Catalog/internal/infrastructure/logger"
	natsmsg "github.com/mikiasgoitom/Catalog/internal/infrastructure/messaging/nats"
	passwordservice "github.com/mikiasgoitom/Catalog/internal/infrastructure/password_service"
	"github.com/mikiasgoitom/Catalog/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/Catalog/internal/infrastructure/repository/postgres"
	"github.com/mikiasgoitom/Catalog/internal/infrastructure/store"
	"github.com/mikiasgoitom/Catalog/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Catalog/internal/infrastructure/validator"
	"github.com/mikiasgoitom/Catalog/internal/usecase"
)

type repositories struct {
	users     contract.IUserRepository
	products  contract.IProductRepository
	reactions contract.IReactionRepository
	close     func()
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("catalog api: %v", err)
	}
}

// run wires the application and blocks until a shutdown signal or a server
// failure. Every resource opened here is released by its defer.
func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable not set")
	}

	appLogger, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = appLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Dependency Injection: Repositories
	repos, err := openRepositories(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer repos.close()

	// Optional Dependency Injection: Redis cache
	var productCache contract.IProductCache
	if cfg.RedisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connect to Redis: %w", err)
		}
		defer redisclient.Close(rdb)
		productCache = store.NewProductCacheStore(rdb, cfg.GetListCacheTTL())
		appLogger.Infof("listing cache: redis")
	} else {
		productCache = store.NewMemoryProductCache(cfg.GetListCacheTTL())
		appLogger.Infof("listing cache: in-process (REDIS_URL not set)")
	}

	// Optional Dependency Injection: NATS events
	var publisher contract.IEventPublisher = natsmsg.NoopPublisher{}
	if cfg.NATSURL != "" {
		natsPublisher, err := natsmsg.NewPublisher(cfg.NATSURL, appLogger.Zap())
		if err != nil {
			return fmt.Errorf("connect to NATS: %w", err)
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
	}

	// Dependency Injection: Services
	validator.RegisterCustomValidators()
	hasher := passwordservice.NewHasher()
	jwtService := jwt.NewJWTService(jwt.NewJWTManager(cfg.JWTSecret, cfg.GetJWTExpiry()))
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Usecases
	invalidator := usecase.NewListingInvalidator(productCache, appLogger)
	userUsecase := usecase.NewUserUsecase(repos.users, hasher, jwtService, appLogger, appValidator, uuidGenerator)
	productUsecase := usecase.NewProductUsecase(repos.products, repos.reactions, invalidator, publisher, uuidGenerator, appLogger)
	productUsecase.SetProductCache(productCache)
	reactionUsecase := usecase.NewReactionUsecase(repos.reactions, invalidator, publisher, uuidGenerator, appLogger)

	// Setup API routes
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(appLogger.Zap()))
	appRouter := handlerHttp.NewRouter(userUsecase, productUsecase, reactionUsecase, jwtService, appLogger, handlerHttp.RouterOptions{
		RequestTimeout: cfg.GetRequestTimeout(),
		RateLimitRPS:   cfg.RateLimitRPS,
	})
	appRouter.SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		appLogger.Infof("Server running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	appLogger.Infof("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// openRepositories connects to the configured store and prepares its schema.
func openRepositories(ctx context.Context, cfg *config.Config, appLogger *logger.ZapLogger) (*repositories, error) {
	if cfg.UseMongo() {
		mongoClient, err := database.NewMongoDBClient(cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		db := mongoClient.Client.Database(cfg.MongoDBName)

		indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if err := mongodb.EnsureIndexes(indexCtx, db); err != nil {
			_ = mongoClient.Disconnect()
			return nil, err
		}
		appLogger.Infof("store: mongodb database=%s", cfg.MongoDBName)
		return &repositories{
			users:     mongodb.NewMongoUserRepository(db.Collection("users")),
			products:  mongodb.NewProductRepository(db),
			reactions: mongodb.NewReactionRepository(db),
			close: func() {
				if err := mongoClient.Disconnect(); err != nil {
					appLogger.Warnf("mongo disconnect: %v", err)
				}
			},
		}, nil
	}

	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := postgres.AutoMigrate(db); err != nil {
		_ = database.ClosePostgres(db)
		return nil, err
	}
	appLogger.Infof("store: postgres")
	return &repositories{
		users:     postgres.NewUserRepository(db),
		products:  postgres.NewProductRepository(db),
		reactions: postgres.NewReactionRepository(db),
		close: func() {
			if err := database.ClosePostgres(db); err != nil {
				appLogger.Warnf("postgres close: %v", err)
			}
		},
	}, nil
}
