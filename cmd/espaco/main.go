package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/adapter/cache"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/bootstrap"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/config"
	internalhttp "github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/http"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/http/handler"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/http/middleware"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/repository"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/server"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/service"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/telemetry"
)

func main() {
	app := fx.New(
		fx.Provide(
			newConfig,
			newLogger,
			newTelemetry,
			newMongoClient,
			newDatabase,
			newRedisClient,
			newSessionStore,
			newRateLimiter,
			fx.Annotate(repository.NewMongoUserRepo, fx.As(new(repository.UserRepository))),
			fx.Annotate(repository.NewMongoTaskRepo, fx.As(new(repository.TaskRepository))),
			fx.Annotate(repository.NewMongoClientRepo, fx.As(new(repository.ClientRepository))),
			fx.Annotate(repository.NewMongoCampaignRepo, fx.As(new(repository.CampaignRepository))),
			service.NewAuthService,
			service.NewTaskService,
			service.NewClientService,
			middleware.NewSessionAuth,
			handler.NewAuthHandler,
			handler.NewTaskHandler,
			handler.NewClientHandler,
			handler.NewCampaignHandler,
			newRouter,
			server.NewHTTPServer,
		),
		fx.Invoke(useTelemetry),
		fx.Invoke(prepareStore),
		fx.Invoke(startHTTPServer),
	)

	app.Run()
}

func newConfig() (config.Config, error) {
	return config.Load()
}

// useTelemetry forces construction of the tracing provider, which nothing
// else in the graph consumes.
func useTelemetry(*telemetry.Provider) {}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.Environment == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func newTelemetry(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*telemetry.Provider, error) {
	provider, err := telemetry.New(context.Background(), cfg, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}

func newMongoClient(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*mongo.Client, error) {
	client, err := repository.Connect(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("mongodb connected", zap.String("database", cfg.MongoDatabase))
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})
	return client, nil
}

func newDatabase(client *mongo.Client, cfg config.Config) *mongo.Database {
	return client.Database(cfg.MongoDatabase)
}

func newRedisClient(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, err
	}
	logger.Info("redis connected", zap.String("addr", cfg.RedisAddr))

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func newSessionStore(client redis.UniversalClient) repository.SessionStore {
	return cache.NewRedisSessionStore(client)
}

func newRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimitRPM)
}

func newRouter(
	cfg config.Config,
	authHandler *handler.AuthHandler,
	taskHandler *handler.TaskHandler,
	clientHandler *handler.ClientHandler,
	campaignHandler *handler.CampaignHandler,
	sessionAuth *middleware.SessionAuth,
	rateLimiter *middleware.RateLimiter,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	return internalhttp.NewRouter(cfg, authHandler, taskHandler, clientHandler, campaignHandler, sessionAuth, rateLimiter, logger)
}

// prepareStore runs one-time store maintenance before the server accepts
// traffic: legacy owner-field normalization and the optional admin account.
func prepareStore(lc fx.Lifecycle, cfg config.Config, db *mongo.Database, users repository.UserRepository, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := bootstrap.NormalizeTaskOwners(ctx, db, logger); err != nil {
				return err
			}
			return bootstrap.EnsureAdmin(ctx, cfg, users, logger)
		},
	})
}

func startHTTPServer(lc fx.Lifecycle, srv *server.HTTPServer, cfg config.Config, logger *zap.Logger, shutdowner fx.Shutdowner) {
	runCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := srv.Run(runCtx, ":"+cfg.HTTPPort); err != nil {
					logger.Error("http server stopped", zap.Error(err))
					if err := shutdowner.Shutdown(); err != nil {
						log.Printf("shutdown: %v", err)
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
