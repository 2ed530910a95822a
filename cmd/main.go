package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"gridduel/internal/adapters"
	"gridduel/internal/bootstrap"
	gameDelivery "gridduel/internal/delivery/game"
	ownMiddleware "gridduel/internal/middleware"
	repo "gridduel/internal/repository"
	gameuc "gridduel/internal/usecase/match"
)

type dataBaseAdapters struct {
	redisAdapter *adapters.AdapterRedis
	mongoAdapter *adapters.AdapterMongo
}

func main() {
	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		panic("failed to setup configuration: " + err.Error())
	}
	logger := NewLogger(cfg.LogLevel)
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	databaseAdapters := initDatabaseAdapters(ctx, logger, cfg)
	defer databaseAdapters.Close(context.Background())

	matchID := uuid.New().String()
	hub := gameDelivery.NewHub(logger)
	processor, err := gameuc.NewProcessor(
		gameuc.NewGame(matchID),
		hub,
		logger,
		gameuc.WithInboxSize(cfg.InboxSize),
		gameuc.WithArchiveBuffer(cfg.ArchiveBuffer),
		gameuc.WithStore(initMatchStore(logger, databaseAdapters)),
	)
	if err != nil {
		logger.Fatal("Failed to create command processor", zap.Error(err))
	}

	processorDone := make(chan struct{})
	go func() {
		processor.Run(ctx)
		close(processorDone)
	}()

	r := chi.NewRouter()
	Router(r, cfg, gameDelivery.NewGameHandler(logger, processor, hub))

	srv := &http.Server{Addr: cfg.ServerPort, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancelShutdown()
		hub.CloseAll()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown server", zap.Error(err))
		}
	}()

	logger.Infof("Match %s is waiting for players on %s", matchID, cfg.ServerPort)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to start server", zap.Error(err))
		cancel()
	}
	<-processorDone
}

func NewLogger(level string) *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	if level == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func Router(r *chi.Mux, cfg *bootstrap.Config, game *gameDelivery.GameHandler) {
	if cfg.IsLocalCors {
		r.Use(ownMiddleware.CORS)
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	game.Routes(r)

	if cfg.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	}
}

// initDatabaseAdapters connects only the backends that are configured.
func initDatabaseAdapters(ctx context.Context, log *zap.SugaredLogger, cfg *bootstrap.Config) *dataBaseAdapters {
	result := &dataBaseAdapters{}

	if cfg.MongoUri != "" {
		mongoAdapter := adapters.NewAdapterMongo(cfg)
		if err := mongoAdapter.Init(ctx); err != nil {
			log.Fatal("Failed to initialize MongoDB", zap.Error(err))
		}
		result.mongoAdapter = mongoAdapter
	}

	if cfg.RedisUrl != "" {
		redisAdapter := adapters.NewAdapterRedis(cfg)
		if err := redisAdapter.Init(ctx); err != nil {
			log.Fatal("Failed to initialize Redis", zap.Error(err))
		}
		result.redisAdapter = redisAdapter
	}

	log.Info("Database adapters initialized")
	return result
}

func initMatchStore(log *zap.SugaredLogger, a *dataBaseAdapters) gameuc.MatchStore {
	if a.redisAdapter == nil && a.mongoAdapter == nil {
		log.Info("No archive backend configured, keeping match events in memory")
		return repo.NewMemoryStore()
	}

	var (
		redisClient *redis.Client
		database    *mongo.Database
	)
	if a.redisAdapter != nil {
		redisClient = a.redisAdapter.GetClient()
	}
	if a.mongoAdapter != nil {
		database = a.mongoAdapter.Database
	}
	return repo.NewMatchRepository(log, redisClient, database)
}

func (d *dataBaseAdapters) Close(ctx context.Context) {
	if d.mongoAdapter != nil {
		_ = d.mongoAdapter.Close(ctx)
	}
	if d.redisAdapter != nil {
		_ = d.redisAdapter.Close(ctx)
	}
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
}
