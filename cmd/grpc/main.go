package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-shift-service/config"
	"github.com/fekuna/omnipos-shift-service/internal/movement"
	"github.com/fekuna/omnipos-shift-service/internal/movement/draft"
	"github.com/fekuna/omnipos-shift-service/internal/movement/listener"
	"github.com/fekuna/omnipos-shift-service/internal/payment"
	"github.com/fekuna/omnipos-shift-service/internal/payment/ratecache"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/broker"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/cache"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/database"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/i18n"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-shift-service/internal/pkg/search"
	"github.com/fekuna/omnipos-shift-service/internal/server"
	"github.com/fekuna/omnipos-shift-service/internal/timeline/sink"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 2.5 Initialize i18n
	if err := i18n.Init(); err != nil {
		appLogger.Fatal("Could not load message catalogs", zap.Error(err))
	}
	if path := cfg.Server.ExtraLocalePath; path != "" {
		if err := i18n.Load(path); err != nil {
			appLogger.Warn("Failed to load extra locale", zap.String("path", path), zap.Error(err))
		}
	}

	// 3. Connect to Database
	db, err := openDatabase(&cfg.Database)
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := database.Migrate(ctx, db); err != nil {
		appLogger.Fatal("Could not migrate database", zap.Error(err))
	}

	deps := &server.Deps{DB: db, Cash: cfg.Cash, Logger: appLogger}

	// 4. Initialize Redis
	deps.Drafts, deps.RateCache = openRedis(&cfg.Redis, appLogger)

	// 5. Initialize Kafka
	var restockConsumer *broker.KafkaConsumer
	if cfg.Kafka.Enabled {
		producer := broker.NewProducer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.TimelineTopic,
		})
		defer producer.Close()
		deps.Sinks = append(deps.Sinks, sink.NewKafka(producer))

		restockConsumer = broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.RestockTopic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer restockConsumer.Close()
		appLogger.Info("Connected to Kafka", zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("timeline_topic", cfg.Kafka.TimelineTopic), zap.String("restock_topic", cfg.Kafka.RestockTopic))
	}

	// 6. Initialize Elasticsearch
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Elasticsearch, timeline search falls back to the database", zap.Error(err))
	} else {
		index := sink.NewElastic(esClient, cfg.Elastic.Index)
		if err := index.EnsureIndex(ctx); err != nil {
			appLogger.Warn("Could not create timeline index", zap.String("index", cfg.Elastic.Index), zap.Error(err))
		} else {
			deps.Sinks = append(deps.Sinks, index)
			deps.Searcher = index
			appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
		}
	}

	// 7. Wire services
	srv := server.New(deps)

	// Start Listener
	if restockConsumer != nil {
		go listener.NewRestockListener(restockConsumer, srv.Movements, appLogger).Start(ctx)
	}

	// 8. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		appLogger.Fatal("failed to listen", zap.String("port", port), zap.Error(err))
	}

	appLogger.Info("Starting gRPC server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := srv.GRPC.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()
	srv.Health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	srv.Health.Shutdown()
	cancel()
	srv.GRPC.GracefulStop()
	appLogger.Info("Server stopped")
}

func openDatabase(cfg *config.DatabaseConfig) (*sqlx.DB, error) {
	if cfg.Driver == "sqlite" {
		return database.NewSQLite(cfg.SQLitePath)
	}
	return database.NewPostgres(&database.Config{
		Host:            cfg.Host,
		Port:            cfg.Port,
		User:            cfg.User,
		Password:        cfg.Password,
		DBName:          cfg.DBName,
		SSLMode:         cfg.SSLMode,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.ConnMaxIdleTime) * time.Second,
	})
}

// openRedis falls back to in-process drafts and no rate cache when Redis is
// disabled or unreachable. The rate cache is returned as an untyped nil in
// that case.
func openRedis(cfg *config.RedisConfig, log logger.ZapLogger) (movement.DraftStore, payment.RateCache) {
	if !cfg.Enabled {
		return draft.NewMemoryStore(), nil
	}
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		log.Warn("Could not connect to Redis, drafts are kept in memory", zap.String("addr", cfg.Addr), zap.Error(err))
		return draft.NewMemoryStore(), nil
	}
	log.Info("Connected to Redis", zap.String("addr", cfg.Addr))
	return draft.NewRedisStore(redisClient), ratecache.NewRedis(redisClient)
}
