package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/config"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/migrations"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/repositories"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-smarthome-designer API
// @version 1.0.0
// @description Smart home layout designer: accounts, saved scene projects and the device catalog
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, Redis, catalog storage, event
// publisher and HTTP server, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	db, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	catalog, err := newCatalogStorage(ctx, cfg)
	if err != nil {
		return err
	}

	var events services.EventWriter
	if w := newEventWriter(cfg.Kafka); w != nil {
		defer w.Close()
		events = w
		logger.Log.Infow("publishing events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	handler := newRouter(cfg, routerDeps{
		db:       db,
		sessions: repositories.NewSessionRepository(rdb, cfg.JWT.Expiration()),
		catalog:  catalog,
		events:   events,
	})

	srv := &http.Server{
		Addr:    cfg.App.Addr(),
		Handler: handler,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.App.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// openDatabase connects to the configured database and applies migrations.
func openDatabase(ctx context.Context, cfg config.Database) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	if cfg.Driver == config.DriverSQLite {
		// a single writer avoids SQLITE_BUSY under request transactions
		db.SetMaxOpenConns(1)
	}

	if err := migrations.Up(ctx, db.DB, cfg.Driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return db, nil
}

// newCatalogStorage returns the configured catalog backend.
func newCatalogStorage(ctx context.Context, cfg *config.Config) (services.CatalogStorage, error) {
	if cfg.Catalog.Backend != config.CatalogBackendMinio {
		logger.Log.Infow("using file catalog", "dir", cfg.Catalog.Dir)
		return repositories.NewFileCatalogRepository(cfg.Catalog.Dir), nil
	}

	client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	storage, err := repositories.NewMinioCatalogRepository(ctx, client, cfg.Minio.Bucket)
	if err != nil {
		return nil, err
	}
	logger.Log.Infow("using minio catalog", "endpoint", cfg.Minio.Endpoint, "bucket", cfg.Minio.Bucket)
	return storage, nil
}

// newEventWriter returns a Kafka writer, or nil when no brokers are configured.
func newEventWriter(cfg config.Kafka) *kafka.Writer {
	if len(cfg.Brokers) == 0 {
		return nil
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}
