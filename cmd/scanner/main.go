package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-hotwallet/internal/adapter"
	"github.com/feral-file/ff-hotwallet/internal/config"
	"github.com/feral-file/ff-hotwallet/internal/logger"
	"github.com/feral-file/ff-hotwallet/internal/messaging"
	"github.com/feral-file/ff-hotwallet/internal/metrics"
	"github.com/feral-file/ff-hotwallet/internal/notifier"
	"github.com/feral-file/ff-hotwallet/internal/providers/ethereum"
	"github.com/feral-file/ff-hotwallet/internal/providers/jetstream"
	"github.com/feral-file/ff-hotwallet/internal/registry"
	"github.com/feral-file/ff-hotwallet/internal/scanner"
	"github.com/feral-file/ff-hotwallet/internal/store"
	"github.com/feral-file/ff-hotwallet/internal/sweeper"
	"github.com/feral-file/ff-hotwallet/internal/webhook"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadScannerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "hotwallet-scanner",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Hot Wallet Scanner")

	// Connect to database
	db, err := store.Open(cfg.Database, cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("driver", cfg.Database.Driver))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.String("driver", cfg.Database.Driver),
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
	)

	// Initialize store and adapters
	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(cfg.Notifier.HTTPTimeout, adapter.NoRetry)
	m := metrics.New()

	// Connect to the node recorded in rpc_configs
	gateway, err := ethereum.Connect(ctx, dataStore, adapter.NewRPCDialer(cfg.Ethereum.RPCTimeout))
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to node", zap.Error(err))
	}

	// Load the address and coin registry
	reg := registry.New(dataStore, cfg.Ethereum.NativeCoinName)
	if err := reg.Load(ctx); err != nil {
		logger.FatalCtx(ctx, "Failed to load registry", zap.Error(err))
	}

	chainScanner := scanner.New(scanner.Config{
		ConfirmationDelay: cfg.Scan.ConfirmationDelay,
		BatchSize:         cfg.Scan.BatchSize,
	}, dataStore, gateway, reg, m)

	depositNotifier := notifier.New(notifier.Config{
		PageSize:  cfg.Notifier.PageSize,
		PoolSize:  cfg.Notifier.Worker.WorkerPoolSize,
		QueueSize: cfg.Notifier.Worker.WorkerQueueSize,
	}, dataStore, reg, httpClient, webhook.NewSigner(jsonAdapter, adapter.NewJCS()), clock, m)

	jobs := []sweeper.Sweeper{
		sweeper.NewPeriodic("scanner", cfg.Scan.Interval, chainScanner, clock, m),
		sweeper.NewPeriodic("notifier", cfg.Notifier.Interval, depositNotifier, clock, m),
		sweeper.NewPeriodic("registry-reload", cfg.Scan.IndexReloadInterval, sweeper.JobFunc(reg.Load), clock, m),
	}

	errCh := make(chan error, len(jobs)+2)
	var wg sync.WaitGroup
	for _, job := range jobs {
		wg.Add(1)
		go func(job sweeper.Sweeper) {
			defer wg.Done()
			if err := job.Start(ctx); err != nil {
				errCh <- fmt.Errorf("%s stopped: %w", job.Name(), err)
			}
		}(job)
	}

	// Apply address events published by the API
	var subscriber messaging.Subscriber
	if cfg.NATS.URL != "" {
		subscriber, err = jetstream.NewSubscriber(ctx, natsConfig(cfg.NATS), adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer subscriber.Close()

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := subscriber.Run(ctx, messaging.RegistryHandler(reg)); err != nil && !errors.Is(err, context.Canceled) {
				errCh <- fmt.Errorf("address subscriber stopped: %w", err)
			}
		}()
	} else {
		logger.WarnCtx(ctx, "NATS not configured, registry refreshes only on reload",
			zap.Duration("interval", cfg.Scan.IndexReloadInterval))
	}

	// Expose metrics
	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		gin.SetMode(gin.ReleaseMode)
		router := gin.New()
		router.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
		router.GET("/healthz", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		metricsServer = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.InfoCtx(ctx, "Serving metrics", zap.String("address", cfg.MetricsAddr))
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- fmt.Errorf("failed to serve metrics: %w", err)
			}
		}()
	}

	// Wait for interrupt signal or a halted component
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err)
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	for _, job := range jobs {
		if err := job.Stop(shutdownCtx); err != nil {
			logger.ErrorCtx(shutdownCtx, err, zap.String("job", job.Name()))
		}
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.ErrorCtx(shutdownCtx, err)
		}
	}
	wg.Wait()

	logger.Info("Scanner stopped")
}

func natsConfig(cfg config.NATSConfig) jetstream.Config {
	return jetstream.Config{
		URL:            cfg.URL,
		StreamName:     cfg.StreamName,
		ConsumerName:   cfg.ConsumerName,
		MaxReconnects:  cfg.MaxReconnects,
		ReconnectWait:  cfg.ReconnectWait,
		ConnectionName: cfg.ConnectionName,
		AckWait:        cfg.AckWait,
		MaxDeliver:     cfg.MaxDeliver,
	}
}
