package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-hotwallet/internal/adapter"
	"github.com/feral-file/ff-hotwallet/internal/api/server"
	"github.com/feral-file/ff-hotwallet/internal/config"
	"github.com/feral-file/ff-hotwallet/internal/dispatcher"
	"github.com/feral-file/ff-hotwallet/internal/logger"
	"github.com/feral-file/ff-hotwallet/internal/messaging"
	"github.com/feral-file/ff-hotwallet/internal/metrics"
	"github.com/feral-file/ff-hotwallet/internal/providers/ethereum"
	"github.com/feral-file/ff-hotwallet/internal/providers/jetstream"
	"github.com/feral-file/ff-hotwallet/internal/registry"
	"github.com/feral-file/ff-hotwallet/internal/store"
	"github.com/feral-file/ff-hotwallet/internal/sweeper"
	"github.com/feral-file/ff-hotwallet/internal/vault"
	"github.com/feral-file/ff-hotwallet/internal/wallet"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "hotwallet-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Hot Wallet API")

	// Connect to database
	db, err := store.Open(cfg.Database, cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("driver", cfg.Database.Driver))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.String("driver", cfg.Database.Driver),
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store and adapters
	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
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

	// Address events keep scanner registries current; without NATS they rely on periodic reloads
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, natsConfig(cfg.NATS), adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer publisher.Close()
	} else {
		logger.WarnCtx(ctx, "NATS not configured, address events are disabled")
	}

	v := vault.New(dataStore, gateway, adapter.NewRSADecrypter())
	d := dispatcher.New(dataStore, gateway, v, m)
	w := wallet.New(dataStore, gateway, v, reg, publisher, cfg.Ethereum.NativeCoinName)

	// Periodic jobs
	jobs := []sweeper.Sweeper{
		sweeper.NewPeriodic("registry-reload", cfg.Collection.Interval, sweeper.JobFunc(reg.Load), clock, m),
	}
	if cfg.Collection.Enabled {
		engineConfig := sweeper.EngineConfig{
			BalanceBatchSize: cfg.Collection.BalanceBatchSize,
			ReserveFloor:     cfg.Collection.ReserveFloor,
			TopUpAmount:      cfg.Collection.TopUpAmount,
			RenderAddress:    cfg.Collection.RenderAddress,
		}
		jobs = append(jobs,
			sweeper.NewPeriodic("collection", cfg.Collection.Interval,
				sweeper.NewCollection(engineConfig, dataStore, gateway, v, reg, clock, m), clock, m),
			sweeper.NewPeriodic("render", cfg.Collection.RenderInterval,
				sweeper.NewRender(engineConfig, dataStore, gateway, v, reg, clock, m), clock, m),
		)
		logger.InfoCtx(ctx, "Collection enabled",
			zap.Duration("interval", cfg.Collection.Interval),
			zap.Duration("render_interval", cfg.Collection.RenderInterval),
			zap.String("reserve_floor", cfg.Collection.ReserveFloor),
		)
	}

	var wg sync.WaitGroup
	for _, job := range jobs {
		wg.Add(1)
		go func(job sweeper.Sweeper) {
			defer wg.Done()
			if err := job.Start(ctx); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("job", job.Name()))
			}
		}(job)
	}

	// Create server config
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	serverConfig := server.Config{
		Debug:           cfg.Debug,
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:    time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:     time.Duration(cfg.Server.IdleTimeout) * time.Second,
		TimestampWindow: cfg.Auth.TimestampWindow,
		AllowOrigins:    cfg.Auth.AllowOrigins,
		MetricsPath:     metricsPath,
	}

	// Create and start server
	srv := server.New(serverConfig, dataStore, w, d, clock, m)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
	}
	cancel()

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	for _, job := range jobs {
		if err := job.Stop(shutdownCtx); err != nil {
			logger.ErrorCtx(shutdownCtx, err, zap.String("job", job.Name()))
		}
	}
	wg.Wait()

	// Passphrases never outlive the process
	v.Clear()

	logger.Info("API server stopped")
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
