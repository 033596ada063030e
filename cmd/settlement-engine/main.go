package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/interledger-go/iroha-settlement/internal/api"
	"github.com/interledger-go/iroha-settlement/internal/connector"
	"github.com/interledger-go/iroha-settlement/internal/engine"
	"github.com/interledger-go/iroha-settlement/internal/ledger/torii"
	"github.com/interledger-go/iroha-settlement/internal/metrics"
	"github.com/interledger-go/iroha-settlement/internal/model"
	"github.com/interledger-go/iroha-settlement/internal/observer"
	"github.com/interledger-go/iroha-settlement/internal/repository/sqlite"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	DBPath         string        `long:"db-path" env:"SETTLEMENT_ENGINE_DB_PATH" description:"SQLite database path" default:"settlement-engine.db"`
	ToriiURL       string        `long:"torii-url" env:"SETTLEMENT_ENGINE_TORII_URL" description:"Iroha torii gateway URL" default:"http://127.0.0.1:50051"`
	ConnectorURL   string        `long:"connector-url" env:"SETTLEMENT_ENGINE_CONNECTOR_URL" description:"connector base URL" default:"http://127.0.0.1:7771"`
	IrohaAccountID string        `long:"iroha-account-id" env:"SETTLEMENT_ENGINE_IROHA_ACCOUNT_ID" description:"engine's Iroha account id (name@domain)" required:"true"`
	KeyPairName    string        `long:"keypair-name" env:"SETTLEMENT_ENGINE_KEYPAIR_NAME" description:"path prefix of the <name>.priv/<name>.pub key files" required:"true"`
	AssetID        string        `long:"asset-id" env:"SETTLEMENT_ENGINE_ASSET_ID" description:"Iroha asset id (code#domain)" required:"true"`
	AssetScale     int32         `long:"asset-scale" env:"SETTLEMENT_ENGINE_ASSET_SCALE" description:"asset scale on the ledger" default:"2"`
	BindPort       int           `long:"bind-port" env:"SETTLEMENT_ENGINE_BIND_PORT" description:"port of the HTTP control surface" default:"3000"`
	HTTPTimeout    time.Duration `long:"http-timeout" env:"SETTLEMENT_ENGINE_HTTP_TIMEOUT" description:"HTTP timeout for torii requests" default:"30s"`
	MetricsAddr    string        `long:"metrics-addr" env:"SETTLEMENT_ENGINE_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("settlement engine failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	selfAccount, err := model.ParseLedgerAccountID(cfg.IrohaAccountID)
	if err != nil {
		return err
	}
	asset, err := model.ParseAssetID(cfg.AssetID)
	if err != nil {
		return err
	}
	if err := model.ValidateAssetScale(cfg.AssetScale); err != nil {
		return err
	}

	key, err := torii.LoadKeyPair(cfg.KeyPairName)
	if err != nil {
		return fmt.Errorf("load keypair: %w", err)
	}

	ledgerClient, err := torii.NewClient(torii.Config{
		BaseURL: cfg.ToriiURL,
		Account: selfAccount,
		Key:     key,
		Timeout: cfg.HTTPTimeout,
	}, metrics.NewLedgerClient(cfg.AssetID), logger)
	if err != nil {
		return fmt.Errorf("init torii client: %w", err)
	}

	// Fail fast on a bad ledger endpoint or a mis-provisioned account.
	if err := ledgerClient.GetAccount(ctx, selfAccount); err != nil {
		return fmt.Errorf("probe engine account %s: %w", selfAccount, err)
	}

	repo, err := sqlite.NewRepository(cfg.DBPath, metrics.NewStore())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close repository", zap.Error(err))
		}
	}()

	connectorClient, err := connector.NewClient(cfg.ConnectorURL, logger)
	if err != nil {
		return fmt.Errorf("init connector client: %w", err)
	}

	settler, err := engine.NewSettler(repo, ledgerClient, metrics.NewSettler(cfg.AssetID), selfAccount, asset, cfg.AssetScale, logger)
	if err != nil {
		return fmt.Errorf("init settler: %w", err)
	}

	obs, err := observer.NewObserver(repo, ledgerClient, connectorClient, metrics.NewObserver(cfg.AssetID), selfAccount, asset, cfg.AssetScale, logger)
	if err != nil {
		return fmt.Errorf("init observer: %w", err)
	}
	go func() {
		if err := obs.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("observer stopped", zap.Error(err))
		}
	}()

	server := api.NewServer(repo, settler, connectorClient, selfAccount, logger)
	return serveHTTP(ctx, fmt.Sprintf(":%d", cfg.BindPort), server.Router(), logger)
}

func serveHTTP(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting control surface", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
