package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/paulrouge/multitoken-presale/internal/clock"
	"github.com/paulrouge/multitoken-presale/internal/metrics"
	"github.com/paulrouge/multitoken-presale/internal/presale/addrset"
	"github.com/paulrouge/multitoken-presale/internal/presale/audit"
	"github.com/paulrouge/multitoken-presale/internal/presale/bank"
	"github.com/paulrouge/multitoken-presale/internal/presale/escrow"
	"github.com/paulrouge/multitoken-presale/internal/presale/ledger"
	"github.com/paulrouge/multitoken-presale/internal/presale/model"
	"github.com/paulrouge/multitoken-presale/internal/presale/outbox"
	"github.com/paulrouge/multitoken-presale/internal/presale/relay"
	"github.com/paulrouge/multitoken-presale/internal/presale/repository/clickhouse"
	"github.com/paulrouge/multitoken-presale/internal/presale/sale"
	"github.com/paulrouge/multitoken-presale/internal/presale/store"
	"github.com/paulrouge/multitoken-presale/internal/transport"
	"github.com/paulrouge/multitoken-presale/pkg/batcher"
)

type config struct {
	Addr          string `long:"addr" env:"PRESALE_API_ADDR" description:"gRPC listen addr" default:":8000"`
	RestAddr      string `long:"rest-addr" env:"PRESALE_API_REST_ADDR" description:"REST listen addr" default:":8001"`
	DataDir       string `long:"data-dir" env:"PRESALE_API_DATA_DIR" description:"sale state directory" default:"data/presale"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"PRESALE_API_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`

	EscrowURL string `long:"escrow-url" env:"PRESALE_API_ESCROW_URL" description:"escrow service base URL" required:"true"`
	EscrowRPS int    `long:"escrow-rps" env:"PRESALE_API_ESCROW_RPS" description:"max settlement requests per second, 0 disables pacing" default:"20"`

	Name          string `long:"name" env:"PRESALE_API_NAME" description:"collection name" default:"PresaleMultiToken"`
	Administrator string `long:"administrator" env:"PRESALE_API_ADMINISTRATOR" description:"administrator address" required:"true"`
	MaxSupply     uint64 `long:"max-supply" env:"PRESALE_API_MAX_SUPPLY" description:"maximum number of token ids" required:"true"`
	UnrevealedURI string `long:"unrevealed-uri" env:"PRESALE_API_UNREVEALED_URI" description:"metadata URI served before reveal" required:"true"`
	FeeTreasury   string `long:"fee-treasury" env:"PRESALE_API_FEE_TREASURY" description:"service fee recipient" required:"true"`
	DefaultEscrow string `long:"default-escrow" env:"PRESALE_API_DEFAULT_ESCROW" description:"escrow router used until one is set" required:"true"`

	RelayBatchSize     int           `long:"relay-batch-size" env:"PRESALE_API_RELAY_BATCH_SIZE" description:"outbox entries per relay batch" default:"500"`
	SettleWorkers      int           `long:"settle-workers" env:"PRESALE_API_SETTLE_WORKERS" description:"concurrent escrow settlements" default:"8"`
	AuditFlushSize     int           `long:"audit-flush-size" env:"PRESALE_API_AUDIT_FLUSH_SIZE" description:"audit records per insert" default:"100"`
	AuditFlushInterval time.Duration `long:"audit-flush-interval" env:"PRESALE_API_AUDIT_FLUSH_INTERVAL" description:"audit flush interval" default:"2s"`

	SignatureMaxSkew  time.Duration `long:"signature-max-skew" env:"PRESALE_API_SIGNATURE_MAX_SKEW" description:"accepted clock skew of signed callers" default:"1m"`
	TrustCallerHeader bool          `long:"trust-caller-header" env:"PRESALE_API_TRUST_CALLER_HEADER" description:"take caller addresses without signatures (only behind an authenticating proxy)"`
	ShutdownTimeout   time.Duration `long:"shutdown-timeout" env:"PRESALE_API_SHUTDOWN_TIMEOUT" description:"time allowed for in-flight requests on shutdown" default:"15s"`
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
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("presale api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	deployment, err := cfg.deployment()
	if err != nil {
		return err
	}

	st, err := store.OpenLevelDB(cfg.DataDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("failed to close state store", zap.Error(err))
		}
	}()

	deployment, err = sale.Deploy(ctx, st, deployment)
	if err != nil {
		return err
	}
	logger.Info("deployment loaded",
		zap.String("collection", deployment.Name),
		zap.String("administrator", deployment.Administrator.Hex()),
		zap.Uint64("max_supply", deployment.MaxSupply),
	)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close repository", zap.Error(err))
		}
	}()

	recorder := audit.NewRecorder(repo, batcher.Config{
		FlushSize:     cfg.AuditFlushSize,
		FlushInterval: cfg.AuditFlushInterval,
	}, logger)
	recorder.Start(ctx)
	defer recorder.Stop()

	payments := bank.New()
	purchases := outbox.NewQueue(outbox.TopicPurchases)
	routes := outbox.NewQueue(outbox.TopicEscrowRoutes)

	controller, err := sale.NewController(st, deployment, sale.Dependencies{
		Ledger:    ledger.New(),
		Payments:  payments,
		Escrow:    escrow.NewRouter(payments, routes),
		Events:    purchases,
		Whitelist: addrset.New("whitelist"),
		Auditor:   recorder,
		Metrics:   metrics.NewSaleController(deployment.Name),
		Clock:     clock.System{},
	}, logger)
	if err != nil {
		return fmt.Errorf("init sale controller: %w", err)
	}

	relayCfg := relay.Config{BatchSize: cfg.RelayBatchSize}
	exporter, err := relay.NewService(
		st,
		purchases,
		relay.NewPurchaseExporter(repo, logger),
		metrics.NewOutboxRelay(purchases.Topic()),
		relayCfg,
		logger,
	)
	if err != nil {
		return fmt.Errorf("init purchase relay: %w", err)
	}
	routeMetrics := metrics.NewOutboxRelay(routes.Topic())
	settler := escrow.NewHTTPSettler(cfg.EscrowURL, &http.Client{Timeout: 10 * time.Second}, cfg.EscrowRPS, logger)
	settlement, err := relay.NewService(
		st,
		routes,
		relay.NewEscrowSettlement(settler, cfg.SettleWorkers, routeMetrics, logger),
		routeMetrics,
		relayCfg,
		logger,
	)
	if err != nil {
		return fmt.Errorf("init escrow relay: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()
	for _, svc := range []*relay.Service{exporter, settlement} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("relay stopped", zap.Error(err))
			}
		}()
	}

	var auth transport.Authenticator = transport.NewSignatureAuthenticator(cfg.SignatureMaxSkew, clock.System{})
	if cfg.TrustCallerHeader {
		logger.Warn("caller addresses are trusted as sent, an authenticating proxy must set them")
		auth = transport.TrustedHeader{}
	}

	grpcSocket, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	restSocket, err := net.Listen("tcp", cfg.RestAddr)
	if err != nil {
		_ = grpcSocket.Close()
		return fmt.Errorf("listen %s: %w", cfg.RestAddr, err)
	}

	handler := transport.NewHandler(controller, repo, logger)
	return serve(ctx, grpcSocket, restSocket, cfg.ShutdownTimeout, handler, auth, logger)
}

// serve runs the gRPC and REST servers until ctx is done and returns once both have drained.
func serve(
	ctx context.Context,
	grpcSocket, restSocket net.Listener,
	shutdownTimeout time.Duration,
	handler *transport.Handler,
	auth transport.Authenticator,
	logger *zap.Logger,
) error {
	ctx, cancel := context.WithCancel(ctx)
	// Both servers are fully stopped before the stores behind the handler are closed.
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	transport.RegisterPresaleServiceServer(grpcServer, transport.NewGRPCServer(handler, auth))
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	wg.Add(2)
	go func() {
		defer wg.Done()
		logger.Info("Starting gRPC server", zap.Stringer("addr", grpcSocket.Addr()))
		if serveErr := grpcServer.Serve(grpcSocket); serveErr != nil {
			logger.Error("gRPC server failed", zap.Error(serveErr))
			cancel()
		}
	}()
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	gw := gwruntime.NewServeMux()
	if err := transport.RegisterREST(gw, handler, auth); err != nil {
		_ = restSocket.Close()
		return fmt.Errorf("register rest routes: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, release := context.WithTimeout(context.Background(), shutdownTimeout)
		defer release()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.Stringer("addr", restSocket.Addr()))
	if err := s.Serve(restSocket); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (c config) deployment() (model.Deployment, error) {
	d := model.Deployment{
		Name:          c.Name,
		MaxSupply:     c.MaxSupply,
		UnrevealedURI: c.UnrevealedURI,
	}
	for _, field := range []struct {
		name string
		raw  string
		dst  *model.Address
	}{
		{"administrator", c.Administrator, &d.Administrator},
		{"fee-treasury", c.FeeTreasury, &d.FeeTreasury},
		{"default-escrow", c.DefaultEscrow, &d.DefaultEscrow},
	} {
		addr, err := model.ParseAddress(field.raw)
		if err != nil {
			return model.Deployment{}, fmt.Errorf("%s: %w", field.name, err)
		}
		*field.dst = addr
	}
	return d, nil
}
