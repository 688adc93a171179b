package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	combatv1alpha1 "github.com/KirkDiggler/fight-tracker/internal/api/combat/v1alpha1"
	"github.com/KirkDiggler/fight-tracker/internal/changefeed"
	"github.com/KirkDiggler/fight-tracker/internal/clients/bestiary"
	"github.com/KirkDiggler/fight-tracker/internal/config"
	"github.com/KirkDiggler/fight-tracker/internal/handlers/combat/v1alpha1"
	"github.com/KirkDiggler/fight-tracker/internal/handlers/ws"
	"github.com/KirkDiggler/fight-tracker/internal/orchestrators/combat"
	"github.com/KirkDiggler/fight-tracker/internal/pkg/authctx"
	"github.com/KirkDiggler/fight-tracker/internal/pkg/idgen"
	"github.com/KirkDiggler/fight-tracker/internal/pkg/telemetry"
	redisclient "github.com/KirkDiggler/fight-tracker/internal/redis"
	"github.com/KirkDiggler/fight-tracker/internal/repositories/account"
	"github.com/KirkDiggler/fight-tracker/internal/repositories/character"
	"github.com/KirkDiggler/fight-tracker/internal/repositories/fight"
	"github.com/KirkDiggler/fight-tracker/internal/sqlite"
)

const serviceName = "fight-tracker"

var (
	grpcPort int
	httpPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server and the websocket roster feed",
	Long: `Start the Fight Tracker gRPC server. Settings come from FIGHT_TRACKER_*
environment variables; flags override them.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides FIGHT_TRACKER_GRPC_PORT)")
	serverCmd.Flags().IntVar(&httpPort, "http-port", 0, "websocket feed port, 0 disables (overrides FIGHT_TRACKER_HTTP_PORT)")
}

// dependencies is everything built from config that the listeners serve
type dependencies struct {
	db       *sql.DB
	redis    redisclient.Client
	feed     *changefeed.Redis
	handler  *v1alpha1.Handler
	rosterWS *ws.RosterHandler
}

func (d *dependencies) close() {
	if d.redis != nil {
		_ = d.redis.Close()
	}
	if d.db != nil {
		_ = d.db.Close()
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("http-port") {
		cfg.HTTPPort = httpPort
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName: serviceName,
		Endpoint:    cfg.OTLPEndpoint,
	})
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("trace flush failed", "error", err)
		}
	}()

	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.close()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv, healthServer := newGRPCServer(logger, deps.handler)

	var httpServer *http.Server
	if cfg.HTTPPort > 0 {
		mux := http.NewServeMux()
		deps.rosterWS.Register(mux)
		httpServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	if httpServer != nil {
		g.Go(func() error {
			slog.Info("websocket feed starting", "port", cfg.HTTPPort)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("failed to serve websocket feed: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if httpServer != nil {
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				slog.Warn("websocket feed shutdown incomplete", "error", err)
			}
		}

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}
		return nil
	})

	return g.Wait()
}

func buildDependencies(ctx context.Context, cfg *config.Config) (_ *dependencies, err error) {
	deps := &dependencies{}
	defer func() {
		if err != nil {
			deps.close()
		}
	}()

	deps.db, err = sqlite.Open(ctx, cfg.SQLitePath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open fight store: %w", err)
	}
	if err := fight.Migrate(ctx, deps.db); err != nil {
		return nil, fmt.Errorf("failed to migrate fight store: %w", err)
	}
	fights, err := fight.NewSQLite(&fight.SQLiteConfig{DB: deps.db})
	if err != nil {
		return nil, err
	}

	deps.redis, err = redisclient.Connect(cfg.RedisEndpoints, &redisclient.Options{UseTLS: cfg.RedisTLS})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	if err := deps.redis.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}

	characters, err := character.NewRedis(&character.RedisConfig{Client: deps.redis})
	if err != nil {
		return nil, err
	}
	accounts, err := account.NewRedis(&account.RedisConfig{Client: deps.redis})
	if err != nil {
		return nil, err
	}
	deps.feed, err = changefeed.NewRedis(&changefeed.RedisConfig{Client: deps.redis})
	if err != nil {
		return nil, err
	}

	var monsters bestiary.Client
	if cfg.BestiaryEnabled {
		monsters, err = bestiary.New(&bestiary.Config{
			BaseURL:  cfg.BestiaryBaseURL,
			CacheTTL: cfg.BestiaryCacheTTL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create bestiary client: %w", err)
		}
	}

	svc, err := combat.NewOrchestrator(&combat.Config{
		FightRepo:     fights,
		CharacterRepo: characters,
		AccountRepo:   accounts,
		Publisher:     deps.feed,
		IDGenerator:   idgen.NewUUID(""),
		Bestiary:      monsters,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create combat service: %w", err)
	}

	deps.handler, err = v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CombatService:  svc,
		Subscriber:     deps.feed,
		Bestiary:       monsters,
		RosterDebounce: cfg.RosterDebounce,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create combat handler: %w", err)
	}

	deps.rosterWS, err = ws.NewRosterHandler(&ws.Config{
		Lister:     svc,
		Subscriber: deps.feed,
		Debounce:   cfg.RosterDebounce,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create roster feed: %w", err)
	}

	return deps, nil
}

// interceptorLogger adapts slog to the go-grpc-middleware logging interface;
// the level values line up with slog's
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

// newGRPCServer wires the combat service and health checks behind the
// interceptor chain. Reflection is not registered: the service uses a JSON
// codec and has no compiled file descriptor to describe.
func newGRPCServer(logger *slog.Logger, handler combatv1alpha1.CombatServiceServer) (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(),
			authctx.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(),
			authctx.StreamServerInterceptor(),
		),
	)

	combatv1alpha1.RegisterCombatServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(combatv1alpha1.CombatService_ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return srv, healthServer
}
