package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	toolkitevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-dungeon/internal/config"
	"github.com/KirkDiggler/rpg-dungeon/internal/engine"
	"github.com/KirkDiggler/rpg-dungeon/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-dungeon/internal/events"
	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/dungeon/v1alpha1"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-dungeon/internal/redis"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/eventlog"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/session"
	"github.com/KirkDiggler/rpg-dungeon/internal/services/conversion"
	"github.com/KirkDiggler/rpg-dungeon/internal/services/room"
)

var (
	grpcPort   int
	sqlitePath string
	seed       uint64
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the dungeon gRPC server. Settings come from DUNGEON_* environment variables; flags override them.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides DUNGEON_GRPC_PORT)")
	serverCmd.Flags().StringVar(&sqlitePath, "sqlite", "", "event log database (overrides DUNGEON_SQLITE_PATH)")
	serverCmd.Flags().Uint64Var(&seed, "seed", 0, "dice seed for reproducible games (overrides DUNGEON_SEED)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("sqlite") {
		cfg.SQLitePath = sqlitePath
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gameService, closeAll, err := buildGameService(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeAll()

	gameHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{GameService: gameService})
	if err != nil {
		return fmt.Errorf("failed to create game handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	loggingOpts := []grpc_logging.Option{
		grpc_logging.WithLogOnEvents(grpc_logging.FinishCall),
		grpc_logging.WithFieldsFromContext(traceFields),
	}
	recoveryOpts := []grpc_recovery.Option{
		grpc_recovery.WithRecoveryHandler(func(p any) error {
			slog.Error("Recovered from panic", "panic", p)
			return status.Error(codes.Internal, "internal error")
		}),
	}

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger), loggingOpts...),
			grpc_recovery.UnaryServerInterceptor(recoveryOpts...),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger), loggingOpts...),
			grpc_recovery.StreamServerInterceptor(recoveryOpts...),
		),
	)

	v1alpha1.RegisterGameServiceServer(srv, gameHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort, "seed", cfg.Seed)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// buildGameService wires storage, the engine and the event bus together
func buildGameService(ctx context.Context, cfg *config.Config) (game.Service, func(), error) {
	clk := clock.New()

	sessions, closeSessions, err := buildSessionStore(ctx, cfg, clk)
	if err != nil {
		return nil, nil, err
	}

	journal, err := eventlog.NewSQLiteRepository(&eventlog.Config{Path: cfg.SQLitePath, Clock: clk})
	if err != nil {
		closeSessions()
		return nil, nil, fmt.Errorf("failed to open event log: %w", err)
	}

	closeAll := func() {
		if err := journal.Close(); err != nil {
			slog.Warn("Failed to close event log", "error", err)
		}
		closeSessions()
	}

	var ids idgen.Generator = idgen.NewUUID()
	if cfg.Seed != 0 {
		ids = idgen.NewSequential(strconv.FormatUint(cfg.Seed, 10))
	}
	roller := rng.New(cfg.Seed)

	generator, err := room.New(&room.Config{Roller: roller, IDGenerator: ids})
	if err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("failed to create room generator: %w", err)
	}

	eng, err := engine.New(&engine.Config{Roller: roller, RoomGenerator: generator})
	if err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("failed to create engine: %w", err)
	}

	bus := toolkitevents.NewBus()
	bus.SubscribeFunc(rpgtoolkit.ToolkitType(events.TypePlayerDied), 0,
		func(_ context.Context, e toolkitevents.Event) error {
			slog.Info("Player died", "player_id", e.Source().GetID())
			return nil
		})

	publisher, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{EventBus: bus})
	if err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("failed to create event adapter: %w", err)
	}

	gameService, err := game.NewOrchestrator(&game.Config{
		Engine:        eng,
		RoomGenerator: generator,
		SessionRepo:   sessions,
		EventLog:      journal,
		Publisher:     publisher,
		ViewConverter: conversion.NewViewConverter(),
		IDGenerator:   ids,
		Clock:         clk,
	})
	if err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("failed to create game service: %w", err)
	}

	return gameService, closeAll, nil
}

// buildSessionStore connects the configured session store
func buildSessionStore(ctx context.Context, cfg *config.Config, clk clock.Clock) (session.Repository, func(), error) {
	if cfg.SessionStore == config.SessionStoreMemory {
		slog.Warn("Sessions are kept in memory and are lost on restart")
		return session.NewInMemory(clk), func() {}, nil
	}

	redisClient, err := redis.Connect(cfg.RedisAddrs, &redis.Options{UseTLS: cfg.RedisTLS})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, nil, fmt.Errorf("failed to reach redis: %w", err)
	}

	sessions, err := session.NewRedisRepository(&session.Config{
		Client: redisClient,
		Clock:  clk,
		TTL:    cfg.SessionTTL,
	})
	if err != nil {
		_ = redisClient.Close()
		return nil, nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	closeFn := func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}
	return sessions, closeFn, nil
}

// interceptorLogger adapts slog to the grpc logging interceptor
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

// traceFields adds the active trace to every call log
func traceFields(ctx context.Context) grpc_logging.Fields {
	if sc := trace.SpanContextFromContext(ctx); sc.IsSampled() {
		return grpc_logging.Fields{"trace_id", sc.TraceID().String()}
	}
	return nil
}
