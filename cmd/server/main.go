package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"sortcheck/internal/audit"
	audithandler "sortcheck/internal/audit/handler"
	auditkafka "sortcheck/internal/audit/store/kafka"
	auditmemory "sortcheck/internal/audit/store/memory"
	auditpostgres "sortcheck/internal/audit/store/postgres"
	"sortcheck/internal/jwttoken"
	"sortcheck/internal/modulus"
	"sortcheck/internal/platform/config"
	"sortcheck/internal/platform/httpserver"
	"sortcheck/internal/platform/logger"
	"sortcheck/internal/platform/middleware"
	platformredis "sortcheck/internal/platform/redis"
	"sortcheck/internal/validation"
	"sortcheck/internal/validation/cache"
	validationhandler "sortcheck/internal/validation/handler"
	"sortcheck/internal/validation/metrics"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table := modulus.DefaultTable()

	// Verdict cache: Redis when configured, in-process otherwise.
	var verdictCache cache.Cache
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		verdictCache = cache.NewRedis(redisClient.Client, cfg.VerdictCacheTTL)
		log.Info("verdict cache backed by redis")
	} else {
		verdictCache = cache.NewMemory()
		log.Info("verdict cache in-process; set SORTCHECK_REDIS_URL for shared caching")
	}

	// Audit store: Postgres when configured, in-memory otherwise.
	var auditStore audit.Store
	if cfg.Postgres.DSN != "" {
		db, err := sql.Open("postgres", cfg.Postgres.DSN)
		if err != nil {
			log.Error("postgres open failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Error("postgres ping failed", "error", err)
			os.Exit(1)
		}
		pgStore := auditpostgres.New(db)
		if err := pgStore.Migrate(ctx); err != nil {
			log.Error("audit schema migration failed", "error", err)
			os.Exit(1)
		}
		auditStore = pgStore
		log.Info("audit trail backed by postgres")
	} else {
		auditStore = auditmemory.NewInMemoryStore()
		log.Info("audit trail in-memory; set SORTCHECK_POSTGRES_DSN for durability")
	}

	publisherOpts := []audit.Option{audit.WithLogger(log)}
	if cfg.AuditBuffer > 0 {
		publisherOpts = append(publisherOpts, audit.WithAsyncBuffer(cfg.AuditBuffer))
	}
	if len(cfg.Kafka.Brokers) > 0 {
		sink, err := auditkafka.New(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("kafka connection failed", "error", err)
			os.Exit(1)
		}
		defer sink.Close()
		if err := sink.EnsureTopic(ctx, 1); err != nil {
			log.Error("kafka topic setup failed", "error", err)
			os.Exit(1)
		}
		publisherOpts = append(publisherOpts, audit.WithSink(sink))
		log.Info("audit events mirrored to kafka", "topic", cfg.Kafka.Topic)
	}
	publisher := audit.NewPublisher(auditStore, publisherOpts...)
	defer publisher.Close()

	validationMetrics := metrics.New()
	validationService := validation.NewService(table, verdictCache, publisher, validationMetrics, log)
	validationHandler := validationhandler.New(validationService, log)
	auditHandler := audithandler.New(publisher, log)

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)
	jwtValidator := jwttoken.NewJWTServiceAdapter(jwtService)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.ClientMetadata)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"degraded"}`))
				return
			}
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	router.Route("/v1", func(r chi.Router) {
		r.Use(middleware.RequireAuth(jwtValidator, log))
		validationHandler.Register(r)
	})
	router.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdminToken(cfg.AdminToken, log))
		auditHandler.Register(r)
	})

	srv := httpserver.New(cfg.Addr, router)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("starting sortcheck", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
