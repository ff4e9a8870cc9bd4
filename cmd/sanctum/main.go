package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/sanctum-app/sanctum/internal/config"
	"github.com/sanctum-app/sanctum/internal/infra/database"
	"github.com/sanctum-app/sanctum/internal/infra/kvstore"
	"github.com/sanctum-app/sanctum/internal/present/rest"
	restmw "github.com/sanctum-app/sanctum/internal/present/rest/middleware"
	"github.com/sanctum-app/sanctum/internal/usecase"
)

func main() {
	configPath := flag.String("c", "config.yaml", "path to config file")
	flag.Parse()
	if env := os.Getenv("SANCTUM_CONFIG"); env != "" {
		*configPath = env
	}

	conf, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := newStore(conf.Store)
	if err != nil {
		slog.Error("failed to initialize store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		MaxAge:       600,
	}))

	if conf.Server.EnableTrace {
		shutdown, err := setupTracing(context.Background(), conf.Server.TraceEndpoint)
		if err != nil {
			slog.Error("failed to set up tracing", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer shutdown(context.Background())
		e.Use(otelecho.Middleware("sanctum"))
	}

	e.Use(restmw.NewAuthMiddleware(conf.Server.APIToken).VerifyToken)

	handler := rest.NewHandler(
		usecase.NewFeedUsecase(store),
		usecase.NewLibraryUsecase(store),
		usecase.NewHighlightUsecase(store),
		usecase.NewReadingUsecase(store),
		usecase.NewProfileUsecase(store),
	)
	handler.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(conf.Server.ListenAddr))
}

func newStore(conf config.Store) (usecase.KVStore, error) {
	switch conf.Backend {
	case "redis":
		rdb := database.NewRedis(conf.RedisAddr, conf.RedisPassword, conf.RedisDB)
		return kvstore.NewRedisStore(rdb), nil
	case "memcached":
		return kvstore.NewMemcachedStore(database.NewMemcached(conf.MemcachedAddr)), nil
	case "postgres":
		db, err := database.NewPostgres(conf.PostgresDsn)
		if err != nil {
			return nil, err
		}
		if err := kvstore.MigratePostgres(db); err != nil {
			return nil, err
		}
		return kvstore.NewPostgresStore(db), nil
	case "memory":
		return kvstore.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store backend: %s", conf.Backend)
}

func setupTracing(ctx context.Context, endpoint string) (func(context.Context) error, error) {
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", "sanctum"),
		)),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
