package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/unrolled/render"

	"github.com/vladislavprovich/cosmos-rest/internal/handler"
	"github.com/vladislavprovich/cosmos-rest/internal/service"
	"github.com/vladislavprovich/cosmos-rest/pkg/client/cosmosrest"
	logger2 "github.com/vladislavprovich/cosmos-rest/pkg/logger"
)

func main() {
	ctx := context.Background()
	cfg := initConfig(ctx)
	logger, err := logger2.New(ctx, cfg.Logger)
	if err != nil {
		log.Fatal(err)
	}

	restClient := initRestClient(ctx, logger.Logger, cfg)
	srv := initService(ctx, logger.Logger, restClient)

	rend := render.New()
	serviceHandler := initServiceHandler(ctx, srv, logger.Logger, cfg, rend)
	router := handler.NewRouter(ctx, serviceHandler, logger.Logger, &cfg.Server)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		logger.InfoContext(ctx, "Server start. Listening on port",
			slog.Any("port", cfg.Server.Port),
			slog.String("endpoint", cfg.Client.Endpoint),
		)
		if err = httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("could not listen on port %s: %s", cfg.Server.Port, err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		logger.InfoContext(ctx, "Server shutdown error", slog.Any("error", err))
	}

	logger.InfoContext(ctx, "Server gracefully shutdown")
}

func initConfig(ctx context.Context) *Config {
	cfg, err := LoadConfig(ctx)
	if err != nil {
		log.Fatalf("config load error %s", err)
	}

	return cfg
}

func initRestClient(ctx context.Context, logger *slog.Logger, cfg *Config) *cosmosrest.BasicClient {
	logger.InfoContext(ctx, "initializing cosmos rest client", slog.String("transport", cfg.Client.Transport))
	httpClient := &http.Client{
		Timeout: cfg.Client.Timeout,
	}

	fetcher := cosmosrest.NewFetcher(&cfg.Client, httpClient, logger)

	return cosmosrest.NewBasicClient(cfg.Client.Endpoint, cosmosrest.DefaultRegistry(), fetcher, &cfg.Client, logger)
}

func initService(ctx context.Context, logger *slog.Logger, client cosmosrest.Client) *service.Service {
	logger.InfoContext(ctx, "initializing service")
	srv := service.NewCosmosService(ctx, logger, client)

	return srv
}

func initServiceHandler(
	ctx context.Context,
	srv service.QueryService,
	logger *slog.Logger,
	cfg *Config,
	render *render.Render,
) *handler.ServiceHandler {
	logger.InfoContext(ctx, "initializing service handler")
	serviceHandler := handler.NewServiceHandler(srv, logger, &cfg.Server, render)

	return serviceHandler
}
