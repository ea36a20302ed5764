package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-mcp/config"
	"ulascansenturk/weather-mcp/internal/api/v1/handlers"
	"ulascansenturk/weather-mcp/internal/mcpserver"
	"ulascansenturk/weather-mcp/internal/providers"
	"ulascansenturk/weather-mcp/internal/service"
	"ulascansenturk/weather-mcp/internal/tools"
)

var version = "dev"

func main() {
	// stdout belongs to the protocol until we know the transport.
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if err := conf.OverrideTransport(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("invalid transport argument")
	}

	log.Logger = newLogger(conf)

	client := providers.NewClient(conf.UserAgent, conf.HTTPTimeoutDuration())
	weatherService := service.NewWeatherService(client, service.Endpoints{
		NWSBase:           conf.NWSAPIBase,
		InternationalBase: conf.InternationalAPIBase,
	})
	dispatcher := tools.NewDispatcher(weatherService)
	mcpServer := mcpserver.New(dispatcher, version)

	ctx, mainCtxStop := context.WithCancel(context.Background())
	defer mainCtxStop()

	switch conf.Transport {
	case config.TransportStdio:
		handleSignals(ctx, mainCtxStop, func(context.Context) {})

		log.Info().Msg("starting weather MCP server with stdio transport")
		if err := mcpServer.RunStdio(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal().Err(err).Msg("stdio session failed")
		}

	case config.TransportHTTP:
		handler, err := handlers.NewWeatherHandler(dispatcher)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build tool descriptors")
		}

		httpServer := &http.Server{
			Addr:              conf.ServerAddress,
			Handler:           handlers.NewRouter(handler, mcpServer.Handler()),
			ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
		}

		handleSignals(ctx, mainCtxStop, func(shutdownCtx context.Context) {
			shutdownErr := httpServer.Shutdown(shutdownCtx)
			if shutdownErr != nil {
				log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
			}
		})

		log.Info().Msgf("starting weather server with HTTP transport on %s", conf.ServerAddress)

		serverErr := httpServer.ListenAndServe()
		if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
			log.Fatal().Err(serverErr).Msg("server stopped")
		}
		<-ctx.Done()
	}
}

func newLogger(conf *config.Config) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}

	var w io.Writer = os.Stdout
	if conf.Transport == config.TransportStdio {
		w = os.Stderr
	}

	return zerolog.New(w).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
}

const (
	shutdownDuration = 30 * time.Second
	// shutdownGrace lets a callback report its own deadline error before the
	// process is forced down.
	shutdownGrace = 5 * time.Second
)

// handleSignals runs callback once on the first termination signal. The
// callback gets a context that expires after shutdownDuration.
func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func(context.Context)) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sig

		watchdog := time.AfterFunc(shutdownDuration+shutdownGrace, func() {
			panic("graceful shutdown timed out.. forcing exit.")
		})
		defer watchdog.Stop()

		shutdown(ctx, cancelCtx, callback, shutdownDuration)
	}()
}

func shutdown(ctx context.Context, cancelCtx context.CancelFunc, callback func(context.Context), timeout time.Duration) {
	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	callback(shutdownCtx)

	cancelCtx()
}
