package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arpitthool/image-transform-web/internal/adapters/converter"
	"github.com/arpitthool/image-transform-web/internal/adapters/storage"
	"github.com/arpitthool/image-transform-web/internal/adapters/web"
	"github.com/arpitthool/image-transform-web/internal/core/port"
	"github.com/arpitthool/image-transform-web/internal/core/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting image transform server...")

	viper.AddConfigPath(".")
	viper.SetConfigType("toml")

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}

	var logLevel zerolog.Level

	switch viper.GetString("server.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, err := storage.NewUploadStore(viper.GetString("uploads.dir"))
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing upload store")
	}

	var grayscaler port.Converter

	switch viper.GetString("transform.backend") {
	case "magick":
		grayscaler, err = converter.NewMagickConverter()
		if err != nil {
			log.Panic().Err(err).Msg("failed initializing magick converter")
		}
	default:
		grayscaler = converter.NewNativeConverter()
	}

	transformService := service.NewTransformService(grayscaler)

	maxUploadSize := viper.GetInt64("uploads.max_upload_mb") << 20

	router, err := web.NewRouter(web.NewServer(store, transformService), maxUploadSize)
	if err != nil {
		log.Panic().Err(err).Msg("failed assembling router")
	}

	addr := net.JoinHostPort(viper.GetString("server.host"), viper.GetString("server.port"))

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	log.Info().Str("addr", addr).Msg("server listening")

	<-ctx.Done()

	log.Info().Msg("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server exited")
}
