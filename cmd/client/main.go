package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/arpitthool/image-transform-web/internal/adapters/httpapi"
	"github.com/arpitthool/image-transform-web/internal/adapters/terminal"
	"github.com/arpitthool/image-transform-web/internal/core/domain/controller"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting grayscale client...")

	viper.AddConfigPath(".")
	viper.SetConfigType("toml")

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}

	var logLevel zerolog.Level

	switch viper.GetString("client.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	filename := viper.GetString("client.filename")
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	if filename == "" {
		log.Fatal().Msg("usage: client <filename>, or set client.filename in the config")
	}

	clickTimeout, err := time.ParseDuration(viper.GetString("client.timeout"))
	if err != nil {
		log.Panic().Err(err).Msg("invalid timeout for client in config")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	api := httpapi.NewClient(viper.GetString("client.server_url"))
	page := terminal.NewPage(os.Stdin, os.Stdout, viper.GetString("client.output_dir"), clickTimeout)

	_, err = controller.NewGrayscaleController(page, api, api, filename)
	if err != nil {
		log.Panic().Err(err).Msg("failed binding conversion controller")
	}

	log.Info().Str("filename", filename).Msg("client ready")

	if err := page.Run(ctx); err != nil {
		log.Error().Err(err).Msg("input loop failed")
	}
}
