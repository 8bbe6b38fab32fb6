package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/scamtrap/mantis/internal/api"
	"github.com/scamtrap/mantis/internal/authority"
	"github.com/scamtrap/mantis/internal/config"
	"github.com/scamtrap/mantis/internal/database"
	"github.com/scamtrap/mantis/internal/detect"
)

func main() {
	configPath := flag.String("config", "mantis.yaml", "path to configuration file")
	generateConfig := flag.Bool("generate-config", false, "write a sample configuration file and exit")
	flag.Parse()

	if *generateConfig {
		if err := config.GenerateSample(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write sample config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("sample configuration written to %s\n", *configPath)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg.Logging)

	store, err := database.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open store")
	}
	defer store.Close()

	var prober *authority.Prober
	if cfg.Catalogue.EnableDiscovery {
		prober = authority.NewProber(cfg.Catalogue.ProbeTimeout())
	}
	catalogue := authority.NewCatalogue(cfg.Catalogue.TTL(), prober)
	engine := detect.NewEngine(catalogue, cfg.Detection.ScamThreshold)

	router := api.NewRouter(cfg, engine, catalogue, store)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info().Int("port", cfg.Server.Port).Msg("Server started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Shutdown error")
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}
}

func setupLogging(cfg config.LoggingConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "text" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
