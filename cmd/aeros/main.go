// Package main is the entry point for Aeros.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Just-a-Unity-Dev/aeros/internal/game"
	"github.com/Just-a-Unity-Dev/aeros/internal/logger"
	"github.com/Just-a-Unity-Dev/aeros/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "aeros: %v\n", err)
		os.Exit(1)
	}
}

// run wires the process together. Only main exits.
func run() error {
	// Not fatal: variables may be set directly.
	envErr := godotenv.Load()

	closer, err := logger.Init()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closer.Close()
	log := logger.Component("main")
	if envErr != nil {
		log.WithError(envErr).Debug(".env file not loaded")
	}

	setupOTelEnv()

	ctx := context.Background()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.WithError(err).Warn("Telemetry setup failed, running without traces.")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.WithError(err).Error("Error shutting down telemetry.")
				}
			}()
		}
	}

	cfg, err := game.LoadConfig(os.Getenv("AEROS_CONFIG"))
	if err != nil {
		log.WithError(err).Error("Invalid configuration.")
		return fmt.Errorf("load config: %w", err)
	}
	log.WithFields(logrus.Fields{
		"seed":   cfg.Seed,
		"width":  cfg.MapWidth,
		"height": cfg.MapHeight,
	}).Info("Configuration loaded.")

	g, err := game.New(cfg)
	if err != nil {
		log.WithError(err).Error("Failed to initialize game.")
		return fmt.Errorf("init game: %w", err)
	}

	if err := g.Run(ctx); err != nil {
		log.WithError(err).Error("Game error.")
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is
// configured and no endpoint was set explicitly.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_API_KEY")
	if apiKey == "" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "aeros"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
