package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"triviatui/internal/api"
	"triviatui/internal/config"
	"triviatui/internal/logging"
	"triviatui/internal/telemetry"
	"triviatui/internal/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := config.Flags()
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: triviatui [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Browse, search and delete trivia questions on a trivia backend.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}

	log, logFile, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx := context.Background()
	tp, err := telemetry.NewProvider(ctx, cfg.OTel)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("telemetry shutdown")
		}
	}()

	client, err := api.New(cfg.BaseURL,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithTracerProvider(tp.TracerProvider()),
		api.WithLogger(log),
	)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"base_url": client.BaseURL(),
		"timeout":  cfg.RequestTimeout,
		"tracing":  tp.Enabled(),
	}).Info("starting")

	model := ui.NewAppModel(client, log).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
