package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/rickgao/econcal/internal/config"
	"github.com/rickgao/econcal/internal/fetch"
	"github.com/rickgao/econcal/internal/impact"
	"github.com/rickgao/econcal/internal/output"
	"github.com/rickgao/econcal/internal/source"
	"github.com/rickgao/econcal/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (built-in defaults when empty)")
	horizonDays := flag.Int("horizon", 0, "override horizon in days")
	outDir := flag.String("out", "", "override output directory")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Populate the environment before ${VAR} expansion in the config file.
	// A missing .env is fine.
	godotenv.Load()

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *horizonDays > 0 {
		cfg.Run.HorizonDays = *horizonDays
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	runID := uuid.NewString()
	logger.Info("starting fetcher",
		"version", version.Version,
		"commit", version.Commit,
		"run_id", runID,
		"horizon_days", cfg.Run.HorizonDays,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	classifier := buildClassifier(cfg.Impact)
	sources := buildSources(cfg, classifier, logger)
	horizon := time.Duration(cfg.Run.HorizonDays) * 24 * time.Hour

	events, err := fetch.NewRunner(sources, logger).Run(ctx, horizon)
	if err != nil {
		logger.Error("no usable events; writing no artifacts", "error", err)
		os.Exit(1)
	}

	now := time.Now().UTC()
	jsonData, err := output.JSONDocument(events, runID, now)
	if err != nil {
		logger.Error("failed to render json artifact", "error", err)
		os.Exit(1)
	}
	pineData := output.PineScript(events, now)

	if err := output.WriteArtifacts(cfg.Output.Dir, cfg.Output.JSONFile, cfg.Output.PineFile, jsonData, pineData); err != nil {
		logger.Error("failed to write artifacts", "error", err)
		os.Exit(1)
	}

	logger.Info("artifacts written",
		"dir", cfg.Output.Dir,
		"json", cfg.Output.JSONFile,
		"pine", cfg.Output.PineFile,
		"events", len(events),
	)

	// Sample of what made the cut.
	for i, ev := range events {
		if i == 5 {
			break
		}
		logger.Info("upcoming event",
			"name", ev.Name,
			"time", ev.Time.Format("2006-01-02 15:04 UTC"),
			"impact", ev.Impact,
			"source", ev.Source,
		)
	}
}

func buildClassifier(cfg config.ImpactConfig) *impact.Classifier {
	high := append(append([]string{}, impact.HighKeywords...), cfg.ExtraHigh...)
	if cfg.IncludeSpecial {
		high = append(high, impact.SpecialKeywords...)
	}
	medium := append(append([]string{}, impact.MediumKeywords...), cfg.ExtraMedium...)
	return impact.New(high, medium)
}

func buildSources(cfg *config.Config, classifier *impact.Classifier, logger *slog.Logger) []source.Source {
	var sources []source.Source

	if !cfg.Sources.ForexFactory.Disabled {
		sources = append(sources, source.NewForexFactory(clientConfig(cfg.Sources.ForexFactory), classifier, logger))
	}
	if !cfg.Sources.Fed.Disabled {
		sources = append(sources, source.NewFed(clientConfig(cfg.Sources.Fed), logger))
	}
	if !cfg.Sources.Investing.Disabled {
		sources = append(sources, source.NewInvesting(logger))
	}
	if !cfg.Sources.Schedule.Disabled {
		sources = append(sources, source.NewSchedule(logger))
	}

	return sources
}

func clientConfig(s config.SourceConfig) source.ClientConfig {
	return source.ClientConfig{
		BaseURL:      s.BaseURL,
		UserAgent:    s.UserAgent,
		Timeout:      s.Timeout,
		MaxRetries:   s.MaxRetries,
		RetryBackoff: s.RetryBackoff,
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
