// Package main is the entry point for the pbp-indicators application
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/myusername/pbp-indicators/internal/api"
	"github.com/myusername/pbp-indicators/internal/batch"
	"github.com/myusername/pbp-indicators/internal/config"
	"github.com/myusername/pbp-indicators/internal/logging"
	"github.com/myusername/pbp-indicators/internal/utils"
	"github.com/myusername/pbp-indicators/pkg/aggregator"
	"github.com/myusername/pbp-indicators/pkg/loader"
	"github.com/myusername/pbp-indicators/pkg/models"
	"github.com/myusername/pbp-indicators/pkg/parser"
	"github.com/myusername/pbp-indicators/pkg/scraper"
)

// Version is set during build using ldflags
var (
	version = "dev"
)

type flags struct {
	version    bool
	configPath string
	dir        string
	output     string
	format     string
	workers    int
	strict     bool
	fetch      string
	serve      string
}

func main() {
	if err := run(); err != nil {
		slog.Error("pbp-indicators failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	f := parseFlags()
	if f.version {
		fmt.Printf("pbp-indicators version %s\n", version)
		return nil
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cfg, f)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.SetupLogger(cfg.Logging, "pbp-indicators")
	slog.Info("pbp-indicators starting", "version", version)

	agg := aggregator.New(
		aggregator.WithClassifier(parser.NewClassifier(cfg.ClassifierSettings())),
		aggregator.WithStrictTeams(cfg.Aggregator.StrictTeams),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if f.serve != "" {
		return serve(ctx, cfg, agg)
	}
	return processDirectory(ctx, cfg, agg)
}

func parseFlags() flags {
	var f flags
	flag.BoolVar(&f.version, "version", false, "Print version information and exit")
	flag.StringVar(&f.configPath, "config", "", "Path to a YAML config file")
	flag.StringVar(&f.dir, "dir", "", "Directory of game files (overrides input.dir)")
	flag.StringVar(&f.output, "output", "", "Write per-team results to this CSV file")
	flag.StringVar(&f.format, "format", "", "Summary format: text or json")
	flag.IntVar(&f.workers, "workers", 0, "Number of games processed in parallel")
	flag.BoolVar(&f.strict, "strict", false, "Fail a game when a team label matches neither team")
	flag.StringVar(&f.fetch, "fetch", "", "Index page URL to download game files from before processing")
	flag.StringVar(&f.serve, "serve", "", "Serve the HTTP API on this address instead of processing files (e.g. :8080)")
	flag.Parse()
	return f
}

// applyFlags lets explicit command-line flags win over file and environment settings
func applyFlags(cfg *config.Config, f flags) {
	if f.dir != "" {
		cfg.Input.Dir = f.dir
	}
	if f.output != "" {
		cfg.Output.CSVPath = f.output
	}
	if f.format != "" {
		cfg.Output.Format = f.format
	}
	if f.workers > 0 {
		cfg.Batch.Workers = f.workers
	}
	if f.strict {
		cfg.Aggregator.StrictTeams = true
	}
	if f.fetch != "" {
		cfg.Input.FetchURL = f.fetch
	}
	if f.serve != "" {
		cfg.Server.Addr = f.serve
	}
}

func processDirectory(ctx context.Context, cfg *config.Config, agg *aggregator.Aggregator) error {
	if cfg.Input.FetchURL != "" {
		paths, err := scraper.MirrorGames(cfg.Input.FetchURL, cfg.Input.Dir)
		if err != nil {
			return fmt.Errorf("failed to fetch game files: %w", err)
		}
		slog.Info("Fetched game files", "count", len(paths), "dir", cfg.Input.Dir)
	}

	paths, err := loader.ListGames(cfg.Input.Dir, cfg.Input.Extensions)
	if err != nil {
		return err
	}
	slog.Info("Processing games", "count", len(paths), "dir", cfg.Input.Dir, "workers", cfg.Batch.Workers)

	outcomes := batch.Run(ctx, paths, batch.GameProcessor(agg), batch.RunOptions{
		Workers: cfg.Batch.Workers,
	})

	var results []*models.GameResult
	for _, o := range outcomes {
		if o.Result != nil {
			results = append(results, o.Result)
		}
	}

	if cfg.Output.Format == "json" {
		if err := utils.WriteGameStatsJSON(os.Stdout, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			utils.DisplayGameStats(os.Stdout, r)
		}
	}

	if cfg.Output.CSVPath != "" {
		if err := utils.SaveGameStatsToCSV(results, cfg.Output.CSVPath); err != nil {
			return fmt.Errorf("failed to save CSV: %w", err)
		}
		slog.Info("Saved team stats", "path", cfg.Output.CSVPath)
	}

	failed := batch.Failed(outcomes)
	slog.Info("Processing complete", "games", len(paths), "succeeded", len(results), "failed", failed)
	if failed > 0 && len(results) == 0 {
		return fmt.Errorf("all %d games failed", failed)
	}
	return nil
}

func serve(ctx context.Context, cfg *config.Config, agg *aggregator.Aggregator) error {
	handler := api.NewHandler(agg, cfg.Server.MaxBodyBytes)
	server := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: api.NewRouter(handler, api.RouterOptions{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			RequestTimeout: cfg.Server.RequestTimeout,
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Server.RequestTimeout + 5*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP API listening", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down HTTP API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
