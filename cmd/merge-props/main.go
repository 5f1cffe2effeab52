package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/atharva-ketkar1/MMA-analysis/internal/notify"
	"github.com/atharva-ketkar1/MMA-analysis/internal/parser/parsers/draftkings"
	"github.com/atharva-ketkar1/MMA-analysis/internal/parser/parsers/prizepicks"
	"github.com/atharva-ketkar1/MMA-analysis/internal/pkg/config"
	"github.com/atharva-ketkar1/MMA-analysis/internal/pkg/export"
	"github.com/atharva-ketkar1/MMA-analysis/internal/pkg/logging"
	"github.com/atharva-ketkar1/MMA-analysis/internal/pkg/models"
	"github.com/atharva-ketkar1/MMA-analysis/internal/pkg/storage"
	"github.com/atharva-ketkar1/MMA-analysis/internal/reconcile"
)

const defaultConfigPath = "configs/production.yaml"

type flags struct {
	configPath string
	outputPath string
	cutoff     int
	dryRun     bool
}

func main() {
	if err := run(); err != nil {
		slog.Error("Merge failed", "error", err)
		os.Exit(1)
	}
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.configPath, "config", defaultConfigPath, "Path to config file")
	flag.StringVar(&f.outputPath, "output", "", "Output CSV path (overrides config)")
	flag.IntVar(&f.cutoff, "cutoff", 0, "Fuzzy match cutoff 1-100 (overrides config)")
	flag.BoolVar(&f.dryRun, "dry-run", false, "Skip Postgres and Telegram")
	flag.Parse()
	return f
}

func run() error {
	f := parseFlags()

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.Setup(&cfg.Logging, "merge-props")
	slog.Info("Starting UFC props merge", "config", f.configPath)

	if f.outputPath != "" {
		cfg.Output.CSVPath = f.outputPath
	}
	if f.cutoff > 0 {
		cfg.Matcher.Cutoff = f.cutoff
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	offers, err := fetchDraftKings(ctx, cfg)
	if err != nil {
		return fmt.Errorf("draftkings fetch: %w", err)
	}
	projections, err := fetchPrizePicks(ctx, cfg)
	if err != nil {
		return fmt.Errorf("prizepicks fetch: %w", err)
	}
	slog.Info("Fetched source relations", "dk_offers", len(offers), "pp_projections", len(projections))

	engineCfg := reconcile.DefaultConfig()
	engineCfg.Cutoff = cfg.Matcher.Cutoff
	engineCfg.Workers = cfg.Matcher.Workers
	rows := reconcile.NewEngine(engineCfg).Reconcile(offers, projections)
	slog.Info("Reconciled fighters", "rows", len(rows))

	if err := export.NewCSVExporter().WriteFile(cfg.Output.CSVPath, rows); err != nil {
		return fmt.Errorf("csv export: %w", err)
	}
	slog.Info("Wrote CSV", "path", cfg.Output.CSVPath)

	if f.dryRun {
		slog.Info("Dry run: skipping Postgres and Telegram")
		return nil
	}

	if cfg.Postgres.DSN != "" {
		store, err := storage.NewPostgresPropsStorage(&cfg.Postgres)
		if err != nil {
			slog.Error("Postgres unavailable, skipping persistence", "error", err)
		} else {
			defer store.Close()
			if err := store.SaveRows(ctx, time.Now().UTC(), rows); err != nil {
				slog.Error("Failed to save merged props", "error", err)
			}
		}
	}

	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		notifier := notify.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		notifier.NotifyMergeResult(rows)
	}

	return nil
}

// fetchDraftKings pulls both subcategories and concatenates them into one
// offer relation; the engine partitions by market type.
func fetchDraftKings(ctx context.Context, cfg *config.Config) ([]models.Offer, error) {
	client := draftkings.NewHTTPClient(cfg)
	parser := draftkings.NewParser()

	strikesBody, err := client.FetchSubcategory(ctx, cfg.Parser.DraftKings.StrikesSubcategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch strikes subcategory: %w", err)
	}
	strikes, err := parser.ParseStrikes(strikesBody)
	if err != nil {
		return nil, err
	}

	distanceBody, err := client.FetchSubcategory(ctx, cfg.Parser.DraftKings.DistanceSubcategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch distance subcategory: %w", err)
	}
	distance, err := parser.ParseDistance(distanceBody)
	if err != nil {
		return nil, err
	}

	return append(strikes, distance...), nil
}

func fetchPrizePicks(ctx context.Context, cfg *config.Config) ([]models.Projection, error) {
	body, err := prizepicks.NewHTTPClient(cfg).FetchProjections(ctx)
	if err != nil {
		return nil, err
	}
	pp := cfg.Parser.PrizePicks
	return prizepicks.NewParser(pp.StatTypes, pp.OddsType).Parse(body)
}
