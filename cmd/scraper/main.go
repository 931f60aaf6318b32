package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/oddsweep/oddsweep/internal/pkg/alert"
	pkgconfig "github.com/oddsweep/oddsweep/internal/pkg/config"
	"github.com/oddsweep/oddsweep/internal/pkg/export"
	"github.com/oddsweep/oddsweep/internal/pkg/fetch"
	"github.com/oddsweep/oddsweep/internal/pkg/logging"
	"github.com/oddsweep/oddsweep/internal/pkg/metrics"
	"github.com/oddsweep/oddsweep/internal/pkg/odds"
	"github.com/oddsweep/oddsweep/internal/pkg/storage"
	"github.com/oddsweep/oddsweep/internal/scraper/coordinator"
	"github.com/oddsweep/oddsweep/internal/scraper/schedule"
	"github.com/oddsweep/oddsweep/internal/scraper/scrapers"

	// Register all supported book adapters via init().
	_ "github.com/oddsweep/oddsweep/internal/scraper/scrapers/all"
)

const defaultConfigPath = "configs/example.yaml"

type flags struct {
	configPath string
	leagues    string
	books      string
}

func main() {
	if err := run(); err != nil {
		slog.Error("scraper failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	f := parseFlags()

	cfg, err := pkgconfig.Load(f.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if f.leagues != "" {
		cfg.Scraper.Leagues = splitList(f.leagues)
	}
	if f.books != "" {
		cfg.Scraper.Books = splitList(f.books)
	}

	logging.Setup(cfg.LogLevel, "scraper")
	slog.Info("config loaded", "path", f.configPath,
		"leagues", cfg.Scraper.Leagues, "books", cfg.Scraper.Books, "workers", cfg.Scraper.Workers)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.Serve(ctx, cfg.Metrics.Port)

	adapters, err := selectAdapters(cfg)
	if err != nil {
		return err
	}

	browser := fetch.NewChromeBrowser(ctx, fetch.ChromeOptions{
		Headless:  cfg.Scraper.Headless,
		UserAgent: cfg.Scraper.UserAgent,
	})
	defer browser.Close()

	source := schedule.NewESPN(cfg.Schedule.URLs, cfg.Scraper.Retry, cfg.Location())

	res, runErr := coordinator.New(cfg, browser, source, adapters).Run(ctx, cfg.Scraper.Leagues)
	if res == nil {
		return runErr
	}

	// Sinks run on whatever was gathered, even for a cancelled run.
	if cfg.Export.Path != "" {
		if path, err := export.NewExporter(cfg.Export.Path).WriteRun(res.RunID, res.Events); err != nil {
			slog.Error("export failed", "run", res.RunID, "error", err)
		} else {
			slog.Info("run exported", "run", res.RunID, "path", path)
		}
	}

	if cfg.Postgres.DSN != "" {
		if err := saveRun(ctx, cfg, res); err != nil {
			slog.Error("storage failed", "run", res.RunID, "error", err)
		}
	}

	opps := odds.FindOpportunities(res.Events)
	if len(opps) > 0 {
		slog.Info("arbitrage opportunities found", "run", res.RunID, "count", len(opps))
		alert.NewNotifier(&cfg.Telegram).NotifyOpportunities(res.RunID, opps)
	}

	return runErr
}

func saveRun(ctx context.Context, cfg *pkgconfig.Config, res *coordinator.Result) error {
	pg, err := storage.NewPostgres(&cfg.Postgres)
	if err != nil {
		return err
	}
	defer pg.Close()
	return pg.SaveRun(ctx, res.RunID, res.Events)
}

func selectAdapters(cfg *pkgconfig.Config) ([]scrapers.BookAdapter, error) {
	adapters := make([]scrapers.BookAdapter, 0, len(cfg.Scraper.Books))
	for _, name := range cfg.Scraper.Books {
		factory, ok := scrapers.FactoryByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown book %q (available: %s)",
				name, strings.Join(scrapers.AvailableNames(), ", "))
		}
		adapters = append(adapters, factory(cfg))
	}
	return adapters, nil
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.configPath, "config", defaultConfigPath, "path to config file")
	flag.StringVar(&f.leagues, "leagues", "", "comma-separated league override")
	flag.StringVar(&f.books, "books", "", "comma-separated book override")
	flag.Parse()
	return f
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
