// Package draftkings scrapes DraftKings' React sportsbook frontend.
// League listings render as date-grouped tables with one row per team;
// event pages render one accordion per market.
package draftkings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oddsweep/oddsweep/internal/pkg/config"
	"github.com/oddsweep/oddsweep/internal/pkg/dom"
	"github.com/oddsweep/oddsweep/internal/pkg/fetch"
	"github.com/oddsweep/oddsweep/internal/pkg/models"
	"github.com/oddsweep/oddsweep/internal/pkg/taxonomy"
	"github.com/oddsweep/oddsweep/internal/scraper/scrapers"
)

const (
	listingTableSelector = "table.sportsbook-table"
	marketGroupSelector  = "div.sportsbook-event-accordion__wrapper"
)

func init() {
	scrapers.Register("draftkings", func(cfg *config.Config) scrapers.BookAdapter {
		return New(cfg)
	})
}

type Adapter struct {
	domain  string
	leagues map[string]string
	retry   fetch.RetryPolicy
	loc     *time.Location
	now     func() time.Time
}

func New(cfg *config.Config) *Adapter {
	book := cfg.Books["draftkings"]
	return &Adapter{
		domain:  book.Domain,
		leagues: book.Leagues,
		retry:   cfg.Scraper.Retry,
		loc:     cfg.Location(),
		now:     time.Now,
	}
}

func (a *Adapter) Name() string { return "draftkings" }

func (a *Adapter) DiscoverEventLinks(ctx context.Context, session fetch.Session, league string, expected int) ([]scrapers.EventLink, error) {
	listURL, ok := a.leagues[league]
	if !ok {
		return nil, &scrapers.LeagueNotFoundError{Book: "draftkings", League: league, Err: fmt.Errorf("no listing url configured")}
	}
	if err := session.Navigate(ctx, listURL); err != nil {
		return nil, &scrapers.LeagueNotFoundError{Book: "draftkings", League: league, Err: err}
	}

	tables, err := session.WaitForAll(ctx, listingTableSelector, a.retry)
	if err != nil {
		return nil, &scrapers.LeagueNotFoundError{Book: "draftkings", League: league, Err: err}
	}

	now := a.now()
	var links []scrapers.EventLink
	for _, tableHTML := range tables {
		table, err := dom.Parse(tableHTML)
		if err != nil {
			slog.Error("unparseable listing table", "book", "draftkings", "league", league, "error", err)
			continue
		}
		listed, err := parseListingTable(table, league, now, a.loc)
		if err != nil {
			// One broken table costs its date group, not the listing.
			slog.Error("skipping listing table", "book", "draftkings", "league", league, "error", err)
			continue
		}
		for _, ev := range listed {
			links = append(links, scrapers.EventLink{Event: ev.Event, URL: a.domain + ev.Href})
		}
	}
	if len(links) < expected {
		slog.Warn("listing rendered fewer events than scheduled",
			"book", "draftkings", "league", league, "rendered", len(links), "scheduled", expected)
	}
	return links, nil
}

func (a *Adapter) ScrapeEventPage(ctx context.Context, session fetch.Session, league, url string) ([]models.Pick, error) {
	if err := session.Navigate(ctx, url); err != nil {
		return nil, err
	}

	groups, err := session.WaitForAll(ctx, marketGroupSelector, a.retry)
	if err != nil {
		return nil, fmt.Errorf("draftkings: no market groups on %s: %w", url, err)
	}

	var picks []models.Pick
	for _, groupHTML := range groups {
		group, err := dom.Parse(groupHTML)
		if err != nil {
			slog.Error("unparseable market group", "book", "draftkings", "url", url, "error", err)
			continue
		}
		groupPicks, err := parseMarketGroup(group, league)
		if err != nil {
			var unknown *taxonomy.UnknownMarketError
			if errors.As(err, &unknown) {
				slog.Debug("skipping unknown market group", "book", "draftkings", "market", unknown.Label)
			} else {
				slog.Error("skipping market group", "book", "draftkings", "url", url, "error", err)
			}
			continue
		}
		picks = append(picks, groupPicks...)
	}
	return picks, nil
}
