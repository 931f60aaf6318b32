// Package betmgm scrapes BetMGM's Angular sportsbook frontend. Listings
// render as ms-six-pack-event cards; event pages render one
// ms-option-panel per market block.
package betmgm

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
	eventCardSelector   = "ms-six-pack-event.grid-event"
	optionPanelSelector = "ms-option-panel.option-panel"
	allPillSelector     = "ul.event-details-pills-list li:last-child button.ds-pill"
)

func init() {
	scrapers.Register("betmgm", func(cfg *config.Config) scrapers.BookAdapter {
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
	book := cfg.Books["betmgm"]
	return &Adapter{
		domain:  book.Domain,
		leagues: book.Leagues,
		retry:   cfg.Scraper.Retry,
		loc:     cfg.Location(),
		now:     time.Now,
	}
}

func (a *Adapter) Name() string { return "betmgm" }

func (a *Adapter) DiscoverEventLinks(ctx context.Context, session fetch.Session, league string, expected int) ([]scrapers.EventLink, error) {
	listURL, ok := a.leagues[league]
	if !ok {
		return nil, &scrapers.LeagueNotFoundError{Book: "betmgm", League: league, Err: fmt.Errorf("no listing url configured")}
	}
	if err := session.Navigate(ctx, listURL); err != nil {
		return nil, &scrapers.LeagueNotFoundError{Book: "betmgm", League: league, Err: err}
	}

	cards, err := session.WaitForAll(ctx, eventCardSelector, a.retry)
	if err != nil {
		return nil, &scrapers.LeagueNotFoundError{Book: "betmgm", League: league, Err: err}
	}
	if len(cards) < expected {
		slog.Warn("listing rendered fewer events than scheduled",
			"book", "betmgm", "league", league, "rendered", len(cards), "scheduled", expected)
	}

	links := make([]scrapers.EventLink, 0, len(cards))
	for _, cardHTML := range cards {
		link, err := a.parseEventCard(cardHTML, league)
		if err != nil {
			// One unreadable card never costs the listing.
			slog.Error("skipping unreadable event card", "book", "betmgm", "league", league, "error", err)
			continue
		}
		links = append(links, link)
	}
	return links, nil
}

func (a *Adapter) parseEventCard(cardHTML, league string) (scrapers.EventLink, error) {
	card, err := dom.Parse(cardHTML)
	if err != nil {
		return scrapers.EventLink{}, err
	}

	anchor := card.SelectOne("a.grid-info-wrapper")
	if anchor == nil || anchor.Attr("href") == "" {
		return scrapers.EventLink{}, fmt.Errorf("event card has no link")
	}

	info, err := parseEventInfo(card, league, a.now(), a.loc)
	if err != nil {
		return scrapers.EventLink{}, err
	}
	event, err := info.toEvent(league)
	if err != nil {
		return scrapers.EventLink{}, err
	}
	return scrapers.EventLink{Event: event, URL: a.domain + anchor.Attr("href")}, nil
}

func (a *Adapter) ScrapeEventPage(ctx context.Context, session fetch.Session, league, url string) ([]models.Pick, error) {
	if err := session.Navigate(ctx, url); err != nil {
		return nil, err
	}

	// The "All" pill exposes every market tab. Losing it only narrows
	// the blocks below, so a miss is not fatal.
	if err := session.Click(ctx, allPillSelector); err != nil {
		slog.Debug("all pill not clickable", "book", "betmgm", "url", url, "error", err)
	}

	panels, err := session.WaitForAll(ctx, optionPanelSelector, a.retry)
	if err != nil {
		return nil, fmt.Errorf("betmgm: no market blocks on %s: %w", url, err)
	}

	var picks []models.Pick
	for _, panelHTML := range panels {
		panel, err := dom.Parse(panelHTML)
		if err != nil {
			slog.Error("unparseable market block", "book", "betmgm", "url", url, "error", err)
			continue
		}
		blockPicks, err := parseBlock(panel, league)
		if err != nil {
			// Market titles the taxonomy does not know are routine;
			// anything else is a malformed block worth surfacing.
			var unknown *taxonomy.UnknownMarketError
			if errors.As(err, &unknown) {
				slog.Debug("skipping unknown market block", "book", "betmgm", "market", unknown.Label)
			} else {
				slog.Error("skipping market block", "book", "betmgm", "url", url, "error", err)
			}
			continue
		}
		picks = append(picks, blockPicks...)
	}
	return picks, nil
}
