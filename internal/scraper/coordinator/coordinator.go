// Package coordinator drives a full scrape run: schedule first, then
// every enabled book per league, fanning event pages out to a worker
// pool and merging the results into the run aggregate.
//
// Error recovery is scoped: a failed pick costs the pick, a failed
// block costs the block, a failed event page costs that book's quote
// for the event, a failed listing costs the (book, league) pair. The
// run itself always completes with whatever was gathered.
package coordinator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oddsweep/oddsweep/internal/pkg/config"
	"github.com/oddsweep/oddsweep/internal/pkg/fetch"
	"github.com/oddsweep/oddsweep/internal/pkg/metrics"
	"github.com/oddsweep/oddsweep/internal/pkg/models"
	"github.com/oddsweep/oddsweep/internal/scraper/match"
	"github.com/oddsweep/oddsweep/internal/scraper/schedule"
	"github.com/oddsweep/oddsweep/internal/scraper/scrapers"
)

type Coordinator struct {
	cfg      *config.Config
	browser  fetch.Browser
	source   schedule.Source
	adapters []scrapers.BookAdapter
	now      func() time.Time
}

// Result is one finished run.
type Result struct {
	RunID     string
	StartedAt time.Time
	Events    []*models.Event
}

func New(cfg *config.Config, browser fetch.Browser, source schedule.Source, adapters []scrapers.BookAdapter) *Coordinator {
	return &Coordinator{
		cfg:      cfg,
		browser:  browser,
		source:   source,
		adapters: adapters,
		now:      time.Now,
	}
}

// bookResult is one book's quote for one event, produced by a worker
// and merged single-threaded.
type bookResult struct {
	eventID string
	quote   models.BookQuote
}

// Run scrapes every league sequentially and returns the aggregate. The
// only non-nil error is ctx's, so a partial run is still reported when
// individual scopes failed.
func (c *Coordinator) Run(ctx context.Context, leagues []string) (*Result, error) {
	res := &Result{RunID: uuid.NewString(), StartedAt: c.now()}
	log := slog.With("run", res.RunID)
	log.Info("run started", "leagues", leagues, "books", len(c.adapters))

	for _, league := range leagues {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		leagueStart := c.now()
		events := c.runLeague(ctx, log, league)
		res.Events = append(res.Events, events...)
		metrics.RunDuration.WithLabelValues(league).Observe(c.now().Sub(leagueStart).Seconds())
	}

	log.Info("run finished", "events", len(res.Events), "elapsed", c.now().Sub(res.StartedAt))
	return res, ctx.Err()
}

func (c *Coordinator) runLeague(ctx context.Context, log *slog.Logger, league string) []*models.Event {
	log = log.With("league", league)

	primary, err := c.browser.NewSession(ctx)
	if err != nil {
		log.Error("cannot open primary session, skipping league", "error", err)
		metrics.ScrapeErrors.WithLabelValues("", "league").Inc()
		return nil
	}
	defer primary.Close()

	events := c.source.Events(ctx, primary, league)
	if len(events) == 0 {
		log.Warn("no scheduled events, skipping league")
		return nil
	}
	metrics.EventsScheduled.WithLabelValues(league).Add(float64(len(events)))

	byID := make(map[string]*models.Event, len(events))
	for _, ev := range events {
		byID[ev.ID] = ev
	}

	for _, adapter := range c.adapters {
		c.runBook(ctx, log, adapter, primary, league, events, byID)
	}
	return events
}

// runBook discovers a book's listings, matches them to the schedule and
// fans the matched event pages out to workers. Quotes are merged on
// this goroutine only.
func (c *Coordinator) runBook(ctx context.Context, log *slog.Logger, adapter scrapers.BookAdapter, primary fetch.Session, league string, events []*models.Event, byID map[string]*models.Event) {
	book := adapter.Name()
	log = log.With("book", book)
	log.Info("book discovery started")

	links, err := adapter.DiscoverEventLinks(ctx, primary, league, len(events))
	if err != nil {
		log.Error("listing discovery failed, skipping book for league", "error", err)
		metrics.ScrapeErrors.WithLabelValues(book, "league").Inc()
		return
	}

	matched := c.matchLinks(log, book, league, links, events)
	if len(matched) == 0 {
		log.Warn("no listings matched the schedule")
		return
	}
	log.Info("book discovery finished", "listed", len(links), "matched", len(matched))

	results := make(chan bookResult)
	var wg sync.WaitGroup
	for _, part := range partition(matched, c.cfg.Scraper.Workers) {
		wg.Add(1)
		go func(part []scrapers.EventLink) {
			defer wg.Done()
			c.scrapeSlice(ctx, log, adapter, league, part, results)
		}(part)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		ev, ok := byID[r.eventID]
		if !ok {
			// Workers only receive schedule-matched links, so this is a
			// broken invariant, not a data problem.
			log.Error("quote for unknown event dropped", "event_id", r.eventID)
			continue
		}
		ev.AppendQuote(r.quote)
		metrics.PicksScraped.WithLabelValues(league, book).Add(float64(len(r.quote.Picks)))
	}
}

// matchLinks resolves listings against the schedule. Unmatched listings
// are dropped: books never create events.
func (c *Coordinator) matchLinks(log *slog.Logger, book, league string, links []scrapers.EventLink, events []*models.Event) []scrapers.EventLink {
	matched := make([]scrapers.EventLink, 0, len(links))
	for _, link := range links {
		obs := match.Observed{
			AwayTeam:  link.Event.AwayTeam,
			HomeTeam:  link.Event.HomeTeam,
			StartTime: link.Event.StartTime,
			Live:      link.Event.Active,
		}
		ev, err := match.Find(obs, events, c.cfg.Scraper.MatchTolerance)
		if err != nil {
			log.Warn("listing matches no scheduled event",
				"away", obs.AwayTeam, "home", obs.HomeTeam, "start", obs.StartTime)
			metrics.ListingsUnmatched.WithLabelValues(league, book).Inc()
			continue
		}
		metrics.EventsMatched.WithLabelValues(league, book).Inc()
		matched = append(matched, scrapers.EventLink{Event: ev, URL: link.URL})
	}
	return matched
}

// scrapeSlice runs one worker: its own session, one event page at a
// time. A failed page costs that event's quote only.
func (c *Coordinator) scrapeSlice(ctx context.Context, log *slog.Logger, adapter scrapers.BookAdapter, league string, part []scrapers.EventLink, results chan<- bookResult) {
	session, err := c.browser.NewSession(ctx)
	if err != nil {
		log.Error("worker session failed, slice lost", "events", len(part), "error", err)
		metrics.ScrapeErrors.WithLabelValues(adapter.Name(), "worker").Inc()
		return
	}
	defer session.Close()

	for _, link := range part {
		if ctx.Err() != nil {
			return
		}
		picks, err := adapter.ScrapeEventPage(ctx, session, league, link.URL)
		if err != nil {
			log.Error("event page failed", "event", link.Event, "url", link.URL, "error", err)
			metrics.ScrapeErrors.WithLabelValues(adapter.Name(), "event").Inc()
			continue
		}
		if len(picks) == 0 {
			log.Warn("event page yielded no picks", "event", link.Event, "url", link.URL)
			continue
		}
		results <- bookResult{
			eventID: link.Event.ID,
			quote: models.BookQuote{
				BookName:   adapter.Name(),
				LastUpdate: c.now().UTC(),
				Picks:      picks,
			},
		}
	}
}
