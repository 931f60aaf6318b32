// Package schedule produces the canonical event list for a run. Book
// listings are matched against these events and never create events of
// their own.
package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oddsweep/oddsweep/internal/pkg/dom"
	"github.com/oddsweep/oddsweep/internal/pkg/fetch"
	"github.com/oddsweep/oddsweep/internal/pkg/models"
	"github.com/oddsweep/oddsweep/internal/pkg/taxonomy"
)

// Source produces the events scheduled for a league.
type Source interface {
	Events(ctx context.Context, session fetch.Session, league string) []*models.Event
}

// ESPN scrapes espn.com league schedule pages. Each page renders one
// ResponsiveTable per date with two participant links per game row.
type ESPN struct {
	urls  map[string]string
	retry fetch.RetryPolicy
	loc   *time.Location
}

func NewESPN(urls map[string]string, retry fetch.RetryPolicy, loc *time.Location) *ESPN {
	return &ESPN{urls: urls, retry: retry, loc: loc}
}

// Events returns the league's scheduled events. The schedule source is
// best-effort: a league whose page cannot be read yields an empty slice
// and the run moves on, because no downstream scope can proceed without
// schedule identity anyway.
func (e *ESPN) Events(ctx context.Context, session fetch.Session, league string) []*models.Event {
	url, ok := e.urls[league]
	if !ok {
		slog.Error("no schedule url configured", "league", league)
		return nil
	}
	if err := session.Navigate(ctx, url); err != nil {
		slog.Error("schedule page unreachable", "league", league, "url", url, "error", err)
		return nil
	}

	tables, err := session.WaitForAll(ctx, "div.ResponsiveTable", e.retry)
	if err != nil {
		slog.Error("schedule tables never rendered", "league", league, "url", url, "error", err)
		return nil
	}

	var events []*models.Event
	for _, tableHTML := range tables {
		table, err := dom.Parse(tableHTML)
		if err != nil {
			slog.Error("unparseable schedule table", "league", league, "error", err)
			continue
		}
		events = append(events, e.parseDateTable(table, league)...)
	}
	slog.Info("schedule scraped", "league", league, "events", len(events))
	return events
}

// parseDateTable reads one date group: the Table__Title carries the date
// for every row under it.
func (e *ESPN) parseDateTable(table *dom.Fragment, league string) []*models.Event {
	titleEl := table.SelectOne("div.Table__Title")
	if titleEl == nil {
		slog.Error("schedule table has no date title", "league", league)
		return nil
	}
	day, err := time.ParseInLocation("Monday, January 2, 2006", strings.TrimSpace(titleEl.Text()), e.loc)
	if err != nil {
		slog.Error("unrecognized schedule date", "league", league, "title", titleEl.Text(), "error", err)
		return nil
	}

	var events []*models.Event
	for _, row := range table.Select("tbody tr") {
		event, err := e.parseGameRow(row, league, day)
		if err != nil {
			// Bad rows cost one event, never the table.
			slog.Error("skipping schedule row", "league", league, "error", err)
			continue
		}
		events = append(events, event)
	}
	return events
}

// parseGameRow reads one scheduled game: two participant links and
// either a clock time or the LIVE sentinel.
func (e *ESPN) parseGameRow(row *dom.Fragment, league string, day time.Time) (*models.Event, error) {
	participants := row.Select("a.AnchorLink")
	teams := make([]string, 0, 2)
	for _, p := range participants {
		text := p.Text()
		if text == "" {
			continue
		}
		code, err := taxonomy.NormalizeTeam(league, text)
		if err != nil {
			continue
		}
		teams = append(teams, code)
		if len(teams) == 2 {
			break
		}
	}
	if len(teams) != 2 {
		return nil, fmt.Errorf("row has %d recognizable participants, want 2", len(teams))
	}

	timeCell := row.SelectOne("td.date__col")
	if timeCell == nil {
		return nil, fmt.Errorf("row has no time column")
	}
	text := strings.TrimSpace(timeCell.Text())

	y, m, d := day.Date()
	if strings.EqualFold(text, "LIVE") {
		start := time.Date(y, m, d, 0, 0, 0, 0, e.loc)
		return models.NewEvent(league, teams[0], teams[1], start, true)
	}

	clock, err := time.ParseInLocation("3:04 PM", text, e.loc)
	if err != nil {
		return nil, fmt.Errorf("unrecognized game time %q: %w", text, err)
	}
	start := time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, e.loc)
	return models.NewEvent(league, teams[0], teams[1], start, false)
}
