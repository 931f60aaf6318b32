package draftkings

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/oddsweep/oddsweep/internal/pkg/dom"
	"github.com/oddsweep/oddsweep/internal/pkg/models"
	"github.com/oddsweep/oddsweep/internal/pkg/taxonomy"
)

// listedEvent is one event discovered on a league listing table.
type listedEvent struct {
	Event *models.Event
	Href  string
}

var ordinalSuffix = regexp.MustCompile(`(?i)(\d+)(st|nd|rd|th)`)

// parseListingTable reads one sportsbook-table: a header date covering
// every row in it, then rows paired away-over-home. An odd row count
// means the pairing is unknowable, which fails the whole table.
func parseListingTable(table *dom.Fragment, league string, now time.Time, loc *time.Location) ([]listedEvent, error) {
	header := table.SelectOne("div.sportsbook-table-header__title")
	if header == nil {
		return nil, fmt.Errorf("draftkings: listing table has no date header")
	}
	day, err := parseHeaderDate(header.Text(), now, loc)
	if err != nil {
		return nil, err
	}

	body := table.SelectOne("tbody.sportsbook-table__body")
	if body == nil {
		return nil, fmt.Errorf("draftkings: listing table has no body")
	}
	rows := body.Select("tr")
	if len(rows)%2 != 0 {
		return nil, fmt.Errorf("draftkings: %d listing rows cannot pair into events", len(rows))
	}

	var events []listedEvent
	for i := 0; i < len(rows); i += 2 {
		ev, err := parseEventPair(rows[i], rows[i+1], league, day, loc)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseEventPair(awayRow, homeRow *dom.Fragment, league string, day time.Time, loc *time.Location) (listedEvent, error) {
	anchor := awayRow.SelectOne("a.event-cell-link")
	if anchor == nil || anchor.Attr("href") == "" {
		return listedEvent{}, fmt.Errorf("draftkings: listing row has no event link")
	}

	away, err := rowTeam(awayRow, league)
	if err != nil {
		return listedEvent{}, err
	}
	home, err := rowTeam(homeRow, league)
	if err != nil {
		return listedEvent{}, err
	}

	// Prematch rows show a clock; live rows show the game state instead.
	var start time.Time
	active := false
	if clock := awayRow.SelectOne("span.event-cell__start-time"); clock != nil {
		t, err := time.ParseInLocation("3:04PM", strings.TrimSpace(clock.Text()), loc)
		if err != nil {
			return listedEvent{}, fmt.Errorf("draftkings: bad start time %q: %w", clock.Text(), err)
		}
		y, m, d := day.Date()
		start = time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc)
	} else {
		y, m, d := day.Date()
		start = time.Date(y, m, d, 0, 0, 0, 0, loc)
		active = true
	}

	event, err := models.NewEvent(league, away, home, start, active)
	if err != nil {
		return listedEvent{}, err
	}
	return listedEvent{Event: event, Href: anchor.Attr("href")}, nil
}

// rowTeam resolves the team from an event cell.
func rowTeam(row *dom.Fragment, league string) (string, error) {
	cell := row.SelectOne("div.event-cell__name-text")
	if cell == nil {
		return "", fmt.Errorf("draftkings: listing row has no team cell")
	}
	return teamFromLabel(league, cell.Text())
}

// teamFromLabel resolves a DraftKings team label. The book prefixes
// nicknames with a city or abbreviation ("NY Yankees", "BOS Red Sox"),
// so the full text is tried first and the nickname after it second.
func teamFromLabel(league, name string) (string, error) {
	if code, err := taxonomy.NormalizeTeam(league, name); err == nil {
		return code, nil
	}
	if _, rest, ok := strings.Cut(name, " "); ok {
		if code, err := taxonomy.NormalizeTeam(league, rest); err == nil {
			return code, nil
		}
	}
	return "", &taxonomy.UnknownTeamError{League: league, Name: name}
}

// parseHeaderDate parses the table header: "TODAY", "TOMORROW", or a
// weekday form like "THU AUG 28TH" (no year; the current one applies).
func parseHeaderDate(text string, now time.Time, loc *time.Location) (time.Time, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(text))
	switch cleaned {
	case "TODAY":
		return now.In(loc), nil
	case "TOMORROW":
		return now.In(loc).AddDate(0, 0, 1), nil
	}

	cleaned = ordinalSuffix.ReplaceAllString(cleaned, "$1")
	// time.Parse wants "Thu Aug 28" capitalization.
	words := strings.Fields(strings.ToLower(cleaned))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	day, err := time.ParseInLocation("Mon Jan 2", strings.Join(words, " "), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("draftkings: unrecognized header date %q: %w", text, err)
	}
	return day.AddDate(now.In(loc).Year(), 0, 0), nil
}
