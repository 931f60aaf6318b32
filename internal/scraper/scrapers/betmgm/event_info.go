package betmgm

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/oddsweep/oddsweep/internal/pkg/dom"
	"github.com/oddsweep/oddsweep/internal/pkg/models"
	"github.com/oddsweep/oddsweep/internal/pkg/taxonomy"
)

// eventInfo is the listing-level identity of one event card.
type eventInfo struct {
	AwayTeam  string
	HomeTeam  string
	StartTime time.Time
	Active    bool
}

// parseEventInfo reads the identity of one listing card: teams, start
// time and live state. Cards come in three shapes: a prematch timer
// ("Today • 7:05 PM"), a starting-soon banner ("Starting in 12 minutes",
// inside a <b>), or a live indicator (an <i> element).
func parseEventInfo(card *dom.Fragment, league string, now time.Time, loc *time.Location) (eventInfo, error) {
	info := card.SelectOne("ms-event-info.grid-event-info")
	if info == nil {
		return eventInfo{}, fmt.Errorf("betmgm: event card has no grid-event-info")
	}

	var start time.Time
	var active bool
	switch {
	case info.SelectOne("b") != nil:
		mins, err := parseStartingSoon(info.SelectOne("b").Text())
		if err != nil {
			return eventInfo{}, err
		}
		start = now.In(loc).Add(time.Duration(mins) * time.Minute).Truncate(time.Minute)
	case info.SelectOne("i") != nil:
		// Live events carry no clock time. Midnight keeps the identity
		// stable for the rest of the day; Active marks it in-play.
		y, m, d := now.In(loc).Date()
		start = time.Date(y, m, d, 0, 0, 0, 0, loc)
		active = true
	default:
		timer := info.SelectOne("ms-prematch-timer.starting-time")
		if timer == nil {
			return eventInfo{}, fmt.Errorf("betmgm: event card has no start time")
		}
		var err error
		start, err = parseTimerText(timer.Text(), now, loc)
		if err != nil {
			return eventInfo{}, err
		}
	}

	participants := card.Select("div.participant")
	if len(participants) != 2 {
		return eventInfo{}, fmt.Errorf("betmgm: expected 2 participants, got %d", len(participants))
	}
	away, err := taxonomy.NormalizeTeam(league, participants[0].Text())
	if err != nil {
		return eventInfo{}, err
	}
	home, err := taxonomy.NormalizeTeam(league, participants[1].Text())
	if err != nil {
		return eventInfo{}, err
	}

	return eventInfo{AwayTeam: away, HomeTeam: home, StartTime: start, Active: active}, nil
}

// parseStartingSoon extracts N from "Starting in N minutes".
func parseStartingSoon(text string) (int, error) {
	fields := strings.Fields(text)
	if len(fields) < 3 || !strings.EqualFold(fields[0], "starting") {
		return 0, fmt.Errorf("betmgm: unrecognized starting-soon text %q", text)
	}
	mins, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, fmt.Errorf("betmgm: unrecognized starting-soon text %q: %w", text, err)
	}
	return mins, nil
}

// parseTimerText parses the prematch timer, "<date> • <time>" where date
// is "Today", "Tomorrow" or "2006-01-02" and time is "7:05 PM".
func parseTimerText(text string, now time.Time, loc *time.Location) (time.Time, error) {
	parts := strings.Split(text, "•")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("betmgm: unrecognized timer text %q", text)
	}
	datePart := strings.TrimSpace(parts[0])
	timePart := strings.TrimSpace(parts[1])

	var day time.Time
	switch datePart {
	case "Today":
		day = now.In(loc)
	case "Tomorrow":
		day = now.In(loc).AddDate(0, 0, 1)
	default:
		var err error
		day, err = time.ParseInLocation("2006-01-02", datePart, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("betmgm: unrecognized date %q: %w", datePart, err)
		}
	}

	clock, err := time.ParseInLocation("3:04 PM", timePart, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("betmgm: unrecognized time %q: %w", timePart, err)
	}

	y, m, d := day.Date()
	return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, loc), nil
}

func (e eventInfo) toEvent(league string) (*models.Event, error) {
	return models.NewEvent(league, e.AwayTeam, e.HomeTeam, e.StartTime, e.Active)
}
