// Package models holds the run aggregate: Events created by the schedule
// scraper, BookQuotes appended by the coordinator, and Picks produced by
// book adapters. Events are the single source of truth for a run; adapters
// never create them, only match into them.
package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/oddsweep/oddsweep/internal/pkg/taxonomy"
)

// Event is one real-world fixture from the canonical schedule source.
// Identifying fields are immutable after creation; the only permitted
// mutation is appending a BookQuote.
type Event struct {
	ID        string      `json:"id"`
	League    string      `json:"league"`
	AwayTeam  string      `json:"away_team"`
	HomeTeam  string      `json:"home_team"`
	StartTime time.Time   `json:"start_time"`
	Active    bool        `json:"active"`
	Books     []BookQuote `json:"books"`
}

// BookQuote is one sportsbook's snapshot of picks for an Event. Created
// once per (event, book) pair per run and never mutated after append.
type BookQuote struct {
	BookName   string    `json:"book_name"`
	LastUpdate time.Time `json:"last_update"`
	Picks      []Pick    `json:"picks"`
}

// Pick is one priced betting option.
type Pick struct {
	Market  string   `json:"market"`
	Team    string   `json:"team,omitempty"`
	Line    *float64 `json:"line"`
	Odds    int      `json:"odds"`
	Outcome string   `json:"outcome,omitempty"`
	Player  string   `json:"player,omitempty"`
}

// NewEvent builds an Event with its deterministic identity. A live event has
// no known start time; by convention its StartTime is midnight of the current
// day in the schedule source's location, with Active set.
func NewEvent(league, awayTeam, homeTeam string, startTime time.Time, active bool) (*Event, error) {
	if awayTeam == homeTeam {
		return nil, fmt.Errorf("event %s@%s: away and home team must differ", awayTeam, homeTeam)
	}
	if startTime.IsZero() && !active {
		return nil, fmt.Errorf("event %s@%s: missing start time on a non-live event", awayTeam, homeTeam)
	}
	return &Event{
		ID:        EventID(league, awayTeam, homeTeam, startTime, active),
		League:    league,
		AwayTeam:  awayTeam,
		HomeTeam:  homeTeam,
		StartTime: startTime.UTC(),
		Active:    active,
	}, nil
}

// EventID derives the stable event identity from the identifying fields.
// The same fixture hashes to the same ID across runs.
func EventID(league, awayTeam, homeTeam string, startTime time.Time, active bool) string {
	ts := "live"
	if !startTime.IsZero() {
		ts = startTime.UTC().Format(time.RFC3339)
	}
	s := fmt.Sprintf("%s_%s_%s_%s_%t", awayTeam, homeTeam, league, ts, active)
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// AppendQuote attaches one book's pick set to the event. Callers must
// serialize appends to the same Event (the coordinator merges quotes from a
// single goroutine).
func (e *Event) AppendQuote(q BookQuote) {
	e.Books = append(e.Books, q)
}

func (e *Event) String() string {
	return fmt.Sprintf("%s@%s_%s", e.AwayTeam, e.HomeTeam, e.StartTime.Format("2006-01-02_15:04"))
}

// NewPick validates the pick invariants at construction so malformed picks
// never enter a BookQuote: odds are nonzero American odds, totals-family
// markets carry an over/under qualifier, player props carry a player.
func NewPick(market, team string, line *float64, odds int, outcome, player string) (Pick, error) {
	if odds == 0 {
		return Pick{}, fmt.Errorf("pick %s: american odds cannot be 0", market)
	}
	if taxonomy.IsTotalsFamily(market) && outcome == "" {
		return Pick{}, fmt.Errorf("pick %s: totals market requires an outcome qualifier", market)
	}
	if taxonomy.IsPlayerProp(market) && player == "" {
		return Pick{}, fmt.Errorf("pick %s: player prop requires a player", market)
	}
	return Pick{
		Market:  market,
		Team:    team,
		Line:    line,
		Odds:    odds,
		Outcome: outcome,
		Player:  player,
	}, nil
}

// Float is a convenience for optional line values.
func Float(v float64) *float64 { return &v }
