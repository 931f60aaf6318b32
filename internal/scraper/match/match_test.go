package match

import (
	"errors"
	"testing"
	"time"

	"github.com/oddsweep/oddsweep/internal/pkg/models"
)

func mustEvent(t *testing.T, away, home string, start time.Time, active bool) *models.Event {
	t.Helper()
	ev, err := models.NewEvent("mlb", away, home, start, active)
	if err != nil {
		t.Fatal(err)
	}
	return ev
}

func TestFind_WithinTolerance(t *testing.T) {
	start := time.Date(2024, 6, 15, 19, 5, 0, 0, time.UTC)
	schedule := []*models.Event{
		mustEvent(t, "BOS", "NYY", start, false),
		mustEvent(t, "CHC", "STL", start, false),
	}

	cases := []struct {
		name   string
		offset time.Duration
		found  bool
	}{
		{"exact", 0, true},
		{"nine minutes late", 9 * time.Minute, true},
		{"exactly at tolerance", 10 * time.Minute, true},
		{"nine minutes early", -9 * time.Minute, true},
		{"past tolerance", 11 * time.Minute, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			obs := Observed{AwayTeam: "BOS", HomeTeam: "NYY", StartTime: start.Add(c.offset)}
			ev, err := Find(obs, schedule, 10*time.Minute)
			if c.found {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if ev.AwayTeam != "BOS" {
					t.Errorf("matched wrong event: %v", ev)
				}
			} else if !errors.Is(err, ErrEventNotFound) {
				t.Fatalf("expected ErrEventNotFound, got %v", err)
			}
		})
	}
}

func TestFind_TeamOrderMatters(t *testing.T) {
	start := time.Date(2024, 6, 15, 19, 5, 0, 0, time.UTC)
	schedule := []*models.Event{mustEvent(t, "BOS", "NYY", start, false)}

	obs := Observed{AwayTeam: "NYY", HomeTeam: "BOS", StartTime: start}
	if _, err := Find(obs, schedule, 10*time.Minute); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("reversed teams must not match, got %v", err)
	}
}

func TestFind_Live(t *testing.T) {
	midnight := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	schedule := []*models.Event{mustEvent(t, "BOS", "NYY", midnight, true)}

	// Live observations match regardless of time-of-day drift.
	obs := Observed{AwayTeam: "BOS", HomeTeam: "NYY", StartTime: midnight, Live: true}
	ev, err := Find(obs, schedule, 10*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if !ev.Active {
		t.Error("matched event not active")
	}

	// A prematch observation never matches a live event.
	obs.Live = false
	if _, err := Find(obs, schedule, 10*time.Minute); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("prematch observation matched live event: %v", err)
	}
}

func TestFind_FirstMatchWins(t *testing.T) {
	start := time.Date(2024, 6, 15, 13, 0, 0, 0, time.UTC)
	early := mustEvent(t, "BOS", "NYY", start, false)
	late := mustEvent(t, "BOS", "NYY", start.Add(6*time.Hour), false)

	obs := Observed{AwayTeam: "BOS", HomeTeam: "NYY", StartTime: start.Add(5 * time.Minute)}
	ev, err := Find(obs, []*models.Event{early, late}, 10*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if ev.ID != early.ID {
		t.Error("expected the first candidate in schedule order")
	}
}
