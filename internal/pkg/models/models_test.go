package models

import (
	"testing"
	"time"
)

func TestEventID_Deterministic(t *testing.T) {
	start := time.Date(2025, 8, 28, 19, 5, 0, 0, time.UTC)
	a := EventID("mlb", "BOS", "NYY", start, false)
	b := EventID("mlb", "BOS", "NYY", start, false)
	if a != b {
		t.Errorf("same fixture must hash to same ID: %s != %s", a, b)
	}
	if EventID("mlb", "NYY", "BOS", start, false) == a {
		t.Error("swapped away/home must change the ID")
	}
	if EventID("mlb", "BOS", "NYY", start, true) == a {
		t.Error("live flag must change the ID")
	}
}

func TestNewEvent_Invariants(t *testing.T) {
	start := time.Date(2025, 8, 28, 19, 5, 0, 0, time.UTC)

	if _, err := NewEvent("mlb", "BOS", "BOS", start, false); err == nil {
		t.Error("away == home must be rejected")
	}
	if _, err := NewEvent("mlb", "BOS", "NYY", time.Time{}, false); err == nil {
		t.Error("zero start time on a non-live event must be rejected")
	}
	ev, err := NewEvent("mlb", "BOS", "NYY", time.Time{}, true)
	if err != nil {
		t.Fatalf("live event with unknown time should be allowed: %v", err)
	}
	if !ev.Active {
		t.Error("live event should be active")
	}
}

func TestNewPick_Invariants(t *testing.T) {
	if _, err := NewPick("moneyline", "BOS", nil, 0, "", ""); err == nil {
		t.Error("zero odds must be rejected")
	}
	if _, err := NewPick("total", "", Float(8.5), -110, "", ""); err == nil {
		t.Error("totals market without outcome must be rejected")
	}
	if _, err := NewPick("batter_hits", "", Float(1.5), 120, "over", ""); err == nil {
		t.Error("player prop without player must be rejected")
	}

	p, err := NewPick("total", "", Float(8.5), -110, "under", "")
	if err != nil {
		t.Fatalf("valid total pick rejected: %v", err)
	}
	if p.Line == nil || *p.Line != 8.5 {
		t.Errorf("line lost: %v", p.Line)
	}

	if _, err := NewPick("moneyline", "BOS", nil, 145, "", ""); err != nil {
		t.Errorf("valid moneyline rejected: %v", err)
	}
}

func TestAppendQuote(t *testing.T) {
	ev, err := NewEvent("mlb", "BOS", "NYY", time.Date(2025, 8, 28, 19, 5, 0, 0, time.UTC), false)
	if err != nil {
		t.Fatal(err)
	}
	p, _ := NewPick("moneyline", "BOS", nil, -120, "", "")
	ev.AppendQuote(BookQuote{BookName: "betmgm", LastUpdate: time.Now(), Picks: []Pick{p}})
	if len(ev.Books) != 1 || ev.Books[0].BookName != "betmgm" {
		t.Errorf("quote not appended: %+v", ev.Books)
	}
}
