package taxonomy

import (
	"errors"
	"testing"
)

func TestNormalizeTeam(t *testing.T) {
	tests := []struct {
		league string
		raw    string
		want   string
	}{
		{"mlb", "BOSTON RED SOX", "BOS"},
		{"mlb", "Red Sox", "BOS"},
		{"mlb", "  boston  ", "BOS"},
		{"mlb", "STL", "STL"},
		{"mlb", "St. Louis", "STL"},
		{"nba", "Golden State", "GSW"},
		{"nfl", "NY Jets", "NYJ"},
	}
	for _, tt := range tests {
		got, err := NormalizeTeam(tt.league, tt.raw)
		if err != nil {
			t.Errorf("NormalizeTeam(%q, %q): unexpected error %v", tt.league, tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeTeam(%q, %q) = %q, want %q", tt.league, tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeTeam_Unknown(t *testing.T) {
	_, err := NormalizeTeam("mlb", "Springfield Isotopes")
	var ute *UnknownTeamError
	if !errors.As(err, &ute) {
		t.Fatalf("expected UnknownTeamError, got %v", err)
	}
	if ute.Name != "Springfield Isotopes" {
		t.Errorf("error should carry the raw name, got %q", ute.Name)
	}

	if _, err := NormalizeTeam("curling", "BOS"); err == nil {
		t.Error("unsupported league should fail")
	}
}

func TestNormalizeMarket(t *testing.T) {
	tests := []struct {
		label    string
		wantKey  string
		wantTeam string
	}{
		{"Moneyline", "moneyline", ""},
		{"Run Line", "spread", ""},
		{"Total Runs", "total", ""},
		{"BOS: Total Bases", "batter_total_bases", "BOS"},
		{"Boston Red Sox: Total Bases", "batter_total_bases", "BOS"},
		{"H+R+RBI", "batter_hits_runs_rbis", ""},
		{"Strikeouts", "pitcher_strikeouts", ""},
		{"Alternate Run Line", "alt_spread", ""},
	}
	for _, tt := range tests {
		key, team, err := NormalizeMarket(tt.label)
		if err != nil {
			t.Errorf("NormalizeMarket(%q): unexpected error %v", tt.label, err)
			continue
		}
		if key != tt.wantKey || team != tt.wantTeam {
			t.Errorf("NormalizeMarket(%q) = (%q, %q), want (%q, %q)",
				tt.label, key, team, tt.wantKey, tt.wantTeam)
		}
	}
}

func TestNormalizeMarket_Unknown(t *testing.T) {
	_, _, err := NormalizeMarket("First Basket Scorer")
	var ume *UnknownMarketError
	if !errors.As(err, &ume) {
		t.Fatalf("expected UnknownMarketError, got %v", err)
	}
	if ume.Slug != "first_basket_scorer" {
		t.Errorf("slug = %q", ume.Slug)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Total Bases", "total_bases"},
		{"H+R+RBI", "h_r_rbi"},
		{"show-more  less", "show_more_less"},
		{"  Spread ", "spread"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMarketFamilies(t *testing.T) {
	if !IsTotalsFamily("total") || !IsTotalsFamily("team_total") {
		t.Error("totals family misclassified")
	}
	if IsTotalsFamily("moneyline") {
		t.Error("moneyline is not totals family")
	}
	if !IsPlayerProp("batter_hits") || !IsPlayerProp("pitcher_outs") {
		t.Error("player props misclassified")
	}
	if IsPlayerProp("spread") {
		t.Error("spread is not a player prop")
	}
}
