package betmgm

import (
	"errors"
	"testing"

	"github.com/oddsweep/oddsweep/internal/pkg/dom"
	"github.com/oddsweep/oddsweep/internal/scraper/scrapers"
)

func mustParse(t *testing.T, html string) *dom.Fragment {
	t.Helper()
	f, err := dom.Parse(html)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

const sixPackHTML = `
<ms-option-panel class="option-panel">
  <span class="market-name">Game Lines</span>
  <div class="option-group-container six-pack-container">
    <div class="option-row">
      <div class="six-pack-player-name">Boston Red Sox</div>
      <ms-event-pick class="option-pick"><div class="name">+1.5</div><div class="value">-165</div></ms-event-pick>
      <ms-event-pick class="option-pick"><div class="name">O 8.5</div><div class="value">-110</div></ms-event-pick>
      <ms-event-pick class="option-pick"><div class="value">+140</div></ms-event-pick>
    </div>
    <div class="option-row">
      <div class="six-pack-player-name">New York Yankees</div>
      <ms-event-pick class="option-pick"><div class="name">-1.5</div><div class="value">+145</div></ms-event-pick>
      <ms-event-pick class="option-pick"><div class="name">U 8.5</div><div class="value">-110</div></ms-event-pick>
      <ms-event-pick class="option-pick"><div class="value">-160</div></ms-event-pick>
    </div>
  </div>
</ms-option-panel>`

func TestParseSixPack(t *testing.T) {
	picks, err := parseBlock(mustParse(t, sixPackHTML), "mlb")
	if err != nil {
		t.Fatal(err)
	}
	if len(picks) != 6 {
		t.Fatalf("expected 6 picks, got %d: %+v", len(picks), picks)
	}

	spread := picks[0]
	if spread.Market != "spread" || spread.Team != "BOS" || *spread.Line != 1.5 || spread.Odds != -165 {
		t.Errorf("spread pick = %+v", spread)
	}
	total := picks[1]
	if total.Market != "total" || total.Outcome != "over" || *total.Line != 8.5 {
		t.Errorf("total pick = %+v", total)
	}
	ml := picks[2]
	if ml.Market != "moneyline" || ml.Team != "BOS" || ml.Odds != 140 || ml.Line != nil {
		t.Errorf("moneyline pick = %+v", ml)
	}
	if picks[5].Market != "moneyline" || picks[5].Team != "NYY" || picks[5].Odds != -160 {
		t.Errorf("home moneyline = %+v", picks[5])
	}
}

func TestParseSixPack_WrongRowCount(t *testing.T) {
	html := `
<ms-option-panel class="option-panel">
  <span class="market-name">Game Lines</span>
  <div class="option-group-container six-pack-container">
    <div class="option-row">
      <div class="six-pack-player-name">Boston Red Sox</div>
    </div>
  </div>
</ms-option-panel>`
	if _, err := parseBlock(mustParse(t, html), "mlb"); err == nil {
		t.Fatal("expected hard error for single-row game lines block")
	}
}

func TestParseSixPack_MissingOddsCell(t *testing.T) {
	html := `
<ms-option-panel class="option-panel">
  <span class="market-name">Game Lines</span>
  <div class="option-group-container six-pack-container">
    <div class="option-row">
      <div class="six-pack-player-name">Boston Red Sox</div>
      <ms-event-pick class="option-pick"><div class="name">+1.5</div><div class="value">-165</div></ms-event-pick>
      <ms-event-pick class="option-pick"><div class="name">O 8.5</div></ms-event-pick>
    </div>
    <div class="option-row">
      <div class="six-pack-player-name">New York Yankees</div>
      <ms-event-pick class="option-pick"><div class="value">-160</div></ms-event-pick>
    </div>
  </div>
</ms-option-panel>`
	picks, err := parseBlock(mustParse(t, html), "mlb")
	if err != nil {
		t.Fatal(err)
	}
	// The suspended total cell is dropped, everything priced survives.
	if len(picks) != 2 {
		t.Fatalf("expected 2 picks, got %d: %+v", len(picks), picks)
	}
	if picks[0].Market != "spread" || picks[1].Market != "moneyline" {
		t.Errorf("picks = %+v", picks)
	}
}

func TestParseOverUnder(t *testing.T) {
	html := `
<ms-option-panel class="option-panel">
  <span class="market-name">Total Runs</span>
  <div class="option-group-container over-under-container">
    <ms-option class="option"><div class="name">Over 8.5</div><span class="custom-odds-value-style">-115</span></ms-option>
    <ms-option class="option"><div class="name">Under 8.5</div><span class="custom-odds-value-style">-105</span></ms-option>
    <ms-option class="option"><div class="name">Over 9.5</div><span class="custom-odds-value-style">+120</span></ms-option>
  </div>
</ms-option-panel>`
	picks, err := parseBlock(mustParse(t, html), "mlb")
	if err != nil {
		t.Fatal(err)
	}
	if len(picks) != 3 {
		t.Fatalf("expected 3 picks, got %d", len(picks))
	}
	if picks[0].Market != "total" || picks[0].Outcome != "over" || *picks[0].Line != 8.5 || picks[0].Odds != -115 {
		t.Errorf("pick = %+v", picks[0])
	}
	if picks[1].Outcome != "under" || picks[1].Odds != -105 {
		t.Errorf("pick = %+v", picks[1])
	}
	if picks[2].Odds != 120 {
		t.Errorf("pick = %+v", picks[2])
	}
}

func TestParsePlayerProps(t *testing.T) {
	html := `
<ms-option-panel class="option-panel">
  <span class="market-name">Strikeouts</span>
  <div class="option-group-container player-props-container">
    <div class="player-props-player-name">Gerrit Cole</div>
    <div class="player-props-player-name">Brayan Bello</div>
    <ms-option class="option"><div class="name">Over 6.5</div><div class="value">-120</div></ms-option>
    <ms-option class="option"><div class="name">Under 6.5</div><div class="value">-110</div></ms-option>
    <ms-option class="option"><div class="name">Over 4.5</div><div class="value">+100</div></ms-option>
    <ms-option class="option"><div class="name">Under 4.5</div><div class="value">-130</div></ms-option>
  </div>
</ms-option-panel>`
	picks, err := parseBlock(mustParse(t, html), "mlb")
	if err != nil {
		t.Fatal(err)
	}
	if len(picks) != 4 {
		t.Fatalf("expected 4 picks, got %d", len(picks))
	}
	if picks[0].Player != "Gerrit Cole" || picks[0].Outcome != "over" || *picks[0].Line != 6.5 {
		t.Errorf("pick = %+v", picks[0])
	}
	if picks[3].Player != "Brayan Bello" || picks[3].Outcome != "under" || picks[3].Odds != -130 {
		t.Errorf("pick = %+v", picks[3])
	}
	if picks[0].Market != "pitcher_strikeouts" {
		t.Errorf("market = %q", picks[0].Market)
	}
}

func TestParseSpread(t *testing.T) {
	html := `
<ms-option-panel class="option-panel">
  <span class="market-name">Alternate Run Line</span>
  <div class="option-group-container spread-container">
    <div class="option-group-header"><span>BOS</span><span>NYY</span></div>
    <div class="option-indicator"><div class="name">+2.5</div><div class="value">-240</div></div>
    <div class="option-indicator"><div class="name">-2.5</div><div class="value">+190</div></div>
  </div>
</ms-option-panel>`
	picks, err := parseBlock(mustParse(t, html), "mlb")
	if err != nil {
		t.Fatal(err)
	}
	if len(picks) != 2 {
		t.Fatalf("expected 2 picks, got %d", len(picks))
	}
	if picks[0].Team != "BOS" || *picks[0].Line != 2.5 || picks[0].Odds != -240 {
		t.Errorf("pick = %+v", picks[0])
	}
	if picks[1].Team != "NYY" || *picks[1].Line != -2.5 {
		t.Errorf("pick = %+v", picks[1])
	}
	if picks[0].Market != "alt_spread" {
		t.Errorf("market = %q", picks[0].Market)
	}
}

func TestParseBlock_UnsupportedType(t *testing.T) {
	html := `
<ms-option-panel class="option-panel">
  <span class="market-name">Moneyline</span>
  <div class="option-group-container mystery-container"></div>
</ms-option-panel>`
	_, err := parseBlock(mustParse(t, html), "mlb")
	var unsupported *scrapers.UnsupportedMarketTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedMarketTypeError, got %v", err)
	}
	if unsupported.Market != "mystery-container" {
		t.Errorf("market = %q", unsupported.Market)
	}
}

func TestParseBlock_MissingContainer(t *testing.T) {
	html := `
<ms-option-panel class="option-panel">
  <span class="market-name">Moneyline</span>
</ms-option-panel>`
	_, err := parseBlock(mustParse(t, html), "mlb")
	var missing *scrapers.BlockNotFoundError
	if !errors.As(err, &missing) {
		t.Fatalf("expected BlockNotFoundError, got %v", err)
	}
	if missing.Block != "option-group-container" {
		t.Errorf("block = %q", missing.Block)
	}
}

func TestParseAmerican(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"+140", 140, true},
		{"-165", -165, true},
		{" +100 ", 100, true},
		{"EVEN", 0, false},
	}
	for _, c := range cases {
		got, err := parseAmerican(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("parseAmerican(%q) = %d, %v", c.in, got, err)
		}
		if !c.ok && err == nil {
			t.Errorf("parseAmerican(%q): expected error", c.in)
		}
	}
}
