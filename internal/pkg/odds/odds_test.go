package odds

import (
	"testing"
	"time"

	"github.com/oddsweep/oddsweep/internal/pkg/models"
)

func TestAmericanDecimalRoundTrip(t *testing.T) {
	for _, o := range []int{100, 110, 145, 250, 1200, -101, -110, -145, -250, -1200} {
		d, err := AmericanToDecimal(o)
		if err != nil {
			t.Fatalf("AmericanToDecimal(%d): %v", o, err)
		}
		back, err := DecimalToAmerican(d)
		if err != nil {
			t.Fatalf("DecimalToAmerican(%v): %v", d, err)
		}
		if back != o {
			t.Errorf("round trip %d -> %v -> %d", o, d, back)
		}
	}
}

func TestAmericanToDecimal_Values(t *testing.T) {
	tests := []struct {
		in   int
		want float64
	}{
		{100, 2.0},
		{150, 2.5},
		{-200, 1.5},
		{-110, 1.9090909090909092},
	}
	for _, tt := range tests {
		got, err := AmericanToDecimal(tt.in)
		if err != nil {
			t.Fatalf("AmericanToDecimal(%d): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("AmericanToDecimal(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := AmericanToDecimal(0); err == nil {
		t.Error("0 is not a valid American price")
	}
}

func TestIsArbitrage(t *testing.T) {
	// +120 and +110: 1/2.2 + 1/2.1 = 0.9307... < 1
	if !IsArbitrage(120, 110) {
		t.Error("+120/+110 should be an arbitrage")
	}
	// -110 both sides: 0.5238 * 2 > 1
	if IsArbitrage(-110, -110) {
		t.Error("-110/-110 is the standard vig, not an arbitrage")
	}
}

func TestArbitrageStakes(t *testing.T) {
	st, err := Arbitrage(120, 110, 100)
	if err != nil {
		t.Fatal(err)
	}
	if st.Profit <= 0 || st.ROI <= 0 {
		t.Errorf("expected positive profit, got %+v", st)
	}
	if st.Stake1+st.Stake2 >= 100 {
		t.Errorf("stakes should sum below the investment for an arb, got %v", st.Stake1+st.Stake2)
	}
}

func TestFindOpportunities(t *testing.T) {
	start := time.Date(2025, 8, 28, 19, 5, 0, 0, time.UTC)
	ev, err := models.NewEvent("mlb", "BOS", "NYY", start, false)
	if err != nil {
		t.Fatal(err)
	}

	mustPick := func(market, team string, line *float64, o int, outcome string) models.Pick {
		p, err := models.NewPick(market, team, line, o, outcome, "")
		if err != nil {
			t.Fatal(err)
		}
		return p
	}

	ev.AppendQuote(models.BookQuote{
		BookName:   "betmgm",
		LastUpdate: start,
		Picks: []models.Pick{
			mustPick("moneyline", "BOS", nil, 120, ""),
			mustPick("total", "", models.Float(8.5), -110, "over"),
		},
	})
	ev.AppendQuote(models.BookQuote{
		BookName:   "draftkings",
		LastUpdate: start,
		Picks: []models.Pick{
			mustPick("moneyline", "NYY", nil, 110, ""),
			mustPick("total", "", models.Float(8.5), -110, "under"),
		},
	})

	ops := FindOpportunities([]*models.Event{ev})
	if len(ops) != 1 {
		t.Fatalf("expected exactly the moneyline arb, got %d: %+v", len(ops), ops)
	}
	if ops[0].Market != "moneyline" || ops[0].Percent <= 0 {
		t.Errorf("unexpected opportunity: %+v", ops[0])
	}
}
