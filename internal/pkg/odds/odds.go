// Package odds converts between American and decimal odds and detects
// two-sided arbitrage opportunities in a finished run aggregate.
package odds

import (
	"fmt"
	"math"

	"github.com/oddsweep/oddsweep/internal/pkg/models"
)

// AmericanToDecimal converts signed American odds to decimal odds.
// Positive odds map via o/100+1, negative via 100/|o|+1. Zero is not a
// valid American price.
func AmericanToDecimal(o int) (float64, error) {
	if o == 0 {
		return 0, fmt.Errorf("odds: american odds cannot be 0")
	}
	if o > 0 {
		return float64(o)/100 + 1, nil
	}
	return 100/math.Abs(float64(o)) + 1, nil
}

// DecimalToAmerican is the inverse of AmericanToDecimal. Decimal odds of
// 2.0 and above map to positive American odds.
func DecimalToAmerican(d float64) (int, error) {
	if d <= 1 {
		return 0, fmt.Errorf("odds: decimal odds must be > 1, got %v", d)
	}
	if d >= 2 {
		return int(math.Round((d - 1) * 100)), nil
	}
	return -int(math.Round(100 / (d - 1))), nil
}

// IsArbitrage reports whether backing both sides at the given American
// prices guarantees a profit (combined implied probability below 1).
func IsArbitrage(odds1, odds2 int) bool {
	d1, err1 := AmericanToDecimal(odds1)
	d2, err2 := AmericanToDecimal(odds2)
	if err1 != nil || err2 != nil {
		return false
	}
	return 1/d1+1/d2 < 1
}

// Stakes is the split of an investment across the two sides of an
// arbitrage, with the guaranteed profit and return on investment.
type Stakes struct {
	Stake1 float64 `json:"stake1"`
	Stake2 float64 `json:"stake2"`
	Profit float64 `json:"profit"`
	ROI    float64 `json:"roi"`
}

// Arbitrage splits an investment proportionally to the implied
// probabilities of the two sides.
func Arbitrage(odds1, odds2 int, investment float64) (Stakes, error) {
	d1, err := AmericanToDecimal(odds1)
	if err != nil {
		return Stakes{}, err
	}
	d2, err := AmericanToDecimal(odds2)
	if err != nil {
		return Stakes{}, err
	}

	ip1 := 1 / d1
	ip2 := 1 / d2
	stake1 := investment * ip1
	stake2 := investment * ip2
	profit := stake1*d1 + stake2*d2 - investment

	return Stakes{
		Stake1: stake1,
		Stake2: stake2,
		Profit: profit,
		ROI:    profit / investment * 100,
	}, nil
}

// Opportunity is a two-sided arbitrage found across books for one event.
type Opportunity struct {
	Event   *models.Event
	Market  string
	Line    *float64
	Book1   string
	Pick1   models.Pick
	Book2   string
	Pick2   models.Pick
	Percent float64 // guaranteed ROI percent for a unit investment
}

type sideKey struct {
	market  string
	line    float64
	hasLine bool
	side    string // team code for two-way team markets, over/under for totals
}

// FindOpportunities scans an aggregate for cross-book arbitrage on two-sided
// markets: moneyline (away vs home) and totals (over vs under at the same
// line). Best price per side wins; one opportunity per (event, market, line).
func FindOpportunities(events []*models.Event) []Opportunity {
	var out []Opportunity
	for _, ev := range events {
		best := map[sideKey]struct {
			book string
			pick models.Pick
		}{}
		for _, quote := range ev.Books {
			for _, p := range quote.Picks {
				k, ok := sideFor(ev, p)
				if !ok {
					continue
				}
				cur, exists := best[k]
				if !exists || betterPrice(p.Odds, cur.pick.Odds) {
					best[k] = struct {
						book string
						pick models.Pick
					}{quote.BookName, p}
				}
			}
		}
		for k1, s1 := range best {
			k2, ok := opposite(ev, k1)
			if !ok {
				continue
			}
			// Deterministic pairing: emit each pair once.
			if k1.side > k2.side {
				continue
			}
			s2, ok := best[k2]
			if !ok {
				continue
			}
			if !IsArbitrage(s1.pick.Odds, s2.pick.Odds) {
				continue
			}
			st, err := Arbitrage(s1.pick.Odds, s2.pick.Odds, 100)
			if err != nil {
				continue
			}
			op := Opportunity{
				Event:   ev,
				Market:  k1.market,
				Book1:   s1.book,
				Pick1:   s1.pick,
				Book2:   s2.book,
				Pick2:   s2.pick,
				Percent: st.ROI,
			}
			if k1.hasLine {
				op.Line = models.Float(k1.line)
			}
			out = append(out, op)
		}
	}
	return out
}

func sideFor(ev *models.Event, p models.Pick) (sideKey, bool) {
	switch p.Market {
	case "moneyline":
		if p.Team == "" {
			return sideKey{}, false
		}
		return sideKey{market: p.Market, side: p.Team}, true
	case "total":
		if p.Line == nil || p.Outcome == "" {
			return sideKey{}, false
		}
		return sideKey{market: p.Market, line: *p.Line, hasLine: true, side: p.Outcome}, true
	}
	return sideKey{}, false
}

func opposite(ev *models.Event, k sideKey) (sideKey, bool) {
	o := k
	switch k.market {
	case "moneyline":
		switch k.side {
		case ev.AwayTeam:
			o.side = ev.HomeTeam
		case ev.HomeTeam:
			o.side = ev.AwayTeam
		default:
			return sideKey{}, false
		}
	case "total":
		switch k.side {
		case "over":
			o.side = "under"
		case "under":
			o.side = "over"
		default:
			return sideKey{}, false
		}
	default:
		return sideKey{}, false
	}
	return o, true
}

// betterPrice reports whether a beats b from the bettor's side.
// Higher decimal odds always pay more.
func betterPrice(a, b int) bool {
	da, err1 := AmericanToDecimal(a)
	db, err2 := AmericanToDecimal(b)
	if err1 != nil || err2 != nil {
		return false
	}
	return da > db
}
