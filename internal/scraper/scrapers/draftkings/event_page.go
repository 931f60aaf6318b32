package draftkings

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/oddsweep/oddsweep/internal/pkg/dom"
	"github.com/oddsweep/oddsweep/internal/pkg/models"
	"github.com/oddsweep/oddsweep/internal/pkg/taxonomy"
)

// parseMarketGroup reads one accordion on an event page: a market title
// plus a flat run of outcome cells. Cells carry a label, an optional
// line and the odds; player-prop accordions repeat the pattern per
// player with the player's name on the cell label.
func parseMarketGroup(group *dom.Fragment, league string) ([]models.Pick, error) {
	title := group.SelectOne("div.sportsbook-event-accordion__title")
	if title == nil {
		return nil, fmt.Errorf("market group has no title")
	}
	market, team, err := taxonomy.NormalizeMarket(title.Text())
	if err != nil {
		return nil, err
	}

	cells := group.Select("div.sportsbook-outcome-cell__body")
	var picks []models.Pick
	for _, cell := range cells {
		pick, ok, err := parseOutcomeCell(cell, league, market, team)
		if err != nil {
			return nil, err
		}
		if ok {
			picks = append(picks, pick)
		}
	}
	return picks, nil
}

// parseOutcomeCell reads one priced outcome. Cells without odds are
// suspended and skipped.
func parseOutcomeCell(cell *dom.Fragment, league, market, team string) (models.Pick, bool, error) {
	oddsEl := cell.SelectOne("span.sportsbook-odds")
	if oddsEl == nil {
		return models.Pick{}, false, nil
	}
	odds, err := parseAmerican(oddsEl.Text())
	if err != nil {
		return models.Pick{}, false, err
	}

	var line *float64
	if lineEl := cell.SelectOne("span.sportsbook-outcome-cell__line"); lineEl != nil {
		v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(lineEl.Text()), "+", ""), 64)
		if err != nil {
			return models.Pick{}, false, fmt.Errorf("bad line %q: %w", lineEl.Text(), err)
		}
		line = models.Float(v)
	}

	label := ""
	if labelEl := cell.SelectOne("span.sportsbook-outcome-cell__label"); labelEl != nil {
		label = labelEl.Text()
	}

	outcome := ""
	player := ""
	switch {
	case taxonomy.IsPlayerProp(market):
		// "Gerrit Cole Over" / "Gerrit Cole Under"
		lower := strings.ToLower(label)
		switch {
		case strings.HasSuffix(lower, " over"):
			outcome = "over"
			player = strings.TrimSpace(label[:len(label)-len(" over")])
		case strings.HasSuffix(lower, " under"):
			outcome = "under"
			player = strings.TrimSpace(label[:len(label)-len(" under")])
		default:
			player = strings.TrimSpace(label)
		}
	case taxonomy.IsTotalsFamily(market):
		outcome = strings.ToLower(strings.TrimSpace(label))
	case market == "moneyline" || market == "spread" || market == "alt_spread":
		code, err := teamFromLabel(league, label)
		if err != nil {
			// An unmapped team costs this cell only, never the block.
			slog.Debug("skipping outcome cell", "book", "draftkings", "error", err)
			return models.Pick{}, false, nil
		}
		team = code
	default:
		outcome = strings.ToLower(strings.TrimSpace(label))
	}

	pick, err := models.NewPick(market, team, line, odds, outcome, player)
	if err != nil {
		return models.Pick{}, false, err
	}
	return pick, true, nil
}

func parseAmerican(text string) (int, error) {
	// DraftKings renders the minus as U+2212.
	t := strings.TrimSpace(strings.ReplaceAll(text, "−", "-"))
	t = strings.TrimPrefix(t, "+")
	odds, err := strconv.Atoi(t)
	if err != nil {
		return 0, fmt.Errorf("bad odds %q: %w", text, err)
	}
	return odds, nil
}
