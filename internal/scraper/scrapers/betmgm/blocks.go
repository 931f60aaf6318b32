package betmgm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oddsweep/oddsweep/internal/pkg/dom"
	"github.com/oddsweep/oddsweep/internal/pkg/models"
	"github.com/oddsweep/oddsweep/internal/pkg/taxonomy"
	"github.com/oddsweep/oddsweep/internal/scraper/scrapers"
)

// parseBlock dispatches one option panel on the container class that
// BetMGM renders as the second class of div.option-group-container.
func parseBlock(panel *dom.Fragment, league string) ([]models.Pick, error) {
	container := panel.SelectOne("div.option-group-container")
	if container == nil {
		return nil, &scrapers.BlockNotFoundError{
			Book:  "betmgm",
			Block: "option-group-container",
			Err:   fmt.Errorf("panel has no container element"),
		}
	}
	classes := container.Classes()
	if len(classes) < 2 {
		return nil, &scrapers.BlockNotFoundError{
			Book:  "betmgm",
			Block: "option-group-container",
			Err:   fmt.Errorf("container has no type class: %v", classes),
		}
	}
	blockType := classes[1]

	switch blockType {
	case "six-pack-container":
		return parseSixPack(panel, league)
	case "over-under-container":
		return parseOverUnder(panel)
	case "player-props-container":
		return parsePlayerProps(panel)
	case "regular-option-container":
		return parseRegularOptions(panel)
	case "spread-container":
		return parseSpread(panel, league)
	default:
		return nil, &scrapers.UnsupportedMarketTypeError{Book: "betmgm", Market: blockType}
	}
}

// blockMarket resolves the panel's market title through the taxonomy.
func blockMarket(panel *dom.Fragment) (market, team string, err error) {
	title := panel.SelectOne("span.market-name")
	if title == nil {
		return "", "", fmt.Errorf("panel has no market-name")
	}
	return taxonomy.NormalizeMarket(title.Text())
}

// parseSixPack reads the game-lines block: one row per team, with
// spread, total and moneyline cells. The block is only well-formed with
// exactly two rows; anything else is a hard error for the block.
func parseSixPack(panel *dom.Fragment, league string) ([]models.Pick, error) {
	rows := panel.Select("div.option-row")
	if len(rows) != 2 {
		return nil, fmt.Errorf("game lines block must have 2 rows, got %d", len(rows))
	}

	var picks []models.Pick
	for _, row := range rows {
		nameEl := row.SelectOne("div.six-pack-player-name")
		if nameEl == nil {
			return nil, fmt.Errorf("game lines row has no team name")
		}
		team, err := taxonomy.NormalizeTeam(league, nameEl.Text())
		if err != nil {
			return nil, err
		}

		for _, option := range row.Select("ms-event-pick.option-pick") {
			name := option.SelectOne("div.name")
			value := option.SelectOne("div.value")
			if value == nil {
				continue
			}

			var (
				market  string
				outcome string
				line    *float64
			)
			switch {
			case name != nil && strings.ContainsAny(name.Text(), "+-"):
				market = "spread"
				v, err := parseLine(name.Text())
				if err != nil {
					return nil, err
				}
				line = models.Float(v)
			case name != nil && strings.ContainsAny(name.Text(), "OU"):
				market = "total"
				if strings.Contains(name.Text(), "O") {
					outcome = "over"
				} else {
					outcome = "under"
				}
				v, err := parseLine(strings.NewReplacer("O", "", "U", "").Replace(name.Text()))
				if err != nil {
					return nil, err
				}
				line = models.Float(v)
			default:
				market = "moneyline"
			}

			odds, err := parseAmerican(value.Text())
			if err != nil {
				return nil, err
			}
			pick, err := models.NewPick(market, team, line, odds, outcome, "")
			if err != nil {
				return nil, err
			}
			picks = append(picks, pick)
		}
	}
	return picks, nil
}

// parseOverUnder reads an over/under ladder. Option names look like
// "Over 8.5" / "Under 8.5".
func parseOverUnder(panel *dom.Fragment) ([]models.Pick, error) {
	market, team, err := blockMarket(panel)
	if err != nil {
		return nil, err
	}

	var picks []models.Pick
	for _, option := range panel.Select("ms-option.option") {
		name := option.SelectOne("div.name")
		value := option.SelectOne("span.custom-odds-value-style")
		if name == nil || value == nil {
			continue
		}

		outcome, lineText, ok := strings.Cut(name.Text(), " ")
		if !ok {
			continue
		}
		line, err := parseLine(lineText)
		if err != nil {
			return nil, err
		}
		odds, err := parseAmerican(value.Text())
		if err != nil {
			return nil, err
		}
		pick, err := models.NewPick(market, team, models.Float(line), odds, strings.ToLower(outcome), "")
		if err != nil {
			return nil, err
		}
		picks = append(picks, pick)
	}
	return picks, nil
}

// parsePlayerProps reads a player prop block: one player name per pair
// of over/under options, in render order.
func parsePlayerProps(panel *dom.Fragment) ([]models.Pick, error) {
	market, team, err := blockMarket(panel)
	if err != nil {
		return nil, err
	}

	players := panel.Select("div.player-props-player-name")
	options := panel.Select("ms-option.option")

	var picks []models.Pick
	for i, option := range options {
		if i/2 >= len(players) {
			break
		}
		name := option.SelectOne("div.name")
		value := option.SelectOne("div.value")
		if name == nil || value == nil {
			continue
		}

		line, err := parseLine(strings.NewReplacer("Over ", "", "Under ", "").Replace(name.Text()))
		if err != nil {
			return nil, err
		}
		odds, err := parseAmerican(value.Text())
		if err != nil {
			return nil, err
		}
		outcome := "over"
		if i%2 == 1 {
			outcome = "under"
		}
		pick, err := models.NewPick(market, team, models.Float(line), odds, outcome, players[i/2].Text())
		if err != nil {
			return nil, err
		}
		picks = append(picks, pick)
	}
	return picks, nil
}

// parseRegularOptions reads a flat outcome/odds block with no line.
func parseRegularOptions(panel *dom.Fragment) ([]models.Pick, error) {
	market, team, err := blockMarket(panel)
	if err != nil {
		return nil, err
	}

	names := panel.Select("div.name")
	values := panel.Select("div.value")

	var picks []models.Pick
	for i := 0; i < len(names) && i < len(values); i++ {
		odds, err := parseAmerican(values[i].Text())
		if err != nil {
			return nil, err
		}
		pick, err := models.NewPick(market, team, nil, odds, strings.ToLower(names[i].Text()), "")
		if err != nil {
			return nil, err
		}
		picks = append(picks, pick)
	}
	return picks, nil
}

// parseSpread reads an alternate-spread ladder: the two team names in
// the header, then line/odds cells alternating away/home.
func parseSpread(panel *dom.Fragment, league string) ([]models.Pick, error) {
	market, _, err := blockMarket(panel)
	if err != nil {
		return nil, err
	}

	headers := panel.Select("div.option-group-header span")
	if len(headers) < 2 {
		return nil, fmt.Errorf("spread block has %d header teams, want 2", len(headers))
	}
	teams := make([]string, 2)
	for i := 0; i < 2; i++ {
		teams[i], err = taxonomy.NormalizeTeam(league, headers[i].Text())
		if err != nil {
			return nil, err
		}
	}

	var picks []models.Pick
	for i, option := range panel.Select("div.option-indicator") {
		name := option.SelectOne("div.name")
		value := option.SelectOne("div.value")
		if name == nil || value == nil {
			continue
		}
		line, err := parseLine(name.Text())
		if err != nil {
			return nil, err
		}
		odds, err := parseAmerican(value.Text())
		if err != nil {
			return nil, err
		}
		pick, err := models.NewPick(market, teams[i%2], models.Float(line), odds, "", "")
		if err != nil {
			return nil, err
		}
		picks = append(picks, pick)
	}
	return picks, nil
}

// parseAmerican parses a displayed American odds value ("+140", "-165").
func parseAmerican(text string) (int, error) {
	t := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), "+"))
	odds, err := strconv.Atoi(t)
	if err != nil {
		return 0, fmt.Errorf("bad odds %q: %w", text, err)
	}
	return odds, nil
}

// parseLine parses a displayed point line ("+1.5", "-7", "8.5").
func parseLine(text string) (float64, error) {
	t := strings.TrimSpace(strings.ReplaceAll(text, "+", ""))
	line, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("bad line %q: %w", text, err)
	}
	return line, nil
}
