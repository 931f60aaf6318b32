// Package taxonomy maps free-text team names and market labels from
// sportsbook pages to the canonical codes and market keys used everywhere
// else in the pipeline. Lookups are table-driven; an unknown input is a
// typed error so callers can skip the offending pick and log the raw string.
package taxonomy

import (
	"fmt"
	"strings"
)

// UnknownTeamError means no acronym table entry matched the raw name.
type UnknownTeamError struct {
	League string
	Name   string
}

func (e *UnknownTeamError) Error() string {
	return fmt.Sprintf("taxonomy: unknown team %q in league %q", e.Name, e.League)
}

// UnknownMarketError means the slugified market label has no table entry.
type UnknownMarketError struct {
	Label string
	Slug  string
}

func (e *UnknownMarketError) Error() string {
	return fmt.Sprintf("taxonomy: unknown market %q (slug %q)", e.Label, e.Slug)
}

// NormalizeTeam resolves any supported spelling of a team (full name, city,
// nickname or official abbreviation) to its canonical code.
func NormalizeTeam(league, raw string) (string, error) {
	table, ok := teamAcronyms[strings.ToLower(strings.TrimSpace(league))]
	if !ok {
		return "", &UnknownTeamError{League: league, Name: raw}
	}
	name := strings.ToUpper(strings.TrimSpace(raw))
	name = strings.Join(strings.Fields(name), " ")
	code, ok := table[name]
	if !ok {
		return "", &UnknownTeamError{League: league, Name: raw}
	}
	return code, nil
}

// NormalizeMarket resolves a raw market label to a canonical market key.
// Labels may carry a team prefix separated by a colon ("BOS: Total Bases");
// if the prefix is a known team code or name it is stripped and returned as
// the second value, otherwise the whole label is looked up as-is.
func NormalizeMarket(label string) (string, string, error) {
	team := ""
	rest := label
	if before, after, found := strings.Cut(label, ":"); found {
		if code, ok := lookupAnyTeam(before); ok {
			team = code
			rest = after
		}
	}
	slug := Slugify(rest)
	key, ok := markets[slug]
	if !ok {
		return "", "", &UnknownMarketError{Label: label, Slug: slug}
	}
	return key, team, nil
}

// Slugify lowercases a label and collapses spaces, hyphens and plus signs
// into single underscores ("H+R+RBI" -> "h_r_rbi").
func Slugify(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '+':
			return '_'
		}
		return r
	}, s)
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return strings.Trim(s, "_")
}

// IsTotalsFamily reports whether picks for the market require an
// over/under outcome qualifier.
func IsTotalsFamily(market string) bool {
	switch market {
	case "total", "alt_total", "team_total":
		return true
	}
	return false
}

// IsPlayerProp reports whether picks for the market require a player name.
func IsPlayerProp(market string) bool {
	return strings.HasPrefix(market, "batter_") || strings.HasPrefix(market, "pitcher_")
}

// lookupAnyTeam tries the raw string against every league's table. Market
// labels do not say which league they belong to, so the prefix check is
// league-agnostic; codes are unambiguous enough for this purpose.
func lookupAnyTeam(raw string) (string, bool) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	name = strings.Join(strings.Fields(name), " ")
	for _, table := range teamAcronyms {
		if code, ok := table[name]; ok {
			return code, true
		}
	}
	return "", false
}
