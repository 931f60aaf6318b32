package taxonomy

// markets maps slugified market labels to canonical market keys. Several
// slugs collapse to the same key because books label the same market
// differently ("Run Line" vs "Spread", "Total Runs" vs "Total").
var markets = map[string]string{
	// Game lines
	"moneyline":    "moneyline",
	"money_line":   "moneyline",
	"spread":       "spread",
	"point_spread": "spread",
	"run_line":     "spread",
	"puck_line":    "spread",
	"total":        "total",
	"totals":       "total",
	"total_runs":   "total",
	"total_points": "total",
	"game_total":   "total",

	// Alternate game lines
	"alternate_spread":   "alt_spread",
	"alt_spread":         "alt_spread",
	"alternate_run_line": "alt_spread",
	"alternate_total":    "alt_total",
	"alt_total":          "alt_total",
	"team_total":         "team_total",
	"team_totals":        "team_total",

	// Batting props
	"hits":             "batter_hits",
	"batter_hits":      "batter_hits",
	"rbis":             "batter_rbis",
	"runs":             "batter_runs",
	"runs_scored":      "batter_runs",
	"bases":            "batter_total_bases",
	"total_bases":      "batter_total_bases",
	"singles":          "batter_singles",
	"doubles":          "batter_doubles",
	"triples":          "batter_triples",
	"home_runs":        "batter_home_runs",
	"walks":            "batter_walks",
	"stolen_bases":     "batter_stolen_bases",
	"h_r_rbi":          "batter_hits_runs_rbis",
	"hits_runs_rbis":   "batter_hits_runs_rbis",

	// Pitching props
	"strikeouts":           "pitcher_strikeouts",
	"pitcher_strikeouts":   "pitcher_strikeouts",
	"outs":                 "pitcher_outs",
	"outs_recorded":        "pitcher_outs",
	"earned_runs":          "pitcher_earned_runs",
	"pitcher_walks":        "pitcher_walks",
	"hits_allowed":         "pitcher_hits_allowed",
	"pitcher_hits_allowed": "pitcher_hits_allowed",
}
