// Package all registers every book adapter. Import it for side effects
// from binaries that select adapters by name.
package all

import (
	_ "github.com/oddsweep/oddsweep/internal/scraper/scrapers/betmgm"
	_ "github.com/oddsweep/oddsweep/internal/scraper/scrapers/draftkings"
)
