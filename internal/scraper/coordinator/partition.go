package coordinator

import "github.com/oddsweep/oddsweep/internal/scraper/scrapers"

// partition splits links into at most workers contiguous slices whose
// sizes differ by at most one. Empty slices are never returned, so the
// result length is min(workers, len(links)).
func partition(links []scrapers.EventLink, workers int) [][]scrapers.EventLink {
	if len(links) == 0 || workers <= 0 {
		return nil
	}
	if workers > len(links) {
		workers = len(links)
	}

	base := len(links) / workers
	extra := len(links) % workers

	out := make([][]scrapers.EventLink, 0, workers)
	start := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < extra {
			size++
		}
		out = append(out, links[start:start+size])
		start += size
	}
	return out
}
