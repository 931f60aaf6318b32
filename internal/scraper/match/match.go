// Package match resolves events a book listing observed against the
// canonical schedule. Books disagree with the schedule source on start
// times by a few minutes, so identity is exact on teams and fuzzy on
// time.
package match

import (
	"errors"
	"time"

	"github.com/oddsweep/oddsweep/internal/pkg/models"
)

// ErrEventNotFound means no scheduled event matched the observation.
var ErrEventNotFound = errors.New("match: no scheduled event matches")

// Observed is a book's view of an event's identity, already normalized
// through the taxonomy.
type Observed struct {
	AwayTeam  string
	HomeTeam  string
	StartTime time.Time
	Live      bool
}

// Find returns the first scheduled event the observation matches: same
// away and home team (order matters), both live or start times within
// tolerance. Candidate order decides ties, so callers pass the schedule
// in its published order.
func Find(obs Observed, candidates []*models.Event, tolerance time.Duration) (*models.Event, error) {
	for _, c := range candidates {
		if c.AwayTeam != obs.AwayTeam || c.HomeTeam != obs.HomeTeam {
			continue
		}
		if c.Active != obs.Live {
			continue
		}
		if c.Active {
			return c, nil
		}
		delta := c.StartTime.Sub(obs.StartTime)
		if delta < 0 {
			delta = -delta
		}
		if delta <= tolerance {
			return c, nil
		}
	}
	return nil, ErrEventNotFound
}
