// Package scrapers defines the adapter boundary between the run
// coordinator and the per-book page scrapers, plus the registry the
// adapters self-register into.
package scrapers

import (
	"context"

	"github.com/oddsweep/oddsweep/internal/pkg/fetch"
	"github.com/oddsweep/oddsweep/internal/pkg/models"
)

// EventLink ties an event observed on a book's league listing to the
// book's own page for it. Event carries only listing-level identity
// (teams, start time, live flag); picks come from the event page.
type EventLink struct {
	Event *models.Event
	URL   string
}

// BookAdapter scrapes one sportsbook. Adapters are stateless with
// respect to sessions: every call receives the session it should drive,
// so the coordinator controls session ownership.
type BookAdapter interface {
	// Name is the canonical book name used in output and config.
	Name() string

	// DiscoverEventLinks opens the book's listing for the league and
	// returns an EventLink per listed event. expected is the number of
	// events the schedule source announced; adapters may use it to decide
	// when a listing has finished rendering, but must return whatever
	// loaded once the retry budget runs out.
	DiscoverEventLinks(ctx context.Context, session fetch.Session, league string, expected int) ([]EventLink, error)

	// ScrapeEventPage opens one event page and returns every pick it
	// could parse. Unparseable blocks are skipped, not fatal.
	ScrapeEventPage(ctx context.Context, session fetch.Session, league, url string) ([]models.Pick, error)
}
