package scrapers

import "fmt"

// LeagueNotFoundError means the book's listing page for a league never
// produced any events. Recovery scope: the whole (book, league) pair is
// skipped, other books and leagues continue.
type LeagueNotFoundError struct {
	Book   string
	League string
	Err    error
}

func (e *LeagueNotFoundError) Error() string {
	return fmt.Sprintf("%s: league %q not found: %v", e.Book, e.League, e.Err)
}

func (e *LeagueNotFoundError) Unwrap() error { return e.Err }

// BlockNotFoundError means an expected market block was missing or
// malformed on an event page. Recovery scope: the block is skipped, the
// rest of the page continues.
type BlockNotFoundError struct {
	Book  string
	Block string
	Err   error
}

func (e *BlockNotFoundError) Error() string {
	return fmt.Sprintf("%s: block %q not found: %v", e.Book, e.Block, e.Err)
}

func (e *BlockNotFoundError) Unwrap() error { return e.Err }

// UnsupportedMarketTypeError means an event page contained a market
// block shape the adapter does not understand. Recovery scope: the
// block is skipped.
type UnsupportedMarketTypeError struct {
	Book   string
	Market string
}

func (e *UnsupportedMarketTypeError) Error() string {
	return fmt.Sprintf("%s: unsupported market type %q", e.Book, e.Market)
}
