package draftkings

import (
	"testing"
	"time"

	"github.com/oddsweep/oddsweep/internal/pkg/dom"
)

var testNow = time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

func mustParse(t *testing.T, html string) *dom.Fragment {
	t.Helper()
	f, err := dom.Parse(html)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

const listingHTML = `
<table class="sportsbook-table">
  <thead><tr><th><div class="sportsbook-table-header__title">TODAY</div></th></tr></thead>
  <tbody class="sportsbook-table__body">
    <tr>
      <td>
        <a class="event-cell-link" href="/event/bos-red-sox-%40-ny-yankees/31249"></a>
        <div class="event-cell__name-text">BOS Red Sox</div>
        <span class="event-cell__start-time">7:05PM</span>
      </td>
    </tr>
    <tr>
      <td><div class="event-cell__name-text">NY Yankees</div></td>
    </tr>
    <tr>
      <td>
        <a class="event-cell-link" href="/event/chi-cubs-%40-stl-cardinals/31250"></a>
        <div class="event-cell__name-text">CHI Cubs</div>
      </td>
    </tr>
    <tr>
      <td><div class="event-cell__name-text">STL Cardinals</div></td>
    </tr>
  </tbody>
</table>`

func TestParseListingTable(t *testing.T) {
	events, err := parseListingTable(mustParse(t, listingHTML), "mlb", testNow, time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	first := events[0]
	if first.Event.AwayTeam != "BOS" || first.Event.HomeTeam != "NYY" {
		t.Errorf("teams = %s@%s", first.Event.AwayTeam, first.Event.HomeTeam)
	}
	want := time.Date(2024, 6, 15, 19, 5, 0, 0, time.UTC)
	if !first.Event.StartTime.Equal(want) {
		t.Errorf("start = %v, want %v", first.Event.StartTime, want)
	}
	if first.Event.Active {
		t.Error("prematch event marked active")
	}
	if first.Href != "/event/bos-red-sox-%40-ny-yankees/31249" {
		t.Errorf("href = %q", first.Href)
	}

	// Second pair has no start-time span: in play.
	second := events[1]
	if !second.Event.Active {
		t.Error("live event not marked active")
	}
	midnight := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if !second.Event.StartTime.Equal(midnight) {
		t.Errorf("live start = %v, want %v", second.Event.StartTime, midnight)
	}
}

func TestParseListingTable_OddRows(t *testing.T) {
	html := `
<table class="sportsbook-table">
  <thead><tr><th><div class="sportsbook-table-header__title">TODAY</div></th></tr></thead>
  <tbody class="sportsbook-table__body">
    <tr><td><div class="event-cell__name-text">BOS Red Sox</div></td></tr>
  </tbody>
</table>`
	if _, err := parseListingTable(mustParse(t, html), "mlb", testNow, time.UTC); err == nil {
		t.Fatal("expected pairing error for odd row count")
	}
}

func TestParseHeaderDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"TODAY", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"TOMORROW", time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)},
		{"THU AUG 28TH", time.Date(2024, 8, 28, 0, 0, 0, 0, time.UTC)},
		{"MON JUL 1ST", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, err := parseHeaderDate(c.in, testNow, time.UTC)
		if err != nil {
			t.Errorf("parseHeaderDate(%q): %v", c.in, err)
			continue
		}
		gy, gm, gd := got.Date()
		wy, wm, wd := c.want.Date()
		if gy != wy || gm != wm || gd != wd {
			t.Errorf("parseHeaderDate(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseHeaderDate_Garbage(t *testing.T) {
	if _, err := parseHeaderDate("SOMEDAY", testNow, time.UTC); err == nil {
		t.Fatal("expected error")
	}
}
