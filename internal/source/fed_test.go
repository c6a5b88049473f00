package source

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const fedFixture = `<html><body>
<a href="/monetarypolicy/fomcminutes.htm">FOMC Meeting, January 27, 2026</a>
<a href="/monetarypolicy/fomcminutes.htm">FOMC Meeting, January 27, 2026</a>
<a href="/monetarypolicy/fomcpresconf.htm">Federal Open Market Committee, Mar 17, 2026</a>
<a href="/monetarypolicy/fomccalendars.htm">FOMC Calendars</a>
<a href="/aboutthefed.htm">About the Fed</a>
<a href="/monetarypolicy/old.htm">FOMC Meeting, December 16, 2020</a>
</body></html>`

func TestFedFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fedFixture))
	}))
	defer srv.Close()

	f := NewFed(ClientConfig{BaseURL: srv.URL, Timeout: 2 * time.Second}, slog.Default())
	f.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	events, err := f.Fetch(context.Background(), 365*24*time.Hour)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	// Two distinct upcoming meetings (the January duplicate collapses, the
	// dateless and 2020 links drop), three events each.
	if len(events) != 6 {
		t.Fatalf("len = %d, want 6: %+v", len(events), events)
	}

	// 2:00 PM EST on Jan 27 is 19:00 UTC.
	decision := events[0]
	if decision.Name != "FOMC Interest Rate Decision" {
		t.Errorf("Name = %q, want FOMC Interest Rate Decision", decision.Name)
	}
	want := time.Date(2026, 1, 27, 19, 0, 0, 0, time.UTC)
	if !decision.Time.Equal(want) {
		t.Errorf("Time = %v, want %v", decision.Time, want)
	}
	if decision.Impact != "High" {
		t.Errorf("Impact = %q, want High", decision.Impact)
	}

	press := events[2]
	if press.Name != "FOMC Press Conference" {
		t.Errorf("Name = %q, want FOMC Press Conference", press.Name)
	}
	if !press.Time.Equal(want.Add(30 * time.Minute)) {
		t.Errorf("press Time = %v, want %v", press.Time, want.Add(30*time.Minute))
	}

	// DST starts March 8, 2026, so the March meeting is 2:00 PM EDT = 18:00 UTC.
	march := events[3]
	wantMarch := time.Date(2026, 3, 17, 18, 0, 0, 0, time.UTC)
	if !march.Time.Equal(wantMarch) {
		t.Errorf("march Time = %v, want %v", march.Time, wantMarch)
	}
}

func TestParseFOMCDate(t *testing.T) {
	at, ok := parseFOMCDate("FOMC Meeting, January 27, 2026")
	if !ok {
		t.Fatal("parseFOMCDate failed")
	}
	want := time.Date(2026, 1, 27, 19, 0, 0, 0, time.UTC)
	if !at.Equal(want) {
		t.Errorf("at = %v, want %v", at, want)
	}

	if _, ok := parseFOMCDate("FOMC Calendars"); ok {
		t.Error("parseFOMCDate matched text without a date")
	}
}
