package source

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const forexFactoryFixture = `<html><body><table>
<tr><td>colspan header</td></tr>
<tr class="calendar__row"><td>2026-02-12 08:30</td><td>High</td><td>CPI Release</td><td></td><td>0.3%</td><td>0.2%</td></tr>
<tr class="calendar__row"><td>2026-02-27 09:45</td><td></td><td>Chicago PMI</td><td></td><td>N/A</td><td>48.2</td></tr>
<tr class="calendar__row"><td>2026-02-13 10:00</td><td></td><td>Random Local Council Meeting</td><td></td><td></td><td></td></tr>
<tr class="calendar__row"><td>2025-06-01 08:30</td><td>High</td><td>Retail Sales</td><td></td><td></td><td></td></tr>
<tr class="calendar__row"><td>not a time</td><td>High</td><td>GDP Release</td><td></td><td></td><td></td></tr>
</table></body></html>`

func newForexFactoryForTest(t *testing.T, srvURL string) *ForexFactory {
	t.Helper()
	f := NewForexFactory(ClientConfig{BaseURL: srvURL, Timeout: 2 * time.Second}, nil, slog.Default())
	f.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	return f
}

func TestForexFactoryFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("country") != "us" {
			t.Errorf("country = %q, want us", r.URL.Query().Get("country"))
		}
		w.Write([]byte(forexFactoryFixture))
	}))
	defer srv.Close()

	f := newForexFactoryForTest(t, srv.URL)
	events, err := f.Fetch(context.Background(), 365*24*time.Hour)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	// Expect CPI (explicit High) and Chicago PMI (classifier Medium); the
	// council meeting fails the keyword pre-filter, Retail Sales is in the
	// past, and the GDP row has an unparseable time.
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(events), events)
	}

	cpi := events[0]
	if cpi.Name != "CPI Release" {
		t.Errorf("Name = %q, want CPI Release", cpi.Name)
	}
	// 8:30 AM EST = 13:30 UTC.
	want := time.Date(2026, 2, 12, 13, 30, 0, 0, time.UTC)
	if !cpi.Time.Equal(want) {
		t.Errorf("Time = %v, want %v", cpi.Time, want)
	}
	if cpi.Impact != "High" {
		t.Errorf("Impact = %q, want High", cpi.Impact)
	}
	if cpi.Forecast == nil || *cpi.Forecast != "0.3%" {
		t.Errorf("Forecast = %v, want 0.3%%", cpi.Forecast)
	}
	if cpi.Previous == nil || *cpi.Previous != "0.2%" {
		t.Errorf("Previous = %v, want 0.2%%", cpi.Previous)
	}

	pmi := events[1]
	if pmi.Name != "Chicago PMI" {
		t.Errorf("Name = %q, want Chicago PMI", pmi.Name)
	}
	if pmi.Impact != "Medium" {
		t.Errorf("Impact = %q, want Medium (classifier-assigned)", pmi.Impact)
	}
	if pmi.Forecast != nil {
		t.Errorf("Forecast = %q, want nil for N/A cell", *pmi.Forecast)
	}
	if pmi.Previous == nil || *pmi.Previous != "48.2" {
		t.Errorf("Previous = %v, want 48.2", pmi.Previous)
	}
}

func TestForexFactoryHorizonBound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(forexFactoryFixture))
	}))
	defer srv.Close()

	f := newForexFactoryForTest(t, srv.URL)

	// A 30-day horizon from Jan 1 excludes both February rows.
	events, err := f.Fetch(context.Background(), 30*24*time.Hour)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("len = %d, want 0 outside horizon", len(events))
	}
}

func TestForexFactoryHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := newForexFactoryForTest(t, srv.URL)
	if _, err := f.Fetch(context.Background(), 24*time.Hour); err == nil {
		t.Fatal("Fetch succeeded, want error on 404")
	}
}
