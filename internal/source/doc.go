// Package source implements the calendar source adapters.
//
// Each adapter produces zero or more well-formed events from one data
// source:
//   - forexfactory: Forex Factory economic calendar (HTML)
//   - fed: Federal Reserve FOMC meeting calendar (HTML)
//   - schedule: hardcoded fallback schedule for the known year
//   - investing: Investing.com placeholder (anti-scraping, returns nothing)
//
// Adapters drop malformed rows internally and never let a network or parse
// failure escape as anything other than an error return; the fetch runner
// treats a failed adapter as an empty one.
package source
