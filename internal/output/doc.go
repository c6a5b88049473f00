// Package output renders the final event list into the two run artifacts:
// a JSON document for external consumers and a Pine Script array fragment
// for TradingView. Both files are written atomically as a unit so a failed
// run never leaves partial output behind.
package output
