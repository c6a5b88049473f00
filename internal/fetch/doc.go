// Package fetch runs the source adapters and feeds their output through the
// aggregator. Sources run sequentially; a failing source is logged and
// contributes zero records instead of aborting the run.
package fetch
