// Package impact maps free-text event names to impact tiers using
// case-insensitive keyword membership. High keywords win over Medium;
// names matching neither list classify as Low.
package impact
