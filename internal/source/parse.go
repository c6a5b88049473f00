package source

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// eastern is the US economic-data civil time zone. Calendar pages publish
// wall-clock times without offsets; they are Eastern until proven otherwise.
var eastern = mustLoadEastern()

func mustLoadEastern() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		// No tzdata on this host; EST is the wrong answer half the year but
		// better than treating Eastern wall times as UTC.
		return time.FixedZone("EST", -5*60*60)
	}
	return loc
}

// easternLayouts covers the wall-time formats the calendar sites emit.
var easternLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"Jan 2, 2006 3:04 PM",
	"Jan 2, 2006 15:04",
	"January 2, 2006 3:04 PM",
}

// parseEasternTime interprets a zone-less wall-clock string as US Eastern
// and returns the UTC instant.
func parseEasternTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time string")
	}
	for _, layout := range easternLayouts {
		if t, err := time.ParseInLocation(layout, s, eastern); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time format: %q", s)
}

// optValue maps a scraped cell to an optional field: empty strings and the
// sites' "N/A" placeholder both mean no value.
func optValue(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "n/a") {
		return nil
	}
	return &s
}

// --- HTML traversal helpers ---

// nodeText concatenates the text content under n, trimmed.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

// attrVal returns the value of the named attribute, or "".
func attrVal(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// hasClass reports whether an element carries the given class token.
func hasClass(n *html.Node, class string) bool {
	for _, token := range strings.Fields(attrVal(n, "class")) {
		if token == class {
			return true
		}
	}
	return false
}

// findAll walks the tree depth-first collecting element nodes that satisfy
// pred.
func findAll(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

// childCells returns the td elements directly under a table row.
func childCells(tr *html.Node) []*html.Node {
	var cells []*html.Node
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "td" {
			cells = append(cells, c)
		}
	}
	return cells
}
