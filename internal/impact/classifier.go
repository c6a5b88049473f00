package impact

import (
	"strings"

	"github.com/rickgao/econcal/internal/model"
)

// Classifier assigns an impact tier to an event name. It is a pure function
// over its keyword lists: same name in, same tier out, no failure mode.
type Classifier struct {
	high   []string // lowercased
	medium []string // lowercased
}

// New builds a Classifier from the given keyword lists. The lists are copied
// and lowercased once so Classify does no allocation beyond lowering the
// candidate name.
func New(high, medium []string) *Classifier {
	return &Classifier{
		high:   lowerAll(high),
		medium: lowerAll(medium),
	}
}

// Default returns a Classifier over the builtin keyword lists.
func Default() *Classifier {
	return New(HighKeywords, MediumKeywords)
}

// Classify maps an event name to a tier by case-insensitive substring match.
// A High keyword match wins even when a Medium keyword also matches; ties
// never resolve toward under-reporting importance. No match means Low.
func (c *Classifier) Classify(name string) model.Impact {
	lower := strings.ToLower(name)
	for _, kw := range c.high {
		if strings.Contains(lower, kw) {
			return model.ImpactHigh
		}
	}
	for _, kw := range c.medium {
		if strings.Contains(lower, kw) {
			return model.ImpactMedium
		}
	}
	return model.ImpactLow
}

// Matches reports whether name hits any High or Medium keyword. Adapters use
// it to pre-filter scraped rows before building records.
func (c *Classifier) Matches(name string) bool {
	return c.Classify(name) != model.ImpactLow
}

func lowerAll(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		out = append(out, strings.ToLower(kw))
	}
	return out
}
