package quiz

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

type promptSource []Question

func (p promptSource) String(i int) string { return p[i].Prompt }
func (p promptSource) Len() int            { return len(p) }

// Search returns the questions whose prompt fuzzily matches query, best match first.
// An empty query returns the whole catalog in order.
func (c *Catalog) Search(query string) []Question {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.questions
	}
	matches := fuzzy.FindFrom(query, promptSource(c.questions))
	out := make([]Question, 0, len(matches))
	for _, m := range matches {
		out = append(out, c.questions[m.Index])
	}
	return out
}
