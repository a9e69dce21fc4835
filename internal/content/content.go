// Package content holds the static journey-page data that the generative
// features interpolate into their prompts. The page itself is authored here;
// nothing in this package talks to the network.
package content

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

// Section is one expandable block of the journey page. Summary is the
// authored markdown; SummaryHTML is rendered once at load time.
type Section struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"-"`
	SummaryHTML string `json:"summary_html"`
	Phase       string `json:"phase"`
}

var sections = []Section{
	{
		ID:    "spark",
		Title: "Find Your Spark",
		Phase: "Spark",
		Summary: "Every journey begins with a single moment of curiosity. " +
			"This phase is about noticing what pulls at you and giving it *room to breathe*.",
	},
	{
		ID:    "foundations",
		Title: "Lay the Foundations",
		Phase: "Foundations",
		Summary: "Small, steady habits compound into something remarkable. " +
			"Here we turn the spark into a daily practice you can actually keep.",
	},
	{
		ID:    "momentum",
		Title: "Build Momentum",
		Phase: "Momentum",
		Summary: "With the basics in place, progress starts to feed itself. " +
			"This phase celebrates visible wins and the confidence they bring.",
	},
	{
		ID:    "horizon",
		Title: "Reach the Horizon",
		Phase: "Horizon",
		Summary: "The horizon is not an ending but a vantage point. " +
			"From here you can see how far you have come, and choose what comes next.",
	},
}

// Load returns the page sections with their summaries rendered to HTML.
func Load() ([]Section, error) {
	md := goldmark.New()
	out := make([]Section, len(sections))
	for i, s := range sections {
		var buf bytes.Buffer
		if err := md.Convert([]byte(s.Summary), &buf); err != nil {
			return nil, fmt.Errorf("rendering summary for section %q: %w", s.ID, err)
		}
		s.SummaryHTML = strings.TrimSpace(buf.String())
		out[i] = s
	}
	return out, nil
}

// Phases returns the ordered phase labels, one per icon placeholder.
func Phases() []string {
	labels := make([]string, len(sections))
	for i, s := range sections {
		labels[i] = s.Phase
	}
	return labels
}
