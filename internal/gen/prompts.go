package gen

import (
	"fmt"
	"strings"
)

// Prompt builders are pure string interpolation; they never touch the
// network and always succeed. Tone constraints live in the templates so
// every feature speaks with the same voice.

// SectionDeepDive builds the "learn more" expansion prompt for one section.
func SectionDeepDive(title, summary string) string {
	return fmt.Sprintf(
		"You are Sol, an uplifting guide. A reader wants to go deeper into the journey phase titled %q, "+
			"which is summarized as: %q. Write exactly two short paragraphs expanding on this phase. "+
			"Keep the tone warm, upbeat and forward-looking. Do not use negative framing or warnings.",
		title, summary)
}

// IconImage builds the image-generation prompt for one phase placeholder.
func IconImage(phaseLabel string) string {
	return fmt.Sprintf(
		"A single square icon representing the journey phase %q. "+
			"Minimal flat illustration, soft warm gradient palette, gentle glow, no text, centered on a plain background.",
		phaseLabel)
}

// VisionStatement builds the grand-vision synthesis prompt from the ordered
// section titles.
func VisionStatement(titles []string) string {
	return fmt.Sprintf(
		"You are Sol, an uplifting guide. Synthesize the journey phases %s into one short, inspiring "+
			"vision statement of 3 to 4 sentences. Keep the tone warm, upbeat and forward-looking. "+
			"Do not use negative framing.",
		strings.Join(titles, ", "))
}
