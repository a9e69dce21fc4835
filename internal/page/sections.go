// Package page holds the controllers behind each generative feature of the
// journey page: section expansions, phase icons, the vision statement and
// the chat widget. Each controller owns its own small piece of state and
// guards it independently, so a stalled call in one feature never blocks
// another.
package page

import (
	"context"
	"errors"
	"sync"

	"github.com/lumenlabs/lumen/internal/content"
	"github.com/lumenlabs/lumen/internal/feed"
	"github.com/lumenlabs/lumen/internal/gen"
)

// TextStreamer dispatches one streamed text generation.
type TextStreamer interface {
	StreamText(ctx context.Context, prompt string) (gen.Stream, error)
}

const sectionErrText = "The light flickered for a moment there. Please try expanding this section again."

var (
	// ErrUnknownSection is returned for a section id the page does not have.
	ErrUnknownSection = errors.New("unknown section")
	// ErrExpandInFlight is returned when a section's first load is already
	// running; the caller should treat the click as a no-op.
	ErrExpandInFlight = errors.New("section expansion already in flight")
)

// Sections drives the expandable "learn more" panels. Detail text is
// generated at most once per section; a failed load stays uncached so the
// next expand retries.
type Sections struct {
	streamer TextStreamer
	entries  []*sectionEntry
	byID     map[string]*sectionEntry
}

type sectionEntry struct {
	content.Section

	mu       sync.Mutex
	loaded   bool
	inFlight bool
	detail   string
}

func NewSections(streamer TextStreamer, sections []content.Section) *Sections {
	s := &Sections{
		streamer: streamer,
		byID:     make(map[string]*sectionEntry, len(sections)),
	}
	for _, sec := range sections {
		e := &sectionEntry{Section: sec}
		s.entries = append(s.entries, e)
		s.byID[sec.ID] = e
	}
	return s
}

// List returns the sections in page order.
func (s *Sections) List() []content.Section {
	out := make([]content.Section, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Section
	}
	return out
}

// Titles returns the ordered section titles, the input to the vision
// statement.
func (s *Sections) Titles() []string {
	titles := make([]string, len(s.entries))
	for i, e := range s.entries {
		titles[i] = e.Title
	}
	return titles
}

// Has reports whether the page has a section with the given id.
func (s *Sections) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Expand writes the section's detail text to the surface. The first
// successful expansion generates and caches the text; later expansions
// replay the cache without a generation call. A collapse while the first
// load is still streaming does not interrupt it: the stream finishes
// writing and the section is marked loaded anyway.
func (s *Sections) Expand(ctx context.Context, id string, target feed.Surface) error {
	e, ok := s.byID[id]
	if !ok {
		return ErrUnknownSection
	}

	e.mu.Lock()
	if e.loaded {
		detail := e.detail
		e.mu.Unlock()
		replay(target, detail)
		return nil
	}
	if e.inFlight {
		e.mu.Unlock()
		return ErrExpandInFlight
	}
	e.inFlight = true
	e.mu.Unlock()

	prompt := gen.SectionDeepDive(e.Title, e.Summary)
	detail, err := feed.Run(ctx, func(ctx context.Context) (gen.Stream, error) {
		return s.streamer.StreamText(ctx, prompt)
	}, target, sectionErrText)

	e.mu.Lock()
	e.inFlight = false
	if err == nil {
		e.detail = detail
		e.loaded = true
	}
	e.mu.Unlock()

	return err
}

// replay plays cached text through the surface with the same begin/end
// framing a live stream would produce.
func replay(target feed.Surface, text string) {
	target.Begin()
	target.Append(text)
	target.End()
}
