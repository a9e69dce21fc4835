package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/lumenlabs/lumen/internal/feed"
)

// sseSurface renders a feed.Surface onto one Server-Sent Events response.
// Fragments go out as default "message" events; the streaming mark maps to
// "begin"/"done" framing events and failures to a single "error" event
// carrying the user-facing sentence. Headers are written lazily so callers
// can still reject a request with a plain status before streaming starts.
type sseSurface struct {
	w       http.ResponseWriter
	flusher http.Flusher
	started bool
}

var _ feed.Surface = (*sseSurface)(nil)

func newSSESurface(w http.ResponseWriter) (*sseSurface, bool) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, false
	}
	return &sseSurface{w: w, flusher: flusher}, true
}

func (s *sseSurface) Begin() { s.event("begin", "") }

func (s *sseSurface) Append(fragment string) { s.event("", fragment) }

func (s *sseSurface) End() { s.event("done", "") }

func (s *sseSurface) Fail(message string) { s.event("error", message) }

func (s *sseSurface) event(name, data string) {
	if !s.started {
		s.started = true
		h := s.w.Header()
		h.Set("Content-Type", "text/event-stream")
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		s.w.WriteHeader(http.StatusOK)
	}

	if name != "" {
		fmt.Fprintf(s.w, "event: %s\n", name)
	}
	// A fragment may span lines; each needs its own data field.
	for _, line := range strings.Split(data, "\n") {
		fmt.Fprintf(s.w, "data: %s\n", line)
	}
	fmt.Fprint(s.w, "\n")
	s.flusher.Flush()
}
